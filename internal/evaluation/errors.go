package evaluation

import "fmt"

// ValidationError represents malformed or missing input, rejected before any
// remote call is attempted
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UpstreamError represents a failure reported by the analysis provider
type UpstreamError struct {
	Project string
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	prefix := "upstream error"
	if e.Project != "" {
		prefix = fmt.Sprintf("upstream error evaluating %q", e.Project)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
