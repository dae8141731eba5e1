// Package extraction pulls structured scores and sections out of the
// free-form analysis text returned by the upstream model. Extraction never
// fails: anything that cannot be located is simply absent from the result.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/project-evaluator/internal/schema"
	"github.com/jonathan/project-evaluator/internal/types"
)

// Result holds everything extracted from one analysis text.
type Result struct {
	Scores          types.EvaluationScores
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// scorePatterns matches lines like "INNOVATION SCORE: 88/100", tolerating
// markdown emphasis, an optional "(0-100)" qualifier, and a missing "/100"
// suffix. Keyed by schema label.
var scorePatterns = map[string]*regexp.Regexp{}

func init() {
	for _, label := range schema.ScoreLabels() {
		scorePatterns[label] = regexp.MustCompile(
			`(?i)` + label + "[*_` ]*score[*_` ]*(?:\\(0\\s*-\\s*100\\))?[*_` ]*[:\\-][*_` ]*(-?\\d+)(?:\\s*/\\s*100)?")
	}
}

var bulletPrefixes = []string{"-", "*", "•", "+"}

// numberedItem matches list lines like "1. foo" or "2) bar".
var numberedItem = regexp.MustCompile(`^\d+[.)]\s+(.*)$`)

// Parse extracts scores and labeled sections from raw analysis text.
// Missing or malformed content yields absent fields, never an error.
func Parse(raw string) *Result {
	result := &Result{
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}

	result.Scores = types.EvaluationScores{
		Innovation: findScore(raw, schema.LabelInnovation),
		Novelty:    findScore(raw, schema.LabelNovelty),
		Overall:    findScore(raw, schema.LabelOverall),
	}

	sections := collectSections(raw)
	result.Strengths = sections[schema.SectionStrengths]
	result.Weaknesses = sections[schema.SectionWeaknesses]
	result.Recommendations = sections[schema.SectionRecommendations]

	return result
}

// findScore returns the first score for the label, clamped to [0,100],
// or nil when no labeled score line exists.
func findScore(raw, label string) *int {
	match := scorePatterns[label].FindStringSubmatch(raw)
	if match == nil {
		return nil
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	n = clamp(n, 0, 100)
	return &n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// collectSections walks the text line by line, switching sections when a
// labeled header appears and accumulating list-like lines beneath it.
func collectSections(raw string) map[string][]string {
	sections := map[string][]string{
		schema.SectionStrengths:       {},
		schema.SectionWeaknesses:      {},
		schema.SectionRecommendations: {},
	}

	current := ""
	for _, line := range strings.Split(raw, "\n") {
		if label, ok := matchSectionHeader(line); ok {
			current = label
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			// Any other markdown heading ends the current section.
			current = ""
			continue
		}

		if current == "" {
			continue
		}
		if item, ok := matchListItem(trimmed); ok {
			sections[current] = append(sections[current], item)
		}
	}

	return sections
}

// matchSectionHeader reports whether the line is one of the labeled section
// headers, accepting markdown heading markers, emphasis, numbering, and a
// trailing colon.
func matchSectionHeader(line string) (string, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#>")
	s = strings.TrimSpace(s)
	if m := numberedItem.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = strings.Trim(s, "*_`")
	s = strings.TrimSpace(s)

	upper := strings.ToUpper(s)
	for _, label := range schema.SectionLabels() {
		if !strings.HasPrefix(upper, label) {
			continue
		}
		rest := strings.TrimSpace(upper[len(label):])
		rest = strings.Trim(rest, ":*_` ")
		if rest == "" {
			return label, true
		}
	}
	return "", false
}

// matchListItem reports whether the line is a bullet or numbered list entry
// and returns its trimmed content.
func matchListItem(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix+" ") {
			return strings.TrimSpace(line[len(prefix)+1:]), true
		}
	}
	if m := numberedItem.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
