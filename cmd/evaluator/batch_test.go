package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	content := `[
		{"name": "Widget", "synopsis": "A tool."},
		{"synopsis": "A nameless tool.", "code_context": "func main() {}"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	inputs, err := loadBatchFile(path)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "Widget", inputs[0].Name)
	assert.Equal(t, "A tool.", inputs[0].Synopsis)
	assert.Empty(t, inputs[1].Name)
	assert.Equal(t, "func main() {}", inputs[1].CodeContext)
}

func TestLoadBatchFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := loadBatchFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no projects")
}

func TestLoadBatchFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := loadBatchFile(path)
	assert.Error(t, err)
}

func TestLoadBatchFile_MissingFile(t *testing.T) {
	_, err := loadBatchFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
