package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProjectInput_FromFlags(t *testing.T) {
	input, err := buildProjectInput("Widget", "A tool.", "", "")
	require.NoError(t, err)

	assert.Equal(t, "Widget", input.Name)
	assert.Equal(t, "A tool.", input.Synopsis)
	assert.Empty(t, input.CodeContext)
}

func TestBuildProjectInput_FromFiles(t *testing.T) {
	dir := t.TempDir()
	synopsisPath := filepath.Join(dir, "synopsis.txt")
	codePath := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(synopsisPath, []byte("A tool from a file."), 0o644))
	require.NoError(t, os.WriteFile(codePath, []byte("func main() {}"), 0o644))

	input, err := buildProjectInput("Widget", "", synopsisPath, codePath)
	require.NoError(t, err)

	assert.Equal(t, "A tool from a file.", input.Synopsis)
	assert.Equal(t, "func main() {}", input.CodeContext)
}

func TestBuildProjectInput_MissingSynopsis(t *testing.T) {
	_, err := buildProjectInput("Widget", "", "", "")
	assert.Error(t, err)
}

func TestBuildProjectInput_MutuallyExclusive(t *testing.T) {
	_, err := buildProjectInput("Widget", "inline", "also-a-file.txt", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestBuildProjectInput_MissingFile(t *testing.T) {
	_, err := buildProjectInput("Widget", "", filepath.Join(t.TempDir(), "nope.txt"), "")
	assert.Error(t, err)
}
