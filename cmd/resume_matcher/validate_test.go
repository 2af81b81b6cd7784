package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Failure(t *testing.T) {
	stdout, _, err := runCLI(t, "validate", "--input", testdata("invalid_result.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, stdout, "Validation failed:")
	assert.Contains(t, stdout, "overallScore")
}

func TestValidateCommand_NotJSON(t *testing.T) {
	stdout, _, err := runCLI(t, "validate", "--input", testdata("job.txt"))

	require.Error(t, err)
	assert.Contains(t, stdout, "document is not valid JSON")
}

func TestValidateCommand_CustomSchema(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.json")
	doc := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{"type": "object", "required": ["name"]}`), 0o644))
	require.NoError(t, os.WriteFile(doc, []byte(`{"name": "x"}`), 0o644))

	stdout, _, err := runCLI(t, "validate", "--schema", schema, "--input", doc)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	require.NoError(t, os.WriteFile(doc, []byte(`{}`), 0o644))
	stdout, _, err = runCLI(t, "validate", "--schema", schema, "--input", doc)
	require.Error(t, err)
	assert.Contains(t, stdout, "name")
}

func TestValidateCommand_MissingInput(t *testing.T) {
	_, _, err := runCLI(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	_, _, err = runCLI(t, "validate", "--input", testdata("nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
