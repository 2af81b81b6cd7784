package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_KeepsOrder(t *testing.T) {
	resumes := []string{testdata("resume_unrelated.txt"), testdata("resume.txt"), testdata("resume_unrelated.txt")}
	args := []string{"batch", "--job", testdata("job.txt"), "--concurrency", "2"}
	for _, r := range resumes {
		args = append(args, "--resume", r)
	}

	stdout, _, err := runCLI(t, args...)
	require.NoError(t, err)

	var entries []batchEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, len(resumes))

	for i, r := range resumes {
		assert.Equal(t, r, entries[i].Resume)
		require.NotNil(t, entries[i].Result)
		want := expectedResult(t, r, testdata("job.txt"))
		assert.Equal(t, want.OverallScore, entries[i].Result.OverallScore, "entry %d", i)
	}
	assert.Greater(t, entries[1].Result.OverallScore, entries[0].Result.OverallScore)
}

func TestBatchCommand_OutFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "batch.json")

	stdout, _, err := runCLI(t, "batch", "-j", testdata("job.txt"), "-r", testdata("resume.txt"), "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Batch results written to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var entries []batchEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Len(t, entries, 1)
}

func TestBatchCommand_Errors(t *testing.T) {
	_, _, err := runCLI(t, "batch", "--job", testdata("job.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "resume" not set`)

	_, _, err = runCLI(t, "batch", "--job", testdata("job.txt"), "--resume", testdata("resume.txt"), "--concurrency", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--concurrency must be at least 1")

	_, _, err = runCLI(t, "batch", "--job", testdata("job.txt"), "--resume", testdata("resume.txt"), "--resume", testdata("nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
