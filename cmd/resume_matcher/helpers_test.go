package main

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"
)

// runCLI executes the root command in-process and returns what it wrote.
// Logging is turned down to errors unless the test sets --log-level itself.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if !slices.Contains(args, "--log-level") {
		args = append(args, "--log-level", "error")
	}

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}
