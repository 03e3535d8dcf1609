package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChallenge(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cha.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunSolvable(t *testing.T) {
	path := writeChallenge(t, `Galois Field : GF(2)
Number of variables : 2
Number of polynomials : 1
Seed : 1
********************
0 1 0 1 0 1;
`)
	assert.Equal(t, 0, run([]string{"--file", path}))
}

func TestRunUnsolvable(t *testing.T) {
	path := writeChallenge(t, `Galois Field : GF(2)
Number of variables : 3
Number of polynomials : 2
Seed : 1
********************
0 0 0 0 0 0 1 1 1 1;
0 0 0 0 0 0 1 1 1 0;
`)
	assert.Equal(t, 1, run([]string{"--file", path}))
}

func TestRunMissingFile(t *testing.T) {
	assert.Equal(t, 2, run([]string{"--file", "/nonexistent/cha.txt"}))
}

func TestRunMalformedFile(t *testing.T) {
	path := writeChallenge(t, "garbage\n")
	assert.Equal(t, 2, run([]string{"--file", path}))
}
