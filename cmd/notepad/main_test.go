package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunFind(t *testing.T) {
	path := writeFile(t, "in.txt", "cat category Cat")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-find", "cat", "-whole-word", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "found 2 match(es)")
	assert.Equal(t, "cat category Cat", stdout.String())
}

func TestRunFindMatchCase(t *testing.T) {
	path := writeFile(t, "in.txt", "abcABCabc")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-find", "abc", "-match-case", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "found 2 match(es)")
}

func TestRunReplaceToFile(t *testing.T) {
	in := writeFile(t, "in.txt", "foo foo foo")
	out := filepath.Join(t.TempDir(), "out.txt")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-find", "foo", "-replace", "bar", "-o", out, in}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "replaced 3 occurrence(s)")
	assert.Empty(t, stdout.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "bar bar bar", string(got))
}

func TestRunReplaceWithEmpty(t *testing.T) {
	path := writeFile(t, "in.txt", "a-b-c")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-find", "-", "-replace", "", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "abc", stdout.String())
}

func TestRunLine(t *testing.T) {
	path := writeFile(t, "in.txt", "one\ntwo\nthree")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-line", "3", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "line 3, column 1 of 3 lines")

	stderr.Reset()
	code = run([]string{"-line", "9", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "line out of range")
}

func TestRunErrors(t *testing.T) {
	path := writeFile(t, "in.txt", "x")

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"no file", []string{}, 2, "expected exactly one file"},
		{"replace without find", []string{"-replace", "y", path}, 2, "-replace requires -find"},
		{"bad log level", []string{"-log-level", "loud", path}, 2, "invalid log level"},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.txt")}, 1, "no such file"},
		{"bad config", []string{"-config", writeFile(t, "bad.toml", "[zoom\n"), path}, 1, "parse error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "notepad dev")
}

func TestRunDebugLogging(t *testing.T) {
	path := writeFile(t, "in.txt", "aaa")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-log-level", "debug", "-find", "a", "-replace", "b", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "[DEBUG]")
	assert.Contains(t, stderr.String(), "replace all: 3 replacements")
	assert.Equal(t, "bbb", stdout.String())
}

func TestRunRejectsInvalidUTF8(t *testing.T) {
	content := "caf\xe9 TODO\n"
	in := writeFile(t, "latin1.txt", content)
	out := filepath.Join(t.TempDir(), "out.txt")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-find", "TODO", "-o", out, in}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "not valid UTF-8")
	assert.Empty(t, stdout.String())
	assert.NoFileExists(t, out)

	got, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}
