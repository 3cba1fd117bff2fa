package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TEXTMEMO_CONF", filepath.Join(t.TempDir(), "none.yaml"))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDemo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "keyword1")
	writeFile(t, filepath.Join(dir, "b.txt"), "keyword1 keyword2")

	out, err := execute(t, "demo", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Initial content:", "Hello, world!",
		"Changed content:", "Hello, Universe!",
		"Undo change:", "Hello, world!",
		"Indexed files:",
		"Keyword: keyword1",
		"File: " + filepath.Join(dir, "a.txt"),
		"File: " + filepath.Join(dir, "b.txt"),
		"Keyword: keyword2",
		"File: " + filepath.Join(dir, "b.txt"),
	}, strings.Split(strings.TrimSuffix(out, "\n"), "\n"))
}

func TestDemoMissingDir(t *testing.T) {
	out, err := execute(t, "demo", "/does/not/exist")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Indexed files:\n"))
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "foo bar")
	writeFile(t, filepath.Join(dir, "b.txt"), "foo")

	out, err := execute(t, "search", dir, "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.txt")+"\n", out)

	out, err = execute(t, "search", "/does/not/exist", "x")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestIndexCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "foo bar")
	writeFile(t, filepath.Join(dir, "b.txt"), "bar")

	out, err := execute(t, "index", dir, "foo", "bar", "none")
	require.NoError(t, err)
	// keyword column is as wide as the longest keyword, "none"
	assert.Equal(t, "foo  "+filepath.Join(dir, "a.txt")+"\n"+
		"bar  "+filepath.Join(dir, "a.txt")+"\n"+
		"bar  "+filepath.Join(dir, "b.txt")+"\n", out)
}

func TestIndexCommandRepeatedKeyword(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "foo")

	out, err := execute(t, "index", dir, "foo", "foo")
	require.NoError(t, err)
	line := "foo " + filepath.Join(dir, "a.txt") + "\n"
	assert.Equal(t, line+line, out)
}

func TestIndexCommandRequiresKeyword(t *testing.T) {
	_, err := execute(t, "index", t.TempDir())
	assert.Error(t, err)
}

func TestSaveAndShow(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"doc.bin", "doc.yaml", "doc.json"} {
		path := filepath.Join(dir, name)
		_, err := execute(t, "save", path, "example.txt", "Hello, Universe!")
		require.NoError(t, err)

		out, err := execute(t, "show", path)
		require.NoError(t, err)
		assert.Equal(t, "Name: example.txt\nHello, Universe!\n", out)
	}

	path := filepath.Join(dir, "doc.dat")
	_, err := execute(t, "save", "--format", "binary", path, "n", "c")
	require.NoError(t, err)
	_, err = execute(t, "show", path)
	assert.Error(t, err)
	out, err := execute(t, "show", "-f", "binary", path)
	require.NoError(t, err)
	assert.Equal(t, "Name: n\nc\n", out)
}
