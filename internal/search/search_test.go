package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsAll(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		keywords []string
		want     bool
	}{
		{name: "all present", content: "foo bar", keywords: []string{"foo", "bar"}, want: true},
		{name: "one missing", content: "foo", keywords: []string{"foo", "bar"}, want: false},
		{name: "case sensitive", content: "Foo", keywords: []string{"foo"}, want: false},
		{name: "no keywords", content: "", keywords: nil, want: true},
		{name: "empty keyword", content: "", keywords: []string{""}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContainsAll(tc.content, tc.keywords))
		})
	}
}

func TestSearch(t *testing.T) {
	entries := []Entry{{"f1", "foo bar"}, {"f2", "foo"}}

	assert.Equal(t, []string{"f1"}, Search(entries, "foo", "bar"))
	assert.Equal(t, []string{"f1", "f2"}, Search(entries, "foo"))
	assert.Equal(t, []string{"f1", "f2"}, Search(entries))
	assert.Empty(t, Search(entries, "baz"))
	assert.Empty(t, Search(nil, "foo"))
}

func TestSearchKeepsInputOrder(t *testing.T) {
	entries := []Entry{{"z", "x"}, {"a", "x"}, {"m", "y"}, {"b", "x"}}
	assert.Equal(t, []string{"z", "a", "b"}, Search(entries, "x"))
}

func TestIndex(t *testing.T) {
	entries := []Entry{{"f1", "foo"}, {"f2", "bar"}}

	assert.Equal(t, map[string][]string{"foo": {"f1"}, "bar": {"f2"}}, Index(entries, "foo", "bar"))

	index := Index(entries, "foo", "missing")
	_, exists := index["missing"]
	assert.False(t, exists)
	assert.Len(t, index, 1)
}

func TestIndexPathUnderSeveralKeywords(t *testing.T) {
	entries := []Entry{{"f1", "foo bar"}, {"f2", "bar"}, {"f3", "foo"}}

	index := Index(entries, "foo", "bar")
	assert.Equal(t, []string{"f1", "f3"}, index["foo"])
	assert.Equal(t, []string{"f1", "f2"}, index["bar"])
	assert.Empty(t, Index(entries))
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSearchOnDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "keyword1 keyword2")
	writeFile(t, filepath.Join(dir, "b.txt"), "keyword1")
	writeFile(t, filepath.Join(dir, "c.md"), "keyword1 keyword2")
	writeFile(t, filepath.Join(dir, "nested", "d.txt"), "keyword2 and keyword1")

	results, err := SearchOnDir(dir, "keyword1", "keyword2")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "nested", "d.txt")}, results)

	index, err := IndexOnDir(dir, "keyword1", "keyword2", "keyword3")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"keyword1": {filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), filepath.Join(dir, "nested", "d.txt")},
		"keyword2": {filepath.Join(dir, "a.txt"), filepath.Join(dir, "nested", "d.txt")},
	}, index)
}

func TestScannerFlat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "x")
	writeFile(t, filepath.Join(dir, "nested", "b.txt"), "x")

	scanner := Scanner{Patterns: []string{"*.txt"}, Recursive: false, Workers: 2}
	results, err := scanner.SearchOnDir(context.Background(), dir, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, results)
}

func TestOnMissingDir(t *testing.T) {
	results, err := SearchOnDir("/does/not/exist", "x")
	require.NoError(t, err)
	assert.Empty(t, results)

	index, err := IndexOnDir("/does/not/exist", "x")
	require.NoError(t, err)
	assert.Empty(t, index)
}
