package search

import (
	"context"
	"strings"
	"time"

	"textmemo/internal/io"
	. "textmemo/internal/logger"
)

// Entry is one file path paired with its text content.
type Entry struct {
	Path    string
	Content string
}

// ContainsAll reports whether content contains every keyword as a literal,
// case-sensitive substring. No keywords match everything.
func ContainsAll(content string, keywords []string) bool {
	for _, keyword := range keywords {
		if !strings.Contains(content, keyword) { return false }
	}
	return true
}

// Search returns the paths of entries matching all keywords, in input order.
func Search(entries []Entry, keywords ...string) []string {
	results := []string{}
	for _, entry := range entries {
		if ContainsAll(entry.Content, keywords) { results = append(results, entry.Path) }
	}
	return results
}

// Index maps each keyword to the paths containing it, in input order.
// Keywords that match nothing are left out of the map.
func Index(entries []Entry, keywords ...string) map[string][]string {
	index := make(map[string][]string)
	for _, entry := range entries {
		for _, keyword := range keywords {
			if !strings.Contains(entry.Content, keyword) { continue }
			index[keyword] = append(index[keyword], entry.Path)
		}
	}
	return index
}

// Scanner enumerates and reads plain-text files under a directory.
type Scanner struct {
	Patterns   []string
	IgnoreDirs []string
	Recursive  bool
	Workers    int
}

var DefaultScanner = Scanner{
	Patterns:   io.DefaultPatterns,
	IgnoreDirs: io.IgnoreDirs,
	Recursive:  true,
}

// Entries lists and reads every matching file under dir.
// A missing directory yields no entries and no error.
func (s Scanner) Entries(ctx context.Context, dir string) ([]Entry, error) {
	start := time.Now()
	defer func() { Log.Info("scan", dir, "elapsed:", time.Since(start).String()) }()

	paths := io.ListFiles(dir, s.Patterns, s.IgnoreDirs, s.Recursive)
	contents, err := io.ReadContents(ctx, paths, s.Workers)
	if err != nil { return nil, err }

	entries := make([]Entry, len(paths))
	for i, path := range paths {
		entries[i] = Entry{Path: path, Content: contents[i]}
	}
	return entries, nil
}

func (s Scanner) SearchOnDir(ctx context.Context, dir string, keywords ...string) ([]string, error) {
	entries, err := s.Entries(ctx, dir)
	if err != nil { return nil, err }
	return Search(entries, keywords...), nil
}

func (s Scanner) IndexOnDir(ctx context.Context, dir string, keywords ...string) (map[string][]string, error) {
	entries, err := s.Entries(ctx, dir)
	if err != nil { return nil, err }
	return Index(entries, keywords...), nil
}

func SearchOnDir(dir string, keywords ...string) ([]string, error) {
	return DefaultScanner.SearchOnDir(context.Background(), dir, keywords...)
}

func IndexOnDir(dir string, keywords ...string) (map[string][]string, error) {
	return DefaultScanner.IndexOnDir(context.Background(), dir, keywords...)
}
