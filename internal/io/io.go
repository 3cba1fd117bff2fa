package io

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	. "textmemo/internal/logger"
	"textmemo/internal/utils"

	"golang.org/x/sync/errgroup"
)

var DefaultPatterns = []string{"*.txt"}

var IgnoreDirs = []string{
	".git", ".idea", "node_modules", "dist", "target", "__pycache__", "build", ".venv", "venv",
}

func IsDirExists(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil { return false }
	return info.IsDir()
}

// ListFiles returns the files under dir whose base name matches one of patterns,
// in lexical walk order. A missing or unreadable directory yields an empty slice.
func ListFiles(dir string, patterns []string, ignoreDirs []string, recursive bool) []string {
	files := []string{}
	if !IsDirExists(dir) { return files }
	if len(patterns) == 0 { patterns = DefaultPatterns }

	// WalkDir does not follow a symlinked root, so walk its target and report paths under dir
	root, err := filepath.EvalSymlinks(dir)
	if err != nil { Log.Error("list files:", dir, err.Error()); return files }

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			Log.Error("walk:", path, err.Error())
			if d != nil && d.IsDir() && path != root { return filepath.SkipDir }
			return nil
		}
		if d.IsDir() {
			if path == root { return nil }
			if !recursive || utils.IsIgnored(d.Name(), ignoreDirs) { return filepath.SkipDir }
			return nil
		}
		if !utils.IsIgnored(d.Name(), patterns) { return nil }
		if root != dir {
			rel, err := filepath.Rel(root, path)
			if err != nil { return err }
			path = filepath.Join(dir, rel)
		}
		files = append(files, path)
		return nil
	})
	if err != nil { Log.Error("list files:", dir, err.Error()); return []string{} }

	return files
}

// ReadContents reads every path with at most workers concurrent reads.
// contents[i] always holds the text of paths[i].
func ReadContents(ctx context.Context, paths []string, workers int) ([]string, error) {
	if workers <= 0 { workers = runtime.NumCPU() }
	contents := make([]string, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil { return err }
			content, err := utils.ReadFileToString(path)
			if err != nil { return err }
			contents[i] = content
			return nil
		})
	}

	if err := g.Wait(); err != nil { return nil, err }
	return contents, nil
}
