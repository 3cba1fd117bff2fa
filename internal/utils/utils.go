package utils

import (
	"fmt"
	"os"
	"path/filepath"

	. "textmemo/internal/logger"
)

func MaxString(arr []string) int {
	maxLength := 0
	for _, str := range arr {
		if len(str) > maxLength { maxLength = len(str) }
	}
	return maxLength
}

func FormatText(left, right string, maxWidth int) string {
	left = fmt.Sprintf("%-*s", maxWidth, left)
	return fmt.Sprintf("%s %s", left, right)
}

func ReadFileToString(filePath string) (string, error) {
	filecontent, err := os.ReadFile(filePath)
	if err != nil { return "", err }
	return string(filecontent), nil
}

// IsIgnored reports whether the base name of path matches any of the glob patterns.
func IsIgnored(path string, ignorePatterns []string) bool {
	for _, pattern := range ignorePatterns {
		match, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil { Log.Error("invalid pattern:", pattern); continue }
		if match { return true }
	}
	return false
}
