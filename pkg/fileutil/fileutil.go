// Package fileutil provides utility functions for working with file paths and file operations.
package fileutil

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/scaffoldnext/preflight/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListJSONFiles returns the paths of all *.json files directly inside dir,
// sorted lexicographically. A missing directory yields an empty list, not
// an error: absent configuration is a valid state for callers.
func ListJSONFiles(dir string) ([]string, error) {
	if !DirExists(dir) {
		log.Printf("Directory does not exist: %s", dir)
		return nil, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	// Glob can match directories named like *.json; keep regular files only.
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if FileExists(m) {
			files = append(files, m)
		}
	}

	sort.Strings(files)
	log.Printf("Found %d JSON file(s) in %s", len(files), dir)
	return files, nil
}
