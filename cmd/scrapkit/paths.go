package main

import (
	"os"
	"path/filepath"
	"strings"
)

func defaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".scrapkit"), nil
}

// splitScrapbookRef separates a scrapbook reference into the directory that
// holds it and its file name. Bare names live in the data directory.
func splitScrapbookRef(ref, dataDir string) (dir, name string) {
	if filepath.Dir(ref) == "." && !strings.HasPrefix(ref, "."+string(filepath.Separator)) {
		return dataDir, ref
	}
	return filepath.Dir(ref), filepath.Base(ref)
}
