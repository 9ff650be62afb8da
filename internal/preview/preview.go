// Package preview resolves a module's representative image and builds the
// remote URLs embedded in the catalog. URLs are never fetched.
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExts are the recognized preview file extensions, matched
// case-insensitively.
var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// Find returns the path of the first image in moduleDir/images, in
// lexicographic filename order. It reports false when the images
// subdirectory is missing or contains no recognized image.
func Find(moduleDir string) (string, bool) {
	imagesDir := filepath.Join(moduleDir, "images")
	stat, err := os.Stat(imagesDir)
	if err != nil || !stat.IsDir() {
		return "", false
	}

	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return "", false
	}
	// os.ReadDir returns entries sorted by filename
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		for _, ext := range imageExts {
			if strings.HasSuffix(name, ext) {
				return filepath.Join(imagesDir, entry.Name()), true
			}
		}
	}
	return "", false
}

// RawURL builds the raw-content URL for a repository file. The path is
// normalized to forward slashes and stripped of a leading "./" so platform
// separators and relative prefixes never leak into the URL.
func RawURL(repo, branch, path string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s",
		repo, branch, normalize(path))
}

// TreeURL builds the browse URL for a repository directory.
func TreeURL(repo, branch, path string) string {
	return fmt.Sprintf("https://github.com/%s/tree/%s/%s",
		repo, branch, normalize(path))
}

// normalize converts a local file path to a URL path segment.
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
