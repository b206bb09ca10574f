// Package scan walks content directories for the image and quote finders.
package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// Files returns the regular files below root accepted by keep, in directory
// order. When includeFolders is not empty, only subdirectories matching one
// of its entries are descended into.
func Files(root string, includeFolders []string, keep func(path string) bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []string
	if err := walk(root, includeFolders, keep, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func walk(dir string, includeFolders []string, keep func(string) bool, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if !FolderIncluded(path, includeFolders) {
				continue
			}
			if err := walk(path, includeFolders, keep, files); err != nil {
				return err
			}
			continue
		}
		if keep(path) {
			*files = append(*files, path)
		}
	}
	return nil
}

// FolderIncluded reports whether dir ends with one of the include entries,
// compared component-wise. An empty list includes everything.
func FolderIncluded(dir string, includeFolders []string) bool {
	if len(includeFolders) == 0 {
		return true
	}
	slashed := "/" + filepath.ToSlash(filepath.Clean(dir))
	for _, f := range includeFolders {
		f = strings.Trim(filepath.ToSlash(f), "/")
		if f == "" {
			continue
		}
		if strings.HasSuffix(slashed, "/"+f) {
			return true
		}
	}
	return false
}

// HasExtension reports whether path's extension, without the dot and
// ignoring case, is in exts. An empty list accepts every file.
func HasExtension(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.EqualFold(strings.TrimPrefix(e, "."), ext) {
			return true
		}
	}
	return false
}
