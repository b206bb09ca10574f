package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed defaults
var defaultAssets embed.FS

const defaultsRoot = "defaults"

// WriteDefaults copies the bundled config file and sample quotes into dir
// and creates the empty image directory. Existing files are left alone.
// It returns the files it wrote.
func WriteDefaults(dir string) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var written []string
	err := fs.WalkDir(defaultAssets, defaultsRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(defaultsRoot, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if _, err := os.Stat(target); err == nil {
			return nil
		}

		data, err := defaultAssets.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil { //nolint:gosec // config is meant to be user-readable
			return err
		}
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("write defaults to %s: %w", dir, err)
	}
	return written, nil
}
