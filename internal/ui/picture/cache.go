package picture

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName  = "nerdcli/pictures"
	cacheMaxAge   = 30 * 24 * time.Hour
	pruneInterval = 24 * time.Hour
	pruneMarker   = ".pruned"
)

// Cache keeps resized pictures as PNG files so repeated runs skip decoding
// and scaling large originals.
type Cache struct {
	dir string
}

// Key identifies one resized rendition of a picture. The modification time
// invalidates entries when the original changes.
type Key struct {
	Path    string
	ModTime time.Time
	Width   int
	Height  int
}

// NewCache creates the cache below baseDir, or below the XDG cache home
// when baseDir is empty. Entries unused for 30 days are removed, at most
// once a day.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	c := &Cache{dir: dir}
	c.prune(time.Now())
	return c, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (k Key) hash() string {
	data := fmt.Sprintf("%s:%d:%d:%d", k.Path, k.ModTime.UnixNano(), k.Width, k.Height)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) file(k Key) string {
	return filepath.Join(c.dir, k.hash()+".png")
}

// Get returns the cached PNG data for k, or nil.
func (c *Cache) Get(k Key) []byte {
	if c == nil {
		return nil
	}

	path := c.file(k)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Touch so frequently shown pictures survive pruning.
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data for k.
func (c *Cache) Put(k Key, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.file(k), data, 0o600)
}

// prune removes entries older than cacheMaxAge. The marker file's mtime
// records the last run.
func (c *Cache) prune(now time.Time) {
	marker := filepath.Join(c.dir, pruneMarker)
	if info, err := os.Stat(marker); err == nil && now.Sub(info.ModTime()) < pruneInterval {
		return
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := now.Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == pruneMarker {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}

	_ = os.WriteFile(marker, nil, 0o600) //nolint:errcheck // best-effort
	_ = os.Chtimes(marker, now, now)     //nolint:errcheck // best-effort
}
