package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName        = "nerdcli"
	configFileName = "nerdcli.toml"
)

var (
	// ErrNotFound is returned when no configuration file exists.
	ErrNotFound = errors.New("no configuration file found")
	// ErrMissingValue is returned when a required setting has neither a
	// config value nor a command-line override.
	ErrMissingValue = errors.New("missing configuration value")
	// ErrInvalidValue is returned for settings outside their allowed range.
	ErrInvalidValue = errors.New("invalid configuration value")
)

type Config struct {
	MaxWidthPercentage  *int   `koanf:"max_width_percentage"`
	MaxHeightPercentage *int   `koanf:"max_height_percentage"`
	Layout              string `koanf:"layout"` // "ROW", "ROW_CENTERED", "COL" or "COL_CENTERED"
	ShowQuotes          bool   `koanf:"show_quotes"`
	MarginLeft          *int   `koanf:"margin_left"`
	MarginTop           *int   `koanf:"margin_top"` // may be negative

	ImageDir       string   `koanf:"image_dir"`
	QuotesDir      string   `koanf:"quotes_dir"`
	QuoteLanguages []string `koanf:"quote_languages"` // subdirectories of quotes_dir
	ImageTypes     []string `koanf:"image_types"`     // extensions without the dot
	IncludeFolders []string `koanf:"include_folders"` // empty means every folder

	// Colors default to the built-in theme when absent.
	QuoteColor  *Color `koanf:"quote_color"`
	SourceColor *Color `koanf:"source_color"`
	AuthorColor *Color `koanf:"author_color"`

	// BaseDir is the directory of the last config file loaded. Relative
	// content directories are resolved against it.
	BaseDir string `koanf:"-"`
	// Files lists the config files that were loaded, in order.
	Files []string `koanf:"-"`
}

// Color is an RGB triple.
type Color struct {
	R uint8 `koanf:"r"`
	G uint8 `koanf:"g"`
	B uint8 `koanf:"b"`
}

// RGBA implements color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Load reads the default config locations and, when explicit is not empty,
// that file last. A missing explicit file is an error.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file %s: %w", explicit, err)
		}
		paths = append(paths, explicit)
	}
	return loadFrom(paths)
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			loaded = append(loaded, path)
		}
	}

	if len(loaded) == 0 {
		return nil, fmt.Errorf("%w (searched: %s)", ErrNotFound, strings.Join(paths, ", "))
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", loaded[len(loaded)-1], err)
	}

	cfg.Files = loaded
	cfg.BaseDir = DefaultDir()
	if abs, err := filepath.Abs(filepath.Dir(loaded[len(loaded)-1])); err == nil {
		cfg.BaseDir = abs
	}

	cfg.ImageDir = cfg.resolveDir(cfg.ImageDir)
	cfg.QuotesDir = cfg.resolveDir(cfg.QuotesDir)

	for i, ext := range cfg.ImageTypes {
		cfg.ImageTypes[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}

	return cfg, nil
}

// DefaultDir is the per-user configuration directory.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// Paths returns the candidate config files in load order.
func Paths() []string {
	return getConfigPaths()
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/nerdcli/nerdcli.toml
		filepath.Join(DefaultDir(), configFileName),
		// 2. ./nerdcli.toml (pwd, highest priority)
		configFileName,
	}
}

func (c *Config) resolveDir(dir string) string {
	if dir == "" {
		return ""
	}
	dir = expandPath(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.BaseDir, dir)
	}
	return dir
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Languages returns the configured quote languages, defaulting to English.
func (c *Config) Languages() []string {
	if len(c.QuoteLanguages) == 0 {
		return []string{"en"}
	}
	return c.QuoteLanguages
}
