// Package quotes finds, parses and picks quotes from per-language TOML files.
package quotes

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/nerdcli/internal/scan"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Quote is one entry of a quote file.
type Quote struct {
	Text   string `koanf:"text"`
	Author string `koanf:"author"`
	Source string `koanf:"source"` // optional
	Date   string `koanf:"date"`   // optional
}

// File is the content of a quote file: an array of [[quotes]] tables.
type File struct {
	Quotes []Quote `koanf:"quotes"`
}

// Default is shown when nothing else can be found.
func Default() Quote {
	return Quote{
		Text:   "The only way to do great work is to love what you do.",
		Author: "Steve Jobs",
	}
}

// SourceLine joins source and date as "<source> <date>".
// It is empty when both are empty.
func (q Quote) SourceLine() string {
	if q.Source == "" && q.Date == "" {
		return ""
	}
	return q.Source + " " + q.Date
}

// LoadFile parses one quote file.
func LoadFile(path string) (*File, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parse quote file %s: %w", path, err)
	}

	var f File
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("decode quote file %s: %w", path, err)
	}
	return &f, nil
}

// ListFiles returns every .toml file below root, honoring includeFolders
// for subdirectories.
func ListFiles(root string, includeFolders []string) ([]string, error) {
	return scan.Files(root, includeFolders, func(path string) bool {
		return scan.HasExtension(path, []string{"toml"})
	})
}
