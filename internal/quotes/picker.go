package quotes

import (
	"fmt"
	"path/filepath"

	"github.com/llehouerou/nerdcli/internal/pick"
)

// Picker chooses a language, then a quote file of that language, then one
// quote of that file, each uniformly.
type Picker struct {
	Root           string
	Languages      []string
	IncludeFolders []string
	Source         pick.Source
}

// Selection is a picked quote and where it came from.
type Selection struct {
	Quote    Quote
	Language string
	File     string
	// Fallback explains why the default quote was used. Empty otherwise.
	Fallback string
}

// Pick returns a quote. Missing directories and empty files fall back to the
// default quote; a file that cannot be parsed is an error.
func (p Picker) Pick() (Selection, error) {
	lang, ok := pick.One(p.Source, p.Languages)
	if !ok {
		lang = DefaultLanguage
	}
	sel := Selection{Language: lang}

	files, err := ListFiles(filepath.Join(p.Root, lang), p.IncludeFolders)
	if err != nil || len(files) == 0 {
		sel.Quote = Default()
		sel.Fallback = fmt.Sprintf("no quote files found for language %q", lang)
		return sel, nil
	}

	path, _ := pick.One(p.Source, files)
	sel.File = path

	f, err := LoadFile(path)
	if err != nil {
		return sel, err
	}

	q, ok := pick.One(p.Source, f.Quotes)
	if !ok {
		sel.Quote = Default()
		sel.Fallback = "no quotes found in " + path
		return sel, nil
	}
	sel.Quote = q
	return sel, nil
}
