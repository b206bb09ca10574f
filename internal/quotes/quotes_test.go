package quotes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/nerdcli/internal/pick"
)

const csQuotes = `
[[quotes]]
text = "Talk is cheap.\nShow me the code."
author = "Linus Torvalds"

[[quotes]]
text = "Premature optimization is the root of all evil."
author = "Donald Knuth"
source = "Structured Programming with go to Statements"
date = "1974"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cs.toml")
	writeFile(t, path, csQuotes)

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Quotes, 2)

	assert.Equal(t, "Talk is cheap.\nShow me the code.", f.Quotes[0].Text)
	assert.Equal(t, "Linus Torvalds", f.Quotes[0].Author)
	assert.Empty(t, f.Quotes[0].Source)
	assert.Empty(t, f.Quotes[0].Date)

	assert.Equal(t, "Donald Knuth", f.Quotes[1].Author)
	assert.Equal(t, "1974", f.Quotes[1].Date)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	writeFile(t, path, "[[quotes]\ntext = ")

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestSourceLine(t *testing.T) {
	tests := []struct {
		name  string
		quote Quote
		want  string
	}{
		{"both", Quote{Source: "SICP", Date: "1985"}, "SICP 1985"},
		{"source only", Quote{Source: "SICP"}, "SICP "},
		{"date only", Quote{Date: "1985"}, " 1985"},
		{"neither", Quote{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.quote.SourceLine())
		})
	}
}

func TestDefault(t *testing.T) {
	q := Default()
	assert.Equal(t, "The only way to do great work is to love what you do.", q.Text)
	assert.Equal(t, "Steve Jobs", q.Author)
	assert.Empty(t, q.SourceLine())
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cs.toml"), csQuotes)
	writeFile(t, filepath.Join(root, "scifi", "films.toml"), csQuotes)
	writeFile(t, filepath.Join(root, "scifi", "notes.md"), "# notes")
	writeFile(t, filepath.Join(root, "poetry", "odes.toml"), csQuotes)

	all, err := ListFiles(root, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	only, err := ListFiles(root, []string{"scifi"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "cs.toml"),
		filepath.Join(root, "scifi", "films.toml"),
	}, only)
}

func TestPicker_Pick(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "en", "cs.toml"), csQuotes)
	writeFile(t, filepath.Join(root, "de", "informatik.toml"), `
[[quotes]]
text = "Informatik"
author = "Jemand"
`)

	p := Picker{
		Root:      root,
		Languages: []string{"de", "en"},
		// language "en", first file, second quote
		Source: &pick.Sequence{Indices: []int{1, 0, 1}},
	}

	sel, err := p.Pick()
	require.NoError(t, err)
	assert.Equal(t, "en", sel.Language)
	assert.Equal(t, filepath.Join(root, "en", "cs.toml"), sel.File)
	assert.Equal(t, "Donald Knuth", sel.Quote.Author)
	assert.Empty(t, sel.Fallback)
}

func TestPicker_DefaultsToEnglish(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "en", "cs.toml"), csQuotes)

	sel, err := Picker{Root: root, Source: pick.Fixed(0)}.Pick()
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, sel.Language)
	assert.Equal(t, "Linus Torvalds", sel.Quote.Author)
}

func TestPicker_FallbackWithoutFiles(t *testing.T) {
	sel, err := Picker{Root: t.TempDir(), Languages: []string{"fr"}, Source: pick.Fixed(0)}.Pick()
	require.NoError(t, err)
	assert.Equal(t, Default(), sel.Quote)
	assert.Contains(t, sel.Fallback, `"fr"`)
}

func TestPicker_FallbackOnEmptyFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "en", "empty.toml"), "# nothing here\n")

	sel, err := Picker{Root: root, Source: pick.Fixed(0)}.Pick()
	require.NoError(t, err)
	assert.Equal(t, Default(), sel.Quote)
	assert.Contains(t, sel.Fallback, "empty.toml")
}

func TestPicker_BrokenFileIsAnError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "en", "broken.toml"), "quotes = [[[")

	_, err := Picker{Root: root, Source: pick.Fixed(0)}.Pick()
	assert.Error(t, err)
}
