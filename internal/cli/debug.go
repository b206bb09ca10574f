package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/nerdcli/internal/config"
	"github.com/llehouerou/nerdcli/internal/quotes"
	"github.com/llehouerou/nerdcli/internal/ui/layout"
)

// debugInfo is what --debug prints after the render.
type debugInfo struct {
	cfg      *config.Config
	opts     options
	image    string
	images   []string
	quote    quotes.Selection
	terminal layout.TerminalSize
	protocol string
}

func writeDebug(w io.Writer, d debugInfo) {
	cfg, o := d.cfg, d.opts.overrides

	fmt.Fprintln(w, "*** DEBUG INFORMATION ***")
	fmt.Fprintf(w, "\nSelected image: %s\n", d.image)
	if d.quote.File != "" {
		fmt.Fprintf(w, "Selected quote file: %s (language %s)\n", d.quote.File, d.quote.Language)
	} else {
		fmt.Fprintf(w, "Selected quote: default (%s)\n", d.quote.Fallback)
	}
	fmt.Fprintf(w, "Terminal: %dx%d cells, picture protocol: %s\n",
		d.terminal.Columns, d.terminal.Rows, d.protocol)

	fmt.Fprintln(w, "\nNerd-CLI configuration:")
	fmt.Fprintf(w, "\tConfig and content path: %s\n", cfg.BaseDir)
	fmt.Fprintf(w, "\tLoaded files: %s\n", strings.Join(cfg.Files, ", "))

	fmt.Fprintln(w, "\n\tImage settings:")
	writeOption(w, "max_width_percentage", cfg.MaxWidthPercentage, o.MaxWidthPercentage)
	writeOption(w, "max_height_percentage", cfg.MaxHeightPercentage, o.MaxHeightPercentage)
	writeOption(w, "margin top", cfg.MarginTop, o.MarginTop)
	writeOption(w, "margin left", cfg.MarginLeft, o.MarginLeft)

	fmt.Fprintln(w, "\n\tQuote settings:")
	fmt.Fprintf(w, "\tshow_quotes: %t\n", cfg.ShowQuotes)
	fmt.Fprintf(w, "\tquote_languages: %q\n", strings.Join(cfg.Languages(), ", "))

	fmt.Fprintln(w, "\n\tLayout settings:")
	layoutName := &cfg.Layout
	if cfg.Layout == "" {
		layoutName = nil
	}
	writeOption(w, "layout", layoutName, o.Layout)

	fmt.Fprintln(w, "\n\tContent settings:")
	fmt.Fprintf(w, "\timage_dir: %q\n", cfg.ImageDir)
	fmt.Fprintf(w, "\tquotes_dir: %q\n", cfg.QuotesDir)
	fmt.Fprintf(w, "\timage_types: %q\n", strings.Join(cfg.ImageTypes, ", "))
	fmt.Fprintf(w, "\tinclude_folders: %q\n", strings.Join(cfg.IncludeFolders, ", "))

	fmt.Fprintln(w, "\nFound the following images:")
	for _, name := range d.images {
		size := "?"
		if info, err := os.Stat(name); err == nil {
			size = humanize.Bytes(uint64(info.Size())) //nolint:gosec // file sizes are never negative
		}
		fmt.Fprintf(w, "\t*%s (%s)\n", name, size)
	}
}

// writeOption prints a config value and, when a flag replaced it, the
// flag's value.
func writeOption[T any](w io.Writer, name string, value, override *T) {
	v := "None"
	if value != nil {
		v = fmt.Sprintf("%#v", *value)
	}
	line := fmt.Sprintf("\t%s: %s", name, v)
	if override != nil {
		line += fmt.Sprintf(" \t(overwritten: %#v)", *override)
	}
	fmt.Fprintln(w, line)
}
