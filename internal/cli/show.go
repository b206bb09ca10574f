package cli

import (
	"bufio"
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/nerdcli/internal/config"
	"github.com/llehouerou/nerdcli/internal/errmsg"
	"github.com/llehouerou/nerdcli/internal/images"
	"github.com/llehouerou/nerdcli/internal/pick"
	"github.com/llehouerou/nerdcli/internal/quotes"
	"github.com/llehouerou/nerdcli/internal/ui/layout"
	"github.com/llehouerou/nerdcli/internal/ui/picture"
	"github.com/llehouerou/nerdcli/internal/ui/render"
	"github.com/llehouerou/nerdcli/internal/ui/screen"
	"github.com/llehouerou/nerdcli/internal/ui/styles"
)

// quoteWidth is the column count quotes are wrapped to.
const quoteWidth = layout.MinQuoteWidth

// session is everything one render talks to besides the config.
type session struct {
	out      io.Writer
	logger   *log.Logger
	terminal layout.TerminalSize
	source   pick.Source
	renderer *picture.Renderer
}

func runShow(cmd *cobra.Command, opts options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	logger.Debug("loaded configuration", "files", cfg.Files)

	out := bufio.NewWriter(cmd.OutOrStdout())
	s := session{
		out:      out,
		logger:   logger,
		terminal: screen.Size(),
		source:   pick.New(),
		renderer: newRenderer(logger, opts.noImage),
	}

	showErr := show(ctx, s, cfg, opts)
	if err := out.Flush(); err != nil && showErr == nil {
		return errmsg.Wrap(errmsg.OpTerminalWrite, err)
	}
	return showErr
}

// newRenderer picks the picture protocol for this terminal. With --no-image
// or NERDCLI_IMAGE_PROTOCOL=none the renderer draws nothing.
func newRenderer(logger *log.Logger, noImage bool) *picture.Renderer {
	if noImage {
		return picture.NewRenderer(nil, nil)
	}

	protocol := picture.Detect()
	if protocol == nil {
		logger.Debug("picture drawing disabled", "env", picture.EnvProtocol)
		return picture.NewRenderer(nil, nil)
	}
	logger.Debug("picture protocol", "name", picture.Name(protocol))

	cache, err := picture.NewCache("")
	if err != nil {
		logger.Warn("picture cache unavailable", "err", err)
		cache = nil
	}
	return picture.NewRenderer(protocol, cache)
}

// show picks a picture and a quote, lays them out and writes the result.
func show(ctx context.Context, s session, cfg *config.Config, opts options) error {
	resolved, err := cfg.Resolve(opts.overrides)
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigApply, err)
	}
	if !layout.IsKnownMode(resolved.ModeName) {
		s.logger.Warn("unknown layout, using COL", "layout", resolved.ModeName)
	}

	allImages, err := listImages(cfg)
	if err != nil {
		return errmsg.WrapWith(errmsg.OpImageList, cfg.ImageDir, err)
	}

	imagePath := opts.imagePath
	if imagePath == "" {
		if p, ok := pick.One(s.source, allImages); ok {
			imagePath = p
		} else {
			s.logger.Warn("no images found", "dir", cfg.ImageDir)
		}
	}

	var aspect layout.Aspect
	if imagePath != "" {
		aspect, err = images.ReadDimensions(imagePath)
		if err != nil {
			s.logger.Warn("cannot read picture size", "err", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	sel, err := quotes.Picker{
		Root:           cfg.QuotesDir,
		Languages:      cfg.Languages(),
		IncludeFolders: cfg.IncludeFolders,
		Source:         s.source,
	}.Pick()
	if err != nil {
		return errmsg.WrapWith(errmsg.OpQuoteLoad, sel.File, err)
	}
	if sel.Fallback != "" {
		s.logger.Warn("using the default quote", "reason", sel.Fallback)
	}
	lines := render.Wrap(sel.Quote.Text, quoteWidth)

	if _, err := io.WriteString(s.out, clearScreen); err != nil {
		return errmsg.Wrap(errmsg.OpTerminalWrite, err)
	}

	var img layout.PlacedImage
	textBottom := 0
	if cfg.ShowQuotes {
		placement := layout.Solve(layout.Input{
			Aspect:      aspect,
			Constraints: resolved.Constraints,
			Mode:        resolved.Mode,
			Terminal:    s.terminal,
			QuoteLines:  len(lines) + 3,
			ShowQuotes:  true,
		})
		img = placement.Image
		box := layout.QuoteBox{Lines: lines, X: placement.QuoteX, Y: placement.QuoteY}
		textBottom = drawQuote(s.out, quoteStyles(cfg), box, sel.Quote)
	} else {
		img = layout.Standalone(aspect, resolved.Constraints, s.terminal)
	}
	s.logger.Debug("layout",
		"mode", resolved.Mode,
		"terminal", fmt.Sprintf("%dx%d", s.terminal.Columns, s.terminal.Rows),
		"width", img.Width, "x", img.X, "y", img.Y,
	)

	imageBottom := 0
	if !opts.noImage && imagePath != "" {
		if err := s.renderer.Draw(s.out, imagePath, img, aspect); err != nil {
			s.logger.Warn(errmsg.FormatWith(errmsg.OpImageDraw, imagePath, err))
		} else if s.renderer.Protocol() != nil && img.Width > 0 {
			imageBottom = max(img.Y, 0) + layout.ImageRows(img.Width, aspect) + 1
		}
	}

	// Leave the cursor below whatever was drawn lowest.
	if bottom := max(textBottom, imageBottom); bottom > 0 {
		fmt.Fprint(s.out, cursorTo(bottom, 1))
	}

	if opts.debug {
		writeDebug(s.out, debugInfo{
			cfg:      cfg,
			opts:     opts,
			image:    imagePath,
			images:   allImages,
			quote:    sel,
			terminal: s.terminal,
			protocol: picture.Name(s.renderer.Protocol()),
		})
	}
	fmt.Fprintln(s.out)
	return nil
}

func listImages(cfg *config.Config) ([]string, error) {
	if cfg.ImageDir == "" {
		return nil, nil
	}
	return images.ListFiles(cfg.ImageDir, cfg.ImageTypes, cfg.IncludeFolders)
}

func quoteStyles(cfg *config.Config) styles.QuoteStyles {
	return styles.NewQuoteStyles(colorOf(cfg.QuoteColor), colorOf(cfg.SourceColor), colorOf(cfg.AuthorColor))
}

func colorOf(c *config.Color) color.Color {
	if c == nil {
		return nil
	}
	return *c
}
