package cli

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/nerdcli/internal/config"
)

// options holds the root command's flags.
type options struct {
	debug      bool
	noImage    bool
	configPath string
	imagePath  string

	maxWidth  int
	maxHeight int
	left      int
	above     int
	layout    string

	// overrides holds the flags above that were actually given.
	overrides config.Overrides
}

func (o *options) addFlags(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&o.debug, "debug", "d", false, "enable debug logging and print the effective settings")
	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "load this config file after the default locations")

	flags := root.Flags()
	flags.BoolVarP(&o.noImage, "no-image", "n", false, "do not draw the picture")
	flags.IntVarP(&o.maxWidth, "max-width-percentage", "x", 0, "override max_width_percentage from the config file")
	flags.IntVarP(&o.maxHeight, "max-height-percentage", "y", 0, "override max_height_percentage from the config file")
	flags.IntVarP(&o.left, "left", "l", 0, "override margin_left from the config file")
	flags.IntVarP(&o.above, "above", "a", 0, "override margin_top from the config file")
	flags.StringVarP(&o.layout, "layout", "s", "", "override the layout: ROW, ROW_CENTERED, COL or COL_CENTERED")
	flags.StringVarP(&o.imagePath, "image", "w", "", "show this picture instead of a random one")
}

// overridesFromFlags keeps only the flags set on the command line, so
// config values are not shadowed by flag defaults.
func overridesFromFlags(cmd *cobra.Command, opts *options) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("max-width-percentage") {
		o.MaxWidthPercentage = &opts.maxWidth
	}
	if flags.Changed("max-height-percentage") {
		o.MaxHeightPercentage = &opts.maxHeight
	}
	if flags.Changed("left") {
		o.MarginLeft = &opts.left
	}
	if flags.Changed("above") {
		o.MarginTop = &opts.above
	}
	if flags.Changed("layout") {
		o.Layout = &opts.layout
	}
	return o
}
