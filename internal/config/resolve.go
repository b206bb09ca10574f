package config

import (
	"fmt"

	"github.com/llehouerou/nerdcli/internal/ui/layout"
)

// Overrides holds command-line values that take precedence over the file.
// A nil field means the flag was not given.
type Overrides struct {
	MaxWidthPercentage  *int
	MaxHeightPercentage *int
	MarginLeft          *int
	MarginTop           *int
	Layout              *string
}

// Resolved is the fully-determined input for the layout solver.
type Resolved struct {
	Constraints layout.Constraints
	Mode        layout.Mode
	ModeName    string
}

// Resolve merges overrides into the config values. Every numeric setting and
// the layout must come from one of the two.
func (c *Config) Resolve(o Overrides) (Resolved, error) {
	widthPct, err := pickInt("max_width_percentage", o.MaxWidthPercentage, c.MaxWidthPercentage)
	if err != nil {
		return Resolved{}, err
	}
	heightPct, err := pickInt("max_height_percentage", o.MaxHeightPercentage, c.MaxHeightPercentage)
	if err != nil {
		return Resolved{}, err
	}
	marginLeft, err := pickInt("margin_left", o.MarginLeft, c.MarginLeft)
	if err != nil {
		return Resolved{}, err
	}
	marginTop, err := pickInt("margin_top", o.MarginTop, c.MarginTop)
	if err != nil {
		return Resolved{}, err
	}

	modeName := c.Layout
	if o.Layout != nil {
		modeName = *o.Layout
	}
	if modeName == "" {
		return Resolved{}, fmt.Errorf("%w: layout", ErrMissingValue)
	}

	if err := checkPercent("max_width_percentage", widthPct); err != nil {
		return Resolved{}, err
	}
	if err := checkPercent("max_height_percentage", heightPct); err != nil {
		return Resolved{}, err
	}
	if marginLeft < 0 {
		return Resolved{}, fmt.Errorf("%w: margin_left must not be negative, got %d", ErrInvalidValue, marginLeft)
	}

	return Resolved{
		Constraints: layout.Constraints{
			MaxWidthPercent:  widthPct,
			MaxHeightPercent: heightPct,
			MarginLeft:       marginLeft,
			MarginTop:        marginTop,
		},
		Mode:     layout.ParseMode(modeName),
		ModeName: modeName,
	}, nil
}

func pickInt(key string, override, value *int) (int, error) {
	if override != nil {
		return *override, nil
	}
	if value != nil {
		return *value, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingValue, key)
}

func checkPercent(key string, v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %d", ErrInvalidValue, key, v)
	}
	return nil
}
