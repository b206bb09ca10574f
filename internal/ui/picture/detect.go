package picture

import (
	"os"
	"strings"
)

// EnvProtocol overrides terminal detection when set.
const EnvProtocol = "NERDCLI_IMAGE_PROTOCOL"

// Detect returns the best protocol for the current terminal. Terminals with
// neither Kitty nor Sixel support get half blocks.
//
// NERDCLI_IMAGE_PROTOCOL can force a choice:
//   - "kitty", "sixel" or "blocks": use that protocol
//   - "none": draw no picture (Detect returns nil)
func Detect() ImageProtocol {
	switch strings.ToLower(os.Getenv(EnvProtocol)) {
	case NameKitty:
		return NewKittyProtocol()
	case NameSixel:
		return NewSixelProtocol()
	case NameBlocks:
		return NewBlocksProtocol()
	case NameNone:
		return nil
	}

	if IsKittySupported() {
		return NewKittyProtocol()
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return NewBlocksProtocol()
}

// IsKittySupported checks the environment for terminals speaking the Kitty
// graphics protocol.
func IsKittySupported() bool {
	// Contour inherits parent terminal variables but has no Kitty graphics.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	term := os.Getenv("TERM")
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return true
	case os.Getenv("TERM_PROGRAM") == "WezTerm":
		return true
	case os.Getenv("GHOSTTY_RESOURCES_DIR") != "":
		return true
	}

	// KONSOLE_VERSION looks like "220401"; graphics arrived in 22.04.
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(term, "kitty")
}

// IsSixelSupported checks the environment for Sixel capable terminals.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	if term == "foot" || term == "foot-extra" || term == "mlterm" {
		return true
	}
	// Only a hint: xterm needs --enable-sixel-graphics.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
