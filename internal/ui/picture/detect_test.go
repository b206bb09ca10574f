package picture

import "testing"

// clearTerminalEnv removes every variable detection looks at.
func clearTerminalEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvProtocol, "KITTY_WINDOW_ID", "TERM", "TERM_PROGRAM",
		"GHOSTTY_RESOURCES_DIR", "KONSOLE_VERSION", "CONTOUR_PROFILE",
	} {
		t.Setenv(k, "")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"override kitty", map[string]string{EnvProtocol: "kitty", "TERM": "foot"}, NameKitty},
		{"override sixel", map[string]string{EnvProtocol: "SIXEL", "KITTY_WINDOW_ID": "1"}, NameSixel},
		{"override blocks", map[string]string{EnvProtocol: "blocks", "KITTY_WINDOW_ID": "1"}, NameBlocks},
		{"override none", map[string]string{EnvProtocol: "none", "KITTY_WINDOW_ID": "1"}, NameNone},
		{"unknown override ignored", map[string]string{EnvProtocol: "ascii", "TERM": "xterm-kitty"}, NameKitty},
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "3"}, NameKitty},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, NameKitty},
		{"new konsole", map[string]string{"KONSOLE_VERSION": "230801"}, NameKitty},
		{"old konsole", map[string]string{"KONSOLE_VERSION": "210401", "TERM": "dumb"}, NameBlocks},
		{"contour wins over leaked ghostty", map[string]string{"CONTOUR_PROFILE": "main", "GHOSTTY_RESOURCES_DIR": "/x"}, NameSixel},
		{"foot", map[string]string{"TERM": "foot"}, NameSixel},
		{"xterm", map[string]string{"TERM": "xterm-256color"}, NameSixel},
		{"dumb terminal", map[string]string{"TERM": "dumb"}, NameBlocks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTerminalEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Name(Detect()); got != tt.want {
				t.Errorf("Detect() = %s, want %s", got, tt.want)
			}
		})
	}
}
