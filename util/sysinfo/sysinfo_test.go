package sysinfo

import (
	"runtime"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	tests := []struct {
		name      string
		colorFGBG string
		want      string
	}{
		{name: "dark theme", colorFGBG: "15;0", want: "dark"},
		{name: "light theme", colorFGBG: "0;15", want: "light"},
		{name: "light theme with bg=8", colorFGBG: "0;8", want: "light"},
		{name: "dark theme with bg=7", colorFGBG: "15;7", want: "dark"},
		{name: "empty string", colorFGBG: "", want: "unknown"},
		{name: "single value", colorFGBG: "15", want: "unknown"},
		{name: "not a number", colorFGBG: "15;x", want: "unknown"},
		{name: "multiple values use last", colorFGBG: "15;0;8", want: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectTheme(tt.colorFGBG); got != tt.want {
				t.Errorf("detectTheme(%q) = %q, want %q", tt.colorFGBG, got, tt.want)
			}
		})
	}
}

func TestColorSupportFromTerminfo(t *testing.T) {
	tests := []struct {
		name        string
		colorTerm   string
		term        string
		wantSupport string
		wantCount   int
	}{
		{name: "empty TERM", wantSupport: "unknown", wantCount: 0},
		{name: "unknown TERM", term: "nonexistent-terminal-type", wantSupport: "unknown", wantCount: 0},
		{name: "truecolor overrides TERM", colorTerm: "truecolor", term: "xterm-256color", wantSupport: "truecolor", wantCount: 16777216},
		{name: "24bit is truecolor", colorTerm: "24bit", term: "xterm", wantSupport: "truecolor", wantCount: 16777216},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			support, count := colorSupportFromTerminfo(tt.colorTerm, tt.term)
			if support != tt.wantSupport {
				t.Errorf("colorSupportFromTerminfo() support = %q, want %q", support, tt.wantSupport)
			}
			if count != tt.wantCount {
				t.Errorf("colorSupportFromTerminfo() count = %d, want %d", count, tt.wantCount)
			}
		})
	}
}

func TestClassifyColors(t *testing.T) {
	tests := []struct {
		colors int
		want   string
	}{
		{colors: 0, want: "unknown"},
		{colors: 2, want: "monochrome"},
		{colors: 8, want: "monochrome"},
		{colors: 16, want: "16-color"},
		{colors: 256, want: "256-color"},
		{colors: 16777216, want: "truecolor"},
	}

	for _, tt := range tests {
		if got, _ := classifyColors(tt.colors); got != tt.want {
			t.Errorf("classifyColors(%d) = %q, want %q", tt.colors, got, tt.want)
		}
	}
}

func TestNewSystemInfo(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("COLORFGBG", "15;0")

	info := NewSystemInfo()

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", info.Architecture, runtime.GOARCH)
	}
	if info.DetectedTheme != "dark" {
		t.Errorf("DetectedTheme = %q, want dark", info.DetectedTheme)
	}
	if info.ColorSupport != "truecolor" {
		t.Errorf("ColorSupport = %q, want truecolor", info.ColorSupport)
	}
	if got, want := info.Platform(), runtime.GOOS+"/"+runtime.GOARCH; got != want {
		t.Errorf("Platform() = %q, want %q", got, want)
	}
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		name string
		info SystemInfo
		want string
	}{
		{
			name: "theme known",
			info: SystemInfo{TermType: "xterm-256color", ColorSupport: "256-color", DetectedTheme: "dark"},
			want: "xterm-256color, 256-color, dark",
		},
		{
			name: "theme unknown",
			info: SystemInfo{TermType: "xterm", ColorSupport: "16-color", DetectedTheme: "unknown"},
			want: "xterm, 16-color",
		},
		{
			name: "no TERM with dimensions",
			info: SystemInfo{ColorSupport: "unknown", DetectedTheme: "unknown", TerminalWidth: 80, TerminalHeight: 24},
			want: "unknown terminal, unknown, 80x24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSafePath(t *testing.T) {
	if got := safePath(func() string { panic("not initialized") }); got != "" {
		t.Errorf("safePath() = %q after panic, want empty", got)
	}
	if got := safePath(func() string { return "/tmp/kiss" }); got != "/tmp/kiss" {
		t.Errorf("safePath() = %q, want /tmp/kiss", got)
	}
}
