package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/boolean-maybe/kiss/config"
	"github.com/gdamore/tcell/v2"
)

// SystemInfo describes the client environment: platform, terminal capabilities and paths.
type SystemInfo struct {
	OS           string // runtime.GOOS
	Architecture string // runtime.GOARCH

	TermType      string // $TERM
	ColorTerm     string // $COLORTERM
	ColorFGBG     string // $COLORFGBG
	DetectedTheme string // "dark", "light", "unknown"

	// requires a running screen
	TerminalWidth  int
	TerminalHeight int

	ColorSupport string // "monochrome", "16-color", "256-color", "truecolor", "unknown"
	ColorCount   int

	ConfigDir string
	CacheDir  string
	DataFile  string
}

// NewSystemInfo collects system information using terminfo lookup (no screen needed).
func NewSystemInfo() *SystemInfo {
	info := &SystemInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		TermType:     os.Getenv("TERM"),
		ColorTerm:    os.Getenv("COLORTERM"),
		ColorFGBG:    os.Getenv("COLORFGBG"),
	}
	info.DetectedTheme = detectTheme(info.ColorFGBG)
	info.ColorSupport, info.ColorCount = colorSupportFromTerminfo(info.ColorTerm, info.TermType)

	// paths are empty when config.InitPaths() hasn't run
	info.ConfigDir = safePath(config.GetConfigDir)
	info.CacheDir = safePath(config.GetCacheDir)
	info.DataFile = safePath(config.GetDefaultDataFile)
	return info
}

// NewSystemInfoWithScreen adds the dimensions and verified colors of a running screen.
func NewSystemInfoWithScreen(screen tcell.Screen) *SystemInfo {
	info := NewSystemInfo()
	info.TerminalWidth, info.TerminalHeight = screen.Size()
	info.ColorSupport, info.ColorCount = classifyColors(screen.Colors())
	return info
}

// LogAttrs returns the information as slog key/value pairs.
func (s *SystemInfo) LogAttrs() []any {
	return []any{
		"os", s.OS,
		"arch", s.Architecture,
		"term", s.TermType,
		"theme", s.DetectedTheme,
		"color_support", s.ColorSupport,
		"color_count", s.ColorCount,
		"config_dir", s.ConfigDir,
	}
}

// Terminal returns a one-line terminal summary, e.g. "xterm-256color, 256-color, dark"
func (s *SystemInfo) Terminal() string {
	term := s.TermType
	if term == "" {
		term = "unknown terminal"
	}
	parts := []string{term, s.ColorSupport}
	if s.DetectedTheme != "unknown" {
		parts = append(parts, s.DetectedTheme)
	}
	if s.TerminalWidth > 0 && s.TerminalHeight > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", s.TerminalWidth, s.TerminalHeight))
	}
	return strings.Join(parts, ", ")
}

// Platform returns "os/arch"
func (s *SystemInfo) Platform() string {
	return s.OS + "/" + s.Architecture
}

// detectTheme parses $COLORFGBG ("fg;bg"); a background of 8 or more is light.
func detectTheme(colorFGBG string) string {
	if colorFGBG == "" {
		return "unknown"
	}

	parts := strings.Split(colorFGBG, ";")
	if len(parts) < 2 {
		return "unknown"
	}

	var bg int
	if _, err := fmt.Sscanf(parts[len(parts)-1], "%d", &bg); err != nil {
		return "unknown"
	}
	if bg >= 8 {
		return "light"
	}
	return "dark"
}

// colorSupportFromTerminfo checks $COLORTERM first, then the terminfo entry for $TERM.
func colorSupportFromTerminfo(colorTerm, term string) (string, int) {
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return "truecolor", 1 << 24
	}
	if term == "" {
		return "unknown", 0
	}

	ti, err := tcell.LookupTerminfo(term)
	if err != nil || ti == nil {
		return "unknown", 0
	}
	return classifyColors(ti.Colors)
}

func classifyColors(colors int) (string, int) {
	switch {
	case colors >= 1<<24:
		return "truecolor", colors
	case colors >= 256:
		return "256-color", colors
	case colors >= 16:
		return "16-color", colors
	case colors >= 2:
		return "monochrome", colors
	default:
		return "unknown", colors
	}
}

// safePath calls a config path getter, which panics before InitPaths.
func safePath(get func() string) (path string) {
	defer func() {
		if recover() != nil {
			path = ""
		}
	}()
	return get()
}
