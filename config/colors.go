package config

// Color and style definitions for the UI: tcell colors, tview color tags.

import (
	"github.com/gdamore/tcell/v2"
)

// ColorConfig holds all color and style definitions per view
type ColorConfig struct {
	// Screen frame colors
	ScreenBorder        tcell.Color
	ScreenTitle         tcell.Color
	PopupBorder         tcell.Color
	PopupTitle          tcell.Color
	PopupBackground     tcell.Color
	ListSelectedText    tcell.Color
	ListSelectedBackgnd tcell.Color

	// Asset rendering
	AssetIDColor    string // tview color string like "[#5fafff]"
	AssetNameColor  string
	AssetLabelColor string
	AssetValueColor string

	// Form colors (edit asset)
	InputFieldBackgroundColor tcell.Color
	InputFieldTextColor       tcell.Color
	FormLabelColor            tcell.Color
	FormButtonBackground      tcell.Color

	// Header view colors
	HeaderBreadcrumb       string // tview color string like "[#5fafff]"
	HeaderBreadcrumbActive string
	HeaderKeyBinding       string
	HeaderKeyText          string
	HeaderViewKeyBinding   string
	HeaderViewKeyText      string
	HeaderSeparator        string
	HeaderInfoLabel        string
	HeaderInfoValue        string
}

// DefaultColors returns the default color configuration
func DefaultColors() *ColorConfig {
	return &ColorConfig{
		ScreenBorder:        tcell.ColorGray,
		ScreenTitle:         tcell.PaletteColor(153), // Sky Blue (ANSI 153)
		PopupBorder:         tcell.ColorYellow,
		PopupTitle:          tcell.ColorYellow,
		PopupBackground:     tcell.ColorDefault,
		ListSelectedText:    tcell.PaletteColor(117), // Light Blue (ANSI 117)
		ListSelectedBackgnd: tcell.PaletteColor(33),  // Blue (ANSI 33)

		AssetIDColor:    "[#5fafff]",
		AssetNameColor:  "[#b8b8b8]",
		AssetLabelColor: "[green]",
		AssetValueColor: "[#8c92ac]",

		InputFieldBackgroundColor: tcell.ColorDefault,
		InputFieldTextColor:       tcell.ColorWhite,
		FormLabelColor:            tcell.ColorGreen,
		FormButtonBackground:      tcell.ColorNavy,

		HeaderBreadcrumb:       "[#808080]",
		HeaderBreadcrumbActive: "[yellow]",
		HeaderKeyBinding:       "[yellow]",
		HeaderKeyText:          "[white]",
		HeaderViewKeyBinding:   "[#5fafff]",
		HeaderViewKeyText:      "[#b8b8b8]",
		HeaderSeparator:        "[#606060]",
		HeaderInfoLabel:        "[orange]",
		HeaderInfoValue:        "[#b8b8b8]",
	}
}

// Global color config instance
var globalColors *ColorConfig
var colorsInitialized bool

// GetColors returns the global color configuration with theme-aware overrides
func GetColors() *ColorConfig {
	if !colorsInitialized {
		globalColors = DefaultColors()
		if GetEffectiveTheme() == "light" {
			globalColors.InputFieldTextColor = tcell.ColorBlack
			globalColors.HeaderKeyText = "[black]"
			globalColors.AssetNameColor = "[#303030]"
		}
		colorsInitialized = true
	}
	return globalColors
}

// SetColors sets a custom color configuration
func SetColors(colors *ColorConfig) {
	globalColors = colors
	colorsInitialized = colors != nil
}
