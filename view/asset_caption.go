package view

import (
	"github.com/boolean-maybe/kiss/util/gradient"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// AssetCaption is a one-line banner with the asset name centered on a
// background gradient derived from the asset color
type AssetCaption struct {
	*tview.Box
	text      []rune
	gradient  gradient.Gradient
	textColor tcell.Color
}

// NewAssetCaption creates a caption for an asset color ("#RRGGBB")
func NewAssetCaption(text, colorCode string) *AssetCaption {
	return &AssetCaption{
		Box:       tview.NewBox(),
		text:      []rune(text),
		gradient:  gradient.FromHex(colorCode, captionDarken),
		textColor: tcell.ColorWhite,
	}
}

const captionDarken = 0.6

// SetText replaces the caption text and color
func (c *AssetCaption) SetText(text, colorCode string) {
	c.text = []rune(text)
	c.gradient = gradient.FromHex(colorCode, captionDarken)
}

// Draw renders the caption with the gradient brightest at the center
func (c *AssetCaption) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	textStart := 0
	if len(c.text) < width {
		textStart = (width - len(c.text)) / 2
	}

	center := float64(width) / 2.0
	for col := 0; col < width; col++ {
		// 1.0 at the center, 0.0 at the edges
		t := 1.0
		if width > 1 {
			d := (float64(col) - center) / center
			if d < 0 {
				d = -d
			}
			t = 1 - d
		}
		bg := gradient.InterpolateColor(c.gradient, t)

		char := ' '
		if i := col - textStart; i >= 0 && i < len(c.text) {
			char = c.text[i]
		}

		style := tcell.StyleDefault.Foreground(c.textColor).Background(bg)
		for row := 0; row < height; row++ {
			screen.SetContent(x+col, y+row, char, nil, style)
		}
	}
}
