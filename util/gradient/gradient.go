package gradient

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Gradient is a pair of RGB endpoints
type Gradient struct {
	Start [3]int
	End   [3]int
}

// Neutral is used for assets without a usable color
var Neutral = Gradient{Start: [3]int{0x4a, 0x4a, 0x4a}, End: [3]int{0x8a, 0x8a, 0x8a}}

// ParseHex reads a "#RRGGBB" color
func ParseHex(hex string) ([3]int, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return [3]int{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [3]int{}, false
	}
	return [3]int{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, true
}

// InterpolateRGB performs linear RGB interpolation with proper rounding.
// t should be in [0, 1] range (automatically clamped).
func InterpolateRGB(from, to [3]int, t float64) [3]int {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	return [3]int{
		int(math.Round(float64(from[0]) + t*float64(to[0]-from[0]))),
		int(math.Round(float64(from[1]) + t*float64(to[1]-from[1]))),
		int(math.Round(float64(from[2]) + t*float64(to[2]-from[2]))),
	}
}

// InterpolateColor is a convenience wrapper returning tcell.Color.
func InterpolateColor(g Gradient, t float64) tcell.Color {
	rgb := InterpolateRGB(g.Start, g.End, t)
	//nolint:gosec // G115: RGB values are 0-255, safe to convert to int32
	return tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2]))
}

// ClampRGB ensures RGB value stays within [0, 255].
func ClampRGB(value int) int {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return value
}

// LightenRGB increases brightness toward white by ratio [0, 1].
func LightenRGB(rgb [3]int, ratio float64) [3]int {
	return [3]int{
		ClampRGB(rgb[0] + int(math.Round(float64(255-rgb[0])*ratio))),
		ClampRGB(rgb[1] + int(math.Round(float64(255-rgb[1])*ratio))),
		ClampRGB(rgb[2] + int(math.Round(float64(255-rgb[2])*ratio))),
	}
}

// DarkenRGB decreases brightness toward black by ratio [0, 1].
func DarkenRGB(rgb [3]int, ratio float64) [3]int {
	return [3]int{
		ClampRGB(int(math.Round(float64(rgb[0]) * (1 - ratio)))),
		ClampRGB(int(math.Round(float64(rgb[1]) * (1 - ratio)))),
		ClampRGB(int(math.Round(float64(rgb[2]) * (1 - ratio)))),
	}
}

// FromHex derives a gradient from an asset color, darker at the start.
// Unparseable colors give Neutral.
func FromHex(hex string, ratio float64) Gradient {
	rgb, ok := ParseHex(hex)
	if !ok {
		return Neutral
	}
	return Gradient{Start: DarkenRGB(rgb, ratio), End: rgb}
}

// RenderGradientText renders text with character-by-character gradient coloring.
func RenderGradientText(text string, g Gradient) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, char := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		rgb := InterpolateRGB(g.Start, g.End, t)
		fmt.Fprintf(&builder, "[#%02x%02x%02x]%c", rgb[0], rgb[1], rgb[2], char)
	}
	builder.WriteString("[-]")
	return builder.String()
}
