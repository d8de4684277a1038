package header

import (
	"strings"

	"github.com/boolean-maybe/kiss/config"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// breadcrumb separators: pushed screens, then presented surfaces
const (
	pushSeparator    = " › "
	presentSeparator = " ⇡ "
	ellipsis         = "…"
)

// Breadcrumbs joins the screen names of each navigator in a presented chain,
// bottom first. When wider than maxWidth the oldest part is cut.
func Breadcrumbs(chain [][]string, maxWidth int) string {
	parts := make([]string, 0, len(chain))
	for _, names := range chain {
		if len(names) > 0 {
			parts = append(parts, strings.Join(names, pushSeparator))
		}
	}
	trail := strings.Join(parts, presentSeparator)

	if maxWidth <= 0 {
		return ""
	}
	if w := runewidth.StringWidth(trail); w > maxWidth {
		trail = runewidth.TruncateLeft(trail, w-maxWidth+runewidth.StringWidth(ellipsis), ellipsis)
	}
	return trail
}

// colorizeBreadcrumbs highlights the last crumb of a plain trail
func colorizeBreadcrumbs(trail string) string {
	if trail == "" {
		return ""
	}
	colors := config.GetColors()
	cut := strings.LastIndex(trail, pushSeparator)
	sepLen := len(pushSeparator)
	if i := strings.LastIndex(trail, presentSeparator); i > cut {
		cut, sepLen = i, len(presentSeparator)
	}
	if cut < 0 {
		return colors.HeaderBreadcrumbActive + tview.Escape(trail)
	}
	return colors.HeaderBreadcrumb + tview.Escape(trail[:cut+sepLen]) + colors.HeaderBreadcrumbActive + tview.Escape(trail[cut+sepLen:])
}
