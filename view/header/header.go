package header

import (
	"github.com/boolean-maybe/kiss/controller"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	// HeaderHeight is the number of rows of the key help grid and stats
	HeaderHeight = 5
	// HeaderColumnSpacing separates help grid columns
	HeaderColumnSpacing = 2
	// TotalHeight is the height of the whole header, breadcrumbs included
	TotalHeight = HeaderHeight + 1

	statsWidth = 24

	// breadcrumb width used before the header is first drawn
	defaultCrumbsWidth = 80
)

// HeaderWidget shows where the user is and what keys do: breadcrumbs on top,
// stats and the key help grid below
type HeaderWidget struct {
	*tview.Flex
	crumbs *breadcrumbBar
	stats  *StatsWidget
	help   *ContextHelpWidget
}

// NewHeaderWidget creates the header
func NewHeaderWidget() *HeaderWidget {
	h := &HeaderWidget{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		crumbs: &breadcrumbBar{Box: tview.NewBox()},
		stats:  NewStatsWidget(),
		help:   NewContextHelpWidget(),
	}
	body := tview.NewFlex().
		AddItem(h.stats, statsWidth, 0, false).
		AddItem(h.help, 0, 1, false)
	h.AddItem(h.crumbs, 1, 0, false).
		AddItem(body, HeaderHeight, 0, false)
	return h
}

// SetTrail sets the screen names shown as breadcrumbs, one slice per navigator
func (h *HeaderWidget) SetTrail(chain [][]string) {
	h.crumbs.trail = chain
}

// SetActions updates the key help grid
func (h *HeaderWidget) SetActions(global, view *controller.ActionRegistry) {
	var globalActions, viewActions []controller.Action
	if global != nil {
		globalActions = global.GetHeaderActions()
	}
	if view != nil {
		viewActions = view.GetHeaderActions()
	}
	h.help.SetActions(globalActions, viewActions)
}

// SetStat updates a header stat
func (h *HeaderWidget) SetStat(key, value string, priority int) {
	h.stats.SetStat(key, value, priority)
}

// Stats returns the stats widget
func (h *HeaderWidget) Stats() *StatsWidget {
	return h.stats
}

// BreadcrumbText returns the breadcrumbs as last drawn, without color tags
func (h *HeaderWidget) BreadcrumbText() string {
	return " " + Breadcrumbs(h.crumbs.trail, h.crumbs.textWidth())
}

// breadcrumbBar draws the trail cut to its own width
type breadcrumbBar struct {
	*tview.Box
	trail [][]string
	width int // inner width at the last draw, 0 before
}

func (b *breadcrumbBar) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
	x, y, width, height := b.GetInnerRect()
	b.width = width
	if width <= 0 || height <= 0 {
		return
	}
	text := " " + colorizeBreadcrumbs(Breadcrumbs(b.trail, b.textWidth()))
	tview.Print(screen, text, x, y, width, tview.AlignLeft, tcell.ColorDefault)
}

// textWidth leaves a leading space
func (b *breadcrumbBar) textWidth() int {
	if b.width <= 0 {
		return defaultCrumbsWidth - 1
	}
	return b.width - 1
}
