package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/store"
	"github.com/boolean-maybe/kiss/view/header"

	"github.com/rivo/tview"
)

// modal popup size
const (
	modalWidth  = 64
	modalHeight = 18
)

// RootLayout is a container view managing a persistent header and a stack of pages.
// It observes the root navigator: the base page is the root stack's top screen and every
// presented navigator becomes an overlay page on top of it.
type RootLayout struct {
	root   *tview.Flex
	header *header.HeaderWidget
	pages  *tview.Pages

	nav           controller.Navigator
	globalActions *controller.ActionRegistry
	depth         func() int
	store         store.Store
	app           *tview.Application

	active        controller.View
	renderedKey   string
	headerVisible bool

	navListenerID   int
	storeListenerID int
	onViewActivated func(controller.View)
}

// NewRootLayout creates a root layout that renders nav and observes it for changes.
// depth reports the current flow depth for the header; it may be nil.
func NewRootLayout(
	hdr *header.HeaderWidget,
	nav controller.Navigator,
	globalActions *controller.ActionRegistry,
	depth func() int,
	st store.Store,
	app *tview.Application,
) *RootLayout {
	rl := &RootLayout{
		root:          tview.NewFlex().SetDirection(tview.FlexRow),
		header:        hdr,
		pages:         tview.NewPages(),
		nav:           nav,
		globalActions: globalActions,
		depth:         depth,
		store:         st,
		app:           app,
		headerVisible: config.GetHeaderVisible(),
	}

	if obs, ok := nav.(controller.Observable); ok {
		rl.navListenerID = obs.AddListener(rl.onNavigationChange)
	}
	if st != nil {
		rl.storeListenerID = st.AddListener(rl.updateStats)
	}

	hdr.SetStat("Version", config.Version, 0)
	rl.rebuildLayout()
	rl.onNavigationChange()
	return rl
}

// SetOnViewActivated registers a callback that runs when any view becomes active.
// This is used to wire up focus setters and other view-specific setup.
func (rl *RootLayout) SetOnViewActivated(callback func(controller.View)) {
	rl.onViewActivated = callback
}

// GetPrimitive returns the root tview primitive for app.SetRoot()
func (rl *RootLayout) GetPrimitive() tview.Primitive {
	return rl.root
}

// GetContentView returns the view the user is interacting with
func (rl *RootLayout) GetContentView() controller.View {
	return rl.active
}

// Pages returns the page names, bottom first
func (rl *RootLayout) Pages() []string {
	return rl.pages.GetPageNames(false)
}

// Header returns the header widget
func (rl *RootLayout) Header() *header.HeaderWidget {
	return rl.header
}

// IsHeaderVisible reports whether the header is shown
func (rl *RootLayout) IsHeaderVisible() bool {
	return rl.headerVisible
}

// ToggleHeader shows or hides the header
func (rl *RootLayout) ToggleHeader() {
	rl.headerVisible = !rl.headerVisible
	rl.rebuildLayout()
}

// Cleanup removes all listeners
func (rl *RootLayout) Cleanup() {
	if obs, ok := rl.nav.(controller.Observable); ok && rl.navListenerID != 0 {
		obs.RemoveListener(rl.navListenerID)
		rl.navListenerID = 0
	}
	if rl.store != nil && rl.storeListenerID != 0 {
		rl.store.RemoveListener(rl.storeListenerID)
		rl.storeListenerID = 0
	}
	if rl.active != nil {
		rl.active.OnBlur()
		rl.active = nil
	}
}

// rebuildLayout rebuilds the root flex layout based on header visibility
func (rl *RootLayout) rebuildLayout() {
	rl.root.Clear()
	if rl.headerVisible {
		rl.root.AddItem(rl.header, header.TotalHeight, 0, false)
	}
	rl.root.AddItem(rl.pages, 0, 1, true)
}

// onNavigationChange re-renders the pages when the visible screens changed
func (rl *RootLayout) onNavigationChange() {
	chain := controller.PresentedChain(rl.nav)
	key := renderKey(chain)
	if key == rl.renderedKey {
		return
	}
	rl.renderedKey = key

	for _, name := range rl.pages.GetPageNames(false) {
		rl.pages.RemovePage(name)
	}

	var visible controller.View
	for i, n := range chain {
		top := n.Top()
		if top == nil || top.View == nil {
			continue
		}
		name := "base"
		page := top.View.GetPrimitive()
		if i > 0 {
			name = "popup-" + strconv.Itoa(i)
			page = popupFrame(page, n.Style())
		}
		rl.pages.AddPage(name, page, true, true)
		visible = top.View
	}

	rl.header.SetTrail(trail(chain))
	rl.activate(visible)
	rl.updateStats()
}

// activate moves focus to v, blurring the previously active view
func (rl *RootLayout) activate(v controller.View) {
	if v != rl.active {
		if rl.active != nil {
			rl.active.OnBlur()
		}
		rl.active = v
		if v == nil {
			rl.header.SetActions(rl.globalActions, nil)
			return
		}

		rl.header.SetActions(rl.globalActions, v.GetActionRegistry())
		if rl.onViewActivated != nil {
			rl.onViewActivated(v)
		}
		v.OnFocus()
		slog.Debug("view activated", "view", fmt.Sprintf("%T", v))
	}

	// pages were rebuilt, so focus is restored even when the view stayed the same
	if v != nil && rl.app != nil {
		rl.app.SetFocus(v.GetPrimitive())
	}
}

// updateStats refreshes the header stats
func (rl *RootLayout) updateStats() {
	if rl.store != nil {
		rl.header.SetStat("Favourites", strconv.Itoa(len(rl.store.GetAll())), 1)
	}
	if rl.depth != nil {
		rl.header.SetStat("Flow depth", strconv.Itoa(rl.depth()), 2)
	}
}

// popupFrame wraps a popup's top screen: centered for modal, full size otherwise
func popupFrame(p tview.Primitive, style model.PopupStyle) tview.Primitive {
	if style != model.PopupModal {
		return p
	}
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, modalHeight, 0, true).
			AddItem(nil, 0, 1, false), modalWidth, 0, true).
		AddItem(nil, 0, 1, false)
}

// renderKey fingerprints the visible screens of a chain
func renderKey(chain []controller.Navigator) string {
	ids := make([]string, 0, len(chain))
	for _, n := range chain {
		if top := n.Top(); top != nil {
			ids = append(ids, top.ID)
		}
	}
	return strings.Join(ids, "/")
}

// trail lists the short route names on every navigator of a chain
func trail(chain []controller.Navigator) [][]string {
	out := make([][]string, 0, len(chain))
	for _, n := range chain {
		screens := n.Screens()
		names := make([]string, 0, len(screens))
		for _, s := range screens {
			names = append(names, model.ShortName(s.Route))
		}
		out = append(out, names)
	}
	return out
}
