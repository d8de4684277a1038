package controller

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// InputRouter dispatches key events. It doesn't know what views do with actions,
// it only knows where to send them:
// - global actions go to the Router (back, home, quit) or the app (refresh, header)
// - everything else goes to the view of the visible screen

type InputRouter struct {
	router         *Router
	globalActions  *ActionRegistry
	reloader       Reloader
	onToggleHeader func()
}

// NewInputRouter creates an input router; reloader may be nil
func NewInputRouter(router *Router, reloader Reloader) *InputRouter {
	return &InputRouter{
		router:        router,
		globalActions: DefaultGlobalActions(),
		reloader:      reloader,
	}
}

// SetHeaderToggle registers the callback for the header toggle action
func (ir *InputRouter) SetHeaderToggle(fn func()) {
	ir.onToggleHeader = fn
}

// GlobalActions returns the actions available on every screen
func (ir *InputRouter) GlobalActions() *ActionRegistry {
	return ir.globalActions
}

// HandleInput processes a key event for the visible screen.
// It processes events through handlers in order:
// 1. Focused text inputs keep printable keys
// 2. Global actions (Esc, Home, Quit, Refresh)
// 3. View-specific actions
// Returns true if the event was handled, false otherwise.
func (ir *InputRouter) HandleInput(event *tcell.EventKey) bool {
	slog.Debug("input received", "name", event.Name(), "key", int(event.Key()), "rune", string(event.Rune()), "modifiers", int(event.Modifiers()))

	screen := ir.router.VisibleScreen()
	if screen == nil {
		return false
	}
	view := screen.View

	// focused text input handles printable keys through tview
	if capturer, ok := view.(InputCapturer); ok && capturer.IsCapturingInput() && event.Key() == tcell.KeyRune {
		return false
	}

	if action := ir.globalActions.Match(event); action != nil {
		return ir.handleGlobalAction(action.ID)
	}

	handler, ok := view.(ActionHandler)
	if !ok {
		return false
	}
	if action := handler.GetActionRegistry().Match(event); action != nil {
		return handler.HandleAction(action.ID)
	}
	return false
}

// handleGlobalAction processes actions available in all views
func (ir *InputRouter) handleGlobalAction(actionID ActionID) bool {
	switch actionID {
	case ActionBack:
		if ir.dismissSingleScreenPopup() {
			return true
		}
		ir.router.NavigateBack()
		return true
	case ActionBackToRoot:
		ir.router.NavigateBackToRoot()
		return true
	case ActionQuit:
		ir.router.Quit()
		return true
	case ActionRefresh:
		if ir.reloader == nil {
			return false
		}
		if err := ir.reloader.Reload(); err != nil {
			slog.Error("failed to reload", "error", err)
		}
		return true
	case ActionToggleHeader:
		if ir.onToggleHeader == nil {
			return false
		}
		ir.onToggleHeader()
		return true
	default:
		return false
	}
}

// dismissSingleScreenPopup treats Esc on a popup showing a single screen as the close gesture:
// the popup is removed by its presenter without a Dismiss call.
func (ir *InputRouter) dismissSingleScreenPopup() bool {
	chain := PresentedChain(ir.router.RootNavigator())
	if len(chain) < 2 {
		return false
	}
	top := chain[len(chain)-1]
	if len(top.Screens()) > 1 {
		return false
	}
	presenter, ok := chain[len(chain)-2].(ExternalDismisser)
	if !ok {
		return false
	}
	return presenter.DismissExternally()
}
