package controller

import (
	"github.com/boolean-maybe/kiss/model"
)

// Navigator is a stack of screens with at most one presented (popup) navigator on top of it.
// All mutations are synchronous; only Dismiss completion may run later.
type Navigator interface {
	// Push appends a screen
	Push(s *Screen)

	// Pop removes and returns the top screen; nil when one screen or fewer remain
	Pop() *Screen

	// PopTo removes every screen above the last occurrence of s and returns them.
	// No-op (nil) when s is not on the stack.
	PopTo(s *Screen) []*Screen

	// PopToRoot removes everything above the first screen
	PopToRoot() []*Screen

	// SetScreens replaces the whole sequence
	SetScreens(screens []*Screen)

	// Screens returns a copy of the sequence, bottom first
	Screens() []*Screen

	// Top returns the last screen or nil
	Top() *Screen

	// Present shows n on top of this navigator.
	// Returns ErrAlreadyPresenting when something is already presented.
	// onExternalDismiss fires once if n is removed without a Dismiss call.
	Present(n Navigator, onExternalDismiss func()) error

	// Dismiss removes the presented navigator; completion runs when the transition is over
	Dismiss(completion func())

	// PresentedNavigator returns the presented navigator or nil
	PresentedNavigator() Navigator

	// Style returns how this navigator is presented (PopupNone for a base navigator)
	Style() model.PopupStyle
}

// NavigatorFactory creates an independent navigator for a popup of the given style
type NavigatorFactory func(style model.PopupStyle) Navigator

// Observable is implemented by navigators that report changes to renderers
type Observable interface {
	AddListener(listener func()) int
	RemoveListener(id int)
}

// Scheduler runs a transition completion, now or on a later event-loop turn
type Scheduler func(fn func())

// Immediate runs fn synchronously
func Immediate(fn func()) {
	fn()
}

// Contains reports whether any screen of n matches route, or the top of n's presented navigator does
func Contains(n Navigator, route model.Route) bool {
	for _, s := range n.Screens() {
		if s.Route.Matches(route) {
			return true
		}
	}
	return presentedTopMatches(n, route)
}

// VisibleScreen follows the presented chain from n and returns the top screen of the last navigator
func VisibleScreen(n Navigator) *Screen {
	if n == nil {
		return nil
	}
	for {
		p := n.PresentedNavigator()
		if p == nil {
			return n.Top()
		}
		n = p
	}
}

// PresentedChain returns n followed by every navigator presented on top of it
func PresentedChain(n Navigator) []Navigator {
	var chain []Navigator
	for n != nil {
		chain = append(chain, n)
		n = n.PresentedNavigator()
	}
	return chain
}

func presentedTopMatches(n Navigator, route model.Route) bool {
	p := n.PresentedNavigator()
	if p == nil {
		return false
	}
	top := p.Top()
	return top != nil && top.Route.Matches(route)
}
