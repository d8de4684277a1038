package controller

import (
	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/model"
)

// Screen is a single entry on a Navigator: the route it was created for and the view rendering it.
// Screens are compared by identity; two screens for the same route are different screens.
type Screen struct {
	ID    string
	Route model.Route
	View  View
}

// NewScreen creates a screen with a fresh instance ID
func NewScreen(route model.Route, view View) *Screen {
	return &Screen{
		ID:    config.GenerateID(),
		Route: route,
		View:  view,
	}
}

// String returns the route and instance ID (for logs)
func (s *Screen) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Route.String() + "#" + s.ID
}

// indexOfScreen returns the index of the last occurrence of target, or -1
func indexOfScreen(screens []*Screen, target *Screen) int {
	for i := len(screens) - 1; i >= 0; i-- {
		if screens[i] == target {
			return i
		}
	}
	return -1
}
