package controller

import (
	"github.com/boolean-maybe/kiss/model"
)

// Domain is the set of routes one flow can handle and the factories that build them.
// The Coordinator engine supplies the navigation behaviour; a Domain only answers
// "is this mine" and "build it".
type Domain interface {
	// Name identifies the flow in logs and breadcrumbs
	Name() string

	// InitialRoute is the route shown when the flow starts
	InitialRoute() model.Route

	// CanShow reports whether the route belongs to this flow
	CanShow(route model.Route) bool

	// MakeScreens builds the screens for a non-flow route.
	// Several screens mean batch navigation (state restoration).
	MakeScreens(route model.Route, params map[string]interface{}) ([]*Screen, error)

	// MakeFlow builds (but does not start) a child coordinator bound to nav
	MakeFlow(route model.Route, nav Navigator, params map[string]interface{}) (*Coordinator, error)
}
