package model

import (
	"fmt"
)

// PopupStyle describes how a route is presented when it is shown as a popup
type PopupStyle int

// popup presentation styles
const (
	PopupNone PopupStyle = iota
	PopupFullScreen
	PopupModal
)

// String returns the config/log name of the style
func (s PopupStyle) String() string {
	switch s {
	case PopupNone:
		return "none"
	case PopupFullScreen:
		return "fullscreen"
	case PopupModal:
		return "modal"
	default:
		return fmt.Sprintf("PopupStyle(%d)", int(s))
	}
}

// Route identifies a navigable destination and how it should be presented.
// Routes are plain values; they are never mutated after construction.
type Route struct {
	Name  string
	Flow  bool       // route starts a separate flow (child coordinator)
	Popup PopupStyle // PopupNone for inline navigation
	Arg   string     // route payload (e.g. an asset ID); ignored by Matches
}

// EmptyRoute returns the zero route, matched only by other empty routes
func EmptyRoute() Route {
	return Route{}
}

// IsPopup reports whether the route is presented on a separate surface
func (r Route) IsPopup() bool {
	return r.Popup != PopupNone
}

// IsEmpty reports whether the route is the empty route
func (r Route) IsEmpty() bool {
	return Matches(r, EmptyRoute())
}

// Matches reports whether r and other identify the same destination
func (r Route) Matches(other Route) bool {
	return Matches(r, other)
}

// WithArg returns a copy of the route carrying the given payload
func (r Route) WithArg(arg string) Route {
	r.Arg = arg
	return r
}

// String returns a compact representation used in logs and breadcrumbs
func (r Route) String() string {
	if r.Arg == "" {
		return r.Name
	}
	return r.Name + "(" + r.Arg + ")"
}

// Matches compares two routes by name, flow-ness and popup style.
// Payloads and instance identifiers are not part of route identity.
func Matches(a, b Route) bool {
	return a.Name == b.Name && a.Flow == b.Flow && a.Popup == b.Popup
}
