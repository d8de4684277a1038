package controller

import (
	"errors"
	"fmt"

	"github.com/boolean-maybe/kiss/model"
)

var (
	// ErrUnroutable indicates a switch reached the root coordinator without finding a flow for the route
	ErrUnroutable = errors.New("no flow can show route")

	// ErrFlowDepthExceeded indicates the coordinator tree grew past the configured bound
	ErrFlowDepthExceeded = errors.New("flow depth exceeded")

	// ErrRouteNotInDomain indicates a show on a coordinator that does not claim the route
	ErrRouteNotInDomain = errors.New("route not in flow domain")

	// ErrUnsupportedRoute indicates a factory was asked to build a route it does not know
	ErrUnsupportedRoute = errors.New("unsupported route")

	// ErrNoScreens indicates a screen factory produced nothing for a route
	ErrNoScreens = errors.New("no screens for route")

	// ErrAlreadyPresenting indicates a navigator refused to present over an existing popup
	ErrAlreadyPresenting = errors.New("navigator already presenting")

	// ErrStopped indicates an operation on a coordinator that has been stopped
	ErrStopped = errors.New("flow stopped")
)

// RouteError records a failed navigation operation and the route involved
type RouteError struct {
	Op    string
	Route model.Route
	Err   error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Route.String(), e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

func routeError(op string, route model.Route, err error) error {
	return &RouteError{Op: op, Route: route, Err: err}
}
