package controller

import (
	"errors"
	"fmt"

	"github.com/boolean-maybe/kiss/model"
)

// ValidateRoutes checks at composition time that every route is claimed by at least one
// domain and that every domain claims its own initial route.
func ValidateRoutes(domains []Domain, routes []model.Route) error {
	var errs []error

	for _, d := range domains {
		if !d.CanShow(d.InitialRoute()) {
			errs = append(errs, fmt.Errorf("flow %s: %w", d.Name(),
				routeError("validate", d.InitialRoute(), ErrRouteNotInDomain)))
		}
	}

	for _, route := range routes {
		claimed := false
		for _, d := range domains {
			if d.CanShow(route) {
				claimed = true
				break
			}
		}
		if !claimed {
			errs = append(errs, routeError("validate", route, ErrUnroutable))
		}
	}

	return errors.Join(errs...)
}
