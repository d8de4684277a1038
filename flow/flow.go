// Package flow defines the route domains of the application: which routes each
// flow claims and how their screens and child flows are built. Navigation itself
// is done by controller.Coordinator.
package flow

import (
	"errors"
	"fmt"

	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
)

// flow names, used in logs and breadcrumbs
const (
	MainFlowName     = "main"
	AddAssetFlowName = "addAsset"
	AppInfoFlowName  = "appInfo"
)

// ErrMissingAssetID is returned when an asset screen is requested without an asset
var ErrMissingAssetID = errors.New("route needs an asset id")

// ViewMaker builds the view rendering a screen route
type ViewMaker interface {
	CreateView(route model.Route, params map[string]interface{}) (controller.View, error)
}

// Domains returns every flow domain of the application, root first
func Domains(views ViewMaker) []controller.Domain {
	return []controller.Domain{
		NewMainFlow(views),
		NewAddAssetFlow(views),
		NewAppInfoFlow(views),
	}
}

// claims reports whether route matches one of routes
func claims(routes []model.Route, route model.Route) bool {
	for _, r := range routes {
		if r.Matches(route) {
			return true
		}
	}
	return false
}

// makeScreen builds one screen for route through views
func makeScreen(views ViewMaker, route model.Route, params map[string]interface{}) (*controller.Screen, error) {
	v, err := views.CreateView(route, params)
	if err != nil {
		return nil, fmt.Errorf("create view %s: %w", route.String(), err)
	}
	if v == nil {
		return nil, fmt.Errorf("create view %s: %w", route.String(), controller.ErrUnsupportedRoute)
	}
	return controller.NewScreen(route, v), nil
}

func unsupported(op string, route model.Route) error {
	return &controller.RouteError{Op: op, Route: route, Err: controller.ErrUnsupportedRoute}
}

// pageFlow is a flow made of a single screen
type pageFlow struct {
	name  string
	page  model.Route
	views ViewMaker
}

func (f *pageFlow) Name() string              { return f.name }
func (f *pageFlow) InitialRoute() model.Route { return f.page }

func (f *pageFlow) CanShow(route model.Route) bool {
	return f.page.Matches(route)
}

func (f *pageFlow) MakeScreens(route model.Route, params map[string]interface{}) ([]*controller.Screen, error) {
	if !f.page.Matches(route) {
		return nil, unsupported("make screens", route)
	}
	screen, err := makeScreen(f.views, route, params)
	if err != nil {
		return nil, err
	}
	return []*controller.Screen{screen}, nil
}

func (f *pageFlow) MakeFlow(route model.Route, _ controller.Navigator, _ map[string]interface{}) (*controller.Coordinator, error) {
	return nil, unsupported("make flow", route)
}

// AddAssetFlow is the popup flow picking favourites from the catalog
type AddAssetFlow struct {
	pageFlow
}

// NewAddAssetFlow creates the add asset flow domain
func NewAddAssetFlow(views ViewMaker) *AddAssetFlow {
	return &AddAssetFlow{pageFlow{name: AddAssetFlowName, page: model.AddAssetForm, views: views}}
}

// AppInfoFlow is the popup flow describing the application
type AppInfoFlow struct {
	pageFlow
}

// NewAppInfoFlow creates the app info flow domain
func NewAppInfoFlow(views ViewMaker) *AppInfoFlow {
	return &AppInfoFlow{pageFlow{name: AppInfoFlowName, page: model.AppInfoPage, views: views}}
}
