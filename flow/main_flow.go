package flow

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
)

// MainFlow is the favourites flow: list, details and edit screens, plus the
// entry points into every other flow. It can nest itself inline or on a popup.
type MainFlow struct {
	views  ViewMaker
	routes []model.Route
}

// NewMainFlow creates the main flow domain
func NewMainFlow(views ViewMaker) *MainFlow {
	return &MainFlow{views: views, routes: model.MainRoutes()}
}

func (f *MainFlow) Name() string { return MainFlowName }

func (f *MainFlow) InitialRoute() model.Route { return model.MainAssetsList }

func (f *MainFlow) CanShow(route model.Route) bool {
	return claims(f.routes, route)
}

// MakeScreens builds the screens of a plain main route. Restoration routes
// produce several screens at once.
func (f *MainFlow) MakeScreens(route model.Route, params map[string]interface{}) ([]*controller.Screen, error) {
	routes, params, err := f.expand(route, params)
	if err != nil {
		return nil, err
	}

	screens := make([]*controller.Screen, 0, len(routes))
	for _, r := range routes {
		screen, err := makeScreen(f.views, r, params)
		if err != nil {
			return nil, err
		}
		screens = append(screens, screen)
	}
	return screens, nil
}

// expand resolves route into the screen routes it shows and the params their views get
func (f *MainFlow) expand(route model.Route, params map[string]interface{}) ([]model.Route, map[string]interface{}, error) {
	switch {
	case route.Matches(model.MainAssetsList), route.Matches(model.MainAppInfoStandalone):
		return []model.Route{route}, params, nil

	case route.Matches(model.MainRestorePopupNavigation):
		return []model.Route{model.MainAppInfoStandalone, model.MainAppInfoStandalone}, params, nil
	}

	id := model.AssetIDFor(route, params)
	if !route.Matches(model.MainAssetDetails("")) && !route.Matches(model.MainEditAsset("")) &&
		!route.Matches(model.MainRestoreNavigation("")) {
		return nil, nil, unsupported("make screens", route)
	}
	if id == "" {
		return nil, nil, fmt.Errorf("make screens %s: %w", route.String(), ErrMissingAssetID)
	}

	decoded := model.DecodeAssetParams(params)
	params = model.EncodeAssetParams(model.AssetParams{AssetID: id, Draft: decoded.Draft})

	switch {
	case route.Matches(model.MainAssetDetails("")):
		return []model.Route{model.MainAssetDetails(id)}, params, nil
	case route.Matches(model.MainEditAsset("")):
		return []model.Route{model.MainEditAsset(id)}, params, nil
	default:
		slog.Debug("restoring navigation", "asset", id)
		return []model.Route{model.MainAssetDetails(id), model.MainEditAsset(id)}, params, nil
	}
}

// MakeFlow builds the child flow for a main flow route
func (f *MainFlow) MakeFlow(route model.Route, nav controller.Navigator, _ map[string]interface{}) (*controller.Coordinator, error) {
	var domain controller.Domain
	switch {
	case route.Matches(model.MainAddAsset):
		domain = NewAddAssetFlow(f.views)
	case route.Matches(model.MainAppInfo):
		domain = NewAppInfoFlow(f.views)
	case route.Matches(model.MainEmbeddedFlow), route.Matches(model.MainPopupFlow):
		domain = NewMainFlow(f.views)
	default:
		return nil, unsupported("make flow", route)
	}
	return controller.NewCoordinator(domain, nav), nil
}
