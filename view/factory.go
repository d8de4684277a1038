package view

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/store"
	"github.com/boolean-maybe/kiss/util/sysinfo"
)

// ViewFactory instantiates views by route, injecting required dependencies.
// It holds references to shared state (store, navigation) needed by views.
type ViewFactory struct {
	store    store.Store
	nav      Navigation
	renderer MarkdownRenderer
	sysInfo  *sysinfo.SystemInfo
}

// NewViewFactory creates a view factory
func NewViewFactory(st store.Store, nav Navigation) *ViewFactory {
	// try to create glamour renderer, fallback to plain text if fails
	var mdRenderer MarkdownRenderer
	glamourRenderer, err := NewGlamourRenderer(config.GetEffectiveTheme(), 60)
	if err != nil {
		slog.Warn("markdown renderer unavailable, using plain text", "error", err)
		mdRenderer = FallbackRenderer{}
	} else {
		mdRenderer = glamourRenderer
	}

	return &ViewFactory{
		store:    st,
		nav:      nav,
		renderer: mdRenderer,
	}
}

// SetRenderer replaces the markdown renderer
func (f *ViewFactory) SetRenderer(r MarkdownRenderer) {
	f.renderer = r
}

// SetSystemInfo sets the environment shown on the app info page
func (f *ViewFactory) SetSystemInfo(info *sysinfo.SystemInfo) {
	f.sysInfo = info
}

// CreateView instantiates the view for a screen route
func (f *ViewFactory) CreateView(route model.Route, params map[string]interface{}) (controller.View, error) {
	switch {
	case route.Matches(model.MainAssetsList):
		return NewAssetsListView(f.store, f.nav), nil

	case route.Matches(model.MainAssetDetails("")):
		return NewAssetDetailsView(f.store, f.nav, model.AssetIDFor(route, params)), nil

	case route.Matches(model.MainEditAsset("")):
		draft := model.DecodeAssetParams(params).Draft
		return NewEditAssetView(f.store, f.nav, model.AssetIDFor(route, params), draft), nil

	case route.Matches(model.AddAssetForm):
		return NewAddAssetView(f.store, f.nav), nil

	case route.Matches(model.AppInfoPage), route.Matches(model.MainAppInfoStandalone):
		return NewAppInfoView(f.renderer, route, f.sysInfo), nil

	default:
		slog.Error("no view for route", "route", route.String())
		return nil, fmt.Errorf("create view %s: %w", route.String(), controller.ErrUnsupportedRoute)
	}
}
