package model

import (
	"strings"
)

// route name prefixes, one per flow domain
const (
	MainRoutePrefix     = "MainAppRoute."
	AddAssetRoutePrefix = "AddAssetRoute."
	AppInfoRoutePrefix  = "AppInfoRoute."
)

// main app flow routes
var (
	MainAssetsList = Route{Name: MainRoutePrefix + "AssetsList"}
	MainAddAsset   = Route{Name: MainRoutePrefix + "AddAsset", Flow: true, Popup: PopupModal}
	MainAppInfo    = Route{Name: MainRoutePrefix + "AppInfo", Flow: true, Popup: PopupModal}

	MainAppInfoStandalone = Route{Name: MainRoutePrefix + "AppInfoStandalone", Popup: PopupModal}
	MainEmbeddedFlow      = Route{Name: MainRoutePrefix + "EmbeddedMainAppFlow", Flow: true}
	MainPopupFlow         = Route{Name: MainRoutePrefix + "PopupMainAppFlow", Flow: true, Popup: PopupFullScreen}

	MainRestorePopupNavigation = Route{Name: MainRoutePrefix + "RestorePopupNavigation", Popup: PopupModal}
)

// MainAssetDetails returns the asset details route for an asset
func MainAssetDetails(assetID string) Route {
	return Route{Name: MainRoutePrefix + "AssetDetails", Arg: assetID}
}

// MainEditAsset returns the edit asset route for an asset
func MainEditAsset(assetID string) Route {
	return Route{Name: MainRoutePrefix + "EditAsset", Arg: assetID}
}

// MainRestoreNavigation returns a drill-down route that restores details and edit screens at once
func MainRestoreNavigation(assetID string) Route {
	return Route{Name: MainRoutePrefix + "RestoreNavigation", Arg: assetID}
}

// add asset flow routes
var (
	AddAssetForm = Route{Name: AddAssetRoutePrefix + "AddAsset"}
)

// app info flow routes
var (
	AppInfoPage = Route{Name: AppInfoRoutePrefix + "AppInfo"}
)

// MainRoutes lists every route the main app flow declares (payload-free forms)
func MainRoutes() []Route {
	return []Route{
		MainAssetsList,
		MainAssetDetails(""),
		MainEditAsset(""),
		MainAddAsset,
		MainAppInfo,
		MainAppInfoStandalone,
		MainEmbeddedFlow,
		MainPopupFlow,
		MainRestoreNavigation(""),
		MainRestorePopupNavigation,
	}
}

// AllRoutes lists every route known to the application
func AllRoutes() []Route {
	routes := MainRoutes()
	routes = append(routes, AddAssetForm, AppInfoPage)
	return routes
}

// IsMainRoute checks if a route belongs to the main app flow
func IsMainRoute(r Route) bool {
	return strings.HasPrefix(r.Name, MainRoutePrefix)
}

// IsAddAssetRoute checks if a route belongs to the add asset flow
func IsAddAssetRoute(r Route) bool {
	return strings.HasPrefix(r.Name, AddAssetRoutePrefix)
}

// IsAppInfoRoute checks if a route belongs to the app info flow
func IsAppInfoRoute(r Route) bool {
	return strings.HasPrefix(r.Name, AppInfoRoutePrefix)
}

// ShortName strips the domain prefix from a route name (for breadcrumbs)
func ShortName(r Route) string {
	if i := strings.LastIndex(r.Name, "."); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}
