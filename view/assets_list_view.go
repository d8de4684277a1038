package view

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/store"
	"github.com/boolean-maybe/kiss/util/gradient"

	"github.com/rivo/tview"
)

// AssetsListView shows the favourites and is the entry point into every other screen and flow
type AssetsListView struct {
	root     *tview.Flex
	list     *tview.List
	store    store.Store
	nav      Navigation
	registry *controller.ActionRegistry

	assets     []*asset.Asset
	listenerID int
}

// NewAssetsListView creates the favourites list
func NewAssetsListView(st store.Store, nav Navigation) *AssetsListView {
	colors := config.GetColors()

	list := tview.NewList().ShowSecondaryText(false)
	list.SetHighlightFullLine(true)
	list.SetSelectedTextColor(colors.ListSelectedText)
	list.SetSelectedBackgroundColor(colors.ListSelectedBackgnd)
	list.SetBorder(true).SetTitle(" Favourites ")
	list.SetBorderColor(colors.ScreenBorder)
	list.SetTitleColor(colors.ScreenTitle)

	v := &AssetsListView{
		root:     tview.NewFlex().SetDirection(tview.FlexRow).AddItem(list, 0, 1, true),
		list:     list,
		store:    st,
		nav:      nav,
		registry: controller.AssetsListActions(),
	}
	v.refresh()
	return v
}

func (v *AssetsListView) GetPrimitive() tview.Primitive {
	return v.root
}

func (v *AssetsListView) GetActionRegistry() *controller.ActionRegistry {
	return v.registry
}

// OnFocus subscribes to store changes and re-reads the favourites
func (v *AssetsListView) OnFocus() {
	if v.listenerID == 0 {
		v.listenerID = v.store.AddListener(v.refresh)
	}
	v.refresh()
}

// OnBlur stops listening to the store
func (v *AssetsListView) OnBlur() {
	if v.listenerID != 0 {
		v.store.RemoveListener(v.listenerID)
		v.listenerID = 0
	}
}

// SelectedAsset returns the highlighted favourite, nil when the list is empty
func (v *AssetsListView) SelectedAsset() *asset.Asset {
	i := v.list.GetCurrentItem()
	if i < 0 || i >= len(v.assets) {
		return nil
	}
	return v.assets[i]
}

// Assets returns the favourites as last shown
func (v *AssetsListView) Assets() []*asset.Asset {
	return v.assets
}

func (v *AssetsListView) refresh() {
	var selectedID string
	if a := v.SelectedAsset(); a != nil {
		selectedID = a.ID
	}
	v.assets = v.store.GetAll()
	v.render(selectedID)
}

func (v *AssetsListView) render(selectedID string) {
	colors := config.GetColors()
	v.list.Clear()
	if len(v.assets) == 0 {
		v.list.AddItem(colors.AssetNameColor+"No favourites yet, press a to add some", "", 0, nil)
		return
	}

	current := 0
	for i, a := range v.assets {
		name := gradient.RenderGradientText(a.Name, gradient.FromHex(a.ColorCode, 0.4))
		v.list.AddItem(fmt.Sprintf("%s%-4s[-] %s", colors.AssetIDColor, a.ID, name), "", 0, nil)
		if a.ID == selectedID {
			current = i
		}
	}
	v.list.SetCurrentItem(current)
}

// HandleAction runs list actions
func (v *AssetsListView) HandleAction(id controller.ActionID) bool {
	switch id {
	case controller.ActionNavUp:
		if i := v.list.GetCurrentItem(); i > 0 {
			v.list.SetCurrentItem(i - 1)
		}
		return true
	case controller.ActionNavDown:
		if i := v.list.GetCurrentItem(); i < len(v.assets)-1 {
			v.list.SetCurrentItem(i + 1)
		}
		return true
	case controller.ActionOpenAsset:
		if a := v.SelectedAsset(); a != nil {
			v.show(model.MainAssetDetails(a.ID), nil)
		}
		return true
	case controller.ActionMoveAssetUp:
		v.move(-1)
		return true
	case controller.ActionMoveAssetDown:
		v.move(1)
		return true
	case controller.ActionDeleteAsset:
		if a := v.SelectedAsset(); a != nil {
			if err := v.store.Remove(a.ID); err != nil {
				slog.Error("failed to delete favourite", "asset", a.ID, "error", err)
			}
		}
		return true
	case controller.ActionAddAsset:
		v.show(model.MainAddAsset, nil)
		return true
	case controller.ActionAppInfo:
		v.show(model.MainAppInfo, nil)
		return true
	case controller.ActionAppInfoPopup:
		v.show(model.MainAppInfoStandalone, nil)
		return true
	case controller.ActionEmbeddedFlow:
		v.show(model.MainEmbeddedFlow, nil)
		return true
	case controller.ActionPopupFlow:
		v.show(model.MainPopupFlow, nil)
		return true
	case controller.ActionRestoreNavigation:
		if len(v.assets) == 0 {
			slog.Info("nothing to restore, no favourites")
			return true
		}
		v.show(model.MainRestoreNavigation(v.assets[0].ID), nil)
		return true
	case controller.ActionRestorePopup:
		v.show(model.MainRestorePopupNavigation, nil)
		return true
	default:
		return false
	}
}

func (v *AssetsListView) move(delta int) {
	a := v.SelectedAsset()
	if a == nil {
		return
	}
	position := v.store.Position(a.ID) + delta
	if position < 1 || position > len(v.assets) {
		return
	}
	if err := v.store.Update(a, position); err != nil {
		slog.Error("failed to move favourite", "asset", a.ID, "position", position, "error", err)
		return
	}
	// the store listener only runs while focused; refresh keeps the selection on a
	v.refresh()
}

func (v *AssetsListView) show(route model.Route, params map[string]interface{}) {
	if err := v.nav.Show(route, params); err != nil {
		slog.Warn("navigation from assets list failed", "route", route.String(), "error", err)
	}
}
