package view

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/store"

	"github.com/rivo/tview"
)

// AddAssetView picks favourites from the catalog. Saving merges the selection into
// the favourites and finishes the add asset flow.
type AddAssetView struct {
	root     *tview.Flex
	list     *tview.List
	store    store.Store
	nav      Navigation
	registry *controller.ActionRegistry

	catalog  []asset.Asset
	selected map[string]bool
}

// NewAddAssetView creates the catalog picker with the current favourites preselected
func NewAddAssetView(st store.Store, nav Navigation) *AddAssetView {
	colors := config.GetColors()

	list := tview.NewList().ShowSecondaryText(false)
	list.SetHighlightFullLine(true)
	list.SetSelectedTextColor(colors.ListSelectedText)
	list.SetSelectedBackgroundColor(colors.ListSelectedBackgnd)
	list.SetBorder(true).SetTitle(" Add assets ")
	list.SetBorderColor(colors.PopupBorder)
	list.SetTitleColor(colors.PopupTitle)

	v := &AddAssetView{
		list:     list,
		store:    st,
		nav:      nav,
		registry: controller.AddAssetActions(),
		catalog:  asset.Catalog(),
		selected: make(map[string]bool),
	}
	for _, a := range st.GetAll() {
		v.selected[a.ID] = true
	}
	hint := tview.NewTextView().SetDynamicColors(true).
		SetText(fmt.Sprintf("%s<space>%s toggle  %s<ctrl+s>%s save", colors.HeaderKeyBinding, colors.HeaderKeyText,
			colors.HeaderKeyBinding, colors.HeaderKeyText))
	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(list, 0, 1, true).
		AddItem(hint, 1, 0, false)
	v.render()
	return v
}

func (v *AddAssetView) GetPrimitive() tview.Primitive {
	return v.root
}

func (v *AddAssetView) GetActionRegistry() *controller.ActionRegistry {
	return v.registry
}

func (v *AddAssetView) OnFocus() {}

func (v *AddAssetView) OnBlur() {}

// SelectedIDs returns the checked catalog assets in catalog order
func (v *AddAssetView) SelectedIDs() []string {
	var ids []string
	for _, a := range v.catalog {
		if v.selected[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func (v *AddAssetView) render() {
	colors := config.GetColors()
	current := v.list.GetCurrentItem()
	v.list.Clear()
	for _, a := range v.catalog {
		mark := "[ ]"
		if v.selected[a.ID] {
			mark = "[x]"
		}
		v.list.AddItem(fmt.Sprintf("%s %s%-4s[-] %s", tview.Escape(mark), colors.AssetIDColor, a.ID, a.Name), "", 0, nil)
	}
	v.list.SetCurrentItem(current)
}

// HandleAction runs picker actions
func (v *AddAssetView) HandleAction(id controller.ActionID) bool {
	switch id {
	case controller.ActionNavUp:
		if i := v.list.GetCurrentItem(); i > 0 {
			v.list.SetCurrentItem(i - 1)
		}
		return true
	case controller.ActionNavDown:
		if i := v.list.GetCurrentItem(); i < len(v.catalog)-1 {
			v.list.SetCurrentItem(i + 1)
		}
		return true
	case controller.ActionToggleSelection:
		i := v.list.GetCurrentItem()
		if i >= 0 && i < len(v.catalog) {
			a := v.catalog[i].ID
			v.selected[a] = !v.selected[a]
			v.render()
		}
		return true
	case controller.ActionSaveAsset:
		v.save()
		return true
	default:
		return false
	}
}

func (v *AddAssetView) save() {
	merged := store.MergeSelection(v.store.GetAll(), v.catalog, v.SelectedIDs())
	if err := v.store.ReplaceAll(merged); err != nil {
		slog.Error("failed to save favourites", "error", err)
		return
	}
	slog.Info("favourites updated", "assets", store.IDs(merged))
	v.nav.Stop()
}
