package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/store"

	"github.com/rivo/tview"
)

// AssetDetailsView shows one favourite
type AssetDetailsView struct {
	root     *tview.Flex
	caption  *AssetCaption
	body     *tview.TextView
	store    store.Store
	nav      Navigation
	assetID  string
	registry *controller.ActionRegistry

	listenerID int
}

// NewAssetDetailsView creates the details screen for assetID
func NewAssetDetailsView(st store.Store, nav Navigation, assetID string) *AssetDetailsView {
	colors := config.GetColors()

	body := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	body.SetBorder(true).SetTitle(" Asset ")
	body.SetBorderColor(colors.ScreenBorder)
	body.SetTitleColor(colors.ScreenTitle)

	v := &AssetDetailsView{
		caption:  NewAssetCaption(assetID, ""),
		body:     body,
		store:    st,
		nav:      nav,
		assetID:  assetID,
		registry: controller.AssetDetailsActions(),
	}
	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.caption, 1, 0, false).
		AddItem(body, 0, 1, true)
	v.refresh()
	return v
}

func (v *AssetDetailsView) GetPrimitive() tview.Primitive {
	return v.root
}

func (v *AssetDetailsView) GetActionRegistry() *controller.ActionRegistry {
	return v.registry
}

func (v *AssetDetailsView) OnFocus() {
	if v.listenerID == 0 {
		v.listenerID = v.store.AddListener(v.refresh)
	}
	v.refresh()
}

func (v *AssetDetailsView) OnBlur() {
	if v.listenerID != 0 {
		v.store.RemoveListener(v.listenerID)
		v.listenerID = 0
	}
}

// AssetID returns the asset shown
func (v *AssetDetailsView) AssetID() string {
	return v.assetID
}

func (v *AssetDetailsView) refresh() {
	colors := config.GetColors()
	a := v.store.GetAsset(v.assetID)
	if a == nil {
		v.caption.SetText(v.assetID, "")
		v.body.SetText(fmt.Sprintf("%s%s is not a favourite any more", colors.AssetNameColor, v.assetID))
		return
	}

	v.caption.SetText(a.DisplayName(), a.ColorCode)
	var b strings.Builder
	field := func(label, value string) {
		fmt.Fprintf(&b, "%s%-9s%s%s\n", colors.AssetLabelColor, label, colors.AssetValueColor, tview.Escape(value))
	}
	field("ID", a.ID)
	field("Name", a.Name)
	field("Color", defaultString(a.ColorCode, "-"))
	field("Position", fmt.Sprintf("%d of %d", v.store.Position(a.ID), len(v.store.GetAll())))
	v.body.SetText(b.String())
}

// HandleAction runs details actions
func (v *AssetDetailsView) HandleAction(id controller.ActionID) bool {
	switch id {
	case controller.ActionEditAsset:
		if v.store.GetAsset(v.assetID) == nil {
			return true
		}
		// the editor goes on top so back returns to these details
		if err := v.nav.Show(model.MainEditAsset(v.assetID), nil); err != nil {
			slog.Warn("failed to open editor", "asset", v.assetID, "error", err)
		}
		return true
	case controller.ActionDeleteAsset:
		if err := v.store.Remove(v.assetID); err != nil {
			slog.Error("failed to delete favourite", "asset", v.assetID, "error", err)
			return true
		}
		v.nav.NavigateBack()
		return true
	case controller.ActionShowAssetsList:
		if err := v.nav.Switch(model.MainAssetsList, nil); err != nil {
			slog.Warn("failed to return to list", "error", err)
		}
		return true
	default:
		return false
	}
}

// defaultString returns def if s is empty, otherwise s
func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
