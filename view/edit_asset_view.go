package view

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/store"

	"github.com/rivo/tview"
)

// form item indexes
const (
	editFieldName = iota
	editFieldColor
	editFieldPosition
)

// EditAssetView edits the name, color and position of a favourite.
// Saving stores the changes and goes back.
type EditAssetView struct {
	root     *tview.Flex
	form     *tview.Form
	name     *tview.InputField
	color    *tview.InputField
	position *tview.DropDown
	status   *tview.TextView
	store    store.Store
	nav      Navigation
	registry *controller.ActionRegistry

	original    *asset.Asset
	positionSel int // 1-based
	focusSetter func(tview.Primitive)
}

// NewEditAssetView creates the editor for assetID; draft, when set, is restored into the fields
func NewEditAssetView(st store.Store, nav Navigation, assetID string, draft *asset.Asset) *EditAssetView {
	colors := config.GetColors()

	v := &EditAssetView{
		store:    st,
		nav:      nav,
		registry: controller.EditAssetActions(),
		status:   tview.NewTextView().SetDynamicColors(true),
	}
	v.original = st.GetAsset(assetID)
	initial := v.original
	if draft != nil && asset.NormalizeID(draft.ID) == asset.NormalizeID(assetID) {
		initial = draft.Clone()
	}
	if initial == nil {
		initial = &asset.Asset{ID: asset.NormalizeID(assetID)}
		v.status.SetText(fmt.Sprintf("[red]%s is not a favourite", initial.ID))
	}

	v.name = tview.NewInputField().SetLabel("Name  ").SetText(initial.Name).SetFieldWidth(32)
	v.color = tview.NewInputField().SetLabel("Color ").SetText(initial.ColorCode).SetFieldWidth(8)
	v.position = tview.NewDropDown().SetLabel("Position ")
	for _, field := range []*tview.InputField{v.name, v.color} {
		field.SetFieldBackgroundColor(colors.InputFieldBackgroundColor)
		field.SetFieldTextColor(colors.InputFieldTextColor)
		field.SetLabelColor(colors.FormLabelColor)
	}
	v.position.SetLabelColor(colors.FormLabelColor)

	count := len(st.GetAll())
	v.positionSel = st.Position(initial.ID)
	if v.positionSel == 0 {
		v.positionSel = 1
	}
	options := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		options = append(options, strconv.Itoa(i))
	}
	v.position.SetOptions(options, func(_ string, index int) {
		v.positionSel = index + 1
	})
	if count > 0 {
		v.position.SetCurrentOption(v.positionSel - 1)
	}

	v.form = tview.NewForm().
		AddFormItem(v.name).
		AddFormItem(v.color).
		AddFormItem(v.position)
	v.form.SetBorder(true).SetTitle(fmt.Sprintf(" Edit %s ", initial.ID))
	v.form.SetBorderColor(colors.ScreenBorder)
	v.form.SetTitleColor(colors.ScreenTitle)

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.form, 0, 1, true).
		AddItem(v.status, 1, 0, false)
	return v
}

func (v *EditAssetView) GetPrimitive() tview.Primitive {
	return v.root
}

func (v *EditAssetView) GetActionRegistry() *controller.ActionRegistry {
	return v.registry
}

func (v *EditAssetView) OnFocus() {}

func (v *EditAssetView) OnBlur() {}

// SetFocusSetter sets the callback for moving focus to a form field
func (v *EditAssetView) SetFocusSetter(setter func(tview.Primitive)) {
	v.focusSetter = setter
}

// IsCapturingInput reports whether a text field has focus
func (v *EditAssetView) IsCapturingInput() bool {
	item, _ := v.form.GetFocusedItemIndex()
	return item == editFieldName || item == editFieldColor
}

// Draft returns the asset as currently edited
func (v *EditAssetView) Draft() *asset.Asset {
	a := v.original.Clone()
	if a == nil {
		a = &asset.Asset{}
	}
	a.Name = v.name.GetText()
	a.ColorCode = v.color.GetText()
	return a
}

// HandleAction runs editor actions
func (v *EditAssetView) HandleAction(id controller.ActionID) bool {
	if id != controller.ActionSaveAsset {
		return false
	}
	v.save()
	return true
}

func (v *EditAssetView) save() {
	if v.original == nil {
		return
	}
	draft := v.Draft()
	if verr := asset.Validate(draft); verr != nil {
		v.status.SetText("[red]" + tview.Escape(verr.Message))
		v.focusField(verr.Field)
		return
	}
	if err := v.store.Update(draft, v.positionSel); err != nil {
		slog.Error("failed to save favourite", "asset", draft.ID, "error", err)
		v.status.SetText("[red]" + tview.Escape(err.Error()))
		return
	}
	slog.Info("favourite saved", "asset", draft.ID, "position", v.positionSel)
	v.nav.NavigateBack()
}

func (v *EditAssetView) focusField(field string) {
	switch field {
	case "name":
		v.form.SetFocus(editFieldName)
	case "color":
		v.form.SetFocus(editFieldColor)
	default:
		return
	}
	if v.focusSetter != nil {
		v.focusSetter(v.form)
	}
}
