package controller

import (
	"github.com/gdamore/tcell/v2"
)

// ActionRegistry maps keyboard shortcuts to actions and matches key events.

// ActionID identifies a specific action
type ActionID string

// ActionID values for global actions (available in all views).
const (
	ActionBack         ActionID = "back"
	ActionBackToRoot   ActionID = "back_to_root"
	ActionQuit         ActionID = "quit"
	ActionRefresh      ActionID = "refresh"
	ActionToggleHeader ActionID = "toggle_header"
)

// ActionID values for the assets list.
const (
	ActionOpenAsset         ActionID = "open_asset"
	ActionNavUp             ActionID = "nav_up"
	ActionNavDown           ActionID = "nav_down"
	ActionMoveAssetUp       ActionID = "move_asset_up"
	ActionMoveAssetDown     ActionID = "move_asset_down"
	ActionAddAsset          ActionID = "add_asset"
	ActionDeleteAsset       ActionID = "delete_asset"
	ActionAppInfo           ActionID = "app_info"
	ActionAppInfoPopup      ActionID = "app_info_popup"
	ActionEmbeddedFlow      ActionID = "embedded_flow"
	ActionPopupFlow         ActionID = "popup_flow"
	ActionRestoreNavigation ActionID = "restore_navigation"
	ActionRestorePopup      ActionID = "restore_popup"
)

// ActionID values for asset details.
const (
	ActionEditAsset      ActionID = "edit_asset"
	ActionShowAssetsList ActionID = "show_assets_list"
)

// ActionID values for asset forms (edit and add).
const (
	ActionSaveAsset       ActionID = "save_asset"
	ActionToggleSelection ActionID = "toggle_selection"
)

// Action represents a keyboard shortcut binding
type Action struct {
	ID           ActionID
	Key          tcell.Key
	Rune         rune // for letter keys (when Key == tcell.KeyRune)
	Label        string
	Modifier     tcell.ModMask
	ShowInHeader bool // whether to display in header bar
}

// ActionRegistry holds the available actions for a view.
// actions keeps registration order for the header; byKey/byRune index the same actions for lookup.
type ActionRegistry struct {
	actions []Action
	byKey   map[tcell.Key]Action
	byRune  map[rune]Action
}

// NewActionRegistry creates a new action registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]Action, 0),
		byKey:   make(map[tcell.Key]Action),
		byRune:  make(map[rune]Action),
	}
}

// Register adds an action to the registry
func (r *ActionRegistry) Register(action Action) {
	r.actions = append(r.actions, action)
	if action.Key == tcell.KeyRune {
		r.byRune[action.Rune] = action
	} else {
		r.byKey[action.Key] = action
	}
}

// Merge adds all actions from another registry into this one.
// If there are key conflicts, the other registry's actions take precedence in lookups.
func (r *ActionRegistry) Merge(other *ActionRegistry) {
	for _, action := range other.actions {
		r.Register(action)
	}
}

// GetActions returns all registered actions
func (r *ActionRegistry) GetActions() []Action {
	return r.actions
}

// Match finds an action matching the given key event
func (r *ActionRegistry) Match(event *tcell.EventKey) *Action {
	// normalize modifier (ignore caps lock, num lock, etc.)
	mod := event.Modifiers() & (tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta)

	for i := range r.actions {
		action := &r.actions[i]

		if event.Key() == tcell.KeyRune {
			if action.Key == tcell.KeyRune && action.Rune == event.Rune() {
				// if action has explicit modifiers, require exact match
				if action.Modifier != 0 && action.Modifier != mod {
					continue
				}
				return action
			}
			continue
		}

		if action.Key == event.Key() && action.Modifier == mod {
			return action
		}
		// tcell may report Ctrl+letter as key 'A'-'Z' with ModCtrl
		if mod == tcell.ModCtrl && action.Modifier == tcell.ModCtrl {
			var ctrlKeyCode tcell.Key
			if event.Key() >= 'A' && event.Key() <= 'Z' {
				ctrlKeyCode = event.Key() - 'A' + 1
			} else if event.Key() >= 'a' && event.Key() <= 'z' {
				ctrlKeyCode = event.Key() - 'a' + 1
			}
			if ctrlKeyCode != 0 && ctrlKeyCode == action.Key {
				return action
			}
		}
	}
	return nil
}

// GetHeaderActions returns only actions marked for header display
func (r *ActionRegistry) GetHeaderActions() []Action {
	var result []Action
	for _, a := range r.actions {
		if a.ShowInHeader {
			result = append(result, a)
		}
	}
	return result
}

// DefaultGlobalActions returns common actions available in all views
func DefaultGlobalActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionBack, Key: tcell.KeyEscape, Label: "Back", ShowInHeader: true})
	r.Register(Action{ID: ActionBackToRoot, Key: tcell.KeyRune, Rune: 'H', Label: "Home", ShowInHeader: true})
	r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit", ShowInHeader: true})
	r.Register(Action{ID: ActionRefresh, Key: tcell.KeyRune, Rune: 'r', Label: "Refresh", ShowInHeader: true})
	r.Register(Action{ID: ActionToggleHeader, Key: tcell.KeyF10, Label: "Hide Header", ShowInHeader: true})
	return r
}

// AssetsListActions returns the canonical action registry for the assets list.
// Single source of truth for both input handling and header display.
func AssetsListActions() *ActionRegistry {
	r := NewActionRegistry()

	// navigation (not shown in header)
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyUp, Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyDown, Label: "↓"})
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyRune, Rune: 'k', Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyRune, Rune: 'j', Label: "↓"})

	r.Register(Action{ID: ActionOpenAsset, Key: tcell.KeyEnter, Label: "Open", ShowInHeader: true})
	r.Register(Action{ID: ActionMoveAssetUp, Key: tcell.KeyUp, Modifier: tcell.ModShift, Label: "Move ↑", ShowInHeader: true})
	r.Register(Action{ID: ActionMoveAssetDown, Key: tcell.KeyDown, Modifier: tcell.ModShift, Label: "Move ↓", ShowInHeader: true})
	r.Register(Action{ID: ActionAddAsset, Key: tcell.KeyRune, Rune: 'a', Label: "Add", ShowInHeader: true})
	r.Register(Action{ID: ActionDeleteAsset, Key: tcell.KeyRune, Rune: 'd', Label: "Delete", ShowInHeader: true})
	r.Register(Action{ID: ActionAppInfo, Key: tcell.KeyRune, Rune: 'i', Label: "Info", ShowInHeader: true})
	r.Register(Action{ID: ActionAppInfoPopup, Key: tcell.KeyRune, Rune: 'I', Label: "Info popup", ShowInHeader: true})
	r.Register(Action{ID: ActionEmbeddedFlow, Key: tcell.KeyRune, Rune: 'e', Label: "Embed flow", ShowInHeader: true})
	r.Register(Action{ID: ActionPopupFlow, Key: tcell.KeyRune, Rune: 'p', Label: "Popup flow", ShowInHeader: true})
	r.Register(Action{ID: ActionRestoreNavigation, Key: tcell.KeyRune, Rune: 'R', Label: "Restore", ShowInHeader: true})
	r.Register(Action{ID: ActionRestorePopup, Key: tcell.KeyRune, Rune: 'P', Label: "Restore popup", ShowInHeader: true})

	return r
}

// AssetDetailsActions returns the canonical action registry for asset details
func AssetDetailsActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionEditAsset, Key: tcell.KeyRune, Rune: 'e', Label: "Edit", ShowInHeader: true})
	r.Register(Action{ID: ActionDeleteAsset, Key: tcell.KeyRune, Rune: 'd', Label: "Delete", ShowInHeader: true})
	r.Register(Action{ID: ActionShowAssetsList, Key: tcell.KeyRune, Rune: 'l', Label: "List", ShowInHeader: true})
	return r
}

// EditAssetActions returns the canonical action registry for the edit asset form.
// Tab navigation is left to the tview form.
func EditAssetActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionSaveAsset, Key: tcell.KeyCtrlS, Modifier: tcell.ModCtrl, Label: "Save", ShowInHeader: true})
	return r
}

// AddAssetActions returns the canonical action registry for the add asset picker
func AddAssetActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyUp, Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyDown, Label: "↓"})
	r.Register(Action{ID: ActionToggleSelection, Key: tcell.KeyRune, Rune: ' ', Label: "Select", ShowInHeader: true})
	r.Register(Action{ID: ActionToggleSelection, Key: tcell.KeyEnter, Label: "Select"})
	r.Register(Action{ID: ActionSaveAsset, Key: tcell.KeyCtrlS, Modifier: tcell.ModCtrl, Label: "Save", ShowInHeader: true})
	return r
}

// AppInfoActions returns the action registry for the app info page (global actions only)
func AppInfoActions() *ActionRegistry {
	return NewActionRegistry()
}
