package controller

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestActionRegistry_Merge(t *testing.T) {
	tests := []struct {
		name           string
		registry1      func() *ActionRegistry
		registry2      func() *ActionRegistry
		wantActionIDs  []ActionID
		wantKeyLookup  map[tcell.Key]ActionID
		wantRuneLookup map[rune]ActionID
	}{
		{
			name: "merge two non-overlapping registries",
			registry1: func() *ActionRegistry {
				r := NewActionRegistry()
				r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit"})
				return r
			},
			registry2: func() *ActionRegistry {
				r := NewActionRegistry()
				r.Register(Action{ID: ActionRefresh, Key: tcell.KeyRune, Rune: 'r', Label: "Refresh"})
				r.Register(Action{ID: ActionBack, Key: tcell.KeyEscape, Label: "Back"})
				return r
			},
			wantActionIDs: []ActionID{ActionQuit, ActionRefresh, ActionBack},
			wantKeyLookup: map[tcell.Key]ActionID{
				tcell.KeyEscape: ActionBack,
			},
			wantRuneLookup: map[rune]ActionID{
				'q': ActionQuit,
				'r': ActionRefresh,
			},
		},
		{
			name: "merge with overlapping key - second registry wins",
			registry1: func() *ActionRegistry {
				r := NewActionRegistry()
				r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit"})
				return r
			},
			registry2: func() *ActionRegistry {
				r := NewActionRegistry()
				r.Register(Action{ID: ActionAddAsset, Key: tcell.KeyRune, Rune: 'q', Label: "Quick Add"})
				return r
			},
			wantActionIDs: []ActionID{ActionQuit, ActionAddAsset},
			wantRuneLookup: map[rune]ActionID{
				'q': ActionAddAsset,
			},
		},
		{
			name: "merge empty registry",
			registry1: func() *ActionRegistry {
				r := NewActionRegistry()
				r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit"})
				return r
			},
			registry2:     NewActionRegistry,
			wantActionIDs: []ActionID{ActionQuit},
			wantRuneLookup: map[rune]ActionID{
				'q': ActionQuit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r1 := tt.registry1()
			r1.Merge(tt.registry2())

			actions := r1.GetActions()
			if len(actions) != len(tt.wantActionIDs) {
				t.Errorf("expected %d actions, got %d", len(tt.wantActionIDs), len(actions))
			}
			for i, wantID := range tt.wantActionIDs {
				if i >= len(actions) {
					t.Errorf("missing action at index %d: want %v", i, wantID)
					continue
				}
				if actions[i].ID != wantID {
					t.Errorf("action at index %d: want ID %v, got %v", i, wantID, actions[i].ID)
				}
			}

			for key, wantID := range tt.wantKeyLookup {
				if action, exists := r1.byKey[key]; !exists {
					t.Errorf("key %v not found in byKey map", key)
				} else if action.ID != wantID {
					t.Errorf("byKey[%v]: want ID %v, got %v", key, wantID, action.ID)
				}
			}
			for r, wantID := range tt.wantRuneLookup {
				if action, exists := r1.byRune[r]; !exists {
					t.Errorf("rune %q not found in byRune map", r)
				} else if action.ID != wantID {
					t.Errorf("byRune[%q]: want ID %v, got %v", r, wantID, action.ID)
				}
			}
		})
	}
}

func TestActionRegistry_Register(t *testing.T) {
	tests := []struct {
		name          string
		actions       []Action
		wantCount     int
		wantByKeyLen  int
		wantByRuneLen int
	}{
		{
			name:          "register rune action",
			actions:       []Action{{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit"}},
			wantCount:     1,
			wantByRuneLen: 1,
		},
		{
			name:         "register special key action",
			actions:      []Action{{ID: ActionBack, Key: tcell.KeyEscape, Label: "Back"}},
			wantCount:    1,
			wantByKeyLen: 1,
		},
		{
			name: "register multiple mixed actions",
			actions: []Action{
				{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit"},
				{ID: ActionBack, Key: tcell.KeyEscape, Label: "Back"},
				{ID: ActionSaveAsset, Key: tcell.KeyCtrlS, Label: "Save"},
			},
			wantCount:     3,
			wantByKeyLen:  2,
			wantByRuneLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewActionRegistry()
			for _, action := range tt.actions {
				r.Register(action)
			}

			if len(r.actions) != tt.wantCount {
				t.Errorf("actions count: want %d, got %d", tt.wantCount, len(r.actions))
			}
			if len(r.byKey) != tt.wantByKeyLen {
				t.Errorf("byKey count: want %d, got %d", tt.wantByKeyLen, len(r.byKey))
			}
			if len(r.byRune) != tt.wantByRuneLen {
				t.Errorf("byRune count: want %d, got %d", tt.wantByRuneLen, len(r.byRune))
			}
		})
	}
}

func TestActionRegistry_Match(t *testing.T) {
	tests := []struct {
		name       string
		registry   func() *ActionRegistry
		event      *tcell.EventKey
		wantMatch  ActionID
		shouldFind bool
	}{
		{
			name:       "match rune action",
			registry:   DefaultGlobalActions,
			event:      tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
			wantMatch:  ActionQuit,
			shouldFind: true,
		},
		{
			name:       "match special key action",
			registry:   DefaultGlobalActions,
			event:      tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			wantMatch:  ActionBack,
			shouldFind: true,
		},
		{
			name:       "runes are case sensitive",
			registry:   DefaultGlobalActions,
			event:      tcell.NewEventKey(tcell.KeyRune, 'H', tcell.ModNone),
			wantMatch:  ActionBackToRoot,
			shouldFind: true,
		},
		{
			name:       "match key with ctrl modifier",
			registry:   EditAssetActions,
			event:      tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl),
			wantMatch:  ActionSaveAsset,
			shouldFind: true,
		},
		{
			name:       "match key with shift modifier",
			registry:   AssetsListActions,
			event:      tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModShift),
			wantMatch:  ActionMoveAssetDown,
			shouldFind: true,
		},
		{
			name:       "plain arrow matches navigation before move",
			registry:   AssetsListActions,
			event:      tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
			wantMatch:  ActionNavDown,
			shouldFind: true,
		},
		{
			name:       "space toggles selection in add asset",
			registry:   AddAssetActions,
			event:      tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			wantMatch:  ActionToggleSelection,
			shouldFind: true,
		},
		{
			name:       "no match - wrong rune",
			registry:   DefaultGlobalActions,
			event:      tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
			shouldFind: false,
		},
		{
			name:       "no match - wrong modifier",
			registry:   EditAssetActions,
			event:      tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone),
			shouldFind: false,
		},
		{
			name:       "app info has no own actions",
			registry:   AppInfoActions,
			event:      tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			shouldFind: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := tt.registry().Match(tt.event)

			if !tt.shouldFind {
				if action != nil {
					t.Errorf("expected no match, got action %v", action.ID)
				}
				return
			}
			if action == nil {
				t.Errorf("expected match for action %v, got nil", tt.wantMatch)
			} else if action.ID != tt.wantMatch {
				t.Errorf("expected action %v, got %v", tt.wantMatch, action.ID)
			}
		})
	}
}

func TestActionRegistry_GetHeaderActions(t *testing.T) {
	headerActions := AssetsListActions().GetHeaderActions()

	for _, action := range headerActions {
		if !action.ShowInHeader {
			t.Errorf("header action %v: ShowInHeader should be true", action.ID)
		}
		if action.ID == ActionNavUp || action.ID == ActionNavDown {
			t.Errorf("navigation action %v should not be in header", action.ID)
		}
	}
	if len(headerActions) != 11 {
		t.Errorf("expected 11 header actions, got %d", len(headerActions))
	}
}

func TestDefaultGlobalActions(t *testing.T) {
	actions := DefaultGlobalActions().GetActions()
	expected := []ActionID{ActionBack, ActionBackToRoot, ActionQuit, ActionRefresh, ActionToggleHeader}

	if len(actions) != len(expected) {
		t.Fatalf("expected %d global actions, got %d", len(expected), len(actions))
	}
	for i, want := range expected {
		if actions[i].ID != want {
			t.Errorf("action at index %d: want %v, got %v", i, want, actions[i].ID)
		}
		if !actions[i].ShowInHeader {
			t.Errorf("global action %v should have ShowInHeader=true", want)
		}
	}
}

func TestMatchWithModifiers(t *testing.T) {
	registry := NewActionRegistry()
	registry.Register(Action{
		ID:       "test_alt_m",
		Key:      tcell.KeyRune,
		Rune:     'M',
		Modifier: tcell.ModAlt,
	})

	event := tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModAlt)
	if match := registry.Match(event); match == nil || match.ID != "test_alt_m" {
		t.Error("Alt-M should match action with Alt-M binding")
	}

	event = tcell.NewEventKey(tcell.KeyRune, 'M', 0)
	if match := registry.Match(event); match != nil {
		t.Error("M (no modifier) should not match action with Alt-M binding")
	}
}
