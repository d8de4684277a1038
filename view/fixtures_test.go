package view

import (
	"testing"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/store"
)

// recordingNav records navigation requests as "op Route(arg)"
type recordingNav struct {
	calls []string
	err   error
}

func (n *recordingNav) Show(route model.Route, params map[string]interface{}) error {
	n.calls = append(n.calls, "show "+describe(route))
	return n.err
}

func (n *recordingNav) Switch(route model.Route, params map[string]interface{}) error {
	n.calls = append(n.calls, "switch "+describe(route))
	return n.err
}

func (n *recordingNav) NavigateBack() {
	n.calls = append(n.calls, "back")
}

func (n *recordingNav) Stop() {
	n.calls = append(n.calls, "stop")
}

func describe(route model.Route) string {
	if route.Arg == "" {
		return model.ShortName(route)
	}
	return model.ShortName(route) + "(" + route.Arg + ")"
}

// newFavourites returns an in-memory store holding the catalog assets with the given IDs
func newFavourites(t *testing.T, ids ...string) *store.InMemoryStore {
	t.Helper()
	assets := make([]*asset.Asset, 0, len(ids))
	for _, id := range ids {
		a, ok := asset.FindInCatalog(id)
		if !ok {
			t.Fatalf("asset %s not in catalog", id)
		}
		assets = append(assets, &a)
	}
	st := store.NewInMemoryStore()
	if err := st.Load(assets); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return st
}

func assertCalls(t *testing.T, nav *recordingNav, want ...string) {
	t.Helper()
	if len(nav.calls) != len(want) {
		t.Fatalf("navigation calls = %q, want %q", nav.calls, want)
	}
	for i := range want {
		if nav.calls[i] != want[i] {
			t.Errorf("navigation call %d = %q, want %q", i, nav.calls[i], want[i])
		}
	}
}
