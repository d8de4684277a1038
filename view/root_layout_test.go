package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/view/header"
)

// probeView counts focus changes
type probeView struct {
	box   *tview.Box
	focus int
	blur  int
}

func newProbeView() *probeView {
	return &probeView{box: tview.NewBox()}
}

func (v *probeView) GetPrimitive() tview.Primitive { return v.box }

func (v *probeView) GetActionRegistry() *controller.ActionRegistry {
	return controller.AppInfoActions()
}

func (v *probeView) OnFocus() { v.focus++ }

func (v *probeView) OnBlur() { v.blur++ }

func TestRootLayout_FollowsNavigator(t *testing.T) {
	rootNav := controller.NewScreenStack()
	depth := 1
	rl := NewRootLayout(header.NewHeaderWidget(), rootNav, controller.DefaultGlobalActions(),
		func() int { return depth }, newFavourites(t, "AU", "PT"), nil)
	defer rl.Cleanup()

	if len(rl.Pages()) != 0 || rl.GetContentView() != nil {
		t.Fatalf("Pages() = %q, content = %v before any screen, want none", rl.Pages(), rl.GetContentView())
	}

	list, details, popup := newProbeView(), newProbeView(), newProbeView()
	var activated []controller.View
	rl.SetOnViewActivated(func(v controller.View) { activated = append(activated, v) })

	rootNav.Push(controller.NewScreen(model.MainAssetsList, list))
	rootNav.Push(controller.NewScreen(model.MainAssetDetails("AU"), details))

	if rl.GetContentView() != details {
		t.Errorf("content view is not the pushed screen")
	}
	if list.focus != 1 || list.blur != 1 || details.focus != 1 {
		t.Errorf("focus counts list=%d/%d details=%d, want 1/1 and 1", list.focus, list.blur, details.focus)
	}
	if diff := cmp.Diff([]string{"base"}, rl.Pages()); diff != "" {
		t.Errorf("Pages() mismatch (-want +got):\n%s", diff)
	}

	depth = 2
	modal := controller.NewScreenStack(controller.WithStyle(model.PopupModal))
	modal.Push(controller.NewScreen(model.AddAssetForm, popup))
	if err := rootNav.Present(modal, nil); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	if rl.GetContentView() != popup || details.blur != 1 {
		t.Errorf("presented screen not active (details blur = %d)", details.blur)
	}
	if diff := cmp.Diff([]string{"base", "popup-1"}, rl.Pages()); diff != "" {
		t.Errorf("Pages() with popup mismatch (-want +got):\n%s", diff)
	}
	if got, want := rl.Header().BreadcrumbText(), " AssetsList › AssetDetails ⇡ AddAsset"; got != want {
		t.Errorf("BreadcrumbText() = %q, want %q", got, want)
	}
	if v, _ := rl.Header().Stats().Value("Flow depth"); v != "2" {
		t.Errorf("Flow depth stat = %q, want 2", v)
	}

	rootNav.Dismiss(nil)

	if rl.GetContentView() != details || details.focus != 2 || popup.blur != 1 {
		t.Errorf("after dismiss: details focus = %d, popup blur = %d", details.focus, popup.blur)
	}
	wantActivated := []controller.View{list, details, popup, details}
	if len(activated) != len(wantActivated) {
		t.Fatalf("activated %d views, want %d", len(activated), len(wantActivated))
	}
	for i := range wantActivated {
		if activated[i] != wantActivated[i] {
			t.Errorf("activation %d is not the expected view", i)
		}
	}
}

func TestRootLayout_Stats(t *testing.T) {
	st := newFavourites(t, "AU", "PT")
	rl := NewRootLayout(header.NewHeaderWidget(), controller.NewScreenStack(), nil, nil, st, nil)
	defer rl.Cleanup()

	stats := rl.Header().Stats()
	if v, _ := stats.Value("Version"); v != config.Version {
		t.Errorf("Version stat = %q, want %q", v, config.Version)
	}
	if v, _ := stats.Value("Favourites"); v != "2" {
		t.Errorf("Favourites stat = %q, want 2", v)
	}

	if err := st.Remove("AU"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if v, _ := stats.Value("Favourites"); v != "1" {
		t.Errorf("Favourites stat after remove = %q, want 1", v)
	}
	if _, ok := stats.Value("Flow depth"); ok {
		t.Error("Flow depth stat set without a depth func")
	}
}

func TestRootLayout_ToggleHeader(t *testing.T) {
	rl := NewRootLayout(header.NewHeaderWidget(), controller.NewScreenStack(), nil, nil, nil, nil)
	defer rl.Cleanup()
	visible := rl.IsHeaderVisible()

	rl.ToggleHeader()
	if rl.IsHeaderVisible() == visible {
		t.Error("ToggleHeader() did not change visibility")
	}
	rl.ToggleHeader()
	if rl.IsHeaderVisible() != visible {
		t.Error("second ToggleHeader() did not restore visibility")
	}
}

func TestRootLayout_CleanupStopsObserving(t *testing.T) {
	rootNav := controller.NewScreenStack()
	rl := NewRootLayout(header.NewHeaderWidget(), rootNav, nil, nil, nil, nil)
	first := newProbeView()
	rootNav.Push(controller.NewScreen(model.MainAssetsList, first))

	rl.Cleanup()
	rootNav.Push(controller.NewScreen(model.MainAssetDetails("AU"), newProbeView()))

	if first.blur != 1 {
		t.Errorf("active view blur = %d after cleanup, want 1", first.blur)
	}
	if rl.GetContentView() != nil {
		t.Error("content view kept after cleanup")
	}
	if !strings.Contains(strings.Join(rl.Pages(), ","), "base") {
		t.Errorf("Pages() = %q, want the last rendered base page", rl.Pages())
	}
}
