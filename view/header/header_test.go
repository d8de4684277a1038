package header

import (
	"testing"

	"github.com/boolean-maybe/kiss/controller"
)

func TestHeaderWidget(t *testing.T) {
	h := NewHeaderWidget()

	h.SetTrail([][]string{{"AssetsList", "AssetDetails"}, {"AddAsset"}})
	if got, want := h.BreadcrumbText(), " AssetsList › AssetDetails ⇡ AddAsset"; got != want {
		t.Errorf("BreadcrumbText() = %q, want %q", got, want)
	}

	h.SetStat("Version", "dev", 0)
	if v, ok := h.Stats().Value("Version"); !ok || v != "dev" {
		t.Errorf("Stats().Value(Version) = %q, %v, want dev, true", v, ok)
	}

	h.SetActions(controller.DefaultGlobalActions(), nil)
	if h.help.GetWidth() == 0 {
		t.Error("help grid empty after SetActions")
	}
}
