package header

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestBreadcrumbs(t *testing.T) {
	tests := []struct {
		name     string
		chain    [][]string
		maxWidth int
		want     string
	}{
		{
			name:     "single stack",
			chain:    [][]string{{"AssetsList", "AssetDetails"}},
			maxWidth: 80,
			want:     "AssetsList › AssetDetails",
		},
		{
			name:     "presented surface",
			chain:    [][]string{{"AssetsList"}, {"AddAsset"}},
			maxWidth: 80,
			want:     "AssetsList ⇡ AddAsset",
		},
		{
			name:     "empty navigators are skipped",
			chain:    [][]string{{"AssetsList"}, {}},
			maxWidth: 80,
			want:     "AssetsList",
		},
		{
			name:     "no width",
			chain:    [][]string{{"AssetsList"}},
			maxWidth: 0,
			want:     "",
		},
		{
			name:     "no chain",
			maxWidth: 80,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Breadcrumbs(tt.chain, tt.maxWidth); got != tt.want {
				t.Errorf("Breadcrumbs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBreadcrumbs_TruncatesOldestPart(t *testing.T) {
	chain := [][]string{{"AssetsList", "AssetDetails", "EditAsset"}, {"AppInfoStandalone", "AppInfoStandalone"}}

	got := Breadcrumbs(chain, 30)

	if w := runewidth.StringWidth(got); w > 30 {
		t.Errorf("width = %d, want at most 30 (%q)", w, got)
	}
	if !strings.HasPrefix(got, ellipsis) {
		t.Errorf("Breadcrumbs() = %q, want it to start with %q", got, ellipsis)
	}
	if !strings.HasSuffix(got, "AppInfoStandalone › AppInfoStandalone") {
		t.Errorf("Breadcrumbs() = %q, want the newest screens kept", got)
	}
}

func TestColorizeBreadcrumbs(t *testing.T) {
	tests := []struct {
		trail      string
		wantActive string
	}{
		{trail: "AssetsList", wantActive: "AssetsList"},
		{trail: "AssetsList › AssetDetails", wantActive: "AssetDetails"},
		{trail: "AssetsList › AssetDetails ⇡ AddAsset", wantActive: "AddAsset"},
	}

	for _, tt := range tests {
		got := colorizeBreadcrumbs(tt.trail)
		if !strings.HasSuffix(got, tt.wantActive) {
			t.Errorf("colorizeBreadcrumbs(%q) = %q, want it to end with %q", tt.trail, got, tt.wantActive)
		}
	}
	if got := colorizeBreadcrumbs(""); got != "" {
		t.Errorf("colorizeBreadcrumbs(\"\") = %q, want empty", got)
	}
}
