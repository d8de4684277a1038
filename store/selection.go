package store

import (
	"github.com/boolean-maybe/kiss/asset"
)

// MergeSelection builds the favourites list after a catalog selection.
// Favourites that stay selected keep their edits and order; newly selected
// catalog assets are appended in catalog order.
func MergeSelection(favourites []*asset.Asset, catalog []asset.Asset, selectedIDs []string) []*asset.Asset {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[asset.NormalizeID(id)] = true
	}

	out := make([]*asset.Asset, 0, len(selectedIDs))
	kept := make(map[string]bool, len(favourites))
	for _, f := range favourites {
		if selected[f.ID] {
			out = append(out, f.Clone())
			kept[f.ID] = true
		}
	}
	for i := range catalog {
		c := catalog[i]
		if selected[c.ID] && !kept[c.ID] {
			out = append(out, &c)
			kept[c.ID] = true
		}
	}
	return out
}

// IDs returns the IDs of the given assets in order
func IDs(assets []*asset.Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	return ids
}
