package asset

import (
	"strings"
)

// Asset is a tracked asset (currency, metal, commodity)
type Asset struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	ColorCode string `yaml:"color,omitempty"` // hex color, e.g. "#FFD700"
}

// NormalizeID upper-cases and trims an asset ID ("xau " -> "XAU")
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Clone returns a copy of the asset
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// DisplayName returns "Name (ID)" or just the ID when the name is empty
func (a *Asset) DisplayName() string {
	if strings.TrimSpace(a.Name) == "" {
		return a.ID
	}
	return a.Name + " (" + a.ID + ")"
}

// catalog of assets that can be added to favourites
var catalog = []Asset{
	{ID: "AU", Name: "Gold", ColorCode: "#FFD700"},
	{ID: "AG", Name: "Silver", ColorCode: "#C0C0C0"},
	{ID: "PT", Name: "Platinum", ColorCode: "#E5E4E2"},
	{ID: "BTC", Name: "Bitcoin", ColorCode: "#F7931A"},
	{ID: "ETH", Name: "Ethereum", ColorCode: "#627EEA"},
	{ID: "EUR", Name: "Euro", ColorCode: "#003399"},
	{ID: "GBP", Name: "British Pound", ColorCode: "#C8102E"},
	{ID: "JPY", Name: "Japanese Yen", ColorCode: "#BC002D"},
}

// Catalog returns a copy of the addable asset list
func Catalog() []Asset {
	out := make([]Asset, len(catalog))
	copy(out, catalog)
	return out
}

// FindInCatalog looks an asset up by ID
func FindInCatalog(id string) (Asset, bool) {
	id = NormalizeID(id)
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}
