package asset

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		asset   *Asset
		wantErr bool
		errCode ErrorCode
		field   string
	}{
		{
			name:  "valid asset",
			asset: &Asset{ID: "AU", Name: "Gold", ColorCode: "#FFD700"},
		},
		{
			name:  "valid asset without color",
			asset: &Asset{ID: "AG", Name: "Silver"},
		},
		{
			name:    "missing id",
			asset:   &Asset{ID: "  ", Name: "Gold"},
			wantErr: true,
			errCode: ErrCodeRequired,
			field:   "id",
		},
		{
			name:    "whitespace name",
			asset:   &Asset{ID: "AU", Name: "   "},
			wantErr: true,
			errCode: ErrCodeRequired,
			field:   "name",
		},
		{
			name:    "name too long",
			asset:   &Asset{ID: "AU", Name: strings.Repeat("g", 65)},
			wantErr: true,
			errCode: ErrCodeTooLong,
			field:   "name",
		},
		{
			name:  "max length name",
			asset: &Asset{ID: "AU", Name: strings.Repeat("g", 64)},
		},
		{
			name:    "bad color",
			asset:   &Asset{ID: "AU", Name: "Gold", ColorCode: "gold"},
			wantErr: true,
			errCode: ErrCodeInvalid,
			field:   "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.asset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if err == nil {
				return
			}
			if err.Code != tt.errCode {
				t.Errorf("error code = %v, want %v", err.Code, tt.errCode)
			}
			if err.Field != tt.field {
				t.Errorf("error field = %q, want %q", err.Field, tt.field)
			}
		})
	}
}

func TestNormalizeID(t *testing.T) {
	tests := map[string]string{
		"au":    "AU",
		" btc ": "BTC",
		"":      "",
		"Eur":   "EUR",
	}
	for in, want := range tests {
		if got := NormalizeID(in); got != want {
			t.Errorf("NormalizeID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindInCatalog(t *testing.T) {
	a, ok := FindInCatalog("au")
	if !ok {
		t.Fatal("FindInCatalog(au) not found")
	}
	if a.Name != "Gold" {
		t.Errorf("Name = %q, want Gold", a.Name)
	}

	if _, ok := FindInCatalog("nope"); ok {
		t.Error("FindInCatalog(nope) should not be found")
	}

	// catalog copies must not leak mutations
	c := Catalog()
	c[0].Name = "changed"
	if again, _ := FindInCatalog(c[0].ID); again.Name == "changed" {
		t.Error("Catalog() returned shared storage")
	}
}

func TestDisplayName(t *testing.T) {
	if got := (&Asset{ID: "AU", Name: "Gold"}).DisplayName(); got != "Gold (AU)" {
		t.Errorf("DisplayName() = %q, want %q", got, "Gold (AU)")
	}
	if got := (&Asset{ID: "AU"}).DisplayName(); got != "AU" {
		t.Errorf("DisplayName() = %q, want %q", got, "AU")
	}
}
