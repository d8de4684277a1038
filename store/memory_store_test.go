package store

import (
	"errors"
	"testing"

	"github.com/boolean-maybe/kiss/asset"

	"github.com/google/go-cmp/cmp"
)

func seededStore(t *testing.T, ids ...string) *InMemoryStore {
	t.Helper()
	s := NewInMemoryStore()
	for _, id := range ids {
		if err := s.Add(&asset.Asset{ID: id, Name: id + " name"}); err != nil {
			t.Fatalf("Add(%s) error = %v", id, err)
		}
	}
	return s
}

func TestInMemoryStore_AddNormalizesAndRejectsDuplicates(t *testing.T) {
	s := seededStore(t, "au")

	if got := s.GetAsset("AU"); got == nil || got.ID != "AU" {
		t.Fatalf("GetAsset(AU) = %v, want normalized asset", got)
	}
	if err := s.Add(&asset.Asset{ID: " Au ", Name: "Gold"}); !errors.Is(err, ErrExists) {
		t.Errorf("Add(duplicate) error = %v, want ErrExists", err)
	}

	var verr *asset.ValidationError
	if err := s.Add(&asset.Asset{ID: "AG"}); !errors.As(err, &verr) {
		t.Errorf("Add(no name) error = %v, want ValidationError", err)
	}
}

func TestInMemoryStore_UpdatePosition(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		position int
		want     []string
	}{
		{name: "move last to first", id: "C", position: 1, want: []string{"C", "A", "B"}},
		{name: "move first to last", id: "A", position: 3, want: []string{"B", "C", "A"}},
		{name: "keep position", id: "B", position: 2, want: []string{"A", "B", "C"}},
		{name: "clamp below range", id: "B", position: -4, want: []string{"B", "A", "C"}},
		{name: "clamp above range", id: "A", position: 99, want: []string{"B", "C", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededStore(t, "A", "B", "C")
			if err := s.Update(&asset.Asset{ID: tt.id, Name: "renamed"}, tt.position); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, IDs(s.GetAll())); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			if got := s.GetAsset(tt.id).Name; got != "renamed" {
				t.Errorf("Name = %q, want renamed", got)
			}
		})
	}
}

func TestInMemoryStore_UpdateMissing(t *testing.T) {
	s := seededStore(t, "A")
	if err := s.Update(&asset.Asset{ID: "Z", Name: "z"}, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
	if err := s.Remove("Z"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(missing) error = %v, want ErrNotFound", err)
	}
}

func TestInMemoryStore_GetAllReturnsCopies(t *testing.T) {
	s := seededStore(t, "A")
	all := s.GetAll()
	all[0].Name = "mutated"
	if got := s.GetAsset("A").Name; got == "mutated" {
		t.Error("GetAll() leaked internal storage")
	}
}

func TestInMemoryStore_Position(t *testing.T) {
	s := seededStore(t, "A", "B")
	if got := s.Position("b"); got != 2 {
		t.Errorf("Position(b) = %d, want 2", got)
	}
	if got := s.Position("Z"); got != 0 {
		t.Errorf("Position(Z) = %d, want 0", got)
	}
}

func TestInMemoryStore_Listeners(t *testing.T) {
	s := NewInMemoryStore()

	calls := 0
	id := s.AddListener(func() { calls++ })

	_ = s.Add(&asset.Asset{ID: "A", Name: "a"})
	_ = s.Remove("missing") // failed mutation does not notify
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	s.RemoveListener(id)
	_ = s.Remove("A")
	if calls != 1 {
		t.Errorf("calls after RemoveListener = %d, want 1", calls)
	}
}

func TestMergeSelection(t *testing.T) {
	favourites := []*asset.Asset{
		{ID: "EUR", Name: "My Euro"},
		{ID: "AU", Name: "My Gold"},
		{ID: "AG", Name: "My Silver"},
	}
	catalog := []asset.Asset{
		{ID: "AU", Name: "Gold"},
		{ID: "AG", Name: "Silver"},
		{ID: "BTC", Name: "Bitcoin"},
		{ID: "EUR", Name: "Euro"},
	}

	got := MergeSelection(favourites, catalog, []string{"btc", "au", "eur"})

	want := []*asset.Asset{
		{ID: "EUR", Name: "My Euro"},
		{ID: "AU", Name: "My Gold"},
		{ID: "BTC", Name: "Bitcoin"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeSelection mismatch (-want +got):\n%s", diff)
	}
}
