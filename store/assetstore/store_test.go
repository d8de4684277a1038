package assetstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/store"

	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "favourites.yaml")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return s, path
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s, path := newTestStore(t)

	if got := len(s.GetAll()); got != 0 {
		t.Errorf("len(GetAll()) = %d, want 0", got)
	}
	if Exists(path) {
		t.Error("file should not be created until the first write")
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	s, path := newTestStore(t)

	for _, a := range []*asset.Asset{
		{ID: "au", Name: "Gold", ColorCode: "#FFD700"},
		{ID: "BTC", Name: "Bitcoin"},
		{ID: "EUR", Name: "Euro"},
	} {
		if err := s.Add(a); err != nil {
			t.Fatalf("Add(%s) error = %v", a.ID, err)
		}
	}
	if err := s.Update(&asset.Asset{ID: "EUR", Name: "Euro zone"}, 1); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := s.Remove("btc"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error = %v", err)
	}

	want := []*asset.Asset{
		{ID: "EUR", Name: "Euro zone"},
		{ID: "AU", Name: "Gold", ColorCode: "#FFD700"},
	}
	if diff := cmp.Diff(want, reopened.GetAll()); diff != "" {
		t.Errorf("reopened favourites mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_FailedSaveLeavesStateUnchanged(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Add(&asset.Asset{ID: "AU", Name: "Gold"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	err := s.Add(&asset.Asset{ID: "AU", Name: "Gold again"})
	if !errors.Is(err, store.ErrExists) {
		t.Fatalf("Add(duplicate) error = %v, want ErrExists", err)
	}
	if got := s.GetAsset("AU").Name; got != "Gold" {
		t.Errorf("Name = %q, want Gold", got)
	}
}

func TestFileStore_ConflictOnExternalEdit(t *testing.T) {
	s, path := newTestStore(t)

	if err := s.Add(&asset.Asset{ID: "AU", Name: "Gold"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// bump mtime as if another process wrote the file
	future := time.Now().Add(2 * time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	err := s.Add(&asset.Asset{ID: "AG", Name: "Silver"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Add() error = %v, want ErrConflict", err)
	}
	if s.GetAsset("AG") != nil {
		t.Error("conflicting write should not be applied in memory")
	}

	if err := s.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if err := s.Add(&asset.Asset{ID: "AG", Name: "Silver"}); err != nil {
		t.Errorf("Add() after reload error = %v", err)
	}
}

func TestFileStore_SkipsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favourites.yaml")
	content := `version: 1
favourites:
  - id: au
    name: Gold
  - id: ""
    name: Nameless
  - id: AU
    name: Duplicate
  - id: ag
    name: Silver
    color: "not-a-color"
  - id: btc
    name: Bitcoin
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if diff := cmp.Diff([]string{"AU", "BTC"}, store.IDs(s.GetAll())); diff != "" {
		t.Errorf("loaded ids mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favourites.yaml")
	if err := os.WriteFile(path, []byte("favourites: [unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := NewFileStore(path); err == nil {
		t.Error("NewFileStore() expected error for invalid yaml")
	}
}

func TestFileStore_NotifiesListeners(t *testing.T) {
	s, _ := newTestStore(t)

	calls := 0
	s.AddListener(func() { calls++ })

	_ = s.Add(&asset.Asset{ID: "AU", Name: "Gold"})
	_ = s.ReplaceAll([]*asset.Asset{{ID: "AG", Name: "Silver"}})
	_ = s.Remove("missing")

	if calls != 2 {
		t.Errorf("listener calls = %d, want 2", calls)
	}
}
