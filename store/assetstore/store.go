package assetstore

// FileStore is a file-based Store implementation that persists favourites as a YAML document.

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/store"

	"gopkg.in/yaml.v3"
)

// ErrConflict indicates the favourites file was modified externally since it was loaded
var ErrConflict = errors.New("favourites file was modified externally")

// FileStore keeps favourites in memory and writes the whole list on every change
type FileStore struct {
	*store.InMemoryStore

	fileMu      sync.Mutex
	path        string
	loadedMtime time.Time
}

// favouritesDocument is the on-disk layout
type favouritesDocument struct {
	Version    int           `yaml:"version"`
	Favourites []asset.Asset `yaml:"favourites"`
}

const documentVersion = 1

// NewFileStore creates a FileStore backed by path.
// A missing file is treated as an empty favourites list.
func NewFileStore(path string) (*FileStore, error) {
	slog.Debug("creating new FileStore", "path", path)
	s := &FileStore{
		InMemoryStore: store.NewInMemoryStore(),
		path:          path,
	}
	if err := s.load(); err != nil {
		slog.Error("failed to load favourites during store initialization", "path", path, "error", err)
		return nil, fmt.Errorf("loading favourites: %w", err)
	}
	slog.Info("favourites store initialized", "path", path, "num_assets", len(s.GetAll()))
	return s, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the backing file is present (first-run detection)
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Add appends an asset and saves the file
func (s *FileStore) Add(a *asset.Asset) error {
	return s.InMemoryStore.MutateWithCommit(func(assets []*asset.Asset) ([]*asset.Asset, error) {
		return store.AddAsset(assets, a)
	}, s.save)
}

// Update replaces a favourite, moves it to position and saves the file
func (s *FileStore) Update(a *asset.Asset, position int) error {
	return s.InMemoryStore.MutateWithCommit(func(assets []*asset.Asset) ([]*asset.Asset, error) {
		return store.UpdateAsset(assets, a, position)
	}, s.save)
}

// Remove deletes a favourite and saves the file
func (s *FileStore) Remove(id string) error {
	return s.InMemoryStore.MutateWithCommit(func(assets []*asset.Asset) ([]*asset.Asset, error) {
		return store.RemoveAsset(assets, id)
	}, s.save)
}

// ReplaceAll stores a complete favourites list and saves the file
func (s *FileStore) ReplaceAll(assets []*asset.Asset) error {
	return s.InMemoryStore.MutateWithCommit(func([]*asset.Asset) ([]*asset.Asset, error) {
		return store.Normalize(assets)
	}, s.save)
}

// Reload re-reads the file and notifies listeners
func (s *FileStore) Reload() error {
	slog.Info("reloading favourites from disk", "path", s.path)
	if err := s.load(); err != nil {
		slog.Error("error reloading favourites from disk", "path", s.path, "error", err)
		return err
	}
	s.NotifyListeners()
	return nil
}

func (s *FileStore) load() error {
	assets, mtime, err := readFile(s.path)
	if err != nil {
		return err
	}
	if err := s.InMemoryStore.Load(assets); err != nil {
		return err
	}

	s.fileMu.Lock()
	s.loadedMtime = mtime
	s.fileMu.Unlock()
	return nil
}

// readFile parses the favourites file; a missing file yields no assets and a zero mtime
func readFile(path string) ([]*asset.Asset, time.Time, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("stat file: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("reading file: %w", err)
	}

	var doc favouritesDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, time.Time{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if doc.Version > documentVersion {
		slog.Warn("favourites file has a newer version", "path", path, "version", doc.Version)
	}

	assets := make([]*asset.Asset, 0, len(doc.Favourites))
	seen := make(map[string]bool, len(doc.Favourites))
	for i := range doc.Favourites {
		a := doc.Favourites[i]
		a.ID = asset.NormalizeID(a.ID)
		if verr := asset.Validate(&a); verr != nil {
			slog.Warn("skipping invalid favourite", "path", path, "index", i, "error", verr)
			continue
		}
		if seen[a.ID] {
			slog.Warn("skipping duplicate favourite", "path", path, "asset_id", a.ID)
			continue
		}
		seen[a.ID] = true
		assets = append(assets, &a)
	}
	return assets, info.ModTime(), nil
}

// save writes the favourites file. Called under the store write lock.
func (s *FileStore) save(assets []*asset.Asset) error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	// optimistic locking against external edits
	if info, err := os.Stat(s.path); err == nil {
		if !s.loadedMtime.IsZero() && !info.ModTime().Equal(s.loadedMtime) {
			slog.Warn("favourites modified externally, conflict detected", "path", s.path,
				"loaded_mtime", s.loadedMtime, "file_mtime", info.ModTime())
			return ErrConflict
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat file for optimistic locking: %w", err)
	}

	doc := favouritesDocument{Version: documentVersion, Favourites: make([]asset.Asset, 0, len(assets))}
	for _, a := range assets {
		doc.Favourites = append(doc.Favourites, *a)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling favourites: %w", err)
	}

	//nolint:gosec // G301: 0755 is appropriate for the data directory
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	//nolint:gosec // G306: 0644 is appropriate for user data
	if err := os.WriteFile(s.path, out, 0644); err != nil {
		slog.Error("failed to write favourites file", "path", s.path, "error", err)
		return fmt.Errorf("writing file: %w", err)
	}

	if info, err := os.Stat(s.path); err == nil {
		s.loadedMtime = info.ModTime()
	}
	slog.Debug("favourites saved", "path", s.path, "num_assets", len(assets))
	return nil
}

// ensure FileStore implements Store
var _ store.Store = (*FileStore)(nil)
