package store

import (
	"fmt"
	"sync"

	"github.com/boolean-maybe/kiss/asset"
)

// InMemoryStore is an in-memory favourites list.
// Useful for testing and as the base of file-backed stores.
type InMemoryStore struct {
	mu             sync.RWMutex
	assets         []*asset.Asset
	listeners      map[int]ChangeListener
	nextListenerID int
}

// NewInMemoryStore creates a new in-memory favourites store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		listeners:      make(map[int]ChangeListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
	}
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *InMemoryStore) AddListener(listener ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *InMemoryStore) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// NotifyListeners calls all registered listeners
func (s *InMemoryStore) NotifyListeners() {
	s.mu.RLock()
	listeners := make([]ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// GetAll returns a copy of the favourites in display order
func (s *InMemoryStore) GetAll() []*asset.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*asset.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		out = append(out, a.Clone())
	}
	return out
}

// GetAsset retrieves a favourite by ID
func (s *InMemoryStore) GetAsset(id string) *asset.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.assets[i].Clone()
	}
	return nil
}

// Position returns the 1-based position of a favourite, 0 if absent
func (s *InMemoryStore) Position(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(id) + 1
}

// Add appends an asset to the favourites
func (s *InMemoryStore) Add(a *asset.Asset) error {
	return s.Mutate(func(assets []*asset.Asset) ([]*asset.Asset, error) {
		return AddAsset(assets, a)
	})
}

// Update replaces an existing favourite and moves it to position
func (s *InMemoryStore) Update(a *asset.Asset, position int) error {
	return s.Mutate(func(assets []*asset.Asset) ([]*asset.Asset, error) {
		return UpdateAsset(assets, a, position)
	})
}

// Remove deletes a favourite by ID
func (s *InMemoryStore) Remove(id string) error {
	return s.Mutate(func(assets []*asset.Asset) ([]*asset.Asset, error) {
		return RemoveAsset(assets, id)
	})
}

// ReplaceAll stores the given list as the complete favourites list
func (s *InMemoryStore) ReplaceAll(assets []*asset.Asset) error {
	return s.Mutate(func([]*asset.Asset) ([]*asset.Asset, error) {
		return Normalize(assets)
	})
}

// Mutate applies fn to a copy of the favourites and stores the result.
// Listeners are notified only when fn succeeds.
func (s *InMemoryStore) Mutate(fn func([]*asset.Asset) ([]*asset.Asset, error)) error {
	return s.MutateWithCommit(fn, nil)
}

// MutateWithCommit is Mutate with a commit hook that runs under the write lock
// before the new list is published. A commit error discards the change.
func (s *InMemoryStore) MutateWithCommit(fn func([]*asset.Asset) ([]*asset.Asset, error), commit func([]*asset.Asset) error) error {
	s.mu.Lock()
	current := make([]*asset.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		current = append(current, a.Clone())
	}

	next, err := fn(current)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if commit != nil {
		if err := commit(next); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.assets = next
	s.mu.Unlock()

	s.NotifyListeners()
	return nil
}

// Load replaces the favourites without notifying listeners
func (s *InMemoryStore) Load(assets []*asset.Asset) error {
	normalized, err := Normalize(assets)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.assets = normalized
	s.mu.Unlock()
	return nil
}

func (s *InMemoryStore) indexLocked(id string) int {
	return indexOf(s.assets, id)
}

func indexOf(assets []*asset.Asset, id string) int {
	id = asset.NormalizeID(id)
	for i, a := range assets {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// AddAsset appends a validated copy of a to assets
func AddAsset(assets []*asset.Asset, a *asset.Asset) ([]*asset.Asset, error) {
	c := a.Clone()
	c.ID = asset.NormalizeID(c.ID)
	if verr := asset.Validate(c); verr != nil {
		return nil, fmt.Errorf("add asset: %w", verr)
	}
	if indexOf(assets, c.ID) >= 0 {
		return nil, fmt.Errorf("add asset %s: %w", c.ID, ErrExists)
	}
	return append(assets, c), nil
}

// UpdateAsset replaces the asset with a's ID and moves it to a 1-based position
func UpdateAsset(assets []*asset.Asset, a *asset.Asset, position int) ([]*asset.Asset, error) {
	c := a.Clone()
	c.ID = asset.NormalizeID(c.ID)
	if verr := asset.Validate(c); verr != nil {
		return nil, fmt.Errorf("update asset: %w", verr)
	}

	i := indexOf(assets, c.ID)
	if i < 0 {
		return nil, fmt.Errorf("update asset %s: %w", c.ID, ErrNotFound)
	}
	assets = append(assets[:i], assets[i+1:]...)

	// clamp into [1, len+1]
	if position < 1 {
		position = 1
	}
	if position > len(assets)+1 {
		position = len(assets) + 1
	}
	idx := position - 1
	assets = append(assets, nil)
	copy(assets[idx+1:], assets[idx:])
	assets[idx] = c
	return assets, nil
}

// RemoveAsset drops the asset with the given ID
func RemoveAsset(assets []*asset.Asset, id string) ([]*asset.Asset, error) {
	i := indexOf(assets, id)
	if i < 0 {
		return nil, fmt.Errorf("remove asset %s: %w", asset.NormalizeID(id), ErrNotFound)
	}
	return append(assets[:i], assets[i+1:]...), nil
}

// Normalize validates assets and drops nil entries
func Normalize(assets []*asset.Asset) ([]*asset.Asset, error) {
	out := make([]*asset.Asset, 0, len(assets))
	for _, a := range assets {
		if a == nil {
			continue
		}
		next, err := AddAsset(out, a)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// ensure InMemoryStore implements Store
var _ Store = (*InMemoryStore)(nil)
