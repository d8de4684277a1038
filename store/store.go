package store

import (
	"errors"

	"github.com/boolean-maybe/kiss/asset"
)

// ErrNotFound is returned when an asset is not among the favourites
var ErrNotFound = errors.New("asset not found")

// ErrExists is returned when adding an asset that is already a favourite
var ErrExists = errors.New("asset already exists")

// Store is the interface for favourite asset storage engines.
// Implementations must be thread-safe and notify listeners on changes.
// Favourites are ordered; positions are 1-based.
type Store interface {
	// AddListener registers a callback for change notifications.
	// returns a listener ID that can be used to remove the listener.
	AddListener(listener ChangeListener) int

	// RemoveListener removes a previously registered listener by ID
	RemoveListener(id int)

	// GetAll returns a copy of the favourites in display order
	GetAll() []*asset.Asset

	// GetAsset retrieves a favourite by ID, nil if absent
	GetAsset(id string) *asset.Asset

	// Position returns the 1-based position of a favourite, 0 if absent
	Position(id string) int

	// Add appends an asset to the favourites.
	// Returns ErrExists for duplicates, or a validation error.
	Add(a *asset.Asset) error

	// Update replaces an existing favourite and moves it to position.
	// Out-of-range positions are clamped.
	Update(a *asset.Asset, position int) error

	// Remove deletes a favourite by ID
	Remove(id string) error

	// ReplaceAll stores the given list as the complete favourites list
	ReplaceAll(assets []*asset.Asset) error
}

// ChangeListener is called when the store's data changes
type ChangeListener func()
