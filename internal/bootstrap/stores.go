package bootstrap

import (
	"fmt"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/store"
	"github.com/boolean-maybe/kiss/store/assetstore"
)

// InitStore opens the favourites file. initialIDs, when not nil, seeds a new file
// with those catalog assets.
func InitStore(path string, initialIDs []string) (*assetstore.FileStore, error) {
	fileStore, err := assetstore.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("initialize favourites store: %w", err)
	}
	if initialIDs == nil {
		return fileStore, nil
	}

	seed := store.MergeSelection(nil, asset.Catalog(), initialIDs)
	if err := fileStore.ReplaceAll(seed); err != nil {
		return nil, fmt.Errorf("seed favourites: %w", err)
	}
	return fileStore, nil
}
