package testutil

import (
	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/store/assetstore"
)

// WriteFavourites creates a favourites file holding assets, in order
func WriteFavourites(path string, assets ...asset.Asset) error {
	fileStore, err := assetstore.NewFileStore(path)
	if err != nil {
		return err
	}
	list := make([]*asset.Asset, 0, len(assets))
	for i := range assets {
		list = append(list, &assets[i])
	}
	return fileStore.ReplaceAll(list)
}
