package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/store/assetstore"
)

// InitialAssetsPrompt asks the user for the first favourites
type InitialAssetsPrompt func(catalog []asset.Asset) ([]string, bool, error)

// EnsureFavouritesInitialized runs the first-run prompt when the favourites file doesn't exist.
// Returns (selectedIDs, proceed, error); selectedIDs is nil when no prompt was shown.
func EnsureFavouritesInitialized(path string, prompt InitialAssetsPrompt) ([]string, bool, error) {
	if assetstore.Exists(path) {
		return nil, true, nil
	}
	if prompt == nil {
		prompt = config.PromptForInitialAssets
	}

	slog.Info("favourites file not found, prompting for initial assets", "path", path)
	selected, proceed, err := prompt(asset.Catalog())
	if err != nil {
		return nil, false, fmt.Errorf("initialize favourites: %w", err)
	}
	if selected == nil {
		selected = []string{}
	}
	return selected, proceed, nil
}
