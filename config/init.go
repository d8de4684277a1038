package config

import (
	"errors"
	"fmt"

	"github.com/boolean-maybe/kiss/asset"

	"github.com/charmbracelet/huh"
)

// PromptForInitialAssets presents a Huh form to pick the first favourites.
// Returns (selectedAssetIDs, proceed, error)
func PromptForInitialAssets(catalog []asset.Asset) ([]string, bool, error) {
	var selected []string

	options := make([]huh.Option[string], 0, len(catalog))
	for _, a := range catalog {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", a.Name, a.ID), a.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick your favourite assets").
				Description("You can change them later from the assets list").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("initial assets form: %w", err)
	}

	return selected, true, nil
}
