package bootstrap

import (
	"fmt"

	"github.com/boolean-maybe/kiss/config"
)

// LoadConfig loads the application configuration for a command line.
// Returns an error if configuration loading fails.
func LoadConfig(args []string) (*config.Config, error) {
	cfg, err := config.LoadConfigWithArgs(args)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
