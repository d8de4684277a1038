package config

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID generates a 10-character random alphanumeric ID (lowercase)
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 10)
	if err != nil {
		// Fallback so callers never get an empty identifier
		return "error00000"
	}
	return id
}

// build information, set with -ldflags "-X github.com/boolean-maybe/kiss/config.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
