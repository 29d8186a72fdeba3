package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no YAML source can
// be read.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Theme: "classic",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
