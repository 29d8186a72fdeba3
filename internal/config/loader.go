package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "wordle.yaml"

// Environment variables that override file settings.
const (
	EnvWordsFile = "WORDLE_WORDS_FILE"
	EnvTheme     = "WORDLE_THEME"
	EnvLogLevel  = "WORDLE_LOG_LEVEL"
	EnvLogFile   = "WORDLE_LOG_FILE"
)

// Load reads the configuration.
// Search order: customPath -> ~/.wordle/configs/wordle.yaml -> ./configs/wordle.yaml -> embedded default
//
// Only an explicit customPath makes a read or parse failure an error; the
// other locations are skipped when missing or malformed.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if c, ok := readFile(path); ok {
			return c, nil
		}
	}

	embedded := Default()
	if err := yaml.Unmarshal(defaultYAML, &embedded); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

func readFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", "configs", filename)
}

// ApplyEnv overrides cfg with any WORDLE_* variables that are set and
// non-empty.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvWordsFile); v != "" {
		cfg.Dictionary.Path = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Display.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
}
