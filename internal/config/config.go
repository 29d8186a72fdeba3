// Package config provides YAML-based configuration loading for the game:
// dictionary source, display theme and logging.
package config

// Config contains all user-tunable settings.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig selects the word list. An empty path means the
// built-in list.
type DictionaryConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	Theme    string `yaml:"theme"`     // "classic" or "high-contrast"
	FullHelp bool   `yaml:"full_help"` // start with the expanded help bar
}

// LogConfig defines where diagnostic logs go. The game owns the terminal,
// so logs are only written to a file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging
}
