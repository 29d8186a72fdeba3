package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/render"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play",
	Long: `Start a game. A new word is picked when a round ends and Enter is pressed.

Controls:
  A-Z        - Type a letter
  Backspace  - Erase the last letter
  Enter      - Submit the guess / start a new word
  Tab        - Session statistics
  ?          - More keys
  Esc/Ctrl+C - Quit`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one session. It returns instead of exiting so that deferred
// cleanup, such as closing the log file, always runs.
func play(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	theme, err := render.ThemeByName(cfg.Display.Theme)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	list, err := loadWords(cfg.Dictionary.Path)
	if err != nil {
		return err
	}

	seed, err := cmd.Flags().GetInt64(flagSeed)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	logger.Info("starting",
		"words", len(list),
		"source", dictionaryName(cfg.Dictionary.Path),
		"theme", theme.Name,
		"seed", rc.Seed,
	)

	g, err := game.New(list, rand.New(rand.NewSource(rc.Seed)), game.WithLogger(logger))
	if err != nil {
		return err
	}

	err = tui.Run(g, rc,
		tui.WithTheme(theme),
		tui.WithLogger(logger),
		tui.WithFullHelp(cfg.Display.FullHelp),
	)
	if err != nil {
		logger.Error("program exited", "error", err)
		return err
	}
	return nil
}

// loadConfig resolves settings in order: config file, WORDLE_* environment
// variables, then command-line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyEnv(&cfg)

	overrides := []struct {
		name string
		dst  *string
	}{
		{flagWords, &cfg.Dictionary.Path},
		{flagTheme, &cfg.Display.Theme},
		{flagLogFile, &cfg.Log.File},
		{flagLogLevel, &cfg.Log.Level},
	}
	for _, o := range overrides {
		if !flags.Changed(o.name) {
			continue
		}
		v, err := flags.GetString(o.name)
		if err != nil {
			return cfg, err
		}
		*o.dst = v
	}
	return cfg, nil
}

// loadWords reads the word list at path, or the built-in list when path
// is empty.
func loadWords(path string) ([]words.Word, error) {
	if path == "" {
		return words.Default(), nil
	}
	return words.LoadFile(path)
}

func dictionaryName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// newLogger opens the configured log file. The game owns the terminal, so
// without a file logs are discarded.
func newLogger(lc config.LogConfig) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if lc.Level != "" {
		parsed, err := log.ParseLevel(lc.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
		}
		level = parsed
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", lc.File, err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordle",
		Level:           level,
	})
	return logger, closeFn, nil
}
