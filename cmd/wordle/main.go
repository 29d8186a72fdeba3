// wordle is a word-guessing game for the terminal.
//
// Usage:
//
//	wordle                 - Play (same as "wordle play")
//	wordle play            - Play
//	wordle check <file>    - Validate a word list
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible word sequence
//	--config <path>      - Path to a custom config YAML
//	--words <path>       - Word list to use instead of the built-in one
//	--theme <name>       - Color theme: classic, high-contrast
//	--log-file <path>    - Write diagnostic logs to this file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Global flag names
const (
	flagSeed     = "seed"
	flagConfig   = "config"
	flagWords    = "words"
	flagTheme    = "theme"
	flagLogFile  = "log-file"
	flagLogLevel = "log-level"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", r)
			os.Exit(1)
		}
	}()

	// A .env file is optional.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - guess the five-letter word in six tries",
	Long: `Wordle is a terminal word-guessing game. Type a five-letter word and
press Enter. Each letter is colored after every guess:

  green   - right letter, right spot
  yellow  - the word has this letter elsewhere
  gray    - the letter is not in the word (or all its copies are found)

Available commands:
  play     - Play (default)
  check    - Validate a word list file

Examples:
  wordle
  wordle --theme high-contrast
  wordle --words ./my-words.txt --seed 42
  wordle check ./my-words.txt`,
	Run: runPlay,
}

func init() {
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
}

// addGlobalFlags registers the persistent flags shared by all subcommands.
func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Int64(flagSeed, 0, "RNG seed (0 = random based on time)")
	flags.String(flagConfig, "", "Path to custom config YAML")
	flags.String(flagWords, "", "Path to a newline-delimited word list")
	flags.String(flagTheme, "", "Color theme: classic, high-contrast")
	flags.String(flagLogFile, "", "Write logs to this file")
	flags.String(flagLogLevel, "", "Log level: debug, info, warn, error")
}
