package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a word list",
	Long: `Check that every line of a word list is exactly five ASCII letters.

The first invalid line is reported with its line number.

Examples:
  wordle check ./words.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	path := args[0]

	list, err := words.LoadFile(path)
	if err != nil {
		if lineErr, ok := words.IsLineError(err); ok {
			fmt.Fprintf(os.Stderr, "%s:%d: %q %s\n", path, lineErr.Line, lineErr.Content, lineErr.Reason)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	dict, err := words.NewDictionary(list)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d words OK\n", path, dict.Len())
	if dups := len(list) - distinct(dict); dups > 0 {
		fmt.Printf("  %d duplicate entries\n", dups)
	}
}

// distinct counts unique words in a sorted dictionary.
func distinct(d *words.Dictionary) int {
	n := 0
	for i := 0; i < d.Len(); i++ {
		if i == 0 || d.At(i) != d.At(i-1) {
			n++
		}
	}
	return n
}
