package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// LineError describes an invalid line in a dictionary source.
type LineError struct {
	Line    int    // 1-based line number
	Content string // the offending line, without the line terminator
	Reason  string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("words: line %d %q: %s", e.Line, e.Content, e.Reason)
}

// Load reads a newline-delimited dictionary. Every line must be exactly
// five ASCII letters; a trailing carriage return is tolerated. The first
// invalid line aborts the load with a *LineError.
func Load(r io.Reader) ([]Word, error) {
	var list []Word

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")

		if len(text) != WordSize {
			return nil, &LineError{
				Line:    line,
				Content: text,
				Reason:  fmt.Sprintf("expected %d letters, got %d", WordSize, len(text)),
			}
		}

		w, err := ParseWord(text)
		if err != nil {
			return nil, &LineError{Line: line, Content: text, Reason: "contains a non-alphabetic character"}
		}
		list = append(list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read failed after line %d: %w", line, err)
	}

	if len(list) == 0 {
		return nil, ErrEmptyDictionary
	}
	return list, nil
}

// LoadFile loads a dictionary from a file on disk.
func LoadFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Default returns the word list compiled into the binary.
func Default() []Word {
	list, err := Load(strings.NewReader(embeddedWords))
	if err != nil {
		// The embedded list is checked by tests.
		panic(err)
	}
	return list
}

// IsLineError reports whether err carries a *LineError and returns it.
func IsLineError(err error) (*LineError, bool) {
	var le *LineError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
