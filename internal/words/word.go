package words

import (
	"errors"
	"fmt"
)

// WordSize is the number of letters in every word.
const WordSize = 5

// ErrWordLength is returned when a word does not have exactly WordSize letters.
var ErrWordLength = errors.New("words: word must be exactly 5 letters")

// Word is a fixed-length sequence of letters.
type Word [WordSize]Letter

// ParseWord converts a 5-byte ASCII string into a Word, ignoring case.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordSize {
		return w, fmt.Errorf("%w: %q has %d", ErrWordLength, s, len(s))
	}
	for i := 0; i < WordSize; i++ {
		l, ok := ParseLetter(s[i])
		if !ok {
			return w, fmt.Errorf("words: %q has non-alphabetic byte %q at position %d", s, s[i], i+1)
		}
		w[i] = l
	}
	return w, nil
}

// MustParseWord is like ParseWord but panics on error.
// Intended for constants and tests.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns the word in uppercase.
func (w Word) String() string {
	b := make([]byte, WordSize)
	for i, l := range w {
		b[i] = l.Byte()
	}
	return string(b)
}

// Compare orders words lexicographically: negative if w sorts before
// other, zero if equal, positive otherwise.
func (w Word) Compare(other Word) int {
	for i := range w {
		if w[i] != other[i] {
			if w[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Count returns how many times l appears in the word.
func (w Word) Count(l Letter) int {
	n := 0
	for _, x := range w {
		if x == l {
			n++
		}
	}
	return n
}
