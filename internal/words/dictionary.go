package words

import (
	"errors"
	"slices"
)

// ErrEmptyDictionary is returned when a dictionary would hold no words.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Dictionary is an immutable, ascending sorted list of words.
// It is safe for concurrent readers.
type Dictionary struct {
	words []Word
}

// NewDictionary sorts a copy of list and returns it as a Dictionary.
// Duplicates are kept; they do not affect lookups.
func NewDictionary(list []Word) (*Dictionary, error) {
	if len(list) == 0 {
		return nil, ErrEmptyDictionary
	}

	sorted := slices.Clone(list)
	slices.SortFunc(sorted, Word.Compare)

	return &Dictionary{words: sorted}, nil
}

// Contains reports whether w is in the dictionary using binary search.
func (d *Dictionary) Contains(w Word) bool {
	_, found := slices.BinarySearchFunc(d.words, w, Word.Compare)
	return found
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// At returns the i-th word in sorted order.
func (d *Dictionary) At(i int) Word {
	return d.words[i]
}
