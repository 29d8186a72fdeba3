package game

import "github.com/vovakirdan/tui-wordle/internal/words"

// Mark is one scored letter of a confirmed guess.
type Mark struct {
	Letter      words.Letter
	Correctness words.Correctness
}

// Row is a fully scored guess.
type Row [words.WordSize]Mark

// Word returns the letters of the row.
func (r Row) Word() words.Word {
	var w words.Word
	for i, m := range r {
		w[i] = m.Letter
	}
	return w
}

// Solved reports whether every mark in the row is Correct.
func (r Row) Solved() bool {
	for _, m := range r {
		if m.Correctness != words.Correct {
			return false
		}
	}
	return true
}

// Score evaluates guess against target.
//
// Exact matches are marked Correct first. Every other guess position, left
// to right, claims the first target position holding the same letter that
// was neither matched exactly nor claimed before; a claim makes it
// Misplaced, no claim leaves it Incorrect. A target position matched
// exactly is never credited again as Misplaced, so each target letter
// instance is credited to at most one guess letter.
func Score(guess, target words.Word) Row {
	var row Row
	var consumed [words.WordSize]bool

	for i := range guess {
		row[i] = Mark{Letter: guess[i], Correctness: words.Incorrect}
		if guess[i] == target[i] {
			row[i].Correctness = words.Correct
			consumed[i] = true
		}
	}

	for i := range guess {
		if row[i].Correctness == words.Correct {
			continue
		}
		for j := range target {
			if consumed[j] || target[j] != guess[i] {
				continue
			}
			consumed[j] = true
			row[i].Correctness = words.Misplaced
			break
		}
	}

	return row
}
