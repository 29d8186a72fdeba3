// Package words holds the value types of the game (letters, words,
// per-letter correctness) and the sorted dictionary the guesses are
// checked against.
package words

// Letter is one of the 26 Latin letters. The zero value is A and the
// ordering is alphabetical.
type Letter uint8

const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// AlphabetSize is the number of distinct letters.
const AlphabetSize = 26

// ParseLetter converts an ASCII byte to a Letter, ignoring case.
// It returns false for anything that is not A-Z or a-z.
func ParseLetter(b byte) (Letter, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return Letter(b - 'A'), true
	case b >= 'a' && b <= 'z':
		return Letter(b - 'a'), true
	default:
		return 0, false
	}
}

// Byte returns the uppercase ASCII byte for the letter.
func (l Letter) Byte() byte {
	return 'A' + byte(l)
}

// Rune returns the uppercase rune for the letter.
func (l Letter) Rune() rune {
	return rune(l.Byte())
}

// String returns the uppercase letter.
func (l Letter) String() string {
	return string(l.Byte())
}

// Valid reports whether l is within A-Z.
func (l Letter) Valid() bool {
	return l < AlphabetSize
}

// Correctness ranks how well a guessed letter matched the target.
// The order matters: hints keep the maximum ever observed.
// Unknown only appears in letter hints, never in a scored row.
type Correctness uint8

const (
	Unknown Correctness = iota
	Incorrect
	Misplaced
	Correct
)

// String returns a lowercase name for the correctness.
func (c Correctness) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case Incorrect:
		return "incorrect"
	case Misplaced:
		return "misplaced"
	case Correct:
		return "correct"
	default:
		return "invalid"
	}
}

// Better returns the higher of two correctness values.
func (c Correctness) Better(other Correctness) Correctness {
	if other > c {
		return other
	}
	return c
}
