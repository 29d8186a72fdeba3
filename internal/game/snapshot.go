package game

import "github.com/vovakirdan/tui-wordle/internal/words"

// Snapshot is a read-only copy of everything a renderer needs for a frame.
type Snapshot struct {
	Phase        Phase
	Guess        []words.Letter // typed letters of the current guess
	History      []Row          // confirmed rows, oldest first
	AttemptsUsed int
	Hints        [words.AlphabetSize]words.Correctness
	// Target is only filled once the round is over.
	Target *words.Word
	Stats  Stats
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        g.phase,
		Guess:        g.CurrentGuess(),
		History:      g.History(),
		AttemptsUsed: g.attempts,
		Hints:        g.hints,
		Stats:        g.stats,
	}
	if g.phase.Terminal() {
		target := g.target
		snap.Target = &target
	}
	return snap
}
