// Package game implements the word-guessing state machine: typing and
// cancelling letters, confirming guesses against the dictionary, scoring,
// keyboard hints and the Playing/Won/Lost round lifecycle.
//
// The game is synchronous and holds no lock. Callers that deliver input
// and read snapshots from different goroutines must serialize access.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// MaxAttempts is the number of guesses allowed per round.
const MaxAttempts = 6

// Phase is the overall status of the current round.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round is over.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Source picks target words. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed value in [0, n).
	Intn(n int) int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger used for round diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game is one player's word-guessing session.
type Game struct {
	dict   *words.Dictionary
	src    Source
	logger *log.Logger

	target words.Word

	guess  words.Word
	cursor int

	history  [MaxAttempts]Row
	attempts int

	hints [words.AlphabetSize]words.Correctness
	phase Phase

	stats Stats
}

// New builds a game over the given word list and starts the first round.
// The list is sorted into a dictionary; an empty list fails with
// words.ErrEmptyDictionary.
func New(list []words.Word, src Source, opts ...Option) (*Game, error) {
	dict, err := words.NewDictionary(list)
	if err != nil {
		return nil, err
	}

	g := &Game{
		dict:   dict,
		src:    src,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.newRound()
	return g, nil
}

// newRound clears all per-round state and draws a new target word.
func (g *Game) newRound() {
	g.cursor = 0
	g.attempts = 0
	g.phase = PhasePlaying
	for i := range g.hints {
		g.hints[i] = words.Unknown
	}

	g.target = g.dict.At(g.src.Intn(g.dict.Len()))
	g.logger.Debug("new round", "target", g.target.String(), "dictionary", g.dict.Len())
}

// TypeLetter appends a letter to the current guess.
// Ignored when the round is over or the guess is already full.
func (g *Game) TypeLetter(l words.Letter) {
	if g.phase != PhasePlaying || g.cursor == words.WordSize || !l.Valid() {
		return
	}
	g.guess[g.cursor] = l
	g.cursor++
}

// CancelLetter removes the last typed letter.
// Ignored when the round is over or the guess is empty.
func (g *Game) CancelLetter() {
	if g.phase != PhasePlaying || g.cursor == 0 {
		return
	}
	g.cursor--
}

// Confirm submits the current guess. In a finished round it starts a new
// one instead. Incomplete guesses and words outside the dictionary are
// ignored.
func (g *Game) Confirm() {
	if g.phase.Terminal() {
		g.newRound()
		return
	}

	if g.cursor != words.WordSize {
		return
	}
	if !g.dict.Contains(g.guess) {
		g.logger.Debug("guess rejected", "guess", g.guess.String())
		return
	}

	row := Score(g.guess, g.target)
	g.history[g.attempts] = row
	for _, m := range row {
		g.hints[m.Letter] = g.hints[m.Letter].Better(m.Correctness)
	}
	g.attempts++
	g.cursor = 0

	switch {
	case g.guess == g.target:
		g.phase = PhaseWon
		g.stats.record(true, g.attempts)
		g.logger.Info("round won", "target", g.target.String(), "attempts", g.attempts)
	case g.attempts == MaxAttempts:
		g.phase = PhaseLost
		g.stats.record(false, g.attempts)
		g.logger.Info("round lost", "target", g.target.String())
	}
}

// Handle dispatches an input event to the matching operation.
// Quit and unknown actions are left to the caller.
func (g *Game) Handle(ev core.InputEvent) {
	switch ev.Action {
	case core.ActionLetter:
		g.TypeLetter(ev.Letter)
	case core.ActionCancel:
		g.CancelLetter()
	case core.ActionConfirm:
		g.Confirm()
	}
}

// Phase returns the current round status.
func (g *Game) Phase() Phase {
	return g.phase
}

// Cursor returns how many letters of the current guess are filled.
func (g *Game) Cursor() int {
	return g.cursor
}

// CurrentGuess returns the typed letters of the current guess.
func (g *Game) CurrentGuess() []words.Letter {
	out := make([]words.Letter, g.cursor)
	copy(out, g.guess[:g.cursor])
	return out
}

// AttemptsUsed returns the number of confirmed guesses this round.
func (g *Game) AttemptsUsed() int {
	return g.attempts
}

// History returns the scored rows confirmed this round, oldest first.
func (g *Game) History() []Row {
	out := make([]Row, g.attempts)
	copy(out, g.history[:g.attempts])
	return out
}

// Hint returns the best correctness seen for a letter this round.
func (g *Game) Hint(l words.Letter) words.Correctness {
	if !l.Valid() {
		return words.Unknown
	}
	return g.hints[l]
}

// Hints returns the best correctness seen for every letter, indexed by Letter.
func (g *Game) Hints() [words.AlphabetSize]words.Correctness {
	return g.hints
}

// Target returns the word being guessed.
func (g *Game) Target() words.Word {
	return g.target
}

// Dictionary returns the sorted word list the game validates against.
func (g *Game) Dictionary() *words.Dictionary {
	return g.dict
}

// Stats returns the statistics of rounds finished in this session.
func (g *Game) Stats() Stats {
	return g.stats
}
