package core

import "github.com/vovakirdan/tui-wordle/internal/words"

// Action is a semantic game action, abstracted from physical key presses.
// Mapping raw keys to actions is the platform's job.
type Action int

const (
	ActionNone    Action = iota
	ActionLetter         // A-Z - type a letter into the current guess
	ActionCancel         // Backspace - remove the last typed letter
	ActionConfirm        // Enter - submit the guess, or start a new round
	ActionQuit           // Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLetter:
		return "Letter"
	case ActionCancel:
		return "Cancel"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one discrete input delivered to the game.
// Letter is only meaningful for ActionLetter.
type InputEvent struct {
	Action Action
	Letter words.Letter
}

// LetterEvent builds the event for a typed letter.
func LetterEvent(l words.Letter) InputEvent {
	return InputEvent{Action: ActionLetter, Letter: l}
}

// ActionEvent builds an event that carries no letter.
func ActionEvent(a Action) InputEvent {
	return InputEvent{Action: a}
}

// String returns a compact description, e.g. "Letter(Q)" or "Confirm".
func (e InputEvent) String() string {
	if e.Action == ActionLetter {
		return "Letter(" + e.Letter.String() + ")"
	}
	return e.Action.String()
}
