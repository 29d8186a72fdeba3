package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// KeyMap defines the key bindings for the game screen.
// It translates Bubble Tea key messages to game input events and feeds
// the help bar.
type KeyMap struct {
	Letters key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Stats   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Stats, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Letters, k.Cancel, k.Confirm},
		{k.Stats, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	letters := make([]string, 0, 2*words.AlphabetSize)
	for l := words.A; l <= words.Z; l++ {
		letters = append(letters, string(l.Rune()+'a'-'A'), l.String())
	}

	return KeyMap{
		Letters: key.NewBinding(
			key.WithKeys(letters...),
			key.WithHelp("a-z", "type letter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit / new word"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "stats"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates a key message to a game input event.
// Keys without a game meaning (Tab, ?, arrows...) map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.InputEvent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionEvent(core.ActionQuit)
	case key.Matches(msg, k.Confirm):
		return core.ActionEvent(core.ActionConfirm)
	case key.Matches(msg, k.Cancel):
		return core.ActionEvent(core.ActionCancel)
	case key.Matches(msg, k.Letters):
		if l, ok := words.ParseLetter(byte(msg.Runes[0])); ok {
			return core.LetterEvent(l)
		}
	}
	return core.ActionEvent(core.ActionNone)
}
