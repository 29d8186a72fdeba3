// Package render draws a game snapshot onto a core.Screen: the guess grid,
// the keyboard heat-map and the end-of-round overlay. It only reads plain
// data and never touches the game itself.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// Theme maps letter correctness to screen colors.
type Theme struct {
	Name      string
	Correct   core.Color
	Misplaced core.Color
	Incorrect core.Color
	Unknown   core.Color
	Border    core.Color // empty tile outline
	Active    core.Color // outline of the tile under the cursor
	Win       core.Color
	Loss      core.Color
}

// Classic is the green/yellow/gray palette.
var Classic = Theme{
	Name:      "classic",
	Correct:   core.ColorGreen,
	Misplaced: core.ColorYellow,
	Incorrect: core.ColorDarkGray,
	Unknown:   core.ColorDefault,
	Border:    core.ColorGray,
	Active:    core.ColorBrightWhite,
	Win:       core.ColorGreen,
	Loss:      core.ColorRed,
}

// HighContrast swaps green/yellow for orange/blue.
var HighContrast = Theme{
	Name:      "high-contrast",
	Correct:   core.ColorOrange,
	Misplaced: core.ColorBlue,
	Incorrect: core.ColorDarkGray,
	Unknown:   core.ColorDefault,
	Border:    core.ColorGray,
	Active:    core.ColorBrightWhite,
	Win:       core.ColorOrange,
	Loss:      core.ColorRed,
}

var themes = []Theme{Classic, HighContrast}

// ThemeByName looks up a theme, ignoring case. An empty name selects Classic.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return Classic, nil
	}
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("render: unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ColorFor returns the color used for a correctness value.
func (t Theme) ColorFor(c words.Correctness) core.Color {
	switch c {
	case words.Correct:
		return t.Correct
	case words.Misplaced:
		return t.Misplaced
	case words.Incorrect:
		return t.Incorrect
	default:
		return t.Unknown
	}
}
