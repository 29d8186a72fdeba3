package render

import (
	"fmt"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// Layout constants, in screen cells.
const (
	tileW   = 5 // ┌───┐
	tileH   = 3
	tileGap = 1

	gridW = words.WordSize*tileW + (words.WordSize-1)*tileGap
	gridH = game.MaxAttempts * tileH

	titleRow    = 0
	gridTop     = 1
	keyboardTop = gridTop + gridH + 1

	// MinWidth and MinHeight are the smallest screen that fits the board.
	MinWidth  = gridW
	MinHeight = keyboardTop + keyboardH

	keyboardH = 3
)

const title = "W O R D L E"

var keyboardRows = [keyboardH]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Board draws the whole frame for snap. The screen is cleared first.
func Board(dst *core.Screen, snap game.Snapshot, theme Theme) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		drawTooSmall(dst)
		return
	}

	left := (dst.Width() - gridW) / 2

	dst.DrawTextCentered(titleRow, title, core.ColorBrightWhite)
	drawGrid(dst, snap, theme, left, gridTop)
	drawKeyboard(dst, snap.Hints, theme, keyboardTop)

	if snap.Phase.Terminal() {
		drawEndScreen(dst, snap, theme, core.NewRect(left, gridTop, gridW, gridH))
	}
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), core.ColorGray)
}

// drawGrid renders the confirmed rows, the row being typed and the empty
// rows below it.
func drawGrid(dst *core.Screen, snap game.Snapshot, theme Theme, left, top int) {
	for row := 0; row < game.MaxAttempts; row++ {
		y := top + row*tileH

		for col := 0; col < words.WordSize; col++ {
			x := left + col*(tileW+tileGap)

			switch {
			case row < len(snap.History):
				mark := snap.History[row][col]
				color := theme.ColorFor(mark.Correctness)
				drawTile(dst, x, y, mark.Letter.Rune(), color, color)

			case row == len(snap.History) && snap.Phase == game.PhasePlaying:
				border := theme.Border
				if col == len(snap.Guess) {
					border = theme.Active
				}
				letter := ' '
				if col < len(snap.Guess) {
					letter = snap.Guess[col].Rune()
					border = theme.Unknown
				}
				drawTile(dst, x, y, letter, theme.Unknown, border)

			default:
				drawTile(dst, x, y, ' ', theme.Unknown, theme.Border)
			}
		}
	}
}

func drawTile(dst *core.Screen, x, y int, letter rune, letterColor, border core.Color) {
	dst.DrawBox(core.NewRect(x, y, tileW, tileH), border)
	dst.SetWithColor(x+tileW/2, y+1, letter, letterColor)
}

// drawKeyboard renders a QWERTY layout where every key takes the color
// of the best hint known for its letter.
func drawKeyboard(dst *core.Screen, hints [words.AlphabetSize]words.Correctness, theme Theme, top int) {
	for i, row := range keyboardRows {
		width := len(row)*2 - 1
		x := (dst.Width() - width) / 2
		for j := 0; j < len(row); j++ {
			l, _ := words.ParseLetter(row[j])
			dst.SetWithColor(x+j*2, top+i, l.Rune(), theme.ColorFor(hints[l]))
		}
	}
}

// drawEndScreen overlays the result of a finished round on the grid.
func drawEndScreen(dst *core.Screen, snap game.Snapshot, theme Theme, area core.Rect) {
	headline, color := "YOU LOST", theme.Loss
	detail := "Out of guesses"
	if snap.Phase == game.PhaseWon {
		headline, color = "YOU WON!", theme.Win
		detail = fmt.Sprintf("Solved in %d/%d", snap.AttemptsUsed, game.MaxAttempts)
	}

	lines := []string{headline, detail}
	if snap.Target != nil {
		lines = append(lines, "The word was "+snap.Target.String())
	}
	s := snap.Stats
	lines = append(lines,
		fmt.Sprintf("Won %d/%d  Streak %d", s.Wins, s.Played, s.CurrentStreak),
		"Enter: new word",
	)

	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = area.X + (area.W-box.W)/2
	box.Y = area.Y + (area.H-box.H)/2

	dst.FillRect(box)
	dst.DrawBox(box, color)

	centerX := box.X + box.W/2
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextWithColor(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
