// Package tui runs the game as a Bubble Tea program: it maps keys to game
// input, draws each frame through the render package and shows the help
// bar and the session statistics view.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/render"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a game session.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	theme     render.Theme
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	width     int
	height    int
	showStats bool
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the board palette.
func WithTheme(t render.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithLogger sets the logger used for input and round events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithFullHelp starts with the expanded help bar.
func WithFullHelp(on bool) Option {
	return func(m *Model) { m.help.ShowAll = on }
}

// NewModel creates a new Bubble Tea model driving g.
// cfg provides the initial screen size until the first resize message.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:  render.Classic,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: log.New(io.Discard),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.fitScreen()
	return m
}

// fitScreen sizes the board to the rows left above the help bar, which
// grows when the full help is shown.
func (m *Model) fitScreen() {
	reserved := lipgloss.Height(m.help.View(m.keys)) + 1
	m.screen.Resize(m.width, m.height-reserved)
}

// Init implements tea.Model. The game is turn based, so there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		return m, nil
	}

	ev := m.keys.MapKey(msg)
	switch ev.Action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.logger.Info("quit", "stats_played", m.game.Stats().Played)
		m.quitting = true
		return m, tea.Quit
	}

	// Any game input brings the board back into view.
	m.showStats = false

	before := m.game.Phase()
	m.game.Handle(ev)
	after := m.game.Phase()

	m.logger.Debug("input", "event", ev.String(), "phase", after)
	if !before.Terminal() && after.Terminal() {
		m.logger.Info("round finished",
			"result", after,
			"attempts", m.game.AttemptsUsed(),
			"target", m.game.Target(),
		)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showStats {
		body = renderStats(m.game.Stats(), m.width)
	} else {
		render.Board(m.screen, m.game.Snapshot(), m.theme)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for g and blocks until the player quits.
func Run(g *game.Game, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(g, cfg, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
