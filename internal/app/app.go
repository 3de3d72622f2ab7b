package app

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/perfectpitch/internal/game"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/quiz"
	"github.com/abhisek/perfectpitch/internal/router"
	"github.com/abhisek/perfectpitch/internal/screen"
	"github.com/abhisek/perfectpitch/internal/screens/play"
	"github.com/abhisek/perfectpitch/internal/screens/result"
	"github.com/abhisek/perfectpitch/internal/screens/title"
	"github.com/abhisek/perfectpitch/internal/screens/welcome"
	"github.com/abhisek/perfectpitch/internal/ui/layout"
)

// Options configures the terminal front end.
type Options struct {
	Controller *quiz.Controller
	Player     quiz.NotePlayer
	Keys       input.KeyMap
	Octave     int

	// StartMode, when valid, starts a session as soon as the program runs.
	StartMode quiz.Mode

	Logger *slog.Logger
}

var (
	quitBinding = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit"))
	backBinding = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back"))
)

// AppModel is the root Bubble Tea model. It drives the quiz clock and
// swaps screens when the quiz changes screen.
type AppModel struct {
	router    *router.Router
	game      *game.Game
	screen    quiz.Screen
	startMode quiz.Mode
	logger    *slog.Logger
	width     int
	height    int
}

// newAppModel creates a new AppModel on the screen the controller is on.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := game.New(opts.Controller, game.Options{
		Keys:   opts.Keys,
		Player: opts.Player,
		Octave: opts.Octave,
	})
	m := AppModel{
		game:      g,
		screen:    g.Snapshot().Screen,
		startMode: opts.StartMode,
		logger:    logger,
	}
	initial := m.screenFor(m.screen)
	if m.screen == quiz.ScreenTitle && !m.startMode.Valid() {
		initial = welcome.New(func() screen.Screen { return title.New(g) })
	}
	m.router = router.New(initial)
	return m
}

func (m AppModel) screenFor(s quiz.Screen) screen.Screen {
	switch s {
	case quiz.ScreenPlaying:
		return play.New(m.game)
	case quiz.ScreenResult:
		return result.New(m.game)
	}
	return title.New(m.game)
}

func (m AppModel) Init() tea.Cmd {
	if m.startMode.Valid() {
		m.game.Push(quiz.SelectMode(m.startMode))
	}
	return tea.Batch(m.router.Active().Init(), game.TickCmd())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case game.TickMsg:
		var cmd tea.Cmd
		m, cmd = m.tick()
		return m, tea.Batch(cmd, game.TickCmd())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case tea.MouseClickMsg:
		// Screens lay out their content below the header.
		mouse := msg.Mouse()
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseClickMsg(mouse))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// tick advances the quiz and follows it to a new screen if it moved.
func (m AppModel) tick() (AppModel, tea.Cmd) {
	snap := m.game.Tick()
	if snap.Screen == m.screen {
		return m, nil
	}
	m.logger.Debug("screen change", "from", m.screen.String(), "to", snap.Screen.String(), "session", m.game.SessionID())
	m.screen = snap.Screen
	for m.router.Depth() > 1 {
		m.router.Pop()
	}
	return m, m.router.Replace(m.screenFor(snap.Screen))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	screenTitle := ""
	if active != nil {
		screenTitle = active.Title()
	}

	header := layout.RenderHeader(screenTitle, status(m.game.Snapshot()), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []key.Binding {
	var hints []key.Binding
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, backBinding)
	}
	return append(hints, quitBinding)
}

// status is the header text for the quiz screen in snap.
func status(snap quiz.Snapshot) string {
	switch snap.Screen {
	case quiz.ScreenPlaying:
		round := min(snap.RoundIndex+1, snap.TotalQuestions)
		return layout.SessionStatus(round, snap.TotalQuestions, snap.Score)
	case quiz.ScreenResult:
		return fmt.Sprintf("SCORE: %d", snap.Score)
	}
	return ""
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
