package title

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/perfectpitch/internal/game"
	"github.com/abhisek/perfectpitch/internal/quiz"
	"github.com/abhisek/perfectpitch/internal/router"
	"github.com/abhisek/perfectpitch/internal/screen"
	"github.com/abhisek/perfectpitch/internal/screens/reference"
	"github.com/abhisek/perfectpitch/internal/screens/welcome"
	"github.com/abhisek/perfectpitch/internal/ui/components"
	"github.com/abhisek/perfectpitch/internal/ui/layout"
	"github.com/abhisek/perfectpitch/internal/ui/theme"
)

// TitleScreen lets the player pick a mode.
type TitleScreen struct {
	game *game.Game
	menu components.Menu

	// Where the menu was last drawn, for mouse clicks.
	menuX, menuY int
}

var _ screen.Screen = (*TitleScreen)(nil)

// New creates a new TitleScreen.
func New(g *game.Game) *TitleScreen {
	t := &TitleScreen{game: g}
	t.menu = components.NewMenu([]components.MenuItem{
		{Label: "1 NOTE", Action: t.start(quiz.ModeSingleNote)},
		{Label: "2 NOTES (CHORD)", Action: t.start(quiz.ModeChord)},
		{Label: "NOTE REFERENCE", Action: t.openReference},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return t
}

func (t *TitleScreen) start(m quiz.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		t.game.Push(quiz.SelectMode(m))
		return nil
	}
}

func (t *TitleScreen) openReference() tea.Cmd {
	ref := reference.New(t.game)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: ref}
	}
}

func (t *TitleScreen) Init() tea.Cmd {
	return nil
}

func (t *TitleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if t.game.HandleKey(msg) {
			return t, nil
		}
		if key.Matches(msg, t.game.Keys().Help) {
			return t, t.openReference()
		}
		var cmd tea.Cmd
		t.menu, cmd = t.menu.Update(msg)
		return t, cmd

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return t, nil
		}
		row := m.Y - t.menuY
		if row < 0 || row >= len(t.menu.Items) {
			return t, nil
		}
		if m.X < t.menuX || m.X >= t.menuX+t.menu.Width() {
			return t, nil
		}
		var cmd tea.Cmd
		t.menu, cmd = t.menu.Activate(row)
		return t, cmd
	}
	return t, nil
}

func (t *TitleScreen) View(width, height int) string {
	st := layout.NewStack(width)
	st.Center(welcome.RenderBanner(width))
	st.Gap(1)
	st.Center(theme.Subtitle.Render("Listen closely, then name the notes you heard."))
	st.Gap(2)
	x, y := st.Center(t.menu.View())
	st.Gap(2)
	st.Center(theme.Hint.Render("Press 1 or 2 to start right away"))

	content, top := st.Place(height)
	t.menuX, t.menuY = x, y+top
	return content
}

func (t *TitleScreen) Title() string {
	return "Title"
}

// KeyHints returns the footer bindings for the title screen.
func (t *TitleScreen) KeyHints() []key.Binding {
	k := t.game.Keys()
	nav := key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Navigate"))
	sel := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select"))
	return []key.Binding{k.Single, k.Chord, nav, sel, k.Help}
}
