// Package reference shows the note set and lets the player hear each note
// before starting a quiz.
package reference

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/perfectpitch/internal/game"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/notes"
	"github.com/abhisek/perfectpitch/internal/router"
	"github.com/abhisek/perfectpitch/internal/screen"
	"github.com/abhisek/perfectpitch/internal/ui/components"
	"github.com/abhisek/perfectpitch/internal/ui/layout"
	"github.com/abhisek/perfectpitch/internal/ui/theme"
)

// ReferenceScreen lists the notes with their keys and pitches.
type ReferenceScreen struct {
	game *game.Game
	hits input.HitMap
	last notes.Note
	any  bool
}

var _ screen.Screen = (*ReferenceScreen)(nil)

// New creates a new ReferenceScreen.
func New(g *game.Game) *ReferenceScreen {
	return &ReferenceScreen{game: g}
}

func (r *ReferenceScreen) Init() tea.Cmd {
	return nil
}

func (r *ReferenceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "enter" || msg.String() == "q" {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
		for i, b := range r.game.Keys().Notes {
			if key.Matches(msg, b) {
				r.play(notes.Note(i))
				break
			}
		}

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return r, nil
		}
		if t, ok := r.hits.At(m.X, m.Y); ok && t.Kind == input.TargetNote {
			r.play(t.Note)
		}
	}
	return r, nil
}

func (r *ReferenceScreen) play(n notes.Note) {
	r.last, r.any = n, true
	r.game.Preview(n)
}

func (r *ReferenceScreen) View(width, height int) string {
	r.hits.Reset()
	octave := r.game.Octave()
	keys := r.game.Keys()

	var rows []string
	rows = append(rows, theme.Subtitle.Render(fmt.Sprintf("%-6s %-8s %s", "NOTE", "KEYS", "MIDI")))
	for _, n := range notes.All() {
		line := fmt.Sprintf("%-6s %-8s %d", fmt.Sprintf("%s%d", n, octave), strings.Join(keys.Notes[n].Keys(), " "), n.Pitch(octave))
		if r.any && n == r.last {
			rows = append(rows, theme.Selected.Render(line))
		} else {
			rows = append(rows, theme.Body.Render(line))
		}
	}
	table := lipgloss.JoinVertical(lipgloss.Left, rows...)

	buttons := make([]components.Button, 0, notes.Count)
	for _, n := range notes.All() {
		state := components.ButtonNormal
		if r.any && n == r.last {
			state = components.ButtonSelected
		}
		buttons = append(buttons, components.NewButton(n.String(), state))
	}
	row := components.NewButtonRow(buttons, 1)

	st := layout.NewStack(width)
	st.Center(theme.Title.Render("NOTE REFERENCE"))
	st.Gap(1)
	st.Center(components.Card(table, 32))
	st.Gap(1)
	rowX, rowY := st.Center(row.View)
	st.Gap(1)
	st.Center(theme.Hint.Render("Press a note key or click a button to hear it"))

	content, top := st.Place(height)
	for i, n := range notes.All() {
		r.hits.Add(input.Region{
			Target: input.NoteTarget(n),
			X:      rowX + row.Offsets[i],
			Y:      rowY + top,
			Width:  row.Widths[i],
			Height: row.Height,
		})
	}
	return content
}

func (r *ReferenceScreen) Title() string {
	return "Note Reference"
}

// KeyHints returns the footer bindings for the reference screen.
func (r *ReferenceScreen) KeyHints() []key.Binding {
	listen := r.game.Keys().AnswerHelp()
	listen.SetHelp("C-B/1-7", "Listen")
	return []key.Binding{listen}
}
