package result

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/perfectpitch/internal/game"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/screen"
	"github.com/abhisek/perfectpitch/internal/ui/components"
	"github.com/abhisek/perfectpitch/internal/ui/layout"
	"github.com/abhisek/perfectpitch/internal/ui/theme"
)

// ResultScreen shows the final score of a session.
type ResultScreen struct {
	game *game.Game
	hits input.HitMap
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(g *game.Game) *ResultScreen {
	return &ResultScreen{game: g}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		r.game.HandleKey(msg)
	case tea.MouseClickMsg:
		r.game.HandleClick(&r.hits, msg)
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	r.hits.Reset()
	snap := r.game.Snapshot()
	cw := components.ContentWidth(width)

	score := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("%d / %d", snap.Score, snap.TotalQuestions))
	bar := components.NewProgressBar("", snap.Score, snap.TotalQuestions, false, cw-8)
	card := components.Card(lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("RESULT"),
		"",
		score,
		"",
		bar.View(),
		"",
		theme.Subtitle.Render(Verdict(snap.Score, snap.TotalQuestions)),
	), cw)

	button := components.NewButton("TITLE", components.ButtonSelected)
	bw, bh := button.Size()

	st := layout.NewStack(width)
	st.Center(card)
	st.Gap(1)
	bx, by := st.Center(button.View())
	st.Gap(1)
	st.Center(theme.Hint.Render("Press Enter to return to the title"))

	content, top := st.Place(height)
	r.hits.Add(input.Region{Target: input.ConfirmTarget(), X: bx, Y: by + top, Width: bw, Height: bh})
	return content
}

func (r *ResultScreen) Title() string {
	return "Result"
}

// KeyHints returns the footer bindings for the result screen.
func (r *ResultScreen) KeyHints() []key.Binding {
	return []key.Binding{r.game.Keys().Confirm}
}

// Verdict is a short comment on a final score.
func Verdict(score, total int) string {
	switch {
	case total > 0 && score >= total:
		return "Perfect pitch!"
	case score*2 > total:
		return "Nice ear. Keep it up."
	case score > 0:
		return "Getting there. Try again?"
	}
	return "Listen once more and try again."
}
