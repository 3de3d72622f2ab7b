// Package play renders a running quiz session.
package play

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/perfectpitch/internal/game"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/notes"
	"github.com/abhisek/perfectpitch/internal/quiz"
	"github.com/abhisek/perfectpitch/internal/screen"
	"github.com/abhisek/perfectpitch/internal/ui/components"
	"github.com/abhisek/perfectpitch/internal/ui/layout"
	"github.com/abhisek/perfectpitch/internal/ui/theme"
)

// readyThreshold splits the start delay between READY... and START!.
const readyThreshold = quiz.StartDelayTicks / 2

// feedbackRows is the height reserved for the O/X overlay so the note
// buttons do not move when it appears.
const feedbackRows = 4

// PlayScreen shows the current round and collects answers.
type PlayScreen struct {
	game *game.Game
	hits input.HitMap
}

var _ screen.Screen = (*PlayScreen)(nil)

// New creates a new PlayScreen.
func New(g *game.Game) *PlayScreen {
	return &PlayScreen{game: g}
}

func (p *PlayScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		p.game.HandleKey(msg)
	case tea.MouseClickMsg:
		p.game.HandleClick(&p.hits, msg)
	}
	return p, nil
}

func (p *PlayScreen) View(width, height int) string {
	p.hits.Reset()
	snap := p.game.Snapshot()

	st := layout.NewStack(width)
	bar := components.NewProgressBar("Question", round(snap), snap.TotalQuestions, true, min(width-8, 60))
	st.Center(bar.View())
	st.Gap(1)

	if snap.Phase == quiz.PhaseAwaitingStart {
		st.Gap(2)
		st.Center(theme.Banner.Render(ReadyText(snap.StartDelay)))
		content, _ := st.Place(height)
		return content
	}

	repeat := components.NewButton("REPEAT", components.ButtonNormal)
	if snap.Phase != quiz.PhaseAwaitingInput {
		repeat.State = components.ButtonDisabled
	}
	rw, rh := repeat.Size()
	repeatX := max(width-rw-2, 0)
	repeatY := st.At(repeatX, repeat.View())

	st.Center(theme.Body.Render(Prompt(snap.Mode)))
	if snap.Mode == quiz.ModeChord {
		st.Center(theme.Selected.Render(AnswerText(snap.UserAnswers)))
	} else {
		st.Gap(1)
	}
	st.Gap(1)

	st.Center(feedback(snap))
	st.Gap(1)

	row := components.NewButtonRow(noteButtons(snap), 1)
	rowX, rowY := st.Center(row.View)
	st.Gap(1)
	st.Center(theme.Hint.Render("Press C-B or 1-7 to answer, R to hear it again"))

	content, top := st.Place(height)
	p.hits.Add(input.Region{Target: input.RepeatTarget(), X: repeatX, Y: repeatY + top, Width: rw, Height: rh})
	for i, n := range notes.All() {
		p.hits.Add(input.Region{
			Target: input.NoteTarget(n),
			X:      rowX + row.Offsets[i],
			Y:      rowY + top,
			Width:  row.Widths[i],
			Height: row.Height,
		})
	}
	return content
}

func (p *PlayScreen) Title() string {
	return "Playing"
}

// KeyHints returns the footer bindings for the play screen.
func (p *PlayScreen) KeyHints() []key.Binding {
	k := p.game.Keys()
	return []key.Binding{k.AnswerHelp(), k.Repeat}
}

// ReadyText is the banner shown while the first round waits to start.
func ReadyText(startDelay int) string {
	if startDelay >= readyThreshold {
		return "READY..."
	}
	return "START!"
}

// Prompt asks for the notes of the current mode.
func Prompt(m quiz.Mode) string {
	if m == quiz.ModeChord {
		return "Which two notes did you hear?"
	}
	return "Which note did you hear?"
}

// AnswerText lists the notes picked so far in a chord round.
func AnswerText(answers []notes.Note) string {
	return "Your Answer: " + notes.Join(answers)
}

func round(snap quiz.Snapshot) int {
	return min(snap.RoundIndex+1, snap.TotalQuestions)
}

func feedback(snap quiz.Snapshot) string {
	var lines []string
	if snap.Phase == quiz.PhaseShowingFeedback {
		if snap.LastAnswerCorrect {
			lines = append(lines, theme.FeedbackCorrect.Render("O"))
		} else {
			lines = append(lines, theme.FeedbackIncorrect.Render("X"))
			lines = append(lines, theme.Incorrect.Render("Correct: "+snap.CorrectAnswers.String()))
		}
	}
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if pad := feedbackRows - lipgloss.Height(block); pad > 0 {
		block += strings.Repeat("\n", pad)
	}
	return block
}

func noteButtons(snap quiz.Snapshot) []components.Button {
	buttons := make([]components.Button, 0, notes.Count)
	for _, n := range notes.All() {
		state := components.ButtonNormal
		switch {
		case snap.Selected(n):
			state = components.ButtonSelected
		case snap.Phase != quiz.PhaseAwaitingInput:
			state = components.ButtonDisabled
		}
		buttons = append(buttons, components.NewButton(n.String(), state))
	}
	return buttons
}
