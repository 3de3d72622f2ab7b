package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/perfectpitch/internal/game"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/notes"
	"github.com/abhisek/perfectpitch/internal/quiz"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(quiz.Mode) []quiz.Question {
	qs := make([]quiz.Question, quiz.TotalQuestions)
	for i := range qs {
		qs[i] = quiz.Question{notes.D}
	}
	return qs
}

// finishedGame plays a full single-note session answering D correctly
// the given number of times.
func finishedGame(correct int) *game.Game {
	g := game.New(quiz.NewController(fixedGenerator{}, nil, nil), game.Options{Keys: input.DefaultKeyMap()})
	g.Push(quiz.SelectMode(quiz.ModeSingleNote))
	g.Tick()
	for range quiz.StartDelayTicks {
		g.Tick()
	}
	for i := range quiz.TotalQuestions {
		answer := notes.E
		if i < correct {
			answer = notes.D
		}
		g.Push(quiz.SelectNote(answer))
		g.Tick()
		for range quiz.FeedbackTicks {
			g.Tick()
		}
	}
	return g
}

func TestResultScreen_ShowsScore(t *testing.T) {
	g := finishedGame(3)
	if snap := g.Snapshot(); snap.Screen != quiz.ScreenResult {
		t.Fatalf("Screen = %v, want result", snap.Screen)
	}

	view := New(g).View(80, 20)
	if !strings.Contains(view, "3 / 5") {
		t.Error("expected score 3 / 5 in view")
	}
	if !strings.Contains(view, "TITLE") {
		t.Error("expected TITLE button in view")
	}
}

func TestResultScreen_EnterConfirms(t *testing.T) {
	g := finishedGame(5)
	r := New(g)
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if snap := g.Tick(); snap.Screen != quiz.ScreenTitle {
		t.Errorf("Screen = %v, want title", snap.Screen)
	}
}

func TestResultScreen_ClickTitle(t *testing.T) {
	g := finishedGame(0)
	r := New(g)
	r.View(80, 20)

	regions := r.hits.Regions()
	if len(regions) != 1 {
		t.Fatalf("regions = %d, want 1", len(regions))
	}
	b := regions[0]
	r.Update(tea.MouseClickMsg{X: b.X + 2, Y: b.Y + 1, Button: tea.MouseLeft})

	if snap := g.Tick(); snap.Screen != quiz.ScreenTitle {
		t.Errorf("Screen = %v, want title", snap.Screen)
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{5, "Perfect pitch!"},
		{3, "Nice ear. Keep it up."},
		{1, "Getting there. Try again?"},
		{0, "Listen once more and try again."},
	}
	for _, tt := range tests {
		if got := Verdict(tt.score, 5); got != tt.want {
			t.Errorf("Verdict(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestResultScreen_KeyHints(t *testing.T) {
	r := New(finishedGame(1))
	if len(r.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(r.KeyHints()))
	}
}
