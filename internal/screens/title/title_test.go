package title

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/perfectpitch/internal/game"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/quiz"
	"github.com/abhisek/perfectpitch/internal/router"
)

func newTestTitle() (*TitleScreen, *game.Game) {
	ctrl := quiz.NewController(quiz.NewGenerator(rand.New(rand.NewPCG(3, 4))), nil, nil)
	g := game.New(ctrl, game.Options{Keys: input.DefaultKeyMap(), Octave: 4})
	return New(g), g
}

func TestTitleScreen_Title(t *testing.T) {
	s, _ := newTestTitle()
	if s.Title() != "Title" {
		t.Errorf("Title = %q, want %q", s.Title(), "Title")
	}
}

func TestTitleScreen_DigitSelectsMode(t *testing.T) {
	s, g := newTestTitle()
	s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})

	if g.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", g.Pending())
	}
	snap := g.Tick()
	if snap.Mode != quiz.ModeChord {
		t.Errorf("Mode = %v, want chord", snap.Mode)
	}
}

func TestTitleScreen_MenuEnter(t *testing.T) {
	s, g := newTestTitle()
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	snap := g.Tick()
	if snap.Screen != quiz.ScreenPlaying || snap.Mode != quiz.ModeChord {
		t.Errorf("after menu enter: screen %v mode %v", snap.Screen, snap.Mode)
	}
}

func TestTitleScreen_ClickMenu(t *testing.T) {
	s, g := newTestTitle()
	s.View(80, 18)

	_, cmd := s.Update(tea.MouseClickMsg{X: s.menuX + 4, Y: s.menuY, Button: tea.MouseLeft})
	if cmd != nil {
		t.Error("starting a mode should not return a command")
	}
	snap := g.Tick()
	if snap.Mode != quiz.ModeSingleNote {
		t.Errorf("Mode = %v, want single", snap.Mode)
	}

	s.Update(tea.MouseClickMsg{X: 0, Y: s.menuY, Button: tea.MouseLeft})
	if g.Pending() != 0 {
		t.Error("click left of the menu should be ignored")
	}
}

func TestTitleScreen_ReferenceOpens(t *testing.T) {
	s, _ := newTestTitle()
	_, cmd := s.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	if cmd == nil {
		t.Fatal("expected a command on ?")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestTitleScreen_View(t *testing.T) {
	s, _ := newTestTitle()
	if view := s.View(80, 18); view == "" {
		t.Error("expected non-empty title view")
	}
	if s.menuY <= 0 {
		t.Errorf("menuY = %d, want below the banner", s.menuY)
	}
}

func TestTitleScreen_KeyHints(t *testing.T) {
	s, _ := newTestTitle()
	if len(s.KeyHints()) != 5 {
		t.Errorf("KeyHints length = %d, want 5", len(s.KeyHints()))
	}
}
