package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/perfectpitch/internal/router"
	"github.com/abhisek/perfectpitch/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "title" }
func (s *stubScreen) Title() string                           { return "Title" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	next := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(next), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for range n {
		w.Update(tickMsg(time.Now()))
	}
}

func containsTagline(s string) bool {
	return strings.Contains(s, "Train your ear")
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	if containsTagline(w.View(80, 24)) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}
	if !strings.Contains(w.View(80, 24), "♪") && !strings.Contains(w.View(80, 24), "♫") {
		t.Error("notes should appear after phase 1")
	}

	sendTicks(w, 10)
	if !containsTagline(w.View(80, 24)) {
		t.Error("tagline should be visible after phase 2")
	}
}

func TestKeypressDuringIntroIgnored(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("keypress before the banner should not transition")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
}

func TestKeypressAfterIntroEmitsReplace(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 15)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command from keypress after intro")
	}
	replaceMsg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestClickAfterIntroEmitsReplace(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	sendTicks(w, 15)

	_, cmd := w.Update(tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft})
	if cmd == nil {
		t.Fatal("expected a command from click after intro")
	}
}

func TestElapsedCapped(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 45)
	if *callCount != 0 {
		t.Errorf("factory should not be called without input, got %d", *callCount)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 45)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTickStopsAfterTransition(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	sendTicks(w, 15)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once the intro has handed over")
	}
}

func TestRenderBannerCompact(t *testing.T) {
	if got := RenderBanner(20); !strings.Contains(got, bannerCompact) {
		t.Errorf("narrow banner = %q, want compact", got)
	}
}
