// Package game connects the terminal front end to the quiz controller: it
// owns the input queue, the key bindings and the tick clock.
package game

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/notes"
	"github.com/abhisek/perfectpitch/internal/quiz"
)

// TickInterval is the period of the quiz clock.
const TickInterval = time.Second / quiz.TicksPerSecond

// TickMsg advances the quiz by one tick.
type TickMsg time.Time

// TickCmd schedules the next TickMsg.
func TickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options configures a Game.
type Options struct {
	Keys input.KeyMap

	// Player is used for previews outside a session. May be nil.
	Player quiz.NotePlayer

	// Octave is the octave notes are played in, for display.
	Octave int
}

// Game is shared by every screen. Screens push events; the app ticks.
type Game struct {
	ctrl   *quiz.Controller
	queue  input.Queue
	keys   input.KeyMap
	player quiz.NotePlayer
	octave int
}

// New wraps ctrl.
func New(ctrl *quiz.Controller, opts Options) *Game {
	return &Game{
		ctrl:   ctrl,
		keys:   opts.Keys,
		player: opts.Player,
		octave: opts.Octave,
	}
}

// Tick feeds the queued events to the controller.
func (g *Game) Tick() quiz.Snapshot {
	return g.ctrl.Tick(&g.queue)
}

// Snapshot returns the current quiz snapshot without advancing it.
func (g *Game) Snapshot() quiz.Snapshot {
	return g.ctrl.Snapshot()
}

// SessionID identifies the running session, if any.
func (g *Game) SessionID() string {
	return g.ctrl.SessionID()
}

// Keys returns the active key bindings.
func (g *Game) Keys() input.KeyMap {
	return g.keys
}

// Octave is the octave notes sound in.
func (g *Game) Octave() int {
	return g.octave
}

// Push queues ev for the next tick.
func (g *Game) Push(ev quiz.Event) {
	g.queue.Push(ev)
}

// Pending returns the number of events waiting for the next tick.
func (g *Game) Pending() int {
	return g.queue.Len()
}

// HandleKey queues the event msg stands for on the current quiz screen.
func (g *Game) HandleKey(msg tea.KeyPressMsg) bool {
	ev, ok := g.keys.Event(g.ctrl.Snapshot().Screen, msg)
	if !ok {
		return false
	}
	g.Push(ev)
	return true
}

// HandleClick queues the event of the region under a left click. Mouse
// coordinates must be relative to the screen content.
func (g *Game) HandleClick(hits *input.HitMap, msg tea.MouseClickMsg) bool {
	m := msg.Mouse()
	if m.Button != tea.MouseLeft {
		return false
	}
	target, ok := hits.At(m.X, m.Y)
	if !ok {
		return false
	}
	g.Push(target.Event())
	return true
}

// Preview plays a single note outside the quiz.
func (g *Game) Preview(n notes.Note) {
	if g.player == nil || !n.Valid() {
		return
	}
	g.player.PlayNote(n, 0)
}
