package quiz

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/perfectpitch/internal/notes"
)

// NotePlayer sounds a single note. Calls are fire-and-forget.
type NotePlayer interface {
	PlayNote(note notes.Note, channel int)
}

// Controller owns the quiz state and carries out the commands produced by
// Step. It is not safe for concurrent use; the host calls it from its
// single update loop.
type Controller struct {
	state     State
	gen       Generator
	player    NotePlayer
	logger    *slog.Logger
	sessionID string
}

// NewController creates a Controller on the title screen. A nil logger
// discards log output.
func NewController(gen Generator, player NotePlayer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		state:  State{Screen: ScreenTitle},
		gen:    gen,
		player: player,
		logger: logger,
	}
}

// Tick drains src, advances the state machine by one tick and plays any
// requested notes. src may be nil.
func (c *Controller) Tick(src InputSource) Snapshot {
	var events []Event
	if src != nil {
		events = src.Events()
	}

	prev := c.state
	next, cmds := Step(prev, events, c.gen)
	c.state = next
	c.observe(prev, next)

	for _, cmd := range cmds {
		c.execute(cmd)
	}
	return c.state.Snapshot()
}

// State returns the current state. Callers must not mutate it.
func (c *Controller) State() State {
	return c.state
}

// Snapshot returns the renderable view of the current state.
func (c *Controller) Snapshot() Snapshot {
	return c.state.Snapshot()
}

// SessionID identifies the active session in logs. Empty outside a session.
func (c *Controller) SessionID() string {
	return c.sessionID
}

func (c *Controller) execute(cmd Command) {
	switch cmd.Kind {
	case CommandPlayNotes:
		if c.player == nil {
			return
		}
		for ch, n := range cmd.Notes {
			c.player.PlayNote(n, ch)
		}
		c.logger.Debug("play notes", "session", c.sessionID, "notes", cmd.Notes.String())
	}
}

// observe logs the transitions between two consecutive states.
func (c *Controller) observe(prev, next State) {
	switch {
	case prev.Screen == ScreenTitle && next.Screen == ScreenPlaying:
		c.sessionID = uuid.New().String()
		c.logger.Info("session started",
			"session", c.sessionID,
			"mode", next.Session.Mode.String(),
			"questions", len(next.Session.Questions))

	case prev.Screen == ScreenResult && next.Screen == ScreenTitle:
		c.logger.Info("session closed", "session", c.sessionID)
		c.sessionID = ""
	}

	if prev.Session == nil || next.Session == nil {
		return
	}
	if !prev.Session.Round.Scored && next.Session.Round.Scored {
		r := next.Session.Round
		q, _ := next.Session.CurrentQuestion()
		c.logger.Info("round answered",
			"session", c.sessionID,
			"round", next.Session.Index+1,
			"answer", notes.Join(r.Answers),
			"expected", q.String(),
			"correct", r.LastAnswerCorrect,
			"score", next.Session.Score.Value())
	}
	if prev.Screen == ScreenPlaying && next.Screen == ScreenResult {
		c.logger.Info("session finished",
			"session", c.sessionID,
			"score", next.Session.Score.Value(),
			"total", len(next.Session.Questions))
	}
}
