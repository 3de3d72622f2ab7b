package quiz

import (
	"slices"

	"github.com/abhisek/perfectpitch/internal/notes"
)

const (
	// StartDelayTicks is the ready pause before the first round plays
	// (2 seconds at 30 ticks per second).
	StartDelayTicks = 60

	// FeedbackTicks is how long the correct/incorrect indicator stays up.
	FeedbackTicks = 60

	// TicksPerSecond is the rate the host drives Tick at.
	TicksPerSecond = 30
)

// Phase is the sub-state of a round, derived from its timers.
type Phase int

const (
	PhaseNone Phase = iota // Not playing
	PhaseAwaitingStart
	PhaseAwaitingInput
	PhaseShowingFeedback
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseShowingFeedback:
		return "showing-feedback"
	}
	return "none"
}

// RoundState holds the in-progress answer for the current question.
type RoundState struct {
	// Answers are the distinct notes picked so far, in click order.
	Answers []notes.Note

	// StartDelay counts down ticks before playback may occur.
	StartDelay int

	// FeedbackDelay counts down ticks the feedback indicator remains visible.
	FeedbackDelay int

	// LastAnswerCorrect records the outcome of the most recent evaluation.
	LastAnswerCorrect bool

	// Scored is set once the round has been evaluated.
	Scored bool
}

// Phase derives the round phase from the timers.
func (r RoundState) Phase() Phase {
	switch {
	case r.FeedbackDelay > 0:
		return PhaseShowingFeedback
	case r.StartDelay > 0:
		return PhaseAwaitingStart
	}
	return PhaseAwaitingInput
}

// Locked reports whether input must be dropped.
func (r RoundState) Locked() bool {
	return r.StartDelay > 0 || r.FeedbackDelay > 0
}

// Has reports whether n has already been picked this round.
func (r RoundState) Has(n notes.Note) bool {
	return slices.Contains(r.Answers, n)
}

// Complete reports whether the answer has the required number of notes.
func (r RoundState) Complete(required int) bool {
	return len(r.Answers) >= required
}

func (r RoundState) clone() RoundState {
	r.Answers = slices.Clone(r.Answers)
	return r
}
