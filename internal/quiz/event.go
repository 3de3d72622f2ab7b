package quiz

import "github.com/abhisek/perfectpitch/internal/notes"

// EventKind identifies a semantic input event.
type EventKind int

const (
	EventSelectMode EventKind = iota + 1
	EventSelectNote
	EventRepeat
	EventConfirmResult
)

func (k EventKind) String() string {
	switch k {
	case EventSelectMode:
		return "select-mode"
	case EventSelectNote:
		return "select-note"
	case EventRepeat:
		return "repeat"
	case EventConfirmResult:
		return "confirm-result"
	}
	return "unknown"
}

// Event is a classified input. Mode is set for EventSelectMode and Note
// for EventSelectNote.
type Event struct {
	Kind EventKind
	Mode Mode
	Note notes.Note
}

// SelectMode starts a session from the title screen.
func SelectMode(m Mode) Event { return Event{Kind: EventSelectMode, Mode: m} }

// SelectNote picks a note in the current round.
func SelectNote(n notes.Note) Event { return Event{Kind: EventSelectNote, Note: n} }

// RepeatRequested replays the current question.
func RepeatRequested() Event { return Event{Kind: EventRepeat} }

// ConfirmResult leaves the result screen.
func ConfirmResult() Event { return Event{Kind: EventConfirmResult} }

// InputSource yields the events gathered since the previous tick.
type InputSource interface {
	Events() []Event
}

// CommandKind identifies a side effect requested by a transition.
type CommandKind int

const (
	CommandPlayNotes CommandKind = iota + 1
)

// Command is a side effect for the host to carry out.
type Command struct {
	Kind  CommandKind
	Notes Question
}

func playNotes(q Question) Command {
	return Command{Kind: CommandPlayNotes, Notes: q}
}
