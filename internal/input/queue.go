package input

import "github.com/abhisek/perfectpitch/internal/quiz"

// Queue buffers classified events between ticks.
type Queue struct {
	events []quiz.Event
}

var _ quiz.InputSource = (*Queue)(nil)

// Push appends an event for the next tick.
func (q *Queue) Push(ev quiz.Event) {
	q.events = append(q.events, ev)
}

// Events drains the queue.
func (q *Queue) Events() []quiz.Event {
	evs := q.events
	q.events = nil
	return evs
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
