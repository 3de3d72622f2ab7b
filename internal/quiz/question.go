package quiz

import "github.com/abhisek/perfectpitch/internal/notes"

// TotalQuestions is the number of rounds in every session.
const TotalQuestions = 5

// MinChordInterval is the smallest scale distance allowed between the two
// notes of a chord question. Adjacent steps are too hard to tell apart.
const MinChordInterval = 2

// Question is the canonical answer for one round: one note, or two notes in
// ascending order. Questions are never modified after generation.
type Question []notes.Note

// String renders the question as "C" or "C, E".
func (q Question) String() string {
	return notes.Join(q)
}

// Equal reports exact sequence equality.
func (q Question) Equal(other []notes.Note) bool {
	if len(q) != len(other) {
		return false
	}
	for i := range q {
		if q[i] != other[i] {
			return false
		}
	}
	return true
}

// Valid checks the structural invariants of a question for the given mode.
func (q Question) Valid(mode Mode) bool {
	if len(q) != mode.NoteCount() {
		return false
	}
	for _, n := range q {
		if !n.Valid() {
			return false
		}
	}
	if mode == ModeChord {
		return q[0] < q[1] && notes.Interval(q[0], q[1]) >= MinChordInterval
	}
	return true
}
