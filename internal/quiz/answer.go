package quiz

import (
	"slices"

	"github.com/abhisek/perfectpitch/internal/notes"
)

// CheckAnswer reports whether the picked notes match q regardless of the
// order they were picked in. The input slice is not modified.
func CheckAnswer(answers []notes.Note, q Question) bool {
	sorted := slices.Clone(answers)
	slices.Sort(sorted)
	return q.Equal(sorted)
}

// evaluate scores the current round once and opens the feedback window.
func evaluate(s *Session) {
	r := &s.Round
	if r.Scored {
		return
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}
	r.LastAnswerCorrect = CheckAnswer(r.Answers, q)
	r.Scored = true
	if r.LastAnswerCorrect {
		s.Score.increment()
	}
	r.FeedbackDelay = FeedbackTicks
}
