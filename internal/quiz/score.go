package quiz

// Score counts correct rounds in a session. Only the answer evaluator
// changes it.
type Score struct {
	correct int
}

// Value returns the number of correct rounds.
func (s Score) Value() int {
	return s.correct
}

func (s *Score) increment() {
	if s.correct < TotalQuestions {
		s.correct++
	}
}
