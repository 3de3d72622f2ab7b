package quiz

import (
	"slices"

	"github.com/abhisek/perfectpitch/internal/notes"
)

// Snapshot is the read-only view of the quiz handed to renderers.
type Snapshot struct {
	Screen            Screen
	Phase             Phase
	Mode              Mode
	RoundIndex        int
	TotalQuestions    int
	Score             int
	UserAnswers       []notes.Note
	StartDelay        int
	FeedbackDelay     int
	LastAnswerCorrect bool

	// CorrectAnswers is only set while feedback for a wrong answer is showing.
	CorrectAnswers Question
}

// Snapshot copies the renderable parts of st.
func (st State) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:         st.Screen,
		Phase:          st.Phase(),
		TotalQuestions: TotalQuestions,
	}
	s := st.Session
	if s == nil {
		return snap
	}
	snap.Mode = s.Mode
	snap.RoundIndex = s.Index
	snap.TotalQuestions = len(s.Questions)
	snap.Score = s.Score.Value()
	snap.UserAnswers = slices.Clone(s.Round.Answers)
	snap.StartDelay = s.Round.StartDelay
	snap.FeedbackDelay = s.Round.FeedbackDelay
	snap.LastAnswerCorrect = s.Round.LastAnswerCorrect
	if snap.Phase == PhaseShowingFeedback && !s.Round.LastAnswerCorrect {
		if q, ok := s.CurrentQuestion(); ok {
			snap.CorrectAnswers = slices.Clone(q)
		}
	}
	return snap
}

// Selected reports whether n is among the user's answers.
func (s Snapshot) Selected(n notes.Note) bool {
	return slices.Contains(s.UserAnswers, n)
}
