package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/perfectpitch/internal/notes"
)

func TestCheckAnswer_OrderInsensitive(t *testing.T) {
	q := Question{notes.D, notes.A}
	assert.True(t, CheckAnswer([]notes.Note{notes.A, notes.D}, q))
	assert.True(t, CheckAnswer([]notes.Note{notes.D, notes.A}, q))
	assert.Equal(t,
		CheckAnswer([]notes.Note{notes.A, notes.D}, q),
		CheckAnswer([]notes.Note{notes.D, notes.A}, q))
}

func TestCheckAnswer_Mismatch(t *testing.T) {
	assert.False(t, CheckAnswer([]notes.Note{notes.C, notes.F}, Question{notes.C, notes.E}))
	assert.False(t, CheckAnswer([]notes.Note{notes.C}, Question{notes.C, notes.E}))
	assert.False(t, CheckAnswer(nil, Question{notes.G}))
	assert.True(t, CheckAnswer([]notes.Note{notes.G}, Question{notes.G}))
}

func TestCheckAnswer_DoesNotModifyInput(t *testing.T) {
	in := []notes.Note{notes.A, notes.D}
	CheckAnswer(in, Question{notes.D, notes.A})
	assert.Equal(t, []notes.Note{notes.A, notes.D}, in)
}

func TestEvaluate_ScoresOnce(t *testing.T) {
	s := &Session{
		Mode:      ModeSingleNote,
		Questions: singles(notes.G, notes.C, notes.C, notes.C, notes.C),
	}
	s.Round.Answers = []notes.Note{notes.G}

	evaluate(s)
	evaluate(s)

	assert.Equal(t, 1, s.Score.Value())
	assert.True(t, s.Round.LastAnswerCorrect)
	assert.True(t, s.Round.Scored)
	assert.Equal(t, FeedbackTicks, s.Round.FeedbackDelay)
}

func TestScore_Bounded(t *testing.T) {
	var s Score
	for range TotalQuestions + 3 {
		s.increment()
	}
	assert.Equal(t, TotalQuestions, s.Value())
}
