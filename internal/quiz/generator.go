package quiz

import "github.com/abhisek/perfectpitch/internal/notes"

// Generator produces the question list for a new session.
type Generator interface {
	Generate(mode Mode) []Question
}

// Rand is the subset of *rand.Rand the generator draws from.
type Rand interface {
	IntN(n int) int
}

// DefaultMaxChordDraws bounds the chord rejection loop.
const DefaultMaxChordDraws = 1000

// fallbackChord is emitted if the chord loop runs out of draws.
var fallbackChord = Question{notes.C, notes.E}

// RandomGenerator draws questions uniformly from the note set.
type RandomGenerator struct {
	rng           Rand
	maxChordDraws int
}

var _ Generator = (*RandomGenerator)(nil)

// NewGenerator creates a RandomGenerator backed by rng.
func NewGenerator(rng Rand) *RandomGenerator {
	return &RandomGenerator{rng: rng, maxChordDraws: DefaultMaxChordDraws}
}

// Generate returns TotalQuestions fresh questions for mode.
func (g *RandomGenerator) Generate(mode Mode) []Question {
	qs := make([]Question, TotalQuestions)
	for i := range qs {
		if mode == ModeChord {
			qs[i] = g.chord()
		} else {
			qs[i] = Question{g.note()}
		}
	}
	return qs
}

func (g *RandomGenerator) note() notes.Note {
	return notes.Note(g.rng.IntN(notes.Count))
}

// chord draws pairs until they are at least MinChordInterval apart.
func (g *RandomGenerator) chord() Question {
	for range g.maxChordDraws {
		a, b := g.note(), g.note()
		if notes.Interval(a, b) < MinChordInterval {
			continue
		}
		if a > b {
			a, b = b, a
		}
		return Question{a, b}
	}
	return append(Question(nil), fallbackChord...)
}
