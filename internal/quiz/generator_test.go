package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/perfectpitch/internal/notes"
)

func TestGenerate_SingleNoteRange(t *testing.T) {
	for seed := range uint64(200) {
		gen := NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e37)))
		qs := gen.Generate(ModeSingleNote)
		require.Len(t, qs, TotalQuestions)
		for _, q := range qs {
			require.Len(t, q, 1)
			assert.True(t, q[0] >= 0 && q[0] < notes.Count, "note %d out of range", q[0])
			assert.True(t, q.Valid(ModeSingleNote))
		}
	}
}

func TestGenerate_ChordConstraints(t *testing.T) {
	for seed := range uint64(200) {
		gen := NewGenerator(rand.New(rand.NewPCG(seed, 7)))
		qs := gen.Generate(ModeChord)
		require.Len(t, qs, TotalQuestions)
		for _, q := range qs {
			require.Len(t, q, 2)
			assert.True(t, q[0] >= 0 && q[1] < notes.Count)
			assert.Less(t, q[0], q[1], "chord must be ascending")
			assert.GreaterOrEqual(t, notes.Interval(q[0], q[1]), MinChordInterval)
			assert.True(t, q.Valid(ModeChord))
		}
	}
}

func TestGenerate_ChordSortsAndRejects(t *testing.T) {
	// (3,4) is adjacent and rejected, (5,1) is accepted and sorted.
	gen := NewGenerator(&seqRand{vals: []int{3, 4, 5, 1}})
	qs := gen.Generate(ModeChord)
	assert.Equal(t, Question{notes.D, notes.A}, qs[0])
}

func TestGenerate_ChordFallbackOnStuckRNG(t *testing.T) {
	gen := NewGenerator(&seqRand{vals: []int{3}})
	qs := gen.Generate(ModeChord)
	require.Len(t, qs, TotalQuestions)
	for _, q := range qs {
		assert.Equal(t, Question{notes.C, notes.E}, q)
	}
	// The fallback must not alias between questions.
	qs[0][0] = notes.B
	assert.Equal(t, notes.C, qs[1][0])
}

func TestGenerate_SingleNoteScripted(t *testing.T) {
	gen := NewGenerator(&seqRand{vals: []int{4, 0, 6, 2, 1}})
	qs := gen.Generate(ModeSingleNote)
	assert.Equal(t, singles(notes.G, notes.C, notes.B, notes.E, notes.D), qs)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"single", ModeSingleNote, false},
		{"1", ModeSingleNote, false},
		{"Chord", ModeChord, false},
		{"2", ModeChord, false},
		{"triad", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, 1, ModeSingleNote.NoteCount())
	assert.Equal(t, 2, ModeChord.NoteCount())
	assert.Equal(t, 0, Mode(0).NoteCount())
}
