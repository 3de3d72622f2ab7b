package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_StableOrder(t *testing.T) {
	all := All()
	require.Len(t, all, Count)
	for i, n := range all {
		assert.Equal(t, Note(i), n)
	}
	assert.Equal(t, "C, D, E, F, G, A, B", Join(all))
}

func TestPitch_FourthOctave(t *testing.T) {
	want := []uint8{60, 62, 64, 65, 67, 69, 71}
	for i, n := range All() {
		assert.Equal(t, want[i], n.Pitch(DefaultOctave), n.String())
	}
	assert.Equal(t, uint8(72), C.Pitch(5))
	assert.Equal(t, uint8(57), A.Pitch(3))
}

func TestString_OutOfRange(t *testing.T) {
	assert.Equal(t, "?", Note(-1).String())
	assert.Equal(t, "?", Note(Count).String())
	assert.False(t, Note(Count).Valid())
	assert.True(t, B.Valid())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Note
		wantErr bool
	}{
		{"C", C, false},
		{"g", G, false},
		{" b ", B, false},
		{"H", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterval(t *testing.T) {
	assert.Equal(t, 2, Interval(C, E))
	assert.Equal(t, 2, Interval(E, C))
	assert.Equal(t, 0, Interval(G, G))
	assert.Equal(t, 6, Interval(B, C))
}
