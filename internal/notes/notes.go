package notes

import (
	"fmt"
	"strings"
)

// Note is an index into the natural-note scale C D E F G A B.
// The index is both the scale position and the sound selector, so the
// ordering below must never change.
type Note int

const (
	C Note = iota
	D
	E
	F
	G
	A
	B
)

// Count is the number of playable notes.
const Count = 7

// DefaultOctave is the octave the quiz plays in (C4 = MIDI 60).
const DefaultOctave = 4

var names = [Count]string{"C", "D", "E", "F", "G", "A", "B"}

// semitones from C for each natural note.
var semitones = [Count]uint8{0, 2, 4, 5, 7, 9, 11}

// All returns every note in scale order.
func All() []Note {
	all := make([]Note, Count)
	for i := range all {
		all[i] = Note(i)
	}
	return all
}

// Valid reports whether n is within the note set.
func (n Note) Valid() bool {
	return n >= 0 && n < Count
}

// String returns the note letter, or "?" for an out-of-range index.
func (n Note) String() string {
	if !n.Valid() {
		return "?"
	}
	return names[n]
}

// Pitch returns the MIDI key number of n in the given octave.
func (n Note) Pitch(octave int) uint8 {
	return uint8((octave+1)*12) + semitones[n]
}

// Parse resolves a note letter (case-insensitive) to a Note.
func Parse(s string) (Note, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return Note(i), nil
		}
	}
	return 0, fmt.Errorf("unknown note %q", s)
}

// Join renders notes as a comma separated list, e.g. "C, E".
func Join(ns []Note) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

// Interval is the distance in scale steps between two notes.
func Interval(a, b Note) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
