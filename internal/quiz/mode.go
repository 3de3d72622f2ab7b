package quiz

import (
	"fmt"
	"strings"
)

// Mode selects how many notes are played and expected per round.
type Mode int

const (
	ModeSingleNote Mode = iota + 1
	ModeChord
)

// NoteCount returns the number of notes a round of this mode asks for.
func (m Mode) NoteCount() int {
	switch m {
	case ModeSingleNote:
		return 1
	case ModeChord:
		return 2
	}
	return 0
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeSingleNote || m == ModeChord
}

func (m Mode) String() string {
	switch m {
	case ModeSingleNote:
		return "single"
	case ModeChord:
		return "chord"
	}
	return "unknown"
}

// ParseMode accepts "single"/"1" and "chord"/"2".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "1", "single-note":
		return ModeSingleNote, nil
	case "chord", "2":
		return ModeChord, nil
	}
	return 0, fmt.Errorf("invalid mode %q: must be single or chord", s)
}
