package audio

import (
	"fmt"
	"io"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/abhisek/perfectpitch/internal/notes"
)

// scaleResolution is the SMF ticks per quarter note.
const scaleResolution = 480

// WriteScale writes the note set as a one-track Standard MIDI File, one
// quarter note per note, so players can rehearse the reference pitches.
func WriteScale(w io.Writer, opts Options) error {
	ticks := smf.MetricTicks(scaleResolution)
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("perfectpitch reference scale"))
	tr.Add(0, smf.MetaTempo(120))
	for _, n := range notes.All() {
		key := n.Pitch(opts.Octave)
		tr.Add(0, gomidi.NoteOn(0, key, opts.Velocity))
		tr.Add(ticks.Ticks4th(), gomidi.NoteOff(0, key))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = ticks
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write smf: %w", err)
	}
	return nil
}
