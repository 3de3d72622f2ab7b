// Package audio plays quiz notes on a MIDI output port.
package audio

import (
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/perfectpitch/internal/notes"
	"github.com/abhisek/perfectpitch/internal/quiz"
)

// ErrNoOutputPort is returned when no MIDI output port can be opened.
var ErrNoOutputPort = errors.New("no MIDI output port available")

// Options controls how notes are voiced.
type Options struct {
	// Octave is the octave of the C D E F G A B scale. Default: 4.
	Octave int

	// Velocity is the note-on velocity (1-127). Default: 100.
	Velocity uint8

	// Duration is how long each note sounds. Default: 400ms.
	Duration time.Duration
}

// DefaultOptions returns middle-octave notes at 400ms each.
func DefaultOptions() Options {
	return Options{
		Octave:   notes.DefaultOctave,
		Velocity: 100,
		Duration: 400 * time.Millisecond,
	}
}

// Player is a quiz.NotePlayer that can be shut down.
type Player interface {
	quiz.NotePlayer
	Close() error
}

// LogPlayer records notes to the logger instead of sounding them.
type LogPlayer struct {
	logger *slog.Logger
	opts   Options
}

var _ Player = (*LogPlayer)(nil)

// NewLogPlayer creates a silent player.
func NewLogPlayer(logger *slog.Logger, opts Options) *LogPlayer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogPlayer{logger: logger, opts: opts}
}

func (p *LogPlayer) PlayNote(n notes.Note, channel int) {
	p.logger.Info("note", "note", n.String(), "pitch", n.Pitch(p.opts.Octave), "channel", channel)
}

func (p *LogPlayer) Close() error {
	return nil
}
