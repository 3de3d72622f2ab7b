package quiz

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/perfectpitch/internal/notes"
)

type played struct {
	note    notes.Note
	channel int
}

type recordingPlayer struct {
	calls []played
}

func (p *recordingPlayer) PlayNote(n notes.Note, ch int) {
	p.calls = append(p.calls, played{note: n, channel: ch})
}

type sliceSource []Event

func (s *sliceSource) Events() []Event {
	evs := *s
	*s = nil
	return evs
}

func TestController_ChordPlaysOnTwoChannels(t *testing.T) {
	gen := &fixedGenerator{lists: [][]Question{chords(
		[2]notes.Note{notes.C, notes.G},
		[2]notes.Note{notes.D, notes.A},
		[2]notes.Note{notes.C, notes.E},
		[2]notes.Note{notes.C, notes.E},
		[2]notes.Note{notes.C, notes.E},
	)}}
	player := &recordingPlayer{}
	c := NewController(gen, player, nil)
	src := &sliceSource{SelectMode(ModeChord)}

	c.Tick(src)
	require.NotEmpty(t, c.SessionID())
	for range StartDelayTicks {
		c.Tick(src)
	}

	assert.Equal(t, []played{{notes.C, 0}, {notes.G, 1}}, player.calls)
}

func TestController_SnapshotTracksRounds(t *testing.T) {
	gen := &fixedGenerator{lists: [][]Question{singles(notes.G, notes.C, notes.D, notes.E, notes.F)}}
	player := &recordingPlayer{}
	c := NewController(gen, player, nil)
	src := &sliceSource{SelectMode(ModeSingleNote)}

	snap := c.Tick(src)
	assert.Equal(t, ScreenPlaying, snap.Screen)
	assert.Equal(t, StartDelayTicks, snap.StartDelay)

	for range StartDelayTicks {
		c.Tick(src)
	}
	*src = sliceSource{SelectNote(notes.G)}
	snap = c.Tick(src)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, FeedbackTicks, snap.FeedbackDelay)

	for range FeedbackTicks {
		snap = c.Tick(src)
	}
	assert.Equal(t, 1, snap.RoundIndex)
	assert.Equal(t, []played{{notes.G, 0}, {notes.C, 0}}, player.calls)
}

func TestController_LogsSessionLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	gen := &fixedGenerator{lists: [][]Question{singles(notes.G, notes.G, notes.G, notes.G, notes.G)}}
	c := NewController(gen, nil, logger)
	src := &sliceSource{SelectMode(ModeSingleNote)}

	c.Tick(src)
	for range StartDelayTicks {
		c.Tick(src)
	}
	for c.State().Screen == ScreenPlaying {
		*src = sliceSource{SelectNote(notes.G)}
		c.Tick(src)
		for range FeedbackTicks {
			c.Tick(src)
		}
	}
	*src = sliceSource{ConfirmResult()}
	c.Tick(src)

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "round answered")
	assert.Contains(t, out, "session finished")
	assert.Contains(t, out, "score=5")
	assert.Contains(t, out, "session closed")
	assert.Empty(t, c.SessionID())
	assert.Equal(t, ScreenTitle, c.Snapshot().Screen)
}

func TestController_NilSource(t *testing.T) {
	c := NewController(&fixedGenerator{lists: [][]Question{singles(notes.C, notes.C, notes.C, notes.C, notes.C)}}, nil, nil)
	snap := c.Tick(nil)
	assert.Equal(t, ScreenTitle, snap.Screen)
	assert.Equal(t, TotalQuestions, snap.TotalQuestions)
}
