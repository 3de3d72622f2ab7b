package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/abhisek/perfectpitch/internal/notes"
)

// ccAllNotesOff is the channel-mode controller that silences a channel.
const ccAllNotesOff = 123

// sender writes a single MIDI message.
type sender func(msg gomidi.Message) error

// MIDIPlayer sends note-on and a timed note-off for every played note.
type MIDIPlayer struct {
	send   sender
	port   drivers.Out
	opts   Options
	logger *slog.Logger

	mu     sync.Mutex
	timers map[*time.Timer]struct{}
	closed bool
}

var _ Player = (*MIDIPlayer)(nil)

// OpenMIDI opens the output port whose name contains portName, or the first
// output port when portName is empty. A MIDI driver must be registered by
// the caller.
func OpenMIDI(portName string, opts Options, logger *slog.Logger) (*MIDIPlayer, error) {
	out, err := findOutPort(portName)
	if err != nil {
		return nil, err
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("open MIDI port %q: %w", out.String(), err)
	}
	p := newMIDIPlayer(send, opts, logger)
	p.port = out
	p.logger.Info("midi output opened", "port", out.String())
	return p, nil
}

func findOutPort(name string) (drivers.Out, error) {
	if name != "" {
		out, err := gomidi.FindOutPort(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNoOutputPort, name)
		}
		return out, nil
	}
	ports := gomidi.GetOutPorts()
	if len(ports) == 0 {
		return nil, ErrNoOutputPort
	}
	return ports[0], nil
}

// OutPorts lists the names of the available MIDI output ports.
func OutPorts() []string {
	ports := gomidi.GetOutPorts()
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		names = append(names, p.String())
	}
	return names
}

func newMIDIPlayer(send sender, opts Options, logger *slog.Logger) *MIDIPlayer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MIDIPlayer{
		send:   send,
		opts:   opts,
		logger: logger,
		timers: make(map[*time.Timer]struct{}),
	}
}

// PlayNote sounds n on the given MIDI channel. Errors are logged, not returned.
func (p *MIDIPlayer) PlayNote(n notes.Note, channel int) {
	if !n.Valid() || channel < 0 || channel > 15 {
		return
	}
	ch := uint8(channel)
	key := n.Pitch(p.opts.Octave)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if err := p.send(gomidi.NoteOn(ch, key, p.opts.Velocity)); err != nil {
		p.logger.Warn("note on failed", "note", n.String(), "channel", channel, "err", err)
		return
	}

	var t *time.Timer
	t = time.AfterFunc(p.opts.Duration, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.timers, t)
		if p.closed {
			return
		}
		if err := p.send(gomidi.NoteOff(ch, key)); err != nil {
			p.logger.Warn("note off failed", "note", n.String(), "channel", channel, "err", err)
		}
	})
	p.timers[t] = struct{}{}
}

// Close silences pending notes and closes the port.
func (p *MIDIPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	for t := range p.timers {
		t.Stop()
	}
	p.timers = nil
	for ch := uint8(0); ch < 2; ch++ {
		_ = p.send(gomidi.ControlChange(ch, ccAllNotesOff, 0))
	}
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}
