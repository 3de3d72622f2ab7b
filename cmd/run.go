package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // registers the MIDI driver

	"github.com/abhisek/perfectpitch/internal/app"
	"github.com/abhisek/perfectpitch/internal/audio"
	"github.com/abhisek/perfectpitch/internal/config"
	"github.com/abhisek/perfectpitch/internal/debuglog"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/quiz"
)

// runApp loads configuration, opens the audio output and launches the TUI.
// A valid mode starts a session straight away.
func runApp(cmd *cobra.Command, mode quiz.Mode) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, _ := cfg.Log.SlogLevel()
	logger, closeLog, err := debuglog.Open(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	player, err := openPlayer(cfg.Audio, logger)
	if err != nil {
		return err
	}
	defer player.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("starting", "audio", cfg.Audio.Backend, "octave", cfg.Audio.Options.Octave, "seed", seed)

	ctrl := quiz.NewController(quiz.NewGenerator(newRand(seed)), player, logger)
	return app.Run(app.Options{
		Controller: ctrl,
		Player:     player,
		Keys:       input.DefaultKeyMap(),
		Octave:     cfg.Audio.Options.Octave,
		StartMode:  mode,
		Logger:     logger,
	})
}

// openPlayer returns the configured note output. Without an explicit port,
// a missing MIDI device falls back to a silent player.
func openPlayer(cfg config.AudioConfig, logger *slog.Logger) (audio.Player, error) {
	if cfg.Backend == config.AudioNone {
		return audio.NewLogPlayer(logger, cfg.Options), nil
	}

	p, err := audio.OpenMIDI(cfg.Port, cfg.Options, logger)
	switch {
	case err == nil:
		return closeDriver{p}, nil
	case errors.Is(err, audio.ErrNoOutputPort) && cfg.Port == "":
		fmt.Fprintln(os.Stderr, "MIDI output not available:", err)
		fmt.Fprintln(os.Stderr, "Notes will not be played. Use --audio none to hide this message.")
		logger.Warn("midi unavailable, playing silently", "err", err)
		gomidi.CloseDriver()
		return audio.NewLogPlayer(logger, cfg.Options), nil
	default:
		gomidi.CloseDriver()
		return nil, fmt.Errorf("open audio: %w", err)
	}
}

// closeDriver shuts the MIDI driver down after the player is closed.
type closeDriver struct {
	*audio.MIDIPlayer
}

func (c closeDriver) Close() error {
	defer gomidi.CloseDriver()
	return c.MIDIPlayer.Close()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
