package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/perfectpitch/internal/audio"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Audio backends.
const (
	AudioMIDI = "midi"
	AudioNone = "none"
)

// Config holds all runtime configuration.
type Config struct {
	Audio AudioConfig
	Log   LogConfig

	// Seed fixes the question RNG. Zero picks a random seed.
	Seed uint64
}

// AudioConfig selects and tunes the note output.
type AudioConfig struct {
	// Backend is "midi" or "none". Default: "midi".
	Backend string

	// Port is a substring of the MIDI output port name. Empty selects the
	// first available port.
	Port string

	Options audio.Options
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs go
// to a file or nowhere.
type LogConfig struct {
	File  string
	Level string // debug, info, warn, error. Default: info.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Audio: AudioConfig{
			Backend: AudioMIDI,
			Options: audio.DefaultOptions(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ConfigFromEnv builds a Config from PERFECTPITCH_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("PERFECTPITCH_AUDIO"); v != "" {
		cfg.Audio.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("PERFECTPITCH_MIDI_PORT"); v != "" {
		cfg.Audio.Port = v
	}
	if v := os.Getenv("PERFECTPITCH_OCTAVE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: PERFECTPITCH_OCTAVE: %v", ErrInvalidConfig, err)
		}
		cfg.Audio.Options.Octave = n
	}
	if v := os.Getenv("PERFECTPITCH_VELOCITY"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return cfg, fmt.Errorf("%w: PERFECTPITCH_VELOCITY: %v", ErrInvalidConfig, err)
		}
		cfg.Audio.Options.Velocity = uint8(n)
	}
	if v := os.Getenv("PERFECTPITCH_NOTE_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: PERFECTPITCH_NOTE_DURATION: %v", ErrInvalidConfig, err)
		}
		cfg.Audio.Options.Duration = d
	}
	if v := os.Getenv("PERFECTPITCH_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: PERFECTPITCH_SEED: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("PERFECTPITCH_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("PERFECTPITCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch c.Audio.Backend {
	case AudioMIDI, AudioNone:
	default:
		return fmt.Errorf("%w: unknown audio backend %q", ErrInvalidConfig, c.Audio.Backend)
	}
	// B in octave 9 is MIDI 131, past the 0-127 range.
	if o := c.Audio.Options.Octave; o < -1 || o > 8 {
		return fmt.Errorf("%w: octave %d out of range -1..8", ErrInvalidConfig, o)
	}
	if v := c.Audio.Options.Velocity; v == 0 || v > 127 {
		return fmt.Errorf("%w: velocity %d out of range 1..127", ErrInvalidConfig, v)
	}
	if c.Audio.Options.Duration <= 0 {
		return fmt.Errorf("%w: note duration must be positive", ErrInvalidConfig)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, l.Level)
	}
	return lvl, nil
}
