package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/perfectpitch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "perfectpitch",
	Short: "Ear training quiz for the terminal",
	Long: "perfectpitch plays one or two notes per round and asks you to name them.\n" +
		"Five rounds make a session; notes are sent to a MIDI output port.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("audio", "", "Audio backend: midi or none (overrides PERFECTPITCH_AUDIO)")
	flags.String("midi-port", "", "MIDI output port name or substring (overrides PERFECTPITCH_MIDI_PORT)")
	flags.Int("octave", 0, "Octave the notes are played in (overrides PERFECTPITCH_OCTAVE)")
	flags.Uint64("seed", 0, "Question RNG seed, 0 for random (overrides PERFECTPITCH_SEED)")
	flags.String("log-file", "", "Write debug logs to this file (overrides PERFECTPITCH_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides PERFECTPITCH_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(portsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env and the environment, then applies any flags set
// on the command line. Flags win over the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("audio") {
		cfg.Audio.Backend, _ = flags.GetString("audio")
	}
	if flags.Changed("midi-port") {
		cfg.Audio.Port, _ = flags.GetString("midi-port")
	}
	if flags.Changed("octave") {
		cfg.Audio.Options.Octave, _ = flags.GetInt("octave")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
