package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/perfectpitch/internal/audio"
	"github.com/abhisek/perfectpitch/internal/input"
	"github.com/abhisek/perfectpitch/internal/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List the quiz notes, optionally exporting them as a MIDI file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		octave := cfg.Audio.Options.Octave
		keys := input.DefaultKeyMap()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-5s  %-5s  %-6s  %s\n", "Index", "Note", "Keys", "MIDI")
		fmt.Fprintln(out, strings.Repeat("─", 28))
		for _, n := range notes.All() {
			fmt.Fprintf(out, "%-5d  %-5s  %-6s  %d\n",
				int(n), fmt.Sprintf("%s%d", n, octave),
				strings.Join(keys.Notes[n].Keys(), " "), n.Pitch(octave))
		}

		path, _ := cmd.Flags().GetString("smf")
		if path == "" {
			return nil
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		if err := audio.WriteScale(f, cfg.Audio.Options); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "\nWrote scale to %s\n", path)
		return nil
	},
}

func init() {
	notesCmd.Flags().String("smf", "", "Write the scale as a Standard MIDI File to this path")
}
