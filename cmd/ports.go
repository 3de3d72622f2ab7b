package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/abhisek/perfectpitch/internal/audio"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI output ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		out := cmd.OutOrStdout()
		names := audio.OutPorts()
		if len(names) == 0 {
			fmt.Fprintln(out, "No MIDI output ports found.")
			return nil
		}
		for i, name := range names {
			fmt.Fprintf(out, "%2d  %s\n", i, name)
		}
		return nil
	},
}
