package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/perfectpitch/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session straight away, skipping the title screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("mode")
		mode, err := quiz.ParseMode(name)
		if err != nil {
			return err
		}
		return runApp(cmd, mode)
	},
}

func init() {
	playCmd.Flags().String("mode", "single", "Quiz mode: single or chord")
}
