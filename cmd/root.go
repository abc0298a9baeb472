package cmd

import (
	"github.com/jsphweid/bach/logging"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "bach",
	Short: "Notes, chords and keys as values, rendered to sound",
	Long: `bach steps through chords and scales, guesses keys and chords for a line of
notes, estimates consonance and renders notes to audio by additive synthesis.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.Get().SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
