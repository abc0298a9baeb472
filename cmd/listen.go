package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jsphweid/bach/analysis"
	"github.com/jsphweid/bach/logging"
	"github.com/jsphweid/bach/midi"
	"github.com/jsphweid/bach/sequence"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	inPort   int
	debounce time.Duration
)

func init() {
	listenCmd.Flags().IntVar(&inPort, "port", 0, "MIDI in port number")
	listenCmd.Flags().DurationVar(&debounce, "debounce", 150*time.Millisecond, "quiet time before the held notes are analysed")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chord being held on a MIDI keyboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()
		in, err := gomidi.InPort(inPort)
		if err != nil {
			return errors.Wrapf(err, "can't find midi in port %d", inPort)
		}

		out := cmd.OutOrStdout()
		tracker := midi.NewTracker(debounce, func(s sequence.Sequence) {
			if s.Len() == 0 {
				return
			}
			matches, err := analysis.Root(s, false)
			if err != nil {
				logging.Error(err, "could not analyse held notes")
				return
			}
			labels := make([]string, len(matches))
			for i, m := range matches {
				labels[i] = m.Label(true)
			}
			fmt.Fprintf(out, "%v -> %v\n", s.Names(), labels)
		})

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()
		return midi.Listen(ctx, in, tracker)
	},
}
