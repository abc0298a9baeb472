package cmd

import (
	"fmt"

	"github.com/jsphweid/bach/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note NOTE",
	Short: "Shows a note and its relatives",
	Long:  `Shows a note, its frequency and the notes derived from it (dominant, subdominant, supertonic, leading tone, first harmonics).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseToken(args[0])
		if err != nil {
			return err
		}
		return describe(cmd, n)
	},
}

func describe(cmd *cobra.Command, n note.Note) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, n)
	fmt.Fprintf(out, "Frequency: %.2f Hz\n", n.Frequency())
	fmt.Fprintf(out, "Dominant: %v, Subdominant: %v, Supertonic: %v, Leading tone: %v\n",
		n.Dominant(0).Name(), n.Subdominant(0).Name(), n.Supertonic(0).Name(), n.LeadingTone().Name())
	fmt.Fprint(out, "Harmonics:")
	for i := 1; i <= 8; i++ {
		h, err := n.Harmonic(float64(i))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, " %v", h.Name())
	}
	fmt.Fprintln(out)
	return nil
}
