package cmd

import (
	"fmt"

	"github.com/jsphweid/bach/analysis"
	"github.com/jsphweid/bach/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(consonanceCmd)
}

var consonanceCmd = &cobra.Command{
	Use:   "consonance NOTES...",
	Short: "Finds the lowest common subharmonic of the notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := parseSequence(args)
		if err != nil {
			return err
		}
		key, err := analysis.Consonance(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v (key %v)\n", note.FromKey(key).Name(), key)
		return nil
	},
}
