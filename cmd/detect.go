package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsphweid/bach/analysis"
	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	probabilistic   bool
	probabilityBase float64
	templatesPath   string
	top             int
)

func init() {
	for _, c := range []*cobra.Command{toneCmd, rootChordCmd} {
		c.Flags().BoolVarP(&probabilistic, "probabilistic", "p", false, "rank every candidate instead of keeping exact fits")
		c.Flags().Float64Var(&probabilityBase, "base", constants.GetProbabilityBase(), "penalty base for notes outside a candidate")
		c.Flags().StringVar(&templatesPath, "templates", "", "JSON file of name -> intervals replacing the built-in table")
		c.Flags().IntVar(&top, "top", 0, "only print the first N candidates (0 = all)")
		rootCmd.AddCommand(c)
	}
}

var toneCmd = &cobra.Command{
	Use:   "tone NOTES...",
	Short: "Lists the scales the notes fit",
	Long:  `Lists the (tonal center, scale) pairs that contain every note. Notes are written name[:duration[:dynamic]], e.g. C4:2 Eb4:0.5:0.8.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return detect(cmd, args, analysis.NewToneDetector(probabilistic))
	},
}

var rootChordCmd = &cobra.Command{
	Use:   "root NOTES...",
	Short: "Lists the chords the notes fit",
	Long:  `Lists the (root, chord) pairs that contain every note.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return detect(cmd, args, analysis.NewRootDetector(probabilistic))
	},
}

func loadTemplates(path string) (model.Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read templates")
	}
	var t model.Templates
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(err, "could not parse templates %s", path)
	}
	return t, nil
}

func detect(cmd *cobra.Command, args []string, d analysis.Detector) error {
	s, err := parseSequence(args)
	if err != nil {
		return err
	}
	d.ProbabilityBase = probabilityBase
	if templatesPath != "" {
		if d.Templates, err = loadTemplates(templatesPath); err != nil {
			return err
		}
	}
	matches, err := d.Detect(s)
	if err != nil {
		return err
	}
	if top > 0 && len(matches) > top {
		matches = matches[:top]
	}
	out := cmd.OutOrStdout()
	for _, m := range matches {
		label := m.Label(false)
		if rel, ok := analysis.Relative(m); ok {
			label += " (relative " + rel.Label(false) + ")"
		}
		if d.Probabilistic {
			fmt.Fprintf(out, "%-44s %.4f\n", label, m.Score)
		} else {
			fmt.Fprintln(out, label)
		}
	}
	return nil
}
