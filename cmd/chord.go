package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/bach/chord"
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	chordRoot      string
	chordSymbol    string
	chordScale     string
	chordIntervals string
)

func init() {
	chordCmd.Flags().StringVar(&chordRoot, "root", "", "pitch the degrees are counted from (defaults to the note itself)")
	chordCmd.Flags().StringVar(&chordSymbol, "chord", "Maj", "chord symbol: Maj, m, Maj7, m7, mMaj7, 7, dim, aug, maug7, dim7, mM7")
	chordCmd.Flags().StringVar(&chordScale, "scale", "", "step inside a scale instead of a chord (major, minor, dorian, ...)")
	chordCmd.Flags().StringVar(&chordIntervals, "intervals", "", "custom comma separated semitone offsets, e.g. 0,4,7,11")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord NOTE [DEGREE]",
	Short: "Steps through a chord or scale",
	Long: `Steps DEGREE chord (or scale) tones away from NOTE. Degrees past the chord
wrap into the next octave, negative degrees go down. Without DEGREE the whole
chord built on NOTE is printed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseToken(args[0])
		if err != nil {
			return err
		}
		req := chordRequest{root: chordRoot, symbol: chordSymbol, scale: chordScale}
		if chordIntervals != "" {
			if req.intervals, err = parseIntervals(chordIntervals); err != nil {
				return err
			}
		}
		out := cmd.OutOrStdout()
		if len(args) == 1 {
			tones, err := req.tones(n)
			if err != nil {
				return err
			}
			for _, t := range tones {
				fmt.Fprintln(out, t.Name())
			}
			return nil
		}
		degree, err := chord.ParseDegree(args[1])
		if err != nil {
			return err
		}
		res, err := req.step(n, degree)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res.Name())
		return nil
	},
}

// chordRequest is the shared shape of the CLI and HTTP chord queries.
type chordRequest struct {
	root      string
	symbol    string
	scale     string
	intervals model.Intervals
}

func (r chordRequest) resolve() (model.Intervals, error) {
	if len(r.intervals) > 0 {
		return r.intervals, nil
	}
	if r.scale != "" {
		return chord.ModeIntervals(r.scale)
	}
	symbol := r.symbol
	if symbol == "" {
		symbol = "Maj"
	}
	intervals, ok := chord.ChordIntervals(symbol)
	if !ok {
		return nil, errors.Wrapf(model.ErrInvalidIntervalSet, "unknown chord %q", symbol)
	}
	return intervals, nil
}

func (r chordRequest) step(n note.Note, degree int) (note.Note, error) {
	if len(r.intervals) == 0 && r.scale != "" {
		return chord.Add(n, degree, r.root, r.scale)
	}
	intervals, err := r.resolve()
	if err != nil {
		return note.Note{}, err
	}
	return chord.Step(n, degree, r.root, intervals)
}

func (r chordRequest) tones(n note.Note) ([]note.Note, error) {
	intervals, err := r.resolve()
	if err != nil {
		return nil, err
	}
	return chord.Notes(n, intervals)
}

func parseIntervals(s string) (model.Intervals, error) {
	var res model.Intervals
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(model.ErrInvalidIntervalSet, "%q", s)
		}
		res = append(res, v)
	}
	return res, nil
}
