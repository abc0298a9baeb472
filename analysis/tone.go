// Package analysis guesses keys and chords for a line of notes and measures
// how well notes agree through their shared subharmonics.
package analysis

import (
	"math"

	"github.com/jsphweid/bach/chord"
	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/pitch"
	"github.com/jsphweid/bach/sequence"
	"github.com/jsphweid/bach/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Detector tests a sequence against every template over all 12 tonal
// centers.
//
// In exact mode a candidate survives only if every sounding note belongs to
// it. In probabilistic mode each foreign note scales the candidate down by
// ProbabilityBase^-(duration * dynamic^0.25), and the reported scores are
// normalized to sum to 1.
type Detector struct {
	Templates       model.Templates
	Probabilistic   bool
	ProbabilityBase float64
}

// NewToneDetector scans the scale table.
func NewToneDetector(probabilistic bool) Detector {
	return Detector{
		Templates:       chord.Scales(),
		Probabilistic:   probabilistic,
		ProbabilityBase: constants.GetProbabilityBase(),
	}
}

// NewRootDetector scans the chord table.
func NewRootDetector(probabilistic bool) Detector {
	d := NewToneDetector(probabilistic)
	d.Templates = chord.Chords()
	return d
}

func (d Detector) validate() error {
	if d.Probabilistic && !(d.ProbabilityBase > 1) {
		return errors.Wrapf(model.ErrInvalidProbabilityBase, "%v", d.ProbabilityBase)
	}
	for name, intervals := range d.Templates {
		if len(intervals) == 0 {
			return errors.Wrapf(model.ErrInvalidIntervalSet, "template %q is empty", name)
		}
	}
	return nil
}

// weights returns one weight per tonal center for a single template.
func (d Detector) weights(s sequence.Sequence, intervals model.Intervals) [pitch.NumClasses]float64 {
	var w [pitch.NumClasses]float64
	for i := range w {
		w[i] = 1
	}
	for _, n := range s.Notes() {
		var belongs [pitch.NumClasses]bool
		for _, t := range intervals {
			belongs[n.Transpose(-t).Class()] = true
		}
		for center := range w {
			if belongs[center] {
				continue
			}
			if d.Probabilistic {
				w[center] *= math.Pow(d.ProbabilityBase, -n.Duration()*math.Pow(n.Dynamic(), 0.25))
			} else if n.Dynamic() != 0 {
				w[center] = 0
			}
		}
	}
	return w
}

func (d Detector) Detect(s sequence.Sequence) ([]model.Match, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	var res []model.Match
	for _, name := range util.GetKeysSorted(d.Templates) {
		w := d.weights(s, d.Templates[name])
		for center, score := range w {
			if !d.Probabilistic && score != 1 {
				continue
			}
			res = append(res, model.Match{Center: pitch.NameOf(center), Template: name, Score: score})
		}
	}
	if !d.Probabilistic {
		return res, nil
	}

	slices.SortStableFunc(res, func(a, b model.Match) bool { return a.Score > b.Score })
	scores := make([]float64, len(res))
	for i, m := range res {
		scores[i] = m.Score
	}
	if total := floats.Sum(scores); total > 0 {
		floats.Scale(1/total, scores)
	}
	for i := range res {
		res[i].Score = scores[i]
	}
	return res, nil
}

// Tone lists the scales the sequence fits.
func Tone(s sequence.Sequence, probabilistic bool) ([]model.Match, error) {
	return NewToneDetector(probabilistic).Detect(s)
}

// Root lists the chords the sequence fits.
func Root(s sequence.Sequence, probabilistic bool) ([]model.Match, error) {
	return NewRootDetector(probabilistic).Detect(s)
}

// ParseFlag accepts a decoded JSON value as a boolean flag. A missing value
// is false.
func ParseFlag(v any) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	default:
		return false, errors.Wrapf(model.ErrInvalidFlagType, "%v (%T)", v, v)
	}
}
