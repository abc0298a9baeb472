// Package chord steps through chords and scales by degree, including
// inversions past the octave and degrees counted from a foreign root.
package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/jsphweid/bach/pitch"
	"github.com/pkg/errors"
)

const octave = 12

// Validate checks that intervals describe a chord or scale shape: at least
// three offsets, starting at 0, never descending.
func Validate(intervals model.Intervals) error {
	if len(intervals) < 3 {
		return errors.Wrapf(model.ErrInvalidIntervalSet, "%v has fewer than 3 entries", intervals)
	}
	if intervals[0] != 0 {
		return errors.Wrapf(model.ErrInvalidIntervalSet, "%v does not start at 0", intervals)
	}
	for i := 1; i < len(intervals); i++ {
		if intervals[i] < intervals[i-1] {
			return errors.Wrapf(model.ErrInvalidIntervalSet, "%v is not ascending", intervals)
		}
	}
	return nil
}

// rootClass accepts a bare pitch name ("Eb") or a full note name ("Eb3").
func rootClass(root string) (pitch.Class, error) {
	if c, err := pitch.IndexOf(strings.TrimSpace(root)); err == nil {
		return c, nil
	}
	n, err := note.FromName(root)
	if err != nil {
		return 0, errors.Wrapf(model.ErrInvalidRootName, "%q", root)
	}
	return n.Class(), nil
}

// Step returns the note degree steps away from n inside the chord or scale
// described by intervals. With an empty root, n is the root. Otherwise n is
// first located inside root's chord and the degree is counted from there.
// Degree 0 is n itself whatever the root and intervals.
func Step(n note.Note, degree int, root string, intervals model.Intervals) (note.Note, error) {
	if degree == 0 {
		return n, nil
	}
	if err := Validate(intervals); err != nil {
		return note.Note{}, err
	}
	if root == "" {
		return step(n, degree, intervals), nil
	}

	class, err := rootClass(root)
	if err != nil {
		return note.Note{}, err
	}

	// Lift into a safe octave range before subtracting: the key difference
	// itself is not circular.
	rootZero := note.FromKey(int(class) + octave)
	diff := mod(n.Transpose(120).Difference(rootZero), octave)
	rootNote := n.Transpose(-diff)

	offset, ok := degreeOf(rootNote, n, intervals)
	if !ok {
		return note.Note{}, errors.Wrapf(model.ErrNoteNotInChord, "%v over %v%v", n.Name(), rootNote.PitchName(), intervals)
	}
	return step(rootNote, degree+offset, intervals), nil
}

// degreeOf searches the first octave of root's chord for target.
func degreeOf(root note.Note, target note.Note, intervals model.Intervals) (int, bool) {
	for i := 0; i < octave; i++ {
		if step(root, i, intervals).Name() == target.Name() {
			return i, true
		}
	}
	return 0, false
}

// step assumes validated intervals. Ascending, the chord repeats one octave
// up every len(intervals) degrees. Descending, each block is the root
// followed by the intervals mirrored an octave down.
func step(n note.Note, degree int, intervals model.Intervals) note.Note {
	switch {
	case degree > 0:
		block, pos := degree/len(intervals), degree%len(intervals)
		return n.Transpose(intervals[pos] + octave*block)
	case degree < 0:
		down := make([]int, 0, len(intervals)+1)
		down = append(down, 0)
		for i := len(intervals) - 1; i >= 0; i-- {
			down = append(down, intervals[i]-octave)
		}
		block, pos := -degree/len(down), -degree%len(down)
		return n.Transpose(down[pos] - octave*block)
	default:
		return n
	}
}

// Notes returns the chord tones built on n, one per interval.
func Notes(n note.Note, intervals model.Intervals) ([]note.Note, error) {
	if err := Validate(intervals); err != nil {
		return nil, err
	}
	res := make([]note.Note, len(intervals))
	for i, v := range intervals {
		res[i] = n.Transpose(v)
	}
	return res, nil
}

// Add shifts n by add steps inside a scale. An empty tone uses n's own pitch
// as the tonic.
func Add(n note.Note, add int, tone string, scale string) (note.Note, error) {
	intervals, err := ModeIntervals(scale)
	if err != nil {
		return note.Note{}, err
	}
	return Step(n, add, tone, intervals)
}

// ParseDegree parses a textual degree.
func ParseDegree(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(model.ErrInvalidDegree, "%q", s)
	}
	return v, nil
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
