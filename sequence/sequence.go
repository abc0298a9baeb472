// Package sequence holds melodic lines (Sequence) and stacks of lines played
// together (Polyphony). Every operation returns a new value.
package sequence

import (
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/jsphweid/bach/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type SortKey string

const (
	ByDuration SortKey = "duration"
	ByPitch    SortKey = "pitch"
	ByDynamic  SortKey = "dynamic"
)

type Sequence struct {
	notes []note.Note
}

func New(notes ...note.Note) Sequence {
	return Sequence{notes: slices.Clone(notes)}
}

// FromNames parses every name with the same note options.
func FromNames(names []string, opts ...note.Option) (Sequence, error) {
	notes := make([]note.Note, 0, len(names))
	for _, name := range names {
		n, err := note.FromName(name, opts...)
		if err != nil {
			return Sequence{}, err
		}
		notes = append(notes, n)
	}
	return Sequence{notes: notes}, nil
}

func (s Sequence) Len() int { return len(s.notes) }

func (s Sequence) At(i int) note.Note { return s.notes[i] }

func (s Sequence) Notes() []note.Note { return slices.Clone(s.notes) }

func (s Sequence) Keys() []int {
	return util.Map(s.notes, note.Note.Key)
}

func (s Sequence) Frequencies() []float64 {
	return util.Map(s.notes, note.Note.Frequency)
}

func (s Sequence) PitchNames() []string {
	return util.Map(s.notes, note.Note.PitchName)
}

func (s Sequence) Names() []string {
	return util.Map(s.notes, note.Note.Name)
}

// Duration is the total length in beats.
func (s Sequence) Duration() float64 {
	return util.Sum(util.Map(s.notes, note.Note.Duration))
}

func (s Sequence) Transpose(semitones int) Sequence {
	return Sequence{notes: util.Map(s.notes, func(n note.Note) note.Note { return n.Transpose(semitones) })}
}

func (s Sequence) WithDuration(beats float64) Sequence {
	return Sequence{notes: util.Map(s.notes, func(n note.Note) note.Note { return n.ChangeDuration(beats) })}
}

func (s Sequence) WithDynamic(dynamic float64) Sequence {
	return Sequence{notes: util.Map(s.notes, func(n note.Note) note.Note { return n.ChangeDynamic(dynamic) })}
}

func (s Sequence) Concat(other Sequence) Sequence {
	notes := make([]note.Note, 0, len(s.notes)+len(other.notes))
	notes = append(notes, s.notes...)
	notes = append(notes, other.notes...)
	return Sequence{notes: notes}
}

func (s Sequence) Append(n note.Note) Sequence {
	return s.Concat(New(n))
}

func (s Sequence) Prepend(n note.Note) Sequence {
	return New(n).Concat(s)
}

func (s Sequence) Reverse() Sequence {
	notes := slices.Clone(s.notes)
	for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
		notes[i], notes[j] = notes[j], notes[i]
	}
	return Sequence{notes: notes}
}

// Repeat concatenates k copies. A negative k repeats the reversed line.
func (s Sequence) Repeat(k int) Sequence {
	unit := s
	if k < 0 {
		unit, k = s.Reverse(), -k
	}
	res := Sequence{}
	for i := 0; i < k; i++ {
		res = res.Concat(unit)
	}
	return res
}

// Sort is stable; equal notes keep their order in both directions.
func (s Sequence) Sort(key SortKey, reverse bool) (Sequence, error) {
	var attr func(note.Note) float64
	switch key {
	case ByDuration:
		attr = note.Note.Duration
	case ByPitch:
		attr = func(n note.Note) float64 { return float64(n.Key()) }
	case ByDynamic:
		attr = note.Note.Dynamic
	default:
		return Sequence{}, errors.Wrapf(model.ErrInvalidSortKey, "%q", key)
	}
	notes := slices.Clone(s.notes)
	slices.SortStableFunc(notes, func(a, b note.Note) bool {
		if reverse {
			return attr(a) > attr(b)
		}
		return attr(a) < attr(b)
	})
	return Sequence{notes: notes}, nil
}
