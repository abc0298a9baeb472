package sequence

import (
	"errors"
	"testing"

	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, names ...string) Sequence {
	s, err := FromNames(names)
	require.NoError(t, err)
	return s
}

func TestFromNames(t *testing.T) {
	s, err := FromNames([]string{"C4", "Db4"}, note.WithDuration(0.5))
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "C#4"}, s.Names())
	assert.Equal(t, 1.0, s.Duration())

	_, err = FromNames([]string{"C4", "Q"})
	assert.True(t, errors.Is(err, model.ErrMalformedNoteName))
}

func TestTransposeIsPure(t *testing.T) {
	s := mustSeq(t, "C4", "E4", "G4")
	up := s.Transpose(2)
	assert.Equal(t, []int{62, 66, 69}, up.Keys())
	assert.Equal(t, []int{60, 64, 67}, s.Keys())
}

func TestConcatAppendPrepend(t *testing.T) {
	a := mustSeq(t, "C4", "D4")
	b := mustSeq(t, "E4")
	assert.Equal(t, []string{"C4", "D4", "E4"}, a.Concat(b).Names())
	assert.Equal(t, []string{"C4", "D4", "F4"}, a.Append(note.MustFromName("F4")).Names())
	assert.Equal(t, []string{"B3", "C4", "D4"}, a.Prepend(note.MustFromName("B3")).Names())
	assert.Equal(t, 2, a.Len())
}

func TestRepeat(t *testing.T) {
	s := mustSeq(t, "C4", "D4", "E4")
	assert.Equal(t, []string{"C4", "D4", "E4", "C4", "D4", "E4"}, s.Repeat(2).Names())
	assert.Equal(t, []string{"E4", "D4", "C4", "E4", "D4", "C4"}, s.Repeat(-2).Names())
	assert.Equal(t, []string{"E4", "D4", "C4"}, s.Reverse().Names())
	assert.Equal(t, 0, s.Repeat(0).Len())
}

func TestSortIsStable(t *testing.T) {
	s := New(
		note.MustFromName("E4", note.WithDuration(2)),
		note.MustFromName("C4", note.WithDuration(1)),
		note.MustFromName("G4", note.WithDuration(2)),
		note.MustFromName("D4", note.WithDuration(1)),
	)

	byDuration, err := s.Sort(ByDuration, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "D4", "E4", "G4"}, byDuration.Names())

	byDurationDesc, err := s.Sort(ByDuration, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"E4", "G4", "C4", "D4"}, byDurationDesc.Names())

	byPitch, err := s.Sort(ByPitch, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"G4", "E4", "D4", "C4"}, byPitch.Names())

	assert.Equal(t, []string{"E4", "C4", "G4", "D4"}, s.Names())
}

func TestSortByDynamic(t *testing.T) {
	s := New(
		note.MustFromName("C4", note.WithDynamic(0.9)),
		note.MustFromName("D4", note.WithDynamic(0.1)),
	)
	sorted, err := s.Sort(ByDynamic, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"D4", "C4"}, sorted.Names())
}

func TestSortInvalidKey(t *testing.T) {
	_, err := mustSeq(t, "C4").Sort("loudness", false)
	assert.True(t, errors.Is(err, model.ErrInvalidSortKey))
}

func TestBulkAccessors(t *testing.T) {
	s := mustSeq(t, "A4", "Bb4")
	assert.Equal(t, []string{"A", "Bb"}, s.PitchNames())
	assert.InDelta(t, 440.0, s.Frequencies()[0], 1e-9)
	assert.Equal(t, 0.7, s.WithDynamic(0.7).At(1).Dynamic())
	assert.Equal(t, 3.0, s.WithDuration(1.5).Duration())
}

func TestNotesReturnsCopy(t *testing.T) {
	s := mustSeq(t, "C4")
	notes := s.Notes()
	notes[0] = note.MustFromName("D4")
	assert.Equal(t, "C4", s.At(0).Name())
}

func TestPolyphony(t *testing.T) {
	upper := mustSeq(t, "E4", "F4")
	lower := mustSeq(t, "C3")
	p := NewPolyphony(upper).Add(lower)
	assert.Equal(t, 2, p.Len())

	up := p.Transpose(12)
	assert.Equal(t, []string{"E5", "F5"}, up.Voices()[0].Names())
	assert.Equal(t, []string{"C4"}, up.Voices()[1].Names())
	assert.Equal(t, []string{"C3"}, p.Voices()[1].Names())

	merged := p.Merge(NewPolyphony(mustSeq(t, "G2")))
	assert.Equal(t, 3, merged.Len())
	assert.Equal(t, 2, p.Len())

	rep := p.Repeat(-2)
	assert.Equal(t, 2, rep.Len())
	assert.Equal(t, []string{"F4", "E4", "F4", "E4"}, rep.Voices()[0].Names())
	assert.Equal(t, []string{"C3", "C3"}, rep.Voices()[1].Names())
	assert.Equal(t, []string{"E4", "F4", "C3"}, p.Flatten().Names())
}
