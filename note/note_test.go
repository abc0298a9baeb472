package note

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRoundTripsThroughKey(t *testing.T) {
	spellings := []string{"C", "Db", "C#", "D", "D#", "Eb", "E", "F", "Gb", "F#", "G", "G#", "Ab", "A", "A#", "Bb", "B"}
	for _, octave := range []int{-1, 0, 3, 4, 9} {
		for _, spelling := range spellings {
			name := fmt.Sprintf("%s%d", spelling, octave)
			t.Run(name, func(t *testing.T) {
				n, err := FromName(name)
				require.NoError(t, err)
				assert.Equal(t, pitch.Normalize(name), FromKey(n.Key()).Name())
			})
		}
	}
}

func TestKeyAndFrequency(t *testing.T) {
	assert := assert.New(t)
	a4 := MustFromName("A4")
	assert.Equal(69, a4.Key())
	assert.InDelta(440.0, a4.Frequency(), 1e-9)
	assert.Equal(60, MustFromName("C4").Key())
	assert.Equal(0, MustFromName("C-1").Key())
	assert.InDelta(261.6256, MustFromName("C4").Frequency(), 1e-3)
}

func TestFromKeyNegative(t *testing.T) {
	n := FromKey(-1)
	assert.Equal(t, "B-2", n.Name())
	assert.Equal(t, -1, n.Key())
}

func TestFromFrequency(t *testing.T) {
	n, err := FromFrequency(446)
	require.NoError(t, err)
	assert.Equal(t, "A4", n.Name())

	n, err = FromFrequency(880, WithDuration(2))
	require.NoError(t, err)
	assert.Equal(t, "A5", n.Name())
	assert.Equal(t, 2.0, n.Duration())

	_, err = FromFrequency(0)
	assert.True(t, errors.Is(err, model.ErrNonPositiveFrequency))
}

func TestMalformedNames(t *testing.T) {
	for _, name := range []string{"", "A", "H4", "4", "Cb#4", "A-"} {
		t.Run(name, func(t *testing.T) {
			_, err := FromName(name)
			assert.True(t, errors.Is(err, model.ErrMalformedNoteName), "%v", err)
		})
	}
}

func TestDefaults(t *testing.T) {
	n := MustFromName("E4")
	assert.Equal(t, 1.0, n.Duration())
	assert.Equal(t, 0.25, n.Dynamic())
	assert.Equal(t, []float64{1}, n.Timbre())
}

func TestDefaultTimbreIsNotShared(t *testing.T) {
	a := MustFromName("C4")
	b := MustFromName("D4")
	timbre := a.Timbre()
	timbre[0] = 42
	assert.Equal(t, []float64{1}, a.Timbre())
	assert.Equal(t, []float64{1}, b.Timbre())
}

func TestWithTimbreCopies(t *testing.T) {
	amps := []float64{1, 0.5}
	n := MustFromName("C4", WithTimbre(amps...))
	amps[1] = 9
	assert.Equal(t, []float64{1, 0.5}, n.Timbre())
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	n := MustFromName("Bb3", WithDuration(0.5), WithDynamic(0.8), WithTimbre(1, 0.3))
	up := n.Transpose(12)
	assert.Equal(n.Key()+12, up.Key())
	assert.Equal("Bb4", up.Name())
	assert.Equal(0.5, up.Duration())
	assert.Equal(0.8, up.Dynamic())
	assert.Equal([]float64{1, 0.3}, up.Timbre())
	assert.Equal("A3", n.Transpose(-1).Name())
	assert.Equal("Bb3", n.Name())
}

func TestDifference(t *testing.T) {
	assert.Equal(t, -7, MustFromName("C4").Difference(MustFromName("G4")))
	assert.Equal(t, 12, MustFromName("C5").Difference(MustFromName("C4")))
}

func TestDurationAndDynamic(t *testing.T) {
	assert := assert.New(t)
	n := MustFromName("C4", WithDuration(2))
	doubled, err := n.ScaleDuration(1.5)
	assert.NoError(err)
	assert.Equal(3.0, doubled.Duration())
	assert.Equal(2.0, n.Duration())

	_, err = n.ScaleDuration(0)
	assert.True(errors.Is(err, model.ErrNonPositiveFactor))

	assert.Equal(0.9, n.ChangeDynamic(0.9).Dynamic())
	assert.Equal(4.0, n.ChangeDuration(4).Duration())
}

func TestNamedDerivations(t *testing.T) {
	assert := assert.New(t)
	c := MustFromName("C4")
	assert.Equal("G3", c.Dominant(0).Name())
	assert.Equal("G4", c.Dominant(1).Name())
	assert.Equal("F3", c.Subdominant(0).Name())
	assert.Equal("D4", c.Supertonic(0).Name())
	assert.Equal("B3", c.LeadingTone().Name())
}

func TestHarmonics(t *testing.T) {
	assert := assert.New(t)
	a := MustFromName("A2")
	cases := map[float64]string{1: "A2", 2: "A3", 3: "E4", 4: "A4", 5: "C#5"}
	for partial, want := range cases {
		h, err := a.Harmonic(partial)
		assert.NoError(err)
		assert.Equal(want, h.Name())
	}

	s, err := MustFromName("A4").Subharmonic(2)
	assert.NoError(err)
	assert.Equal("A3", s.Name())
	s, err = MustFromName("A4").Subharmonic(3)
	assert.NoError(err)
	assert.Equal("D3", s.Name())

	_, err = a.Subharmonic(0)
	assert.True(errors.Is(err, model.ErrNonPositiveHarmonicIndex))
	_, err = a.Harmonic(-2)
	assert.True(errors.Is(err, model.ErrNonPositiveHarmonicIndex))
}

func TestEqual(t *testing.T) {
	a := MustFromName("Db4")
	assert.True(t, a.Equal(MustFromName("C#4")))
	assert.False(t, a.Equal(a.ChangeDynamic(1)))
	assert.False(t, a.Equal(MustFromName("C#4", WithTimbre(1, 0))))
}

func TestParseSemitones(t *testing.T) {
	v, err := ParseSemitones(" -3 ")
	assert.NoError(t, err)
	assert.Equal(t, -3, v)
	_, err = ParseSemitones("0.5")
	assert.True(t, errors.Is(err, model.ErrNonIntegerSemitone))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Name: A4, Duration: 1, MIDI number: 69, Note set: A", MustFromName("A4").String())
	assert.False(t, math.IsNaN(MustFromName("A4").Frequency()))
}
