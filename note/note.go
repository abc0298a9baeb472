// Package note implements the immutable Note value: an absolute pitch with a
// duration, a dynamic and a harmonic timbre.
package note

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/pitch"
	"github.com/pkg/errors"
)

const (
	ConcertA    = 69
	ConcertAHz  = 440.0
	DefaultBeat = 1.0
	// DefaultDynamic is a comfortable mezzo-piano for additive synthesis.
	DefaultDynamic = 0.25
)

type Note struct {
	class    pitch.Class
	octave   int
	duration float64
	dynamic  float64
	timbre   []float64
}

type Option func(*Note)

func WithDuration(beats float64) Option {
	return func(n *Note) { n.duration = beats }
}

func WithDynamic(dynamic float64) Option {
	return func(n *Note) { n.dynamic = dynamic }
}

// WithTimbre sets the relative amplitudes of the harmonics, fundamental first.
func WithTimbre(amplitudes ...float64) Option {
	return func(n *Note) { n.timbre = append([]float64(nil), amplitudes...) }
}

func defaultTimbre() []float64 {
	return []float64{1}
}

func build(class pitch.Class, octave int, opts []Option) Note {
	n := Note{
		class:    class,
		octave:   octave,
		duration: DefaultBeat,
		dynamic:  DefaultDynamic,
		timbre:   defaultTimbre(),
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// FromName parses names like "A4", "Bb3", "Db-1". Enharmonic spellings are
// stored canonically.
func FromName(name string, opts ...Option) (Note, error) {
	className, octave, err := split(name)
	if err != nil {
		return Note{}, err
	}
	class, err := pitch.IndexOf(className)
	if err != nil {
		return Note{}, errors.Wrapf(model.ErrMalformedNoteName, "%q", name)
	}
	return build(class, octave, opts), nil
}

// MustFromName is FromName for literals known to be valid.
func MustFromName(name string, opts ...Option) Note {
	n, err := FromName(name, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func split(name string) (string, int, error) {
	trimmed := strings.TrimSpace(name)
	end := len(trimmed)
	start := end
	for start > 0 && unicode.IsDigit(rune(trimmed[start-1])) {
		start--
	}
	if start == end {
		return "", 0, errors.Wrapf(model.ErrMalformedNoteName, "%q has no octave", name)
	}
	if start > 0 && (trimmed[start-1] == '-' || trimmed[start-1] == '+') {
		start--
	}
	octave, err := strconv.Atoi(trimmed[start:])
	if err != nil {
		return "", 0, errors.Wrapf(model.ErrMalformedNoteName, "%q", name)
	}
	return trimmed[:start], octave, nil
}

// FromKey builds the note for a MIDI-style key number.
func FromKey(key int, opts ...Option) Note {
	octave := floorDiv(key, pitch.NumClasses) - 1
	class := pitch.Class(key - (octave+1)*pitch.NumClasses)
	return build(class, octave, opts)
}

// FromFrequency snaps a frequency to the nearest equal-tempered key.
func FromFrequency(hz float64, opts ...Option) (Note, error) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return Note{}, errors.Wrapf(model.ErrNonPositiveFrequency, "%v", hz)
	}
	key := math.Round(ConcertA + 12*math.Log2(hz/ConcertAHz))
	return FromKey(int(key), opts...), nil
}

func (n Note) Class() pitch.Class { return n.class }
func (n Note) Octave() int        { return n.octave }
func (n Note) Duration() float64  { return n.duration }
func (n Note) Dynamic() float64   { return n.dynamic }

// Timbre returns a copy of the harmonic amplitudes.
func (n Note) Timbre() []float64 {
	return append([]float64(nil), n.timbre...)
}

// PitchName is the name without its octave, e.g. "Bb".
func (n Note) PitchName() string {
	return n.class.String()
}

func (n Note) Name() string {
	return n.PitchName() + strconv.Itoa(n.octave)
}

func (n Note) Key() int {
	return int(n.class) + pitch.NumClasses*(n.octave+1)
}

func (n Note) Frequency() float64 {
	return ConcertAHz * math.Pow(2, float64(n.Key()-ConcertA)/12)
}

func (n Note) options() []Option {
	return []Option{WithDuration(n.duration), WithDynamic(n.dynamic), WithTimbre(n.timbre...)}
}

// Transpose moves the note by a signed number of semitones.
func (n Note) Transpose(semitones int) Note {
	return FromKey(n.Key()+semitones, n.options()...)
}

// Difference is the signed semitone interval n - other.
func (n Note) Difference(other Note) int {
	return n.Key() - other.Key()
}

func (n Note) ChangeDuration(beats float64) Note {
	out := n.Transpose(0)
	out.duration = beats
	return out
}

func (n Note) ChangeDynamic(dynamic float64) Note {
	out := n.Transpose(0)
	out.dynamic = dynamic
	return out
}

func (n Note) ScaleDuration(factor float64) (Note, error) {
	if factor <= 0 {
		return Note{}, errors.Wrapf(model.ErrNonPositiveFactor, "%v", factor)
	}
	return n.ChangeDuration(n.duration * factor), nil
}

// Dominant is the fifth below (which=0), shifted by which octaves.
func (n Note) Dominant(which int) Note {
	return n.Transpose(-5 + 12*which)
}

func (n Note) Subdominant(which int) Note {
	return n.Transpose(-7 + 12*which)
}

func (n Note) Supertonic(which int) Note {
	return n.Transpose(2 + 12*which)
}

func (n Note) LeadingTone() Note {
	return n.Transpose(-1)
}

// Harmonic returns the nearest tempered note to the nth partial.
func (n Note) Harmonic(partial float64) (Note, error) {
	if partial <= 0 {
		return Note{}, errors.Wrapf(model.ErrNonPositiveHarmonicIndex, "%v", partial)
	}
	return n.Transpose(int(math.Round(12 * math.Log2(partial)))), nil
}

func (n Note) Subharmonic(index int) (Note, error) {
	if index <= 0 {
		return Note{}, errors.Wrapf(model.ErrNonPositiveHarmonicIndex, "%v", index)
	}
	return n.Harmonic(1 / float64(index))
}

// Equal compares every attribute, timbre included.
func (n Note) Equal(other Note) bool {
	if n.Key() != other.Key() || n.duration != other.duration || n.dynamic != other.dynamic {
		return false
	}
	if len(n.timbre) != len(other.timbre) {
		return false
	}
	for i := range n.timbre {
		if n.timbre[i] != other.timbre[i] {
			return false
		}
	}
	return true
}

func (n Note) String() string {
	return fmt.Sprintf("Name: %v, Duration: %v, MIDI number: %v, Note set: %v", n.Name(), n.duration, n.Key(), n.PitchName())
}

// ParseSemitones parses a textual semitone count.
func ParseSemitones(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(model.ErrNonIntegerSemitone, "%q", s)
	}
	return v, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
