// Package pitch holds the twelve equal-tempered pitch classes and the
// enharmonic spellings that are folded onto them.
package pitch

import (
	"strconv"
	"strings"

	"github.com/jsphweid/bach/model"
	"github.com/pkg/errors"
)

// Class is a pitch class in [0, 12).
type Class int

const NumClasses = 12

// Circle is a fixed table indexed modulo its length.
type Circle struct {
	names [NumClasses]string
}

// Get returns the entry at i, wrapping in both directions.
func (c *Circle) Get(i int) string {
	return c.names[mod(i, NumClasses)]
}

// IndexOf returns the position of name after enharmonic normalization.
func (c *Circle) IndexOf(name string) (int, error) {
	canonical := Normalize(name)
	for i, v := range c.names {
		if v == canonical {
			return i, nil
		}
	}
	return 0, errors.Wrapf(model.ErrUnknownPitchName, "%q", name)
}

func (c *Circle) Len() int {
	return len(c.names)
}

var (
	// Chromatic is the canonical spelling table, C at 0.
	Chromatic = &Circle{names: [NumClasses]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}}
	// Fifths walks the circle of fifths from C.
	Fifths = &Circle{names: [NumClasses]string{"C", "G", "D", "A", "E", "B", "F#", "C#", "Ab", "Eb", "Bb", "F"}}
)

var enharmonics = map[string]string{
	"Db": "C#",
	"D#": "Eb",
	"Gb": "F#",
	"G#": "Ab",
	"A#": "Bb",
}

// Normalize rewrites an enharmonic spelling to the canonical one. Anything
// else is returned untouched, so it also works on full note names like "Db4".
func Normalize(name string) string {
	if len(name) < 2 {
		return name
	}
	if canonical, ok := enharmonics[name[:2]]; ok {
		return canonical + name[2:]
	}
	return name
}

func IndexOf(name string) (Class, error) {
	i, err := Chromatic.IndexOf(name)
	return Class(i), err
}

func NameOf(i int) string {
	return Chromatic.Get(i)
}

// Distance is the upward semitone count from a to b, in [0, 12).
func Distance(a, b Class) int {
	return mod(int(b)-int(a), NumClasses)
}

// ParseIndex parses a textual circular index, e.g. from a CLI argument.
func ParseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(model.ErrInvalidIndexType, "%q", s)
	}
	return i, nil
}

func (c Class) String() string {
	return NameOf(int(c))
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
