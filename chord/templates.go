package chord

import (
	"strings"

	"github.com/jsphweid/bach/model"
	"github.com/pkg/errors"
)

// Tables are read-only after init; accessors hand out copies.
var (
	chords = model.Templates{
		"Maj":   {0, 4, 7},
		"m":     {0, 3, 7},
		"Maj7":  {0, 4, 7, 10},
		"m7":    {0, 3, 7, 10},
		"mMaj7": {0, 3, 7, 11},
		"7":     {0, 4, 7, 10},
		"dim":   {0, 3, 6},
		"aug":   {0, 4, 8},
		"maug7": {0, 3, 7, 11},
		"dim7":  {0, 3, 6, 10},
		"mM7":   {0, 3, 7, 9},
	}

	scales = model.Templates{
		"major":          {0, 2, 4, 5, 7, 9, 11, 12},
		"natural minor":  {0, 2, 3, 5, 7, 8, 10, 12},
		"harmonic minor": {0, 2, 3, 5, 7, 8, 11, 12},
		"melodic minor":  {0, 2, 3, 5, 7, 9, 11, 12},
	}

	modes = model.Templates{
		"major":          scales["major"],
		"natural minor":  scales["natural minor"],
		"harmonic minor": scales["harmonic minor"],
		"melodic minor":  scales["melodic minor"],
		"dorian":         {0, 2, 3, 5, 7, 9, 10, 12},
		"phrygian":       {0, 1, 3, 5, 7, 8, 10, 12},
		"lydian":         {0, 2, 4, 6, 7, 9, 11, 12},
		"mixolydian":     {0, 2, 4, 5, 7, 9, 10, 12},
		"locrian":        {0, 1, 3, 5, 6, 8, 10, 12},
	}

	modeAliases = map[string]string{
		"ionian":  "major",
		"aeolian": "natural minor",
		"minor":   "natural minor",
	}
)

func clone(t model.Templates) model.Templates {
	res := make(model.Templates, len(t))
	for k, v := range t {
		res[k] = append(model.Intervals(nil), v...)
	}
	return res
}

// Chords is the chord table used for root detection.
func Chords() model.Templates { return clone(chords) }

// Scales is the scale table used for tone detection.
func Scales() model.Templates { return clone(scales) }

// Modes are the eight-step scales accepted by Add.
func Modes() model.Templates { return clone(modes) }

// ChordIntervals looks up a chord by its symbol ("Maj", "m7", ...).
func ChordIntervals(symbol string) (model.Intervals, bool) {
	v, ok := chords[symbol]
	if !ok {
		return nil, false
	}
	return append(model.Intervals(nil), v...), true
}

// ModeIntervals resolves a scale name, aliases included.
func ModeIntervals(name string) (model.Intervals, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := modeAliases[key]; ok {
		key = alias
	}
	v, ok := modes[key]
	if !ok {
		return nil, errors.Wrapf(model.ErrInvalidScaleName, "%q", name)
	}
	return append(model.Intervals(nil), v...), nil
}
