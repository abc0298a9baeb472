package analysis

import (
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/pitch"
	"gopkg.in/music-theory.v0/key"
)

// keyModes maps the scale templates that carry a key signature onto the
// music-theory mode names.
var keyModes = map[string]string{
	"major":          "major",
	"natural minor":  "minor",
	"harmonic minor": "minor",
	"melodic minor":  "minor",
}

// KeyOf reads a scale match as a key. Matches on modes or chords have none.
func KeyOf(m model.Match) (key.Key, bool) {
	mode, ok := keyModes[m.Template]
	if !ok {
		return key.Key{}, false
	}
	return key.Of(m.Center + " " + mode), true
}

// Relative returns the relative minor of a major match and the relative
// major of a minor one, spelled on the chromatic table. The score is kept.
func Relative(m model.Match) (model.Match, bool) {
	k, ok := KeyOf(m)
	if !ok {
		return model.Match{}, false
	}
	rel, template := k.RelativeMinor(), "natural minor"
	if k.Mode == key.Minor {
		rel, template = k.RelativeMajor(), "major"
	}
	class, err := pitch.IndexOf(rel.Root.String(rel.AdjSymbol))
	if err != nil {
		return model.Match{}, false
	}
	return model.Match{Center: pitch.NameOf(int(class)), Template: template, Score: m.Score}, true
}
