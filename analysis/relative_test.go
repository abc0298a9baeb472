package analysis

import (
	"testing"

	"github.com/jsphweid/bach/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/music-theory.v0/key"
)

func TestKeyOf(t *testing.T) {
	assert := assert.New(t)

	k, ok := KeyOf(model.Match{Center: "Eb", Template: "major"})
	assert.True(ok)
	assert.Equal(key.Of("Eb major"), k)

	k, ok = KeyOf(model.Match{Center: "A", Template: "melodic minor"})
	assert.True(ok)
	assert.Equal(key.Of("A minor"), k)

	_, ok = KeyOf(model.Match{Center: "D", Template: "Maj"})
	assert.False(ok)
}

func TestRelative(t *testing.T) {
	cases := []struct {
		in, want model.Match
	}{
		{model.Match{Center: "C", Template: "major", Score: 1}, model.Match{Center: "A", Template: "natural minor", Score: 1}},
		{model.Match{Center: "A", Template: "natural minor", Score: 0.5}, model.Match{Center: "C", Template: "major", Score: 0.5}},
		{model.Match{Center: "Eb", Template: "major", Score: 1}, model.Match{Center: "C", Template: "natural minor", Score: 1}},
		{model.Match{Center: "F#", Template: "harmonic minor", Score: 1}, model.Match{Center: "A", Template: "major", Score: 1}},
	}
	for _, c := range cases {
		got, ok := Relative(c.in)
		assert.True(t, ok, c.in.Label(true))
		assert.Equal(t, c.want, got, c.in.Label(true))
	}

	_, ok := Relative(model.Match{Center: "D", Template: "dorian"})
	assert.False(t, ok)
}

func TestRelativeOfEveryToneMatchIsAScale(t *testing.T) {
	matches, err := Tone(mustSeq(t, "C4", "E4", "G4"), false)
	assert.NoError(t, err)
	for _, m := range matches {
		rel, ok := Relative(m)
		if !assert.True(t, ok, m.Label(true)) {
			continue
		}
		back, ok := Relative(rel)
		assert.True(t, ok)
		assert.Equal(t, m.Center, back.Center)
	}
}
