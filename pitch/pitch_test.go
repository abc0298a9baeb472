package pitch

import (
	"errors"
	"testing"

	"github.com/jsphweid/bach/model"
	"github.com/stretchr/testify/assert"
)

func TestNameOfIsCircular(t *testing.T) {
	assert := assert.New(t)
	for i := -30; i <= 30; i++ {
		assert.Equal(NameOf(i), NameOf(i+12))
		assert.Equal(NameOf(i), NameOf(i-12))
	}
	assert.Equal("B", NameOf(-1))
	assert.Equal("A", NameOf(9))
}

func TestIndexOfNormalizesEnharmonics(t *testing.T) {
	cases := map[string]Class{
		"C": 0, "Db": 1, "C#": 1, "D#": 3, "Eb": 3, "Gb": 6, "G#": 8, "A#": 10, "B": 11,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := IndexOf(name)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestIndexOfUnknown(t *testing.T) {
	_, err := IndexOf("H")
	assert.True(t, errors.Is(err, model.ErrUnknownPitchName))
}

func TestDistance(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, Distance(0, 7))
	assert.Equal(5, Distance(7, 0))
	assert.Equal(0, Distance(4, 4))
}

func TestFifths(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("G", Fifths.Get(1))
	assert.Equal("F", Fifths.Get(-1))
	i, err := Fifths.IndexOf("Db")
	assert.NoError(err)
	assert.Equal(7, i)
	assert.Equal(12, Fifths.Len())
}

func TestParseIndex(t *testing.T) {
	i, err := ParseIndex("-13")
	assert.NoError(t, err)
	assert.Equal(t, "B", NameOf(i))

	_, err = ParseIndex("1.5")
	assert.True(t, errors.Is(err, model.ErrInvalidIndexType))
}
