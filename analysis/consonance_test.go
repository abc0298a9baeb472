package analysis

import (
	"errors"
	"testing"

	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/sequence"
	"github.com/stretchr/testify/assert"
)

func TestConsonanceOctave(t *testing.T) {
	key, err := Consonance(mustSeq(t, "A4", "A5"))
	assert.NoError(t, err)
	assert.Equal(t, 69, key)
}

func TestConsonanceFifth(t *testing.T) {
	key, err := Consonance(mustSeq(t, "C4", "G4"))
	assert.NoError(t, err)
	assert.Equal(t, 48, key)
}

func TestConsonanceSingleNote(t *testing.T) {
	key, err := Consonance(mustSeq(t, "Eb3"))
	assert.NoError(t, err)
	assert.Equal(t, 51, key)
}

func TestConsonanceTriadIsSharedByAll(t *testing.T) {
	key, err := Consonance(mustSeq(t, "C4", "E4", "G4"))
	assert.NoError(t, err)
	assert.Equal(t, 36, key)
}

func TestConsonanceWindowExhausted(t *testing.T) {
	_, err := Consonance(mustSeq(t, "C0", "B9"))
	assert.True(t, errors.Is(err, model.ErrNoConsonanceFound))
}

func TestConsonanceEmpty(t *testing.T) {
	_, err := Consonance(sequence.New())
	assert.True(t, errors.Is(err, model.ErrEmptySequence))
}
