package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("BACH_TEMPO", "")
	t.Setenv("BACH_OUT_DIR", "")
	assert.Equal(t, 120.0, GetTempo())
	assert.Equal(t, "./out", GetOutDir())
	assert.Equal(t, 44100, GetSampleRate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BACH_TEMPO", "90")
	t.Setenv("BACH_SAMPLE_RATE", "48000")
	t.Setenv("BACH_FADE_TIME", "0.1")
	t.Setenv("BACH_PROBABILITY_BASE", "2")
	t.Setenv("BACH_ADDR", ":9000")

	assert := assert.New(t)
	assert.Equal(90.0, GetTempo())
	assert.Equal(48000, GetSampleRate())
	assert.Equal(0.1, GetFadeTime())
	assert.Equal(2.0, GetProbabilityBase())
	assert.Equal(":9000", GetAddr())
}

func TestBadEnvPanics(t *testing.T) {
	t.Setenv("BACH_TEMPO", "fast")
	assert.Panics(t, func() { GetTempo() })
}
