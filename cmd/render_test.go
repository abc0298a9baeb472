package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/synth"
	"github.com/stretchr/testify/assert"
)

func TestCheckParams(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(checkParams(synth.Params{Tempo: 120, SampleRate: 8000}))
	assert.True(errors.Is(checkParams(synth.Params{Tempo: 0, SampleRate: 8000}), model.ErrNonPositiveFactor))
	assert.True(errors.Is(checkParams(synth.Params{Tempo: -60, SampleRate: 8000}), model.ErrNonPositiveFactor))
	assert.True(errors.Is(checkParams(synth.Params{Tempo: 120, SampleRate: 0}), model.ErrNonPositiveFactor))
}

func TestRenderRejectsZeroTempo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	rootCmd.SetArgs([]string{"render", "C4", "--tempo", "0", "-o", path})
	defer func() {
		rootCmd.SetArgs(nil)
		tempo = constants.GetTempo()
	}()

	err := rootCmd.Execute()
	assert.True(t, errors.Is(err, model.ErrNonPositiveFactor))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
