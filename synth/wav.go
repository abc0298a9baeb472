package synth

import (
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
	"github.com/jsphweid/bach/util"
	"github.com/pkg/errors"
)

// WriteWAV stores a mono buffer as 16-bit PCM.
func WriteWAV(path string, samples []float64, sampleRate int) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "could not create wav dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create wav file")
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	data := make([]float32, len(samples))
	for i, v := range samples {
		data[i] = float32(v)
	}
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return errors.Wrapf(enc.Close(), "could not finalize %s", path)
}
