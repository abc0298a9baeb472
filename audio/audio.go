// Package audio hands finished sample buffers to the sound device.
package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jsphweid/bach/logging"
	"github.com/pkg/errors"
)

var (
	contextOnce sync.Once
	audioCtx    *ebitaudio.Context
	contextRate int
)

// sharedContext returns the process-wide audio context. The device can only
// be opened once, so every later call must ask for the same rate.
func sharedContext(sampleRate int) (*ebitaudio.Context, error) {
	contextOnce.Do(func() {
		contextRate = sampleRate
		audioCtx = ebitaudio.NewContext(sampleRate)
	})
	if contextRate != sampleRate {
		return nil, errors.Errorf("audio context already initialized at %d Hz (requested %d Hz)", contextRate, sampleRate)
	}
	return audioCtx, nil
}

// EncodeStereoF32 duplicates a mono buffer into interleaved little-endian
// float32 stereo frames.
func EncodeStereoF32(samples []float64) []byte {
	out := make([]byte, len(samples)*8)
	for i, s := range samples {
		bits := math.Float32bits(float32(s))
		binary.LittleEndian.PutUint32(out[i*8:], bits)
		binary.LittleEndian.PutUint32(out[i*8+4:], bits)
	}
	return out
}

// Play blocks until the buffer has been played or ctx is done.
func Play(ctx context.Context, samples []float64, sampleRate int) error {
	ac, err := sharedContext(sampleRate)
	if err != nil {
		return err
	}
	player, err := ac.NewPlayerF32(bytes.NewReader(EncodeStereoF32(samples)))
	if err != nil {
		return errors.Wrap(err, "could not create player")
	}
	defer player.Close()

	length := time.Duration(float64(len(samples)) / float64(sampleRate) * float64(time.Second))
	logging.Debug("playing", logging.Fields{"samples": len(samples), "length": length})
	player.Play()

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
