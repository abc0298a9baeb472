package synth

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PeakFrequency returns the frequency of the strongest FFT bin, excluding
// DC. Resolution is sampleRate/len(samples).
func PeakFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) < 2 {
		return 0
	}
	spectrum := fft.FFTReal(samples)
	best, bestMag := 0, 0.0
	for i := 1; i <= len(samples)/2; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	return float64(best) * float64(sampleRate) / float64(len(samples))
}
