// Package synth renders notes to mono sample buffers by additive synthesis.
package synth

import (
	"math"

	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/note"
	"github.com/jsphweid/bach/sequence"
	"gonum.org/v1/gonum/floats"
)

type Params struct {
	Tempo      float64 // beats per minute
	SampleRate int
	FadeTime   float64 // fraction of each note spent fading in, and again fading out
}

// DefaultParams reads the environment overrides from constants.
func DefaultParams() Params {
	return Params{
		Tempo:      constants.GetTempo(),
		SampleRate: constants.GetSampleRate(),
		FadeTime:   constants.GetFadeTime(),
	}
}

// NumSamples is the rendered length of a note of the given duration.
func (p Params) NumSamples(beats float64) int {
	return int(math.Round(beats * 60 / p.Tempo * float64(p.SampleRate)))
}

// Note renders one note: the weighted sum of its harmonics, scaled by its
// dynamic, with raised-cosine fades at both ends.
func Note(n note.Note, p Params) []float64 {
	count := p.NumSamples(n.Duration())
	if count <= 0 {
		return []float64{}
	}
	out := make([]float64, count)
	freq := n.Frequency()
	rate := float64(p.SampleRate)
	timbre := n.Timbre()
	for i := range out {
		t := float64(i) / rate
		var v float64
		for h, amp := range timbre {
			if amp == 0 {
				continue
			}
			v += amp * math.Sin(2*math.Pi*float64(h+1)*freq*t)
		}
		out[i] = n.Dynamic() * v
	}
	floats.Mul(out, Envelope(count, p.FadeTime))
	return out
}

// Envelope is 1 everywhere except the first and last fadeTime*count samples,
// which follow 0.5*(1+cos θ) with θ running π→2π on the way in and 0→π on
// the way out. Both boundary samples are exactly 0.
func Envelope(count int, fadeTime float64) []float64 {
	env := make([]float64, count)
	for i := range env {
		env[i] = 1
	}
	fade := int(math.Round(fadeTime * float64(count)))
	if fade <= 0 {
		return env
	}
	if fade > count {
		fade = count
	}
	in := raisedCosine(fade, math.Pi, 2*math.Pi)
	out := raisedCosine(fade, 0, math.Pi)
	floats.Mul(env[:fade], in)
	floats.Mul(env[count-fade:], out)
	return env
}

// raisedCosine samples 0.5*(1+cos θ) for n evenly spaced θ in [from, to].
// A single-sample fade is just the silent boundary sample.
func raisedCosine(n int, from, to float64) []float64 {
	if n == 1 {
		return []float64{0}
	}
	theta := floats.Span(make([]float64, n), from, to)
	for i, v := range theta {
		theta[i] = 0.5 * (1 + math.Cos(v))
	}
	return theta
}

// Sequence renders the notes back to back.
func Sequence(s sequence.Sequence, p Params) []float64 {
	var out []float64
	for _, n := range s.Notes() {
		out = append(out, Note(n, p)...)
	}
	return out
}

// Polyphony sums the voices sample by sample, all starting at 0. Shorter
// voices are padded with silence. There is no normalization, so the result
// can exceed [-1, 1] when loud voices coincide.
func Polyphony(poly sequence.Polyphony, p Params) []float64 {
	rendered := make([][]float64, 0, poly.Len())
	longest := 0
	for _, v := range poly.Voices() {
		buf := Sequence(v, p)
		if len(buf) > longest {
			longest = len(buf)
		}
		rendered = append(rendered, buf)
	}
	out := make([]float64, longest)
	for _, buf := range rendered {
		floats.Add(out[:len(buf)], buf)
	}
	return out
}
