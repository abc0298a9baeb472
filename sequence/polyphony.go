package sequence

import "golang.org/x/exp/slices"

// Polyphony is a set of voices that start together.
type Polyphony struct {
	voices []Sequence
}

func NewPolyphony(voices ...Sequence) Polyphony {
	return Polyphony{voices: slices.Clone(voices)}
}

func (p Polyphony) Voices() []Sequence { return slices.Clone(p.voices) }

func (p Polyphony) Len() int { return len(p.voices) }

func (p Polyphony) Add(voice Sequence) Polyphony {
	return NewPolyphony(append(p.Voices(), voice)...)
}

func (p Polyphony) Merge(other Polyphony) Polyphony {
	return NewPolyphony(append(p.Voices(), other.voices...)...)
}

func (p Polyphony) Transpose(semitones int) Polyphony {
	voices := make([]Sequence, len(p.voices))
	for i, v := range p.voices {
		voices[i] = v.Transpose(semitones)
	}
	return Polyphony{voices: voices}
}

// Repeat repeats every voice in place, so the voices stay aligned.
func (p Polyphony) Repeat(k int) Polyphony {
	voices := make([]Sequence, len(p.voices))
	for i, v := range p.voices {
		voices[i] = v.Repeat(k)
	}
	return Polyphony{voices: voices}
}

// Flatten joins all voices into one Sequence, e.g. to analyse a whole
// texture at once.
func (p Polyphony) Flatten() Sequence {
	res := Sequence{}
	for _, v := range p.voices {
		res = res.Concat(v)
	}
	return res
}
