package midi

import (
	"math"
	"path/filepath"

	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/sequence"
	"github.com/jsphweid/bach/util"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerBeat = 960

// ToSMF writes one track per voice. The first track also carries the tempo.
func ToSMF(p sequence.Polyphony, tempo float64) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)
	for i, v := range p.Voices() {
		var track smf.Track
		if i == 0 {
			track.Add(0, smf.MetaTempo(tempo))
		}
		for _, n := range v.Notes() {
			key, err := midiKey(n)
			if err != nil {
				return nil, err
			}
			ticks := uint32(math.Round(n.Duration() * ticksPerBeat))
			track.Add(0, gomidi.NoteOn(constants.MidiChannel, key, Velocity(n.Dynamic())))
			track.Add(ticks, gomidi.NoteOff(constants.MidiChannel, key))
		}
		track.Close(0)
		if err := s.Add(track); err != nil {
			return nil, errors.Wrapf(err, "could not add track %d", i)
		}
	}
	return s, nil
}

// WriteSMF exports p as a standard MIDI file. Files are only ever written,
// never read back.
func WriteSMF(path string, p sequence.Polyphony, tempo float64) error {
	s, err := ToSMF(p, tempo)
	if err != nil {
		return err
	}
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "could not create midi dir")
	}
	return errors.Wrapf(s.WriteFile(path), "could not write %s", path)
}
