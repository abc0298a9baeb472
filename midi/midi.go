// Package midi turns notes into MIDI messages for an output port and turns
// live input back into sequences.
package midi

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/logging"
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/jsphweid/bach/sequence"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

type Event struct {
	At  time.Duration
	Msg gomidi.Message
}

// Velocity maps a 0..1 dynamic onto 0..127.
func Velocity(dynamic float64) uint8 {
	v := math.Round(dynamic * 127)
	return uint8(math.Max(0, math.Min(127, v)))
}

func Dynamic(velocity uint8) float64 {
	return float64(velocity) / 127
}

func beat(tempo float64) time.Duration {
	return time.Duration(float64(time.Minute) / tempo)
}

// midiKey rejects notes a MIDI message cannot carry.
func midiKey(n note.Note) (uint8, error) {
	if k := n.Key(); k < 0 || k > 127 {
		return 0, errors.Wrapf(model.ErrKeyOutOfMidiRange, "%v (key %v)", n.Name(), k)
	}
	return uint8(n.Key()), nil
}

func voiceEvents(s sequence.Sequence, tempo float64) ([]Event, error) {
	var res []Event
	var at time.Duration
	for _, n := range s.Notes() {
		key, err := midiKey(n)
		if err != nil {
			return nil, err
		}
		res = append(res, Event{At: at, Msg: gomidi.NoteOn(constants.MidiChannel, key, Velocity(n.Dynamic()))})
		at += time.Duration(n.Duration() * float64(beat(tempo)))
		res = append(res, Event{At: at, Msg: gomidi.NoteOff(constants.MidiChannel, key)})
	}
	return res, nil
}

// Events schedules every voice from time 0. At equal times note-offs come
// first so a repeated key is released before it is struck again.
func Events(p sequence.Polyphony, tempo float64) ([]Event, error) {
	var res []Event
	for _, v := range p.Voices() {
		events, err := voiceEvents(v, tempo)
		if err != nil {
			return nil, err
		}
		res = append(res, events...)
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].At != res[j].At {
			return res[i].At < res[j].At
		}
		return res[i].Msg.Is(gomidi.NoteOffMsg) && !res[j].Msg.Is(gomidi.NoteOffMsg)
	})
	return res, nil
}

// Send plays the events on out in real time. It blocks until the last event
// is sent or ctx is done.
func Send(ctx context.Context, out drivers.Out, events []Event) error {
	send, err := gomidi.SendTo(out)
	if err != nil {
		return errors.Wrap(err, "could not open midi out")
	}
	start := time.Now()
	for _, evt := range events {
		wait := time.Until(start.Add(evt.At))
		if wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := send(evt.Msg); err != nil {
			return errors.Wrap(err, "could not send midi message")
		}
		logging.Debug("midi out", logging.Fields{"msg": evt.Msg.String(), "at": evt.At})
	}
	return nil
}

// notesFromKeys orders the held keys lowest first.
func notesFromKeys(pressed map[uint8]uint8) sequence.Sequence {
	keys := make([]int, 0, len(pressed))
	for k := range pressed {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	notes := make([]note.Note, len(keys))
	for i, k := range keys {
		notes[i] = note.FromKey(k, note.WithDynamic(Dynamic(pressed[uint8(k)])))
	}
	return sequence.New(notes...)
}
