package midi

import (
	"context"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/bach/logging"
	"github.com/jsphweid/bach/sequence"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Tracker keeps the set of held keys and reports it, debounced, whenever it
// changes.
type Tracker struct {
	mu        sync.Mutex
	pressed   map[uint8]uint8
	debounced func(f func())
	onChange  func(sequence.Sequence)
}

func NewTracker(wait time.Duration, onChange func(sequence.Sequence)) *Tracker {
	return &Tracker{
		pressed:   make(map[uint8]uint8),
		debounced: debounce.New(wait),
		onChange:  onChange,
	}
}

// Handle consumes one incoming message. Anything but note on/off is ignored.
func (t *Tracker) Handle(msg gomidi.Message) {
	var ch, key, vel uint8
	t.mu.Lock()
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		t.pressed[key] = vel
	case msg.GetNoteEnd(&ch, &key):
		delete(t.pressed, key)
	default:
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.debounced(func() {
		t.onChange(t.Held())
	})
}

// Held returns the keys currently down as a sequence, lowest first.
func (t *Tracker) Held() sequence.Sequence {
	t.mu.Lock()
	defer t.mu.Unlock()
	return notesFromKeys(t.pressed)
}

// Listen feeds in into t until ctx is done.
func Listen(ctx context.Context, in drivers.In, t *Tracker) error {
	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		t.Handle(msg)
	})
	if err != nil {
		return errors.Wrap(err, "could not listen to midi in")
	}
	logging.Info("listening", logging.Fields{"port": in.String()})
	<-ctx.Done()
	stop()
	return nil
}
