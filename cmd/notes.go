package cmd

import (
	"strconv"
	"strings"

	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/jsphweid/bach/sequence"
	"github.com/pkg/errors"
)

// parseToken reads "name[:duration[:dynamic]]", e.g. "Eb4:0.5:0.8".
func parseToken(token string) (note.Note, error) {
	parts := strings.Split(token, ":")
	if len(parts) > 3 {
		return note.Note{}, errors.Wrapf(model.ErrMalformedNoteName, "%q", token)
	}
	var opts []note.Option
	if len(parts) > 1 {
		d, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return note.Note{}, errors.Wrapf(err, "bad duration in %q", token)
		}
		opts = append(opts, note.WithDuration(d))
	}
	if len(parts) > 2 {
		d, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return note.Note{}, errors.Wrapf(err, "bad dynamic in %q", token)
		}
		opts = append(opts, note.WithDynamic(d))
	}
	return note.FromName(parts[0], opts...)
}

func parseSequence(tokens []string) (sequence.Sequence, error) {
	var notes []note.Note
	for _, token := range tokens {
		for _, field := range strings.Fields(token) {
			n, err := parseToken(field)
			if err != nil {
				return sequence.Sequence{}, err
			}
			notes = append(notes, n)
		}
	}
	return sequence.New(notes...), nil
}

func parseBody(b model.NoteBody) (note.Note, error) {
	var opts []note.Option
	if b.Duration != nil {
		opts = append(opts, note.WithDuration(*b.Duration))
	}
	if b.Dynamic != nil {
		opts = append(opts, note.WithDynamic(*b.Dynamic))
	}
	if len(b.Timbre) > 0 {
		opts = append(opts, note.WithTimbre(b.Timbre...))
	}
	return note.FromName(b.Name, opts...)
}

func parseBodies(bodies []model.NoteBody) (sequence.Sequence, error) {
	notes := make([]note.Note, 0, len(bodies))
	for _, b := range bodies {
		n, err := parseBody(b)
		if err != nil {
			return sequence.Sequence{}, err
		}
		notes = append(notes, n)
	}
	return sequence.New(notes...), nil
}
