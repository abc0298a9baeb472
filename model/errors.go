package model

import "github.com/pkg/errors"

// Contract violations. Callers match on these with errors.Is; the returned
// errors are usually wrapped with the offending value.
var (
	ErrMalformedNoteName        = errors.New("malformed note name")
	ErrUnknownPitchName         = errors.New("unknown pitch name")
	ErrInvalidIndexType         = errors.New("index must be an integer")
	ErrNonIntegerSemitone       = errors.New("semitone must be an integer")
	ErrInvalidDegree            = errors.New("degree must be an integer")
	ErrInvalidIntervalSet       = errors.New("invalid interval set")
	ErrInvalidRootName          = errors.New("root must be a note name")
	ErrNoteNotInChord           = errors.New("note is not in root note's chord")
	ErrInvalidScaleName         = errors.New("unknown scale name")
	ErrInvalidSortKey           = errors.New("sort key must be one of duration, pitch, dynamic")
	ErrInvalidFlagType          = errors.New("flag must be a boolean")
	ErrNonPositiveHarmonicIndex = errors.New("harmonic index must be positive")
	ErrNoConsonanceFound        = errors.New("no common subharmonic within search window")

	ErrNonPositiveFrequency   = errors.New("frequency must be positive")
	ErrNonPositiveFactor      = errors.New("duration factor must be positive")
	ErrEmptySequence          = errors.New("sequence is empty")
	ErrInvalidProbabilityBase = errors.New("probability base must be greater than 1")
	ErrKeyOutOfMidiRange      = errors.New("key is outside the MIDI range 0..127")
)
