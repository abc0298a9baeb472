package constants

import (
	"os"
	"strconv"
)

const (
	DefaultTempo           = 120.0
	DefaultSampleRate      = 44100
	DefaultFadeTime        = 0.05
	DefaultProbabilityBase = 10.0
	DefaultAddr            = ":8080"
	DefaultOutDir          = "./out"

	// MidiChannel is the channel notes are sent on and accepted from.
	MidiChannel = 0
)

func getFloat(name string, fallback float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		panic(name + " is not a number: " + err.Error())
	}
	return f
}

func GetTempo() float64 {
	return getFloat("BACH_TEMPO", DefaultTempo)
}

func GetSampleRate() int {
	return int(getFloat("BACH_SAMPLE_RATE", DefaultSampleRate))
}

func GetFadeTime() float64 {
	return getFloat("BACH_FADE_TIME", DefaultFadeTime)
}

func GetProbabilityBase() float64 {
	return getFloat("BACH_PROBABILITY_BASE", DefaultProbabilityBase)
}

func GetOutDir() string {
	path := os.Getenv("BACH_OUT_DIR")
	if path != "" {
		return path
	}
	return DefaultOutDir
}

func GetAddr() string {
	addr := os.Getenv("BACH_ADDR")
	if addr != "" {
		return addr
	}
	return DefaultAddr
}
