package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/bach/audio"
	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/logging"
	"github.com/jsphweid/bach/midi"
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/sequence"
	"github.com/jsphweid/bach/synth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	voices     []string
	tempo      float64
	sampleRate int
	fadeTime   float64
	outPath    string
	play       bool
	midiOut    int
	smfOut     string
)

func init() {
	f := renderCmd.Flags()
	f.StringArrayVar(&voices, "voice", nil, "a voice as space separated notes; repeat for polyphony")
	f.Float64Var(&tempo, "tempo", constants.GetTempo(), "beats per minute")
	f.IntVar(&sampleRate, "sample-rate", constants.GetSampleRate(), "output sample rate")
	f.Float64Var(&fadeTime, "fade", constants.GetFadeTime(), "fraction of each note spent fading in and out")
	f.StringVarP(&outPath, "out", "o", "", "wav file to write (defaults to a new file in the output dir)")
	f.BoolVar(&play, "play", false, "play the result on the default sound device")
	f.IntVar(&midiOut, "midi-out", -1, "also send the notes to this MIDI out port")
	f.StringVar(&smfOut, "smf", "", "also write the notes as a standard MIDI file")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [NOTES...]",
	Short: "Renders notes to a wav file",
	Long: `Renders notes by additive synthesis. Positional NOTES form one voice; each
--voice adds another voice starting at the same time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		poly, err := parseVoices(args, voices)
		if err != nil {
			return err
		}
		if poly.Len() == 0 {
			return errors.New("nothing to render")
		}
		params := synth.Params{Tempo: tempo, SampleRate: sampleRate, FadeTime: fadeTime}
		if err := checkParams(params); err != nil {
			return err
		}
		samples := synth.Polyphony(poly, params)

		path := outPath
		if path == "" {
			path = filepath.Join(constants.GetOutDir(), uuid.New().String()+".wav")
		}
		if err := synth.WriteWAV(path, samples, params.SampleRate); err != nil {
			return err
		}
		logging.Info("rendered", logging.Fields{"path": path, "samples": len(samples), "voices": poly.Len()})
		fmt.Fprintln(cmd.OutOrStdout(), path)
		if smfOut != "" {
			if err := midi.WriteSMF(smfOut, poly, params.Tempo); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), smfOut)
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()
		if midiOut >= 0 {
			if err := sendMidi(ctx, poly, midiOut); err != nil {
				return err
			}
		}
		if play {
			return audio.Play(ctx, samples, params.SampleRate)
		}
		return nil
	},
}

func parseVoices(args []string, extra []string) (sequence.Polyphony, error) {
	var poly sequence.Polyphony
	if len(args) > 0 {
		s, err := parseSequence(args)
		if err != nil {
			return poly, err
		}
		poly = poly.Add(s)
	}
	for _, v := range extra {
		s, err := parseSequence([]string{v})
		if err != nil {
			return poly, err
		}
		poly = poly.Add(s)
	}
	return poly, nil
}

func sendMidi(ctx context.Context, poly sequence.Polyphony, port int) error {
	defer gomidi.CloseDriver()
	out, err := gomidi.OutPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find midi out port %d", port)
	}
	events, err := midi.Events(poly, tempo)
	if err != nil {
		return err
	}
	return midi.Send(ctx, out, events)
}

// checkParams keeps the sample count finite.
func checkParams(p synth.Params) error {
	if p.Tempo <= 0 || p.SampleRate <= 0 {
		return errors.Wrapf(model.ErrNonPositiveFactor, "tempo %v, sample rate %v", p.Tempo, p.SampleRate)
	}
	return nil
}
