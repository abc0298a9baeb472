package cmd

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/bach/analysis"
	"github.com/jsphweid/bach/constants"
	"github.com/jsphweid/bach/logging"
	"github.com/jsphweid/bach/model"
	"github.com/jsphweid/bach/note"
	"github.com/jsphweid/bach/sequence"
	"github.com/jsphweid/bach/synth"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis and rendering API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()
		return serve(ctx, addr)
	},
}

var errBadBody = errors.New("malformed request body")

var contractErrors = []error{
	errBadBody,
	model.ErrMalformedNoteName,
	model.ErrUnknownPitchName,
	model.ErrInvalidIndexType,
	model.ErrNonIntegerSemitone,
	model.ErrInvalidDegree,
	model.ErrInvalidIntervalSet,
	model.ErrInvalidRootName,
	model.ErrNoteNotInChord,
	model.ErrInvalidScaleName,
	model.ErrInvalidSortKey,
	model.ErrInvalidFlagType,
	model.ErrNonPositiveHarmonicIndex,
	model.ErrNoConsonanceFound,
	model.ErrNonPositiveFrequency,
	model.ErrNonPositiveFactor,
	model.ErrEmptySequence,
	model.ErrInvalidProbabilityBase,
	model.ErrKeyOutOfMidiRange,
}

func statusFor(err error) int {
	for _, target := range contractErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(err, "request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrapf(errBadBody, "%v", err)
	}
	return nil
}

func handleDetect(newDetector func(bool) analysis.Detector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.DetectRequestBody
		if err := decode(r, &input); err != nil {
			writeError(w, err)
			return
		}
		probabilistic, err := analysis.ParseFlag(input.Probabilistic)
		if err != nil {
			writeError(w, err)
			return
		}
		s, err := parseBodies(input.Notes)
		if err != nil {
			writeError(w, err)
			return
		}
		d := newDetector(probabilistic)
		if input.ProbabilityBase != 0 {
			d.ProbabilityBase = input.ProbabilityBase
		}
		if len(input.Templates) > 0 {
			d.Templates = input.Templates
		}
		matches, err := d.Detect(s)
		if err != nil {
			writeError(w, err)
			return
		}
		if matches == nil {
			matches = []model.Match{}
		}
		writeJSON(w, http.StatusOK, model.DetectResponse{Matches: matches})
	}
}

var (
	HandleTone = handleDetect(analysis.NewToneDetector)
	HandleRoot = handleDetect(analysis.NewRootDetector)
)

func HandleConsonance(w http.ResponseWriter, r *http.Request) {
	var input model.ConsonanceRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, err)
		return
	}
	s, err := parseBodies(input.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	key, err := analysis.Consonance(s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ConsonanceResponse{Key: key, Name: note.FromKey(key).Name()})
}

// parseDegree accepts a JSON number that must be integral.
func parseDegree(v any) (int, error) {
	switch d := v.(type) {
	case nil:
		return 0, nil
	case float64:
		if d != math.Trunc(d) {
			return 0, errors.Wrapf(model.ErrInvalidDegree, "%v", d)
		}
		return int(d), nil
	default:
		return 0, errors.Wrapf(model.ErrInvalidDegree, "%v (%T)", v, v)
	}
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	var input model.ChordRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, err)
		return
	}
	n, err := note.FromName(input.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	degree, err := parseDegree(input.Degree)
	if err != nil {
		writeError(w, err)
		return
	}
	req := chordRequest{root: input.Root, symbol: input.Chord, scale: input.Scale, intervals: input.Intervals}
	res, err := req.step(n, degree)
	if err != nil {
		writeError(w, err)
		return
	}
	tones, err := req.tones(res)
	if err != nil {
		writeError(w, err)
		return
	}
	names := make([]string, len(tones))
	for i, t := range tones {
		names[i] = t.Name()
	}
	writeJSON(w, http.StatusOK, model.ChordResponse{Name: res.Name(), Key: res.Key(), Notes: names})
}

func renderPath(id string) string {
	return filepath.Join(constants.GetOutDir(), id+".wav")
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	input := model.RenderRequestBody{Tempo: constants.GetTempo(), SampleRate: constants.GetSampleRate()}
	if err := decode(r, &input); err != nil {
		writeError(w, err)
		return
	}
	var poly sequence.Polyphony
	for _, v := range input.Voices {
		s, err := parseBodies(v)
		if err != nil {
			writeError(w, err)
			return
		}
		poly = poly.Add(s)
	}
	if poly.Len() == 0 {
		writeError(w, errors.WithStack(model.ErrEmptySequence))
		return
	}
	params := synth.Params{Tempo: input.Tempo, SampleRate: input.SampleRate, FadeTime: constants.GetFadeTime()}
	if input.FadeTime != nil {
		params.FadeTime = *input.FadeTime
	}
	if err := checkParams(params); err != nil {
		writeError(w, err)
		return
	}
	samples := synth.Polyphony(poly, params)

	id := uuid.New().String()
	if err := synth.WriteWAV(renderPath(id), samples, params.SampleRate); err != nil {
		writeError(w, err)
		return
	}
	logging.Info("rendered", logging.Fields{"id": id, "samples": len(samples)})
	writeJSON(w, http.StatusOK, model.RenderResponse{Id: id, NumSamples: len(samples), SampleRate: params.SampleRate})
}

func HandleGetRender(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid render id", http.StatusBadRequest)
		return
	}
	path := renderPath(id.String())
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	http.ServeFile(w, r, path)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/tone", HandleTone).Methods("POST")
	router.HandleFunc("/root", HandleRoot).Methods("POST")
	router.HandleFunc("/consonance", HandleConsonance).Methods("POST")
	router.HandleFunc("/chord", HandleChord).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/renders/{id}", HandleGetRender).Methods("GET")
	return router
}

func serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(NewRouter()),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		logging.Info("serving", logging.Fields{"addr": addr})
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
