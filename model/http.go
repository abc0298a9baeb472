package model

type NoteBody struct {
	Name     string    `json:"name"`
	Duration *float64  `json:"duration,omitempty"`
	Dynamic  *float64  `json:"dynamic,omitempty"`
	Timbre   []float64 `json:"timbre,omitempty"`
}

type DetectRequestBody struct {
	Notes           []NoteBody `json:"notes"`
	Probabilistic   any        `json:"probabilistic,omitempty"`
	ProbabilityBase float64    `json:"probability_base,omitempty"`
	Templates       Templates  `json:"templates,omitempty"`
}

type DetectResponse struct {
	Matches []Match `json:"matches"`
}

type ConsonanceRequestBody struct {
	Notes []NoteBody `json:"notes"`
}

type ConsonanceResponse struct {
	Key  int    `json:"key"`
	Name string `json:"name"`
}

type ChordRequestBody struct {
	Note      string `json:"note"`
	Degree    any    `json:"degree"`
	Root      string `json:"root,omitempty"`
	Chord     string `json:"chord,omitempty"`
	Scale     string `json:"scale,omitempty"`
	Intervals []int  `json:"intervals,omitempty"`
}

type ChordResponse struct {
	Name  string   `json:"name"`
	Key   int      `json:"key"`
	Notes []string `json:"notes"`
}

type RenderRequestBody struct {
	Voices     [][]NoteBody `json:"voices"`
	Tempo      float64      `json:"tempo,omitempty"`
	SampleRate int          `json:"sample_rate,omitempty"`
	FadeTime   *float64     `json:"fade_time,omitempty"`
}

type RenderResponse struct {
	Id         string `json:"id"`
	NumSamples int    `json:"num_samples"`
	SampleRate int    `json:"sample_rate"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
