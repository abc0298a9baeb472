package model

import "fmt"

// Match is one (tonal center, template) candidate reported by key detection.
type Match struct {
	Center   string  `json:"center"`
	Template string  `json:"template"`
	Score    float64 `json:"score"`
}

// Label renders the match the way chord symbols are usually written, e.g.
// "C major" for a scale or "Ebm7" for a chord.
func (m Match) Label(joined bool) string {
	if joined {
		return m.Center + m.Template
	}
	return fmt.Sprintf("%s %s", m.Center, m.Template)
}

type Intervals = []int

// Templates maps a scale or chord name to its semitone offsets from the root.
type Templates = map[string]Intervals
