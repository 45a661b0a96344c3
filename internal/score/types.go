package score

// Note is a single performed note, timed relative to its containing bar.
type Note struct {
	Pitch    int     `json:"pitch"`    // MIDI pitch, 0-127
	Velocity int     `json:"velocity"` // MIDI velocity, 0-127
	Start    float64 `json:"start"`    // seconds from bar start
	Duration float64 `json:"duration"` // seconds
}

// TimeSignature is the meter of a bar.
type TimeSignature struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// Bar is one measure of recorded performance. Bars are produced once by a
// bar source and never mutated afterwards.
type Bar struct {
	BarIndex      int           `json:"bar_index"`
	Notes         []Note        `json:"notes"`
	TimeSignature TimeSignature `json:"time_signature"`
	BPM           float64       `json:"bpm"`
	StartSec      float64       `json:"start_sec"`
	EndSec        float64       `json:"end_sec"`
}

// Marker is an embedded text event on the source recording, used to carry
// manual momentum labels alongside the performance.
type Marker struct {
	Text    string  `json:"text"`
	TimeSec float64 `json:"time_sec"`
}

// Track is one instrument's bar stream within a source recording.
type Track struct {
	InstrumentIndex int    `json:"instrument_index"`
	Name            string `json:"name"`
	IsPercussion    bool   `json:"is_percussion"`
	Bars            []Bar  `json:"bars"`
}

// BarSet is the bar-source contract consumed by the pipeline stages.
// When Error is true the upstream loader failed and every stage passes the
// set through unchanged, preserving TenantID and FileID for correlation.
type BarSet struct {
	Error     bool     `json:"error"`
	TenantID  string   `json:"tenant_id"`
	FileID    string   `json:"file_id"`
	BPM       float64  `json:"bpm"`
	TotalBars int      `json:"total_bars"`
	Bars      []Bar    `json:"bars"`
	Tracks    []Track  `json:"tracks,omitempty"`
	Markers   []Marker `json:"markers,omitempty"`
}

// DefaultBPM is assumed when a source recording carries no tempo.
const DefaultBPM = 120.0

// Tempo returns the file tempo, falling back to DefaultBPM.
func (s BarSet) Tempo() float64 {
	if s.BPM > 0 {
		return s.BPM
	}
	return DefaultBPM
}
