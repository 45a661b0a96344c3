// Package momentum scores sections on tempo, loudness, and pitch-contour
// signals and classifies each into a coarse positive/negative/neutral label.
package momentum

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tonefold/motive/internal/score"
	"github.com/tonefold/motive/internal/section"
)

// Label is a coarse momentum classification.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Score weights and label thresholds. Boundary scores classify as neutral.
const (
	weightTempo    = 0.4
	weightVelocity = 0.4
	weightSlope    = 0.2

	positiveThreshold = 0.65
	negativeThreshold = 0.35

	// slopeScale maps a raw pitch slope (semitones per second) into [0,1]
	// around 0.5. A sustained rise of 12 semitones over one second lands at
	// 1.0; the mapping only needs to be monotonic with 0 slope at 0.5.
	slopeScale = 24.0
)

// Components is the per-signal breakdown behind a score, kept for audit.
type Components struct {
	TempoNorm      float64 `json:"tempo_norm"`
	VelocityNorm   float64 `json:"velocity_norm"`
	PitchSlopeNorm float64 `json:"pitch_slope_norm"`
}

// Result is the classification of one retained section.
type Result struct {
	SectionIndex int        `json:"section_index"`
	SectionHash  string     `json:"section_hash"`
	Label        Label      `json:"label"`
	Score        float64    `json:"score"`
	Components   Components `json:"components"`
}

// Report is the classifier output over a section set.
type Report struct {
	Error    bool     `json:"error"`
	TenantID string   `json:"tenant_id"`
	FileID   string   `json:"file_id"`
	Results  []Result `json:"results"`
}

// Classify scores every retained section. Upstream errors pass through
// unchanged; an empty section set is an EMPTY_INPUT fault. Every section
// gets a label, including sections with no notes at all.
func Classify(set section.Set) (Report, error) {
	if set.Error {
		return Report{Error: true, TenantID: set.TenantID, FileID: set.FileID}, nil
	}
	if len(set.Sections) == 0 {
		return Report{}, score.NewEmptyInput(set.TenantID, set.FileID, "sections")
	}

	rep := Report{TenantID: set.TenantID, FileID: set.FileID, Results: make([]Result, 0, len(set.Sections))}
	for _, sec := range set.Sections {
		rep.Results = append(rep.Results, classifySection(sec))
	}
	return rep, nil
}

func classifySection(sec section.Section) Result {
	comps := Components{
		TempoNorm:      clamp01((sec.Meta.AvgBPM - 60) / 100),
		VelocityNorm:   clamp01(sec.Meta.AvgVelocity / 100),
		PitchSlopeNorm: normalizeSlope(PitchSlope(sec.Tokens)),
	}
	s := Score(comps)
	return Result{
		SectionIndex: sec.Index,
		SectionHash:  sec.Hash,
		Label:        Classify01(s),
		Score:        s,
		Components:   comps,
	}
}

// Score computes the fixed weighted sum over normalized components.
func Score(c Components) float64 {
	return weightTempo*c.TempoNorm + weightVelocity*c.VelocityNorm + weightSlope*c.PitchSlopeNorm
}

// Classify01 maps a score in [0,1] to a label. The 0.35 and 0.65 boundaries
// are neutral.
func Classify01(s float64) Label {
	switch {
	case s > positiveThreshold:
		return Positive
	case s < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// PitchSlope fits a least-squares line through (time, pitch) of the NOTE_ON
// tokens and returns its slope in semitones per second. Fewer than two
// notes, or notes all at the same instant, yield exactly 0.0.
func PitchSlope(tokens []section.Token) float64 {
	var times, pitches []float64
	for _, tok := range tokens {
		if tok.Type != section.NoteOn {
			continue
		}
		times = append(times, tok.Time)
		pitches = append(pitches, float64(tok.Pitch))
	}
	if len(times) < 2 {
		return 0.0
	}
	spread := false
	for _, t := range times[1:] {
		if t != times[0] {
			spread = true
			break
		}
	}
	if !spread {
		return 0.0
	}
	_, slope := stat.LinearRegression(times, pitches, nil, false)
	return slope
}

func normalizeSlope(slope float64) float64 {
	return clamp01(0.5 + slope/slopeScale)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
