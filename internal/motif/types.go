// Package motif slices source recordings into single-bar fragments, tags
// them with descriptive metadata, and maintains the persisted catalog those
// fragments live in.
package motif

import "github.com/tonefold/motive/internal/score"

// Unlabeled is the label carried by motifs and bars with no momentum label.
const Unlabeled = "UNLABELED"

// Metadata describes a motif's musical surface.
type Metadata struct {
	NoteCount    int     `json:"note_count"`
	PitchRange   int     `json:"pitch_range"`
	AvgVelocity  int     `json:"avg_velocity"`
	NoteDensity  float64 `json:"note_density"` // notes per second
	Duration     float64 `json:"duration"`     // seconds
	LowestPitch  int     `json:"lowest_pitch"`
	HighestPitch int     `json:"highest_pitch"`
}

// Motif is a short, independently addressable musical fragment. Note timing
// is re-based to the motif's own window, so a motif plays identically
// wherever it originally occurred.
type Motif struct {
	ID               string       `json:"id"`
	SourceFile       string       `json:"source_file"`
	InstrumentIndex  int          `json:"instrument_index"`
	BarIndex         int          `json:"bar_index"`
	PitchPatternHash string       `json:"pitch_pattern_hash"`
	Notes            []score.Note `json:"notes"`
	Metadata         Metadata     `json:"metadata"`
	Label            string       `json:"label,omitempty"`
	LabelDescription string       `json:"label_description,omitempty"`
	IsLabeled        bool         `json:"is_labeled"`
}

// TrainingMetadata is the catalog-level label coverage summary used by
// pre-deployment validators.
type TrainingMetadata struct {
	LabeledCount      int            `json:"labeled_count"`
	TotalCount        int            `json:"total_count"`
	CoveragePercent   float64        `json:"coverage_percent"`
	LabelDistribution map[string]int `json:"label_distribution"`
	TrainingReady     bool           `json:"training_ready"`
}

// Catalog is the persisted collection of all known motifs plus derived
// category indexes. It is treated as a value: read whole, mutated, written
// whole. Only the motif-building step appends entries and only label
// propagation rewrites label fields.
type Catalog struct {
	Version          int                 `json:"version"`
	TotalMotifs      int                 `json:"total_motifs"`
	ProcessedFiles   []string            `json:"processed_files"`
	Motifs           []Motif             `json:"motifs"`
	Categories       map[string][]string `json:"categories"`
	TrainingMetadata TrainingMetadata    `json:"training_metadata"`
}

// CurrentVersion is written into new catalogs.
const CurrentVersion = 1
