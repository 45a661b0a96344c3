package label

import (
	"log/slog"

	"github.com/tonefold/motive/internal/motif"
	"github.com/tonefold/motive/internal/score"
)

// LabeledBar is a bar after label merge. Bars with no matching external
// label carry the UNLABELED sentinel.
type LabeledBar struct {
	BarIndex    int    `json:"bar_index"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	IsLabeled   bool   `json:"is_labeled"`
}

// MergeResult is the outcome of merging external labels onto a bar set.
type MergeResult struct {
	Bars          []LabeledBar `json:"bars"`
	Labeled       int          `json:"labeled"`
	Total         int          `json:"total"`
	TrainingReady bool         `json:"training_ready"`
}

// MergeOntoBars applies external bar labels to every bar in the set. When
// the same bar index appears more than once the last entry wins.
func MergeOntoBars(set score.BarSet, labels []BarLabel) MergeResult {
	byIndex := make(map[int]BarLabel, len(labels))
	for _, l := range labels {
		byIndex[l.BarIndex] = l
	}

	result := MergeResult{Total: len(set.Bars)}
	for _, bar := range set.Bars {
		lb := LabeledBar{BarIndex: bar.BarIndex, Label: motif.Unlabeled}
		if l, ok := byIndex[bar.BarIndex]; ok {
			lb.Label = l.Label
			lb.Description = l.Description
			lb.IsLabeled = true
			result.Labeled++
		}
		result.Bars = append(result.Bars, lb)
	}
	result.TrainingReady = result.Labeled > 0
	return result
}

// PropagateToCatalog projects bar-level labels onto every catalog motif by
// originating bar index, then recomputes the catalog's training metadata.
// Motifs whose bar has no label entry are marked UNLABELED. Existing catalog
// entries are never removed; only label fields are rewritten.
func PropagateToCatalog(cat *motif.Catalog, labels []BarLabel) motif.TrainingMetadata {
	byIndex := make(map[int]BarLabel, len(labels))
	for _, l := range labels {
		byIndex[l.BarIndex] = l
	}

	labeled := 0
	for i := range cat.Motifs {
		m := &cat.Motifs[i]
		if l, ok := byIndex[m.BarIndex]; ok {
			m.Label = l.Label
			m.LabelDescription = l.Description
			m.IsLabeled = true
			labeled++
		} else {
			m.Label = motif.Unlabeled
			m.LabelDescription = ""
			m.IsLabeled = false
		}
	}

	cat.TrainingMetadata = motif.ComputeTrainingStats(cat.Motifs)
	slog.Info("labels propagated onto catalog",
		"motifs", len(cat.Motifs),
		"labeled", labeled,
		"coverage_percent", cat.TrainingMetadata.CoveragePercent)
	return cat.TrainingMetadata
}
