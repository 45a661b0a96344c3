package motif

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonefold/motive/internal/score"
)

func sampleMotif(id, pattern, label string) Motif {
	return Motif{
		ID:               id,
		SourceFile:       "f1",
		PitchPatternHash: pattern,
		Notes:            []score.Note{{Pitch: 60, Velocity: 80, Duration: 0.5}},
		Metadata:         Metadata{NoteCount: 1, AvgVelocity: 80, Duration: 2, NoteDensity: 0.5, LowestPitch: 60, HighestPitch: 60},
		Label:            label,
		IsLabeled:        label != Unlabeled,
	}
}

func TestCatalog_AppendSkipsKnownPatterns(t *testing.T) {
	cat := NewCatalog()
	added := cat.Append("f1", []Motif{
		sampleMotif("m1", "aaaa", Unlabeled),
		sampleMotif("m2", "bbbb", Unlabeled),
	})
	assert.Equal(t, 2, added)

	added = cat.Append("f2", []Motif{
		sampleMotif("m3", "aaaa", Unlabeled), // same pattern as m1
		sampleMotif("m4", "cccc", Unlabeled),
	})
	assert.Equal(t, 1, added)
	assert.Equal(t, 3, cat.TotalMotifs)
	assert.Equal(t, []string{"f1", "f2"}, cat.ProcessedFiles)
}

func TestCatalog_AppendRecomputesTrainingMetadata(t *testing.T) {
	cat := NewCatalog()
	cat.Append("f1", []Motif{
		sampleMotif("m1", "aaaa", "MOMENTUM_POS"),
		sampleMotif("m2", "bbbb", Unlabeled),
	})

	assert.Equal(t, 2, cat.TrainingMetadata.TotalCount)
	assert.Equal(t, 1, cat.TrainingMetadata.LabeledCount)
	assert.True(t, cat.TrainingMetadata.TrainingReady)
}

func TestCatalog_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	cat := NewCatalog()
	cat.Append("f1", []Motif{sampleMotif("m1", "aaaa", "MOMENTUM_POS")})
	require.NoError(t, cat.Save(path))

	loaded, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, cat.Version, loaded.Version)
	assert.Equal(t, cat.TotalMotifs, loaded.TotalMotifs)
	require.Len(t, loaded.Motifs, 1)
	assert.Equal(t, "m1", loaded.Motifs[0].ID)
	assert.Equal(t, "MOMENTUM_POS", loaded.Motifs[0].Label)
}

func TestLoadCatalog_MissingFileYieldsEmptyCatalog(t *testing.T) {
	cat, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cat.Version)
	assert.Empty(t, cat.Motifs)
}

func TestComputeTrainingStats_Coverage(t *testing.T) {
	motifs := []Motif{
		sampleMotif("m1", "a", "MOMENTUM_POS"),
		sampleMotif("m2", "b", "MOMENTUM_POS"),
		sampleMotif("m3", "c", "MOMENTUM_NEG"),
		sampleMotif("m4", "d", "STEADY"),
		sampleMotif("m5", "e", "STEADY"),
		sampleMotif("m6", "f", Unlabeled),
	}
	stats := ComputeTrainingStats(motifs)

	assert.Equal(t, 6, stats.TotalCount)
	assert.Equal(t, 5, stats.LabeledCount)
	assert.InDelta(t, 83.3, stats.CoveragePercent, 0.05)
	assert.True(t, stats.TrainingReady)
	assert.Equal(t, 2, stats.LabelDistribution["MOMENTUM_POS"])
	assert.Equal(t, 1, stats.LabelDistribution[Unlabeled])
}

func TestComputeTrainingStats_EmptyAndUnlabeled(t *testing.T) {
	stats := ComputeTrainingStats(nil)
	assert.False(t, stats.TrainingReady)
	assert.Equal(t, 0.0, stats.CoveragePercent)

	stats = ComputeTrainingStats([]Motif{sampleMotif("m1", "a", Unlabeled)})
	assert.False(t, stats.TrainingReady)
	assert.Equal(t, 0, stats.LabeledCount)
}
