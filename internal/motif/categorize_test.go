package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonefold/motive/internal/score"
)

func motifWith(id string, pitch int, meta Metadata) Motif {
	return Motif{
		ID:       id,
		Notes:    []score.Note{{Pitch: pitch, Velocity: meta.AvgVelocity}},
		Metadata: meta,
	}
}

func TestCategorize_OverlappingBuckets(t *testing.T) {
	// Low register, sparse, narrow and soft all at once.
	m := motifWith("m1", 40, Metadata{NoteDensity: 0.2, PitchRange: 0, AvgVelocity: 30})
	cats := Categorize([]Motif{m})

	assert.Contains(t, cats[CategoryLowPitch], "m1")
	assert.Contains(t, cats[CategorySparse], "m1")
	assert.Contains(t, cats[CategoryNarrowRange], "m1")
	assert.Contains(t, cats[CategorySoft], "m1")
	assert.NotContains(t, cats[CategoryLoud], "m1")
}

func TestCategorize_HighDenseWideLoud(t *testing.T) {
	m := motifWith("m2", 84, Metadata{NoteDensity: 3.0, PitchRange: 19, AvgVelocity: 110})
	cats := Categorize([]Motif{m})

	assert.Contains(t, cats[CategoryHighPitch], "m2")
	assert.Contains(t, cats[CategoryDense], "m2")
	assert.Contains(t, cats[CategoryWideRange], "m2")
	assert.Contains(t, cats[CategoryLoud], "m2")
}

func TestCategorize_MidRangeMotifLandsNowhere(t *testing.T) {
	m := motifWith("m3", 66, Metadata{NoteDensity: 1.0, PitchRange: 7, AvgVelocity: 75})
	cats := Categorize([]Motif{m})
	for cat, ids := range cats {
		assert.NotContains(t, ids, "m3", "unexpected bucket %s", cat)
	}
}
