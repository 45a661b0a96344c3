package motif

import "github.com/tonefold/motive/internal/score"

// Category names. Buckets are independent and non-exclusive: a motif may
// land in any number of them, or none.
const (
	CategoryLowPitch    = "low_pitch"
	CategoryHighPitch   = "high_pitch"
	CategoryDense       = "dense"
	CategorySparse      = "sparse"
	CategoryWideRange   = "wide_range"
	CategoryNarrowRange = "narrow_range"
	CategorySoft        = "soft"
	CategoryLoud        = "loud"
)

// Bucket thresholds.
const (
	lowPitchBelow    = 60.0
	highPitchAbove   = 72.0
	denseAbove       = 2.0
	sparseBelow      = 0.5
	wideRangeAbove   = 12
	narrowRangeBelow = 5
	softBelow        = 50
	loudAbove        = 100
)

// Categorize buckets motifs into descriptive category lists keyed by
// category name, each holding motif ids in catalog order.
func Categorize(motifs []Motif) map[string][]string {
	categories := make(map[string][]string)
	add := func(cat, id string) {
		categories[cat] = append(categories[cat], id)
	}

	for _, m := range motifs {
		avg := avgPitch(m.Notes)
		if avg > 0 && avg < lowPitchBelow {
			add(CategoryLowPitch, m.ID)
		}
		if avg > highPitchAbove {
			add(CategoryHighPitch, m.ID)
		}
		if m.Metadata.NoteDensity > denseAbove {
			add(CategoryDense, m.ID)
		}
		if m.Metadata.NoteDensity > 0 && m.Metadata.NoteDensity < sparseBelow {
			add(CategorySparse, m.ID)
		}
		if m.Metadata.PitchRange > wideRangeAbove {
			add(CategoryWideRange, m.ID)
		}
		if m.Metadata.PitchRange < narrowRangeBelow {
			add(CategoryNarrowRange, m.ID)
		}
		if m.Metadata.AvgVelocity < softBelow {
			add(CategorySoft, m.ID)
		}
		if m.Metadata.AvgVelocity > loudAbove {
			add(CategoryLoud, m.ID)
		}
	}
	return categories
}

func avgPitch(notes []score.Note) float64 {
	if len(notes) == 0 {
		return 0
	}
	var sum float64
	for _, n := range notes {
		sum += float64(n.Pitch)
	}
	return sum / float64(len(notes))
}
