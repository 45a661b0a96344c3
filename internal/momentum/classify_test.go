package momentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonefold/motive/internal/score"
	"github.com/tonefold/motive/internal/section"
)

func onTokens(pitches []int, step float64) []section.Token {
	tokens := make([]section.Token, 0, len(pitches))
	for i, p := range pitches {
		tokens = append(tokens, section.Token{
			Type: section.NoteOn, Pitch: p, Velocity: 90, Time: float64(i) * step,
		})
	}
	return tokens
}

func TestScore_ExactFormula(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		c := Components{TempoNorm: 0.6, VelocityNorm: 0.8, PitchSlopeNorm: p}
		assert.InDelta(t, 0.4*0.6+0.4*0.8+0.2*p, Score(c), 1e-12)
	}
}

func TestClassify01_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  Label
	}{
		{0.66, Positive},
		{0.65, Neutral}, // boundary is neutral
		{0.5, Neutral},
		{0.35, Neutral}, // boundary is neutral
		{0.34, Negative},
		{0.0, Negative},
		{1.0, Positive},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify01(tc.score), "score %v", tc.score)
	}
}

func TestPitchSlope_Anchors(t *testing.T) {
	rising := PitchSlope(onTokens([]int{60, 62, 64, 67}, 0.5))
	assert.Greater(t, rising, 0.0)

	falling := PitchSlope(onTokens([]int{72, 69, 65, 60}, 0.5))
	assert.Less(t, falling, 0.0)

	flat := PitchSlope(onTokens([]int{64, 64, 64, 64}, 0.5))
	assert.Equal(t, 0.0, flat)
}

func TestPitchSlope_DegenerateSequences(t *testing.T) {
	assert.Equal(t, 0.0, PitchSlope(nil))
	assert.Equal(t, 0.0, PitchSlope(onTokens([]int{60}, 0.5)))

	// Simultaneous notes have no time spread to fit against.
	chord := []section.Token{
		{Type: section.NoteOn, Pitch: 60, Time: 0},
		{Type: section.NoteOn, Pitch: 64, Time: 0},
		{Type: section.NoteOn, Pitch: 67, Time: 0},
	}
	assert.Equal(t, 0.0, PitchSlope(chord))
}

func TestNormalizeSlope_AroundCenter(t *testing.T) {
	assert.Equal(t, 0.5, normalizeSlope(0))
	assert.Greater(t, normalizeSlope(3.2), 0.5)
	assert.Less(t, normalizeSlope(-3.2), 0.5)
	assert.Equal(t, 1.0, normalizeSlope(1000))
	assert.Equal(t, 0.0, normalizeSlope(-1000))
}

func TestClassify_EmptySectionStillGetsLabel(t *testing.T) {
	set := section.Set{
		FileID:         "f1",
		TotalSections:  1,
		UniqueSections: 1,
		Sections:       []section.Section{{Index: 0, GroupSize: 4}},
	}
	rep, err := Classify(set)
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)

	r := rep.Results[0]
	assert.NotEmpty(t, r.Label)
	assert.Equal(t, 0.5, r.Components.PitchSlopeNorm)
	assert.Equal(t, 0.0, r.Components.TempoNorm, "no bars means no tempo signal")
}

func TestClassify_EmptyInputAndPassthrough(t *testing.T) {
	_, err := Classify(section.Set{TenantID: "t1", FileID: "f1"})
	require.Error(t, err)
	assert.True(t, score.IsFault(err, score.FaultEmptyInput))

	rep, err := Classify(section.Set{Error: true, TenantID: "t1", FileID: "f1"})
	require.NoError(t, err)
	assert.True(t, rep.Error)
	assert.Equal(t, "t1", rep.TenantID)
}

func TestClassify_FastLoudRisingIsPositive(t *testing.T) {
	sec := section.Section{
		Tokens: onTokens([]int{60, 64, 67, 72}, 0.25),
		Meta:   section.Aggregate{AvgBPM: 170, AvgVelocity: 110, NoteCount: 4},
	}
	r := classifySection(sec)
	assert.Equal(t, Positive, r.Label)
	assert.Greater(t, r.Components.PitchSlopeNorm, 0.5)
}

func TestAnalyze_Distribution(t *testing.T) {
	results := []Result{
		{Label: Positive, Score: 0.8},
		{Label: Positive, Score: 0.7},
		{Label: Neutral, Score: 0.5},
	}
	dist := Analyze(results)

	assert.Equal(t, 2, dist.Counts[Positive])
	assert.Equal(t, 1, dist.Counts[Neutral])
	assert.Equal(t, Positive, dist.Dominant)
	assert.True(t, dist.Variance)
	assert.InDelta(t, (0.8+0.7+0.5)/3, dist.MeanScore, 1e-12)
	assert.Equal(t, 0.5, dist.MinScore)
	assert.Equal(t, 0.8, dist.MaxScore)
}

func TestAnalyze_UniformBatchHasNoVariance(t *testing.T) {
	dist := Analyze([]Result{{Label: Neutral, Score: 0.5}, {Label: Neutral, Score: 0.4}})
	assert.False(t, dist.Variance)
	assert.Equal(t, Neutral, dist.Dominant)
}
