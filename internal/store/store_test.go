package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonefold/motive/internal/momentum"
	"github.com/tonefold/motive/internal/motif"
	"github.com/tonefold/motive/internal/section"
	"github.com/tonefold/motive/internal/selector"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestRecordMomentumRun_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	set := section.Set{TenantID: "t1", FileID: "f1", TotalSections: 3, UniqueSections: 2}
	rep := momentum.Report{
		TenantID: "t1",
		FileID:   "f1",
		Results: []momentum.Result{
			{SectionIndex: 0, SectionHash: "aaaa", Label: momentum.Positive, Score: 0.8,
				Components: momentum.Components{TempoNorm: 0.9, VelocityNorm: 0.8, PitchSlopeNorm: 0.6}},
			{SectionIndex: 1, SectionHash: "bbbb", Label: momentum.Neutral, Score: 0.5,
				Components: momentum.Components{TempoNorm: 0.5, VelocityNorm: 0.5, PitchSlopeNorm: 0.5}},
		},
	}

	runID, err := s.RecordMomentumRun(ctx, set, rep)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	runs, err := s.RecentRuns(ctx, "t1", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, 3, runs[0].TotalSections)
	assert.Equal(t, 2, runs[0].UniqueSections)
	assert.Equal(t, string(momentum.Positive), runs[0].DominantLabel)
	assert.InDelta(t, 0.65, runs[0].MeanScore, 1e-9)
}

func TestRecentRuns_FiltersByTenant(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rep := momentum.Report{TenantID: "t1", FileID: "f1",
		Results: []momentum.Result{{SectionHash: "aa", Label: momentum.Neutral, Score: 0.5}}}
	_, err := s.RecordMomentumRun(ctx, section.Set{TenantID: "t1", FileID: "f1", TotalSections: 1, UniqueSections: 1}, rep)
	require.NoError(t, err)

	runs, err := s.RecentRuns(ctx, "t2", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRecordSelection(t *testing.T) {
	s := openTestStore(t)

	sel := selector.Selection{
		Label:    "MOMENTUM_POS",
		TenantID: "t1",
		Motifs:   []motif.Motif{{ID: "m1"}, {ID: "m2"}},
		Degraded: false,
	}
	id, err := s.RecordSelection(context.Background(), "serp", 2, sel)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
