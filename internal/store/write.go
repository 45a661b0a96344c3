package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/tonefold/motive/internal/momentum"
	"github.com/tonefold/motive/internal/section"
	"github.com/tonefold/motive/internal/selector"
)

// RecordMomentumRun writes one classification run and its per-section
// results. Returns the UUIDv7 run id; ids are time-sortable so runs chart
// in insertion order.
func (s *Store) RecordMomentumRun(ctx context.Context, set section.Set, rep momentum.Report) (string, error) {
	runID := uuid.Must(uuid.NewV7()).String()
	dist := momentum.Analyze(rep.Results)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO momentum_runs
		(id, tenant_id, file_id, total_sections, unique_sections, dominant_label, mean_score)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, rep.TenantID, rep.FileID, set.TotalSections, set.UniqueSections, string(dist.Dominant), dist.MeanScore)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	for _, r := range rep.Results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO momentum_results
			(run_id, section_index, section_hash, label, score, tempo_norm, velocity_norm, pitch_slope_norm)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, r.SectionIndex, r.SectionHash, string(r.Label), r.Score,
			r.Components.TempoNorm, r.Components.VelocityNorm, r.Components.PitchSlopeNorm)
		if err != nil {
			return "", fmt.Errorf("record run section %d: %w", r.SectionIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return runID, nil
}

// RecordSelection writes one selection decision with its ordered motif ids.
func (s *Store) RecordSelection(ctx context.Context, mode string, requested int, sel selector.Selection) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	ids := make([]string, len(sel.Motifs))
	for i, m := range sel.Motifs {
		ids[i] = m.ID
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("record selection: %w", err)
	}

	degraded := 0
	if sel.Degraded {
		degraded = 1
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO selections (id, tenant_id, mode, label, requested, degraded, motif_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, sel.TenantID, mode, sel.Label, requested, degraded, string(idsJSON))
	if err != nil {
		return "", fmt.Errorf("record selection: %w", err)
	}
	return id, nil
}
