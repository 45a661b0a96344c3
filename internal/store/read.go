package store

import (
	"context"
	"fmt"
)

// RunSummary is one row of the momentum-over-time view.
type RunSummary struct {
	ID             string  `json:"id"`
	TenantID       string  `json:"tenant_id"`
	FileID         string  `json:"file_id"`
	TotalSections  int     `json:"total_sections"`
	UniqueSections int     `json:"unique_sections"`
	DominantLabel  string  `json:"dominant_label"`
	MeanScore      float64 `json:"mean_score"`
	CreatedAt      string  `json:"created_at"`
}

// RecentRuns returns the newest runs for a tenant, newest first. A zero
// limit defaults to 20.
func (s *Store) RecentRuns(ctx context.Context, tenantID string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tenant_id, file_id, total_sections, unique_sections, dominant_label, mean_score, created_at
		FROM momentum_runs
		WHERE tenant_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.TenantID, &r.FileID, &r.TotalSections,
			&r.UniqueSections, &r.DominantLabel, &r.MeanScore, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("recent runs: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
