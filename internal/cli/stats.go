package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/motif"
)

// NewStatsCommand creates `motive stats --catalog catalog.json`. Exits
// non-zero when the catalog is not training-ready, so deployment validators
// can gate on it directly.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report label coverage over the motif catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := motif.LoadCatalog(catalogPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading catalog", err)
			}
			stats := motif.ComputeTrainingStats(cat.Motifs)

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			if err := formatter.Success(stats, func(w io.Writer) {
				fmt.Fprintf(w, "motifs: %d total, %d labeled (%.1f%%)\n",
					stats.TotalCount, stats.LabeledCount, stats.CoveragePercent)
				for lbl, n := range stats.LabelDistribution {
					fmt.Fprintf(w, "  %-14s %d\n", lbl, n)
				}
				fmt.Fprintf(w, "training_ready: %t\n", stats.TrainingReady)
			}); err != nil {
				return err
			}

			if !stats.TrainingReady {
				return NewExitError(ExitFailure, "catalog is not training-ready")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.json", "catalog file")
	return cmd
}
