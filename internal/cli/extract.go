package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/motif"
)

// NewExtractCommand creates `motive extract <barset.json>...`. Multiple bar
// sets are processed as a batch: a file that fails to load is logged and
// skipped, never fatal to the rest of the batch.
func NewExtractCommand(opts *RootOptions) *cobra.Command {
	var catalogPath string
	var barLength float64
	var minNotes, maxMotifs int

	cmd := &cobra.Command{
		Use:   "extract <barset.json>...",
		Short: "Extract deduplicated motifs into the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := motif.LoadCatalog(catalogPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading catalog", err)
			}

			params := motif.Params{BarLength: barLength, MinNotes: minNotes, MaxMotifs: maxMotifs}
			added, failed := 0, 0
			for _, path := range args {
				set, err := loadBarSet(path)
				if err != nil {
					slog.Warn("skipping unreadable bar set", "path", path, "err", err)
					failed++
					continue
				}
				added += cat.Append(set.FileID, motif.Extract(set, params))
			}

			if err := cat.Save(catalogPath); err != nil {
				return WrapExitError(ExitCommandError, "saving catalog", err)
			}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			return formatter.Success(cat.TrainingMetadata, func(w io.Writer) {
				fmt.Fprintf(w, "catalog: %s\n", catalogPath)
				fmt.Fprintf(w, "motifs: %d total (%d added, %d files skipped)\n",
					cat.TotalMotifs, added, failed)
				for name, ids := range cat.Categories {
					fmt.Fprintf(w, "  %-13s %d\n", name, len(ids))
				}
			})
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.json", "catalog file")
	cmd.Flags().Float64Var(&barLength, "bar-length", 4, "window length in beats")
	cmd.Flags().IntVar(&minNotes, "min-notes", 2, "minimum notes per motif window")
	cmd.Flags().IntVar(&maxMotifs, "max-motifs", 200, "motif cap per file")
	return cmd
}
