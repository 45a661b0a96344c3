package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/label"
	"github.com/tonefold/motive/internal/motif"
)

// NewLabelCommand creates `motive label <barset.json>`. Labels come from a
// manual CSV, from markers embedded in the bar set, or both; CSV rows win
// when the same bar is labeled twice because they are merged last.
func NewLabelCommand(opts *RootOptions) *cobra.Command {
	var catalogPath, csvPath string
	var useMarkers bool

	cmd := &cobra.Command{
		Use:   "label <barset.json>",
		Short: "Propagate bar-level labels onto the motif catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" && !useMarkers {
				return NewExitError(ExitCommandError, "need --csv and/or --markers")
			}

			set, err := loadBarSet(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "loading bar set", err)
			}

			var labels []label.BarLabel
			if useMarkers {
				labels = append(labels, label.FromMarkers(set)...)
			}
			if csvPath != "" {
				f, err := os.Open(csvPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "opening label csv", err)
				}
				parsed, err := label.ParseManualCSV(f)
				f.Close()
				if err != nil {
					return WrapExitError(ExitCommandError, "parsing label csv", err)
				}
				labels = append(labels, parsed...)
			}

			merge := label.MergeOntoBars(set, labels)

			cat, err := motif.LoadCatalog(catalogPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading catalog", err)
			}
			stats := label.PropagateToCatalog(cat, labels)
			if err := cat.Save(catalogPath); err != nil {
				return WrapExitError(ExitCommandError, "saving catalog", err)
			}

			out := struct {
				Bars    label.MergeResult      `json:"bars"`
				Catalog motif.TrainingMetadata `json:"catalog"`
			}{merge, stats}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			return formatter.Success(out, func(w io.Writer) {
				fmt.Fprintf(w, "bars labeled: %d/%d\n", merge.Labeled, merge.Total)
				fmt.Fprintf(w, "catalog coverage: %.1f%% (%d/%d), training_ready=%t\n",
					stats.CoveragePercent, stats.LabeledCount, stats.TotalCount, stats.TrainingReady)
			})
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.json", "catalog file")
	cmd.Flags().StringVar(&csvPath, "csv", "", "manual label csv (bar_index,label,description)")
	cmd.Flags().BoolVar(&useMarkers, "markers", false, "read labels from embedded markers")
	return cmd
}
