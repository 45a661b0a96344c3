package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/momentum"
	"github.com/tonefold/motive/internal/section"
	"github.com/tonefold/motive/internal/store"
)

// classifyOutput is the combined report plus distribution summary.
type classifyOutput struct {
	Report       momentum.Report       `json:"report"`
	Distribution momentum.Distribution `json:"distribution"`
	RunID        string                `json:"run_id,omitempty"`
}

// NewClassifyCommand creates `motive classify <barset.json>`.
func NewClassifyCommand(opts *RootOptions) *cobra.Command {
	var sectionSize int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "classify <barset.json>",
		Short: "Classify section momentum from tempo, velocity, and pitch contour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadBarSet(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "loading bar set", err)
			}

			sections, err := section.Tokenize(set, sectionSize)
			if err != nil {
				return WrapExitError(ExitFailure, "tokenizing", err)
			}
			report, err := momentum.Classify(sections)
			if err != nil {
				return WrapExitError(ExitFailure, "classifying", err)
			}

			out := classifyOutput{
				Report:       report,
				Distribution: momentum.Analyze(report.Results),
			}

			if dbPath != "" {
				db, err := store.Open(dbPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "opening run log", err)
				}
				defer db.Close()
				out.RunID, err = db.RecordMomentumRun(cmd.Context(), sections, report)
				if err != nil {
					return WrapExitError(ExitCommandError, "recording run", err)
				}
			}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			return formatter.Success(out, func(w io.Writer) {
				fmt.Fprintf(w, "file: %s\n", report.FileID)
				for _, r := range report.Results {
					fmt.Fprintf(w, "  [%d] %-8s score=%.3f tempo=%.2f velocity=%.2f slope=%.2f\n",
						r.SectionIndex, r.Label, r.Score,
						r.Components.TempoNorm, r.Components.VelocityNorm, r.Components.PitchSlopeNorm)
				}
				fmt.Fprintf(w, "dominant: %s (variance=%t, mean=%.3f)\n",
					out.Distribution.Dominant, out.Distribution.Variance, out.Distribution.MeanScore)
				if out.RunID != "" {
					fmt.Fprintf(w, "run recorded: %s\n", out.RunID)
				}
			})
		},
	}

	cmd.Flags().IntVar(&sectionSize, "section-size", section.DefaultSize, "bars per section")
	cmd.Flags().StringVar(&dbPath, "db", "", "record the run into this run-log database")
	return cmd
}
