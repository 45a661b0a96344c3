package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/motif"
	"github.com/tonefold/motive/internal/rules"
	"github.com/tonefold/motive/internal/selector"
	"github.com/tonefold/motive/internal/store"
)

// NewSelectCommand creates `motive select --tenant t1 ctr=0.8 ...`.
func NewSelectCommand(opts *RootOptions) *cobra.Command {
	var rulesPath, catalogPath, tenantID, mode, dbPath string
	var count int

	cmd := &cobra.Command{
		Use:   "select <metric>=<value>...",
		Short: "Select motifs matching the label decided from metrics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := parseMetrics(args)
			if err != nil {
				return WrapExitError(ExitCommandError, "parsing metrics", err)
			}
			set, err := rules.LoadFile(rulesPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading rules", err)
			}
			cat, err := motif.LoadCatalog(catalogPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading catalog", err)
			}

			sel, err := selector.Select(metrics, mode, tenantID, count, cat, set)
			if err != nil {
				return WrapExitError(ExitFailure, "selecting", err)
			}

			if dbPath != "" {
				db, err := store.Open(dbPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "opening run log", err)
				}
				defer db.Close()
				if _, err := db.RecordSelection(cmd.Context(), mode, count, sel); err != nil {
					return WrapExitError(ExitCommandError, "recording selection", err)
				}
			}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			return formatter.Success(sel, func(w io.Writer) {
				fmt.Fprintf(w, "label: %s (tenant %s, degraded=%t)\n", sel.Label, sel.TenantID, sel.Degraded)
				for i, m := range sel.Motifs {
					fmt.Fprintf(w, "  %d. %s [%s]\n", i+1, m.ID, m.Label)
				}
			})
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "rules.yaml", "rule file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "catalog.json", "catalog file")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant identifier seeding the draw")
	cmd.Flags().StringVar(&mode, "mode", "", "mode tag matched by the reserved 'mode' key")
	cmd.Flags().StringVar(&dbPath, "db", "", "record the selection into this run-log database")
	cmd.Flags().IntVar(&count, "count", 4, "number of motifs to select")
	cmd.MarkFlagRequired("tenant")
	return cmd
}
