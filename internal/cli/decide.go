package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/rules"
)

// NewDecideCommand creates `motive decide --rules rules.yaml ctr=0.8 ...`.
// The rule file is loaded fresh on every invocation.
func NewDecideCommand(opts *RootOptions) *cobra.Command {
	var rulesPath, mode string

	cmd := &cobra.Command{
		Use:   "decide <metric>=<value>...",
		Short: "Decide a momentum label from a metrics vector",
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

			decided, err := set.Decide(metrics, mode)
			if err != nil {
				return WrapExitError(ExitFailure, "deciding", err)
			}

			out := struct {
				Label string `json:"label"`
				Mode  string `json:"mode"`
			}{decided, mode}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			return formatter.Success(out, func(w io.Writer) {
				fmt.Fprintln(w, decided)
			})
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "rules.yaml", "rule file")
	cmd.Flags().StringVar(&mode, "mode", "", "mode tag matched by the reserved 'mode' key")
	return cmd
}
