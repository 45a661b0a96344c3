package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/rules"
)

// NewTestCommand creates `motive test --rules rules.yaml <scenarios.yaml>`,
// running declarative decision scenarios against a rule file.
func NewTestCommand(opts *RootOptions) *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "test <scenarios.yaml>",
		Short: "Run decision scenarios against a rule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := rules.LoadFile(rulesPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading rules", err)
			}
			scenarios, err := rules.LoadScenarios(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "loading scenarios", err)
			}

			results, allPassed := set.RunScenarios(scenarios)

			out := struct {
				Passed  bool                   `json:"passed"`
				Results []rules.ScenarioResult `json:"results"`
			}{allPassed, results}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			if err := formatter.Success(out, func(w io.Writer) {
				for _, r := range results {
					status := "PASS"
					if !r.Passed {
						status = "FAIL"
					}
					fmt.Fprintf(w, "%s %-32s decided=%s expected=%s\n", status, r.Name, r.Decided, r.Expected)
					if r.Err != "" {
						fmt.Fprintf(w, "     error: %s\n", r.Err)
					}
				}
			}); err != nil {
				return err
			}

			if !allPassed {
				return NewExitError(ExitFailure, "scenarios failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "rules.yaml", "rule file")
	return cmd
}
