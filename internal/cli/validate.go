package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tonefold/motive/internal/rules"
)

// NewValidateCommand creates `motive validate <rules.yaml>`. All defects
// are collected and reported at once.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <rules.yaml>",
		Short: "Validate a rule file against the schema and ordering rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "reading rule file", err)
			}
			var doc rules.Document
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return WrapExitError(ExitCommandError, "parsing rule file", err)
			}

			defects := rules.Validate(doc)
			if _, _, err := rules.NewSet(doc, args[0]); err != nil {
				defects = append(defects, rules.ValidationError{
					Code: rules.ErrSchemaViolation, Field: "rules", Message: err.Error(),
				})
			}

			out := struct {
				Valid   bool                    `json:"valid"`
				Defects []rules.ValidationError `json:"defects,omitempty"`
			}{len(defects) == 0, defects}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			if err := formatter.Success(out, func(w io.Writer) {
				if out.Valid {
					fmt.Fprintf(w, "%s: valid (%d rules)\n", args[0], len(doc.Rules))
					return
				}
				fmt.Fprintf(w, "%s: %d defects\n", args[0], len(defects))
				for _, d := range defects {
					fmt.Fprintf(w, "  %s\n", d.Error())
				}
			}); err != nil {
				return err
			}

			if !out.Valid {
				return NewExitError(ExitFailure, "rule file failed validation")
			}
			return nil
		},
	}
	return cmd
}
