package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonefold/motive/internal/section"
)

// NewTokenizeCommand creates `motive tokenize <barset.json>`.
func NewTokenizeCommand(opts *RootOptions) *cobra.Command {
	var sectionSize int

	cmd := &cobra.Command{
		Use:   "tokenize <barset.json>",
		Short: "Group bars into sections and deduplicate identical content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadBarSet(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "loading bar set", err)
			}

			result, err := section.Tokenize(set, sectionSize)
			if err != nil {
				return WrapExitError(ExitFailure, "tokenizing", err)
			}

			formatter := &OutputFormatter{Format: opts.Format, Writer: os.Stdout}
			return formatter.Success(result, func(w io.Writer) {
				fmt.Fprintf(w, "file: %s\n", result.FileID)
				fmt.Fprintf(w, "sections: %d total, %d unique\n", result.TotalSections, result.UniqueSections)
				for _, sec := range result.Sections {
					fmt.Fprintf(w, "  [%d] %d tokens, %d/%d bars, hash %s\n",
						sec.Index, len(sec.Tokens), sec.BarsCovered, sec.GroupSize, sec.Hash[:12])
				}
			})
		},
	}

	cmd.Flags().IntVar(&sectionSize, "section-size", section.DefaultSize, "bars per section")
	return cmd
}
