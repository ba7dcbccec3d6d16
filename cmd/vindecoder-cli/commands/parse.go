package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/use-agent/vindecoder/extractor"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file.html>",
		Short: "Extracts vehicle fields from a saved lookup page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			data, err := extractor.Extract(string(raw))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printResult(cmd.OutOrStdout(), format, "", data)
		},
	}
}
