package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/use-agent/vindecoder/config"
)

// Output formats for printed results.
const (
	outputTable    = "table"
	outputJSON     = "json"
	outputMarkdown = "markdown"
)

// NewRootCmd builds the command tree around cfg. Flags override the
// values loaded from the environment.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "vindecoder-cli",
		Short:         "vindecoder-cli decodes VINs from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("output", "o", outputTable, "Output format: table, json or markdown.")

	root.AddCommand(newDecodeCmd(cfg))
	root.AddCommand(newParseCmd())
	root.AddCommand(newURLCmd(cfg))
	return root
}

func ExecuteContext(ctx context.Context, cfg *config.Config) {
	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
