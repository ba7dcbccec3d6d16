package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/engine"
)

func newURLCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "url <vin>",
		Short: "Prints the lookup page address for a VIN without fetching it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.CheckVIN(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), engine.TargetURL(cfg.Fetch.LookupBaseURL, args[0]))
			return err
		},
	}
}
