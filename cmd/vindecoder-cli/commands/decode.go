package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/use-agent/vindecoder/config"
	"github.com/use-agent/vindecoder/engine"
	"github.com/use-agent/vindecoder/scraper"
)

func newDecodeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <vin>",
		Short: "Looks up a VIN and prints the decoded vehicle fields.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if err := applyFetchFlags(cmd, cfg); err != nil {
				return err
			}

			eng, err := engine.New(cfg)
			if err != nil {
				return err
			}
			sc := scraper.NewScraper(eng, cfg.Fetch)
			defer sc.Close()

			result, err := sc.Lookup(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			return printResult(cmd.OutOrStdout(), format, result.VIN, result.Data)
		},
	}

	cmd.Flags().String("engine", "", "Fetch engine: solver, http or browser.")
	cmd.Flags().String("solver-url", "", "FlareSolverr endpoint, e.g. http://localhost:8191/v1.")
	cmd.Flags().Duration("timeout", 0, "Upstream fetch timeout.")
	return cmd
}

// applyFetchFlags copies explicitly set flags over cfg.
func applyFetchFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("engine") {
		v, err := flags.GetString("engine")
		if err != nil {
			return err
		}
		cfg.Fetch.Engine = v
	}
	if flags.Changed("solver-url") {
		v, err := flags.GetString("solver-url")
		if err != nil {
			return err
		}
		cfg.Solver.URL = v
	}
	if flags.Changed("timeout") {
		v, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		if v <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", v)
		}
		cfg.Fetch.Timeout = v
	}
	return nil
}

