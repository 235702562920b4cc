package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a race would use, after the config file search
and --difficulty are applied. The output is valid input for --config.

Config search order:
  --config <path>
  ~/.racer/configs/racer.yaml
  ./configs/racer.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, _, err := loadRacerConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fail("encoding config: %v", err)
	}
	//nolint:errcheck // Nothing left to report to if stdout is gone
	os.Stdout.Write(data)
}
