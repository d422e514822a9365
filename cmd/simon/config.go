package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Simon would play with, after the config file
search and --difficulty have been applied. The output is valid YAML and can
be saved as ~/.simon/configs/simon.yaml.

Examples:
  simon config
  simon config --difficulty easy > ~/.simon/configs/simon.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
