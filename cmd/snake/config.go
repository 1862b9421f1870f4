package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print a variant's configuration",
	Long: `Print the effective configuration of a variant as YAML, including
any override found in ~/.snake/configs or ./configs. The output can be
saved and edited as an override file.

Examples:
  snake config
  snake config classic --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	variant := variantArg(args)

	cfg, err := config.Load(variant, flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
