package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/drop-catch/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check tuning YAML",
	Long: `Print the built-in tuning as YAML, ready to be edited and passed back
with --config. With --check, load a file on top of the defaults, validate
it and print the effective tuning.

Config search order for play/menu/serve:
  1. --config path
  2. ~/.dropcatch/configs/dropcatch.yaml
  3. ./configs/dropcatch.yaml
  4. built-in defaults

Examples:
  dropcatch config > my-drops.yaml
  dropcatch config --check my-drops.yaml
  dropcatch config --check my-drops.yaml --difficulty hard`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this file and print the effective tuning")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Apply a difficulty preset to the printed tuning")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck == "" && flagDifficulty == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultDropCatchConfig()
	if flagCheck != "" {
		cfg, err = config.LoadDropCatch(flagCheck)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	config.ApplyDropCatchPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
