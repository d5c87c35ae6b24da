package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/color-rush/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning Color Rush would play with, after the config search
and the difficulty preset have been applied.

Config search order:
  1. --config <path>
  2. ~/.colorrush/configs/colorrush.yaml
  3. ./configs/colorrush.yaml
  4. Built-in defaults

Examples:
  colorrush config
  colorrush config --difficulty hard
  colorrush config --defaults > ~/.colorrush/configs/colorrush.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}
	cfg, err := s.gameConfig()
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
