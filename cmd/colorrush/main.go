// colorrush is an endless runner for the terminal: jump through rotating
// rings on the segment that matches your color.
//
// Usage:
//
//	colorrush play           - Play a run straight away
//	colorrush menu           - Start the main menu
//	colorrush serve          - Start SSH server for remote play
//	colorrush scores         - Show the best runs
//	colorrush config         - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.colorrush/runs.db)
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//
// Every flag can also be set through a COLORRUSH_ environment variable,
// e.g. COLORRUSH_DB or COLORRUSH_LOG_LEVEL.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorrush",
	Short: "Color Rush - an endless color-matching runner for your terminal",
	Long: `Color Rush is an endless runner played in the terminal. Rings with four
colored segments rotate across the lane; jump through them on the segment
that matches your color.

Available commands:
  play     - Play a run straight away
  menu     - Main menu with difficulty and high scores
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective tuning

Examples:
  colorrush play
  colorrush play --difficulty hard
  colorrush menu
  colorrush serve --ssh :2222
  colorrush scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "~/.colorrush/runs.db", "Path to runs database")
	flags.String("config", "", "Path to custom tuning YAML")
	flags.String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "~/.colorrush/colorrush.log", "Log file for interactive commands")

	bindFlags(viper.GetViper(), rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// bindFlags binds every persistent flag of cmd into v and enables
// COLORRUSH_ environment overrides. Flags set on the command line win.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	v.SetEnvPrefix("COLORRUSH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	//nolint:errcheck // Only fails on a nil flag set
	v.BindPFlags(cmd.PersistentFlags())
}
