package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/color-rush/internal/platform/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Color Rush SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the main menu.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.colorrush/host_key

Examples:
  colorrush serve                           # Listen on :23234 with auto-generated key
  colorrush serve --ssh :2222               # Listen on port 2222
  colorrush serve --host-key ./my_host_key  # Use specific host key
  colorrush serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().String("host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().Int("idle-timeout", 30, "Idle timeout in minutes before disconnecting")

	//nolint:errcheck // Only fails on a nil flag set
	viper.BindPFlags(serveCmd.Flags())
}

func runServe(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}
	game, err := s.gameConfig()
	if err != nil {
		return err
	}

	logger := newLogger(s.LogLevel, "colorrush-ssh")

	cfg := tui.SSHServerConfig{
		Address:     viper.GetString("ssh"),
		HostKeyPath: viper.GetString("host-key"),
		DBPath:      s.DBPath,
		IdleTimeout: time.Duration(viper.GetInt("idle-timeout")) * time.Minute,
		TickRate:    s.TickRate,
		Game:        game,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Color Rush SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
