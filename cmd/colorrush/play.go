package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/color-rush/internal/platform/tui"
	"github.com/vovakirdan/color-rush/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start Color Rush on its title screen.

Controls:
  Space/W/Up   - Jump (hold to jump again on landing)
  S/Down       - Slow down while held
  1-4 / Tab    - Pick / cycle your color
  Enter        - Start a run
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back to the title screen
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start and gentler speed ramp
  normal - Tuning as configured
  hard   - Fast start and steep speed ramp
  fixed  - No speed ramp

Examples:
  colorrush play
  colorrush play --difficulty hard
  colorrush play --seed 42
  colorrush play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}
	cfg, err := s.gameConfig()
	if err != nil {
		return err
	}

	logger, closer := s.newFileLogger()
	defer closer.Close()

	// Open run storage; the game still works without it
	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "difficulty", cfg.Difficulty.Preset, "seed", s.Seed)
	_, err = tui.Run(tui.GameOptions{
		Config:  cfg,
		Runtime: s.runtime(),
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
