package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/platform/tui"
	"github.com/vovakirdan/color-rush/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start Color Rush in interactive menu mode.

Pick Play to start, cycle the difficulty, or browse the high scores.
Leaving a game (B/Esc on its title screen) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  colorrush menu
  colorrush menu --fps 30
  colorrush menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}
	base, err := config.Load(s.ConfigPath)
	if err != nil {
		return err
	}

	logger, closer := s.newFileLogger()
	defer closer.Close()

	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rt := s.runtime()
	difficulty := s.Difficulty
	if difficulty == "" {
		difficulty = base.Difficulty.Preset
	}

	for {
		res, err := tui.RunMenu(store, rt, difficulty)
		if err != nil {
			return err
		}
		rt = res.Config
		difficulty = res.Difficulty
		if res.Quit {
			return nil
		}

		switch res.Choice {
		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuPlay:
			cfg := base
			config.ApplyPreset(&cfg, difficulty)
			gameRT := rt
			if gameRT.Seed == 0 {
				gameRT.Seed = time.Now().UnixNano()
			}

			logger.Info("starting game", "difficulty", difficulty, "seed", gameRT.Seed)
			backToMenu, err := tui.Run(tui.GameOptions{
				Config:  cfg,
				Runtime: gameRT,
				Store:   store,
				Logger:  logger,
			})
			if err != nil {
				return fmt.Errorf("error running game: %w", err)
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
