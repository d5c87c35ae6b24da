package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/color-rush/internal/config"
)

func newTestViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	flags := cmd.PersistentFlags()
	flags.Int("fps", 60, "")
	flags.Int64("seed", 0, "")
	flags.String("db", "~/.colorrush/runs.db", "")
	flags.String("config", "", "")
	flags.String("difficulty", "", "")
	flags.String("log-level", "info", "")
	flags.String("log-file", "", "")
	if err := flags.Parse(args); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	v := viper.New()
	bindFlags(v, cmd)
	return v
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings(newTestViper(t))
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if s.TickRate != 60 || s.Seed != 0 || s.DBPath != "~/.colorrush/runs.db" {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.Difficulty != "" {
		t.Errorf("Difficulty = %q, expected empty", s.Difficulty)
	}
}

func TestLoadSettingsEnvOverridesDefault(t *testing.T) {
	t.Setenv("COLORRUSH_DB", "/tmp/env.db")
	t.Setenv("COLORRUSH_LOG_LEVEL", "debug")

	s, err := loadSettings(newTestViper(t))
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if s.DBPath != "/tmp/env.db" {
		t.Errorf("DBPath = %q, expected env value", s.DBPath)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected env value", s.LogLevel)
	}
}

func TestLoadSettingsFlagOverridesEnv(t *testing.T) {
	t.Setenv("COLORRUSH_FPS", "30")

	s, err := loadSettings(newTestViper(t, "--fps", "90", "--difficulty", "hard"))
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if s.TickRate != 90 {
		t.Errorf("TickRate = %d, expected flag value 90", s.TickRate)
	}
	if s.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", s.Difficulty)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	if _, err := loadSettings(newTestViper(t, "--difficulty", "brutal")); err == nil {
		t.Error("unknown difficulty should fail")
	}
	if _, err := loadSettings(newTestViper(t, "--fps", "0")); err == nil {
		t.Error("zero fps should fail")
	}
}

func TestGameConfigAppliesPreset(t *testing.T) {
	s := settings{Difficulty: config.DifficultyFixed}
	cfg, err := s.gameConfig()
	if err != nil {
		t.Fatalf("gameConfig() failed: %v", err)
	}
	if cfg.Physics.Acceleration != 0 {
		t.Errorf("fixed preset should disable acceleration, got %g", cfg.Physics.Acceleration)
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"not-an-address": "not-an-address",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, want)
		}
	}
}
