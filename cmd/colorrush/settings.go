package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/color-rush/internal/config"
	"github.com/vovakirdan/color-rush/internal/core"
)

// settings are the process-level options resolved from flags and environment.
type settings struct {
	TickRate   int
	Seed       int64
	DBPath     string
	ConfigPath string
	Difficulty config.DifficultyPreset
	LogLevel   string
	LogFile    string
}

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		TickRate:   v.GetInt("fps"),
		Seed:       v.GetInt64("seed"),
		DBPath:     v.GetString("db"),
		ConfigPath: v.GetString("config"),
		LogLevel:   v.GetString("log-level"),
		LogFile:    v.GetString("log-file"),
	}
	if s.TickRate <= 0 {
		return s, fmt.Errorf("invalid --fps %d: must be positive", s.TickRate)
	}
	if raw := v.GetString("difficulty"); raw != "" {
		s.Difficulty = config.ParsePreset(raw)
		if s.Difficulty == "" {
			return s, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", raw)
		}
	}
	return s, nil
}

// gameConfig loads the tuning and applies the difficulty preset.
func (s settings) gameConfig() (config.Config, error) {
	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, s.Difficulty)
	return cfg, cfg.Validate()
}

// runtime builds the runtime config from the current terminal size.
func (s settings) runtime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = s.TickRate
	rt.Seed = s.Seed
	return rt
}

// newLogger creates a stderr logger for non-interactive commands.
func newLogger(level, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger, level)
	return logger
}

// newFileLogger creates a logger for commands that own the terminal, where
// stderr output would corrupt the screen. The returned closer releases the file.
func (s settings) newFileLogger() (*log.Logger, io.Closer) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if s.LogFile != "" {
		path := expandHome(s.LogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				w, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "colorrush",
	})
	setLevel(logger, s.LogLevel)
	return logger, closer
}

func setLevel(logger *log.Logger, level string) {
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// portOf returns the port part of a listen address like ":23234".
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil && port != "" {
		return port
	}
	return addr
}
