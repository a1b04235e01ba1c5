package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/stacker/parameter"
	"github.com/lixenwraith/stacker/settings"
)

// Config is the process configuration; game tuning lives in the settings file
type Config struct {
	SettingsPath string        `env:"SETTINGS" envDefault:"settings.yaml"`
	TickRate     time.Duration `env:"TICK_RATE"`
	Debug        bool          `env:"DEBUG"`
	LogDir       string        `env:"LOG_DIR" envDefault:"logs"`
	MetricsAddr  string        `env:"METRICS_ADDR"`
}

// loadConfig reads an optional .env, then the environment, then command-line flags
func loadConfig(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{TickRate: parameter.FrameUpdateInterval}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: settings.EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("stacker", flag.ContinueOnError)
	fs.StringVar(&cfg.SettingsPath, "settings", cfg.SettingsPath, "Path to the tuning settings file")
	fs.DurationVar(&cfg.TickRate, "tick", cfg.TickRate, "Frame tick interval")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug logs to the log directory")
	fs.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "Log directory")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "Serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TickRate <= 0 {
		return Config{}, fmt.Errorf("tick rate must be positive, got %s", cfg.TickRate)
	}
	return cfg, nil
}
