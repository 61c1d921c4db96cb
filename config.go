package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"linkbox/surface"
)

type Config struct {
	AngleA      float64 `yaml:"angle_a" envconfig:"ANGLE_A"`
	AngleB      float64 `yaml:"angle_b" envconfig:"ANGLE_B"`
	Tolerance   float64 `yaml:"tolerance" envconfig:"TOLERANCE"`
	NudgeStep   float64 `yaml:"nudge_step" envconfig:"NUDGE_STEP"`
	SnapshotDir string  `yaml:"snapshot_dir" envconfig:"SNAPSHOT_DIR"`
	LogFile     string  `yaml:"log_file" envconfig:"LOG"`
	LogLevel    string  `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

func defaultConfig() *Config {
	return &Config{
		AngleA:    surface.DefaultAngleA,
		AngleB:    surface.DefaultAngleB,
		NudgeStep: defaultNudgeStep,
		LogLevel:  "info",
	}
}

// loadConfig reads ~/.linkbox.yaml when present and applies LINKBOX_*
// environment overrides on top.
func loadConfig() (*Config, error) {
	path := ""
	if homeDir, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(homeDir, configFileName)
	}
	return loadConfigFrom(path)
}

func loadConfigFrom(path string) (*Config, error) {
	config := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return config, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return defaultConfig(), fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, config); err != nil {
		return defaultConfig(), fmt.Errorf("config env: %w", err)
	}

	if config.NudgeStep <= 0 {
		config.NudgeStep = defaultNudgeStep
	}
	if config.Tolerance < 0 {
		return defaultConfig(), fmt.Errorf("tolerance must not be negative, got %v", config.Tolerance)
	}
	config.SnapshotDir = expandPath(config.SnapshotDir)
	config.LogFile = expandPath(config.LogFile)
	return config, nil
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GetSavePath places filename in the snapshot directory, creating it if
// needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SnapshotDir == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SnapshotDir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	return filepath.Join(c.SnapshotDir, filename), nil
}

func (c *Config) surfaceOptions() []surface.Option {
	return []surface.Option{
		surface.WithAngles(c.AngleA, c.AngleB),
		surface.WithTolerance(c.Tolerance),
	}
}
