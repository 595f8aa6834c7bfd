package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Environment variables that override the config file.
const (
	EnvConfig   = "TIMETRACK_CONFIG"
	EnvDB       = "TIMETRACK_DB"
	EnvBackend  = "TIMETRACK_BACKEND"
	EnvLogLevel = "TIMETRACK_LOG_LEVEL"
	EnvColor    = "TIMETRACK_COLOR"
	EnvMessages = "TIMETRACK_MESSAGES"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Schedule ScheduleConfig `toml:"schedule"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

type StorageConfig struct {
	Backend string `toml:"backend" validate:"oneof=sqlite buntdb"`
	Path    string `toml:"path" validate:"required"`
}

type ScheduleConfig struct {
	DayHours float64 `toml:"day_hours" validate:"gt=0,lte=24"`
	WeekDays int     `toml:"week_days" validate:"min=1,max=7"`
}

// DayDuration is DayHours as a duration, rounded to the minute.
func (s ScheduleConfig) DayDuration() time.Duration {
	return time.Duration(s.DayHours * float64(time.Hour)).Round(time.Minute)
}

type OutputConfig struct {
	Color    ColorMode `toml:"color" validate:"oneof=auto always never"`
	Messages bool      `toml:"messages"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

func Default(dbPath string) Config {
	return Config{
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    dbPath,
		},
		Schedule: ScheduleConfig{
			DayHours: 8,
			WeekDays: 5,
		},
		Output: OutputConfig{
			Color:    ColorAuto,
			Messages: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads the TOML file at path over defaults. A missing or empty file
// yields the defaults.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the TIMETRACK_* variables found through
// getenv. Unparseable booleans are reported rather than ignored.
func ApplyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if v := strings.TrimSpace(getenv(EnvDB)); v != "" {
		cfg.Storage.Path = v
	}
	if v := strings.TrimSpace(getenv(EnvBackend)); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvColor)); v != "" {
		cfg.Output.Color = ColorMode(strings.ToLower(v))
	}
	if v := strings.TrimSpace(getenv(EnvMessages)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMessages, err)
		}
		cfg.Output.Messages = b
	}
	return cfg, nil
}

// Resolve loads the effective configuration: defaults, then the config
// file, then the environment. The storage path has "~" expanded.
func Resolve(getenv func(string) string) (Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Config{}, err
	}
	path := strings.TrimSpace(getenv(EnvConfig))
	if path == "" {
		path = ConfigPath(dir)
	}

	cfg, err := Load(ExpandHome(path), Default(DBPath(dir)))
	if err != nil {
		return Config{}, err
	}
	cfg, err = ApplyEnv(cfg, getenv)
	if err != nil {
		return Config{}, err
	}
	cfg.Storage.Path = ExpandHome(cfg.Storage.Path)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
