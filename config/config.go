// Package config resolves runtime settings from defaults, a .env file, the
// process environment, and the Lua settings file, in rising precedence.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nathoo/liferpg/engine/report"
	"github.com/nathoo/liferpg/loader"
)

// Environment variable names.
const (
	EnvPlayer   = "LIFERPG_PLAYER"
	EnvSeed     = "LIFERPG_SEED"
	EnvFormat   = "LIFERPG_FORMAT"
	EnvLogLevel = "LIFERPG_LOG_LEVEL"
	EnvSettings = "LIFERPG_CONFIG"
)

// DefaultEnvFile is read when present; its absence is not an error.
const DefaultEnvFile = ".env"

// Config is the resolved runtime configuration.
type Config struct {
	Player   string
	Seed     int64 // 0 means derive from the clock
	Format   report.Format
	LogLevel slog.Level
	Aliases  map[string]string
	Warnings []string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Player:   "Hero",
		Format:   report.FormatJSON,
		LogLevel: slog.LevelWarn,
		Aliases:  map[string]string{},
	}
}

// Options names the files Load reads. Empty paths use the defaults:
// DefaultEnvFile for the env file, and $LIFERPG_CONFIG (if set) for the
// settings file.
type Options struct {
	EnvFile      string
	SettingsFile string
}

// Load resolves configuration. A missing default .env is skipped; an
// explicitly named file that is missing is an error.
func Load(opts Options) (Config, error) {
	cfg := Default()

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return cfg, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	settingsFile := opts.SettingsFile
	if settingsFile == "" {
		settingsFile, _ = lookup(EnvSettings)
	}
	if settingsFile != "" {
		s, err := loader.Load(settingsFile)
		if err != nil {
			return cfg, fmt.Errorf("loading settings: %w", err)
		}
		if err := applySettings(&cfg, s); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vals, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPlayer); ok && strings.TrimSpace(v) != "" {
		cfg.Player = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := ParseSeed(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		f, err := report.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		cfg.Format = f
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	return nil
}

func applySettings(cfg *Config, s *loader.Settings) error {
	if s.Player != "" {
		cfg.Player = s.Player
	}
	if s.HasSeed {
		cfg.Seed = s.Seed
	}
	if s.Format != "" {
		f, err := report.ParseFormat(s.Format)
		if err != nil {
			return err
		}
		cfg.Format = f
	}
	if s.LogLevel != "" {
		lvl, err := ParseLevel(s.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	for word, verb := range s.Aliases {
		cfg.Aliases[word] = verb
	}
	cfg.Warnings = append(cfg.Warnings, s.Warnings...)
	return nil
}

// ParseSeed parses a non-negative decimal seed.
func ParseSeed(v string) (int64, error) {
	seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", v, err)
	}
	if seed < 0 {
		return 0, fmt.Errorf("invalid seed %d: must not be negative", seed)
	}
	return seed, nil
}

// ParseLevel maps debug, info, warn, or error to a slog level.
func ParseLevel(v string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", v)
	}
	return lvl, nil
}

// ResolveSeed returns the configured seed, or one derived from now when
// the seed is 0.
func (c Config) ResolveSeed(now func() time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now().UnixNano()
}
