package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nathoo/liferpg/engine/report"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvPlayer, EnvSeed, EnvFormat, EnvLogLevel, EnvSettings} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player != "Hero" {
		t.Errorf("Player = %q", cfg.Player)
	}
	if cfg.Format != report.FormatJSON {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	env := writeFile(t, dir, "test.env", "LIFERPG_PLAYER=Dotenv\nLIFERPG_SEED=11\nLIFERPG_FORMAT=text\n")

	cfg, err := Load(Options{EnvFile: env})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player != "Dotenv" || cfg.Seed != 11 || cfg.Format != report.FormatText {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoad_DefaultEnvFileInWorkingDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, DefaultEnvFile, "LIFERPG_PLAYER=FromCwd\n")
	t.Chdir(dir)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player != "FromCwd" {
		t.Errorf("Player = %q", cfg.Player)
	}
}

func TestLoad_EnvOverridesEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	env := writeFile(t, dir, "test.env", "LIFERPG_PLAYER=Dotenv\n")
	t.Setenv(EnvPlayer, "Process")

	cfg, err := Load(Options{EnvFile: env})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player != "Process" {
		t.Errorf("Player = %q, want Process", cfg.Player)
	}
}

func TestLoad_SettingsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvPlayer, "Process")
	t.Setenv(EnvLogLevel, "error")
	settings := writeFile(t, t.TempDir(), "liferpg.lua", `
Settings { player = "Lua", seed = 99, log_level = "debug" }
Aliases { d = "quest_complete" }
`)

	cfg, err := Load(Options{SettingsFile: settings})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player != "Lua" {
		t.Errorf("Player = %q, want Lua", cfg.Player)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.Aliases["d"] != "quest_complete" {
		t.Errorf("Aliases = %v", cfg.Aliases)
	}
}

func TestLoad_SettingsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	settings := writeFile(t, t.TempDir(), "s.lua", `Settings { player = "ViaEnv" }`)
	t.Setenv(EnvSettings, settings)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player != "ViaEnv" {
		t.Errorf("Player = %q", cfg.Player)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		opts func(dir string) Options
		want string
	}{
		{
			name: "bad seed",
			env:  map[string]string{EnvSeed: "abc"},
			want: EnvSeed,
		},
		{
			name: "negative seed",
			env:  map[string]string{EnvSeed: "-3"},
			want: "negative",
		},
		{
			name: "bad format",
			env:  map[string]string{EnvFormat: "xml"},
			want: EnvFormat,
		},
		{
			name: "bad log level",
			env:  map[string]string{EnvLogLevel: "loud"},
			want: EnvLogLevel,
		},
		{
			name: "missing explicit env file",
			opts: func(dir string) Options { return Options{EnvFile: filepath.Join(dir, "nope.env")} },
			want: "reading env file",
		},
		{
			name: "missing settings file",
			opts: func(dir string) Options { return Options{SettingsFile: filepath.Join(dir, "nope.lua")} },
			want: "loading settings",
		},
		{
			name: "invalid settings",
			opts: func(dir string) Options {
				return Options{SettingsFile: writeFile(t, dir, "bad.lua", `Settings { format = "xml" }`)}
			},
			want: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			t.Chdir(dir)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			opts := Options{}
			if tt.opts != nil {
				opts = tt.opts(dir)
			}

			_, err := Load(opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	if got := (Config{Seed: 5}).ResolveSeed(clock); got != 5 {
		t.Errorf("explicit seed: got %d", got)
	}
	if got := (Config{}).ResolveSeed(clock); got != now.UnixNano() {
		t.Errorf("zero seed: got %d, want %d", got, now.UnixNano())
	}
}
