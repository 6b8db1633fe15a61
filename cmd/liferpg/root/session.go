package root

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nathoo/liferpg/cli"
	"github.com/nathoo/liferpg/config"
	"github.com/nathoo/liferpg/engine"
	"github.com/nathoo/liferpg/engine/report"
	"github.com/nathoo/liferpg/tui"
)

// resolveConfig loads config files and environment, then applies any
// flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, o *options) (config.Config, error) {
	cfg, err := config.Load(config.Options{EnvFile: o.envFile, SettingsFile: o.config})
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		name := strings.TrimSpace(o.name)
		if name == "" {
			return cfg, fmt.Errorf("--name must not be blank")
		}
		cfg.Player = name
	}
	if flags.Changed("seed") {
		if o.seed < 0 {
			return cfg, fmt.Errorf("--seed must not be negative")
		}
		cfg.Seed = o.seed
	}
	if flags.Changed("format") {
		f, err := report.ParseFormat(o.format)
		if err != nil {
			return cfg, fmt.Errorf("--format: %w", err)
		}
		cfg.Format = f
	}
	if flags.Changed("log-level") {
		lvl, err := config.ParseLevel(o.logLevel)
		if err != nil {
			return cfg, fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	for _, w := range cfg.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+w)
	}
	return cfg, nil
}

// newLogger builds a text logger. Without --log-file it writes to stderr,
// or nowhere when quiet is set (the TUI owns the terminal).
func newLogger(cfg config.Config, o *options, stderr io.Writer, quiet bool) (*slog.Logger, func(), error) {
	hopts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, hopts)), func() { _ = f.Close() }, nil
	}
	if quiet {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(stderr, hopts)), func() {}, nil
}

func newEngine(cfg config.Config, log *slog.Logger) *engine.Engine {
	return engine.New(cfg.Player,
		engine.WithSeed(cfg.ResolveSeed(time.Now)),
		engine.WithLogger(log),
		engine.WithAliases(cfg.Aliases),
	)
}

func runPlay(cmd *cobra.Command, o *options) error {
	cfg, err := resolveConfig(cmd, o)
	if err != nil {
		return err
	}

	plain := o.plain || o.script != "" || !isTerminal()
	log, closeLog, err := newLogger(cfg, o, cmd.ErrOrStderr(), !plain)
	if err != nil {
		return err
	}
	defer closeLog()

	eng := newEngine(cfg, log)

	if !plain {
		return tui.Run(eng)
	}

	c := cli.New(eng)
	c.Out = cmd.OutOrStdout()
	c.Format = cfg.Format
	c.Trace = o.trace

	// Script mode: read commands from the file and echo them.
	if o.script != "" {
		f, err := os.Open(o.script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
	} else {
		c.In = cmd.InOrStdin()
	}

	c.Run()
	return nil
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
