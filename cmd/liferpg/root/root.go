package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// options holds flag values shared by the play and demo commands.
type options struct {
	name     string
	seed     int64
	config   string
	envFile  string
	format   string
	logLevel string
	logFile  string

	plain  bool
	script string
	trace  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "liferpg",
		Short:         "Life RPG: daily habits as quests",
		Long:          "Life RPG generates daily quests, awards XP and stats for finishing them, and penalizes misses.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.name, "name", "", "player name (overrides config)")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed; 0 derives one from the clock")
	pf.StringVar(&opts.config, "config", "", "Lua settings file (default $LIFERPG_CONFIG)")
	pf.StringVar(&opts.envFile, "env-file", "", "dotenv file to read (default .env if present)")
	pf.StringVar(&opts.format, "format", "", "output format for the plain CLI: json, yaml, or text")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, or error")
	pf.StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")

	f := cmd.Flags()
	f.BoolVar(&opts.plain, "plain", false, "use the line-based CLI instead of the TUI")
	f.StringVar(&opts.script, "script", "", "play commands from a file (implies --plain)")
	f.BoolVar(&opts.trace, "trace", false, "print engine events after each command")

	cmd.AddCommand(
		newDemoCmd(opts),
		newSchemaCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "liferpg %s (commit %s, built %s)\n", Version, Commit, Date)
		},
	}
}
