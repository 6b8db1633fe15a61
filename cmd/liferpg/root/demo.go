package root

import (
	"github.com/spf13/cobra"

	"github.com/nathoo/liferpg/cli"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Play a scripted walkthrough of a first day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			log, closeLog, err := newLogger(cfg, opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer closeLog()

			c := cli.New(newEngine(cfg, log))
			c.Out = cmd.OutOrStdout()
			c.Format = cfg.Format
			c.RunDemo()
			return nil
		},
	}
}
