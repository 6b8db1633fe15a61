package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nathoo/liferpg/engine/report"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [result]",
		Short:     "Print the JSON Schema of a command result",
		Long:      "Print the JSON Schema of a command result. Without an argument, list the result names.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: report.SchemaNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "Results: "+strings.Join(report.SchemaNames(), ", "))
				return nil
			}
			data, err := report.SchemaJSON(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}
}
