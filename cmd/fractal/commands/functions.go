package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the operators, functions and constants of custom formulas",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, d := range c.app.Functions() {
				_, _ = fmt.Fprintf(out, "%-9s %-6s %s\n", d.Kind, d.Name, d.Signature)
			}
		},
	}
}
