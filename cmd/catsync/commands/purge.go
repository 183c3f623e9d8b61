package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every cached catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deleted, err := c.app.Purge()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range deleted {
				_, _ = fmt.Fprintf(out, "removed %s\n", p)
			}
			return nil
		},
	}
}
