package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/catsync/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the remote catalogs for updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.app.CheckForUpdate(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !info.NeedUpdate {
				_, _ = fmt.Fprintln(out, "catalogs are up to date")
				return nil
			}
			_, _ = fmt.Fprintf(out, "update available: %s\n", domain.FormatSize(info.DownloadSizeBytes))
			return nil
		},
	}
}
