package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/catsync/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Publish the project's catalog and bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Build(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range result.Catalog.Bundles {
				_, _ = fmt.Fprintf(out, "%-24s %10s %4d asset(s)\n", b.Name, domain.FormatSize(b.Size), len(b.Assets))
			}
			_, _ = fmt.Fprintf(out, "catalog %s (%s)\n", result.Catalog.ID, result.Hash)
			return nil
		},
	}
}
