package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/catsync/internal/core/domain"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <key>",
		Short: "Resolve a resource key and describe the loaded value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.app.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), args[0], v)
			return nil
		},
	}
}

func describe(w io.Writer, key string, v any) {
	switch val := v.(type) {
	case domain.Sprite:
		_, _ = fmt.Fprintf(w, "%s: sprite %s from %s (%d bytes)\n", key, val.Name, val.Path, len(val.Data))
	case *domain.Atlas:
		_, _ = fmt.Fprintf(w, "%s: atlas %s with %d sprite(s)\n", key, val.Name(), val.Len())
	case []byte:
		_, _ = fmt.Fprintf(w, "%s: %d bytes\n", key, len(val))
	default:
		_, _ = fmt.Fprintf(w, "%s: %T\n", key, v)
	}
}
