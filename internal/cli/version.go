package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version <version-id>",
		Short: "Show a single project version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching version...", func(ctx context.Context, mc *modrinth.Client) (*modrinth.Version, error) {
				return mc.Version(ctx, args[0])
			}, printVersion)
		},
	}
}
