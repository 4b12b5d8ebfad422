package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

func (c *CLI) teamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "team <team-id>",
		Short: "List a team's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching team...", func(ctx context.Context, mc *modrinth.Client) (modrinth.Team, error) {
				return mc.Team(ctx, args[0])
			}, printTeam)
		},
	}
}
