package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

func (c *CLI) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <id|username>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching user...", func(ctx context.Context, mc *modrinth.Client) (*modrinth.User, error) {
				return mc.User(ctx, args[0])
			}, printUser)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "projects <id|username>",
		Short: "List the projects a user is a member of",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching projects...", func(ctx context.Context, mc *modrinth.Client) ([]modrinth.Project, error) {
				return mc.UserProjects(ctx, args[0])
			}, printProjects)
		},
	})

	return cmd
}

func (c *CLI) meCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the user the token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching user...", func(ctx context.Context, mc *modrinth.Client) (*modrinth.User, error) {
				return mc.AuthUser(ctx)
			}, printUser)
		},
	}
}

func (c *CLI) followsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "follows [id|username]",
		Short: "List followed projects (defaults to the token's user)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching followed projects...", func(ctx context.Context, mc *modrinth.Client) ([]modrinth.Project, error) {
				id, err := userOrSelf(ctx, mc, args)
				if err != nil {
					return nil, err
				}
				return mc.FollowedProjects(ctx, id)
			}, printProjects)
		},
	}
}

func (c *CLI) notificationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications [id|username]",
		Short: "List notifications (defaults to the token's user)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching notifications...", func(ctx context.Context, mc *modrinth.Client) ([]modrinth.Notification, error) {
				id, err := userOrSelf(ctx, mc, args)
				if err != nil {
					return nil, err
				}
				return mc.Notifications(ctx, id)
			}, printNotifications)
		},
	}
}

// userOrSelf returns args[0], or the authenticated user's id when no argument is given.
func userOrSelf(ctx context.Context, mc *modrinth.Client, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	me, err := mc.AuthUser(ctx)
	if err != nil {
		return "", err
	}
	return me.ID, nil
}
