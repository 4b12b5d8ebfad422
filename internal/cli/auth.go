package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

// authCommand creates the auth command with subcommands.
func (c *CLI) authCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored Modrinth token",
		Long: `Store, remove or verify the Modrinth personal access token.

Tokens are created at https://modrinth.com/settings/pats and saved to
~/.config/swagrinth/config.toml (mode 0600). --token and $MODRINTH_TOKEN
take precedence over the stored token.`,
	}

	cmd.AddCommand(c.authSetTokenCommand())
	cmd.AddCommand(c.authLogoutCommand())
	cmd.AddCommand(c.authWhoamiCommand())

	return cmd
}

func (c *CLI) authSetTokenCommand() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "set-token <token>",
		Short: "Save a token to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			token := strings.TrimSpace(args[0])
			if token == "" {
				return errors.New(errors.ErrCodeInvalidInput, "token cannot be empty")
			}

			if verify {
				client, err := c.modrinthClient(ctx)
				if err != nil {
					return err
				}
				client.SetToken(token)
				user, err := withSpinner(ctx, "Verifying token...", func(ctx context.Context) (*modrinth.User, error) {
					return client.AuthUser(ctx)
				})
				if err != nil {
					return err
				}
				printInfo(cmd.ErrOrStderr(), "Token belongs to @%s", user.Username)
			}

			path := c.configPath()
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			cfg.Token = token
			if err := saveConfig(path, cfg); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Token saved")
			printFile(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", true, "check the token against the API before saving")
	return cmd
}

func (c *CLI) authLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath()
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			if cfg.Token == "" {
				printInfo(cmd.OutOrStdout(), "No token stored")
				return nil
			}
			cfg.Token = ""
			if err := saveConfig(path, cfg); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (c *CLI) authWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user the active token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.modrinthClient(ctx)
			if err != nil {
				return err
			}
			if client.Token() == "" {
				return &errors.AccessError{Reason: "no token (run 'swagrinth auth set-token' first)"}
			}

			user, err := withSpinner(ctx, "Verifying token...", func(ctx context.Context) (*modrinth.User, error) {
				return client.AuthUser(ctx)
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return c.emit(out, user, func() {
				printSuccess(out, "Modrinth session")
				printKeyValue(out, "Username", "@"+user.Username)
				printKeyValue(out, "ID", user.ID)
				printKeyValue(out, "Email", user.Email)
				printKeyValue(out, "Role", user.Role)
			})
		},
	}
}
