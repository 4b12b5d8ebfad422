package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/buildinfo"
	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
	"github.com/mythitorium/swagrinth/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "swagrinth"

	envToken   = "MODRINTH_TOKEN"
	envBaseURL = "MODRINTH_API_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the config file location (tests).
	ConfigPath string

	token     string
	jsonOut   bool
	rateLimit bool

	client *modrinth.Client
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Swagrinth queries the Modrinth API from the terminal",
		Long: `Swagrinth is a thin client for the Modrinth v2 API. It searches projects,
looks up projects, versions, users and teams, and renders dependency graphs.

The token is read from --token, then $MODRINTH_TOKEN, then the config file.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			ctx = withRunID(ctx)
			cmd.SetContext(ctx)
			observability.SetHTTPHooks(newLogHooks(c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.rateLimit && c.client != nil {
				printRateLimit(cmd.ErrOrStderr(), c.client.RateLimit())
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.token, "token", "", "Modrinth personal access token")
	flags.BoolVar(&c.jsonOut, "json", false, "print raw JSON instead of formatted output")
	flags.BoolVar(&c.rateLimit, "ratelimit", false, "print the rate-limit status after the command")

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.projectCommand())
	root.AddCommand(c.teamCommand())
	root.AddCommand(c.userCommand())
	root.AddCommand(c.meCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.followsCommand())
	root.AddCommand(c.notificationsCommand())
	root.AddCommand(c.callCommand())
	root.AddCommand(c.authCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// modrinthClient returns the API client for this invocation, building it
// from flags, environment and config file on first use.
func (c *CLI) modrinthClient(ctx context.Context) (*modrinth.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	cfg, err := loadConfig(c.configPath())
	if err != nil {
		return nil, err
	}
	s, err := resolveSettings(c.token, cfg, os.Getenv)
	if err != nil {
		return nil, err
	}

	opts := []modrinth.Option{modrinth.WithBaseURL(s.BaseURL)}
	if s.UserAgent != "" {
		opts = append(opts, modrinth.WithUserAgent(s.UserAgent))
	}
	c.client = modrinth.NewClient(s.Token, opts...)

	loggerFromContext(ctx).Debug("client ready", "base_url", s.BaseURL, "token_source", s.TokenSource)
	return c.client, nil
}

func (c *CLI) configPath() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	path, err := defaultConfigPath()
	if err != nil {
		return ""
	}
	return path
}

// =============================================================================
// Output
// =============================================================================

// emit prints v as indented JSON when --json is set, otherwise calls pretty.
func (c *CLI) emit(w io.Writer, v any, pretty func()) error {
	if c.jsonOut {
		return printJSON(w, v)
	}
	pretty()
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode output")
	}
	return nil
}

func printRateLimit(w io.Writer, rl modrinth.RateLimit) {
	if !rl.Known() {
		printInfo(w, "Rate limit: not reported")
		return
	}
	printInfo(w, "Rate limit: %s/%s remaining, resets in %ss",
		StyleNumber.Render(fmt.Sprint(rl.Remaining)),
		fmt.Sprint(rl.Limit),
		fmt.Sprint(rl.Reset))
}
