package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
	"github.com/mythitorium/swagrinth/pkg/render/nodelink"
)

// Dependency output formats.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

func (c *CLI) projectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project <id|slug>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching project...", func(ctx context.Context, mc *modrinth.Client) (*modrinth.Project, error) {
				return mc.Project(ctx, args[0])
			}, printProject)
		},
	}

	cmd.AddCommand(c.projectDepsCommand())
	cmd.AddCommand(&cobra.Command{
		Use:   "members <id|slug>",
		Short: "List a project's team members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching members...", func(ctx context.Context, mc *modrinth.Client) (modrinth.Team, error) {
				return mc.ProjectTeam(ctx, args[0])
			}, printTeam)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "versions <id|slug>",
		Short: "List a project's versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(c, cmd, "Fetching versions...", func(ctx context.Context, mc *modrinth.Client) ([]modrinth.Version, error) {
				return mc.ProjectVersions(ctx, args[0])
			}, printVersions)
		},
	})

	return cmd
}

// depsOpts holds flags for the project deps command.
type depsOpts struct {
	format   string
	output   string
	detailed bool
}

func (c *CLI) projectDepsCommand() *cobra.Command {
	opts := depsOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "deps <id|slug>",
		Short: "Show or render a project's dependencies",
		Long: `Show the projects and versions a project depends on.

Formats:
  text  list on the terminal (default)
  dot   Graphviz DOT source
  svg   rendered diagram`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDeps(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include type and download counts in diagram labels")

	return cmd
}

func (c *CLI) runDeps(cmd *cobra.Command, id string, opts depsOpts) error {
	switch opts.format {
	case formatText, formatDOT, formatSVG:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want text, dot or svg)", opts.format)
	}

	ctx := cmd.Context()
	client, err := c.modrinthClient(ctx)
	if err != nil {
		return err
	}
	deps, err := withSpinner(ctx, "Fetching dependencies...", func(ctx context.Context) (*modrinth.DependencyList, error) {
		return client.ProjectDependencies(ctx, id)
	})
	if err != nil {
		return err
	}

	var data []byte
	switch {
	case c.jsonOut:
		return printJSON(cmd.OutOrStdout(), deps)
	case opts.format == formatText:
		printDependencies(cmd.OutOrStdout(), id, deps)
		return nil
	case opts.format == formatDOT:
		data = []byte(nodelink.ToDOT(id, deps, nodelink.Options{Detailed: opts.detailed}))
	case opts.format == formatSVG:
		dot := nodelink.ToDOT(id, deps, nodelink.Options{Detailed: opts.detailed})
		if data, err = nodelink.RenderSVG(ctx, dot); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	printSuccess(cmd.ErrOrStderr(), "Rendered %d dependencies", deps.Len())
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}

// runLookup fetches one value behind a spinner and prints it as JSON or with pretty.
func runLookup[T any](c *CLI, cmd *cobra.Command, msg string,
	fetch func(context.Context, *modrinth.Client) (T, error),
	pretty func(io.Writer, T),
) error {
	ctx := cmd.Context()
	client, err := c.modrinthClient(ctx)
	if err != nil {
		return err
	}
	v, err := withSpinner(ctx, msg, func(ctx context.Context) (T, error) {
		return fetch(ctx, client)
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return c.emit(out, v, func() { pretty(out, v) })
}
