package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

// searchOpts holds flags for the search command.
type searchOpts struct {
	offset      int
	limit       int
	facets      []string
	index       string
	interactive bool
}

func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{offset: modrinth.DefaultSearchOffset, limit: modrinth.DefaultSearchLimit}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Modrinth projects",
		Long: `Search the Modrinth project index.

Each --facet is one OR-group; comma-separate alternatives inside a group.
Groups are AND-ed together:

  swagrinth search sodium --facet categories:fabric --facet versions:1.20.1,versions:1.20.2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return c.runSearch(cmd, query, opts)
		},
	}

	cmd.Flags().IntVar(&opts.offset, "offset", opts.offset, "number of hits to skip")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, fmt.Sprintf("hits per page (max %d)", errors.MaxSearchLimit))
	cmd.Flags().StringArrayVar(&opts.facets, "facet", nil, "facet group, e.g. categories:fabric (repeatable)")
	cmd.Flags().StringVar(&opts.index, "index", "", "sort by relevance, downloads, follows, newest or updated")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick a result and show its details")

	_ = cmd.RegisterFlagCompletionFunc("index", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{
			modrinth.IndexRelevance, modrinth.IndexDownloads, modrinth.IndexFollows,
			modrinth.IndexNewest, modrinth.IndexUpdated,
		}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, query string, opts searchOpts) error {
	ctx := cmd.Context()
	client, err := c.modrinthClient(ctx)
	if err != nil {
		return err
	}

	req := modrinth.SearchOptions{
		Query:  query,
		Facets: parseFacets(opts.facets),
		Index:  opts.index,
		Offset: opts.offset,
		Limit:  opts.limit,
	}

	res, err := withSpinner(ctx, "Searching...", func(ctx context.Context) (*modrinth.SearchResult, error) {
		return client.SearchWithOptions(ctx, req)
	})
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("search done", "query", query, "hits", res.Len(), "total", res.TotalHits)

	if !opts.interactive || c.jsonOut {
		return c.emit(cmd.OutOrStdout(), res, func() { printSearchResult(cmd.OutOrStdout(), res) })
	}
	if res.Len() == 0 {
		printInfo(cmd.OutOrStdout(), "No projects found")
		return nil
	}

	final, err := tea.NewProgram(newSearchPicker(res), tea.WithContext(ctx)).Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "run picker")
	}
	picked := final.(searchPicker).Selected
	if picked == nil {
		return nil
	}

	project, err := withSpinner(ctx, "Loading "+picked.Slug+"...", func(ctx context.Context) (*modrinth.Project, error) {
		return client.Project(ctx, picked.ProjectID)
	})
	if err != nil {
		return err
	}
	printProject(cmd.OutOrStdout(), project)
	return nil
}

// parseFacets turns ["a,b", "c"] into [["a","b"],["c"]], dropping empty entries.
func parseFacets(groups []string) [][]string {
	var out [][]string
	for _, g := range groups {
		var group []string
		for _, f := range strings.Split(g, ",") {
			if f = strings.TrimSpace(f); f != "" {
				group = append(group, f)
			}
		}
		if len(group) > 0 {
			out = append(out, group)
		}
	}
	return out
}

// withSpinner runs fn while a spinner shows msg.
func withSpinner[T any](ctx context.Context, msg string, fn func(context.Context) (T, error)) (T, error) {
	prog := newProgress(loggerFromContext(ctx))
	s := newSpinner(ctx, msg)
	s.Start()
	v, err := fn(ctx)
	s.Stop()
	if err == nil {
		prog.done(strings.TrimSuffix(msg, "..."))
	}
	return v, err
}
