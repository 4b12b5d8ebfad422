package modrinth

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/mythitorium/swagrinth/pkg/errors"
)

// Default search page parameters.
const (
	DefaultSearchOffset = 0
	DefaultSearchLimit  = 10
)

// Search sort orders accepted by the index parameter.
const (
	IndexRelevance = "relevance"
	IndexDownloads = "downloads"
	IndexFollows   = "follows"
	IndexNewest    = "newest"
	IndexUpdated   = "updated"
)

// SearchOptions narrows a search.
//
// Facets is an AND of ORs: each inner slice is OR-ed, the outer slice is
// AND-ed. For example [["categories:fabric"], ["versions:1.20.1", "versions:1.20.2"]]
// finds Fabric projects for either game version.
type SearchOptions struct {
	Query  string
	Facets [][]string
	Index  string // relevance (default), downloads, follows, newest, updated
	Offset int
	Limit  int
}

// Search queries the project index. offset and limit are passed through
// unchanged; limit must be between 0 and 100.
//
// Any non-200, non-401 status yields an [errors.NotFoundError] with kind
// "search" and the query as id.
func (c *Client) Search(ctx context.Context, query string, offset, limit int) (*SearchResult, error) {
	return c.SearchWithOptions(ctx, SearchOptions{Query: query, Offset: offset, Limit: limit})
}

// SearchWithOptions is [Client.Search] with facet and sort support.
func (c *Client) SearchWithOptions(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	if err := errors.ValidatePage(1, 2, opts.Offset, opts.Limit); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", opts.Query)
	q.Set("offset", strconv.Itoa(opts.Offset))
	q.Set("limit", strconv.Itoa(opts.Limit))
	if len(opts.Facets) > 0 {
		facets, err := json.Marshal(opts.Facets)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "encode facets")
		}
		q.Set("facets", string(facets))
	}
	if opts.Index != "" {
		switch opts.Index {
		case IndexRelevance, IndexDownloads, IndexFollows, IndexNewest, IndexUpdated:
			q.Set("index", opts.Index)
		default:
			return nil, errors.NewInvalidValue(3, "index", "unknown sort index %q", opts.Index)
		}
	}

	var res SearchResult
	if err := c.fetch(ctx, resource{opts.Query, KindSearch}, q, &res, "search"); err != nil {
		return nil, err
	}
	return &res, nil
}
