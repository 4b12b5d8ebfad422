// Package modrinth provides an HTTP client for the Modrinth v2 API.
//
// # Overview
//
// This package maps the read-only Modrinth endpoints (https://api.modrinth.com/v2/)
// one-to-one onto methods of [Client]:
//
//   - [Client.Search], [Client.SearchWithOptions]: project search
//   - [Client.Project], [Client.ProjectDependencies], [Client.ProjectTeam],
//     [Client.ProjectVersions]: project lookups
//   - [Client.Version]: a single release artifact
//   - [Client.Team]: team members
//   - [Client.User], [Client.AuthUser], [Client.UserProjects]: users
//   - [Client.FollowedProjects], [Client.Notifications]: token-restricted user data
//
// # Usage
//
//	client := modrinth.NewClient(os.Getenv("MODRINTH_TOKEN"))
//
//	res, err := client.Search(ctx, "sodium", 0, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, hit := range res.Hits {
//	    fmt.Println(hit.Slug, hit.Downloads)
//	}
//
// # Errors
//
// Arguments are validated before any request. Responses map as follows:
//
//   - 200: decoded into the endpoint's value type
//   - 401: [errors.AccessError]
//   - anything else: [errors.NotFoundError] carrying the requested id and
//     a resource kind ("project", "user", "team", "search", "project version")
//
// Each call issues exactly one request. There is no retry, caching or
// pagination iteration.
//
// # Rate Limits
//
// The X-Ratelimit-* headers of every response, including failed ones, are
// recorded and exposed through [Client.RateLimit]. The client never waits
// or throttles on them.
//
// # Dynamic Invocation
//
// [Client.Invoke] calls an endpoint by name with untyped arguments, checking
// each argument's runtime type first. It backs the CLI's "call" command.
//
// [errors.AccessError]: github.com/mythitorium/swagrinth/pkg/errors.AccessError
// [errors.NotFoundError]: github.com/mythitorium/swagrinth/pkg/errors.NotFoundError
package modrinth
