// Package integrations provides HTTP plumbing shared by remote API clients.
//
// # Overview
//
// Each remote API has its own subpackage:
//
//   - [modrinth]: Modrinth v2 REST API (projects, versions, users, teams)
//
// # Client Pattern
//
// API clients embed [Client] and add one method per endpoint:
//
//	client := modrinth.NewClient(token)
//	project, err := client.Project(ctx, "sodium")
//
// [Client.Get] returns a [Response] for every HTTP status; the API client
// decides what each status means for the endpoint it called. Only transport
// failures are returned as errors.
//
// # Observability
//
// Every request is reported to [observability.HTTP] so applications can log
// or meter traffic without the library depending on a logging backend.
//
// # Adding a New API
//
//  1. Create a subpackage: pkg/integrations/<api>/
//  2. Define response structs matching the API schema
//  3. Embed [Client] created with [NewClient]
//  4. Map statuses to errors from pkg/errors
//
// [modrinth]: github.com/mythitorium/swagrinth/pkg/integrations/modrinth
// [observability.HTTP]: github.com/mythitorium/swagrinth/pkg/observability.HTTP
package integrations
