// Package pkg provides the libraries behind swagrinth, a thin client for the
// Modrinth v2 API.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [integrations] - Shared HTTP GET plumbing and the Modrinth client
//  2. [errors] - Coded errors, argument/not-found/access errors, validators
//  3. [observability] - Hooks for logging and metrics around HTTP calls
//  4. [render/nodelink] - Dependency diagrams via Graphviz
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// A request flows through:
//
//	modrinth.Client method (validate arguments)
//	         ↓
//	integrations.Client.Get (headers, hooks, body)
//	         ↓
//	modrinth.Client.fetch (rate-limit snapshot, status mapping, decode)
//	         ↓
//	typed value or *errors.NotFoundError / *errors.AccessError
//
// # Quick Start
//
//	client := modrinth.NewClient(os.Getenv("MODRINTH_TOKEN"))
//
//	project, err := client.Project(ctx, "sodium")
//	if err != nil {
//	    var nf *errors.NotFoundError
//	    if stderrors.As(err, &nf) {
//	        fmt.Println("no such project:", nf.ID)
//	    }
//	    return err
//	}
//	fmt.Println(project.Title, project.Downloads)
//
// The command-line front end lives in internal/cli and cmd/swagrinth.
package pkg
