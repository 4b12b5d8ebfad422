// Package nodelink renders a project's dependencies as a node-link diagram.
//
// # Overview
//
// The root project is drawn at the top with an arrow to every project and
// every pinned version it depends on, as reported by the Modrinth
// dependencies endpoint. Layout and rendering are done by Graphviz.
//
// # Usage
//
//	deps, err := client.ProjectDependencies(ctx, "sodium")
//	if err != nil {
//	    return err
//	}
//	dot := nodelink.ToDOT("sodium", deps, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source from [ToDOT] can also be saved and processed with external
// Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No external binaries are needed.
package nodelink
