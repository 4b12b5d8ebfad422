package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds project type, downloads and version type to node labels.
	// When false, only the title (or version name) is shown.
	Detailed bool
}

// ToDOT converts a project's dependency list to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// The root project points at every dependency project and every dependency
// version. Version nodes are drawn with dashed outlines so pinned versions
// stand apart from whole-project dependencies.
func ToDOT(root string, deps *modrinth.DependencyList, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightblue];\n", root, root)
	if deps == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	seen := map[string]bool{root: true}
	var edges []string
	for _, p := range deps.Projects {
		id := nodeID("p", p.ID, p.Slug)
		if seen[id] {
			continue
		}
		seen[id] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, projectLabel(p, opts.Detailed))
		edges = append(edges, fmt.Sprintf("  %q -> %q;\n", root, id))
	}
	for _, v := range deps.Versions {
		id := nodeID("v", v.ID, v.VersionNumber)
		if seen[id] {
			continue
		}
		seen[id] = true
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
			id, versionLabel(v, opts.Detailed))
		edges = append(edges, fmt.Sprintf("  %q -> %q;\n", root, id))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID prefixes identifiers so a project and a version sharing an id stay distinct.
func nodeID(prefix, id, fallback string) string {
	if id == "" {
		id = fallback
	}
	return prefix + ":" + id
}

func projectLabel(p modrinth.Project, detailed bool) string {
	label := p.Title
	if label == "" {
		label = p.Slug
	}
	if !detailed {
		return label
	}
	parts := []string{label}
	if p.ProjectType != "" {
		parts = append(parts, "type: "+p.ProjectType)
	}
	parts = append(parts, fmt.Sprintf("downloads: %d", p.Downloads))
	return strings.Join(parts, "\n")
}

func versionLabel(v modrinth.Version, detailed bool) string {
	label := strings.TrimSpace(v.Name + " " + v.VersionNumber)
	if !detailed {
		return label
	}
	parts := []string{label}
	if v.VersionType != "" {
		parts = append(parts, "type: "+v.VersionType)
	}
	if len(v.Loaders) > 0 {
		parts = append(parts, "loaders: "+strings.Join(v.Loaders, ", "))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
