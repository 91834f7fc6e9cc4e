// Package render turns a package graph into Graphviz DOT text and rendered
// SVG images for diagnostics. It is a read-only consumer of the graph and is
// not part of the graph-construction core.
package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dartwatch/pubgraph/pkg/pkggraph"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes the canonical source path in node labels.
	// When false, only the package name and dependency type are shown.
	Detailed bool
}

// ToDOT converts a package graph to Graphviz DOT format.
// Nodes are emitted sorted by name for deterministic output; the root package
// is highlighted and SDK-bundled packages are rendered dashed.
func ToDOT(g *pkggraph.PackageGraph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph packages {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	packages := g.Packages()
	names := slices.Sorted(maps.Keys(packages))

	for _, name := range names {
		n := packages[name]
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, name := range names {
		for _, dep := range packages[name].Dependencies {
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, dep.Name)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *pkggraph.PackageNode, detailed bool) string {
	label := fmt.Sprintf("%s\n%s", n.Name, n.Type)
	if detailed {
		label += "\n" + n.Path
	}
	return label
}

func fmtAttrs(n *pkggraph.PackageNode, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case n.IsRoot:
		attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
	case n.Name == pkggraph.SDKPackageName:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
