// Package pkggraph builds and exposes the dependency graph of a resolved
// Dart package tree.
//
// The graph is constructed once, atomically, from the lookup tables produced
// by [github.com/dartwatch/pubgraph/pkg/pubspec] and is immutable afterwards:
// consumers that need fresh data rebuild the whole graph instead of patching
// it. Every node is jointly owned by the graph's table; dependency edges are
// non-owning references into that table.
//
// Downstream tooling (file watchers, build orchestrators) uses the graph to
// learn which packages exist, where their sources live on disk, and how they
// should be monitored: git and path sources can change locally, hosted
// sources are immutable, SDK sources ship with the toolchain.
package pkggraph

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dartwatch/pubgraph/pkg/pubspec"
)

// SDKPackageName is the reserved table key for the synthetic node
// representing the Dart SDK's bundled libraries. The node is always present,
// even when no package declares an SDK dependency.
const SDKPackageName = "$sdk"

// PackageNode is one package in the graph.
//
// Dependencies holds references to other nodes already present in the graph,
// in the order they were declared in the package's manifest. Exactly one node
// in a valid graph has IsRoot set.
type PackageNode struct {
	Name         string
	Path         string // canonical absolute path to the package source tree
	Type         pubspec.DependencyType
	Dependencies []*PackageNode
	IsRoot       bool
}

// DependencyNames returns the names of the node's direct dependencies in
// declaration order.
func (n *PackageNode) DependencyNames() []string {
	names := make([]string, len(n.Dependencies))
	for i, dep := range n.Dependencies {
		names[i] = dep.Name
	}
	return names
}

// PackageGraph is the whole-graph aggregate: the single root node plus the
// name-keyed table of every package reachable from it, including the
// mandatory synthetic SDK entry.
type PackageGraph struct {
	Root *PackageNode

	packages map[string]*PackageNode
}

// Lookup returns the node with the given name and true, or nil and false if
// the name is not in the graph.
func (g *PackageGraph) Lookup(name string) (*PackageNode, bool) {
	n, ok := g.packages[name]
	return n, ok
}

// Packages returns the full name-to-node table.
// The returned map is a copy; the nodes are shared with the graph and must
// not be mutated.
func (g *PackageGraph) Packages() map[string]*PackageNode {
	return maps.Clone(g.packages)
}

// Len returns the number of packages in the graph, including the SDK entry.
func (g *PackageGraph) Len() int { return len(g.packages) }

// Dump returns a human-readable listing of the graph for diagnostics: one
// block per package (sorted by name) with its type, canonical path and direct
// dependency names. The output is not a machine format.
func (g *PackageGraph) Dump() string {
	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(g.packages)) {
		n := g.packages[name]
		fmt.Fprintf(&b, "%s (%s) %s", n.Name, n.Type, n.Path)
		if n.IsRoot {
			b.WriteString(" [root]")
		}
		b.WriteString("\n")
		if len(n.Dependencies) > 0 {
			fmt.Fprintf(&b, "  -> %s\n", strings.Join(n.DependencyNames(), ", "))
		}
	}
	return b.String()
}
