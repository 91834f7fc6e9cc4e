package pkggraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Document is the JSON serialization format for a package graph, intended
// for downstream tooling that consumes the graph out of process. Packages
// are sorted by name for deterministic output; dependency lists keep their
// declaration order.
type Document struct {
	Root     string    `json:"root"`
	Packages []Package `json:"packages"`
}

// Package is the serialized form of a [PackageNode].
type Package struct {
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	Type         string   `json:"type"`
	Dependencies []string `json:"dependencies,omitempty"`
	Root         bool     `json:"root,omitempty"`
}

// ToDocument converts a graph to its serialization format.
func ToDocument(g *PackageGraph) Document {
	doc := Document{Root: g.Root.Name}
	for _, name := range slices.Sorted(maps.Keys(g.packages)) {
		n := g.packages[name]
		pkg := Package{
			Name: n.Name,
			Path: n.Path,
			Type: n.Type.String(),
			Root: n.IsRoot,
		}
		if len(n.Dependencies) > 0 {
			pkg.Dependencies = n.DependencyNames()
		}
		doc.Packages = append(doc.Packages, pkg)
	}
	return doc
}

// Marshal converts a graph to indented JSON bytes.
func Marshal(g *PackageGraph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes a graph as JSON and writes it to w.
func WriteJSON(g *PackageGraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *PackageGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
