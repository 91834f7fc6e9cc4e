package pkggraph

import (
	"maps"
	"path/filepath"
	"slices"

	"github.com/dartwatch/pubgraph/pkg/errors"
	"github.com/dartwatch/pubgraph/pkg/pubspec"
)

// Options configures graph construction.
type Options struct {
	// SDKRoot is the absolute path of the Dart SDK installation, stored on
	// the synthetic $sdk node. It is an explicit input rather than a value
	// derived from the running process so the builder stays a pure function
	// of its inputs.
	SDKRoot string
}

// BuildFromPath reads the metadata of the package rooted at rootDir and
// builds its full dependency graph: the root package, every package reachable
// through the location index, and the synthetic SDK node.
//
// All three metadata artifacts (pubspec.yaml, pubspec.lock, .packages) are
// re-read on every call; nothing is cached between builds. Any missing
// artifact or unresolvable reference aborts the build - no partial graph is
// ever returned.
func BuildFromPath(rootDir string, opts Options) (*PackageGraph, error) {
	rootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", rootDir)
	}

	rootName, rootDeps, err := pubspec.ReadRootManifest(rootDir)
	if err != nil {
		return nil, err
	}

	locations, err := pubspec.ReadPackageLocations(rootDir)
	if err != nil {
		return nil, err
	}
	// The root's own location is rootDir itself, not an index entry.
	delete(locations, rootName)

	types, err := pubspec.ReadDependencyTypes(rootDir)
	if err != nil {
		return nil, err
	}

	root := &PackageNode{
		Name:   rootName,
		Path:   rootDir,
		Type:   pubspec.DependencyPath,
		IsRoot: true,
	}

	nodes := map[string]*PackageNode{rootName: root}
	for _, name := range slices.Sorted(maps.Keys(locations)) {
		dt, ok := types[name]
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingDependencyType, "package %s has a location but no %s entry", name, pubspec.LockFile)
		}
		nodes[name] = &PackageNode{Name: name, Path: locations[name], Type: dt}
	}

	if err := wire(root, rootDeps, nodes); err != nil {
		return nil, err
	}
	for _, name := range slices.Sorted(maps.Keys(nodes)) {
		n := nodes[name]
		if n == root {
			continue
		}
		deps, err := pubspec.ReadManifestDependencies(n.Path)
		if err != nil {
			return nil, err
		}
		if err := wire(n, deps, nodes); err != nil {
			return nil, err
		}
	}

	injectSDK(nodes, opts)
	if err := validate(root, nodes); err != nil {
		return nil, err
	}
	return &PackageGraph{Root: root, packages: nodes}, nil
}

// BuildFromRoot builds a graph from a pre-populated root node whose
// dependency edges were attached by the caller. The reachable closure is
// computed by depth-first traversal, visiting each package once keyed by
// name: diamond dependencies are fine, a genuine cycle fails with
// DEPENDENCY_CYCLE.
func BuildFromRoot(root *PackageNode, opts Options) (*PackageGraph, error) {
	if root == nil || !root.IsRoot {
		return nil, errors.New(errors.ErrCodeInvalidRoot, "root package must be a node with root status")
	}

	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int)
	nodes := make(map[string]*PackageNode)

	var visit func(n *PackageNode) error
	visit = func(n *PackageNode) error {
		switch color[n.Name] {
		case gray:
			return errors.New(errors.ErrCodeDependencyCycle, "dependency cycle through package %s", n.Name)
		case black:
			// First discovery wins; shared descendants are not re-visited.
			return nil
		}
		color[n.Name] = gray
		nodes[n.Name] = n
		for _, dep := range n.Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		color[n.Name] = black
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}

	injectSDK(nodes, opts)
	if err := validate(root, nodes); err != nil {
		return nil, err
	}
	return &PackageGraph{Root: root, packages: nodes}, nil
}

// wire attaches n's dependency edges to the nodes matching names, preserving
// declaration order.
func wire(n *PackageNode, names []string, nodes map[string]*PackageNode) error {
	for _, name := range names {
		dep, ok := nodes[name]
		if !ok {
			return errors.New(errors.ErrCodeDanglingDependency, "package %s depends on %s, which has no resolved location", n.Name, name)
		}
		n.Dependencies = append(n.Dependencies, dep)
	}
	return nil
}

// injectSDK adds the synthetic SDK node under the reserved key if no package
// already claimed it. The node never has dependencies of its own.
func injectSDK(nodes map[string]*PackageNode, opts Options) {
	if _, ok := nodes[SDKPackageName]; ok {
		return
	}
	nodes[SDKPackageName] = &PackageNode{
		Name: SDKPackageName,
		Path: opts.SDKRoot,
		Type: pubspec.DependencySDK,
	}
}

// validate checks the structural invariants of the assembled node set:
// exactly one node with root status, and that node is the graph's root.
func validate(root *PackageNode, nodes map[string]*PackageNode) error {
	roots := 0
	for _, n := range nodes {
		if n.IsRoot {
			roots++
		}
	}
	if roots > 1 {
		return errors.New(errors.ErrCodeDuplicateRoot, "found %d packages with root status, want exactly 1", roots)
	}
	if roots == 0 {
		return errors.New(errors.ErrCodeInvalidRoot, "no package with root status in the graph")
	}
	if got, ok := nodes[root.Name]; !ok || got != root {
		return errors.New(errors.ErrCodeInvalidRoot, "root package %s is not the table's entry for its name", root.Name)
	}
	return nil
}
