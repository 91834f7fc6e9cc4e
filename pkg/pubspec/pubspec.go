// Package pubspec reads the on-disk metadata of a resolved Dart package tree:
// the pubspec.yaml manifest, the pubspec.lock file, and the generated
// .packages location index.
//
// The package exposes plain lookup tables and does no graph reasoning - that
// is the job of [github.com/dartwatch/pubgraph/pkg/pkggraph]. All readers
// fail hard when an artifact is missing: pubgraph only runs against trees
// where `pub get` has already been executed, so a missing file is not a
// recoverable condition.
package pubspec

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dartwatch/pubgraph/pkg/errors"
)

// Well-known file names inside a package root.
const (
	ManifestFile = "pubspec.yaml"
	LockFile     = "pubspec.lock"
	PackagesFile = ".packages"
)

// manifest mirrors the subset of pubspec.yaml this tool cares about.
// The three dependency sections are kept as raw yaml nodes so that the
// declaration order of the keys survives decoding.
type manifest struct {
	Name                string    `yaml:"name"`
	Dependencies        yaml.Node `yaml:"dependencies"`
	DevDependencies     yaml.Node `yaml:"dev_dependencies"`
	DependencyOverrides yaml.Node `yaml:"dependency_overrides"`
}

// ReadRootManifest reads the pubspec.yaml of the package rooted at rootPath
// and returns the declared package name together with its dependency names.
//
// The dependency set is the union of dependencies, dev_dependencies and
// dependency_overrides, de-duplicated, in declaration order. Dev and override
// dependencies are included deliberately: downstream watchers must monitor
// test-only and overridden sources too.
func ReadRootManifest(rootPath string) (string, []string, error) {
	m, err := readManifest(filepath.Join(rootPath, ManifestFile))
	if err != nil {
		return "", nil, err
	}
	if m.Name == "" {
		return "", nil, errors.New(errors.ErrCodeInvalidManifest, "%s in %s declares no package name", ManifestFile, rootPath)
	}
	return m.Name, m.dependencyNames(), nil
}

// ReadManifestDependencies reads the pubspec.yaml of the package rooted at
// pkgPath and returns its dependency names, applying the same
// union-of-three-sections rule as [ReadRootManifest].
func ReadManifestDependencies(pkgPath string) ([]string, error) {
	m, err := readManifest(filepath.Join(pkgPath, ManifestFile))
	if err != nil {
		return nil, err
	}
	return m.dependencyNames(), nil
}

func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeMissingManifest, "no %s at %s", ManifestFile, filepath.Dir(path))
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	return &m, nil
}

// dependencyNames returns the union of the three dependency sections in
// declaration order, first occurrence wins.
func (m *manifest) dependencyNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, section := range []yaml.Node{m.Dependencies, m.DevDependencies, m.DependencyOverrides} {
		for _, name := range mappingKeys(section) {
			if !seen[name] {
				names = append(names, name)
				seen[name] = true
			}
		}
	}
	return names
}

// mappingKeys returns the keys of a yaml mapping node in document order.
// Non-mapping nodes (absent or null sections) yield no keys.
func mappingKeys(n yaml.Node) []string {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}
