package pubspec

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dartwatch/pubgraph/pkg/errors"
)

// DependencyType classifies how a package's source is obtained, which
// determines how downstream tooling should watch it. Git and path sources can
// change locally; hosted sources are immutable once fetched; SDK sources ship
// with the toolchain.
type DependencyType int

const (
	// DependencyGit is a package checked out from version control.
	DependencyGit DependencyType = iota
	// DependencyHosted is a package fetched from the pub registry.
	DependencyHosted
	// DependencyPath is a package referenced by local filesystem path.
	DependencyPath
	// DependencySDK is a package bundled with the Dart SDK.
	DependencySDK
)

// String returns the lock file source tag for the dependency type.
func (t DependencyType) String() string {
	switch t {
	case DependencyGit:
		return "git"
	case DependencyHosted:
		return "hosted"
	case DependencyPath:
		return "path"
	case DependencySDK:
		return "sdk"
	default:
		return "unknown"
	}
}

// ParseSourceTag maps a pubspec.lock source tag to its DependencyType.
// Tags outside git|hosted|path|sdk fail with UNKNOWN_SOURCE_TAG.
func ParseSourceTag(tag string) (DependencyType, error) {
	switch tag {
	case "git":
		return DependencyGit, nil
	case "hosted":
		return DependencyHosted, nil
	case "path":
		return DependencyPath, nil
	case "sdk":
		return DependencySDK, nil
	default:
		return 0, errors.New(errors.ErrCodeUnknownSourceTag, "unknown source tag %q", tag)
	}
}

// lockfile mirrors the subset of pubspec.lock this tool cares about.
type lockfile struct {
	Packages map[string]lockPackage `yaml:"packages"`
}

type lockPackage struct {
	Source string `yaml:"source"`
}

// ReadDependencyTypes reads the pubspec.lock of the package rooted at
// rootPath and returns the source classification of every locked package.
func ReadDependencyTypes(rootPath string) (map[string]DependencyType, error) {
	path := filepath.Join(rootPath, LockFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeMissingLockfile, "no %s at %s", LockFile, rootPath)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "read %s", path)
	}

	var lock lockfile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "parse %s", path)
	}

	types := make(map[string]DependencyType, len(lock.Packages))
	for name, pkg := range lock.Packages {
		dt, err := ParseSourceTag(pkg.Source)
		if err != nil {
			return nil, errors.New(errors.ErrCodeUnknownSourceTag, "package %s: unknown source tag %q", name, pkg.Source)
		}
		types[name] = dt
	}
	return types, nil
}
