package pubspec

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/dartwatch/pubgraph/pkg/errors"
)

// ReadPackageLocations reads the generated .packages index of the package
// rooted at rootPath and returns the canonical absolute source directory of
// every resolved package.
//
// The index is line-oriented: the first line is a generator header and is
// always skipped; each following line is `<name>:<uri-or-path>` where the
// value ends in the package's lib/ directory. The lib/ component is stripped
// so that the returned path is the package root, not its lib directory.
// file:// URIs are accepted; relative paths are resolved against rootPath.
func ReadPackageLocations(rootPath string) (map[string]string, error) {
	path := filepath.Join(rootPath, PackagesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeMissingLocationIndex, "no %s at %s", PackagesFile, rootPath)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}

	locations := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			// Header line ("Generated by pub ..."), always skipped.
			first = false
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		colon := strings.Index(line, ":")
		if colon <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "%s: malformed entry %q", path, line)
		}
		name := line[:colon]
		locations[name] = resolveLocation(rootPath, line[colon+1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "scan %s", path)
	}
	return locations, nil
}

// resolveLocation turns a raw index value into the canonical absolute package
// root: the file:// scheme and any trailing slash are stripped, the trailing
// lib component is dropped, and relative remainders are joined to rootPath.
func resolveLocation(rootPath, raw string) string {
	loc := strings.TrimPrefix(raw, "file://")
	loc = strings.TrimSuffix(loc, "/")
	// The value always points at the package's lib/ directory; its parent is
	// the package root.
	loc = filepath.Dir(loc)
	if !filepath.IsAbs(loc) {
		loc = filepath.Join(rootPath, loc)
	}
	return filepath.Clean(loc)
}
