package pubspec

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dartwatch/pubgraph/pkg/errors"
)

// writeManifest writes a pubspec.yaml into dir and returns dir.
func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestReadRootManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantName string
		wantDeps []string
		wantErr  errors.Code
	}{
		{
			name: "DirectOnly",
			manifest: `name: app
dependencies:
  libA: ^1.0.0
  libB: any
`,
			wantName: "app",
			wantDeps: []string{"libA", "libB"},
		},
		{
			name: "UnionOfThreeSections",
			manifest: `name: app
dependencies:
  a: ^1.0.0
dev_dependencies:
  b: ^2.0.0
dependency_overrides:
  c:
    path: ../c
`,
			wantName: "app",
			wantDeps: []string{"a", "b", "c"},
		},
		{
			name: "DeDuplicated",
			manifest: `name: app
dependencies:
  a: ^1.0.0
dev_dependencies:
  a: ^1.0.0
  b: any
dependency_overrides:
  b:
    path: ../b
`,
			wantName: "app",
			wantDeps: []string{"a", "b"},
		},
		{
			name: "DeclarationOrderPreserved",
			manifest: `name: app
dependencies:
  zeta: any
  alpha: any
  mid: any
`,
			wantName: "app",
			wantDeps: []string{"zeta", "alpha", "mid"},
		},
		{
			name:     "NoDependencySections",
			manifest: "name: app\n",
			wantName: "app",
			wantDeps: nil,
		},
		{
			name: "NoName",
			manifest: `dependencies:
  a: any
`,
			wantErr: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "Malformed",
			manifest: "name: [unbalanced\n",
			wantErr:  errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeManifest(t, t.TempDir(), tt.manifest)

			name, deps, err := ReadRootManifest(dir)
			if tt.wantErr != "" {
				if errors.GetCode(err) != tt.wantErr {
					t.Fatalf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadRootManifest: %v", err)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if !reflect.DeepEqual(deps, tt.wantDeps) {
				t.Errorf("deps = %v, want %v", deps, tt.wantDeps)
			}
		})
	}
}

func TestReadRootManifestMissing(t *testing.T) {
	_, _, err := ReadRootManifest(t.TempDir())
	if errors.GetCode(err) != errors.ErrCodeMissingManifest {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeMissingManifest)
	}
}

func TestReadManifestDependencies(t *testing.T) {
	dir := writeManifest(t, t.TempDir(), `name: libA
dependencies:
  x: any
dev_dependencies:
  y: any
`)

	deps, err := ReadManifestDependencies(dir)
	if err != nil {
		t.Fatalf("ReadManifestDependencies: %v", err)
	}
	want := []string{"x", "y"}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("deps = %v, want %v", deps, want)
	}
}

func TestReadManifestDependenciesMissing(t *testing.T) {
	_, err := ReadManifestDependencies(t.TempDir())
	if errors.GetCode(err) != errors.ErrCodeMissingManifest {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeMissingManifest)
	}
}
