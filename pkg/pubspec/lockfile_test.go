package pubspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dartwatch/pubgraph/pkg/errors"
)

func TestParseSourceTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    DependencyType
		wantErr bool
	}{
		{tag: "git", want: DependencyGit},
		{tag: "hosted", want: DependencyHosted},
		{tag: "path", want: DependencyPath},
		{tag: "sdk", want: DependencySDK},
		{tag: "ftp", wantErr: true},
		{tag: "", wantErr: true},
		{tag: "Git", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseSourceTag(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeUnknownSourceTag) {
					t.Fatalf("error = %v, want UNKNOWN_SOURCE_TAG", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSourceTag(%q): %v", tt.tag, err)
			}
			if got != tt.want {
				t.Errorf("ParseSourceTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestDependencyTypeString(t *testing.T) {
	tests := []struct {
		dt   DependencyType
		want string
	}{
		{DependencyGit, "git"},
		{DependencyHosted, "hosted"},
		{DependencyPath, "path"},
		{DependencySDK, "sdk"},
		{DependencyType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.dt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestReadDependencyTypes(t *testing.T) {
	dir := t.TempDir()
	lock := `packages:
  libA:
    source: hosted
    version: "1.2.3"
  libB:
    source: git
  flutter_lib:
    source: sdk
  local_lib:
    source: path
`
	if err := os.WriteFile(filepath.Join(dir, LockFile), []byte(lock), 0o644); err != nil {
		t.Fatal(err)
	}

	types, err := ReadDependencyTypes(dir)
	if err != nil {
		t.Fatalf("ReadDependencyTypes: %v", err)
	}

	want := map[string]DependencyType{
		"libA":        DependencyHosted,
		"libB":        DependencyGit,
		"flutter_lib": DependencySDK,
		"local_lib":   DependencyPath,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d entries, want %d", len(types), len(want))
	}
	for name, dt := range want {
		if types[name] != dt {
			t.Errorf("types[%s] = %v, want %v", name, types[name], dt)
		}
	}
}

func TestReadDependencyTypesUnknownTag(t *testing.T) {
	dir := t.TempDir()
	lock := `packages:
  weird:
    source: ftp
`
	if err := os.WriteFile(filepath.Join(dir, LockFile), []byte(lock), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadDependencyTypes(dir)
	if !errors.Is(err, errors.ErrCodeUnknownSourceTag) {
		t.Errorf("error = %v, want UNKNOWN_SOURCE_TAG", err)
	}
}

func TestReadDependencyTypesMissing(t *testing.T) {
	_, err := ReadDependencyTypes(t.TempDir())
	if !errors.Is(err, errors.ErrCodeMissingLockfile) {
		t.Errorf("error = %v, want MISSING_LOCKFILE", err)
	}
}
