package cli

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFile is the optional per-tree configuration file, looked up in the
// package root directory.
const configFile = ".pubgraph.toml"

// config holds the CLI-level settings that are not part of the library's
// explicit inputs.
type config struct {
	// SDKRoot overrides the auto-detected Dart SDK installation path used
	// for the synthetic $sdk node.
	SDKRoot string `toml:"sdk_root"`
}

// loadConfig reads the .pubgraph.toml in rootDir if present.
// A missing file yields a zero config; a malformed file is an error.
func loadConfig(rootDir string) (config, error) {
	var cfg config
	path := filepath.Join(rootDir, configFile)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return config{}, nil
		}
		return config{}, err
	}
	return cfg, nil
}

// resolveSDKRoot determines the Dart SDK installation path, in order of
// preference: config file override, the DART_SDK environment variable, the
// location of the dart executable on PATH. An empty result is tolerated - the
// synthetic SDK node then carries an empty path, which only degrades
// SDK-package watching.
func resolveSDKRoot(cfg config) string {
	if cfg.SDKRoot != "" {
		return cfg.SDKRoot
	}
	if sdk := os.Getenv("DART_SDK"); sdk != "" {
		return sdk
	}
	if dart, err := exec.LookPath("dart"); err == nil {
		// The executable lives in <sdk>/bin/dart.
		return filepath.Dir(filepath.Dir(dart))
	}
	return ""
}
