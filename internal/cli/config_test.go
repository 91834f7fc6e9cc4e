package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		cfg, err := loadConfig(t.TempDir())
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.SDKRoot != "" {
			t.Errorf("SDKRoot = %q, want empty for missing config", cfg.SDKRoot)
		}
	})

	t.Run("Valid", func(t *testing.T) {
		dir := t.TempDir()
		content := "sdk_root = \"/custom/dart-sdk\"\n"
		if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := loadConfig(dir)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.SDKRoot != "/custom/dart-sdk" {
			t.Errorf("SDKRoot = %q, want /custom/dart-sdk", cfg.SDKRoot)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, configFile), []byte("sdk_root = [broken"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := loadConfig(dir); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}

func TestResolveSDKRoot(t *testing.T) {
	t.Run("ConfigWins", func(t *testing.T) {
		t.Setenv("DART_SDK", "/env/sdk")
		got := resolveSDKRoot(config{SDKRoot: "/cfg/sdk"})
		if got != "/cfg/sdk" {
			t.Errorf("resolveSDKRoot = %q, want /cfg/sdk", got)
		}
	})

	t.Run("EnvFallback", func(t *testing.T) {
		t.Setenv("DART_SDK", "/env/sdk")
		got := resolveSDKRoot(config{})
		if got != "/env/sdk" {
			t.Errorf("resolveSDKRoot = %q, want /env/sdk", got)
		}
	})
}
