package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(cwd); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home, cwd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Theme != "classic" {
		t.Errorf("theme = %q, want classic", cfg.Display.Theme)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Dictionary.Path != "" {
		t.Errorf("dictionary path = %q, want empty", cfg.Dictionary.Path)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "dictionary:\n  path: /tmp/words.txt\ndisplay:\n  theme: high-contrast\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dictionary.Path != "/tmp/words.txt" {
		t.Errorf("dictionary path = %q", cfg.Dictionary.Path)
	}
	if cfg.Display.Theme != "high-contrast" {
		t.Errorf("theme = %q, want high-contrast", cfg.Display.Theme)
	}
	// Unset keys keep their defaults.
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "display: [unclosed\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, "configs", fileName), "display:\n  theme: local\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Theme != "local" {
		t.Errorf("theme = %q, want local", cfg.Display.Theme)
	}

	// The user directory wins over the working directory.
	writeFile(t, filepath.Join(home, ".wordle", "configs", fileName), "display:\n  theme: user\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Theme != "user" {
		t.Errorf("theme = %q, want user", cfg.Display.Theme)
	}
}

func TestLoadSkipsMalformedSearchPath(t *testing.T) {
	home, cwd := isolate(t)
	writeFile(t, filepath.Join(home, ".wordle", "configs", fileName), "display: [unclosed\n")
	writeFile(t, filepath.Join(cwd, "configs", fileName), "log:\n  level: debug\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvWordsFile, "words.txt")
	t.Setenv(EnvTheme, "high-contrast")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "")

	cfg := Default()
	cfg.Log.File = "keep.log"
	ApplyEnv(&cfg)

	if cfg.Dictionary.Path != "words.txt" {
		t.Errorf("dictionary path = %q", cfg.Dictionary.Path)
	}
	if cfg.Display.Theme != "high-contrast" {
		t.Errorf("theme = %q", cfg.Display.Theme)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Log.File != "keep.log" {
		t.Errorf("empty env should not override, got %q", cfg.Log.File)
	}
}

func TestDefaultYAMLEmbedded(t *testing.T) {
	if len(DefaultYAML()) == 0 {
		t.Fatal("embedded default config is empty")
	}
}
