package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"oroid/internal/app"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := app.Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Method != "oro" {
		t.Fatalf("want default method oro, got %q", cfg.Method)
	}
	if cfg.StoreFile != "identity_store.json" || cfg.AuditFile != "audit.jsonl" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Home != home {
		t.Fatalf("home not carried: %q", cfg.Home)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	raw := "method: test\nstore_file: store.json\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := app.Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Method != "test" || cfg.StoreFile != "store.json" || !cfg.Verbose {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.AuditFile != "audit.jsonl" {
		t.Fatalf("unset field lost its default: %q", cfg.AuditFile)
	}
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("method: [broken"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := app.Load(home); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
