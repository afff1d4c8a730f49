package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be tolerated, got %v", err)
	}
	if cfg.Practice.List != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[practice]\nlist = \"Full Alphabet\"\nreport-pretty = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Practice.List == nil || *cfg.Practice.List != "Full Alphabet" {
		t.Fatalf("expected list from config, got %v", cfg.Practice.List)
	}
	if cfg.Practice.ReportPretty == nil || *cfg.Practice.ReportPretty {
		t.Fatalf("expected report-pretty false, got %v", cfg.Practice.ReportPretty)
	}
}
