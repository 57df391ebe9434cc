package config

import (
	"os"
	"testing"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load("../testdata/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Username != "trader1" || cfg.Password != "s3cr3t" {
		t.Errorf("credentials = %+v", cfg)
	}
	if cfg.HeartbeatIntervalSecs != 15 {
		t.Errorf("HeartbeatIntervalSecs = %d, want 15 (file override)", cfg.HeartbeatIntervalSecs)
	}
	// ReconnectAttempts is absent from the fixture, so it must keep the
	// DefaultTestConfig value rather than zeroing out.
	if cfg.ReconnectAttempts != 3 {
		t.Errorf("ReconnectAttempts = %d, want 3 (default preserved)", cfg.ReconnectAttempts)
	}
	if cfg.AppID != "myapp" || cfg.AppSecret != "appsecret" {
		t.Errorf("app credentials = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("../testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.yaml"
	if err := os.WriteFile(path, []byte("username: [this is not a scalar"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
