package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_AppliesDefaults(t *testing.T) {
	writeConfig(t, "logging:\n  level: debug\n")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Zendesk.Subdomain != "example" {
		t.Errorf("Subdomain default = %q", cfg.Zendesk.Subdomain)
	}
	if cfg.Store.SnapshotPath != filepath.Join("data", "snapshot.json") {
		t.Errorf("SnapshotPath default = %q", cfg.Store.SnapshotPath)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_SUBDOMAIN", "acme")
	writeConfig(t, "zendesk:\n  subdomain: ${TEST_SUBDOMAIN}\nstore:\n  seed_path: ${TEST_UNSET:-seed.json}\n")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Zendesk.Subdomain != "acme" {
		t.Errorf("Subdomain = %q, want env expansion", cfg.Zendesk.Subdomain)
	}
	if cfg.Store.SeedPath != "seed.json" {
		t.Errorf("SeedPath = %q, want :- default", cfg.Store.SeedPath)
	}
}

func TestLoad_RejectsBadFaultRules(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing operation",
			yaml: "faults:\n  - status: 500\n",
		},
		{
			name: "non-error status",
			yaml: "faults:\n  - operation: zendesk.tickets.create\n    status: 200\n",
		},
		{
			name: "negative times",
			yaml: "faults:\n  - operation: zendesk.tickets.create\n    status: 500\n    times: -1\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			writeConfig(t, tc.yaml)
			if _, err := Load("test"); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if env := GetEnv(); env != "local" {
		t.Errorf("GetEnv default = %q", env)
	}
	t.Setenv("ENV", "prod")
	if env := GetEnv(); env != "prod" {
		t.Errorf("GetEnv = %q", env)
	}
}
