package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[lint]
disable = ["schemas"]
jobs = 4

[output]
format = "json"
color = "off"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Lint.Disable) != 1 || cfg.Lint.Disable[0] != "schemas" {
		t.Errorf("Disable = %v, want [schemas]", cfg.Lint.Disable)
	}
	if cfg.Lint.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Lint.Jobs)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "off" {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[lint]\njobs = 2\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Format != "text" || cfg.Output.Color != "auto" {
		t.Errorf("defaults not preserved: %+v", cfg.Output)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown check", "[lint]\ndisable = [\"no-such-check\"]\n"},
		{"unknown format", "[output]\nformat = \"yaml\"\n"},
		{"unknown color", "[output]\ncolor = \"sometimes\"\n"},
		{"negative jobs", "[lint]\njobs = -1\n"},
		{"broken toml", "[lint\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() accepted an invalid configuration")
			}
		})
	}
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[output]\nformat = \"text\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find() = %v, %v", ok, err)
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("Find() = %q, want the root config", path)
	}
}

func TestLoadFromDir_NoConfig(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir() failed: %v", err)
	}
	def := Default()
	if cfg.Output != def.Output || cfg.Lint.Jobs != def.Lint.Jobs || len(cfg.Lint.Disable) != 0 {
		t.Errorf("LoadFromDir() = %+v, want defaults", cfg)
	}
}
