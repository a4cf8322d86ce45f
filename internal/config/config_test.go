package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/st3v3nmw/baker/internal/types"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Output.Path != DefaultOutputPath {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, DefaultOutputPath)
	}
	if cfg.Output.Format != types.OutputFormatHosts {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, types.OutputFormatHosts)
	}
	if cfg.Fetch.Timeout != 0 {
		t.Errorf("Fetch.Timeout = %s, want 0", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.UserAgent != "" {
		t.Errorf("Fetch.UserAgent = %q, want empty", cfg.Fetch.UserAgent)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
output:
  path: /tmp/hosts.txt
  format: rpz
fetch:
  timeout: 45s
  user_agent: baker/1.0
log:
  level: debug
sources:
  - https://example.com/hosts.txt
  - http://lists.example.org/ads
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Output.Path != "/tmp/hosts.txt" {
		t.Errorf("Output.Path = %q", cfg.Output.Path)
	}
	if cfg.Output.Format != types.OutputFormatRPZ {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if cfg.Fetch.Timeout != 45*time.Second {
		t.Errorf("Fetch.Timeout = %s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.UserAgent != "baker/1.0" {
		t.Errorf("Fetch.UserAgent = %q", cfg.Fetch.UserAgent)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want default text", cfg.Log.Format)
	}
	if len(cfg.Sources) != 2 {
		t.Errorf("Sources = %v", cfg.Sources)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown format", data: "output:\n  format: csv\n"},
		{name: "unknown log level", data: "log:\n  level: loud\n"},
		{name: "source is not a url", data: "sources:\n  - not a url\n"},
		{name: "negative timeout", data: "fetch:\n  timeout: -5s\n"},
		{name: "malformed yaml", data: "output: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatalf("Parse(%q) expected error", tt.data)
			}
		})
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baker.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: domains\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { All = Config{} })
	if err := Read(path); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if All.Output.Format != types.OutputFormatDomains {
		t.Errorf("All.Output.Format = %q", All.Output.Format)
	}

	if err := Read(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Read() on missing file expected error")
	}
}
