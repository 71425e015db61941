package simulation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-barnes-hut/internal/scenario"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params() error = %v", err)
	}
	if p.Opening != barneshut.OpeningLocal || p.Theta != barneshut.DefaultTheta {
		t.Errorf("Params() = %+v; want local opening with default theta", p)
	}
}

func TestLoadConfig_ShippedConfigs(t *testing.T) {
	files, err := filepath.Glob("../../configs/*.json")
	if err != nil || len(files) == 0 {
		t.Fatalf("no shipped configs found: %v", err)
	}
	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			if _, err := LoadConfig(f, ""); err != nil {
				t.Errorf("LoadConfig(%s) with embedded schema: %v", f, err)
			}
			if _, err := LoadConfig(f, "config.schema.json"); err != nil {
				t.Errorf("LoadConfig(%s) with schema file: %v", f, err)
			}
		})
	}
}

func TestLoadConfig_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `{"theta": 0.8, "opening": "global", "scenario": {"kind": "binary"}}`)
	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig error = %v", err)
	}
	if cfg.Theta != 0.8 || cfg.Opening != "global" {
		t.Errorf("theta/opening = %v/%v; want 0.8/global", cfg.Theta, cfg.Opening)
	}
	if cfg.WorldWidth != DefaultConfig().WorldWidth {
		t.Errorf("WorldWidth = %v; want default %v", cfg.WorldWidth, DefaultConfig().WorldWidth)
	}
	if cfg.Scenario.Kind != scenario.KindBinary {
		t.Errorf("scenario kind = %q; want binary", cfg.Scenario.Kind)
	}
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"negative theta", `{"theta": -1}`, "validation failed"},
		{"unknown key", `{"thetaa": 1}`, "validation failed"},
		{"unknown solver", `{"solver": "fmm"}`, "validation failed"},
		{"unknown scenario", `{"scenario": {"kind": "spiral"}}`, "validation failed"},
		{"zero box", `{"boxSize": 0}`, "validation failed"},
		{"not json", `{theta: 1`, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), "")
			if err == nil {
				t.Fatalf("LoadConfig(%s) succeeded; want an error", tt.content)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v; want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadConfig_MissingFiles(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.json", ""); err == nil {
		t.Error("missing config file should fail")
	}
	path := writeConfig(t, `{}`)
	if _, err := LoadConfig(path, "no-such-schema.json"); err == nil {
		t.Error("missing schema file should fail")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"opening", func(c *Config) { c.Opening = "centroid" }},
		{"solver", func(c *Config) { c.Solver = "fmm" }},
		{"delta time", func(c *Config) { c.DeltaTime = 0 }},
		{"max depth", func(c *Config) { c.MaxDepth = 0 }},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted a bad %s", tt.name)
			}
		})
	}
}

func TestConfig_ScenarioSetupCarriesGravity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = 0.25
	if got := cfg.ScenarioSetup().G; got != 0.25 {
		t.Errorf("ScenarioSetup().G = %v; want 0.25", got)
	}
}
