package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "cyberpunk" {
		t.Errorf("expected theme cyberpunk, got %s", cfg.Theme)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Simulation == "" {
		t.Error("default simulation should be set")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme = "ocean"
	cfg.FPS = 60
	cfg.Overrides = Overrides{
		"pendulum": {"length": 1.5},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", loaded.Theme)
	}
	if loaded.FPS != 60 {
		t.Errorf("expected fps 60, got %d", loaded.FPS)
	}
	if got := loaded.ParamsFor("pendulum")["length"]; got != 1.5 {
		t.Errorf("expected pendulum length override 1.5, got %f", got)
	}
}

func TestLoadClampsBadFPS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps fallback %d, got %d", DefaultFPS, cfg.FPS)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("snells-law", "trapped-light")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p["incidentAngle"] != 60 {
		t.Errorf("expected incident angle 60, got %f", p["incidentAngle"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if p := GetPreset("snells-law", "nonexistent"); p != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if p := GetPreset("nonexistent", "classic"); p != nil {
		t.Error("expected nil for nonexistent simulation")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("projectile")
	if len(names) == 0 {
		t.Fatal("expected presets for projectile")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
	if names := ListPresets("nonexistent"); names != nil {
		t.Error("expected nil for nonexistent simulation")
	}
}
