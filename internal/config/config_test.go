package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Equations) != 3 {
		t.Fatalf("expected 3 sample equations, got %d", len(cfg.Equations))
	}
	for _, ec := range cfg.Equations {
		if len(ec.Coefficients) != ec.Degree+1 {
			t.Errorf("%s: %d coefficients for degree %d", ec.Label, len(ec.Coefficients), ec.Degree)
		}
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")

	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(cfg.Equations) != 3 {
		t.Fatalf("expected 3 equations, got %d", len(cfg.Equations))
	}
	if cfg.Equations[2].Degree != 3 {
		t.Errorf("expected degree 3, got %d", cfg.Equations[2].Degree)
	}
	if cfg.Equations[2].Coefficients[1] != -6 {
		t.Errorf("coefficients not preserved: %v", cfg.Equations[2].Coefficients)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cubic", "factored")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Degree != 3 {
		t.Errorf("expected degree 3, got %d", cfg.Degree)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("cubic", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "factored") != nil {
		t.Error("expected nil for nonexistent kind")
	}
}

func TestFindPreset(t *testing.T) {
	cfg := FindPreset("golden")
	if cfg == nil || cfg.Degree != 2 {
		t.Errorf("expected quadratic golden preset, got %+v", cfg)
	}
	if FindPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent name")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("quadratic")
	if len(names) == 0 {
		t.Fatal("expected presets for quadratic")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent kind")
	}
}

func TestPresets_ShapesValid(t *testing.T) {
	for kind, group := range Presets {
		for name, ec := range group {
			if len(ec.Coefficients) != ec.Degree+1 {
				t.Errorf("%s/%s: %d coefficients for degree %d", kind, name, len(ec.Coefficients), ec.Degree)
			}
			if ec.Coefficients[0] == 0 {
				t.Errorf("%s/%s: zero leading coefficient", kind, name)
			}
		}
	}
}
