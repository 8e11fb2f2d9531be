package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Asteroid.DensityKgPerM3 != 3000 {
		t.Errorf("density = %v, want 3000", cfg.Asteroid.DensityKgPerM3)
	}
	in := cfg.Defense.Interceptor
	if in.MassKg != 570 || in.VelocityKmPerSecond != 6.6 || in.MomentumEnhancementFactor != 3.6 {
		t.Errorf("interceptor = %+v, want DART defaults", in)
	}
	if cfg.Defense.LeadTimeYears != 5 {
		t.Errorf("lead time = %v, want 5", cfg.Defense.LeadTimeYears)
	}
	if cfg.Derived.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v, want info", cfg.Derived.LogLevel)
	}
	if cfg.Derived.LeadTimeSeconds <= 0 {
		t.Errorf("derived lead time seconds = %v", cfg.Derived.LeadTimeSeconds)
	}
}

func TestLoadOverridesMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	override := []byte("defense:\n  lead_time_years: 12\n  interceptor:\n    mass_kg: 1000\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, override, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Defense.LeadTimeYears != 12 {
		t.Errorf("lead time = %v, want 12", cfg.Defense.LeadTimeYears)
	}
	if cfg.Defense.Interceptor.MassKg != 1000 {
		t.Errorf("mass = %v, want 1000", cfg.Defense.Interceptor.MassKg)
	}
	// Untouched keys keep their defaults
	if cfg.Defense.Interceptor.VelocityKmPerSecond != 6.6 {
		t.Errorf("velocity = %v, want default 6.6", cfg.Defense.Interceptor.VelocityKmPerSecond)
	}
	if cfg.Asteroid.DensityKgPerM3 != 3000 {
		t.Errorf("density = %v, want default 3000", cfg.Asteroid.DensityKgPerM3)
	}
	if cfg.Derived.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", cfg.Derived.LogLevel)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero density", "asteroid:\n  density_kg_m3: 0\n"},
		{"negative lead time", "defense:\n  lead_time_years: -1\n"},
		{"inverted sweep", "sweep:\n  min_diameter_m: 100\n  max_diameter_m: 10\n"},
		{"one step", "sweep:\n  steps: 1\n"},
		{"malformed", "asteroid: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Defense.LeadTimeYears = 7.5

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Defense.LeadTimeYears != 7.5 {
		t.Errorf("lead time = %v, want 7.5", loaded.Defense.LeadTimeYears)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}
