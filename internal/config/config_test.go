package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/shmviz/internal/motion"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Params != motion.DefaultParameters() {
		t.Errorf("expected default parameters, got %+v", cfg.Params)
	}
	if cfg.Step != 0.05 {
		t.Errorf("expected step 0.05, got %v", cfg.Step)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("fast")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params.AngularFrequency != 4*math.Pi {
		t.Errorf("expected ω 4π, got %f", cfg.Params.AngularFrequency)
	}
	if cfg.Step != 0.05 {
		t.Error("preset should keep default step")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg, err := GetPreset("nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsAreValid(t *testing.T) {
	for name, p := range Presets {
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shm.yaml")
	cfg := DefaultConfig()
	cfg.Params.MaxDisplacement = 3.5
	cfg.Theme = "ocean"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Params.MaxDisplacement != 3.5 || got.Theme != "ocean" {
		t.Errorf("loaded %+v", got)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shm.yaml")
	if err := os.WriteFile(path, []byte("params:\n  angular_frequency: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params.AngularFrequency != 3 {
		t.Errorf("expected ω 3, got %v", cfg.Params.AngularFrequency)
	}
	if cfg.Params.MaxDisplacement != motion.DefaultMaxDisplacement || cfg.FPS != DefaultFPS {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_RejectsZeroDivisor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shm.yaml")
	if err := os.WriteFile(path, []byte("params:\n  max_displacement: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, motion.ErrZeroDisplacement) {
		t.Errorf("expected ErrZeroDisplacement, got %v", err)
	}
}

func TestValidate_Step(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Step = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
