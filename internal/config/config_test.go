package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Planets) != 8 {
		t.Errorf("expected 8 planets, got %d", len(cfg.Planets))
	}
	if cfg.Stars.Count != 15000 {
		t.Errorf("expected 15000 stars, got %d", cfg.Stars.Count)
	}
	if cfg.Stars.Spread != 2000 {
		t.Errorf("expected spread 2000, got %f", cfg.Stars.Spread)
	}
	if cfg.ZoomOffset() != orrery.V(0, 20, 50) {
		t.Errorf("expected zoom offset (0,20,50), got %v", cfg.ZoomOffset())
	}
	if cfg.CameraPosition() != orrery.V(0, 70, 250) {
		t.Errorf("expected camera at (0,70,250), got %v", cfg.CameraPosition())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDescriptorsMatchBuiltins(t *testing.T) {
	got := DefaultConfig().Descriptors()
	want := scene.DefaultPlanets()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("planet %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.yaml")
	data := `
stars:
  count: 100
planets:
  - name: Vulcan
    size: 2
    distance: 20
    color: 0xff0000
    speed: 0.009
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Stars.Count != 100 {
		t.Errorf("expected 100 stars, got %d", cfg.Stars.Count)
	}
	if cfg.Stars.Spread != 2000 {
		t.Errorf("expected default spread kept, got %f", cfg.Stars.Spread)
	}
	if len(cfg.Planets) != 1 || cfg.Planets[0].Name != "Vulcan" {
		t.Fatalf("expected single planet Vulcan, got %+v", cfg.Planets)
	}
	if cfg.Planets[0].Color != 0xff0000 {
		t.Errorf("expected color 0xff0000, got %#x", cfg.Planets[0].Color)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.toml")
	data := `
frame_rate = 30

[zoom]
offset = [0.0, 10.0, 25.0]

[[planets]]
name = "Earth"
size = 10.0
distance = 100.0
color = 0x0077ff
speed = 0.002
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %d", cfg.FrameRate)
	}
	if cfg.ZoomOffset() != orrery.V(0, 10, 25) {
		t.Errorf("expected zoom offset (0,10,25), got %v", cfg.ZoomOffset())
	}
	if len(cfg.Planets) != 1 || cfg.Planets[0].Color != 0x0077ff {
		t.Errorf("unexpected planets: %+v", cfg.Planets)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".toml"} {
		path := filepath.Join(t.TempDir(), "cfg"+ext)
		cfg := GetPreset("inner")
		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: save failed: %v", ext, err)
		}
		back, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load failed: %v", ext, err)
		}
		if len(back.Planets) != 4 || back.Planets[3].Name != "Mars" {
			t.Errorf("%s: expected inner planets, got %+v", ext, back.Planets)
		}
		if back.Stars.Count != 5000 {
			t.Errorf("%s: expected 5000 stars, got %d", ext, back.Stars.Count)
		}
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "planets:\n  - name: Fast\n    size: 1\n    distance: 10\n    speed: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, orrery.ErrInvalidPlanet) {
		t.Errorf("expected ErrInvalidPlanet, got %v", err)
	}

	path = filepath.Join(t.TempDir(), "bad.ini")
	if err := os.WriteFile(path, []byte("x=1"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, orrery.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRejectsZeroWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 0\n  height: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, orrery.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window", func(c *Config) { c.Window.Width, c.Window.Height = 0, 0 }},
		{"window height", func(c *Config) { c.Window.Height = -1 }},
		{"fov", func(c *Config) { c.Camera.FOV = 0 }},
		{"clip", func(c *Config) { c.Camera.Far = c.Camera.Near }},
		{"distance", func(c *Config) { c.Controls.MaxDistance = 1 }},
		{"damping", func(c *Config) { c.Controls.DampingFactor = 2 }},
		{"stars", func(c *Config) { c.Stars.Count = -1 }},
		{"sun", func(c *Config) { c.Sun.Radius = 0 }},
		{"frame rate", func(c *Config) { c.FrameRate = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, orrery.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("still")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	for _, p := range cfg.Planets {
		if p.Speed != 0 {
			t.Errorf("%s: expected speed 0, got %f", p.Name, p.Speed)
		}
	}
	if DefaultConfig().Planets[0].Speed == 0 {
		t.Error("preset must not mutate defaults")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
