package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/monkeysim/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Params() != scene.DefaultParams() {
		t.Errorf("expected default params, got %+v", cfg.Params())
	}
	if cfg.MarginSize() != scene.DefaultMargins() {
		t.Errorf("expected default margins, got %+v", cfg.MarginSize())
	}
	if cfg.Scales() != scene.DefaultScaleState() {
		t.Errorf("expected default scales, got %+v", cfg.Scales())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monkeysim.yaml")
	data := []byte("scene:\n  target_height: 12\nserver:\n  addr: 127.0.0.1:9000\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scene.TargetHeight != 12 {
		t.Errorf("target height = %v, want 12", cfg.Scene.TargetHeight)
	}
	if cfg.Scene.ShooterDistance != 10 {
		t.Errorf("distance should keep its default, got %v", cfg.Scene.ShooterDistance)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scene: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.SetParams(scene.Params{TargetHeight: 7, ShooterDistance: 30})
	cfg.Log.JSON = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MONKEYSIM_SCENE_TARGET_HEIGHT", "9")
	t.Setenv("MONKEYSIM_INITIAL_SCALE_X", "15")
	t.Setenv("MONKEYSIM_SERVER_ADDR", ":9999")
	t.Setenv("MONKEYSIM_SERVER_ORIGINS", "example.com,*.example.org")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Scene.TargetHeight != 9 {
		t.Errorf("target height = %v, want 9", cfg.Scene.TargetHeight)
	}
	if cfg.InitialScale.X != 15 {
		t.Errorf("initial x scale = %v, want 15", cfg.InitialScale.X)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if !reflect.DeepEqual(cfg.Server.Origins, []string{"example.com", "*.example.org"}) {
		t.Errorf("origins = %v", cfg.Server.Origins)
	}
	if cfg.Scene.ShooterDistance != 10 {
		t.Errorf("unset variable changed distance to %v", cfg.Scene.ShooterDistance)
	}
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("MONKEYSIM_VIEWPORT_WIDTH", "wide")
	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("expected error for non-numeric width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"small height", func(c *Config) { c.Scene.TargetHeight = 0.5 }, scene.ErrBelowMinimum},
		{"zero margin", func(c *Config) { c.Margins.X = 0 }, ErrInvalidConfig},
		{"nan margin", func(c *Config) { c.Margins.Y = math.NaN() }, ErrInvalidConfig},
		{"infinite viewport", func(c *Config) { c.Viewport.Width = math.Inf(1) }, ErrInvalidConfig},
		{"tiny scale", func(c *Config) { c.InitialScale.Y = 0.1 }, ErrInvalidConfig},
		{"no viewport", func(c *Config) { c.Viewport.Height = 0 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("tall")
	if !ok {
		t.Fatal("expected preset")
	}
	if p.Params.TargetHeight != 40 || p.Params.ShooterDistance != 12 {
		t.Errorf("unexpected params %+v", p.Params)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	if names[0] != "default" {
		t.Errorf("expected sorted names, got %v", names)
	}
	for _, name := range names {
		if err := Presets[name].Params.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.ApplyPreset("tiny_window") {
		t.Fatal("expected tiny_window to apply")
	}
	if cfg.Viewport.Width != 240 || cfg.Viewport.Height != 180 {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}

	cfg = DefaultConfig()
	cfg.ApplyPreset("far")
	if cfg.Scene.ShooterDistance != 150 {
		t.Errorf("distance = %v", cfg.Scene.ShooterDistance)
	}
	if cfg.Viewport.Width != DefaultWidth {
		t.Error("preset without a viewport should keep the configured one")
	}

	if cfg.ApplyPreset("nope") {
		t.Error("unknown preset should not apply")
	}
}

func TestLoad_NaNMarginsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("margins:\n  x: .nan\n  y: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected %v, got %v", ErrInvalidConfig, err)
	}
}
