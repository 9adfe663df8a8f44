// Package config loads the YAML configuration, applies environment
// overrides and resolves named presets.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/monkeysim/internal/geom"
	"github.com/san-kum/monkeysim/internal/scene"
)

const (
	EnvPrefix = "MONKEYSIM"

	DefaultWidth    = 800.0
	DefaultHeight   = 600.0
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Scene        SceneConfig    `yaml:"scene"`
	Viewport     ViewportConfig `yaml:"viewport"`
	Margins      MarginsConfig  `yaml:"margins" split_words:"true"`
	InitialScale ScaleConfig    `yaml:"initial_scale" split_words:"true"`
	Log          LogConfig      `yaml:"log"`
	Server       ServerConfig   `yaml:"server"`
}

type SceneConfig struct {
	TargetHeight    float64 `yaml:"target_height" split_words:"true"`
	ShooterDistance float64 `yaml:"shooter_distance" split_words:"true"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MarginsConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ScaleConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// JSON switches the console writer off.
	JSON bool `yaml:"json"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Origins lists extra host patterns allowed to open the WebSocket.
	Origins []string `yaml:"origins,omitempty"`
}

func DefaultConfig() *Config {
	p := scene.DefaultParams()
	m := scene.DefaultMargins()
	s := scene.DefaultScaleState()
	return &Config{
		Scene:        SceneConfig{TargetHeight: p.TargetHeight, ShooterDistance: p.ShooterDistance},
		Viewport:     ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Margins:      MarginsConfig{X: m.X, Y: m.Y},
		InitialScale: ScaleConfig{X: s.X, Y: s.Y},
		Log:          LogConfig{Level: DefaultLogLevel},
		Server:       ServerConfig{Addr: DefaultAddr},
	}
}

// Load reads path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in the YAML file at path onto c.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides c from MONKEYSIM_* variables, for example
// MONKEYSIM_SCENE_TARGET_HEIGHT or MONKEYSIM_SERVER_ADDR. Unset
// variables leave the current values alone.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

func (c *Config) Params() scene.Params {
	return scene.Params{TargetHeight: c.Scene.TargetHeight, ShooterDistance: c.Scene.ShooterDistance}
}

func (c *Config) SetParams(p scene.Params) {
	c.Scene = SceneConfig{TargetHeight: p.TargetHeight, ShooterDistance: p.ShooterDistance}
}

func (c *Config) ViewportSize() scene.Viewport {
	return scene.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

func (c *Config) MarginSize() scene.Margins {
	return scene.Margins{X: c.Margins.X, Y: c.Margins.Y}
}

func (c *Config) Scales() scene.ScaleState {
	return scene.ScaleState{X: c.InitialScale.X, Y: c.InitialScale.Y}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if !positive(c.Margins.X, c.Margins.Y) {
		errs = append(errs, fmt.Errorf("%w: margins must be positive (x=%v, y=%v)", ErrInvalidConfig, c.Margins.X, c.Margins.Y))
	}
	if !c.Scales().Valid() {
		errs = append(errs, fmt.Errorf("%w: initial scale must be at least %v (x=%v, y=%v)", ErrInvalidConfig, scene.MinScale, c.InitialScale.X, c.InitialScale.Y))
	}
	if !positive(c.Viewport.Width, c.Viewport.Height) {
		errs = append(errs, fmt.Errorf("%w: viewport must be positive (%vx%v)", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height))
	}
	return errors.Join(errs...)
}

// positive is false for NaN and infinities as well as non-positive values.
func positive(vs ...float64) bool {
	if !geom.IsFinite(vs...) {
		return false
	}
	for _, v := range vs {
		if v <= 0 {
			return false
		}
	}
	return true
}
