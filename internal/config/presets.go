package config

import (
	"sort"

	"github.com/san-kum/monkeysim/internal/scene"
)

// Preset is a named starting scene. A zero Viewport keeps the configured one.
type Preset struct {
	Description string
	Params      scene.Params
	Viewport    scene.Viewport
}

var Presets = map[string]Preset{
	"default": {
		Description: "the classic 5 m target 10 m away",
		Params:      scene.Params{TargetHeight: 5, ShooterDistance: 10},
	},
	"minimum": {
		Description: "smallest accepted scene",
		Params:      scene.Params{TargetHeight: 1, ShooterDistance: 1},
	},
	"tall": {
		Description: "a very high branch close by",
		Params:      scene.Params{TargetHeight: 40, ShooterDistance: 12},
	},
	"far": {
		Description: "a distant tree that forces the x axis to shrink",
		Params:      scene.Params{TargetHeight: 8, ShooterDistance: 150},
	},
	"tiny_window": {
		Description: "default scene squeezed into a small canvas",
		Params:      scene.Params{TargetHeight: 5, ShooterDistance: 10},
		Viewport:    scene.Viewport{Width: 240, Height: 180},
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the named preset into c.
func (c *Config) ApplyPreset(name string) bool {
	p, ok := GetPreset(name)
	if !ok {
		return false
	}
	c.SetParams(p.Params)
	if p.Viewport.Width > 0 && p.Viewport.Height > 0 {
		c.Viewport = ViewportConfig{Width: p.Viewport.Width, Height: p.Viewport.Height}
	}
	return true
}
