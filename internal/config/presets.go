package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"mug": DefaultConfig(),
	"still": preset(func(c *Config) {
		c.Steam.Wind = 0
		c.Steam.RiseSpeed = 0.25
	}),
	"breeze": preset(func(c *Config) {
		c.Steam.Wind = 0.05
		c.Steam.MaxSpeed = 0.4
	}),
	"gust": preset(func(c *Config) {
		c.Steam.Wind = -0.15
		c.Steam.MaxSpeed = 0.8
		c.Steam.RiseSpeed = 0.5
		c.SpawnEvery = 2
	}),
	"tall": preset(func(c *Config) {
		c.Scene = SceneSteam
		c.Steam.Height = 24
		c.Steam.Offset = 0
		c.Steam.Width = 40
		c.Steam.MaxLifespan = 90
		c.Steam.Buoyancy = 0.005
		c.Frames = 400
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
