package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/steamcup/internal/particle"
	"github.com/san-kum/steamcup/internal/steam"
)

const (
	SceneCoffee = "coffee"
	SceneSteam  = "steam"

	DefaultFrames     = 200
	DefaultSpawnEvery = 1
	DefaultFPS        = 24
)

type Config struct {
	Scene      string      `yaml:"scene"`
	Frames     int         `yaml:"frames"`
	SpawnEvery int         `yaml:"spawn_every"`
	FPS        int         `yaml:"fps"`
	Seed       int64       `yaml:"seed"`
	Steam      SteamConfig `yaml:"steam"`
}

type SteamConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Offset      int     `yaml:"offset"`
	RiseSpeed   float64 `yaml:"rise_speed"`
	Wind        float64 `yaml:"wind"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Buoyancy    float64 `yaml:"buoyancy"`
	MaxLifespan int     `yaml:"max_lifespan"`
	FlipRange   int     `yaml:"flip_range"`
	Contained   bool    `yaml:"contained"`
}

func DefaultConfig() *Config {
	opts := steam.DefaultOptions()
	return &Config{
		Scene:      SceneCoffee,
		Frames:     DefaultFrames,
		SpawnEvery: DefaultSpawnEvery,
		FPS:        DefaultFPS,
		Steam: SteamConfig{
			Width:       opts.Width,
			Height:      opts.Height,
			Offset:      opts.Offset,
			RiseSpeed:   opts.RiseSpeed,
			Wind:        opts.Wind,
			MaxSpeed:    opts.MaxSpeed,
			MaxLifespan: opts.MaxLifespan,
			FlipRange:   opts.FlipRange,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Scene {
	case SceneCoffee, SceneSteam:
	default:
		return fmt.Errorf("unknown scene: %s", c.Scene)
	}
	if c.Frames < 0 {
		return particle.InvalidConfig("frames", float64(c.Frames))
	}
	if c.SpawnEvery < 0 {
		return particle.InvalidConfig("spawn_every", float64(c.SpawnEvery))
	}
	if c.FPS <= 0 {
		return particle.InvalidConfig("fps", float64(c.FPS))
	}
	return c.Options().Validate()
}

// Options maps the steam section onto renderer options.
func (c *Config) Options() steam.Options {
	s := c.Steam
	return steam.Options{
		Width:       s.Width,
		Height:      s.Height,
		Offset:      s.Offset,
		RiseSpeed:   s.RiseSpeed,
		Wind:        s.Wind,
		MaxSpeed:    s.MaxSpeed,
		Buoyancy:    s.Buoyancy,
		MaxLifespan: s.MaxLifespan,
		FlipRange:   s.FlipRange,
		Contained:   s.Contained,
	}
}

// Clone returns an independent copy, so presets are never mutated.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
