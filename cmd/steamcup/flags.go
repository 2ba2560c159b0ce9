package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/steamcup/internal/config"
)

func addSceneFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&scene, "scene", def.Scene, "scene: coffee or steam")
	f.IntVar(&frames, "frames", def.Frames, "number of frames to simulate")
	f.IntVar(&spawnEvery, "spawn-every", def.SpawnEvery, "frames between spawns (0 disables)")
	f.IntVar(&fps, "fps", def.FPS, "frame rate")
	f.Int64Var(&seed, "seed", def.Seed, "random seed")
	f.IntVar(&width, "width", def.Steam.Width, "grid width")
	f.IntVar(&height, "height", def.Steam.Height, "grid height")
	f.IntVar(&offset, "offset", def.Steam.Offset, "horizontal render offset")
	f.Float64Var(&riseSpeed, "rise", def.Steam.RiseSpeed, "rise speed")
	f.Float64Var(&wind, "wind", def.Steam.Wind, "wind per frame")
	f.Float64Var(&maxSpeed, "max-speed", def.Steam.MaxSpeed, "maximum horizontal speed")
	f.Float64Var(&buoyancy, "buoyancy", def.Steam.Buoyancy, "vertical acceleration per frame")
	f.IntVar(&maxLifespan, "lifespan", def.Steam.MaxLifespan, "lifespan of a centered particle in frames")
	f.BoolVar(&contained, "contained", def.Steam.Contained, "keep particles inside the grid")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("scene", func() { cfg.Scene = scene })
	set("frames", func() { cfg.Frames = frames })
	set("spawn-every", func() { cfg.SpawnEvery = spawnEvery })
	set("fps", func() { cfg.FPS = fps })
	set("seed", func() { cfg.Seed = seed })
	set("width", func() { cfg.Steam.Width = width })
	set("height", func() { cfg.Steam.Height = height })
	set("offset", func() { cfg.Steam.Offset = offset })
	set("rise", func() { cfg.Steam.RiseSpeed = riseSpeed })
	set("wind", func() { cfg.Steam.Wind = wind })
	set("max-speed", func() { cfg.Steam.MaxSpeed = maxSpeed })
	set("buoyancy", func() { cfg.Steam.Buoyancy = buoyancy })
	set("lifespan", func() { cfg.Steam.MaxLifespan = maxLifespan })
	set("contained", func() { cfg.Steam.Contained = contained })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ignoreInterrupt(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
