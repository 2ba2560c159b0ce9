package steam

import (
	"math"

	"github.com/san-kum/steamcup/internal/particle"
	"github.com/san-kum/steamcup/internal/sim"
)

const (
	DefaultWidth       = 25
	DefaultHeight      = 10
	DefaultOffset      = 10
	DefaultRiseSpeed   = 0.3
	DefaultWind        = 0.02
	DefaultMaxSpeed    = 0.2
	DefaultMaxLifespan = 60
	DefaultFlipRange   = 4
)

// Options is the flat parameter set of a steam renderer.
type Options struct {
	Width  int
	Height int
	Offset int

	RiseSpeed float64
	Wind      float64
	MaxSpeed  float64
	Buoyancy  float64

	// MaxLifespan is the lifespan, in steps, of a particle spawned at the
	// horizontal center.
	MaxLifespan int
	// FlipRange bounds the random flip interval to [0, FlipRange).
	FlipRange int

	// Contained keeps particles inside the grid during simulation and
	// rejects explicit spawns outside it.
	Contained bool
}

func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Offset:      DefaultOffset,
		RiseSpeed:   DefaultRiseSpeed,
		Wind:        DefaultWind,
		MaxSpeed:    DefaultMaxSpeed,
		MaxLifespan: DefaultMaxLifespan,
		FlipRange:   DefaultFlipRange,
	}
}

func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return particle.InvalidConfig("width", float64(o.Width))
	case o.Height <= 0:
		return particle.InvalidConfig("height", float64(o.Height))
	case o.Offset < 0:
		return particle.InvalidConfig("offset", float64(o.Offset))
	case o.MaxLifespan < 0:
		return particle.InvalidConfig("max_lifespan", float64(o.MaxLifespan))
	case o.MaxSpeed < 0:
		return particle.InvalidConfig("max_speed", o.MaxSpeed)
	case o.FlipRange <= 0:
		return particle.InvalidConfig("flip_range", float64(o.FlipRange))
	case math.IsNaN(o.RiseSpeed) || math.IsInf(o.RiseSpeed, 0):
		return particle.InvalidConfig("rise_speed", o.RiseSpeed)
	}
	return nil
}

func (o Options) params() sim.Params {
	p := sim.Params{
		Wind:     o.Wind,
		MaxSpeed: o.MaxSpeed,
		Buoyancy: o.Buoyancy,
	}
	if o.Contained {
		p.Clamp = &sim.Viewport{Width: float64(o.Width), Height: float64(o.Height)}
	}
	return p
}

// Lifespan gives particles spawned nearer the center a longer life.
// frac is the spawn x as a fraction of the grid width.
func Lifespan(maxLifespan int, frac float64) int {
	return int(math.Round(float64(maxLifespan) * (1 - math.Abs(frac-0.5))))
}
