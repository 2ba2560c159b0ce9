package sim

import "github.com/san-kum/steamcup/internal/particle"

// DefaultEpsilon keeps clamped positions strictly inside the last grid cell.
const DefaultEpsilon = 1e-3

// Params are the environment terms applied to every particle each step.
type Params struct {
	// Wind is added to the horizontal velocity every step.
	Wind float64
	// MaxSpeed bounds the horizontal velocity to [-MaxSpeed, MaxSpeed].
	MaxSpeed float64
	// Buoyancy is added to the vertical velocity every step. Zero keeps the
	// rise speed fixed at spawn.
	Buoyancy float64
	// Clamp, when set, keeps positions inside the viewport instead of
	// leaving culling to the rasterizer.
	Clamp *Viewport
}

type Viewport struct {
	Width   float64
	Height  float64
	Epsilon float64
}

// Observer is notified after every step, once expired particles are gone.
type Observer interface {
	OnStep(step int, live int, expired []particle.ID)
}

type ObserverFunc func(step int, live int, expired []particle.ID)

func (f ObserverFunc) OnStep(step int, live int, expired []particle.ID) {
	f(step, live, expired)
}

func DefaultParams() Params {
	return Params{
		Wind:     0.02,
		MaxSpeed: 0.2,
	}
}
