// Package steam composes the particle store, the simulation engine and the
// rasterizer into a rising-steam renderer.
package steam

import (
	"iter"

	"github.com/san-kum/steamcup/internal/particle"
	"github.com/san-kum/steamcup/internal/raster"
	"github.com/san-kum/steamcup/internal/rng"
	"github.com/san-kum/steamcup/internal/sim"
)

// Renderer produces frames and advances its simulation one step at a time.
type Renderer interface {
	GenerateFrame() string
	UpdateSimulation()
}

// Spawner adds one randomized particle.
type Spawner interface {
	SpawnParticle() particle.ID
}

// Scene is a renderer that can also spawn particles.
type Scene interface {
	Renderer
	Spawner
	Len() int
}

type Steam struct {
	opts   Options
	store  *particle.Store
	engine *sim.Engine
	raster *raster.Rasterizer
	src    rng.Source
}

func New(opts Options, src rng.Source) (*Steam, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	engine, err := sim.New(opts.params())
	if err != nil {
		return nil, err
	}

	r, err := raster.New(opts.Width, opts.Height, opts.Offset)
	if err != nil {
		return nil, err
	}

	store := particle.NewStore()
	if opts.Contained {
		store, err = particle.NewBoundedStore(float64(opts.Width), float64(opts.Height))
		if err != nil {
			return nil, err
		}
	}

	if src == nil {
		src = rng.New(0)
	}

	return &Steam{
		opts:   opts,
		store:  store,
		engine: engine,
		raster: r,
		src:    src,
	}, nil
}

// SpawnParticle adds a particle on the source row at a uniformly random
// column, rising at the configured speed.
func (s *Steam) SpawnParticle() particle.ID {
	frac := s.src.Float64()
	left := s.src.Bool()
	flip := s.src.IntN(s.opts.FlipRange)

	// frac is in [0, 1) so the position is inside any placement box
	id, _ := s.store.Spawn(particle.Spawn{
		Position:     particle.Vec2{X: frac * float64(s.opts.Width)},
		Velocity:     particle.Vec2{Y: s.opts.RiseSpeed},
		Left:         left,
		FlipInterval: flip,
		Lifespan:     Lifespan(s.opts.MaxLifespan, frac),
	})
	return id
}

// Spawn inserts a caller-described particle. A contained renderer rejects
// positions outside the grid with particle.ErrOutOfBounds.
func (s *Steam) Spawn(sp particle.Spawn) (particle.ID, error) {
	if sp.Lifespan < 0 {
		return 0, particle.InvalidConfig("lifespan", float64(sp.Lifespan))
	}
	if sp.FlipInterval < 0 {
		return 0, particle.InvalidConfig("flip_interval", float64(sp.FlipInterval))
	}
	return s.store.Spawn(sp)
}

func (s *Steam) GenerateFrame() string {
	return s.raster.Rasterize(s.store.All())
}

// UpdateSimulation advances every particle one step. Particles that expire
// were already drawn by the preceding GenerateFrame and are gone before the
// next one.
func (s *Steam) UpdateSimulation() {
	s.engine.Step(s.store)
}

func (s *Steam) Len() int                               { return s.store.Len() }
func (s *Steam) Particles() iter.Seq[*particle.Particle] { return s.store.All() }
func (s *Steam) Get(id particle.ID) (*particle.Particle, bool) {
	return s.store.Get(id)
}

func (s *Steam) Engine() *sim.Engine { return s.engine }
func (s *Steam) Options() Options    { return s.opts }
