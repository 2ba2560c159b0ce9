package sim

import (
	"math"

	"github.com/san-kum/steamcup/internal/particle"
)

// Engine advances a particle store by one discrete step at a time.
type Engine struct {
	params    Params
	observers []Observer
	steps     int
	expired   []particle.ID
}

func New(params Params) (*Engine, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	if params.Clamp != nil && params.Clamp.Epsilon == 0 {
		vp := *params.Clamp
		vp.Epsilon = DefaultEpsilon
		params.Clamp = &vp
	}
	return &Engine{
		params:    params,
		observers: make([]Observer, 0),
		expired:   make([]particle.ID, 0, 16),
	}, nil
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

func (e *Engine) Params() Params { return e.params }
func (e *Engine) Steps() int     { return e.steps }
func (e *Engine) Wind() float64  { return e.params.Wind }

func (e *Engine) SetWind(w float64) { e.params.Wind = w }

// Step integrates every live particle once, then sweeps the ones whose age
// reached their lifespan. It returns the swept ids; the slice is reused by
// the next call.
func (e *Engine) Step(store *particle.Store) []particle.ID {
	e.expired = e.expired[:0]

	for p := range store.All() {
		e.integrate(p)
		if p.Advance() {
			e.expired = append(e.expired, p.ID)
		}
	}

	store.RemoveAll(e.expired)
	e.steps++

	for _, obs := range e.observers {
		obs.OnStep(e.steps, store.Len(), e.expired)
	}
	return e.expired
}

func (e *Engine) integrate(p *particle.Particle) {
	p.Velocity.X = clamp(p.Velocity.X+e.params.Wind, -e.params.MaxSpeed, e.params.MaxSpeed)
	p.Velocity.Y += e.params.Buoyancy

	p.Position = p.Position.Add(p.Velocity)

	if vp := e.params.Clamp; vp != nil {
		p.Position.X = clamp(p.Position.X, 0, vp.Width-vp.Epsilon)
		p.Position.Y = clamp(p.Position.Y, 0, vp.Height-vp.Epsilon)
	}
}

func validateParams(p Params) error {
	if p.MaxSpeed < 0 || math.IsNaN(p.MaxSpeed) {
		return particle.InvalidConfig("max_speed", p.MaxSpeed)
	}
	if math.IsNaN(p.Wind) || math.IsInf(p.Wind, 0) {
		return particle.InvalidConfig("wind", p.Wind)
	}
	if math.IsNaN(p.Buoyancy) || math.IsInf(p.Buoyancy, 0) {
		return particle.InvalidConfig("buoyancy", p.Buoyancy)
	}
	if vp := p.Clamp; vp != nil {
		if vp.Width <= 0 {
			return particle.InvalidConfig("width", vp.Width)
		}
		if vp.Height <= 0 {
			return particle.InvalidConfig("height", vp.Height)
		}
		if vp.Epsilon < 0 || vp.Epsilon >= 1 {
			return particle.InvalidConfig("epsilon", vp.Epsilon)
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
