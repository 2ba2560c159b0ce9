package particle

import "math"

// ID is a particle handle. Ids are issued in increasing order from 0 and are
// never reused within a store.
type ID uint64

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Cell returns the floored integer coordinates of v.
func (v Vec2) Cell() (col, row int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Particle is a single steam puff.
type Particle struct {
	ID       ID
	Position Vec2
	Velocity Vec2
	Left     bool

	// Age counts simulation steps since spawn; the particle is removed in the
	// step where Age reaches Lifespan.
	Age          int
	Lifespan     int
	FlipInterval int
	SinceFlip    int
}

// Spawn describes a particle to insert.
type Spawn struct {
	Position     Vec2
	Velocity     Vec2
	Left         bool
	FlipInterval int
	Lifespan     int
}

// Advance bumps the age and flip counters and reports whether the particle
// has expired. An expired particle does not flip.
func (p *Particle) Advance() bool {
	p.Age++
	p.SinceFlip++

	if p.Age >= p.Lifespan {
		return true
	}

	if p.SinceFlip > p.FlipInterval {
		p.Left = !p.Left
		p.SinceFlip = 0
	}
	return false
}
