// Package rng supplies the uniform variates used to randomize spawns.
package rng

import "math/rand/v2"

// Source yields uniform variates.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
	Bool() bool
}

// PCG is a deterministic Source seeded once.
type PCG struct {
	r *rand.Rand
}

func New(seed int64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

func (p *PCG) Float64() float64 { return p.r.Float64() }
func (p *PCG) IntN(n int) int   { return p.r.IntN(n) }
func (p *PCG) Bool() bool       { return p.r.IntN(2) == 1 }

// Scripted replays fixed sequences and wraps around when one runs out. An
// empty sequence yields zero values.
type Scripted struct {
	Floats []float64
	Ints   []int
	Bools  []bool

	fi, ii, bi int
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// IntN returns the next scripted int reduced modulo n.
func (s *Scripted) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (s *Scripted) Bool() bool {
	if len(s.Bools) == 0 {
		return false
	}
	v := s.Bools[s.bi%len(s.Bools)]
	s.bi++
	return v
}
