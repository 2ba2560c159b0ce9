package particle

import (
	"iter"
	"slices"
)

// Store owns the live particles. Iteration follows spawn order, so a pass
// over the store is deterministic.
type Store struct {
	particles map[ID]*Particle
	order     []ID
	next      ID

	bounded       bool
	width, height float64
}

func NewStore() *Store {
	return &Store{
		particles: make(map[ID]*Particle),
		order:     make([]ID, 0, 64),
	}
}

// NewBoundedStore returns a store that rejects spawns outside
// [0, width] x [0, height] with a *BoundsError.
func NewBoundedStore(width, height float64) (*Store, error) {
	if width <= 0 {
		return nil, InvalidConfig("width", width)
	}
	if height <= 0 {
		return nil, InvalidConfig("height", height)
	}
	s := NewStore()
	s.bounded = true
	s.width = width
	s.height = height
	return s, nil
}

// Spawn inserts a new particle with zero age and returns its id. The id is
// one greater than the highest id ever issued, regardless of removals.
func (s *Store) Spawn(sp Spawn) (ID, error) {
	if s.bounded {
		x, y := sp.Position.X, sp.Position.Y
		if x < 0 || x > s.width || y < 0 || y > s.height || !sp.Position.IsValid() {
			return 0, &BoundsError{X: x, Y: y, Width: s.width, Height: s.height}
		}
	}

	id := s.next
	s.next++

	s.particles[id] = &Particle{
		ID:           id,
		Position:     sp.Position,
		Velocity:     sp.Velocity,
		Left:         sp.Left,
		FlipInterval: sp.FlipInterval,
		Lifespan:     sp.Lifespan,
	}
	s.order = append(s.order, id)
	return id, nil
}

func (s *Store) Remove(id ID) error {
	if _, ok := s.particles[id]; !ok {
		return ErrUnknownParticle
	}
	delete(s.particles, id)

	// order is sorted because ids are issued monotonically
	if i, found := slices.BinarySearch(s.order, id); found {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return nil
}

// RemoveAll removes every listed id in one pass. Unknown ids are ignored.
func (s *Store) RemoveAll(ids []ID) int {
	if len(ids) == 0 {
		return 0
	}
	removed := 0
	for _, id := range ids {
		if _, ok := s.particles[id]; ok {
			delete(s.particles, id)
			removed++
		}
	}
	s.order = slices.DeleteFunc(s.order, func(id ID) bool {
		_, ok := s.particles[id]
		return !ok
	})
	return removed
}

func (s *Store) Get(id ID) (*Particle, bool) {
	p, ok := s.particles[id]
	return p, ok
}

// All yields the live particles. Fields may be mutated during the
// traversal; spawning or removing must wait until it ends.
func (s *Store) All() iter.Seq[*Particle] {
	return func(yield func(*Particle) bool) {
		for _, id := range s.order {
			if !yield(s.particles[id]) {
				return
			}
		}
	}
}

func (s *Store) Len() int { return len(s.particles) }

// NextID is the id the next Spawn will issue.
func (s *Store) NextID() ID { return s.next }
