package steam_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/steamcup/internal/particle"
	"github.com/san-kum/steamcup/internal/rng"
	"github.com/san-kum/steamcup/internal/steam"
)

func lines(frame string) []string {
	return strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
}

var _ = Describe("Steam", func() {
	Describe("construction", func() {
		DescribeTable("rejects invalid options",
			func(mutate func(*steam.Options)) {
				opts := steam.DefaultOptions()
				mutate(&opts)
				s, err := steam.New(opts, nil)
				Expect(err).To(MatchError(particle.ErrInvalidConfig))
				Expect(s).To(BeNil())
			},
			Entry("zero width", func(o *steam.Options) { o.Width = 0 }),
			Entry("negative height", func(o *steam.Options) { o.Height = -3 }),
			Entry("negative offset", func(o *steam.Options) { o.Offset = -1 }),
			Entry("negative lifespan", func(o *steam.Options) { o.MaxLifespan = -1 }),
			Entry("negative max speed", func(o *steam.Options) { o.MaxSpeed = -0.1 }),
			Entry("empty flip range", func(o *steam.Options) { o.FlipRange = 0 }),
		)

		It("accepts the defaults", func() {
			s, err := steam.New(steam.DefaultOptions(), rng.New(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Len()).To(BeZero())
		})
	})

	Describe("end-to-end scenario", func() {
		var s *steam.Steam

		BeforeEach(func() {
			var err error
			s, err = steam.New(steam.Options{
				Width: 5, Height: 3, Offset: 0,
				MaxLifespan: 10, FlipRange: 4,
			}, nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Spawn(particle.Spawn{
				Position:     particle.Vec2{X: 2, Y: 0},
				Velocity:     particle.Vec2{X: 0, Y: 1},
				Lifespan:     2,
				FlipInterval: 0,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("renders, rises, flips and expires", func() {
			Expect(s.GenerateFrame()).To(Equal("     \n     \n  |  \n"))

			s.UpdateSimulation()
			p, ok := s.Get(0)
			Expect(ok).To(BeTrue())
			Expect(p.Position).To(Equal(particle.Vec2{X: 2, Y: 1}))
			Expect(p.Age).To(Equal(1))
			Expect(p.Left).To(BeTrue())

			Expect(s.GenerateFrame()).To(Equal("     \n  {  \n     \n"))

			s.UpdateSimulation()
			_, ok = s.Get(0)
			Expect(ok).To(BeFalse())
			Expect(s.Len()).To(BeZero())

			Expect(s.GenerateFrame()).To(Equal("     \n     \n     \n"))
		})
	})

	Describe("SpawnParticle", func() {
		It("draws position, orientation, flip interval and lifespan from the source", func() {
			src := &rng.Scripted{
				Floats: []float64{0.5, 0.0, 0.75},
				Bools:  []bool{true, false, true},
				Ints:   []int{3, 0, 2},
			}
			opts := steam.DefaultOptions()
			opts.Width = 20
			opts.MaxLifespan = 60
			opts.RiseSpeed = 0.4
			s, err := steam.New(opts, src)
			Expect(err).NotTo(HaveOccurred())

			ids := []particle.ID{s.SpawnParticle(), s.SpawnParticle(), s.SpawnParticle()}
			Expect(ids).To(Equal([]particle.ID{0, 1, 2}))

			center, _ := s.Get(0)
			Expect(center.Position).To(Equal(particle.Vec2{X: 10, Y: 0}))
			Expect(center.Velocity).To(Equal(particle.Vec2{X: 0, Y: 0.4}))
			Expect(center.Left).To(BeTrue())
			Expect(center.FlipInterval).To(Equal(3))
			Expect(center.Lifespan).To(Equal(60))
			Expect(center.Age).To(BeZero())

			edge, _ := s.Get(1)
			Expect(edge.Position.X).To(Equal(0.0))
			Expect(edge.Left).To(BeFalse())
			Expect(edge.Lifespan).To(Equal(30))

			quarter, _ := s.Get(2)
			Expect(quarter.Position.X).To(Equal(15.0))
			Expect(quarter.FlipInterval).To(Equal(2))
			Expect(quarter.Lifespan).To(Equal(45))
		})
	})

	Describe("Lifespan", func() {
		DescribeTable("peaks at the center",
			func(frac float64, want int) {
				Expect(steam.Lifespan(60, frac)).To(Equal(want))
			},
			Entry("center", 0.5, 60),
			Entry("left edge", 0.0, 30),
			Entry("right edge", 1.0, 30),
			Entry("quarter", 0.25, 45),
			Entry("rounds up", 0.99, 31),
		)
	})

	Describe("running with a seeded source", func() {
		var s *steam.Steam
		var opts steam.Options

		BeforeEach(func() {
			opts = steam.DefaultOptions()
			var err error
			s, err = steam.New(opts, rng.New(99))
			Expect(err).NotTo(HaveOccurred())
		})

		It("keeps the frame shape on every step", func() {
			for step := 0; step < 150; step++ {
				s.SpawnParticle()
				frame := s.GenerateFrame()
				ls := lines(frame)
				Expect(ls).To(HaveLen(opts.Height))
				for _, l := range ls {
					Expect([]rune(l)).To(HaveLen(opts.Width + opts.Offset))
				}
				s.UpdateSimulation()
			}
		})

		It("removes every particle after exactly its lifespan", func() {
			ids := make([]particle.ID, 0)
			for i := 0; i < 20; i++ {
				ids = append(ids, s.SpawnParticle())
			}
			lifespans := make(map[particle.ID]int)
			for _, id := range ids {
				p, _ := s.Get(id)
				lifespans[id] = p.Lifespan
			}

			for step := 1; step <= opts.MaxLifespan; step++ {
				s.UpdateSimulation()
				for _, id := range ids {
					_, alive := s.Get(id)
					Expect(alive).To(Equal(step < lifespans[id]), "particle %d at step %d", id, step)
				}
			}
			Expect(s.Len()).To(BeZero())
		})

		It("only draws glyphs for particles inside the grid", func() {
			for step := 0; step < 80; step++ {
				s.SpawnParticle()
				visible := 0
				for p := range s.Particles() {
					col, row := p.Position.Cell()
					if col+opts.Offset >= 0 && col+opts.Offset < opts.Width+opts.Offset && row >= 0 && row < opts.Height {
						visible++
					}
				}
				glyphs := strings.Count(strings.ReplaceAll(s.GenerateFrame(), "\n", ""), " ")
				Expect((opts.Width+opts.Offset)*opts.Height - glyphs).To(BeNumerically("<=", visible))
				s.UpdateSimulation()
			}
		})
	})

	Describe("contained renderer", func() {
		It("rejects spawns outside the grid without clamping them", func() {
			opts := steam.DefaultOptions()
			opts.Contained = true
			s, err := steam.New(opts, rng.New(3))
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Spawn(particle.Spawn{Position: particle.Vec2{X: -1, Y: 0}, Lifespan: 5})
			Expect(err).To(MatchError(particle.ErrOutOfBounds))
			Expect(s.Len()).To(BeZero())
		})

		It("keeps particles on the grid while they live", func() {
			opts := steam.DefaultOptions()
			opts.Contained = true
			opts.RiseSpeed = 2
			opts.Wind = 1
			opts.MaxSpeed = 5
			s, err := steam.New(opts, rng.New(5))
			Expect(err).NotTo(HaveOccurred())

			for step := 0; step < 40; step++ {
				s.SpawnParticle()
				s.UpdateSimulation()
				for p := range s.Particles() {
					col, row := p.Position.Cell()
					Expect(col).To(BeNumerically(">=", 0))
					Expect(col).To(BeNumerically("<", opts.Width))
					Expect(row).To(BeNumerically(">=", 0))
					Expect(row).To(BeNumerically("<", opts.Height))
				}
			}
		})
	})

	Describe("Spawn", func() {
		It("rejects negative lifespans and flip intervals", func() {
			s, err := steam.New(steam.DefaultOptions(), nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Spawn(particle.Spawn{Lifespan: -1})
			Expect(err).To(MatchError(particle.ErrInvalidConfig))
			_, err = s.Spawn(particle.Spawn{FlipInterval: -1})
			Expect(err).To(MatchError(particle.ErrInvalidConfig))
		})
	})
})
