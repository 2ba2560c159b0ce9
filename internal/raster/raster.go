// Package raster projects particles onto a fixed character grid and
// serializes it as printable text.
package raster

import (
	"iter"
	"strings"

	"github.com/san-kum/steamcup/internal/particle"
)

const (
	GlyphSource = '|'
	GlyphLeft   = '{'
	GlyphRight  = '}'
	blank       = ' '
)

// Rasterizer owns a reusable grid of Height rows by Width+Offset columns.
// Row 0 is the source row; it is printed last.
type Rasterizer struct {
	width, height, offset int
	grid                  [][]rune
	b                     strings.Builder
}

func New(width, height, offset int) (*Rasterizer, error) {
	if width <= 0 {
		return nil, particle.InvalidConfig("width", float64(width))
	}
	if height <= 0 {
		return nil, particle.InvalidConfig("height", float64(height))
	}
	if offset < 0 {
		return nil, particle.InvalidConfig("offset", float64(offset))
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width+offset)
	}
	return &Rasterizer{width: width, height: height, offset: offset, grid: grid}, nil
}

func (r *Rasterizer) Width() int  { return r.width }
func (r *Rasterizer) Height() int { return r.height }
func (r *Rasterizer) Offset() int { return r.offset }

// Columns is the length of every serialized line.
func (r *Rasterizer) Columns() int { return r.width + r.offset }

// Glyph maps a particle to its display rune.
func Glyph(p *particle.Particle) rune {
	if _, row := p.Position.Cell(); row == 0 {
		return GlyphSource
	}
	if p.Left {
		return GlyphLeft
	}
	return GlyphRight
}

// Rasterize draws the particles and returns the frame, highest row first,
// every row terminated by a newline. Particles whose cell falls outside the
// grid are culled.
func (r *Rasterizer) Rasterize(particles iter.Seq[*particle.Particle]) string {
	r.clear()

	for p := range particles {
		col, row := p.Position.Cell()
		r.set(col+r.offset, row, Glyph(p))
	}

	return r.String()
}

// String serializes the current grid without redrawing it.
func (r *Rasterizer) String() string {
	r.b.Reset()
	r.b.Grow(r.height * (r.Columns() + 1))
	for i := len(r.grid) - 1; i >= 0; i-- {
		r.b.WriteString(string(r.grid[i]))
		r.b.WriteByte('\n')
	}
	return r.b.String()
}

// Visible reports whether a particle would be drawn.
func (r *Rasterizer) Visible(p *particle.Particle) bool {
	col, row := p.Position.Cell()
	return r.inside(col+r.offset, row)
}

func (r *Rasterizer) clear() {
	for y := range r.grid {
		for x := range r.grid[y] {
			r.grid[y][x] = blank
		}
	}
}

func (r *Rasterizer) set(x, y int, c rune) {
	if r.inside(x, y) {
		r.grid[y][x] = c
	}
}

func (r *Rasterizer) inside(x, y int) bool {
	return x >= 0 && x < r.Columns() && y >= 0 && y < r.height
}
