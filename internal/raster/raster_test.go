package raster

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/san-kum/steamcup/internal/particle"
)

func particles(ps ...*particle.Particle) func(func(*particle.Particle) bool) {
	return slices.Values(ps)
}

func at(x, y float64, left bool) *particle.Particle {
	return &particle.Particle{Position: particle.Vec2{X: x, Y: y}, Left: left}
}

func TestRasterizeFrameShape(t *testing.T) {
	tests := []struct {
		width, height, offset int
	}{
		{5, 3, 0},
		{1, 1, 0},
		{24, 10, 10},
		{7, 4, 2},
	}

	for _, tt := range tests {
		r, err := New(tt.width, tt.height, tt.offset)
		if err != nil {
			t.Fatalf("new failed: %v", err)
		}
		frame := r.Rasterize(particles(at(0, 0, false), at(1.5, 2.5, true)))

		if !strings.HasSuffix(frame, "\n") {
			t.Error("frame must end with a newline")
		}
		lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
		if len(lines) != tt.height {
			t.Errorf("%dx%d+%d: expected %d lines, got %d", tt.width, tt.height, tt.offset, tt.height, len(lines))
		}
		for i, line := range lines {
			if n := len([]rune(line)); n != tt.width+tt.offset {
				t.Errorf("line %d: expected length %d, got %d", i, tt.width+tt.offset, n)
			}
		}
	}
}

func TestRasterizeReverseRows(t *testing.T) {
	r, _ := New(5, 3, 0)

	frame := r.Rasterize(particles(
		at(2, 0, false),
		at(0.3, 1.2, true),
		at(4.9, 2.1, false),
	))

	want := "    }\n" +
		"{    \n" +
		"  |  \n"
	if frame != want {
		t.Errorf("unexpected frame:\n%q\nwant:\n%q", frame, want)
	}
}

func TestRasterizeOffset(t *testing.T) {
	r, _ := New(3, 2, 4)

	frame := r.Rasterize(particles(at(0, 0, false), at(2.5, 1, true)))

	want := "      {\n" +
		"    |  \n"
	if frame != want {
		t.Errorf("unexpected frame %q, want %q", frame, want)
	}
}

func TestRasterizeCulling(t *testing.T) {
	r, _ := New(5, 3, 0)

	offGrid := []*particle.Particle{
		at(-0.5, 1, true),
		at(5, 1, true),
		at(7.2, 0, false),
		at(2, -0.01, false),
		at(2, 3, false),
		at(2, 100, true),
	}
	frame := r.Rasterize(particles(offGrid...))

	if strings.Trim(frame, " \n") != "" {
		t.Errorf("culled particles leaked into frame: %q", frame)
	}
	for _, p := range offGrid {
		if r.Visible(p) {
			t.Errorf("particle at %v reported visible", p.Position)
		}
	}
}

func TestRasterizeClearsStaleGlyphs(t *testing.T) {
	r, _ := New(4, 2, 0)

	first := r.Rasterize(particles(at(1, 1, true), at(3, 0, false)))
	if strings.Count(first, " ") == 8 {
		t.Fatal("first frame should contain glyphs")
	}

	second := r.Rasterize(particles())
	if second != "    \n    \n" {
		t.Errorf("stale glyphs in empty frame: %q", second)
	}
	if first == second {
		t.Error("frames must be independent strings")
	}
}

func TestRasterizeLastWriterWins(t *testing.T) {
	r, _ := New(3, 2, 0)

	frame := r.Rasterize(particles(at(1.1, 1.2, true), at(1.9, 1.8, false)))
	if frame != " } \n   \n" {
		t.Errorf("expected later particle to win the cell, got %q", frame)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name string
		p    *particle.Particle
		want rune
	}{
		{"source row left", at(1, 0.9, true), GlyphSource},
		{"source row right", at(1, 0, false), GlyphSource},
		{"risen left", at(1, 1, true), GlyphLeft},
		{"risen right", at(1, 4.5, false), GlyphRight},
		{"below source", at(1, -0.5, true), GlyphLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(tt.p); got != tt.want {
				t.Errorf("Glyph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, offset int
	}{
		{"zero width", 0, 3, 0},
		{"negative width", -1, 3, 0},
		{"zero height", 3, 0, 0},
		{"negative offset", 3, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, tt.offset)
			if !errors.Is(err, particle.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			var ce *particle.ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("expected *ConfigError, got %T", err)
			}
		})
	}
}
