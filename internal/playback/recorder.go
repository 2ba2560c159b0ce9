// Package playback records frames from a scene and plays them back on a
// terminal at a fixed frame rate.
package playback

import (
	"context"

	"github.com/san-kum/steamcup/internal/steam"
)

type Frame struct {
	Index int
	Text  string
	// Particles is the live count when the frame was drawn.
	Particles int
	// Expired is how many particles the step after this frame removed.
	Expired int
}

// Recorder drives a scene one step at a time: spawn on cadence, draw,
// then simulate.
type Recorder struct {
	scene      steam.Scene
	spawnEvery int
	sinceSpawn int
	index      int
}

// NewRecorder spawns one particle every spawnEvery steps, starting with the
// step after the first spawnEvery. Zero disables spawning.
func NewRecorder(scene steam.Scene, spawnEvery int) *Recorder {
	return &Recorder{scene: scene, spawnEvery: spawnEvery}
}

func (r *Recorder) Step() Frame {
	if r.spawnEvery > 0 && r.sinceSpawn == r.spawnEvery {
		r.scene.SpawnParticle()
		r.sinceSpawn = 0
	}

	f := Frame{
		Index:     r.index,
		Text:      r.scene.GenerateFrame(),
		Particles: r.scene.Len(),
	}

	r.scene.UpdateSimulation()
	f.Expired = f.Particles - r.scene.Len()

	r.sinceSpawn++
	r.index++
	return f
}

func (r *Recorder) Scene() steam.Scene { return r.scene }

// Record runs n steps and collects their frames.
func Record(ctx context.Context, scene steam.Scene, n, spawnEvery int) ([]Frame, error) {
	rec := NewRecorder(scene, spawnEvery)
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}
		frames = append(frames, rec.Step())
	}
	return frames, nil
}

// Texts extracts the frame strings.
func Texts(frames []Frame) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.Text
	}
	return out
}
