package playback

import (
	"context"
	"fmt"
	"io"
	"time"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Player writes frames to a terminal, clearing it before each one.
type Player struct {
	out io.Writer
	fps int
}

// NewPlayer plays at fps frames per second; fps <= 0 plays without waiting.
func NewPlayer(out io.Writer, fps int) *Player {
	return &Player{out: out, fps: fps}
}

func (p *Player) Play(ctx context.Context, frames []string) error {
	i := 0
	return p.run(ctx, func() (string, bool) {
		if i >= len(frames) {
			return "", false
		}
		i++
		return frames[i-1], true
	})
}

// Stream steps the recorder n times and shows each frame as it is drawn.
func (p *Player) Stream(ctx context.Context, rec *Recorder, n int) error {
	i := 0
	return p.run(ctx, func() (string, bool) {
		if i >= n {
			return "", false
		}
		i++
		return rec.Step().Text, true
	})
}

func (p *Player) run(ctx context.Context, next func() (string, bool)) error {
	if _, err := io.WriteString(p.out, hideCursor); err != nil {
		return err
	}
	defer io.WriteString(p.out, showCursor)

	var tick <-chan time.Time
	if p.fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(p.fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	for first := true; ; first = false {
		frame, ok := next()
		if !ok {
			return nil
		}

		if !first && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(p.out, "%s%s\n", clearScreen, frame); err != nil {
			return err
		}
	}
}
