// Package screen plays frames on a full-screen tcell terminal.
package screen

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/steamcup/internal/raster"
)

var (
	styleSource = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSteam  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCup    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Player draws frames on s. The first height lines of a frame are steam;
// anything below is decoration.
type Player struct {
	s      tcell.Screen
	fps    int
	height int
	loop   bool
}

func NewPlayer(s tcell.Screen, fps, height int, loop bool) *Player {
	return &Player{s: s, fps: fps, height: height, loop: loop}
}

// Open initializes the terminal screen; callers must Fini it.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Play shows frames until they run out, the context ends, or the user
// presses q, Esc or Ctrl-C, or Stop is called.
func (p *Player) Play(ctx context.Context, frames []string) error {
	if len(frames) == 0 {
		return nil
	}

	quit := make(chan struct{})
	go func() {
		for {
			ev := p.s.PollEvent()
			if ev == nil {
				return
			}
			if isQuit(ev) {
				close(quit)
				return
			}
		}
	}()

	var tick <-chan time.Time
	if p.fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(p.fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; ; i++ {
		if i == len(frames) {
			if !p.loop {
				return nil
			}
			i = 0
		}
		p.Draw(frames[i])

		if tick == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-quit:
				return nil
			default:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-tick:
		}
	}
}

func (p *Player) Draw(frame string) {
	p.s.Clear()
	for y, line := range strings.Split(strings.TrimSuffix(frame, "\n"), "\n") {
		x := 0
		for _, r := range line {
			if r != ' ' {
				p.s.SetContent(x, y, r, nil, p.style(r, y))
			}
			x++
		}
	}
	p.s.Show()
}

func (p *Player) style(r rune, y int) tcell.Style {
	if y >= p.height {
		return styleCup
	}
	if r == raster.GlyphSource {
		return styleSource
	}
	return styleSteam
}

// Stop asks a running Play to return.
func (p *Player) Stop() error {
	return p.s.PostEvent(tcell.NewEventInterrupt(nil))
}

func isQuit(ev tcell.Event) bool {
	var key *tcell.EventKey
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return true
	case *tcell.EventKey:
		key = ev
	default:
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
