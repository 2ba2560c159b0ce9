package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

// recordingScreen captures what a Player draws.
type recordingScreen struct {
	tcell.Screen
	cells  map[[2]int]cell
	shows  int
	clears int
	events chan tcell.Event
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{cells: make(map[[2]int]cell), events: make(chan tcell.Event, 1)}
}

func (m *recordingScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{r: mainc, style: style}
}

func (m *recordingScreen) Clear() {
	m.clears++
	m.cells = make(map[[2]int]cell)
}

func (m *recordingScreen) Show() { m.shows++ }

func (m *recordingScreen) PollEvent() tcell.Event {
	return <-m.events
}

func (m *recordingScreen) PostEvent(ev tcell.Event) error {
	m.events <- ev
	return nil
}

func TestDraw(t *testing.T) {
	scr := newRecordingScreen()
	p := NewPlayer(scr, 0, 2, false)

	p.Draw(" } \n|  \n___\n")

	want := map[[2]int]rune{
		{1, 0}: '}',
		{0, 1}: '|',
		{0, 2}: '_', {1, 2}: '_', {2, 2}: '_',
	}
	if len(scr.cells) != len(want) {
		t.Fatalf("expected %d cells, got %d: %v", len(want), len(scr.cells), scr.cells)
	}
	for pos, r := range want {
		if got := scr.cells[pos].r; got != r {
			t.Errorf("cell %v: expected %q, got %q", pos, r, got)
		}
	}
	if scr.cells[[2]int{1, 0}].style != styleSteam {
		t.Error("risen glyph should use the steam style")
	}
	if scr.cells[[2]int{0, 1}].style != styleSource {
		t.Error("source glyph should use the source style")
	}
	if scr.cells[[2]int{0, 2}].style != styleCup {
		t.Error("lines below the steam should use the cup style")
	}
	if scr.shows != 1 || scr.clears != 1 {
		t.Errorf("expected one clear and one show, got %d and %d", scr.clears, scr.shows)
	}
}

func TestPlayAllFrames(t *testing.T) {
	scr := newRecordingScreen()
	p := NewPlayer(scr, 1000, 1, false)

	if err := p.Play(context.Background(), []string{"a\n", "b\n", "c\n"}); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if scr.shows != 3 {
		t.Errorf("expected 3 frames shown, got %d", scr.shows)
	}
	if scr.cells[[2]int{0, 0}].r != 'c' {
		t.Error("last frame should remain on screen")
	}
}

func TestPlayEmpty(t *testing.T) {
	scr := newRecordingScreen()
	if err := NewPlayer(scr, 10, 1, true).Play(context.Background(), nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if scr.shows != 0 {
		t.Error("nothing should be drawn")
	}
}

func TestPlayLoopStops(t *testing.T) {
	scr := newRecordingScreen()
	p := NewPlayer(scr, 200, 1, true)

	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := p.Play(context.Background(), []string{"x\n"}); err != nil {
		t.Errorf("expected clean exit, got %v", err)
	}
}

func TestPlayLoopStopsOnCancel(t *testing.T) {
	scr := newRecordingScreen()
	p := NewPlayer(scr, 0, 1, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Play(ctx, []string{"x\n"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		ev   tcell.Event
		want bool
	}{
		{tcell.NewEventInterrupt(nil), true},
		{tcell.NewEventResize(80, 24), false},
	}

	for _, tt := range tests {
		if got := isQuit(tt.ev); got != tt.want {
			t.Errorf("isQuit(%T) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}
