package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/steamcup/internal/config"
	"github.com/san-kum/steamcup/internal/particle"
	"github.com/san-kum/steamcup/internal/playback"
	"github.com/san-kum/steamcup/internal/raster"
	"github.com/san-kum/steamcup/internal/sim"
	"github.com/san-kum/steamcup/internal/steam"
)

const windStep = 0.01

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

type counters struct {
	expired int
}

type model struct {
	cfg    *config.Config
	theme  Theme
	st     styles
	steam  *steam.Steam
	rec    *playback.Recorder
	frame  playback.Frame
	stats  *counters
	paused bool
	steps  int
}

// New builds the live view for cfg. Frames is ignored: the view runs until
// the user quits.
func New(cfg *config.Config, theme Theme) (tea.Model, error) {
	return newModel(cfg, theme)
}

func newModel(cfg *config.Config, theme Theme) (model, error) {
	scene, s, err := playback.NewScene(cfg)
	if err != nil {
		return model{}, err
	}

	stats := &counters{}
	s.Engine().AddObserver(sim.ObserverFunc(func(step, live int, expired []particle.ID) {
		stats.expired += len(expired)
	}))

	m := model{
		cfg:   cfg,
		theme: theme,
		st:    theme.styles(),
		steam: s,
		rec:   playback.NewRecorder(scene, cfg.SpawnEvery),
		stats: stats,
	}
	m.frame = playback.Frame{Text: scene.GenerateFrame(), Particles: scene.Len()}
	return m, nil
}

func Run(cfg *config.Config, theme Theme) error {
	m, err := newModel(cfg, theme)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return tick(m.cfg.FPS) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if !m.paused {
			m = m.step()
		}
		return m, tick(m.cfg.FPS)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case ".":
		if m.paused {
			m = m.step()
		}
	case "left", "h":
		m.steam.Engine().SetWind(m.steam.Engine().Wind() - windStep)
	case "right", "l":
		m.steam.Engine().SetWind(m.steam.Engine().Wind() + windStep)
	case "r":
		fresh, err := newModel(m.cfg, m.theme)
		if err != nil {
			return m, nil
		}
		fresh.paused = m.paused
		return fresh, nil
	}
	return m, nil
}

func (m model) step() model {
	m.frame = m.rec.Step()
	m.steps++
	return m
}

func (m model) View() string {
	var b strings.Builder

	height := m.steam.Options().Height
	for i, line := range strings.Split(strings.TrimSuffix(m.frame.Text, "\n"), "\n") {
		if i < height {
			b.WriteString(m.styleSteam(line))
		} else {
			b.WriteString(m.st.cup.Render(line))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	state := m.st.running.Render("running")
	if m.paused {
		state = m.st.paused.Render("paused")
	}
	b.WriteString(fmt.Sprintf("%s  %s %s  %s %s  %s %s  %s %s\n",
		state,
		m.st.muted.Render("frame"), m.st.text.Render(fmt.Sprint(m.steps)),
		m.st.muted.Render("particles"), m.st.text.Render(fmt.Sprint(m.frame.Particles)),
		m.st.muted.Render("expired"), m.st.text.Render(fmt.Sprint(m.stats.expired)),
		m.st.muted.Render("wind"), m.st.text.Render(fmt.Sprintf("%+.2f", m.steam.Engine().Wind())),
	))
	b.WriteString(m.st.hint.Render("space pause  . step  ←/→ wind  r reset  q quit"))
	return b.String()
}

func (m model) styleSteam(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch r {
		case raster.GlyphSource:
			b.WriteString(m.st.source.Render(string(r)))
		case raster.GlyphLeft, raster.GlyphRight:
			b.WriteString(m.st.steam.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
