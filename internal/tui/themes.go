package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the live view.
type Theme struct {
	Name    string
	Steam   lipgloss.Color
	Source  lipgloss.Color
	Cup     lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Hint    lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Steam:   lipgloss.Color("255"),
		Source:  lipgloss.Color("242"),
		Cup:     lipgloss.Color("242"),
		Text:    lipgloss.Color("255"),
		Muted:   lipgloss.Color("242"),
		Hint:    lipgloss.Color("238"),
		Running: lipgloss.Color("86"),
		Paused:  lipgloss.Color("220"),
	}

	ThemeEspresso = Theme{
		Name:    "espresso",
		Steam:   lipgloss.Color("#f5e6d3"),
		Source:  lipgloss.Color("#a67b5b"),
		Cup:     lipgloss.Color("#6f4e37"),
		Text:    lipgloss.Color("#f5e6d3"),
		Muted:   lipgloss.Color("#a67b5b"),
		Hint:    lipgloss.Color("#5c4033"),
		Running: lipgloss.Color("#d2b48c"),
		Paused:  lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Steam:   lipgloss.Color("#00ff00"), // green phosphor
		Source:  lipgloss.Color("#00cc00"),
		Cup:     lipgloss.Color("#005500"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#00cc00"),
		Hint:    lipgloss.Color("#005500"),
		Running: lipgloss.Color("#88ff88"),
		Paused:  lipgloss.Color("#ffff00"),
	}

	ThemeMatcha = Theme{
		Name:    "matcha",
		Steam:   lipgloss.Color("#e8f5e9"),
		Source:  lipgloss.Color("#7cb342"),
		Cup:     lipgloss.Color("#558b2f"),
		Text:    lipgloss.Color("#e8f5e9"),
		Muted:   lipgloss.Color("#7cb342"),
		Hint:    lipgloss.Color("#33691e"),
		Running: lipgloss.Color("#aed581"),
		Paused:  lipgloss.Color("#ffd54f"),
	}
)

var themes = map[string]Theme{
	"classic":  ThemeClassic,
	"espresso": ThemeEspresso,
	"retro":    ThemeRetroGreen,
	"matcha":   ThemeMatcha,
}

// GetTheme returns the named theme.
func GetTheme(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
	}
	return t, nil
}

func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type styles struct {
	steam, source, cup, text, muted, hint, running, paused lipgloss.Style
}

func (t Theme) styles() styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return styles{
		steam:   fg(t.Steam),
		source:  fg(t.Source),
		cup:     fg(t.Cup),
		text:    fg(t.Text),
		muted:   fg(t.Muted),
		hint:    fg(t.Hint),
		running: fg(t.Running),
		paused:  fg(t.Paused),
	}
}
