package playback

import (
	"github.com/san-kum/steamcup/internal/coffee"
	"github.com/san-kum/steamcup/internal/config"
	"github.com/san-kum/steamcup/internal/rng"
	"github.com/san-kum/steamcup/internal/steam"
)

// NewScene builds the configured scene. The returned *steam.Steam is the
// renderer underneath any decoration, for runtime tuning.
func NewScene(cfg *config.Config) (steam.Scene, *steam.Steam, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	s, err := steam.New(cfg.Options(), rng.New(cfg.Seed))
	if err != nil {
		return nil, nil, err
	}
	if cfg.Scene == config.SceneCoffee {
		return coffee.New(s), s, nil
	}
	return s, s, nil
}
