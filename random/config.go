// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// config.go - construction options and deterministic defaults.
//
// Design:
//   - config is the single source of truth for construction knobs.
//   - newConfig applies options in order (later overrides earlier).
//   - Scales may be any integer; each operation checks its own minimum.

package random

// Default scales of a freshly constructed provider.
const (
	DefaultScale          = 32
	DefaultSecondaryScale = 8
	DefaultTertiaryScale  = 2
)

// Option customizes a Provider at construction time.
type Option func(*config)

type config struct {
	scale          int
	secondaryScale int
	tertiaryScale  int
}

// WithScales sets all three scales at once.
func WithScales(scale, secondaryScale, tertiaryScale int) Option {
	return func(c *config) {
		c.scale = scale
		c.secondaryScale = secondaryScale
		c.tertiaryScale = tertiaryScale
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		scale:          DefaultScale,
		secondaryScale: DefaultSecondaryScale,
		tertiaryScale:  DefaultTertiaryScale,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
