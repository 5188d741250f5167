// SPDX-License-Identifier: MIT
// Package: attrlod/lod
//
// options.go: functional options for Builder and Cache.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil searcher, nil logger, fewer than one worker).
//   • Options apply in order; later options override earlier ones.
//
// Defaults:
//   • searcher = KDSearcher{}
//   • logger   = slog.Default() at construction time
//   • workers  = runtime.GOMAXPROCS(0)

package lod

import (
	"log/slog"
	"runtime"
)

// Option customizes a Builder (and every Builder a Cache creates).
type Option func(*config)

// config holds the resolved knobs of a Builder.
type config struct {
	searcher Searcher
	logger   *slog.Logger
	workers  int
}

// WithSearcher replaces the neighbour search. Panics on nil.
func WithSearcher(s Searcher) Option {
	if s == nil {
		panic("lod: WithSearcher(nil)")
	}
	return func(c *config) {
		c.searcher = s
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lod: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithWorkers bounds the goroutines used for weight computation.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("lod: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		searcher: KDSearcher{},
		logger:   slog.Default(),
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
