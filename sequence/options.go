// SPDX-License-Identifier: MIT

// Package sequence: functional configuration for Sequence construction.
//
// Only the size limit is configurable. Defaults live in constants so that
// callers (tmatrix, config) share a single source of truth.
package sequence

// ---------- Defaults ----------

const (
	// DefaultSize is the size used by NewDefault.
	DefaultSize = 10

	// DefaultStartIndex is the start index used by NewDefault.
	DefaultStartIndex = 0

	// DefaultMaxSize is the largest size New accepts unless WithMaxSize overrides it.
	DefaultMaxSize = 100000000
)

const panicMaxSizeInvalid = "sequence: WithMaxSize: limit must be non-negative"

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSize int // >= 0; DefaultMaxSize
}

// WithMaxSize overrides the largest size accepted by New.
// Panics when n is negative (programmer error).
//
// Complexity: O(1).
func WithMaxSize(n int) Option {
	if n < 0 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = n }
}

// MaxSize reports the effective size limit.
func (o Options) MaxSize() int { return o.maxSize }

// GatherOptions resolves user options on top of the defaults.
// Later options win.
func GatherOptions(user ...Option) Options {
	o := Options{maxSize: DefaultMaxSize}
	for _, set := range user {
		set(&o)
	}

	return o
}
