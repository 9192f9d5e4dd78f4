// SPDX-License-Identifier: MIT
// Package timecheck: functional configuration for timestamp parsing.

package timecheck

// DefaultLayouts are the reference layouts tried, in order, when parsing
// the combined "day time" string of a row.
var DefaultLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-1-2 15:04:05",
}

const panicLayoutsInvalid = "timecheck: WithLayouts: at least one layout required"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	layouts []string // DefaultLayouts
}

// WithLayouts replaces the timestamp reference layouts tried during
// parsing. Panics when called with no layouts (programmer error).
func WithLayouts(layouts ...string) Option {
	if len(layouts) == 0 {
		panic(panicLayoutsInvalid)
	}

	return func(o *Options) { o.layouts = layouts }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins) and returns the resolved configuration.
func gatherOptions(user ...Option) Options {
	o := Options{layouts: DefaultLayouts}
	for _, set := range user {
		set(&o)
	}

	return o
}
