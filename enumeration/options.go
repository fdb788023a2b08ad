// SPDX-License-Identifier: MIT

package enumeration

import (
	"context"
	"io"
	"log/slog"
)

// Option configures an Enumerator.
type Option func(*options)

type options struct {
	ctx    context.Context
	logger *slog.Logger
	prune  bool
}

func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context checked once per query combination and once
// per hidden-variable binding. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger receiving debug records for each query.
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("enumeration: WithLogger(nil)")
	}

	return func(o *options) { o.logger = logger }
}

// WithPruning restricts each query to the ancestors of its query and
// evidence variables. The posterior is unchanged; the enumeration skips
// variables that would sum out to 1.
func WithPruning() Option {
	return func(o *options) { o.prune = true }
}
