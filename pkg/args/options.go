package args

import (
	"context"
	"log/slog"

	"golang.org/x/text/cases"
)

// Option configures a Cursor.
type Option func(*Cursor)

// WithMin sets the minimum number of arguments. Defaults to 0.
func WithMin(n int) Option {
	return func(c *Cursor) { c.min = n }
}

// WithMax sets the maximum number of arguments. Defaults to the number of
// arguments received, so there is no upper bound unless set.
func WithMax(n int) Option {
	return func(c *Cursor) {
		c.max = n
		c.maxSet = true
	}
}

func WithRange(min, max int) Option {
	return func(c *Cursor) {
		WithMin(min)(c)
		WithMax(max)(c)
	}
}

func WithExact(n int) Option {
	return WithRange(n, n)
}

// WithLogger sets the logger used by logging policies and choice warnings.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cursor) {
		if l != nil {
			c.log = l
		}
	}
}

// WithContext sets the context passed to the logger, so context extractors
// can attach request-scoped attributes to validation diagnostics.
func WithContext(ctx context.Context) Option {
	return func(c *Cursor) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithWarnPolicy changes what the *Warn pulls do on failure, typically the
// level they log at or Silent to mute them. Required is ignored because the
// *Warn pulls have no error to return; use the *Required pulls instead.
func WithWarnPolicy(p Policy) Option {
	return func(c *Cursor) {
		if !p.IsRequired() {
			c.warn = p
		}
	}
}

// WithFoldedChoices makes string choice membership case-insensitive using
// full Unicode case folding. Pulls still return the value as supplied.
func WithFoldedChoices() Option {
	return func(c *Cursor) {
		f := cases.Fold()
		c.fold = &f
	}
}
