package assert

import (
	"github.com/abdul-hamid-achik/expect/packages/core/config"
	"go.uber.org/zap"
)

// Option configures a Context.
type Option func(*Context)

// WithLogger logs every recorded failure at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// WithComparer replaces structural equality for every equality and
// membership check made through the Context.
func WithComparer(equal func(a, b any) bool) Option {
	return func(c *Context) {
		c.equal = equal
	}
}

// WithConfig applies colour and verbosity settings to surfaced failures.
func WithConfig(cfg *config.Config) Option {
	return func(c *Context) {
		c.cfg = cfg
	}
}
