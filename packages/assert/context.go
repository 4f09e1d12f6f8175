package assert

import (
	"reflect"

	"github.com/abdul-hamid-achik/expect/packages/core/config"
	"github.com/abdul-hamid-achik/expect/packages/output"
	"github.com/abdul-hamid-achik/expect/packages/report"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// TestingT is the part of testing.TB a Context reports through. Fatal must
// not return, as is the case for testing.TB.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// Context decides what happens to failures raised by the Subjects created
// from it.
type Context struct {
	t         TestingT
	cfg       *config.Config
	log       *zap.Logger
	formatter *output.ConsoleFormatter
	equal     func(a, b any) bool

	// set for contexts created by All
	parent    *Context
	collector *collector
}

type collector struct {
	failures []*report.Failure
	closed   bool
}

// halt unwinds a block run by Run. owner identifies the Run call it belongs
// to so that nested Run calls do not swallow each other's failures.
type halt struct {
	owner   *Context
	failure *report.Failure
}

// New returns a fail-fast Context that reports to t.
func New(t TestingT, opts ...Option) *Context {
	return newContext(t, opts)
}

// Run calls fn with a fail-fast Context and returns the first failure as an
// error, or nil when every check passed. The failure is a *report.Failure.
func Run(fn func(c *Context), opts ...Option) (err error) {
	c := newContext(nil, opts)
	defer func() {
		if r := recover(); r != nil {
			if h, ok := r.(halt); ok && h.owner == c {
				err = h.failure
				return
			}
			panic(r)
		}
	}()
	fn(c)
	return nil
}

func newContext(t TestingT, opts []Option) *Context {
	c := &Context{t: t}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg == nil {
		c.cfg = config.DefaultConfig().ApplyEnv()
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.equal == nil {
		c.equal = deepEqual
	}
	c.formatter = output.NewConsoleFormatter(
		output.WithNoColor(c.cfg.GetNoColor()),
		output.WithVerbose(c.cfg.GetVerbose()),
	)
	return c
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func deepEqual(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// Equal compares two values with the Context's comparison, structural
// equality unless replaced by WithComparer.
func (c *Context) Equal(a, b any) bool {
	return c.equal(a, b)
}

// Config returns the configuration the Context was built with.
func (c *Context) Config() *config.Config {
	return c.cfg
}

// Collecting reports whether failures are being collected by an All block.
func (c *Context) Collecting() bool {
	return c.collector != nil && !c.collector.closed
}

// Fail raises err as a failure that is not tied to any Subject.
func (c *Context) Fail(err error) {
	if err == nil {
		return
	}
	c.raise(report.Place(nil, err))
}

// All runs fn, collecting every failure raised through the Context it is
// given instead of stopping at the first. When fn returns, the collected
// failures are raised as one combined failure. Calling All while already
// collecting reuses the open collection, so failures flow to the outermost
// block.
func (c *Context) All(fn func(c *Context)) {
	if c.Collecting() {
		fn(c)
		return
	}

	child := *c
	child.parent = c
	child.collector = &collector{}

	func() {
		defer func() { child.collector.closed = true }()
		fn(&child)
	}()

	failures := child.collector.failures
	if len(failures) == 0 {
		return
	}
	combined := report.Combine(failures)
	c.log.Debug("assertions failed", zap.Int("failures", len(failures)))
	c.raise(combined)
}

func (c *Context) raise(f *report.Failure) {
	if c.Collecting() {
		c.log.Debug("assertion failed",
			zap.String("path", f.Path.String()),
			zap.Bool("aggregating", true))
		c.collector.failures = append(c.collector.failures, f)
		return
	}
	if c.parent != nil {
		// the All block that created c has already returned
		c.parent.raise(f)
		return
	}

	c.log.Debug("assertion failed",
		zap.String("path", f.Path.String()),
		zap.Bool("aggregating", false))
	if c.t != nil {
		// marks raise only, so the reported line is inside Given or Transform
		c.t.Helper()
		c.t.Fatal(c.formatter.Sprint(f))
		return
	}
	panic(halt{owner: c, failure: f})
}
