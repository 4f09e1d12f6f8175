package assert

import (
	"fmt"

	"github.com/abdul-hamid-achik/expect/packages/report"
)

// result is either success[T] or failed.
type result[T any] interface {
	isResult()
}

type success[T any] struct {
	value T
}

func (success[T]) isResult() {}

type failed struct {
	failure *report.Failure
}

func (failed) isResult() {}

// Subject is a named value under test, or the record of why the value could
// not be obtained. Subjects are cheap values; derive new ones with Transform
// rather than sharing them between unrelated checks.
type Subject[T any] struct {
	ctx    *Context
	path   report.Path
	result result[T]
}

// That wraps actual in a Subject. An optional name labels it in failure
// messages; without one messages read "expected to ...".
func That[T any](c *Context, actual T, name ...string) Subject[T] {
	var root string
	if len(name) > 0 {
		root = name[0]
	}
	return Subject[T]{ctx: c, path: report.Root(root), result: success[T]{value: actual}}
}

// Context returns the Context failures on s are raised through.
func (s Subject[T]) Context() *Context {
	return s.ctx
}

// Path returns the labels naming s.
func (s Subject[T]) Path() report.Path {
	return s.path
}

// Name returns the rendered path, eg. "items[2].size".
func (s Subject[T]) Name() string {
	return s.path.String()
}

// Value returns the held value and true, or the zero value and false when s
// is in a failed state.
func (s Subject[T]) Value() (T, bool) {
	if v, ok := s.result.(success[T]); ok {
		return v.value, true
	}
	var zero T
	return zero, false
}

// Failure returns the failure that put s in a failed state, or nil.
func (s Subject[T]) Failure() *report.Failure {
	if f, ok := s.result.(failed); ok {
		return f.failure
	}
	return nil
}

// Given runs check against the held value. A non-nil error is raised as a
// failure at s's path. Nothing runs when s is already failed: that failure
// was raised when it happened.
func (s Subject[T]) Given(check func(actual T) error) {
	switch r := s.result.(type) {
	case success[T]:
		if err := check(r.value); err != nil {
			s.ctx.raise(report.Place(s.path, err))
		}
	case failed:
		// raised when the subject failed
	default:
		panic(fmt.Sprintf("assert: subject %q has no context", s.Name()))
	}
}

// All runs fn with s rebound to a collecting Context, so every check fn
// makes against s (and Subjects derived from it) is reported together.
func (s Subject[T]) All(fn func(s Subject[T])) {
	if s.Failure() != nil {
		return
	}
	s.ctx.All(func(c *Context) {
		fn(Subject[T]{ctx: c, path: s.path, result: s.result})
	})
}

// Transform derives a Subject from s by applying extract and appending label
// to the path. When extract returns an error the derived Subject is failed
// and the failure is raised immediately. When s is already failed, extract is
// not called and the derived Subject carries s's original failure.
func Transform[T, U any](s Subject[T], label string, extract func(actual T) (U, error)) Subject[U] {
	path := s.path.Append(label)

	switch r := s.result.(type) {
	case success[T]:
		v, err := extract(r.value)
		if err != nil {
			f := report.Place(path, err)
			s.ctx.raise(f)
			return Subject[U]{ctx: s.ctx, path: path, result: failed{failure: f}}
		}
		return Subject[U]{ctx: s.ctx, path: path, result: success[U]{value: v}}
	case failed:
		return Subject[U]{ctx: s.ctx, path: path, result: r}
	default:
		panic(fmt.Sprintf("assert: subject %q has no context", s.Name()))
	}
}
