package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssertion is the sentinel wrapped by every Failure.
var ErrAssertion = errors.New("assertion failed")

// Expectation is a failure that has not yet been bound to a Path. Checks
// return it and the assert package places it against the subject's path.
type Expectation struct {
	Detail string
}

// Expected builds an Expectation. The detail is the text that follows
// "expected" and the subject's name, eg. "to be empty but was:[]". A detail
// that starts with ":" is joined without a space.
func Expected(detail string) *Expectation {
	return &Expectation{Detail: detail}
}

// Expectedf is Expected with fmt.Sprintf formatting.
func Expectedf(format string, args ...any) *Expectation {
	return Expected(fmt.Sprintf(format, args...))
}

// Fail builds the canonical two-value expectation:
//
//	expected:<1> but was:<2>
//
// When both values render the same their types are added:
//
//	expected:<30> (int) but was:<30> (float64)
func Fail(expected, actual any) *Expectation {
	e, a := Show(expected, "<>"), Show(actual, "<>")
	if e == a {
		e += fmt.Sprintf(" (%T)", expected)
		a += fmt.Sprintf(" (%T)", actual)
	}
	return Expected(":" + e + " but was:" + a)
}

func (e *Expectation) Error() string {
	return e.message(nil)
}

func (e *Expectation) message(p Path) string {
	sep := " "
	if strings.HasPrefix(e.Detail, ":") {
		sep = ""
	}
	return "expected" + FormatName(p) + sep + e.Detail
}

// Failure is an immutable record of one failed check, or of several when
// produced by Combine.
type Failure struct {
	Message string
	Path    Path
	causes  []*Failure
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return ErrAssertion
}

// Causes returns the failures an aggregated failure was built from, in the
// order they were recorded. It is empty for a single failure.
func (f *Failure) Causes() []*Failure {
	return f.causes
}

// Place binds err to the path it was raised at. A *Failure is returned
// unchanged since it already carries a path.
func Place(p Path, err error) *Failure {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}

	var exp *Expectation
	if errors.As(err, &exp) {
		return &Failure{Message: exp.message(p), Path: p}
	}

	msg := err.Error()
	if name := p.String(); name != "" {
		msg = "[" + name + "] " + msg
	}
	return &Failure{Message: msg, Path: p}
}

// Combine folds several failures into one whose message lists every
// underlying message, one per line, in order.
func Combine(failures []*Failure) *Failure {
	var b strings.Builder
	if len(failures) == 1 {
		b.WriteString("The following assertion failed:")
	} else {
		fmt.Fprintf(&b, "The following assertions failed (%d failures)", len(failures))
	}
	for _, f := range failures {
		b.WriteString("\n\t- ")
		b.WriteString(f.Message)
	}

	causes := make([]*Failure, len(failures))
	copy(causes, failures)
	return &Failure{Message: b.String(), causes: causes}
}
