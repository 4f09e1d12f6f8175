package assertions

import (
	"reflect"

	"github.com/abdul-hamid-achik/expect/packages/assert"
	"github.com/abdul-hamid-achik/expect/packages/report"
)

// IsEqualTo asserts the value is equal to expected using the context's
// comparison.
func IsEqualTo[T any](s assert.Subject[T], expected T) {
	s.Given(func(actual T) error {
		if s.Context().Equal(expected, actual) {
			return nil
		}
		exp := report.Fail(expected, actual)
		if diff := textDiff(expected, actual, s.Context().Config().MaxDiffLines); diff != "" {
			exp.Detail += "\n" + diff
		}
		return exp
	})
}

// IsNotEqualTo asserts the value is not equal to expected. When both render
// the same only one rendering is shown.
func IsNotEqualTo[T any](s assert.Subject[T], expected T) {
	s.Given(func(actual T) error {
		if !s.Context().Equal(expected, actual) {
			return nil
		}
		showExpected := report.Show(expected)
		showActual := report.Show(actual)
		if showExpected == showActual {
			return report.Expected("to not be equal to:" + showActual)
		}
		return report.Expected(":" + showExpected + " not to be equal to:" + showActual)
	})
}

// IsNil asserts the value is nil.
func IsNil[T any](s assert.Subject[T]) {
	s.Given(func(actual T) error {
		if isNil(actual) {
			return nil
		}
		return report.Expected("to be null but was:" + report.Show(actual))
	})
}

// IsNotNil asserts the value is not nil.
func IsNotNil[T any](s assert.Subject[T]) {
	s.Given(func(actual T) error {
		if !isNil(actual) {
			return nil
		}
		return report.Expected("to not be null")
	})
}

func IsTrue(s assert.Subject[bool]) {
	IsEqualTo(s, true)
}

func IsFalse(s assert.Subject[bool]) {
	IsEqualTo(s, false)
}

// Prop returns a subject for a named property of the value.
//
//	assertions.IsEqualTo(assertions.Prop(s, "name", func(u User) string { return u.Name }), "ada")
func Prop[T, P any](s assert.Subject[T], name string, get func(T) P) assert.Subject[P] {
	return assert.Transform(s, "."+name, func(actual T) (P, error) {
		return get(actual), nil
	})
}

// Length returns a subject for the length of a string in bytes.
func Length[S ~string](s assert.Subject[S]) assert.Subject[int] {
	return assert.Transform(s, ".length", func(actual S) (int, error) {
		return len(actual), nil
	})
}

// HasLength asserts the string is n bytes long.
func HasLength[S ~string](s assert.Subject[S], n int) {
	IsEqualTo(Length(s), n)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
