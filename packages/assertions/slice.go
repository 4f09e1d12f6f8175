package assertions

import (
	"strconv"

	"github.com/abdul-hamid-achik/expect/packages/assert"
	"github.com/abdul-hamid-achik/expect/packages/differ"
	"github.com/abdul-hamid-achik/expect/packages/report"
)

func elementEqual[E any](c *assert.Context) differ.EqualFunc[E] {
	return func(a, b E) bool {
		return c.Equal(a, b)
	}
}

// Size returns a subject for the number of elements.
func Size[S ~[]E, E any](s assert.Subject[S]) assert.Subject[int] {
	return assert.Transform(s, ".size", func(actual S) (int, error) {
		return len(actual), nil
	})
}

// HasSize asserts the slice has n elements.
func HasSize[S ~[]E, E any](s assert.Subject[S], n int) {
	IsEqualTo(Size(s), n)
}

// HasSameSizeAs asserts the slice has as many elements as other.
func HasSameSizeAs[S ~[]E, E any](s assert.Subject[S], other S) {
	s.Given(func(actual S) error {
		if len(actual) == len(other) {
			return nil
		}
		return report.Expected("to have same size as:" + report.Show(other) +
			" (" + strconv.Itoa(len(other)) + ") but was size:(" + strconv.Itoa(len(actual)) + ")")
	})
}

// IsEmpty asserts the slice has no elements.
func IsEmpty[S ~[]E, E any](s assert.Subject[S]) {
	s.Given(func(actual S) error {
		if len(actual) == 0 {
			return nil
		}
		return report.Expected("to be empty but was:" + report.Show(actual))
	})
}

// IsNotEmpty asserts the slice has at least one element.
func IsNotEmpty[S ~[]E, E any](s assert.Subject[S]) {
	s.Given(func(actual S) error {
		if len(actual) > 0 {
			return nil
		}
		return report.Expected("to not be empty")
	})
}

// IsNilOrEmpty asserts the slice is nil or has no elements. It differs from
// IsEmpty only in its message.
func IsNilOrEmpty[S ~[]E, E any](s assert.Subject[S]) {
	s.Given(func(actual S) error {
		if len(actual) == 0 {
			return nil
		}
		return report.Expected("to be null or empty but was:" + report.Show(actual))
	})
}

// Contains asserts element is present in the slice.
func Contains[S ~[]E, E any](s assert.Subject[S], element E) {
	s.Given(func(actual S) error {
		if differ.Contains([]E(actual), element, elementEqual[E](s.Context())) {
			return nil
		}
		return report.Expected("to contain:" + report.Show(element) + " but was:" + report.Show(actual))
	})
}

// DoesNotContain asserts element is not present in the slice.
func DoesNotContain[S ~[]E, E any](s assert.Subject[S], element E) {
	s.Given(func(actual S) error {
		if !differ.Contains([]E(actual), element, elementEqual[E](s.Context())) {
			return nil
		}
		return report.Expected("to not contain:" + report.Show(element) + " but was:" + report.Show(actual))
	})
}

// ContainsNone asserts none of elements are present in the slice.
func ContainsNone[S ~[]E, E any](s assert.Subject[S], elements ...E) {
	s.Given(func(actual S) error {
		notExpected := differ.Present(elements, []E(actual), elementEqual[E](s.Context()))
		if len(notExpected) == 0 {
			return nil
		}
		return report.Expected(differ.NoneMessage(elements, []E(actual), notExpected))
	})
}

// ContainsAll asserts every element is present, in any order. The slice may
// hold other elements too.
func ContainsAll[S ~[]E, E any](s assert.Subject[S], elements ...E) {
	s.Given(func(actual S) error {
		notFound := differ.Absent(elements, []E(actual), elementEqual[E](s.Context()))
		if len(notFound) == 0 {
			return nil
		}
		return report.Expected(differ.AllMessage(elements, []E(actual), notFound))
	})
}

// ContainsOnly asserts the slice holds the given elements and nothing else,
// in any order.
func ContainsOnly[S ~[]E, E any](s assert.Subject[S], elements ...E) {
	s.Given(func(actual S) error {
		r := differ.Unordered(elements, []E(actual), elementEqual[E](s.Context()))
		if r.Equal() {
			return nil
		}
		return report.Expected(differ.OnlyMessage(elements, []E(actual), r))
	})
}

// ContainsExactly asserts the slice holds exactly elements, in order.
func ContainsExactly[S ~[]E, E any](s assert.Subject[S], elements ...E) {
	s.Given(func(actual S) error {
		r := differ.Exact(elements, []E(actual), elementEqual[E](s.Context()))
		if r.Equal() {
			return nil
		}
		return report.Expected(differ.ExactMessage(elements, []E(actual), r))
	})
}

// Index returns a subject for the element at index. An index outside the
// slice fails the returned subject.
//
//	assertions.IsEqualTo(assertions.Index(s, 1), 2)
func Index[S ~[]E, E any](s assert.Subject[S], index int) assert.Subject[E] {
	return assert.Transform(s, report.Show(index, "[]"), func(actual S) (E, error) {
		if index >= 0 && index < len(actual) {
			return actual[index], nil
		}
		var zero E
		return zero, report.Expected("index to be in range:[0-" + strconv.Itoa(len(actual)) +
			") but was:" + report.Show(index))
	})
}

// Each runs fn against every element and reports every failing element
// together.
//
//	assertions.Each(s, func(e assert.Subject[string]) {
//		assertions.HasLength(e, 3)
//	})
func Each[S ~[]E, E any](s assert.Subject[S], fn func(assert.Subject[E])) {
	s.All(func(s assert.Subject[S]) {
		actual, _ := s.Value()
		for i := range actual {
			fn(Index(s, i))
		}
	})
}
