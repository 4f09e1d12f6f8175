package differ

import (
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/report"
)

// ExactMessage explains a failed in-order comparison. It returns the detail
// that follows "expected" in a failure message.
func ExactMessage[E any](expected, actual []E, r Result[E]) string {
	var b strings.Builder
	b.WriteString("to contain exactly:" + report.Show(expected) + " but was:" + report.Show(actual))
	writeSet(&b, "elements not found", r.Missing)
	writeSet(&b, "extra elements found", r.Extra)
	if r.OrderMismatch {
		b.WriteString("\n elements are the same but differ in order or count")
	}
	if i := r.FirstMismatch; i >= 0 {
		b.WriteString("\n first mismatch at index:" + strconv.Itoa(i) +
			" expected:" + at(expected, i) + " but was:" + at(actual, i))
	}
	return b.String()
}

// OnlyMessage explains a failed containsOnly check.
func OnlyMessage[E any](expected, actual []E, r Result[E]) string {
	var b strings.Builder
	b.WriteString("to contain only:" + report.Show(expected) + " but was:" + report.Show(actual))
	writeSet(&b, "elements not found", r.Missing)
	writeSet(&b, "extra elements found", r.Extra)
	return b.String()
}

// AllMessage explains a failed containsAll check.
func AllMessage[E any](expected, actual, notFound []E) string {
	return "to contain all:" + report.Show(expected) + " but was:" + report.Show(actual) +
		"\n elements not found:" + report.Show(notFound)
}

// NoneMessage explains a failed containsNone check.
func NoneMessage[E any](expected, actual, notExpected []E) string {
	return "to contain none of:" + report.Show(expected) + " but was:" + report.Show(actual) +
		"\n elements not expected:" + report.Show(notExpected)
}

func writeSet[E any](b *strings.Builder, title string, set []E) {
	if len(set) == 0 {
		return
	}
	b.WriteString("\n " + title + ":" + report.Show(set))
}

func at[E any](seq []E, i int) string {
	if i >= len(seq) {
		return "<absent>"
	}
	return report.Show(seq[i], "<>")
}
