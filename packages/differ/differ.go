package differ

// EqualFunc reports whether two elements are equal.
type EqualFunc[E any] func(a, b E) bool

// Result describes the difference between an expected and an actual
// sequence.
type Result[E any] struct {
	// Missing holds expected elements absent from actual, in expected order.
	Missing []E
	// Extra holds actual elements absent from expected, in actual order.
	Extra []E
	// OrderMismatch is set when neither side has a missing or extra element
	// yet the sequences are not equal element by element.
	OrderMismatch bool
	// FirstMismatch is the first index where the sequences disagree, or -1.
	FirstMismatch int
}

// Equal reports whether the compared sequences were found equal.
func (r Result[E]) Equal() bool {
	return r.FirstMismatch < 0 && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Exact compares expected and actual in order.
func Exact[E any](expected, actual []E, eq EqualFunc[E]) Result[E] {
	first := firstMismatch(expected, actual, eq)
	if first < 0 {
		return Result[E]{FirstMismatch: -1}
	}

	r := Result[E]{
		Missing:       Absent(expected, actual, eq),
		Extra:         Absent(actual, expected, eq),
		FirstMismatch: first,
	}
	r.OrderMismatch = len(r.Missing) == 0 && len(r.Extra) == 0
	return r
}

// Unordered compares expected and actual ignoring order and repetition.
// FirstMismatch is always -1.
func Unordered[E any](expected, actual []E, eq EqualFunc[E]) Result[E] {
	return Result[E]{
		Missing:       Absent(expected, actual, eq),
		Extra:         Absent(actual, expected, eq),
		FirstMismatch: -1,
	}
}

// Absent returns the elements of from that are not present anywhere in in.
func Absent[E any](from, in []E, eq EqualFunc[E]) []E {
	var out []E
	for _, e := range from {
		if !Contains(in, e, eq) {
			out = append(out, e)
		}
	}
	return out
}

// Present returns the elements of from that are present somewhere in in.
func Present[E any](from, in []E, eq EqualFunc[E]) []E {
	var out []E
	for _, e := range from {
		if Contains(in, e, eq) {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether e is equal to any element of seq.
func Contains[E any](seq []E, e E, eq EqualFunc[E]) bool {
	for _, x := range seq {
		if eq(e, x) {
			return true
		}
	}
	return false
}

func firstMismatch[E any](expected, actual []E, eq EqualFunc[E]) int {
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		if !eq(expected[i], actual[i]) {
			return i
		}
	}
	if len(expected) != len(actual) {
		return n
	}
	return -1
}
