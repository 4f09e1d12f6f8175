package assertions

import (
	"fmt"
	"testing"

	"github.com/abdul-hamid-achik/expect/packages/assert"
	"github.com/abdul-hamid-achik/expect/packages/report"
	"github.com/stretchr/testify/require"
)

type ints []int

func isPositive(s assert.Subject[int]) {
	s.Given(func(actual int) error {
		if actual > 0 {
			return nil
		}
		return report.Expected("to be positive but was:" + report.Show(actual))
	})
}

func TestSize(t *testing.T) {
	passes(t, func(c *assert.Context) {
		IsEqualTo(Size(assert.That(c, []string{"a", "b"})), 2)
		HasSize(assert.That(c, ints{1, 2, 3}), 3)
	})

	msg := failureOf(t, func(c *assert.Context) {
		HasSize(assert.That(c, []int{1, 2}), 3)
	})
	require.Equal(t, "expected [size]:<3> but was:<2>", msg)

	msg = failureOf(t, func(c *assert.Context) {
		HasSize(assert.That(c, []int{1, 2}, "items"), 3)
	})
	require.Equal(t, "expected [items.size]:<3> but was:<2>", msg)
}

func TestHasSameSizeAs(t *testing.T) {
	passes(t, func(c *assert.Context) {
		HasSameSizeAs(assert.That(c, []int{1, 2}), []int{3, 4})
	})

	msg := failureOf(t, func(c *assert.Context) {
		HasSameSizeAs(assert.That(c, []int{1, 2}), []int{1})
	})
	require.Equal(t, "expected to have same size as:[1] (1) but was size:(2)", msg)
}

func TestEmptiness(t *testing.T) {
	passes(t, func(c *assert.Context) {
		IsEmpty(assert.That(c, []int{}))
		IsEmpty(assert.That[[]int](c, nil))
		IsNotEmpty(assert.That(c, []int{1}))
		IsNilOrEmpty(assert.That[[]string](c, nil))
	})

	msg := failureOf(t, func(c *assert.Context) {
		IsEmpty(Index(assert.That(c, [][]int{{}, {}, {7}}), 2))
	})
	require.Equal(t, "expected [2] to be empty but was:[7]", msg)

	msg = failureOf(t, func(c *assert.Context) {
		IsNotEmpty(assert.That(c, []int{}, "list"))
	})
	require.Equal(t, "expected [list] to not be empty", msg)

	msg = failureOf(t, func(c *assert.Context) {
		IsNilOrEmpty(assert.That(c, []int{1}))
	})
	require.Equal(t, "expected to be null or empty but was:[1]", msg)
}

func TestContains(t *testing.T) {
	passes(t, func(c *assert.Context) {
		Contains(assert.That(c, []int{1, 2}), 2)
		DoesNotContain(assert.That(c, []int{1, 2}), 3)
		Contains(assert.That(c, [][]int{{1, 2}, {3}}), []int{3})
	})

	msg := failureOf(t, func(c *assert.Context) {
		Contains(assert.That(c, []string{"a"}), "b")
	})
	require.Equal(t, `expected to contain:"b" but was:["a"]`, msg)

	msg = failureOf(t, func(c *assert.Context) {
		DoesNotContain(assert.That(c, []int{1, 2}), 2)
	})
	require.Equal(t, "expected to not contain:2 but was:[1, 2]", msg)
}

func TestContainsNone(t *testing.T) {
	passes(t, func(c *assert.Context) {
		ContainsNone(assert.That(c, []int{1, 2}), 3, 4)
	})

	msg := failureOf(t, func(c *assert.Context) {
		ContainsNone(assert.That(c, []int{1, 2, 3}), 2, 3, 5)
	})
	require.Equal(t, "expected to contain none of:[2, 3, 5] but was:[1, 2, 3]\n elements not expected:[2, 3]", msg)
}

func TestContainsAll(t *testing.T) {
	passes(t, func(c *assert.Context) {
		ContainsAll(assert.That(c, []int{3, 1, 2}), 1, 2)
	})

	msg := failureOf(t, func(c *assert.Context) {
		ContainsAll(assert.That(c, []int{1, 2}), 1, 5)
	})
	require.Equal(t, "expected to contain all:[1, 5] but was:[1, 2]\n elements not found:[5]", msg)
}

func TestContainsOnly(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		passes(t, func(c *assert.Context) {
			ContainsOnly(assert.That(c, []int{2, 1}), 1, 2)
		})
	})

	t.Run("extra", func(t *testing.T) {
		msg := failureOf(t, func(c *assert.Context) {
			ContainsOnly(assert.That(c, []int{1, 2, 3}), 1, 2)
		})
		require.Equal(t, "expected to contain only:[1, 2] but was:[1, 2, 3]\n extra elements found:[3]", msg)
	})

	t.Run("not found", func(t *testing.T) {
		msg := failureOf(t, func(c *assert.Context) {
			ContainsOnly(assert.That(c, []int{1, 2}), 1, 2, 3)
		})
		require.Equal(t, "expected to contain only:[1, 2, 3] but was:[1, 2]\n elements not found:[3]", msg)
	})
}

func TestContainsExactly(t *testing.T) {
	passes(t, func(c *assert.Context) {
		ContainsExactly(assert.That(c, []int{1, 2, 3}), 1, 2, 3)
		ContainsExactly(assert.That(c, [][]string{{"a"}, {}}), []string{"a"}, []string{})
	})

	t.Run("duplicates are checked by presence", func(t *testing.T) {
		msg := failureOf(t, func(c *assert.Context) {
			ContainsExactly(assert.That(c, []int{1, 2, 3}), 1, 2, 2)
		})
		require.Equal(t, "expected to contain exactly:[1, 2, 2] but was:[1, 2, 3]\n"+
			" extra elements found:[3]\n"+
			" first mismatch at index:2 expected:<2> but was:<3>", msg)
		require.NotContains(t, msg, "elements not found")
	})

	t.Run("order", func(t *testing.T) {
		msg := failureOf(t, func(c *assert.Context) {
			ContainsExactly(assert.That(c, []int{2, 1}, "pair"), 1, 2)
		})
		require.Contains(t, msg, "expected [pair] to contain exactly:[1, 2] but was:[2, 1]")
		require.Contains(t, msg, "differ in order or count")
	})
}

func TestIndex(t *testing.T) {
	values := []int{10, 20, 30}
	for i := range values {
		t.Run(fmt.Sprintf("in range %d", i), func(t *testing.T) {
			passes(t, func(c *assert.Context) {
				IsEqualTo(Index(assert.That(c, values), i), values[i])
			})
		})
	}

	for _, i := range []int{3, -1} {
		t.Run(fmt.Sprintf("out of range %d", i), func(t *testing.T) {
			msg := failureOf(t, func(c *assert.Context) {
				IsEqualTo(Index(assert.That(c, values), i), 0)
			})
			require.Equal(t, fmt.Sprintf("expected [%d] index to be in range:[0-3) but was:%d", i, i), msg)
		})
	}
}

func TestIndex_FailedNavigationReportedOnce(t *testing.T) {
	msg := failureOf(t, func(c *assert.Context) {
		c.All(func(c *assert.Context) {
			rows := assert.That(c, [][]int{{1}}, "rows")
			HasSize(Index(rows, 4), 1)
			isPositive(Index(Index(rows, 4), 0))
		})
	})

	require.Equal(t, "The following assertions failed (2 failures)\n"+
		"\t- expected [rows[4]] index to be in range:[0-1) but was:4\n"+
		"\t- expected [rows[4]] index to be in range:[0-1) but was:4", msg)
}

func TestEach(t *testing.T) {
	passes(t, func(c *assert.Context) {
		Each(assert.That(c, []int{1, 2, 3}), isPositive)
		Each(assert.That(c, []int{}), isPositive)
	})

	msg := failureOf(t, func(c *assert.Context) {
		Each(assert.That(c, []int{-1, 5, -3}), isPositive)
	})
	require.Equal(t, "The following assertions failed (2 failures)\n"+
		"\t- expected [0] to be positive but was:-1\n"+
		"\t- expected [2] to be positive but was:-3", msg)
	require.NotContains(t, msg, "[1]")
}

func TestEach_Named(t *testing.T) {
	msg := failureOf(t, func(c *assert.Context) {
		Each(assert.That(c, []string{"one", "three"}, "words"), func(e assert.Subject[string]) {
			HasLength(e, 3)
		})
	})
	require.Equal(t, "The following assertion failed:\n"+
		"\t- expected [words[1].length]:<3> but was:<5>", msg)
}

func TestEach_InsideAllFlowsToOuterBlock(t *testing.T) {
	msg := failureOf(t, func(c *assert.Context) {
		c.All(func(c *assert.Context) {
			IsEqualTo(assert.That(c, 1, "first"), 2)
			Each(assert.That(c, []int{0, 1}, "nums"), isPositive)
			IsTrue(assert.That(c, false, "last"))
		})
	})

	require.Equal(t, "The following assertions failed (3 failures)\n"+
		"\t- expected [first]:<2> but was:<1>\n"+
		"\t- expected [nums[0]] to be positive but was:0\n"+
		"\t- expected [last]:<true> but was:<false>", msg)
}

func TestEach_FailFastContextStillReportsAllElements(t *testing.T) {
	reached := false
	msg := failureOf(t, func(c *assert.Context) {
		Each(assert.That(c, []int{-1, -2}), isPositive)
		reached = true
	})

	require.False(t, reached)
	require.Contains(t, msg, "[0]")
	require.Contains(t, msg, "[1]")
}
