// Package assert is the core of expect: it wraps values under test in
// Subjects, derives child Subjects with Transform, and decides what happens
// when a check fails.
//
// A Subject is created from a Context:
//
//	func TestUser(t *testing.T) {
//		c := assert.New(t)
//		s := assert.That(c, user.Roles, "roles")
//		assertions.HasSize(s, 2)
//	}
//
// By default a Context is fail-fast: the first failure stops the test (or,
// under Run, unwinds the block and is returned as an error). Inside
// Context.All failures are collected instead and surfaced together as one
// failure when the block returns.
//
// Failures reported through a testing.T point at the line inside this
// package that raised them; the failing check is named by its path in the
// message instead.
//
// A Context is not safe for concurrent use. Give each goroutine its own.
package assert
