// Package report renders values and builds assertion failure messages.
//
// Message construction is pure: Show, Expected, Fail and Place only build
// values. Raising a failure (stopping a chain or recording it for later) is
// the job of the assert package.
//
// Rendering rules:
//   - nil values render as "null"
//   - strings are quoted
//   - slices and arrays render as [a, b, c]
//   - maps render as {k=v, ...} ordered by rendered key
//   - structs render as Name{Field:value, ...}
//   - types implementing Shower control their own rendering
package report
