// Package assertions provides the concrete checks for expect.
//
// Every check is built from the two primitives in package assert: Given reads
// a subject's value, Transform derives a new subject. Slice checks are
// written once for any S ~[]E instead of once per element type.
//
// Supported assertions:
//   - Equality (IsEqualTo, IsNotEqualTo), with a unified diff for multi-line strings
//   - Nil and boolean checks (IsNil, IsNotNil, IsTrue, IsFalse)
//   - Size and emptiness (Size, HasSize, HasSameSizeAs, IsEmpty, IsNotEmpty)
//   - Containment (Contains, ContainsAll, ContainsOnly, ContainsNone, ContainsExactly)
//   - Navigation (Index, Prop, Length, JSONPath) and per element checks (Each)
//   - JSON Schema validation (MatchesSchema) and snapshots (MatchesSnapshot)
package assertions
