// Package differ explains why two ordered sequences differ.
//
// Membership is presence based: an element counts as found when any element
// of the other sequence is equal to it, regardless of how many times either
// side repeats it. Equality is supplied by the caller so that presence tests
// use the same comparison as top-level equality.
package differ
