// Package compare provides utilities for comparing values.
package compare

import (
	"math"

	"github.com/amp-labs/amp-vector/xform"
)

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Approx reports whether a and b differ by no more than epsilon.
// Infinities are only close to an infinity of the same sign, and NaN is
// never close to anything.
func Approx[F xform.Float](a, b, epsilon F) bool {
	if a == b {
		return true
	}

	diff := math.Abs(float64(a) - float64(b))

	return diff <= float64(epsilon)
}
