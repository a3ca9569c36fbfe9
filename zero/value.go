// Package zero provides utilities for working with zero values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T.
// Widening a Vector2 or Vector3 into a Vector4 fills the missing trailing
// components with this value.
//
// Example:
//
//	var defaultInt = zero.Value[int]()         // returns 0
//	var defaultF32 = zero.Value[float32]()     // returns 0.0
//	var defaultPtr = zero.Value[*MyStruct]()   // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It uses reflect.DeepEqual, so negative zero floats count as zero and
// NaN never does.
//
// Example:
//
//	zero.IsZero(0)              // returns true
//	zero.IsZero(float32(-0.0))  // returns true
//	zero.IsZero(math.NaN())     // returns false
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}
