// Package vector provides small generic fixed-arity tuples: Vector2, Vector3
// and Vector4.
//
// # Overview
//
// Vector4 holds four values of the same element type in the exported
// fields X, Y, Z and W. It is commonly used for homogeneous 3D coordinates,
// RGBA colors or quaternion-like data. The package covers construction,
// widening from Vector2 and Vector3, conversion between element types,
// array-style component access and formatting. Arithmetic is deliberately
// left to callers.
//
// # Layout
//
// The four fields are declared in order and share one type, so they are
// contiguous with no padding between them. Array, UnsafeAt, Flatten and
// Unflatten rely on that: component i lives at &v.X + i*sizeof(T).
//
// # Conversions
//
// Go has no implicit numeric conversions. Assign and FromVector4 copy
// element by element, so they only compile when both vectors share an
// element type. Widenings that never lose precision are available as
// ToFloat64, ToFloat32, ToInt64 and ToUint64, whose constraints reject
// lossy source types at compile time:
//
//	f := vector.NewVector4[float32](1.5, 2.5, 3.5, 4.5)
//	d := vector.ToFloat64(f) // Vector4[float64]{1.5, 2.5, 3.5, 4.5}
//
//	i := vector.NewVector4[int64](1, 2, 3, 4)
//	_ = vector.ToFloat64(i) // does not compile: int64 does not fit in float64
//
// Anything else goes through ConvertExact, which checks every component at
// runtime and reports the ones that do not survive the round trip.
//
// # Formatting
//
// String renders "Vector4(x,y,z,w)". Integers are printed in base 10 and
// floats in fixed notation with six decimals, so Vector4[float32]{1, 2, 3, 4}
// prints as "Vector4(1.000000,2.000000,3.000000,4.000000)".
package vector
