package vector

import (
	"github.com/amp-labs/amp-vector/zero"
)

// Vector4 holds four values of the same type. Virtually any type may be
// used as the element type; numeric types get the richest support.
//
// The zero value is usable, but callers should treat a Vector4 that has
// not been explicitly set as having unspecified contents.
type Vector4[T any] struct {
	// X is the first component.
	X T
	// Y is the second component.
	Y T
	// Z is the third component.
	Z T
	// W is the fourth component.
	W T
}

// NewVector4 creates a Vector4, assigning x, y, z and w to the fields of
// the same name.
func NewVector4[T any](x, y, z, w T) Vector4[T] {
	return Vector4[T]{
		X: x,
		Y: y,
		Z: z,
		W: w,
	}
}

// FromVector2 widens a Vector2 into a Vector4. Z and W are set to the zero
// value of T.
func FromVector2[T any](rhs Vector2[T]) Vector4[T] {
	return Vector4[T]{
		X: rhs.X,
		Y: rhs.Y,
		Z: zero.Value[T](),
		W: zero.Value[T](),
	}
}

// FromVector3 widens a Vector3 into a Vector4. W is set to the zero value
// of T.
func FromVector3[T any](rhs Vector3[T]) Vector4[T] {
	return Vector4[T]{
		X: rhs.X,
		Y: rhs.Y,
		Z: rhs.Z,
		W: zero.Value[T](),
	}
}

// FromVector4 copies rhs element by element. The copy is plain assignment,
// never an explicit conversion, so it only compiles when rhs has the same
// element type. See ToFloat64 and friends for widening to another type.
func FromVector4[T any](rhs Vector4[T]) Vector4[T] {
	var v Vector4[T]

	v.X = rhs.X
	v.Y = rhs.Y
	v.Z = rhs.Z
	v.W = rhs.W

	return v
}

// AssignVector2 sets X and Y from rhs and clears Z and W.
// It returns the receiver so assignments can be chained.
func (v *Vector4[T]) AssignVector2(rhs Vector2[T]) *Vector4[T] {
	v.X = rhs.X
	v.Y = rhs.Y
	v.Z = zero.Value[T]()
	v.W = zero.Value[T]()

	return v
}

// AssignVector3 sets X, Y and Z from rhs and clears W.
// It returns the receiver so assignments can be chained.
func (v *Vector4[T]) AssignVector3(rhs Vector3[T]) *Vector4[T] {
	v.X = rhs.X
	v.Y = rhs.Y
	v.Z = rhs.Z
	v.W = zero.Value[T]()

	return v
}

// Assign copies every component of rhs into the receiver and returns the
// receiver, so that
//
//	c.Assign(*b.Assign(a))
//
// leaves both b and c equal to a.
func (v *Vector4[T]) Assign(rhs Vector4[T]) *Vector4[T] {
	v.X = rhs.X
	v.Y = rhs.Y
	v.Z = rhs.Z
	v.W = rhs.W

	return v
}

// String returns a representation of the form "Vector4(x,y,z,w)".
// Signed and unsigned integers are printed in base 10, float32 and float64
// in fixed notation with six decimals.
func (v Vector4[T]) String() string {
	return format("Vector4", v.X, v.Y, v.Z, v.W)
}
