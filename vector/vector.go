package vector

// NewVector2 creates a Vector2 from its two components.
func NewVector2[T any](x, y T) Vector2[T] {
	return Vector2[T]{
		X: x,
		Y: y,
	}
}

// Vector2 is a pair of values of the same type.
type Vector2[T any] struct {
	X T
	Y T
}

// String returns a representation of the form "Vector2(x,y)".
func (v Vector2[T]) String() string {
	return format("Vector2", v.X, v.Y)
}

// NewVector3 creates a Vector3 from its three components.
func NewVector3[T any](x, y, z T) Vector3[T] {
	return Vector3[T]{
		X: x,
		Y: y,
		Z: z,
	}
}

// Vector3 is a triple of values of the same type.
type Vector3[T any] struct {
	X T
	Y T
	Z T
}

// String returns a representation of the form "Vector3(x,y,z)".
func (v Vector3[T]) String() string {
	return format("Vector3", v.X, v.Y, v.Z)
}
