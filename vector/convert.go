package vector

import (
	"fmt"
	"math"
	"reflect"

	"github.com/amp-labs/amp-vector/errors"
	"github.com/amp-labs/amp-vector/xform"
)

// Float64Exact matches the element types every value of which is exactly
// representable as a float64.
type Float64Exact interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// Float32Exact matches the element types every value of which is exactly
// representable as a float32.
type Float32Exact interface {
	~float32 | ~int8 | ~int16 | ~uint8 | ~uint16
}

// Int64Exact matches the element types every value of which fits in an int64.
type Int64Exact interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Uint64Exact matches the element types every value of which fits in a uint64.
type Uint64Exact interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ToFloat64 widens every component to float64. The constraint admits only
// source types that convert without loss, so a lossy call fails to compile.
func ToFloat64[T Float64Exact](v Vector4[T]) Vector4[float64] {
	return Vector4[float64]{
		X: float64(v.X),
		Y: float64(v.Y),
		Z: float64(v.Z),
		W: float64(v.W),
	}
}

// ToFloat32 widens every component to float32 without loss.
func ToFloat32[T Float32Exact](v Vector4[T]) Vector4[float32] {
	return Vector4[float32]{
		X: float32(v.X),
		Y: float32(v.Y),
		Z: float32(v.Z),
		W: float32(v.W),
	}
}

// ToInt64 widens every component to int64 without loss.
func ToInt64[T Int64Exact](v Vector4[T]) Vector4[int64] {
	return Vector4[int64]{
		X: int64(v.X),
		Y: int64(v.Y),
		Z: int64(v.Z),
		W: int64(v.W),
	}
}

// ToUint64 widens every component to uint64 without loss.
func ToUint64[T Uint64Exact](v Vector4[T]) Vector4[uint64] {
	return Vector4[uint64]{
		X: uint64(v.X),
		Y: uint64(v.Y),
		Z: uint64(v.Z),
		W: uint64(v.W),
	}
}

// ConvertExact converts a vector between any two numeric element types,
// checking each component at runtime. A component is accepted when it
// converts back to the original value with the same sign; NaN is accepted
// when the target is a float type. Every rejected component is reported,
// each wrapping errors.ErrLossyConversion.
//
// Example:
//
//	v, err := vector.ConvertExact[float32](vector.NewVector4(0.5, 1.0, 2.0, 0.1))
//	// err: lossy conversion: W=0.1 cannot be represented as float32
func ConvertExact[T, T2 xform.Numeric](rhs Vector4[T2]) (Vector4[T], error) {
	var (
		out  Vector4[T]
		errs errors.Collection
	)

	out.X = convertComponent[T]("X", rhs.X, &errs)
	out.Y = convertComponent[T]("Y", rhs.Y, &errs)
	out.Z = convertComponent[T]("Z", rhs.Z, &errs)
	out.W = convertComponent[T]("W", rhs.W, &errs)

	if errs.HasError() {
		return Vector4[T]{}, errs.GetError()
	}

	return out, nil
}

func convertComponent[T, T2 xform.Numeric](name string, src T2, errs *errors.Collection) T { //nolint:ireturn
	if inIntegerRange[T](src) {
		dst := T(src)

		switch {
		case src != src && dst != dst: //nolint:gocritic // NaN survives only into floats
			return dst
		case inIntegerRange[T2](dst) && T2(dst) == src && (src < 0) == (dst < 0):
			return dst
		}
	}

	errs.Add(fmt.Errorf("%w: %s=%v cannot be represented as %s",
		errors.ErrLossyConversion, name, src, reflect.TypeFor[T]()))

	var zeroVal T

	return zeroVal
}

// inIntegerRange reports whether a float src lies inside the range of T
// when T is an integer type. Out-of-range float to integer conversions are
// implementation-defined in Go, so they must not be attempted, neither
// forwards nor on the way back. Non-float sources and float targets always
// pass.
func inIntegerRange[T, T2 xform.Numeric](src T2) bool {
	if kind := reflect.TypeFor[T2]().Kind(); kind != reflect.Float32 && kind != reflect.Float64 {
		return true
	}

	target := reflect.TypeFor[T]()
	bits := int(target.Size()) * 8 //nolint:mnd
	f := float64(src)

	switch target.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		limit := math.Ldexp(1, bits-1)

		return f >= -limit && f < limit
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return f >= 0 && f < math.Ldexp(1, bits)
	default:
		return true
	}
}
