package vector

import (
	"fmt"
	"unsafe"

	"github.com/amp-labs/amp-vector/errors"
)

// Size is the number of components in a Vector4.
const Size = 4

// At returns a pointer to the component at index (0 for X, 1 for Y, 2 for
// Z, 3 for W). Writes through the pointer are visible in the named field.
// Any other index returns an error wrapping errors.ErrIndexOutOfRange.
func (v *Vector4[T]) At(index int) (*T, error) {
	switch index {
	case 0:
		return &v.X, nil
	case 1:
		return &v.Y, nil
	case 2: //nolint:mnd
		return &v.Z, nil
	case 3: //nolint:mnd
		return &v.W, nil
	default:
		return nil, fmt.Errorf("%w: %d (valid indices are 0 to %d)", errors.ErrIndexOutOfRange, index, Size-1)
	}
}

// Get returns the component at index. See At for the index mapping.
func (v Vector4[T]) Get(index int) (T, error) { //nolint:ireturn
	ptr, err := v.At(index)
	if err != nil {
		var zeroVal T

		return zeroVal, err
	}

	return *ptr, nil
}

// Set stores value in the component at index. See At for the index mapping.
func (v *Vector4[T]) Set(index int, value T) error {
	ptr, err := v.At(index)
	if err != nil {
		return err
	}

	*ptr = value

	return nil
}

// UnsafeAt returns a pointer to the component at index without any bounds
// check, by offsetting from the address of X. Passing an index outside
// [0, 3] is undefined behavior: the pointer refers to memory adjacent to
// the vector. Prefer At unless the check shows up in a profile.
func (v *Vector4[T]) UnsafeAt(index int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(&v.X), index*int(unsafe.Sizeof(v.X))))
}

// Array returns the vector viewed as an array. The array shares storage
// with the vector.
//
// Example:
//
//	v := vector.NewVector4(1, 2, 3, 4)
//	v.Array()[2] = 30 // v.Z == 30
func (v *Vector4[T]) Array() *[Size]T {
	return (*[Size]T)(unsafe.Pointer(v))
}

// Components returns a copy of the four components in X, Y, Z, W order.
func (v Vector4[T]) Components() [Size]T {
	return [Size]T{v.X, v.Y, v.Z, v.W}
}

// Flatten views a slice of vectors as a slice of their components, without
// copying. Element 4*i+j of the result is component j of vectors[i].
func Flatten[T any](vectors []Vector4[T]) []T {
	if len(vectors) == 0 {
		return nil
	}

	return unsafe.Slice(&vectors[0].X, Size*len(vectors))
}

// Unflatten views a slice of components as a slice of vectors, without
// copying. The length of components must be a multiple of four.
func Unflatten[T any](components []T) ([]Vector4[T], error) {
	if len(components)%Size != 0 {
		return nil, fmt.Errorf("%w: %d is not a multiple of %d", errors.ErrComponentCount, len(components), Size)
	}

	if len(components) == 0 {
		return nil, nil
	}

	return unsafe.Slice((*Vector4[T])(unsafe.Pointer(&components[0])), len(components)/Size), nil
}
