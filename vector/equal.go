package vector

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"reflect"

	"github.com/amp-labs/amp-vector/compare"
	"github.com/amp-labs/amp-vector/errors"
	"github.com/amp-labs/amp-vector/hashing"
	"github.com/amp-labs/amp-vector/xform"
)

// Compile-time checks that Vector4 can be compared and hashed.
var (
	_ compare.Comparable[Vector4[int]] = Vector4[int]{}
	_ hashing.Hashable                 = Vector4[int]{}
)

// Equals reports whether every component of v equals the matching
// component of other. Floats compare with ==, so NaN components are never
// equal and 0 equals -0.
func (v Vector4[T]) Equals(other Vector4[T]) bool {
	return reflect.DeepEqual(v, other)
}

// ApproxEquals reports whether every pair of components differs by no more
// than epsilon.
func ApproxEquals[F xform.Float](a, b Vector4[F], epsilon F) bool {
	return compare.Approx(a.X, b.X, epsilon) &&
		compare.Approx(a.Y, b.Y, epsilon) &&
		compare.Approx(a.Z, b.Z, epsilon) &&
		compare.Approx(a.W, b.W, epsilon)
}

// hashWidth is one kind tag plus four components of at most eight bytes.
const hashWidth = 1 + Size*8

// UpdateHash writes the element kind followed by the four components to h,
// little-endian. Integers are widened to 64 bits so that the digest does
// not depend on the platform size of int. Vectors that are Equal produce
// the same bytes; vectors of different element kinds never do.
func (v Vector4[T]) UpdateHash(h hash.Hash) error {
	kind := reflect.TypeFor[T]().Kind()

	buf := make([]byte, 0, hashWidth)
	buf = append(buf, byte(kind))

	components := v.Components()

	for i := range components {
		value := reflect.ValueOf(&components[i]).Elem()

		switch kind { //nolint:exhaustive
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			buf = binary.LittleEndian.AppendUint64(buf, uint64(value.Int())) //nolint:gosec
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			buf = binary.LittleEndian.AppendUint64(buf, value.Uint())
		case reflect.Float32:
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(normalizeZero(value.Float()))))
		case reflect.Float64:
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(normalizeZero(value.Float())))
		case reflect.Bool:
			if value.Bool() {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		default:
			return fmt.Errorf("%w: cannot hash %s", errors.ErrUnsupportedElement, reflect.TypeFor[T]())
		}
	}

	_, err := h.Write(buf)

	return err
}

// normalizeZero maps -0 to +0 so that values which compare equal hash equal.
func normalizeZero(f float64) float64 {
	if f == 0 {
		return 0
	}

	return f
}
