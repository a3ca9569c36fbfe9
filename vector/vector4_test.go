package vector_test

import (
	"testing"
	"unsafe"

	"github.com/amp-labs/amp-vector/vector"
	"github.com/stretchr/testify/assert"
)

func TestNewVector4(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		v := vector.NewVector4(1, 2, 3, 4)

		assert.Equal(t, 1, v.X)
		assert.Equal(t, 2, v.Y)
		assert.Equal(t, 3, v.Z)
		assert.Equal(t, 4, v.W)
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()

		v := vector.NewVector4[float32](-1.5, 0, 2.25, 1e30)

		assert.Equal(t, vector.Vector4[float32]{X: -1.5, Y: 0, Z: 2.25, W: 1e30}, v)
	})

	t.Run("uint8 color", func(t *testing.T) {
		t.Parallel()

		v := vector.NewVector4[uint8](255, 128, 0, 255)

		assert.Equal(t, [4]uint8{255, 128, 0, 255}, v.Components())
	})

	// Regression: z was once initialized from the second argument.
	t.Run("third field comes from the third argument", func(t *testing.T) {
		t.Parallel()

		v := vector.NewVector4(10, 20, 30, 40)

		assert.Equal(t, 30, v.Z)
		assert.NotEqual(t, v.Y, v.Z)
	})
}

func TestFromVector2(t *testing.T) {
	t.Parallel()

	v := vector.FromVector2(vector.NewVector2(7, -8))

	assert.Equal(t, vector.NewVector4(7, -8, 0, 0), v)

	f := vector.FromVector2(vector.NewVector2[float64](0.5, 1.5))

	assert.Equal(t, vector.NewVector4(0.5, 1.5, 0, 0), f)
}

func TestFromVector3(t *testing.T) {
	t.Parallel()

	v := vector.FromVector3(vector.NewVector3[uint16](1, 2, 3))

	assert.Equal(t, vector.NewVector4[uint16](1, 2, 3, 0), v)
}

func TestFromVector4(t *testing.T) {
	t.Parallel()

	src := vector.NewVector4(1, 2, 3, 4)
	dst := vector.FromVector4(src)

	assert.Equal(t, src, dst)

	dst.X = 100

	assert.Equal(t, 1, src.X, "copy must not alias the source")
}

func TestAssign(t *testing.T) {
	t.Parallel()

	t.Run("from Vector2 clears Z and W", func(t *testing.T) {
		t.Parallel()

		v := vector.NewVector4(9, 9, 9, 9)
		ret := v.AssignVector2(vector.NewVector2(1, 2))

		assert.Equal(t, vector.NewVector4(1, 2, 0, 0), v)
		assert.Same(t, &v, ret)
	})

	t.Run("from Vector3 clears W", func(t *testing.T) {
		t.Parallel()

		v := vector.NewVector4[float32](9, 9, 9, 9)
		ret := v.AssignVector3(vector.NewVector3[float32](1, 2, 3))

		assert.Equal(t, vector.NewVector4[float32](1, 2, 3, 0), v)
		assert.Same(t, &v, ret)
	})

	t.Run("chained", func(t *testing.T) {
		t.Parallel()

		a := vector.NewVector4(1, 2, 3, 4)

		var b, c vector.Vector4[int]

		c.Assign(*b.Assign(a))

		assert.Equal(t, a, b)
		assert.Equal(t, a, c)
	})

	t.Run("chained widening", func(t *testing.T) {
		t.Parallel()

		var b, c vector.Vector4[int]

		c.Assign(*b.AssignVector3(vector.NewVector3(5, 6, 7)))

		assert.Equal(t, vector.NewVector4(5, 6, 7, 0), c)
	})
}

func TestLayout(t *testing.T) {
	t.Parallel()

	var f vector.Vector4[float32]

	assert.Equal(t, uintptr(0), unsafe.Offsetof(f.X))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(f.Y))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(f.Z))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(f.W))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(f))

	var b vector.Vector4[int8]

	assert.Equal(t, uintptr(4), unsafe.Sizeof(b))

	var d vector.Vector4[float64]

	assert.Equal(t, 4*unsafe.Sizeof(d.X), unsafe.Sizeof(d))
}
