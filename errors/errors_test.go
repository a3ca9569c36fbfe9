package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(ErrLossyConversion)
		c.Add(ErrIndexOutOfRange)

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrComponentCount)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection returns nil", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as-is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		wrapped := fmt.Errorf("%w: component Y", ErrLossyConversion)
		c.Add(wrapped)

		assert.Equal(t, wrapped, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: component X", ErrLossyConversion))
		c.Add(fmt.Errorf("%w: component W", ErrLossyConversion))

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrLossyConversion)
		assert.Contains(t, err.Error(), "component X")
		assert.Contains(t, err.Error(), "component W")
		assert.NotErrorIs(t, err, ErrIndexOutOfRange)
	})
}
