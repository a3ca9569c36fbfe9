package vector_test

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/amp-vector/errors"
	"github.com/amp-labs/amp-vector/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type vertex struct {
	Position vector.Vector4[float64] `json:"position" yaml:"position"`
	Color    vector.Vector4[uint8]   `json:"color"    yaml:"color"`
}

func TestVector4_YAML(t *testing.T) {
	t.Parallel()

	t.Run("flow sequence", func(t *testing.T) {
		t.Parallel()

		out, err := yaml.Marshal(vector.NewVector4(1, 2, 3, 4))
		require.NoError(t, err)
		assert.Equal(t, "[1, 2, 3, 4]\n", string(out))
	})

	t.Run("round trip inside a struct", func(t *testing.T) {
		t.Parallel()

		in := vertex{
			Position: vector.NewVector4(0.5, -1.25, 2, 1),
			Color:    vector.NewVector4[uint8](255, 128, 0, 255),
		}

		out, err := yaml.Marshal(in)
		require.NoError(t, err)
		assert.Contains(t, string(out), "color: [255, 128, 0, 255]")

		var decoded vertex

		require.NoError(t, yaml.Unmarshal(out, &decoded))
		assert.Equal(t, in, decoded)
	})

	t.Run("wrong component count", func(t *testing.T) {
		t.Parallel()

		var v vector.Vector4[int]

		err := yaml.Unmarshal([]byte("[1, 2, 3]"), &v)
		require.ErrorIs(t, err, errors.ErrComponentCount)
	})

	t.Run("wrong element type", func(t *testing.T) {
		t.Parallel()

		var v vector.Vector4[uint8]

		err := yaml.Unmarshal([]byte("[1, 2, 3, 300]"), &v)
		require.Error(t, err)
	})
}

func TestVector4_JSON(t *testing.T) {
	t.Parallel()

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		out, err := json.Marshal(vector.NewVector4[float32](1.5, 2, 3, 4))
		require.NoError(t, err)
		assert.JSONEq(t, "[1.5,2,3,4]", string(out))
	})

	t.Run("round trip inside a struct", func(t *testing.T) {
		t.Parallel()

		in := vertex{
			Position: vector.NewVector4(1.0, 2.0, 3.0, 1.0),
			Color:    vector.NewVector4[uint8](1, 2, 3, 4),
		}

		out, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"position":[1,2,3,1],"color":[1,2,3,4]}`, string(out))

		var decoded vertex

		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, in, decoded)
	})

	t.Run("wrong component count", func(t *testing.T) {
		t.Parallel()

		var v vector.Vector4[int]

		err := json.Unmarshal([]byte("[1,2,3,4,5]"), &v)
		require.ErrorIs(t, err, errors.ErrComponentCount)
	})
}
