package vector

import (
	"encoding/json"
	"fmt"

	"github.com/amp-labs/amp-vector/errors"
	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the vector as a flow sequence, e.g. "[1, 2, 3, 4]".
func (v Vector4[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{}

	if err := node.Encode(v.Components()); err != nil {
		return nil, err
	}

	node.Style = yaml.FlowStyle

	return node, nil
}

// UnmarshalYAML reads a sequence of exactly four items.
func (v *Vector4[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T

	if err := value.Decode(&items); err != nil {
		return err
	}

	return v.assignItems(items)
}

// MarshalJSON renders the vector as a JSON array of four items.
func (v Vector4[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Components())
}

// UnmarshalJSON reads a JSON array of exactly four items.
func (v *Vector4[T]) UnmarshalJSON(data []byte) error {
	var items []T

	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	return v.assignItems(items)
}

func (v *Vector4[T]) assignItems(items []T) error {
	if len(items) != Size {
		return fmt.Errorf("%w: got %d, want %d", errors.ErrComponentCount, len(items), Size)
	}

	v.X = items[0]
	v.Y = items[1]
	v.Z = items[2]
	v.W = items[3]

	return nil
}
