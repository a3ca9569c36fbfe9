package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hashableBytes []byte

func (b hashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

var errUpdate = errors.New("update failed")

type failingHashable struct{}

func (failingHashable) UpdateHash(hash.Hash) error {
	return errUpdate
}

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty",
			input:    hashableBytes(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "hello",
			input:    hashableBytes("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHashFuncs(t *testing.T) {
	t.Parallel()

	funcs := map[string]struct {
		fn     HashFunc
		length int
	}{
		"sha256": {Sha256, 64},
		"xxh3":   {XXH3, 16},
		"xxh64":  {XXH64, 16},
	}

	for name, tt := range funcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := tt.fn(hashableBytes("Vector4(1,2,3,4)"))
			require.NoError(t, err)
			assert.Len(t, first, tt.length)

			again, err := tt.fn(hashableBytes("Vector4(1,2,3,4)"))
			require.NoError(t, err)
			assert.Equal(t, first, again)

			other, err := tt.fn(hashableBytes("Vector4(1,2,3,5)"))
			require.NoError(t, err)
			assert.NotEqual(t, first, other)

			_, err = tt.fn(failingHashable{})
			require.ErrorIs(t, err, errUpdate)
		})
	}
}
