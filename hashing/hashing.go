// Package hashing lets values describe their own contents to a hash.Hash so
// that they can be fingerprinted and compared by digest.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
// Sha256, XXH3 and XXH64 are all HashFuncs, so callers can pick the
// trade-off between collision resistance and speed.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hash of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hash, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// XXH3 returns the 64-bit XXH3 hash of the given Hashable as a hex-encoded
// string. It is much faster than Sha256 and suitable for in-memory
// deduplication, not for anything adversarial.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXH64 returns the classic 64-bit xxHash of the given Hashable as a
// hex-encoded string.
func XXH64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
