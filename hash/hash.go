// Package hash implements the Identifier model of the tree editor: a
// fixed-width, content-addressed hash with a distinguished null value
// and support for computing the canonical empty-tree id and path hashes
// under a caller-chosen crypto.Hash algorithm.
//
// It is adapted from nanogit's protocol/hash package, narrowed to what
// the tree editor needs: it has no notion of the full Git object zoo
// (commits, blobs, tags), only of the "tree" header required to compute
// the empty-tree sentinel, and of raw, headerless digests for path
// hashing.
package hash

import (
	"encoding/hex"
	"slices"
)

// Hash is a content-addressed identifier. Its width depends on the
// algorithm that produced it; this package places no constraint on
// length so callers can mix SHA-1 and SHA-256 identifiers, though a
// single Editor session should use one consistently.
type Hash []byte

// Zero is the null identifier: the distinguished placeholder value
// denoting an unresolved slot. It is never written as a real object.
var Zero Hash

// IsNull reports whether h is the null placeholder.
func (h Hash) IsNull() bool {
	return len(h) == 0
}

// FromHex decodes a hex-encoded identifier. An empty string decodes to
// Zero.
func FromHex(hs string) (Hash, error) {
	if len(hs) == 0 {
		return Zero, nil
	}

	b, err := hex.DecodeString(hs)
	if err != nil {
		return Zero, err
	}

	return Hash(b), nil
}

// MustFromHex is like FromHex but panics on an invalid hex string. It is
// intended for tests and other call sites where the string is known
// good.
func MustFromHex(hs string) Hash {
	h, err := FromHex(hs)
	if err != nil {
		panic(err)
	}

	return h
}

// String returns the lowercase hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h)
}

// Is reports whether h and other carry the same bytes.
func (h Hash) Is(other Hash) bool {
	return slices.Equal(h, other)
}
