package hash

import (
	"crypto"
	"errors"
	"strconv"

	// Link the algorithms this module supports into the binary; their
	// init functions register themselves with the crypto package. Git
	// still defaults to SHA-1: https://git-scm.com/docs/hash-function-transition
	//nolint:gosec
	_ "crypto/sha1"
	_ "crypto/sha256"
)

// ErrUnlinkedAlgorithm is returned when asked to hash with a
// crypto.Hash that has not been linked into the binary.
var ErrUnlinkedAlgorithm = errors.New("hash: algorithm not linked into the binary")

// treeHeader is the literal Git object-header prefix for a tree object,
// "tree <size>\0". This is the only object kind this module ever needs
// to hash, since it only needs the canonical empty-tree identifier; the
// tree's actual encoding is the sink's responsibility.
func treeHeader(size int64) []byte {
	h := make([]byte, 0, 16)
	h = append(h, "tree "...)
	h = append(h, strconv.FormatInt(size, 10)...)
	h = append(h, 0)
	return h
}

// EmptyTreeID returns the canonical identifier of the empty tree under
// algo: the hash of the Git object header for a zero-length tree. It is
// the "empty-tree" sentinel, recognized by IsEmptyTree so that
// descending into it never requires a TreeFinder round-trip.
func EmptyTreeID(algo crypto.Hash) (Hash, error) {
	if !algo.Available() {
		return Zero, ErrUnlinkedAlgorithm
	}

	h := algo.New()
	if _, err := h.Write(treeHeader(0)); err != nil {
		return Zero, err
	}

	return h.Sum(nil), nil
}

// IsEmptyTree reports whether id is the canonical empty-tree identifier
// under algo.
func IsEmptyTree(algo crypto.Hash, id Hash) (bool, error) {
	empty, err := EmptyTreeID(algo)
	if err != nil {
		return false, err
	}

	return id.Is(empty), nil
}

// PathHash hashes path directly, with no object header: it is the
// digest of the raw path bytes, used to key the pending-tree store. An
// empty path (the empty slice or nil) yields the "empty path hash"
// that keys the root tree.
func PathHash(algo crypto.Hash, path []byte) (Hash, error) {
	if !algo.Available() {
		return Zero, ErrUnlinkedAlgorithm
	}

	h := algo.New()
	if _, err := h.Write(path); err != nil {
		return Zero, err
	}

	return h.Sum(nil), nil
}

// EmptyPathHash is PathHash(algo, nil): the fixed key for the root tree.
func EmptyPathHash(algo crypto.Hash) (Hash, error) {
	return PathHash(algo, nil)
}
