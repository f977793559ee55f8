package gitoxide

import (
	"context"

	"github.com/ur4t/gitoxide/hash"
)

// TreeFinder is the editor's only read path into the object database.
// FindTree must populate scratch with the encoded bytes of the tree
// named by id and return the decoded Tree, or return an error wrapped
// as *NotFoundError or *DecodeError, matching ErrNotFound or ErrDecode
// via errors.Is, so callers can distinguish "doesn't exist" from
// "exists but unreadable". The error is propagated unchanged to the
// caller of Upsert/Remove.
//
// The object database itself, and the on-disk encoding FindTree must
// decode, are out of scope for this package: FindTree is the seam.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o internal/treefinderfakes/treefinder.go . TreeFinder
type TreeFinder interface {
	FindTree(ctx context.Context, id hash.Hash, scratch []byte) (Tree, error)
}

// Sink is invoked once per emitted Tree during Write, children before
// parents. It returns the identifier the tree was written under, or an
// error that aborts the write and is returned from Write unchanged;
// there is no rollback of the pending store.
type Sink func(ctx context.Context, t *Tree) (hash.Hash, error)
