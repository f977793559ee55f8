// Package gitoxide implements an in-memory tree editor for a
// content-addressed object database modeled after Git's tree objects:
// given a root Tree and a way to fetch existing trees by Identifier, it
// supports inserting, overwriting, and removing entries identified by
// slash-separated paths, then serializes only the changed subset of
// trees back to the database, producing a new root identifier.
//
// The object database itself, the on-disk encoding of trees, the hash
// algorithm implementation, and pack-file formats are all external
// collaborators: this package consumes a TreeFinder and emits through a
// caller-supplied Sink, and otherwise never touches storage directly.
package gitoxide

import (
	"github.com/ur4t/gitoxide/hash"
)

// Mode classifies an Entry. Only ModeTree is load-bearing for this
// package's logic (the tree/non-tree distinction); the others are
// carried so callers can round-trip real Git trees through the editor
// without losing information.
type Mode uint32

const (
	ModeTree       Mode = 0o040000 // directory
	ModeBlob       Mode = 0o100644 // regular file
	ModeExecutable Mode = 0o100755 // executable file
	ModeSymlink    Mode = 0o120000 // symbolic link
	ModeCommit     Mode = 0o160000 // submodule (gitlink)
)

// IsTree reports whether m denotes a tree-kind entry. Note this is an
// exact match, not a bitmask test: ModeCommit (0o160000) shares the
// 0o040000 bit with ModeTree but is not a tree.
func (m Mode) IsTree() bool {
	return m == ModeTree
}

// EntryKind is a coarse classification of an Entry: tree, or one of the
// non-tree kinds. Conversion to Mode is total.
type EntryKind uint8

const (
	KindBlob EntryKind = iota
	KindExecutable
	KindSymlink
	KindCommit
	KindTree
)

// Mode converts an EntryKind to its Mode. Conversion is total: every
// EntryKind value maps to exactly one Mode.
func (k EntryKind) Mode() Mode {
	switch k {
	case KindTree:
		return ModeTree
	case KindExecutable:
		return ModeExecutable
	case KindSymlink:
		return ModeSymlink
	case KindCommit:
		return ModeCommit
	default:
		return ModeBlob
	}
}

// IsTree reports whether k is KindTree.
func (k EntryKind) IsTree() bool {
	return k == KindTree
}

// Entry is one row of a Tree: a filename, its mode, and the identifier
// of the object it names. filename must not contain '/'. identifier may
// be hash.Zero, denoting an unresolved placeholder slot.
type Entry struct {
	Filename []byte
	Mode     Mode
	ID       hash.Hash
}

// IsTree reports whether e names a tree-kind child.
func (e Entry) IsTree() bool {
	return e.Mode.IsTree()
}

// IsNull reports whether e's identifier is the null placeholder.
func (e Entry) IsNull() bool {
	return e.ID.IsNull()
}

// Tree is an ordered sequence of Entries. The order is the canonical
// tree order (see compareEntryWithName and Sort in order.go); it is decoded from,
// and re-encoded by, the external object-database collaborators, never
// by this package.
type Tree struct {
	Entries []Entry
}
