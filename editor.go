package gitoxide

import (
	"context"
	"crypto"

	"github.com/ur4t/gitoxide/hash"
	"github.com/ur4t/gitoxide/log"
)

// Editor holds the state needed to apply edits to an in-memory tree and
// flush only what changed. Each tree it touches is looked up via find
// at most once, then held in trees until the next Write, which drains
// trees back out in a single post-order pass and keeps only the new
// root; trees needed again after that are looked up anew.
//
// An Editor is not safe for concurrent use. It has no internal
// concurrency, and callers touching the same Editor from multiple
// goroutines must serialize themselves.
type Editor struct {
	algo crypto.Hash
	find TreeFinder

	trees   pendingStore
	pathBuf []byte
	treeBuf []byte
}

// New creates an Editor that edits root, fetching any tree it needs but
// hasn't seen yet through find. algo selects the hash algorithm used
// for path hashing and for recognizing the canonical empty tree; it
// must be linked into the binary.
func New(algo crypto.Hash, root Tree, find TreeFinder) (*Editor, error) {
	rootKey, err := hash.EmptyPathHash(algo)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		algo:    algo,
		find:    find,
		trees:   newPendingStore(),
		pathBuf: make([]byte, 0, 256),
		treeBuf: make([]byte, 0, 512),
	}
	e.trees.insert(rootKey, &root)

	return e, nil
}

// SetRoot replaces the tree under edit with root, discarding every
// pending edit accumulated so far. It is for reusing one Editor across
// unrelated trees.
func (e *Editor) SetRoot(root Tree) error {
	rootKey, err := hash.EmptyPathHash(e.algo)
	if err != nil {
		return err
	}

	e.trees.clear()
	e.trees.insert(rootKey, &root)

	return nil
}

// Upsert inserts or overwrites the entry named by path (its components,
// in descending order, e.g. []string{"a", "b", "c"} for "a/b/c") with
// the given kind and identifier. Matching is case-sensitive.
//
// Existing leaf entries are overwritten unconditionally. id may be
// hash.Zero to create a placeholder that Write will never emit and that
// does not block traversal through it. Intermediate path components are
// created as trees if they don't already exist, fetched through the
// Editor's TreeFinder otherwise.
func (e *Editor) Upsert(ctx context.Context, path []string, kind EntryKind, id hash.Hash) error {
	return e.upsertOrRemove(ctx, path, &editKindAndID{kind: kind, id: id})
}

// Remove deletes the entry at path, loading intermediate trees along
// the way as needed. It is not an error if path does not resolve to an
// existing entry.
func (e *Editor) Remove(ctx context.Context, path []string) error {
	return e.upsertOrRemove(ctx, path, nil)
}

// editKindAndID carries an Upsert's new classification and identifier
// through upsertOrRemove; its absence (a nil *editKindAndID) signals a
// Remove.
type editKindAndID struct {
	kind EntryKind
	id   hash.Hash
}

// upsertOrRemove is the shared driver behind Upsert and Remove: it
// walks path component by component from the root, resolving each
// component against the current cursor tree with the dual is_tree probe
// (order.go's lookup), descending into or creating subtrees as needed,
// and at the final component applying editAndID (or, if nil, removing
// the resolved entry). It mirrors gix-object's upsert_or_remove.
func (e *Editor) upsertOrRemove(ctx context.Context, path []string, editAndID *editKindAndID) error {
	rootKey, err := hash.EmptyPathHash(e.algo)
	if err != nil {
		return err
	}

	cursor, ok := e.trees.get(rootKey)
	if !ok {
		panic("gitoxide: root tree is always present")
	}

	e.pathBuf = e.pathBuf[:0]
	newKindIsTree := editAndID != nil && editAndID.kind.IsTree()

	for i, name := range path {
		isLast := i == len(path)-1
		nameBytes := []byte(name)
		currentLevelMustBeTree := !isLast || newKindIsTree

		idx, found := cursor.lookup(nameBytes, currentLevelMustBeTree)

		var treeToDescendInto hash.Hash
		haveTreeToDescendInto := false

		if found {
			entry := &cursor.Entries[idx]
			needsSorting := false

			switch {
			case editAndID == nil:
				if isLast {
					cursor.Entries = append(cursor.Entries[:idx], cursor.Entries[idx+1:]...)
					return nil
				}

				if !entry.IsTree() {
					return nil
				}

				treeToDescendInto, haveTreeToDescendInto = entry.ID, true

			case isLast:
				entry.ID = editAndID.id
				needsSorting = entry.Mode.IsTree() != currentLevelMustBeTree
				entry.Mode = editAndID.kind.Mode()

			case entry.IsTree():
				treeToDescendInto, haveTreeToDescendInto = entry.ID, true

			default:
				entry.ID = hash.Zero
				needsSorting = entry.Mode.IsTree() != currentLevelMustBeTree
				entry.Mode = KindTree.Mode()
			}

			if needsSorting {
				cursor.Sort()
			}
		} else {
			if editAndID == nil {
				return nil
			}

			newEntry := Entry{Filename: append([]byte(nil), nameBytes...)}
			if isLast {
				newEntry.Mode = editAndID.kind.Mode()
				newEntry.ID = editAndID.id
			} else {
				newEntry.Mode = KindTree.Mode()
				newEntry.ID = hash.Zero
			}

			cursor.Entries = append(cursor.Entries, Entry{})
			copy(cursor.Entries[idx+1:], cursor.Entries[idx:])
			cursor.Entries[idx] = newEntry

			if isLast {
				return nil
			}
		}

		if isLast {
			return nil
		}

		e.pathBuf, _ = pushPathComponent(e.pathBuf, nameBytes)

		pathKey, err := hash.PathHash(e.algo, e.pathBuf)
		if err != nil {
			return err
		}

		next, ok := e.trees.get(pathKey)
		if !ok {
			sub, err := e.resolveSubtree(ctx, treeToDescendInto, haveTreeToDescendInto)
			if err != nil {
				return err
			}

			next = sub
			e.trees.insert(pathKey, next)
		}

		cursor = next
	}

	return nil
}

// resolveSubtree produces the Tree a path component should descend
// into: an empty tree if there is nothing to look up or the identifier
// names the canonical empty tree, otherwise whatever find.FindTree
// returns.
func (e *Editor) resolveSubtree(ctx context.Context, id hash.Hash, have bool) (*Tree, error) {
	if !have || id.IsNull() {
		return &Tree{}, nil
	}

	isEmpty, err := hash.IsEmptyTree(e.algo, id)
	if err != nil {
		return nil, err
	}

	if isEmpty {
		return &Tree{}, nil
	}

	log.FromContext(ctx).Debug("fetching tree", "id", id.String())

	e.treeBuf = e.treeBuf[:0]
	t, err := e.find.FindTree(ctx, id, e.treeBuf)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
