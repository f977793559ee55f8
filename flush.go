package gitoxide

import (
	"context"

	"github.com/ur4t/gitoxide/hash"
)

// flushFrame is one stack entry of the post-order write walk: a tree
// pulled out of the pending store, the path it lives at relative to the
// root, and the index into parents where its own parent frame will be
// found once that ancestor is itself pushed back onto parents. noParent
// marks the root,
// which has no parent entry to patch.
type flushFrame struct {
	parentIdx int
	relaPath  []byte
	tree      *Tree
}

const noParent = -1

// Write drains every changed tree in post order, children before
// parents, calling sink once per non-root tree that still has entries
// after pruning null placeholders, and patches each parent's entry with
// the identifier sink returns. The root is always passed to sink, even
// when it is empty or unedited. Unchanged subtrees are left untouched
// and never reach sink. The returned identifier is always the (possibly
// unchanged) root's.
//
// A subtree that becomes empty is removed from its parent rather than
// written. The walk only probes tree-kind entries, so a pending subtree
// whose parent entry has since become a non-tree is never visited: it
// does not reach sink and is discarded when the pending state is reset.
//
// After Write returns successfully, the editor's pending state collapses
// back to just the new root, ready for further edits built on top of it;
// a later Write re-emits only that root and whatever was edited since.
func (e *Editor) Write(ctx context.Context, sink Sink) (hash.Hash, error) {
	if len(e.trees) == 0 {
		return hash.Zero, ErrNothingToWrite
	}

	rootKey, err := hash.EmptyPathHash(e.algo)
	if err != nil {
		return hash.Zero, err
	}

	root, ok := e.trees.remove(rootKey)
	if !ok {
		panic("gitoxide: root tree is always present")
	}

	parents := []flushFrame{{parentIdx: noParent, relaPath: nil, tree: root}}
	var children []flushFrame

	for {
		var frame flushFrame
		if n := len(children); n > 0 {
			frame, children = children[n-1], children[:n-1]
		} else if n := len(parents); n > 0 {
			frame, parents = parents[n-1], parents[:n-1]
		} else {
			break
		}

		allUnchangedOrWritten := true
		relaPath := frame.relaPath

		for _, entry := range frame.tree.Entries {
			if !entry.IsTree() {
				continue
			}

			var priorLen int
			relaPath, priorLen = pushPathComponent(relaPath, entry.Filename)

			pathKey, err := hash.PathHash(e.algo, relaPath)
			if err != nil {
				return hash.Zero, err
			}

			if sub, ok := e.trees.remove(pathKey); ok {
				allUnchangedOrWritten = false
				children = append(children, flushFrame{
					parentIdx: len(parents),
					relaPath:  append([]byte(nil), relaPath...),
					tree:      sub,
				})
			}

			relaPath = relaPath[:priorLen]
		}

		if !allUnchangedOrWritten {
			parents = append(parents, flushFrame{
				parentIdx: frame.parentIdx,
				relaPath:  relaPath,
				tree:      frame.tree,
			})

			continue
		}

		frame.tree.Entries = pruneNullEntries(frame.tree.Entries)

		switch {
		case frame.parentIdx != noParent:
			parent := &parents[frame.parentIdx]

			name := basename(relaPath)
			idx, found := parent.tree.search(name, true)
			if !found {
				panic("gitoxide: parent always knows its child by name")
			}

			if len(frame.tree.Entries) == 0 {
				parent.tree.Entries = append(parent.tree.Entries[:idx], parent.tree.Entries[idx+1:]...)
				continue
			}

			id, err := sink(ctx, frame.tree)
			if err != nil {
				return hash.Zero, err
			}

			parent.tree.Entries[idx].ID = id

		case len(parents) == 0:
			id, err := sink(ctx, frame.tree)
			if err != nil {
				return hash.Zero, err
			}

			e.trees.clear()
			e.trees.insert(rootKey, frame.tree)

			return id, nil

		case len(frame.tree.Entries) != 0:
			if _, err := sink(ctx, frame.tree); err != nil {
				return hash.Zero, err
			}
		}
	}

	panic("gitoxide: write loop exits only by returning the root's identifier")
}

// pruneNullEntries drops every entry whose identifier is still the null
// placeholder: these are Upsert-created intermediate slots that were
// never resolved to a real object before Write ran, and Git trees must
// not name them.
func pruneNullEntries(entries []Entry) []Entry {
	kept := entries[:0]
	for _, e := range entries {
		if !e.IsNull() {
			kept = append(kept, e)
		}
	}

	return kept
}
