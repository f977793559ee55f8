package gitoxide

import "github.com/ur4t/gitoxide/hash"

// pendingStore is the mapping from PathHash to a mutable Tree: the
// editor's in-memory set of every subtree that has been touched or
// materialized during edits, keyed by the hash of its path
// so that the store never needs to retain the path itself (and so that
// the write driver can discover "which subtrees of me are dirty" with
// one hash probe per tree-kind entry, rather than a pointer graph).
//
// This is adapted from nanogit's internal/storage.InMemoryStorage,
// narrowed to this package's Tree type and to the operations the editor
// actually needs (get, insert, remove, clear); nanogit's
// version additionally exposes GetAllKeys, which this package has no
// caller for.
type pendingStore map[string]*Tree

func newPendingStore() pendingStore {
	return make(pendingStore)
}

func (s pendingStore) get(key hash.Hash) (*Tree, bool) {
	t, ok := s[key.String()]
	return t, ok
}

func (s pendingStore) insert(key hash.Hash, t *Tree) {
	s[key.String()] = t
}

func (s pendingStore) remove(key hash.Hash) (*Tree, bool) {
	k := key.String()
	t, ok := s[k]
	if ok {
		delete(s, k)
	}

	return t, ok
}

func (s pendingStore) clear() {
	for k := range s {
		delete(s, k)
	}
}
