package gitoxide

import (
	"bytes"
	"sort"
)

// compareEntryWithName implements the canonical tree order: compare
// the two filename byte strings lexicographically over their
// common prefix; on the first differing byte, standard byte comparison
// decides. If one name is a prefix of the other, the shorter name is
// extended with a synthetic '/' byte iff its entry is tree-kind,
// otherwise it is considered to end. The tree-kind flag therefore only
// affects the tie-break between a tree and a non-tree whose names are
// prefix-related.
//
// This mirrors gix-object's cmp_entry_with_name exactly, including its
// treatment of "ran off the end" as ordering below any present byte
// (including the synthetic '/') unless the run-off side is itself
// tree-kind.
func compareEntryWithName(e Entry, name []byte, isTree bool) int {
	common := min(len(e.Filename), len(name))
	if c := bytes.Compare(e.Filename[:common], name[:common]); c != 0 {
		return c
	}

	aByte, aOk := byteAfter(e.Filename, common, e.IsTree())
	bByte, bOk := byteAfter(name, common, isTree)

	switch {
	case !aOk && !bOk:
		return 0
	case !aOk:
		return -1
	case !bOk:
		return 1
	default:
		return int(aByte) - int(bByte)
	}
}

// byteAfter returns the byte of s at index common, or, if s ends there
// and treeKind is set, a synthetic '/'. ok is false only when s ends at
// common and treeKind is false.
func byteAfter(s []byte, common int, treeKind bool) (b byte, ok bool) {
	if common < len(s) {
		return s[common], true
	}

	if treeKind {
		return '/', true
	}

	return 0, false
}

// search returns the index where an entry named name with the given
// is_tree classification either is (found == true) or would be inserted
// to preserve canonical order (found == false).
func (t *Tree) search(name []byte, isTree bool) (idx int, found bool) {
	idx = sort.Search(len(t.Entries), func(i int) bool {
		return compareEntryWithName(t.Entries[i], name, isTree) >= 0
	})

	if idx < len(t.Entries) && compareEntryWithName(t.Entries[idx], name, isTree) == 0 {
		return idx, true
	}

	return idx, false
}

// lookup resolves name against t using the dual is_tree probe: first as
// a non-tree entry, then as a tree entry. If neither exists,
// the insertion index is the one appropriate to mustBeTree (the
// candidate's own classification), matching gix-object's
// upsert_or_remove resolution of a "miss" into a single insertion
// point.
func (t *Tree) lookup(name []byte, mustBeTree bool) (idx int, found bool) {
	if idx, ok := t.search(name, false); ok {
		return idx, true
	} else if treeIdx, ok := t.search(name, true); ok {
		return treeIdx, true
	} else if mustBeTree {
		return treeIdx, false
	} else {
		return idx, false
	}
}

// Sort restores canonical tree order after an in-place type change on a
// retained entry, the only mutation that can invalidate it; all
// insertions already land at the correct index via search, so this is
// only ever invoked as a targeted re-sort, not a blanket fix-up.
func (t *Tree) Sort() {
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return compareEntryWithName(t.Entries[i], t.Entries[j].Filename, t.Entries[j].IsTree()) < 0
	})
}
