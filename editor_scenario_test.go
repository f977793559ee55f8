package gitoxide_test

import (
	"context"
	"crypto"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ur4t/gitoxide"
	"github.com/ur4t/gitoxide/hash"
	"github.com/ur4t/gitoxide/internal/treefinderfakes"
)

func sinkCapture(calls *[]gitoxide.Tree) gitoxide.Sink {
	n := 0
	return func(_ context.Context, t *gitoxide.Tree) (hash.Hash, error) {
		*calls = append(*calls, *t)
		n++
		id := make(hash.Hash, 20)
		id[0] = byte(n)
		return id, nil
	}
}

// sinkToFinder is a Sink that, in addition to assigning each tree a
// fake id, registers the (id, tree) pair so a finder can resolve it
// back out on a later edit against the same pending store.
func sinkToFinder(salt byte, registry map[string]gitoxide.Tree) gitoxide.Sink {
	n := byte(0)
	return func(_ context.Context, t *gitoxide.Tree) (hash.Hash, error) {
		n++
		id := make(hash.Hash, 20)
		id[0] = salt
		id[1] = n
		registry[id.String()] = *t
		return id, nil
	}
}

var _ = Describe("Editor", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("flat insert", func() {
		It("writes one tree with the upserted entry", func() {
			finder := &treefinderfakes.FakeTreeFinder{}
			editor, err := gitoxide.New(crypto.SHA1, gitoxide.Tree{}, finder)
			Expect(err).NotTo(HaveOccurred())

			id := hash.MustFromHex("1111111111111111111111111111111111111111")
			Expect(editor.Upsert(ctx, []string{"a"}, gitoxide.KindBlob, id)).To(Succeed())

			var seen []gitoxide.Tree
			rootID, err := editor.Write(ctx, sinkCapture(&seen))
			Expect(err).NotTo(HaveOccurred())
			Expect(rootID).NotTo(BeEmpty())

			Expect(seen).To(HaveLen(1))
			Expect(seen[0].Entries).To(HaveLen(1))
			Expect(string(seen[0].Entries[0].Filename)).To(Equal("a"))
			Expect(seen[0].Entries[0].ID.Is(id)).To(BeTrue())
		})
	})

	Describe("nested create", func() {
		It("writes leaf, middle, then root in that order", func() {
			finder := &treefinderfakes.FakeTreeFinder{}
			editor, err := gitoxide.New(crypto.SHA1, gitoxide.Tree{}, finder)
			Expect(err).NotTo(HaveOccurred())

			x := hash.MustFromHex("2222222222222222222222222222222222222222")
			Expect(editor.Upsert(ctx, []string{"a", "b", "c"}, gitoxide.KindBlob, x)).To(Succeed())

			var seen []gitoxide.Tree
			_, err = editor.Write(ctx, sinkCapture(&seen))
			Expect(err).NotTo(HaveOccurred())

			Expect(seen).To(HaveLen(3))
			Expect(string(seen[0].Entries[0].Filename)).To(Equal("c"))
			Expect(string(seen[1].Entries[0].Filename)).To(Equal("b"))
			Expect(string(seen[2].Entries[0].Filename)).To(Equal("a"))
		})
	})

	Describe("type flip", func() {
		It("turns a blob entry into a tree and replaces it silently", func() {
			x := hash.MustFromHex("3333333333333333333333333333333333333333")
			root := gitoxide.Tree{Entries: []gitoxide.Entry{
				{Filename: []byte("foo"), Mode: gitoxide.ModeBlob, ID: x},
			}}

			finder := &treefinderfakes.FakeTreeFinder{}
			editor, err := gitoxide.New(crypto.SHA1, root, finder)
			Expect(err).NotTo(HaveOccurred())

			y := hash.MustFromHex("4444444444444444444444444444444444444444")
			Expect(editor.Upsert(ctx, []string{"foo", "bar"}, gitoxide.KindBlob, y)).To(Succeed())

			var seen []gitoxide.Tree
			_, err = editor.Write(ctx, sinkCapture(&seen))
			Expect(err).NotTo(HaveOccurred())

			Expect(seen).To(HaveLen(2))
			Expect(string(seen[0].Entries[0].Filename)).To(Equal("bar"))
			Expect(seen[0].Entries[0].ID.Is(y)).To(BeTrue())

			Expect(string(seen[1].Entries[0].Filename)).To(Equal("foo"))
			Expect(seen[1].Entries[0].Mode.IsTree()).To(BeTrue())
			Expect(seen[1].Entries[0].ID.Is(x)).To(BeFalse())
		})
	})

	Describe("reorder on type change", func() {
		It("keeps foo.txt ahead of foo once foo flips to tree kind", func() {
			blobX := hash.MustFromHex("6666666666666666666666666666666666666666")
			blobY := hash.MustFromHex("7777777777777777777777777777777777777777")
			root := gitoxide.Tree{Entries: []gitoxide.Entry{
				{Filename: []byte("foo"), Mode: gitoxide.ModeBlob, ID: blobX},
				{Filename: []byte("foo.txt"), Mode: gitoxide.ModeBlob, ID: blobY},
			}}

			finder := &treefinderfakes.FakeTreeFinder{}
			editor, err := gitoxide.New(crypto.SHA1, root, finder)
			Expect(err).NotTo(HaveOccurred())

			inner := hash.MustFromHex("8888888888888888888888888888888888888888")
			Expect(editor.Upsert(ctx, []string{"foo", "inner"}, gitoxide.KindBlob, inner)).To(Succeed())

			var seen []gitoxide.Tree
			_, err = editor.Write(ctx, sinkCapture(&seen))
			Expect(err).NotTo(HaveOccurred())

			root2 := seen[len(seen)-1]
			Expect(root2.Entries).To(HaveLen(2))
			Expect(string(root2.Entries[0].Filename)).To(Equal("foo.txt"))
			Expect(root2.Entries[0].Mode.IsTree()).To(BeFalse())
			Expect(string(root2.Entries[1].Filename)).To(Equal("foo"))
			Expect(root2.Entries[1].Mode.IsTree()).To(BeTrue())
		})
	})

	Describe("pruning cascade", func() {
		It("removes the now-empty ancestor chain instead of writing empty trees", func() {
			blobID := hash.MustFromHex("5555555555555555555555555555555555555555")
			finder := &treefinderfakes.FakeTreeFinder{}
			editor, err := gitoxide.New(crypto.SHA1, gitoxide.Tree{}, finder)
			Expect(err).NotTo(HaveOccurred())

			Expect(editor.Upsert(ctx, []string{"a", "b", "c"}, gitoxide.KindBlob, blobID)).To(Succeed())

			registry := map[string]gitoxide.Tree{}
			_, err = editor.Write(ctx, sinkToFinder(0x01, registry))
			Expect(err).NotTo(HaveOccurred())

			// Write dropped "a" and "a/b" from the pending store; removing
			// through them now requires fetching them back by the real
			// identifiers the first write just assigned.
			finder.FindTreeStub = func(_ context.Context, id hash.Hash, _ []byte) (gitoxide.Tree, error) {
				if t, ok := registry[id.String()]; ok {
					return t, nil
				}
				return gitoxide.Tree{}, gitoxide.NewNotFoundError(id)
			}

			Expect(editor.Remove(ctx, []string{"a", "b", "c"})).To(Succeed())

			var secondWrite []gitoxide.Tree
			rootID, err := editor.Write(ctx, sinkCapture(&secondWrite))
			Expect(err).NotTo(HaveOccurred())
			Expect(rootID).NotTo(BeEmpty())

			Expect(secondWrite).To(HaveLen(1))
			Expect(secondWrite[0].Entries).To(BeEmpty())
		})
	})

	Describe("null placeholder survival", func() {
		It("drops a null-id subtree entry instead of ever writing it", func() {
			finder := &treefinderfakes.FakeTreeFinder{}
			editor, err := gitoxide.New(crypto.SHA1, gitoxide.Tree{}, finder)
			Expect(err).NotTo(HaveOccurred())

			Expect(editor.Upsert(ctx, []string{"a", "b"}, gitoxide.KindTree, hash.Zero)).To(Succeed())

			var seen []gitoxide.Tree
			_, err = editor.Write(ctx, sinkCapture(&seen))
			Expect(err).NotTo(HaveOccurred())

			for _, t := range seen {
				for _, e := range t.Entries {
					Expect(e.IsNull()).To(BeFalse())
				}
			}
			Expect(finder.FindTreeCallCount()).To(Equal(0))
		})
	})
})
