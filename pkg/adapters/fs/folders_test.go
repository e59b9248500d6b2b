package fs

import (
	"strconv"
	"testing"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence() TokenFunc {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func TestResolveFolderNames(t *testing.T) {
	mk := func(name, folder string) *core.Basket {
		b, err := core.NewBasket(name, core.BasketFolder(folder))
		require.NoError(t, err)
		return b
	}

	root := mk("Root", "root")
	dup := mk("Dup", "root")
	empty := mk("Empty", "")
	dot := mk("Dot", "..")
	slash := mk("Slash", "a/b")
	require.NoError(t, root.AddChild(dup))
	require.NoError(t, root.AddChild(empty))
	f := core.Forest{Baskets: []*core.Basket{root, dot, slash}}

	renamed := ResolveFolderNames(f, sequence())
	assert.Equal(t, 4, renamed)
	assert.Equal(t, "root", root.FolderName())
	assert.Equal(t, "basket-1", dup.FolderName())
	assert.Equal(t, "basket-2", empty.FolderName())
	assert.Equal(t, "basket-3", dot.FolderName())
	assert.Equal(t, "basket-4", slash.FolderName())
	assert.Equal(t, "", empty.SuggestedFolderName(), "the suggestion is kept")

	t.Run("Idempotent", func(t *testing.T) {
		before := make([]string, 0)
		for _, b := range f.Flatten() {
			before = append(before, b.FolderName())
		}

		assert.Equal(t, 0, ResolveFolderNames(f, sequence()))

		for i, b := range f.Flatten() {
			assert.Equal(t, before[i], b.FolderName())
		}
	})

	t.Run("Token Collision", func(t *testing.T) {
		taken := mk("Taken", "basket-1")
		fresh := mk("Fresh", "")
		g := core.Forest{Baskets: []*core.Basket{taken, fresh}}

		assert.Equal(t, 1, ResolveFolderNames(g, sequence()))
		assert.Equal(t, "basket-2", fresh.FolderName())
	})
}

func TestUUIDToken(t *testing.T) {
	a, b := UUIDToken(), UUIDToken()
	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}
