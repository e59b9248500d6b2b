package fs_test

import (
	"context"
	"testing"

	"github.com/aretw0/basketweave/pkg/adapters/fs"
	"github.com/aretw0/basketweave/pkg/core"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("Materialized Tree", func(t *testing.T) {
		mem := memfs.New()
		root := newBasket(t, "Root", core.BasketFolder("root"))
		require.NoError(t, root.AddChild(newBasket(t, "Child", core.BasketFolder("child"))))
		forest, err := core.NewForest([]*core.Basket{root}, nil)
		require.NoError(t, err)

		d := fs.NewDirectory(fs.Config{FS: mem})
		require.NoError(t, d.Materialize(context.Background(), forest))
		require.NoError(t, d.Verify())

		require.NoError(t, mem.Remove("baskets/child/.basket"))
		err = d.Verify()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `basket "Child"`)
	})

	t.Run("Empty Directory", func(t *testing.T) {
		d := fs.NewDirectory(fs.Config{FS: memfs.New()})
		assert.Error(t, d.Verify())
	})

	t.Run("Wrong Root", func(t *testing.T) {
		mem := memfs.New()
		require.NoError(t, util.WriteFile(mem, "baskets/baskets.xml", []byte(`<?xml version="1.0"?><basket/>`), 0644))
		require.NoError(t, util.WriteFile(mem, "tags.xml", []byte(`<basketTags/>`), 0644))

		d := fs.NewDirectory(fs.Config{FS: mem})
		assert.Error(t, d.Verify())
	})

	t.Run("Missing Folder Name", func(t *testing.T) {
		mem := memfs.New()
		tree := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!DOCTYPE basketTree>\n<basketTree>\n <basket>\n  <properties>\n   <name>Lost</name>\n  </properties>\n </basket>\n</basketTree>\n"
		require.NoError(t, util.WriteFile(mem, "baskets/baskets.xml", []byte(tree), 0644))
		require.NoError(t, util.WriteFile(mem, "tags.xml", []byte(`<basketTags/>`), 0644))

		d := fs.NewDirectory(fs.Config{FS: mem})
		err := d.Verify()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `basket "Lost" has no folderName`)
	})
}
