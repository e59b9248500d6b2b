package platform_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/basketweave/internal/platform"
	"github.com/aretw0/basketweave/pkg/adapters/fs"
	"github.com/aretw0/basketweave/pkg/core"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestDoc = `
output: out/Welcome.baskets
resources:
  icons: ["icons/*.svg"]
baskets:
  - name: Welcome
    folder: welcome
    notes:
      - type: text
        content: hello
`

func TestNew(t *testing.T) {
	t.Run("Requires Path Or Filesystem", func(t *testing.T) {
		_, err := platform.New("")
		assert.Error(t, err)

		dir, err := platform.New("", platform.WithFilesystem(memfs.New()))
		require.NoError(t, err)
		assert.Equal(t, fs.PhaseEmpty, dir.Phase())
	})

	t.Run("Options Reach The Directory", func(t *testing.T) {
		mem := memfs.New()
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		at := time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC)

		b, err := core.NewBasket("Unnamed")
		require.NoError(t, err)
		forest, err := core.NewForest([]*core.Basket{b}, nil)
		require.NoError(t, err)

		dir, err := platform.Materialize(context.Background(), "mem", forest,
			platform.WithFilesystem(mem),
			platform.WithLogger(logger),
			platform.WithTokenGenerator(func() string { return "fixed" }),
			platform.WithClock(func() time.Time { return at }),
		)
		require.NoError(t, err)

		assert.Equal(t, "basket-fixed", b.FolderName())
		_, err = mem.Stat("baskets/basket-fixed/.basket")
		require.NoError(t, err)

		state := dir.State().(fs.DirectoryState)
		require.NotNil(t, state.LastRun)
		assert.Equal(t, at, *state.LastRun)
		assert.Contains(t, logs.String(), "source directory written")
	})
}

func TestBuild(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "icons"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "icons", "star.svg"), []byte("<svg/>"), 0644))
	manifestPath := filepath.Join(base, "basketweave.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestDoc), 0644))

	t.Run("Output From Manifest", func(t *testing.T) {
		dir, err := platform.Build(context.Background(), manifestPath, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "out", "Welcome.baskets"), dir.Path)

		for _, rel := range []string{"baskets/baskets.xml", "baskets/welcome/.basket", "tags.xml", "basket-icons/star.svg"} {
			_, err := os.Stat(filepath.Join(dir.Path, rel))
			assert.NoError(t, err, rel)
		}
		assert.NoError(t, dir.Verify())
	})

	t.Run("Explicit Output", func(t *testing.T) {
		mem := memfs.New()
		dir, err := platform.Build(context.Background(), manifestPath, "elsewhere", platform.WithFilesystem(mem))
		require.NoError(t, err)
		assert.Equal(t, "elsewhere", dir.Path)
		_, err = mem.Stat("basket-icons/star.svg")
		assert.NoError(t, err)
	})

	t.Run("Missing Manifest", func(t *testing.T) {
		_, err := platform.Build(context.Background(), filepath.Join(base, "nope.yaml"), "")
		assert.Error(t, err)
	})
}
