package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliManifest = `
output: out
tags:
  - name: To Do
    states:
      - id: todo_unchecked
        name: Unchecked
baskets:
  - name: Inbox
    folder: inbox
    notes:
      - type: text
        content: Call back
        states: [todo_unchecked]
    children:
      - name: Archive
        notes:
          - type: html
            content: <p>old</p>
`

func execute(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), "basketweave %v", args)
}

func TestCLI(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "basketweave.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(cliManifest), 0644))

	t.Run("Build Uses Manifest Output", func(t *testing.T) {
		execute(t, "build", manifestPath)

		out := filepath.Join(dir, "out")
		assert.FileExists(t, filepath.Join(out, "baskets", "baskets.xml"))
		assert.FileExists(t, filepath.Join(out, "baskets", "inbox", ".basket"))
		assert.FileExists(t, filepath.Join(out, "tags.xml"))
	})

	t.Run("Verify", func(t *testing.T) {
		execute(t, "verify", filepath.Join(dir, "out"))
	})

	t.Run("Tree", func(t *testing.T) {
		execute(t, "tree", manifestPath)
	})

	t.Run("Config File Sets Output", func(t *testing.T) {
		target := filepath.Join(dir, "from-config")
		cfg := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("output: "+target+"\n"), 0644))

		execute(t, "--config", cfg, "build", manifestPath)
		assert.Equal(t, target, viper.GetString("output"))
		assert.FileExists(t, filepath.Join(target, "baskets", "inbox", ".basket"))
	})
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	execute(t, "version", "--short=true")
	assert.Equal(t, buildVersion()+"\n", out.String())

	out.Reset()
	execute(t, "version", "--short=false")
	want := "basketweave " + buildVersion() + " (" + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + ")\n"
	assert.Equal(t, want, out.String())
}

func TestResolveManifest(t *testing.T) {
	got, err := resolveManifest([]string{"explicit.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "explicit.yaml", got)

	viper.Set("manifest", "configured.yaml")
	t.Cleanup(func() { viper.Set("manifest", "") })

	got, err = resolveManifest(nil)
	require.NoError(t, err)
	assert.Equal(t, "configured.yaml", got)
}
