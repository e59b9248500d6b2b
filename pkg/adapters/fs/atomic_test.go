package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		fsys := osfs.New(tmpDir)
		content := []byte("hello atomic")

		if err := writeFileAtomic(fsys, "test.txt", content); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filepath.Join(tmpDir, "test.txt"))
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content 'hello atomic', got '%s'", string(got))
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		fsys := osfs.New(tmpDir)

		if err := os.WriteFile(filepath.Join(tmpDir, "test.txt"), []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		newContent := []byte("overwritten")
		if err := writeFileAtomic(fsys, "test.txt", newContent); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := readFile(fsys, "test.txt")
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("Expected content 'overwritten', got '%s'", string(got))
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		fsys := memfs.New()
		if err := fsys.MkdirAll("dir", 0755); err != nil {
			t.Fatal(err)
		}

		if err := writeFileAtomic(fsys, "dir/a.xml", []byte("<a/>")); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		entries, err := fsys.ReadDir("dir")
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("Expected 1 entry, got %d", len(entries))
		}
	})
}
