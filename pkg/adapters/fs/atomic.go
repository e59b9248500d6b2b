package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = "basketweave-tmp-"
)

// writeFileAtomic writes data to a temp file next to filename and renames it
// into place, so readers never observe a half-written file.
func writeFileAtomic(fsys billy.Filesystem, filename string, data []byte) error {
	dir := filepath.Dir(filename)

	tmpFile, err := fsys.TempFile(dir, TempFilePrefix)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmpFile.Name()
	defer fsys.Remove(tmpName) // no-op once renamed

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fsys.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}

// readFile reads a whole file from fsys.
func readFile(fsys billy.Filesystem, filename string) ([]byte, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
