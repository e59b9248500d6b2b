package fs

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// placer copies origin files from the host filesystem into one directory of
// the output. Each origin is placed once per run. A basename already taken by
// different bytes is not overwritten: the newcomer gets a numbered name
// (stem-2.ext, stem-3.ext, ...) and callers reference whatever Place returns.
type placer struct {
	fsys     billy.Filesystem
	dir      string
	logger   *slog.Logger
	byOrigin map[string]string
	copied   int
}

func newPlacer(fsys billy.Filesystem, dir string, logger *slog.Logger) *placer {
	return &placer{
		fsys:     fsys,
		dir:      dir,
		logger:   logger,
		byOrigin: make(map[string]string),
	}
}

// Place copies origin into the placer's directory and returns the basename it
// landed under.
func (p *placer) Place(origin string) (string, error) {
	key := originKey(origin)
	if name, ok := p.byOrigin[key]; ok {
		return name, nil
	}

	data, err := os.ReadFile(origin)
	if err != nil {
		return "", fmt.Errorf("failed to read resource: %w", err)
	}

	base := filepath.Base(origin)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := base
	for i := 2; ; i++ {
		target := p.fsys.Join(p.dir, name)
		existing, err := readFile(p.fsys, target)
		if isNotExist(err) {
			if err := writeFileAtomic(p.fsys, target, data); err != nil {
				return "", err
			}
			p.copied++
			p.logger.Debug("resource copied", "origin", origin, "target", target)
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to inspect %s: %w", target, err)
		}
		if bytes.Equal(existing, data) {
			p.logger.Debug("resource already present", "origin", origin, "target", target)
			break
		}
		name = stem + "-" + strconv.Itoa(i) + ext
	}

	if name != base {
		p.logger.Info("resource renamed to avoid collision", "origin", origin, "name", name)
	}
	p.byOrigin[key] = name
	return name, nil
}

// PlaceIfFile places origin when it names an existing regular file. Anything
// else (typically a theme icon name like "knotes") is returned as its basename
// untouched.
func (p *placer) PlaceIfFile(origin string) (string, error) {
	if origin == "" {
		return "", nil
	}
	info, err := os.Stat(origin)
	if err != nil || !info.Mode().IsRegular() {
		return filepath.Base(origin), nil
	}
	return p.Place(origin)
}

// Name returns the placed basename for origin, falling back to its basename.
func (p *placer) Name(origin string) string {
	if origin == "" {
		return ""
	}
	if name, ok := p.byOrigin[originKey(origin)]; ok {
		return name
	}
	return filepath.Base(origin)
}

func originKey(origin string) string {
	if abs, err := filepath.Abs(origin); err == nil {
		return abs
	}
	return filepath.Clean(origin)
}
