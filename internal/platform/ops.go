package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/basketweave/pkg/adapters/fs"
	"github.com/aretw0/basketweave/pkg/core"
	"github.com/aretw0/basketweave/pkg/manifest"
)

// Materialize writes forest to path. The directory is returned even when the
// run fails, so callers can inspect how far it got.
func Materialize(ctx context.Context, path string, forest core.Forest, opts ...Option) (*fs.Directory, error) {
	dir, err := New(path, opts...)
	if err != nil {
		return nil, err
	}
	return dir, dir.Materialize(ctx, forest)
}

// LoadManifest reads the manifest at manifestPath and builds its forest,
// using the configured clock for missing timestamps.
func LoadManifest(manifestPath string, opts ...Option) (*manifest.Manifest, core.Forest, error) {
	o := apply(opts)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, core.Forest{}, err
	}
	forest, err := m.Build(manifest.WithClock(o.clock))
	if err != nil {
		return nil, core.Forest{}, fmt.Errorf("%s: %w", manifestPath, err)
	}
	return m, forest, nil
}

// Build loads a manifest and materializes it. An empty output falls back to
// the manifest's own output entry, relative to the manifest. The manifest's
// resource globs are shipped alongside any additional resources in opts.
func Build(ctx context.Context, manifestPath, output string, opts ...Option) (*fs.Directory, error) {
	m, forest, err := LoadManifest(manifestPath, opts...)
	if err != nil {
		return nil, err
	}

	if output == "" {
		if m.Output == "" {
			return nil, fmt.Errorf("%s: no output directory given", manifestPath)
		}
		output = m.Output
		if !filepath.IsAbs(output) {
			output = filepath.Join(m.Dir(), output)
		}
	}

	files, err := m.ExpandResources()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}
	opts = append(opts,
		WithAdditionalEmblems(files.Emblems...),
		WithAdditionalBackgrounds(files.Backgrounds...),
		WithAdditionalIcons(files.Icons...),
	)
	return Materialize(ctx, output, forest, opts...)
}
