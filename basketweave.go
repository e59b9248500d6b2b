package basketweave

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/basketweave/internal/platform"
	"github.com/aretw0/basketweave/pkg/adapters/fs"
	"github.com/aretw0/basketweave/pkg/core"
	"github.com/aretw0/basketweave/pkg/manifest"
	"github.com/go-git/go-billy/v5"
)

// --- Types ---

// Forest is a public alias for the materialized unit: root baskets plus tags.
type Forest = core.Forest

// Basket is a public alias for core.Basket.
type Basket = core.Basket

// Note is a public alias for core.Note.
type Note = core.Note

// Tag is a public alias for core.Tag.
type Tag = core.Tag

// State is a public alias for core.State.
type State = core.State

// Directory is a public alias for the source directory materializer.
type Directory = fs.Directory

// Manifest is a public alias for the YAML manifest.
type Manifest = manifest.Manifest

// --- Model ---

// NewBasket builds an empty basket.
func NewBasket(name string, opts ...core.BasketOption) (*Basket, error) {
	return core.NewBasket(name, opts...)
}

// BasketFolder suggests the folder a basket is written to.
func BasketFolder(name string) core.BasketOption {
	return core.BasketFolder(name)
}

// NewNote builds a note holding content.
func NewNote(content core.Content, times core.Timestamps, opts ...core.NoteOption) (*Note, error) {
	return core.NewNote(content, times, opts...)
}

// NewTag builds a tag owning states.
func NewTag(name string, states []*State, opts ...core.TagOption) (*Tag, error) {
	return core.NewTag(name, states, opts...)
}

// NewState builds a tag state.
func NewState(name, id string, opts ...core.StateOption) (*State, error) {
	return core.NewState(name, id, opts...)
}

// NewForest validates and bundles roots and tags.
func NewForest(baskets []*Basket, tags []*Tag) (Forest, error) {
	return core.NewForest(baskets, tags)
}

// --- Configuration ---

// Option defines a functional option for configuring basketweave.
type Option = platform.Option

// WithLogger sets the logger for the materializer.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFilesystem writes the output to fsys instead of the host path.
func WithFilesystem(fsys billy.Filesystem) Option {
	return platform.WithFilesystem(fsys)
}

// WithTokenGenerator sets how generated folder names are made unique.
func WithTokenGenerator(fn func() string) Option {
	return platform.WithTokenGenerator(fn)
}

// WithClock sets the clock for default note timestamps and run records.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithAdditionalEmblems ships extra tag emblem files with the source.
func WithAdditionalEmblems(paths ...string) Option {
	return platform.WithAdditionalEmblems(paths...)
}

// WithAdditionalBackgrounds ships extra background images with the source.
func WithAdditionalBackgrounds(paths ...string) Option {
	return platform.WithAdditionalBackgrounds(paths...)
}

// WithAdditionalIcons ships extra basket icons with the source.
func WithAdditionalIcons(paths ...string) Option {
	return platform.WithAdditionalIcons(paths...)
}

// --- Factory ---

// New creates a materializer writing to path.
func New(path string, opts ...Option) (*Directory, error) {
	return platform.New(path, opts...)
}

// --- Operations ---

// Materialize writes forest to path in one run.
func Materialize(ctx context.Context, path string, forest Forest, opts ...Option) (*Directory, error) {
	return platform.Materialize(ctx, path, forest, opts...)
}

// Build loads the manifest at manifestPath and materializes it to output, or
// to the manifest's own output entry when output is empty.
func Build(ctx context.Context, manifestPath, output string, opts ...Option) (*Directory, error) {
	return platform.Build(ctx, manifestPath, output, opts...)
}

// LoadManifest reads a manifest and builds its forest without writing anything.
func LoadManifest(manifestPath string, opts ...Option) (*Manifest, Forest, error) {
	return platform.LoadManifest(manifestPath, opts...)
}

// Verify checks that path holds a complete source directory.
func Verify(path string, opts ...Option) error {
	dir, err := platform.New(path, opts...)
	if err != nil {
		return err
	}
	return dir.Verify()
}

// FindManifest looks upwards from startDir for a basketweave.yaml.
func FindManifest(startDir string) (string, error) {
	return platform.FindManifest(startDir)
}

// Watch builds the manifest and rebuilds it on every change next to it until
// ctx is done. onBuild sees the outcome of each run.
func Watch(ctx context.Context, manifestPath, output string, onBuild func(*Directory, error), opts ...Option) error {
	return platform.Watch(ctx, manifestPath, output, onBuild, opts...)
}
