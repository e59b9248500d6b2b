package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/basketweave/pkg/adapters/fs"
	"github.com/go-git/go-billy/v5"
)

// options holds the internal configuration for a source directory.
type options struct {
	logger      *slog.Logger
	filesystem  billy.Filesystem
	token       fs.TokenFunc
	clock       func() time.Time
	emblems     []string
	backgrounds []string
	icons       []string
}

// Option defines a functional option for configuring basketweave.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		token: fs.UUIDToken,
		clock: time.Now,
	}
}

func apply(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger. A nil logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFilesystem writes the output to fsys instead of the host path.
// fsys must be rooted at the output directory (e.g. memfs.New() in tests).
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(o *options) {
		o.filesystem = fsys
	}
}

// WithTokenGenerator sets how generated folder names are made unique.
// Defaults to a dashless random UUID.
func WithTokenGenerator(fn fs.TokenFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.token = fn
		}
	}
}

// WithClock sets the clock used for default note timestamps and run records.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithAdditionalEmblems ships extra tag emblem files with the source.
func WithAdditionalEmblems(paths ...string) Option {
	return func(o *options) {
		o.emblems = append(o.emblems, paths...)
	}
}

// WithAdditionalBackgrounds ships extra background images with the source.
func WithAdditionalBackgrounds(paths ...string) Option {
	return func(o *options) {
		o.backgrounds = append(o.backgrounds, paths...)
	}
}

// WithAdditionalIcons ships extra basket icons with the source.
func WithAdditionalIcons(paths ...string) Option {
	return func(o *options) {
		o.icons = append(o.icons, paths...)
	}
}
