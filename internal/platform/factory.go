package platform

import (
	"errors"

	"github.com/aretw0/basketweave/pkg/adapters/fs"
)

// New wires a source directory writing to path.
//
//	dir, err := basketweave.New("./Welcome.baskets", basketweave.WithLogger(logger))
//
// path may be empty when WithFilesystem is given.
func New(path string, opts ...Option) (*fs.Directory, error) {
	o := apply(opts)
	if path == "" && o.filesystem == nil {
		return nil, errors.New("output path is required")
	}

	return fs.NewDirectory(fs.Config{
		Path:                  path,
		FS:                    o.filesystem,
		Logger:                o.logger,
		AdditionalEmblems:     o.emblems,
		AdditionalBackgrounds: o.backgrounds,
		AdditionalIcons:       o.icons,
		NewToken:              o.token,
		Clock:                 o.clock,
	}), nil
}
