package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Config holds the configuration for a source directory.
type Config struct {
	Path   string           // root of the output on the host; used when FS is nil
	FS     billy.Filesystem // output filesystem, rooted at the output directory
	Logger *slog.Logger

	// Extra files shipped with the source even when no basket or state uses them.
	AdditionalEmblems     []string
	AdditionalBackgrounds []string
	AdditionalIcons       []string

	NewToken TokenFunc        // folder-name token generator, defaults to UUIDToken
	Clock    func() time.Time // defaults to time.Now
}

// Directory materializes a forest into the BasKet source layout.
type Directory struct {
	Path   string
	fsys   billy.Filesystem
	config Config
	logger *slog.Logger

	mu      sync.RWMutex
	phase   Phase
	stats   Stats
	lastRun *time.Time
	lastErr error
}

// Stats counts what the last run wrote.
type Stats struct {
	Baskets   int `json:"baskets"`
	Notes     int `json:"notes"`
	Resources int `json:"resources"`
	HTMLFiles int `json:"html_files"`
	Renamed   int `json:"renamed_folders"`
}

// NewDirectory creates a materializer for config.
func NewDirectory(config Config) *Directory {
	fsys := config.FS
	if fsys == nil {
		fsys = osfs.New(config.Path)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.NewToken == nil {
		config.NewToken = UUIDToken
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	return &Directory{
		Path:   config.Path,
		fsys:   fsys,
		config: config,
		logger: logger,
	}
}

// Filesystem returns the output filesystem.
func (d *Directory) Filesystem() billy.Filesystem {
	return d.fsys
}

// Phase returns how far the current or last run got.
func (d *Directory) Phase() Phase {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.phase
}

// Materialize writes f to the directory. The forest is validated and folder
// names are resolved before the first write. Once writing starts the run goes
// to completion or stops at the first error; nothing is rolled back.
func (d *Directory) Materialize(ctx context.Context, f core.Forest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid forest: %w", err)
	}
	renamed := ResolveFolderNames(f, d.config.NewToken)

	d.mu.Lock()
	d.phase = PhaseEmpty
	d.stats = Stats{Renamed: renamed}
	d.lastErr = nil
	d.mu.Unlock()

	run := &run{
		Directory:   d,
		forest:      f,
		emblems:     newPlacer(d.fsys, TagEmblemsDir, d.logger),
		backgrounds: newPlacer(d.fsys, BackgroundsDir, d.logger),
		icons:       newPlacer(d.fsys, IconsDir, d.logger),
	}

	steps := []struct {
		to Phase
		fn func() error
	}{
		{PhaseScaffolded, run.scaffold},
		{PhaseResourcesPlaced, run.placeResources},
		{PhaseTreeWritten, run.writeTree},
		{PhasePerContainerWritten, run.writeContainers},
		{PhaseDone, func() error { return nil }},
	}
	for _, step := range steps {
		from := d.Phase()
		d.logger.Debug("materialize phase", "from", from, "to", step.to)
		if err := step.fn(); err != nil {
			perr := &PhaseError{From: from, To: step.to, Err: err}
			d.finish(PhaseFailed, perr)
			d.logger.Error("materialize failed", "path", d.Path, "error", perr)
			return perr
		}
		d.advance(step.to)
	}

	d.finish(PhaseDone, nil)
	stats := d.Stats()
	d.logger.Info("source directory written",
		"path", d.Path,
		"baskets", stats.Baskets,
		"notes", stats.Notes,
		"resources", stats.Resources,
		"html_files", stats.HTMLFiles,
	)
	return nil
}

// Stats returns the counters of the current or last run.
func (d *Directory) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

func (d *Directory) advance(p Phase) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phase = p
}

func (d *Directory) finish(p Phase, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.config.Clock()
	d.phase = p
	d.lastRun = &now
	d.lastErr = err
}

func (d *Directory) count(fn func(s *Stats)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.stats)
}

// run holds the per-run placement state.
type run struct {
	*Directory
	forest      core.Forest
	emblems     *placer
	backgrounds *placer
	icons       *placer
}

func (r *run) scaffold() error {
	for _, dir := range scaffoldDirs {
		if err := r.fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

func (r *run) placeResources() error {
	explicit := []struct {
		p     *placer
		files []string
	}{
		{r.emblems, r.config.AdditionalEmblems},
		{r.backgrounds, r.config.AdditionalBackgrounds},
		{r.icons, r.config.AdditionalIcons},
	}
	for _, e := range explicit {
		for _, file := range e.files {
			if _, err := e.p.Place(file); err != nil {
				return err
			}
		}
	}

	for _, b := range r.forest.Flatten() {
		if bg := b.Appearance().BackgroundImage; bg != "" {
			if _, err := r.backgrounds.Place(bg); err != nil {
				return fmt.Errorf("%s background: %w", b, err)
			}
		}
		if _, err := r.icons.PlaceIfFile(b.Icon()); err != nil {
			return fmt.Errorf("%s icon: %w", b, err)
		}
	}
	for _, s := range r.forest.States() {
		if _, err := r.emblems.PlaceIfFile(s.Emblem()); err != nil {
			return fmt.Errorf("state %q emblem: %w", s.ID(), err)
		}
	}

	copied := r.emblems.copied + r.backgrounds.copied + r.icons.copied
	r.count(func(s *Stats) { s.Resources += copied })
	return nil
}

func (r *run) writeTree() error {
	treePath := r.fsys.Join(BasketsDir, TreeFile)
	tree, err := treeDocument(r.forest, r.icons, r.backgrounds)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", treePath, err)
	}
	if err := writeFileAtomic(r.fsys, treePath, tree); err != nil {
		return err
	}
	r.logger.Debug("tree index written", "file", treePath)

	tags, err := tagsDocument(r.forest.Tags, r.emblems)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", TagsFile, err)
	}
	if err := writeFileAtomic(r.fsys, TagsFile, tags); err != nil {
		return err
	}
	r.logger.Debug("tag registry written", "file", TagsFile, "tags", len(r.forest.Tags))
	return nil
}

func (r *run) writeContainers() error {
	for _, b := range r.forest.Flatten() {
		if err := r.writeContainer(b); err != nil {
			return fmt.Errorf("%s: %w", b, err)
		}
	}
	return nil
}

func (r *run) writeContainer(b *core.Basket) error {
	dir := r.fsys.Join(BasketsDir, b.FolderName())
	if err := r.fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	payloads := newPlacer(r.fsys, dir, r.logger)
	notes := b.FlatNotes()
	for _, n := range notes {
		if src, ok := core.SourcePath(n.Content()); ok {
			if _, err := payloads.Place(src); err != nil {
				return fmt.Errorf("note %s: %w", n.ID(), err)
			}
		}
	}

	c, err := newContainer(r.fsys, dir, b, payloads)
	if err != nil {
		return err
	}
	doc, err := c.document(r.icons, r.backgrounds)
	if err != nil {
		return err
	}
	propsPath := r.fsys.Join(dir, PropertiesFile)
	if err := writeFileAtomic(r.fsys, propsPath, doc); err != nil {
		return err
	}
	r.logger.Debug("basket written", "basket", b.Name(), "file", propsPath, "notes", len(notes))

	r.count(func(s *Stats) {
		s.Baskets++
		s.Notes += len(notes)
		s.Resources += payloads.copied
		s.HTMLFiles += c.spilled
	})
	return nil
}
