package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
)

// BuildOption configures Build.
type BuildOption func(*builder)

// WithClock sets the time used for notes that leave out their timestamps.
func WithClock(now func() time.Time) BuildOption {
	return func(b *builder) {
		if now != nil {
			b.now = now
		}
	}
}

type builder struct {
	m      *Manifest
	now    func() time.Time
	stamp  time.Time
	states map[string]*core.State
}

// Build constructs the forest the manifest describes. Every note without
// explicit timestamps gets the same instant, read once from the clock.
func (m *Manifest) Build(opts ...BuildOption) (core.Forest, error) {
	b := &builder{m: m, now: time.Now, states: make(map[string]*core.State)}
	for _, opt := range opts {
		opt(b)
	}
	b.stamp = b.now().Truncate(time.Second)

	tags := make([]*core.Tag, 0, len(m.Tags))
	for _, t := range m.Tags {
		tag, err := b.tag(t)
		if err != nil {
			return core.Forest{}, fmt.Errorf("tag %q: %w", t.Name, err)
		}
		tags = append(tags, tag)
	}

	roots := make([]*core.Basket, 0, len(m.Baskets))
	for _, def := range m.Baskets {
		basket, err := b.basket(def)
		if err != nil {
			return core.Forest{}, err
		}
		roots = append(roots, basket)
	}
	return core.NewForest(roots, tags)
}

func (b *builder) tag(t Tag) (*core.Tag, error) {
	states := make([]*core.State, 0, len(t.States))
	for _, s := range t.States {
		state, err := b.state(s)
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", s.ID, err)
		}
		if _, dup := b.states[s.ID]; dup {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateStateID, s.ID)
		}
		b.states[s.ID] = state
		states = append(states, state)
	}

	opts := []core.TagOption{core.TagShortcut(core.Shortcut{Combination: t.Shortcut})}
	if t.Inherited != nil {
		opts = append(opts, core.TagInherited(*t.Inherited))
	}
	return core.NewTag(t.Name, states, opts...)
}

func (b *builder) state(s State) (*core.State, error) {
	opts := []core.StateOption{
		core.StateEmblem(b.m.Resolve(s.Emblem)),
		core.StateTextEquivalent(s.TextEquivalent),
		core.StateOnAllTextLines(s.OnAllTextLines),
	}
	if s.Text != nil {
		color, err := core.ParseColor(s.Text.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, core.StateTextStyle(core.TextStyle{
			Bold:      s.Text.Bold,
			Italic:    s.Text.Italic,
			Underline: s.Text.Underline,
			StrikeOut: s.Text.StrikeOut,
			Color:     color,
		}))
	}
	if s.Font != nil {
		font := core.DefaultFont()
		font.Name = s.Font.Name
		if s.Font.Size != nil {
			font.Size = *s.Font.Size
		}
		opts = append(opts, core.StateFont(font))
	}
	if s.Background != "" {
		bg, err := core.ParseColor(s.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, core.StateBackground(bg))
	}
	return core.NewState(s.Name, s.ID, opts...)
}

func (b *builder) basket(def Basket) (*core.Basket, error) {
	opts := []core.BasketOption{
		core.BasketFolder(def.Folder),
		core.BasketFolded(def.Folded),
		core.BasketShortcut(core.Shortcut{Combination: def.Shortcut}),
	}
	if def.Icon != "" {
		opts = append(opts, core.BasketIcon(b.m.Resolve(def.Icon)))
	}
	if def.Disposition != "" {
		d, err := core.ParseDisposition(def.Disposition)
		if err != nil {
			return nil, fmt.Errorf("basket %q: %w", def.Name, err)
		}
		opts = append(opts, core.BasketDisposition(d))
	}
	if a := def.Appearance; a != nil {
		bg, err := core.ParseColor(a.Background)
		if err != nil {
			return nil, fmt.Errorf("basket %q background: %w", def.Name, err)
		}
		text, err := core.ParseColor(a.Text)
		if err != nil {
			return nil, fmt.Errorf("basket %q text: %w", def.Name, err)
		}
		opts = append(opts, core.BasketAppearance(core.Appearance{
			Background:      bg,
			Text:            text,
			BackgroundImage: b.m.Resolve(a.Image),
		}))
	}

	basket, err := core.NewBasket(def.Name, opts...)
	if err != nil {
		return nil, err
	}
	for i, n := range def.Notes {
		note, err := b.note(n)
		if err != nil {
			return nil, fmt.Errorf("basket %q note %d: %w", def.Name, i+1, err)
		}
		if err := basket.AddNote(note); err != nil {
			return nil, err
		}
	}
	for _, c := range def.Children {
		child, err := b.basket(c)
		if err != nil {
			return nil, err
		}
		if err := basket.AddChild(child); err != nil {
			return nil, err
		}
	}
	return basket, nil
}

func (b *builder) note(n Note) (*core.Note, error) {
	t, err := core.ParseNoteType(n.Type)
	if err != nil {
		return nil, err
	}
	content, err := b.content(t, n)
	if err != nil {
		return nil, err
	}

	times := core.Timestamps{LastModification: b.stamp, Added: b.stamp}
	if n.Added != nil {
		times.Added = *n.Added
	}
	if n.Modified != nil {
		times.LastModification = *n.Modified
	}

	var opts []core.NoteOption
	if n.Geometry != nil {
		opts = append(opts, core.NoteGeometry(n.Geometry.Width, n.Geometry.X, n.Geometry.Y))
	}
	if t == core.TypeGroup {
		opts = append(opts, core.NoteFolded(n.Folded))
	}
	if len(n.States) > 0 {
		states := make([]*core.State, 0, len(n.States))
		for _, id := range n.States {
			s, ok := b.states[id]
			if !ok {
				return nil, fmt.Errorf("%w: %q", core.ErrUnregisteredState, id)
			}
			states = append(states, s)
		}
		opts = append(opts, core.NoteStates(states...))
	}

	note, err := core.NewNote(content, times, opts...)
	if err != nil {
		return nil, err
	}
	for i, child := range n.Notes {
		if t != core.TypeGroup {
			return nil, core.ErrNotAGroup
		}
		c, err := b.note(child)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i+1, err)
		}
		if err := note.AddNote(c); err != nil {
			return nil, err
		}
	}
	return note, nil
}

func (b *builder) content(t core.NoteType, n Note) (core.Content, error) {
	switch t {
	case core.TypeLink:
		return core.Link{
			Title:     n.Title,
			URL:       n.URL,
			Icon:      n.Icon,
			AutoTitle: boolOr(n.AutoTitle, true),
			AutoIcon:  boolOr(n.AutoIcon, true),
		}, nil
	case core.TypeCrossReference:
		return core.CrossReference{Title: n.Title, URL: n.URL, Icon: n.Icon}, nil
	case core.TypeFile, core.TypeImage, core.TypeLauncher, core.TypeSound:
		return core.NewContent(t, b.m.Resolve(n.Path))
	case core.TypeColor:
		color, err := core.ParseColor(n.Content)
		if err != nil {
			return nil, err
		}
		return core.NewContent(t, color)
	case core.TypeGroup:
		return core.NewContent(t, nil)
	case core.TypeHTML, core.TypeText:
		if n.ContentFile != "" {
			data, err := os.ReadFile(b.m.Resolve(n.ContentFile))
			if err != nil {
				return nil, fmt.Errorf("failed to read content file: %w", err)
			}
			return core.NewContent(t, string(data))
		}
	}
	return core.NewContent(t, n.Content)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Files are auxiliary resources after glob expansion, as absolute paths.
type Files struct {
	Emblems     []string
	Backgrounds []string
	Icons       []string
}

// ExpandResources expands the resource globs. "**" matches across
// directories. A pattern that matches no regular file is an error.
func (m *Manifest) ExpandResources() (Files, error) {
	var files Files
	var err error
	if files.Emblems, err = m.expand(m.Resources.Emblems); err != nil {
		return Files{}, fmt.Errorf("emblems: %w", err)
	}
	if files.Backgrounds, err = m.expand(m.Resources.Backgrounds); err != nil {
		return Files{}, fmt.Errorf("backgrounds: %w", err)
	}
	if files.Icons, err = m.expand(m.Resources.Icons); err != nil {
		return Files{}, fmt.Errorf("icons: %w", err)
	}
	return files, nil
}

func (m *Manifest) expand(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(m.dir, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		found := 0
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			found++
			if !seen[match] {
				seen[match] = true
				out = append(out, match)
			}
		}
		if found == 0 {
			return nil, fmt.Errorf("%w: no file matches %q", core.ErrFileNotFound, pattern)
		}
	}
	return out, nil
}
