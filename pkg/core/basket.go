package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Disposition is the layout of a basket: free positioning or N columns.
type Disposition int

const (
	DispositionFree Disposition = iota
	DispositionOneColumn
	DispositionTwoColumn
	DispositionThreeColumn
)

// Columns returns the columnCount/free pair written to the disposition element.
func (d Disposition) Columns() (count int, free bool) {
	switch d {
	case DispositionOneColumn:
		return 1, false
	case DispositionTwoColumn:
		return 2, false
	case DispositionThreeColumn:
		return 3, false
	}
	return 0, true
}

// IsFree reports whether notes are positioned freely.
func (d Disposition) IsFree() bool {
	_, free := d.Columns()
	return free
}

func (d Disposition) String() string {
	switch d {
	case DispositionFree:
		return "free"
	case DispositionOneColumn:
		return "col1"
	case DispositionTwoColumn:
		return "col2"
	case DispositionThreeColumn:
		return "col3"
	}
	return fmt.Sprintf("Disposition(%d)", int(d))
}

// ParseDisposition accepts free, col1, col2 and col3.
func ParseDisposition(s string) (Disposition, error) {
	switch s {
	case "", "free":
		return DispositionFree, nil
	case "col1":
		return DispositionOneColumn, nil
	case "col2":
		return DispositionTwoColumn, nil
	case "col3":
		return DispositionThreeColumn, nil
	}
	return 0, fmt.Errorf("unknown disposition %q", s)
}

// Appearance holds the colors and background image of a basket.
type Appearance struct {
	Background      Color
	Text            Color
	BackgroundImage string // path to an image file, empty for none
}

// DefaultIcon is the theme icon used when a basket does not name one.
const DefaultIcon = "knotes"

// Basket is a named page of notes, possibly holding child baskets.
type Basket struct {
	id          string
	name        string
	notes       []*Note
	children    []*Basket
	icon        string
	appearance  Appearance
	disposition Disposition
	shortcut    Shortcut
	folded      bool
	suggested   string
	folderName  string
	attached    bool
}

// BasketOption configures a Basket at construction time.
type BasketOption func(*Basket)

// BasketFolder suggests the name of the basket's folder on disk. Empty or
// colliding suggestions are replaced when the forest is materialized.
func BasketFolder(name string) BasketOption {
	return func(b *Basket) { b.suggested = name }
}

// BasketIcon sets a theme icon name or a path to an icon file.
func BasketIcon(icon string) BasketOption {
	return func(b *Basket) { b.icon = icon }
}

func BasketAppearance(a Appearance) BasketOption {
	return func(b *Basket) { b.appearance = a }
}

func BasketDisposition(d Disposition) BasketOption {
	return func(b *Basket) { b.disposition = d }
}

func BasketShortcut(s Shortcut) BasketOption {
	return func(b *Basket) { b.shortcut = s }
}

// BasketFolded collapses the basket's children in the tree.
func BasketFolded(folded bool) BasketOption {
	return func(b *Basket) { b.folded = folded }
}

// NewBasket builds an empty basket.
func NewBasket(name string, opts ...BasketOption) (*Basket, error) {
	b := &Basket{
		id:   uuid.NewString(),
		name: name,
		icon: DefaultIcon,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.disposition < DispositionFree || b.disposition > DispositionThreeColumn {
		return nil, fmt.Errorf("basket %q: unknown disposition %d", name, int(b.disposition))
	}
	if b.appearance.BackgroundImage != "" {
		if err := checkFile(b.appearance.BackgroundImage); err != nil {
			return nil, fmt.Errorf("basket %q background image: %w", name, err)
		}
	}
	return b, nil
}

func (b *Basket) ID() string               { return b.id }
func (b *Basket) Name() string             { return b.name }
func (b *Basket) Icon() string             { return b.icon }
func (b *Basket) Appearance() Appearance   { return b.appearance }
func (b *Basket) Disposition() Disposition { return b.disposition }
func (b *Basket) Shortcut() Shortcut       { return b.shortcut }
func (b *Basket) Folded() bool             { return b.folded }

// SuggestedFolderName returns the folder name requested at construction.
func (b *Basket) SuggestedFolderName() string { return b.suggested }

// FolderName returns the resolved folder name, or the suggestion before resolution.
func (b *Basket) FolderName() string {
	if b.folderName != "" {
		return b.folderName
	}
	return b.suggested
}

// AssignFolderName records the folder the basket is written to.
func (b *Basket) AssignFolderName(name string) {
	b.folderName = name
}

// Notes returns the top-level notes.
func (b *Basket) Notes() []*Note {
	return append([]*Note(nil), b.notes...)
}

// Children returns the child baskets.
func (b *Basket) Children() []*Basket {
	return append([]*Basket(nil), b.children...)
}

// AddNote appends a top-level note. For column layouts, each top-level note is
// expected to be a group standing for one column.
func (b *Basket) AddNote(n *Note) error {
	if err := checkAttachable(n); err != nil {
		return err
	}
	n.parent = ParentRef{Kind: ParentBasket, ID: b.id}
	b.notes = append(b.notes, n)
	return nil
}

// AddChild appends a child basket. A basket can have one parent only.
func (b *Basket) AddChild(child *Basket) error {
	if child == nil {
		return fmt.Errorf("basket: %w", ErrNilItem)
	}
	if child.attached {
		return fmt.Errorf("basket %q: %w", child.name, ErrAlreadyAttached)
	}
	if child == b || child.contains(b) {
		return fmt.Errorf("basket %q: %w", child.name, ErrCycle)
	}
	child.attached = true
	b.children = append(b.children, child)
	return nil
}

// Flatten returns b followed by its descendants in depth-first pre-order.
func (b *Basket) Flatten() []*Basket {
	flat := []*Basket{b}
	for _, child := range b.children {
		flat = append(flat, child.Flatten()...)
	}
	return flat
}

// FlatNotes returns every note of the basket, groups followed by their members.
func (b *Basket) FlatNotes() []*Note {
	var flat []*Note
	for _, n := range b.notes {
		flat = append(flat, n.Flatten()...)
	}
	return flat
}

func (b *Basket) contains(other *Basket) bool {
	for _, child := range b.children {
		if child == other || child.contains(other) {
			return true
		}
	}
	return false
}

func (b *Basket) String() string {
	return fmt.Sprintf("basket %q", b.name)
}
