package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ParentKind tells whether an item hangs directly under a basket or under a note.
type ParentKind int

const (
	ParentNone ParentKind = iota
	ParentBasket
	ParentNote
)

// ParentRef is a non-owning reference to the basket or note holding an item.
// Ownership always flows from parent to child; the ref only carries the id.
type ParentRef struct {
	Kind ParentKind
	ID   string
}

// Geometry positions a note on a free-layout basket. It is ignored elsewhere.
type Geometry struct {
	Width int
	X     int
	Y     int
}

// Timestamps are the creation and modification times of a note. Both are required.
type Timestamps struct {
	LastModification time.Time
	Added            time.Time
}

// Note is a single unit of content, or a group of notes when its content is GroupContent.
type Note struct {
	id       string
	content  Content
	parent   ParentRef
	states   []*State
	geometry Geometry
	times    Timestamps
	folded   bool
	children []*Note
}

// NoteOption configures a Note at construction time.
type NoteOption func(*Note) error

// NoteGeometry sets width and position on a free-layout basket.
func NoteGeometry(width, x, y int) NoteOption {
	return func(n *Note) error {
		if width < 0 || x < 0 || y < 0 {
			return fmt.Errorf("%w: width=%d x=%d y=%d", ErrNegativeGeometry, width, x, y)
		}
		n.geometry = Geometry{Width: width, X: x, Y: y}
		return nil
	}
}

// NoteFolded collapses a group. It has no effect on other note types.
func NoteFolded(folded bool) NoteOption {
	return func(n *Note) error {
		if n.content.Type() == TypeGroup {
			n.folded = folded
		}
		return nil
	}
}

// NoteStates tags the note. Group notes cannot be tagged. Repeated states are
// kept once, in first-seen order.
func NoteStates(states ...*State) NoteOption {
	return func(n *Note) error {
		if len(states) == 0 {
			return nil
		}
		if n.content.Type() == TypeGroup {
			return ErrGroupStates
		}
		for _, s := range states {
			if s == nil {
				return fmt.Errorf("state: %w", ErrNilItem)
			}
			if !n.HasState(s) {
				n.states = append(n.states, s)
			}
		}
		return nil
	}
}

// NewNote builds a note. Timestamps must both be set; there is no implicit "now".
func NewNote(content Content, times Timestamps, opts ...NoteOption) (*Note, error) {
	if content == nil {
		return nil, fmt.Errorf("content: %w", ErrNilItem)
	}
	if times.LastModification.IsZero() || times.Added.IsZero() {
		return nil, ErrMissingTimestamp
	}

	n := &Note{
		id:      uuid.NewString(),
		content: content,
		times:   times,
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, fmt.Errorf("%s note: %w", content.Type(), err)
		}
	}
	return n, nil
}

func (n *Note) ID() string             { return n.id }
func (n *Note) Type() NoteType         { return n.content.Type() }
func (n *Note) Content() Content       { return n.content }
func (n *Note) Parent() ParentRef      { return n.parent }
func (n *Note) Geometry() Geometry     { return n.geometry }
func (n *Note) Timestamps() Timestamps { return n.times }
func (n *Note) Folded() bool           { return n.folded }

// States returns the referenced states in order.
func (n *Note) States() []*State {
	return append([]*State(nil), n.states...)
}

// HasState reports whether s is among the note's states.
func (n *Note) HasState(s *State) bool {
	for _, have := range n.states {
		if have == s {
			return true
		}
	}
	return false
}

// Notes returns the children of a group note.
func (n *Note) Notes() []*Note {
	return append([]*Note(nil), n.children...)
}

// AddNote appends child to a group note.
func (n *Note) AddNote(child *Note) error {
	if n.content.Type() != TypeGroup {
		return fmt.Errorf("%s note: %w", n.content.Type(), ErrNotAGroup)
	}
	if err := checkAttachable(child); err != nil {
		return err
	}
	if child == n || child.contains(n) {
		return ErrCycle
	}
	child.parent = ParentRef{Kind: ParentNote, ID: n.id}
	n.children = append(n.children, child)
	return nil
}

// Flatten returns n followed by all of its descendants, depth-first.
func (n *Note) Flatten() []*Note {
	flat := []*Note{n}
	for _, child := range n.children {
		flat = append(flat, child.Flatten()...)
	}
	return flat
}

func (n *Note) contains(other *Note) bool {
	for _, child := range n.children {
		if child == other || child.contains(other) {
			return true
		}
	}
	return false
}

func checkAttachable(n *Note) error {
	if n == nil {
		return fmt.Errorf("note: %w", ErrNilItem)
	}
	if n.parent.Kind != ParentNone {
		return fmt.Errorf("note %s: %w", n.id, ErrAlreadyAttached)
	}
	return nil
}

func (n *Note) String() string {
	return fmt.Sprintf("%s note %s", n.content.Type(), n.id)
}
