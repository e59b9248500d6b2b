package core

import (
	"fmt"
	"regexp"
)

var stateIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]*$`)

// State is one selectable value of a Tag. It is immutable once built and is
// referenced, never owned, by notes.
type State struct {
	name           string
	id             string
	emblem         string
	textStyle      TextStyle
	font           Font
	background     Color
	textEquivalent string
	onAllTextLines bool
	tag            *Tag
}

// StateOption configures a State at construction time.
type StateOption func(*State)

// StateEmblem sets the emblem, either a theme icon name or a path to an image file.
func StateEmblem(emblem string) StateOption {
	return func(s *State) { s.emblem = emblem }
}

// StateTextStyle sets the text formatting applied to tagged notes.
func StateTextStyle(style TextStyle) StateOption {
	return func(s *State) { s.textStyle = style }
}

// StateFont sets the font applied to tagged notes.
func StateFont(font Font) StateOption {
	return func(s *State) { s.font = font }
}

// StateBackground sets the background color of tagged notes.
func StateBackground(c Color) StateOption {
	return func(s *State) { s.background = c }
}

// StateTextEquivalent sets the glyph used when no emblem is available or a
// tagged note is copied as text, e.g. "[x]".
func StateTextEquivalent(text string) StateOption {
	return func(s *State) { s.textEquivalent = text }
}

// StateOnAllTextLines marks the state to apply to every line of a note.
func StateOnAllTextLines(on bool) StateOption {
	return func(s *State) { s.onAllTextLines = on }
}

// NewState builds a state. The id is what notes serialize in their <tags> list.
func NewState(name, id string, opts ...StateOption) (*State, error) {
	if !stateIDPattern.MatchString(id) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidStateID, id)
	}
	s := &State{
		name: name,
		id:   id,
		font: DefaultFont(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *State) Name() string           { return s.name }
func (s *State) ID() string             { return s.id }
func (s *State) Emblem() string         { return s.emblem }
func (s *State) TextStyle() TextStyle   { return s.textStyle }
func (s *State) Font() Font             { return s.font }
func (s *State) Background() Color      { return s.background }
func (s *State) TextEquivalent() string { return s.textEquivalent }
func (s *State) OnAllTextLines() bool   { return s.onAllTextLines }

// Tag returns the tag owning s, or nil before the state is attached to one.
func (s *State) Tag() *Tag { return s.tag }

// Tag is a named taxonomy of states.
type Tag struct {
	name      string
	states    []*State
	shortcut  Shortcut
	inherited bool
}

// TagOption configures a Tag at construction time.
type TagOption func(*Tag)

// TagShortcut sets the key sequence applying the tag to a note.
func TagShortcut(s Shortcut) TagOption {
	return func(t *Tag) { t.shortcut = s }
}

// TagInherited controls whether states created later in the application copy
// the style of the tag's last state. Defaults to true.
func TagInherited(inherited bool) TagOption {
	return func(t *Tag) { t.inherited = inherited }
}

// NewTag builds a tag owning states. A state can belong to one tag only.
func NewTag(name string, states []*State, opts ...TagOption) (*Tag, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("tag %q: %w", name, ErrNoStates)
	}
	seen := make(map[*State]bool, len(states))
	for _, s := range states {
		if s == nil {
			return nil, fmt.Errorf("tag %q: %w", name, ErrNilItem)
		}
		if s.tag != nil || seen[s] {
			return nil, fmt.Errorf("tag %q, state %q: %w", name, s.id, ErrStateOwned)
		}
		seen[s] = true
	}

	t := &Tag{
		name:      name,
		states:    append([]*State(nil), states...),
		inherited: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	for _, s := range t.states {
		s.tag = t
	}
	return t, nil
}

func (t *Tag) Name() string       { return t.name }
func (t *Tag) Shortcut() Shortcut { return t.shortcut }
func (t *Tag) Inherited() bool    { return t.inherited }

// States returns the tag's states in declaration order.
func (t *Tag) States() []*State {
	return append([]*State(nil), t.states...)
}

// State returns the state with the given id.
func (t *Tag) State(id string) (*State, bool) {
	for _, s := range t.states {
		if s.id == id {
			return s, true
		}
	}
	return nil, false
}
