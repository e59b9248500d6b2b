package core

import (
	"fmt"
	"regexp"
)

var colorPattern = regexp.MustCompile(`(?i)^#[0-9A-F]{6}$`)

// Color holds an RGB hex triplet. The zero value means "use the application's
// default color" and is never emitted.
type Color struct {
	value string
}

// ParseColor validates s. The empty string yields the default color; anything
// else must look like #rrggbb (case-insensitive). The input is kept verbatim.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return Color{}, nil
	}
	if !colorPattern.MatchString(s) {
		return Color{}, fmt.Errorf("%w: got %q", ErrInvalidColor, s)
	}
	return Color{value: s}, nil
}

// MustColor is like ParseColor but panics on invalid input. Meant for literals.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) String() string { return c.value }

// IsDefault reports whether c defers to the application's default color.
func (c Color) IsDefault() bool { return c.value == "" }

// Font describes a font family and point size. Size -1 means application default.
type Font struct {
	Name string
	Size int
}

// DefaultFont returns an unset font.
func DefaultFont() Font {
	return Font{Size: -1}
}

// Shortcut is a key sequence such as "Ctrl+1". Empty means no shortcut.
// The combination is not checked against a real keymap.
type Shortcut struct {
	Combination string
}

// TextStyle formats the text of notes carrying a state.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	StrikeOut bool
	Color     Color
}
