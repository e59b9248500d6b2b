// Package manifest describes a basket forest in YAML and builds it through the
// core constructors.
//
// Paths in a manifest (icons, emblems, background images, file payloads,
// resource globs) are relative to the manifest file.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML document.
type Manifest struct {
	Output    string    `yaml:"output,omitempty"`
	Tags      []Tag     `yaml:"tags,omitempty"`
	Baskets   []Basket  `yaml:"baskets"`
	Resources Resources `yaml:"resources,omitempty"`

	dir string
}

// Resources lists glob patterns of auxiliary files shipped with the source.
type Resources struct {
	Emblems     []string `yaml:"emblems,omitempty"`
	Backgrounds []string `yaml:"backgrounds,omitempty"`
	Icons       []string `yaml:"icons,omitempty"`
}

type Tag struct {
	Name      string  `yaml:"name"`
	Shortcut  string  `yaml:"shortcut,omitempty"`
	Inherited *bool   `yaml:"inherited,omitempty"`
	States    []State `yaml:"states"`
}

type State struct {
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	Emblem         string     `yaml:"emblem,omitempty"`
	Text           *TextStyle `yaml:"text,omitempty"`
	Font           *Font      `yaml:"font,omitempty"`
	Background     string     `yaml:"background,omitempty"`
	TextEquivalent string     `yaml:"textEquivalent,omitempty"`
	OnAllTextLines bool       `yaml:"onAllTextLines,omitempty"`
}

type TextStyle struct {
	Bold      bool   `yaml:"bold,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	StrikeOut bool   `yaml:"strikeOut,omitempty"`
	Color     string `yaml:"color,omitempty"`
}

type Font struct {
	Name string `yaml:"name,omitempty"`
	Size *int   `yaml:"size,omitempty"`
}

type Basket struct {
	Name        string      `yaml:"name"`
	Folder      string      `yaml:"folder,omitempty"`
	Icon        string      `yaml:"icon,omitempty"`
	Disposition string      `yaml:"disposition,omitempty"`
	Folded      bool        `yaml:"folded,omitempty"`
	Shortcut    string      `yaml:"shortcut,omitempty"`
	Appearance  *Appearance `yaml:"appearance,omitempty"`
	Notes       []Note      `yaml:"notes,omitempty"`
	Children    []Basket    `yaml:"children,omitempty"`
}

type Appearance struct {
	Background string `yaml:"background,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Image      string `yaml:"image,omitempty"`
}

// Note is one note or group. Which payload fields apply depends on Type:
// content for color, html and text; contentFile for html or text read from a
// file; path for file, image, launcher and sound; title, url and icon for
// link and cross_reference; notes for group.
type Note struct {
	Type        string     `yaml:"type"`
	Content     string     `yaml:"content,omitempty"`
	ContentFile string     `yaml:"contentFile,omitempty"`
	Path        string     `yaml:"path,omitempty"`
	Title       string     `yaml:"title,omitempty"`
	URL         string     `yaml:"url,omitempty"`
	Icon        string     `yaml:"icon,omitempty"`
	AutoTitle   *bool      `yaml:"autoTitle,omitempty"`
	AutoIcon    *bool      `yaml:"autoIcon,omitempty"`
	States      []string   `yaml:"states,omitempty"`
	Geometry    *Geometry  `yaml:"geometry,omitempty"`
	Folded      bool       `yaml:"folded,omitempty"`
	Added       *time.Time `yaml:"added,omitempty"`
	Modified    *time.Time `yaml:"modified,omitempty"`
	Notes       []Note     `yaml:"notes,omitempty"`
}

type Geometry struct {
	Width int `yaml:"width"`
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(bytes.NewReader(data), filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest from r. Relative paths resolve against dir.
// Unknown keys are rejected.
func Parse(r io.Reader, dir string) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty manifest")
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	m.dir = dir
	return &m, nil
}

// Dir returns the directory relative paths resolve against.
func (m *Manifest) Dir() string {
	return m.dir
}

// Resolve makes path absolute relative to the manifest directory. Bare names
// without a separator that do not exist there are returned unchanged, so theme
// icon names like "knotes" pass through.
func (m *Manifest) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	joined := filepath.Join(m.dir, path)
	if filepath.Base(path) == path {
		if _, err := os.Stat(joined); err != nil {
			return path
		}
	}
	return joined
}
