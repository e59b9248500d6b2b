package fs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/go-git/go-billy/v5"
)

// TimeLayout is how note timestamps are written: ISO-8601, second precision,
// no zone.
const TimeLayout = "2006-01-02T15:04:05"

var htmlNotePattern = regexp.MustCompile(`^note-([0-9]+)\.html$`)

// container writes one basket folder: its .basket file and any note bodies
// spilled next to it.
type container struct {
	fsys     billy.Filesystem
	dir      string
	basket   *core.Basket
	payloads resourceNames
	nextHTML int
	spilled  int
}

func newContainer(fsys billy.Filesystem, dir string, b *core.Basket, payloads resourceNames) (*container, error) {
	next, err := nextHTMLIndex(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &container{
		fsys:     fsys,
		dir:      dir,
		basket:   b,
		payloads: payloads,
		nextHTML: next,
	}, nil
}

// nextHTMLIndex returns one more than the highest note-<n>.html index in dir.
// Gaps are ignored.
func nextHTMLIndex(fsys billy.Filesystem, dir string) (int, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	highest := 0
	for _, entry := range entries {
		m := htmlNotePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}

// document renders the .basket file, spilling HTML bodies as it goes.
func (c *container) document(icons, backgrounds resourceNames) ([]byte, error) {
	root := newElement("basket")
	root.append(propertiesElement(c.basket, icons, backgrounds))

	notes := newElement("notes")
	for _, n := range c.basket.Notes() {
		node, err := c.note(n, nil)
		if err != nil {
			return nil, err
		}
		notes.append(node)
	}
	root.append(notes)
	return document(root)
}

// note renders n. parent is the enclosing note, nil when n sits directly in
// the basket.
func (c *container) note(n *core.Note, parent *core.Note) (*element, error) {
	if n.Type() == core.TypeGroup {
		return c.group(n, parent)
	}

	node := newElement("note")
	if parent == nil || parent.Type() != core.TypeGroup {
		g := n.Geometry()
		node.setInt("width", g.Width).setInt("x", g.X).setInt("y", g.Y)
	}
	ts := n.Timestamps()
	node.set("lastModification", ts.LastModification.Format(TimeLayout))
	node.set("added", ts.Added.Format(TimeLayout))
	node.set("type", n.Type().String())

	content, err := c.content(n.Content())
	if err != nil {
		return nil, fmt.Errorf("note %s: %w", n.ID(), err)
	}
	node.append(content)

	if states := n.States(); len(states) > 0 {
		ids := make([]string, len(states))
		for i, s := range states {
			ids[i] = s.ID()
		}
		node.append(textElement("tags", strings.Join(ids, ";")))
	}
	return node, nil
}

// group renders a group note. Only groups of a free basket carry attributes:
// the fold state, plus the geometry when the group sits directly on the
// basket. In a column basket every group is written bare.
func (c *container) group(n *core.Note, parent *core.Note) (*element, error) {
	node := newElement("group")
	if c.basket.Disposition().IsFree() {
		node.setBool("folded", n.Folded())
		if parent == nil {
			g := n.Geometry()
			node.setInt("width", g.Width).
				setInt("x", g.X).
				setInt("y", g.Y)
		}
	}

	for _, child := range n.Notes() {
		childNode, err := c.note(child, n)
		if err != nil {
			return nil, err
		}
		node.append(childNode)
	}
	return node, nil
}

func (c *container) content(content core.Content) (*element, error) {
	switch v := content.(type) {
	case core.ColorContent:
		return textElement("content", v.Color.String()), nil
	case core.CrossReference:
		return textElement("content", v.URL).
			set("title", v.Title).
			set("icon", v.Icon), nil
	case core.Link:
		return textElement("content", v.URL).
			set("title", v.Title).
			set("icon", v.Icon).
			setBool("autoTitle", v.AutoTitle).
			setBool("autoIcon", v.AutoIcon), nil
	case core.HTMLContent:
		name, err := c.spill(string(v))
		if err != nil {
			return nil, err
		}
		return textElement("content", name), nil
	case core.TextContent:
		return textElement("content", string(v)), nil
	case core.FileContent:
		return textElement("content", c.payloads.Name(v.Path)), nil
	case core.ImageContent:
		return textElement("content", c.payloads.Name(v.Path)), nil
	case core.LauncherContent:
		return textElement("content", c.payloads.Name(v.Path)), nil
	case core.SoundContent:
		return textElement("content", c.payloads.Name(v.Path)), nil
	case core.GroupContent:
		return nil, fmt.Errorf("group content has no body: %w", core.ErrContentMismatch)
	}
	return nil, fmt.Errorf("%w: %T", core.ErrUnknownNoteType, content)
}

// spill writes an HTML body to the next free note-<n>.html and returns its name.
func (c *container) spill(body string) (string, error) {
	name := "note-" + strconv.Itoa(c.nextHTML) + ".html"
	if err := writeFileAtomic(c.fsys, c.fsys.Join(c.dir, name), []byte(body)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	c.nextHTML++
	c.spilled++
	return name, nil
}
