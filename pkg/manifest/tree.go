package manifest

import (
	"fmt"
	"strings"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/disiqueira/gotree/v3"
)

// RenderTree draws the baskets of f and their notes as a text tree.
func RenderTree(rootLabel string, f core.Forest) string {
	tree := gotree.New(rootLabel)
	for _, b := range f.Baskets {
		addBasket(tree, b)
	}
	return tree.Print()
}

func addBasket(parent gotree.Tree, b *core.Basket) {
	label := fmt.Sprintf("%s [%s]", b.Name(), b.Disposition())
	if folder := b.FolderName(); folder != "" {
		label += " " + folder + "/"
	}
	node := parent.Add(label)
	for _, n := range b.Notes() {
		addNote(node, n)
	}
	for _, child := range b.Children() {
		addBasket(node, child)
	}
}

func addNote(parent gotree.Tree, n *core.Note) {
	label := n.Type().String()
	switch c := n.Content().(type) {
	case core.TextContent:
		label += ": " + abbreviate(string(c), 40)
	case core.Link:
		label += ": " + c.URL
	case core.CrossReference:
		label += ": " + c.URL
	case core.ColorContent:
		label += ": " + c.Color.String()
	default:
		if path, ok := core.SourcePath(c); ok {
			label += ": " + path
		}
	}
	if states := n.States(); len(states) > 0 {
		ids := make([]string, len(states))
		for i, s := range states {
			ids[i] = s.ID()
		}
		label += " #" + strings.Join(ids, ",")
	}
	node := parent.Add(label)
	for _, child := range n.Notes() {
		addNote(node, child)
	}
}

func abbreviate(s string, limit int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= limit {
		return string(r)
	}
	return string(r[:limit-1]) + "…"
}
