package fs

import (
	"github.com/aretw0/basketweave/pkg/core"
)

// resourceNames maps origins to the basenames they were placed under.
type resourceNames interface {
	Name(origin string) string
}

// propertiesElement renders the properties block shared by baskets.xml and
// each .basket file.
func propertiesElement(b *core.Basket, icons, backgrounds resourceNames) *element {
	props := newElement("properties")
	props.append(textElement("name", b.Name()))
	props.append(textElement("icon", icons.Name(b.Icon())))

	a := b.Appearance()
	appearance := newElement("appearance")
	if !a.Background.IsDefault() {
		appearance.set("backgroundColor", a.Background.String())
	}
	appearance.set("backgroundImage", backgrounds.Name(a.BackgroundImage))
	if !a.Text.IsDefault() {
		appearance.set("textColor", a.Text.String())
	}
	props.append(appearance)

	columns, free := b.Disposition().Columns()
	props.append(newElement("disposition").
		set("mindMap", "false").
		setInt("columnCount", columns).
		setBool("free", free))

	props.append(newElement("shortcut").
		set("combination", b.Shortcut().Combination).
		set("action", "show"))

	props.append(newElement("protection").
		set("key", "").
		set("type", "0"))

	return props
}

// treeDocument renders baskets.xml: every basket in pre-order, nested like
// the forest. The first basket is the one opened by default.
func treeDocument(f core.Forest, icons, backgrounds resourceNames) ([]byte, error) {
	root := newElement("basketTree")

	var build func(b *core.Basket) *element
	build = func(b *core.Basket) *element {
		node := newElement("basket")
		children := b.Children()
		if len(children) > 0 {
			node.setBool("folded", b.Folded())
		}
		node.set("folderName", b.FolderName()+"/")
		node.append(propertiesElement(b, icons, backgrounds))
		for _, child := range children {
			node.append(build(child))
		}
		return node
	}

	for _, b := range f.Baskets {
		root.append(build(b))
	}
	if first := root.SelectElement("basket"); first != nil {
		first.CreateAttr("lastOpen", "true")
	}
	return document(root)
}

// tagsDocument renders tags.xml, the flat registry of tags and their states.
func tagsDocument(tags []*core.Tag, emblems resourceNames) ([]byte, error) {
	root := newElement("basketTags")
	total := 0
	for _, t := range tags {
		total += len(t.States())
	}
	root.setInt("nextStateUid", total+1)

	for _, t := range tags {
		node := newElement("tag")
		node.append(
			textElement("name", t.Name()),
			textElement("shortcut", t.Shortcut().Combination),
			textElement("inherited", boolString(t.Inherited())),
		)
		for _, s := range t.States() {
			node.append(stateElement(s, emblems))
		}
		root.append(node)
	}
	return document(root)
}

func stateElement(s *core.State, emblems resourceNames) *element {
	node := newElement("state").set("id", s.ID())
	node.append(textElement("name", s.Name()))
	node.append(textElement("emblem", emblems.Name(s.Emblem())))

	style := s.TextStyle()
	text := newElement("text").
		setBool("strikeOut", style.StrikeOut).
		setBool("bold", style.Bold).
		setBool("underline", style.Underline)
	if !style.Color.IsDefault() {
		text.set("color", style.Color.String())
	}
	text.setBool("italic", style.Italic)
	node.append(text)

	font := s.Font()
	node.append(newElement("font").
		setInt("size", font.Size).
		set("name", font.Name))

	if bg := s.Background(); !bg.IsDefault() {
		node.append(textElement("backgroundColor", bg.String()))
	}

	node.append(newElement("textEquivalent").
		set("string", s.TextEquivalent()).
		setBool("onAllTextLines", s.OnAllTextLines()))
	return node
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
