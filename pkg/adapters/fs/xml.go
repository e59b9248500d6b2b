package fs

import (
	"strconv"

	"github.com/beevik/etree"
)

// element wraps an etree element with chainable setters. Attributes keep
// insertion order, which is the order they appear in the output.
type element struct {
	*etree.Element
}

func newElement(name string) *element {
	return &element{etree.NewElement(name)}
}

// textElement returns <name>text</name>. An empty text leaves the element
// childless, so it renders self-closed.
func textElement(name, text string) *element {
	e := newElement(name)
	if text != "" {
		e.SetText(text)
	}
	return e
}

// set adds an attribute or replaces its value in place.
func (e *element) set(name, value string) *element {
	e.CreateAttr(name, value)
	return e
}

func (e *element) setBool(name string, v bool) *element {
	return e.set(name, strconv.FormatBool(v))
}

func (e *element) setInt(name string, v int) *element {
	return e.set(name, strconv.Itoa(v))
}

func (e *element) append(children ...*element) *element {
	for _, child := range children {
		e.AddChild(child.Element)
	}
	return e
}

// document renders root with the XML declaration and a bare DOCTYPE naming the
// root element. Children are indented by one space per level and text-only
// elements stay on one line.
func document(root *element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE " + root.Tag)
	doc.SetRoot(root.Element)
	doc.Indent(1)

	return doc.WriteToBytes()
}
