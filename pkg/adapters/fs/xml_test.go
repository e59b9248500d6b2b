package fs

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, root *element) string {
	t.Helper()
	out, err := document(root)
	require.NoError(t, err)
	return string(out)
}

func TestDocument(t *testing.T) {
	root := newElement("basketTree")
	root.append(
		newElement("basket").set("folderName", "a/").setBool("folded", false),
		textElement("name", `Tom & "Jerry" <3 >`),
		textElement("icon", ""),
	)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE basketTree>
<basketTree>
 <basket folderName="a/" folded="false"/>
 <name>Tom &amp; &quot;Jerry&quot; &lt;3 &gt;</name>
 <icon/>
</basketTree>
`
	assert.Equal(t, want, render(t, root))
}

func TestElementNesting(t *testing.T) {
	root := newElement("basket")
	props := newElement("properties")
	props.append(textElement("name", "Welcome"))
	root.append(props, newElement("notes"))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE basket>
<basket>
 <properties>
  <name>Welcome</name>
 </properties>
 <notes/>
</basket>
`
	assert.Equal(t, want, render(t, root))
}

func TestAttributeEscaping(t *testing.T) {
	root := newElement("content").set("title", `a & "b" <c>`)
	out := render(t, root)
	assert.Contains(t, out, `<content title="a &amp; &quot;b&quot; &lt;c&gt;"/>`)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))
	assert.Equal(t, `a & "b" <c>`, doc.Root().SelectAttrValue("title", ""), "round trips through a parser")
}

func TestElementSetReplaces(t *testing.T) {
	e := newElement("basket").set("folded", "false").set("folderName", "x/")
	e.set("folded", "true")

	assert.Equal(t, "true", e.SelectAttrValue("folded", ""))
	require.Len(t, e.Attr, 2)
	assert.Equal(t, "folded", e.Attr[0].Key, "replacing keeps the original position")
}
