package fs

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/basketweave/pkg/core"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTimes = core.Timestamps{
	LastModification: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
	Added:            time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC),
}

// basenames resolves every origin to its basename.
type basenames struct{}

func (basenames) Name(origin string) string {
	if i := strings.LastIndexAny(origin, `/\`); i >= 0 {
		return origin[i+1:]
	}
	return origin
}

func renderBasket(t *testing.T, b *core.Basket) string {
	t.Helper()
	mem := memfs.New()
	require.NoError(t, mem.MkdirAll("page", 0755))
	c, err := newContainer(mem, "page", b, basenames{})
	require.NoError(t, err)
	doc, err := c.document(basenames{}, basenames{})
	require.NoError(t, err)
	return string(doc)
}

func groupWithText(t *testing.T) *core.Note {
	t.Helper()
	g, err := core.NewNote(core.GroupContent{}, testTimes, core.NoteGeometry(100, 10, 20), core.NoteFolded(true))
	require.NoError(t, err)
	n, err := core.NewNote(core.TextContent("inside"), testTimes, core.NoteGeometry(5, 6, 7))
	require.NoError(t, err)
	require.NoError(t, g.AddNote(n))
	return g
}

func TestGroupAttributes(t *testing.T) {
	t.Run("Free Basket", func(t *testing.T) {
		b, err := core.NewBasket("Free", core.BasketDisposition(core.DispositionFree))
		require.NoError(t, err)
		require.NoError(t, b.AddNote(groupWithText(t)))

		out := renderBasket(t, b)
		assert.Contains(t, out, `<group folded="true" width="100" x="10" y="20">`)
		assert.Contains(t, out, `<note lastModification="2020-01-02T03:04:05" added="2019-12-31T23:59:59" type="text">`)
	})

	t.Run("Column Basket", func(t *testing.T) {
		b, err := core.NewBasket("Column", core.BasketDisposition(core.DispositionOneColumn))
		require.NoError(t, err)
		require.NoError(t, b.AddNote(groupWithText(t)))

		out := renderBasket(t, b)
		assert.Contains(t, out, "  <group>\n")
		assert.NotContains(t, out, `width="100"`)
		assert.NotContains(t, out, `folded=`)
		assert.Contains(t, out, `<content>inside</content>`)
	})

	nested := func(t *testing.T, d core.Disposition) string {
		t.Helper()
		b, err := core.NewBasket("Nested", core.BasketDisposition(d))
		require.NoError(t, err)
		outer, err := core.NewNote(core.GroupContent{}, testTimes)
		require.NoError(t, err)
		require.NoError(t, outer.AddNote(groupWithText(t)))
		require.NoError(t, b.AddNote(outer))
		return renderBasket(t, b)
	}

	t.Run("Nested Group In Free Basket", func(t *testing.T) {
		out := nested(t, core.DispositionFree)
		assert.Contains(t, out, `<group folded="false" width="0" x="0" y="0">`)
		assert.Contains(t, out, `<group folded="true">`)
		assert.Contains(t, out, `<content>inside</content>`, "nested children are written")
	})

	t.Run("Nested Group In Column Basket", func(t *testing.T) {
		out := nested(t, core.DispositionOneColumn)
		assert.Equal(t, 2, strings.Count(out, "<group>"))
		assert.NotContains(t, out, `folded=`)
		assert.Contains(t, out, `<content>inside</content>`)
	})
}

func TestContentVariants(t *testing.T) {
	link := core.Link{Title: "kde.org", URL: "https://kde.org", AutoTitle: true}
	ref := core.CrossReference{Title: "Welcome", URL: "basket://welcome", Icon: "go-next"}

	cases := []struct {
		name    string
		content core.Content
		want    string
	}{
		{"Link", link, `<content title="kde.org" icon="" autoTitle="true" autoIcon="false">https://kde.org</content>`},
		{"Cross Reference", ref, `<content title="Welcome" icon="go-next">basket://welcome</content>`},
		{"Color", core.ColorContent{Color: core.MustColor("#AABBCC")}, `<content>#AABBCC</content>`},
		{"Text", core.TextContent("a < b"), `<content>a &lt; b</content>`},
		{"Image", core.ImageContent{Path: "/tmp/pics/cat.png"}, `<content>cat.png</content>`},
		{"Launcher", core.LauncherContent{Path: "/usr/share/app.desktop"}, `<content>app.desktop</content>`},
		{"Sound", core.SoundContent{Path: "/tmp/beep.ogg"}, `<content>beep.ogg</content>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := core.NewBasket("B")
			require.NoError(t, err)
			n, err := core.NewNote(tc.content, testTimes)
			require.NoError(t, err)
			require.NoError(t, b.AddNote(n))

			out := renderBasket(t, b)
			assert.Contains(t, out, tc.want)
			assert.Contains(t, out, `type="`+tc.content.Type().String()+`"`)
		})
	}
}

func TestNextHTMLIndex(t *testing.T) {
	mem := memfs.New()

	n, err := nextHTMLIndex(mem, "missing")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, name := range []string{"note-2.html", "note-10.html", "note-3.htm", "xnote-99.html"} {
		f, err := mem.Create("dir/" + name)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}
	n, err = nextHTMLIndex(mem, "dir")
	require.NoError(t, err)
	assert.Equal(t, 11, n)
}
