package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/apidoc/internal/doctree"
	"github.com/ziadkadry99/apidoc/internal/render"
	"github.com/ziadkadry99/apidoc/internal/templates"
	"github.com/ziadkadry99/apidoc/internal/toggle"
)

func renderedDoc(t *testing.T) *Document {
	t.Helper()
	engine, err := templates.NewHTMLEngine("")
	require.NoError(t, err)

	pkgs := doctree.NewNodeMap()
	pkgs.Set("jadn.convert.schema", &doctree.Node{Body: &doctree.Body{}})
	pkgs.Set("jadn.convert.message", &doctree.Node{})

	markup, err := render.New(engine).Render(&doctree.Node{
		Header: "jadn.convert",
		Body:   &doctree.Body{Package: pkgs},
	})
	require.NoError(t, err)

	doc, err := Parse(markup)
	require.NoError(t, err)
	return doc
}

func TestControlsAndTargets(t *testing.T) {
	doc := renderedDoc(t)

	controls := doc.Controls()
	require.Len(t, controls, 2)
	assert.Equal(t, "jadn_convert-api", controls[0].Target())
	assert.Equal(t, "jadn_convert_schema-api", controls[1].Target())
	assert.Equal(t, toggle.LabelShow, controls[0].Label())

	for _, c := range controls {
		v, ok := doc.Visibility(c.Target())
		require.True(t, ok)
		assert.Equal(t, toggle.Hidden, v, "sections start hidden")
	}
}

func TestToggleRoundTrip(t *testing.T) {
	doc := renderedDoc(t)
	ctl := toggle.New(doc)
	controls := ctl.Bind()
	require.NotEmpty(t, controls)
	root := controls[0]

	require.NoError(t, ctl.OnClick(root))
	v, _ := doc.Visibility("jadn_convert-api")
	assert.Equal(t, toggle.Shown, v)
	assert.Equal(t, toggle.LabelHide, root.Label())

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Contains(t, out, `class="row collapse px-2 show"`)
	assert.Contains(t, out, `aria-expanded="true"`)
	assert.Contains(t, out, ">Hide API</button>")

	require.NoError(t, ctl.OnClick(root))
	v, _ = doc.Visibility("jadn_convert-api")
	assert.Equal(t, toggle.Hidden, v)
	assert.Equal(t, toggle.LabelShow, root.Label())

	out, err = doc.Render()
	require.NoError(t, err)
	assert.NotContains(t, out, "px-2 show")
	assert.NotContains(t, out, `aria-expanded="true"`)
}

func TestVisibilityMissingSection(t *testing.T) {
	doc, err := Parse(`<button data-toggle="collapse" data-target="#nowhere-api">Show API</button>`)
	require.NoError(t, err)

	_, ok := doc.Visibility("nowhere-api")
	assert.False(t, ok)
	assert.Error(t, doc.Toggle("nowhere-api"))

	err = toggle.New(doc).OnClick(doc.Controls()[0])
	assert.ErrorIs(t, err, toggle.ErrUnbound)
}

func TestExpandThroughDocument(t *testing.T) {
	doc := renderedDoc(t)

	n, err := toggle.New(doc).Expand("jadn_convert_schema-api")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, " show\""))
	assert.Contains(t, out, `id="jadn_convert_schema-api" class="row collapse px-2 show"`)
}

func TestClassHelpers(t *testing.T) {
	doc, err := Parse(`<div id="x" class="a  b"></div>`)
	require.NoError(t, err)
	n := doc.byID("x")
	require.NotNil(t, n)

	addClass(n, "show")
	addClass(n, "show")
	assert.Equal(t, "a b show", attr(n, "class"))
	assert.True(t, hasClass(n, "show"))

	removeClass(n, "a")
	assert.Equal(t, "b show", attr(n, "class"))
	assert.Nil(t, doc.byID(""))
}
