package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/apidoc/internal/doctree"
)

func navFixture() *doctree.Tree {
	convert := doctree.NewNodeMap()
	convert.Set("jadn.convert.schema", &doctree.Node{Body: &doctree.Body{}})
	convert.Set("jadn.convert.message", &doctree.Node{Body: &doctree.Body{}})

	jadn := doctree.NewNodeMap()
	jadn.Set("jadn.utils", &doctree.Node{})
	jadn.Set("jadn.convert", &doctree.Node{Body: &doctree.Body{Package: convert}})

	roots := doctree.NewNodeMap()
	roots.Set("jadn", &doctree.Node{Body: &doctree.Body{Package: jadn}})
	return &doctree.Tree{Packages: roots}
}

func TestBuildPackageTree(t *testing.T) {
	tree := BuildPackageTree(navFixture())

	require.Equal(t, 5, tree.Count())
	require.Len(t, tree.Children, 1)

	jadn := tree.Children[0]
	assert.Equal(t, "jadn", jadn.Name)
	assert.Equal(t, "jadn-api", jadn.Anchor)
	require.Len(t, jadn.Children, 2)

	// Children are in render order: convert before utils.
	convert, utils := jadn.Children[0], jadn.Children[1]
	assert.Equal(t, "convert", convert.Label)
	assert.Equal(t, "jadn.utils", utils.Name)
	assert.Empty(t, utils.Anchor, "leaf packages have no section")

	require.Len(t, convert.Children, 2)
	assert.Equal(t, "message", convert.Children[0].Label)
	assert.Equal(t, "schema", convert.Children[1].Label)
}

func TestBuildPackageTreeEmpty(t *testing.T) {
	tree := BuildPackageTree(nil)
	assert.Zero(t, tree.Count())
	assert.Empty(t, tree.ToHTML())
}

func TestPackageTreeToHTML(t *testing.T) {
	html := string(BuildPackageTree(navFixture()).ToHTML())

	assert.Contains(t, html, `<a href="#jadn_convert_schema-api" data-section="jadn_convert_schema-api" title="jadn.convert.schema">schema</a>`)
	assert.Contains(t, html, `<li class="pkg leaf"><span title="jadn.utils">utils</span>`, "leaf packages do not link")
	assert.Equal(t, 3, strings.Count(html, "<ul>"))
}

func TestShortName(t *testing.T) {
	tests := []struct {
		parent, key, want string
	}{
		{"", "jadn", "jadn"},
		{"jadn", "jadn.codec", "codec"},
		{"jadn.convert", "jadn.convert.schema", "schema"},
		{"jadn", "other.pkg", "other.pkg"},
		{"jadn", "jadnx", "jadnx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shortName(tt.parent, tt.key), "%s under %s", tt.key, tt.parent)
	}
}
