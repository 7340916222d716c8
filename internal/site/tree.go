package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/apidoc/internal/doctree"
	"github.com/ziadkadry99/apidoc/internal/render"
)

// PackageTree represents a node in the sidebar package navigation.
type PackageTree struct {
	Name     string // Full package key, e.g. "jadn.convert.schema".
	Label    string // Display name relative to the parent, e.g. "schema".
	Anchor   string // Section id; empty for packages without a body.
	Children []*PackageTree
}

// BuildPackageTree constructs the navigation tree of every package in tree,
// in render order.
func BuildPackageTree(tree *doctree.Tree) *PackageTree {
	root := &PackageTree{Name: "", Label: "packages"}
	stack := []*PackageTree{root}

	_ = doctree.Walk(tree, func(key string, depth int, n *doctree.Node) error {
		parent := stack[depth]
		node := &PackageTree{
			Name:  key,
			Label: shortName(parent.Name, key),
		}
		if n != nil && n.Body != nil {
			node.Anchor = render.AnchorID(key)
		}
		parent.Children = append(parent.Children, node)
		stack = append(stack[:depth+1], node)
		return nil
	})
	return root
}

// Count returns the number of packages below t.
func (t *PackageTree) Count() int {
	n := 0
	for _, child := range t.Children {
		n += 1 + child.Count()
	}
	return n
}

// ToHTML renders the tree as nested <ul><li> HTML for the sidebar.
func (t *PackageTree) ToHTML() template.HTML {
	var b strings.Builder
	renderChildren(&b, t)
	return template.HTML(b.String())
}

func renderChildren(b *strings.Builder, node *PackageTree) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		label := template.HTMLEscapeString(child.Label)
		title := template.HTMLEscapeString(child.Name)
		if child.Anchor == "" {
			fmt.Fprintf(b, `<li class="pkg leaf"><span title="%s">%s</span>`, title, label)
		} else {
			fmt.Fprintf(b, `<li class="pkg"><a href="#%s" data-section="%s" title="%s">%s</a>`,
				child.Anchor, child.Anchor, title, label)
		}
		b.WriteString("\n")
		renderChildren(b, child)
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
}

// shortName strips the parent's dotted prefix from a package key:
// "jadn.convert.schema" under "jadn.convert" becomes "schema".
func shortName(parent, key string) string {
	if parent != "" && strings.HasPrefix(key, parent+".") {
		return strings.TrimPrefix(key, parent+".")
	}
	return key
}
