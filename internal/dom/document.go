// Package dom is a small, headless stand-in for the browser DOM: it parses
// rendered markup and exposes the collapsible sections and their controls so
// the toggle controller can run outside a browser.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/apidoc/internal/toggle"
)

// ShownClass marks an expanded section.
const ShownClass = "show"

// Document is a parsed markup fragment inside a container element.
type Document struct {
	root *html.Node
}

// Parse parses markup as the children of a <div> container.
func Parse(markup string) (*Document, error) {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), container)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return &Document{root: container}, nil
}

// Render serialises the container's children back to markup.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("rendering markup: %w", err)
		}
	}
	return buf.String(), nil
}

// Controls returns every element carrying data-toggle="collapse", in
// document order.
func (d *Document) Controls() []toggle.Control {
	var controls []toggle.Control
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "data-toggle") == "collapse" {
			controls = append(controls, &control{n: n})
		}
		return true
	})
	return controls
}

// Visibility reports whether section id is shown.
func (d *Document) Visibility(id string) (toggle.Visibility, bool) {
	n := d.byID(id)
	if n == nil {
		return toggle.Hidden, false
	}
	if hasClass(n, ShownClass) {
		return toggle.Shown, true
	}
	return toggle.Hidden, true
}

// Toggle flips the "show" class on section id and mirrors the new state in
// the aria-expanded attribute of the controls that govern it.
func (d *Document) Toggle(id string) error {
	n := d.byID(id)
	if n == nil {
		return fmt.Errorf("no element with id %q", id)
	}
	shown := !hasClass(n, ShownClass)
	if shown {
		addClass(n, ShownClass)
	} else {
		removeClass(n, ShownClass)
	}

	expanded := "false"
	if shown {
		expanded = "true"
	}
	for _, c := range d.Controls() {
		if c.Target() == id {
			setAttr(c.(*control).n, "aria-expanded", expanded)
		}
	}
	return nil
}

// byID returns the element with the given id, or nil.
func (d *Document) byID(id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// control adapts a toggle element to toggle.Control.
type control struct {
	n *html.Node
}

func (c *control) Target() string {
	return strings.TrimPrefix(attr(c.n, "data-target"), "#")
}

func (c *control) Label() string {
	return strings.TrimSpace(textContent(c.n))
}

func (c *control) SetLabel(label string) {
	for ch := c.n.FirstChild; ch != nil; {
		next := ch.NextSibling
		c.n.RemoveChild(ch)
		ch = next
	}
	c.n.AppendChild(&html.Node{Type: html.TextNode, Data: label})
}

// walk visits n and its descendants in document order until visit
// returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	classes := append(strings.Fields(attr(n, "class")), class)
	setAttr(n, "class", strings.Join(classes, " "))
}

func removeClass(n *html.Node, class string) {
	var kept []string
	for _, c := range strings.Fields(attr(n, "class")) {
		if c != class {
			kept = append(kept, c)
		}
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}
