// Package render turns a documentation tree into card markup with
// collapsible sections.
//
// Traversal is depth-first and pre-order. Within a node's body the slots are
// expanded in a fixed order: packages (sorted by name), enums and classes
// (sorted by case-normalised header) and finally functions (declaration
// order). The source tree is never modified.
package render

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/apidoc/internal/doctree"
	"github.com/ziadkadry99/apidoc/internal/templates"
)

// MalformedNodeError records a subtree that could not be rendered. The
// subtree contributes no markup; the rest of the tree is still rendered.
type MalformedNodeError struct {
	Path string
	Err  error
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *MalformedNodeError) Unwrap() error { return e.Err }

var errNilNode = errors.New("node is empty")

// Stats counts what a render pass produced.
type Stats struct {
	Cards     int
	Sections  int
	Functions int
}

// Add accumulates another pass into s.
func (s *Stats) Add(o Stats) {
	s.Cards += o.Cards
	s.Sections += o.Sections
	s.Functions += o.Functions
}

// Fragment is the rendered markup of one root package.
type Fragment struct {
	Name   string
	Anchor string // empty for a leaf
	HTML   string
}

// Output is the result of rendering a whole tree.
type Output struct {
	Fragments []Fragment
	Stats     Stats
}

// Renderer renders documentation nodes through a template Engine.
type Renderer struct {
	engine templates.Engine
}

// New returns a Renderer using engine.
func New(engine templates.Engine) *Renderer {
	return &Renderer{engine: engine}
}

// Render renders node, using its Header as the display name. The markup is
// always returned; a non-nil error joins every MalformedNodeError met on the
// way.
func (r *Renderer) Render(node *doctree.Node) (string, error) {
	p := &pass{engine: r.engine}
	header := ""
	if node != nil {
		header = node.Header
	}
	out := p.node(header, header, node)
	return out, errors.Join(p.errs...)
}

// RenderTree renders every root package in declaration order. Each root's
// display name is its key in the tree.
func (r *Renderer) RenderTree(tree *doctree.Tree) (*Output, error) {
	p := &pass{engine: r.engine}
	out := &Output{}
	if tree == nil {
		return out, nil
	}
	for _, name := range tree.Packages.Names() {
		n, _ := tree.Packages.Get(name)
		frag := Fragment{Name: name, HTML: p.node(name, name, n)}
		if n != nil && n.Body != nil {
			frag.Anchor = AnchorID(name)
		}
		out.Fragments = append(out.Fragments, frag)
	}
	out.Stats = p.stats
	return out, errors.Join(p.errs...)
}

// pass holds the state of a single render call.
type pass struct {
	engine templates.Engine
	errs   []error
	stats  Stats
}

func (p *pass) fail(path string, err error) {
	p.errs = append(p.errs, &MalformedNodeError{Path: path, Err: err})
}

// render runs a template, recording a failure against path.
func (p *pass) render(path, name string, data any) (string, bool) {
	out, err := p.engine.Render(name, data)
	if err != nil {
		p.fail(path, err)
		return "", false
	}
	return out, true
}

func (p *pass) node(path, header string, n *doctree.Node) string {
	if n == nil {
		p.fail(path, errNilNode)
		return ""
	}

	before := p.stats
	card := templates.CardData{
		Header: template.HTML(template.HTMLEscapeString(header)),
		Title:  n.Title,
		Text:   n.Text,
	}

	if n.Body != nil {
		id := AnchorID(header)
		// The display header is fixed before any child renders.
		if toggle, ok := p.render(path, templates.Toggle, templates.ToggleData{Header: header, Target: id}); ok {
			card.Header = template.HTML(toggle)
		}

		var body strings.Builder
		for _, name := range sortedNames(n.Body.Package) {
			child, _ := n.Body.Package.Get(name)
			body.WriteString(p.node(path+"/"+name, name, child))
		}
		for _, e := range sortedEntries(n.Body.Enum) {
			body.WriteString(p.entry(path, e))
		}
		for _, e := range sortedEntries(n.Body.Class) {
			body.WriteString(p.entry(path, e))
		}
		body.WriteString(p.functions(path, n.Body.Function))

		card.Body = template.HTML(section(id, body.String()))
	}

	out, ok := p.card(path, card)
	if !ok {
		// The subtree contributes no markup, so none of it is counted.
		p.stats = before
		return ""
	}
	if n.Body != nil {
		p.stats.Sections++
	}
	return out
}

// entry renders a class or enum grouping as a card whose body is its
// constructor, nested enum values and functions, in that order. The card
// header comes from the entry's own record.
func (p *pass) entry(parent string, e *doctree.Entry) string {
	header := e.Identity()
	path := parent + "/" + header
	if e == nil {
		p.fail(path, errNilNode)
		return ""
	}

	before := p.stats
	var body strings.Builder
	if e.Constructor != nil {
		if out, ok := p.render(path, templates.Constructor, e.Constructor); ok {
			body.WriteString(out)
		}
	}
	if len(e.Enum) > 0 {
		if out, ok := p.render(path, templates.EnumList, templates.EnumListData{Enum: e.Enum}); ok {
			body.WriteString(out)
		}
	}
	body.WriteString(p.functions(path, e.Function))

	out, ok := p.card(path, templates.CardData{
		Header: template.HTML(template.HTMLEscapeString(header)),
		Title:  e.Title,
		Text:   e.Text,
		Body:   template.HTML(body.String()),
	})
	if !ok {
		p.stats = before
	}
	return out
}

// functions renders a whole function mapping as one block, in insertion
// order. An empty mapping renders nothing.
func (p *pass) functions(path string, fns *doctree.FunctionMap) string {
	if fns.Len() == 0 {
		return ""
	}
	out, ok := p.render(path, templates.FunctionList, templates.FunctionListData{Functions: fns.Pairs()})
	if !ok {
		return ""
	}
	p.stats.Functions += fns.Len()
	return out
}

// card renders the card template. A failed card contributes nothing and is
// not counted.
func (p *pass) card(path string, data templates.CardData) (string, bool) {
	out, ok := p.render(path, templates.Card, data)
	if !ok {
		return "", false
	}
	p.stats.Cards++
	return out, true
}

// section wraps a body in the collapsible container governed by the toggle
// control. Sections start hidden: the container lacks the "show" class.
func section(id, body string) string {
	return `<div id="` + template.HTMLEscapeString(id) + `" class="row collapse px-2">` + body + `</div>`
}
