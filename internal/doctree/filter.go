package doctree

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PackagePath converts a dotted package name to the slash form used for glob
// matching: "jadn.convert.schema" -> "jadn/convert/schema".
func PackagePath(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// childPath joins a parent path with a child package key. Keys that are
// already qualified by the parent ("jadn.convert" under "jadn") are used as is.
func childPath(parent, key string) string {
	p := PackagePath(key)
	if parent == "" || strings.HasPrefix(p, parent+"/") {
		return p
	}
	return parent + "/" + p
}

// Filter returns a copy of tree keeping only packages whose path matches
// one of include (all when empty) and none of exclude. Ancestors of an
// included package are kept so it stays reachable; descendants of an
// included package are kept unless excluded. Patterns may be written with
// dots or slashes and support doublestar `**`. The input tree is not
// modified.
func Filter(tree *Tree, include, exclude []string) *Tree {
	if tree == nil {
		return nil
	}
	if len(include) == 0 && len(exclude) == 0 {
		return tree
	}
	f := &filter{include: normalizePatterns(include), exclude: normalizePatterns(exclude)}
	return &Tree{Packages: f.nodes(tree.Packages, "", len(include) == 0)}
}

type filter struct {
	include []string
	exclude []string
}

func (f *filter) nodes(m *NodeMap, parent string, included bool) *NodeMap {
	out := NewNodeMap()
	for _, name := range m.Names() {
		n, _ := m.Get(name)
		path := childPath(parent, name)
		if matchesAny(path, f.exclude) {
			continue
		}
		self := included || matchesAny(path, f.include)
		kept, ok := f.node(n, path, self)
		if !ok {
			continue
		}
		out.Set(name, kept)
	}
	return out
}

// node returns a filtered copy of n and whether it should be kept at all.
func (f *filter) node(n *Node, path string, included bool) (*Node, bool) {
	if n == nil || n.Body == nil || n.Body.Package.Len() == 0 {
		return n, included
	}
	children := f.nodes(n.Body.Package, path, included)
	if !included && children.Len() == 0 {
		return nil, false
	}
	body := *n.Body
	body.Package = children
	cp := *n
	cp.Body = &body
	return &cp, true
}

func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, PackagePath(p))
	}
	return out
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
