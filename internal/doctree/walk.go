package doctree

import (
	"errors"
	"sort"
)

// SkipChildren may be returned from a WalkFunc to skip the children of the
// package being visited.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every package in a tree. key is the package's key
// in its parent mapping and depth is 0 for roots.
type WalkFunc func(key string, depth int, n *Node) error

// Walk visits the packages of tree depth-first in the order they render:
// roots as declared, nested packages by name.
func Walk(tree *Tree, fn WalkFunc) error {
	if tree == nil {
		return nil
	}
	return walkNodes(tree.Packages, 0, fn)
}

func walkNodes(m *NodeMap, depth int, fn WalkFunc) error {
	names := m.Names()
	if depth > 0 {
		sort.Strings(names)
	}
	for _, name := range names {
		n, _ := m.Get(name)
		err := fn(name, depth, n)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if n != nil && n.Body != nil {
			if err := walkNodes(n.Body.Package, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Find returns the package with the given key anywhere in tree.
func Find(tree *Tree, key string) (*Node, bool) {
	var found *Node
	errFound := errors.New("found")
	err := Walk(tree, func(k string, _ int, n *Node) error {
		if k == key && n != nil {
			found = n
			return errFound
		}
		return nil
	})
	return found, errors.Is(err, errFound)
}
