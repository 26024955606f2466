package dom

import (
	"github.com/npillmayer/boxtree/tree"
)

// NodeHasText is a predicate to match nodes with text content.
// It is intended to be used with tree.DescendentsWith.
var NodeHasText = func(n *tree.Node[*Node], unused *tree.Node[*Node]) (
	match *tree.Node[*Node], err error) {
	//
	if n.Payload.text != "" {
		return n, nil
	}
	return nil, nil
}

// NodeNeedsRepaint is a predicate to match nodes with a stale visual.
var NodeNeedsRepaint = func(n *tree.Node[*Node], unused *tree.Node[*Node]) (
	match *tree.Node[*Node], err error) {
	//
	if n.Payload.visualStale {
		return n, nil
	}
	return nil, nil
}

// Walk calls action for n and all its descendants, parents before children.
// If action returns tree.SkipChildren, the descendants of the current node
// are skipped.
func Walk(n *Node, action func(*Node) error) error {
	return tree.TopDown(&n.node, func(tn, _ *tree.Node[*Node], _ int) error {
		return action(tn.Payload)
	})
}

// Repaints returns all nodes below the root (and the root itself) whose
// visual representation is stale, in pre-order.
func (t *Tree) Repaints() []*Node {
	var stale []*Node
	if t.root.visualStale {
		stale = append(stale, t.root)
	}
	matches, _ := tree.DescendentsWith(&t.root.node, NodeNeedsRepaint)
	for _, m := range matches {
		stale = append(stale, m.Payload)
	}
	return stale
}

// TextNodes returns all nodes below n which have text content.
func TextNodes(n *Node) []*Node {
	matches, _ := tree.DescendentsWith(&n.node, NodeHasText)
	nodes := make([]*Node, len(matches))
	for i, m := range matches {
		nodes[i] = m.Payload
	}
	return nodes
}
