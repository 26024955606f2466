package dom

import (
	"github.com/npillmayer/boxtree/selector"
	"github.com/npillmayer/boxtree/tree"
)

// Query returns the first descendant of n matching the selector q, or nil.
// Alternatives of a selector list are tried in order, and the first one
// with a match wins. n itself is never part of the result.
//
// Results are cached per node and query string.
func (n *Node) Query(q string) (*Node, error) {
	if r, ok := n.firstCache[q]; ok {
		tracer().Debugf("query cache hit for %q at %v", q, n)
		return r, nil
	}
	g, err := selector.Parse(q)
	if err != nil {
		return nil, err
	}
	r := FromTreeNode(selector.First(&n.node, g))
	if n.firstCache == nil {
		n.firstCache = make(map[string]*Node)
	}
	n.firstCache[q] = r
	return r, nil
}

// QueryAll returns all descendants of n matching the selector q. Matches
// of a selector list are concatenated in discovery order, without
// duplicates.
func (n *Node) QueryAll(q string) ([]*Node, error) {
	r, ok := n.allCache[q]
	if ok {
		tracer().Debugf("query cache hit for %q at %v", q, n)
	} else {
		g, err := selector.Parse(q)
		if err != nil {
			return nil, err
		}
		matches := selector.All(&n.node, g)
		r = make([]*Node, len(matches))
		for i, m := range matches {
			r[i] = m.Payload
		}
		if n.allCache == nil {
			n.allCache = make(map[string][]*Node)
		}
		n.allCache[q] = r
	}
	return append([]*Node(nil), r...), nil
}

// MustQuery is like Query, but panics on a malformed selector.
func (n *Node) MustQuery(q string) *Node {
	r, err := n.Query(q)
	if err != nil {
		panic(err)
	}
	return r
}

// FindByID returns the first node in depth-first order, starting with n
// itself, which carries identifier id. Results are cached independently
// from selector queries.
func (n *Node) FindByID(id string) *Node {
	if id == "" {
		return nil
	}
	if r, ok := n.idCache[id]; ok {
		return r
	}
	var r *Node
	_ = tree.TopDown(&n.node, func(tn, _ *tree.Node[*Node], _ int) error {
		if r != nil {
			return tree.SkipChildren
		}
		if tn.Payload.id == id {
			r = tn.Payload
			return tree.SkipChildren
		}
		return nil
	})
	if n.idCache == nil {
		n.idCache = make(map[string]*Node)
	}
	n.idCache[id] = r
	return r
}
