package dom

import (
	"github.com/npillmayer/boxtree/tree"
)

// markCascade flags n for re-styling and lets its ancestors know. An
// ancestor already flagged has flagged ancestors, so the walk stops there.
func (n *Node) markCascade() {
	n.needsCascade = true
	_, _ = tree.AncestorWith(&n.node, flagDescendantCascade)
}

func flagDescendantCascade(anc, _ *tree.Node[*Node]) (*tree.Node[*Node], error) {
	if anc.Payload.descendantNeedsCascade {
		return anc, nil
	}
	anc.Payload.descendantNeedsCascade = true
	return nil, nil
}

// markSubtreeCascade flags n and all its descendants for re-styling.
func (n *Node) markSubtreeCascade() {
	_ = tree.TopDown(&n.node, func(tn, _ *tree.Node[*Node], _ int) error {
		tn.Payload.needsCascade = true
		tn.Payload.descendantNeedsCascade = tn.ChildCount() > 0
		return nil
	})
	n.markCascade()
}

// markReflow flags n and all its ancestors for reflow. A child's size may
// change the auto-computed size of any ancestor.
func (n *Node) markReflow() {
	for p := n; p != nil; p = p.Parent() {
		p.needsReflow = true
	}
}

// invalidateQueries drops the query caches of n and all its ancestors.
func (n *Node) invalidateQueries() {
	for p := n; p != nil; p = p.Parent() {
		if p.firstCache != nil || p.allCache != nil || p.idCache != nil {
			tracer().Debugf("invalidating query caches of %v", p)
		}
		p.firstCache, p.allCache, p.idCache = nil, nil, nil
	}
}
