package dom

import (
	"slices"

	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/layout"
	"github.com/npillmayer/boxtree/style"
)

// Observer is notified about nodes which changed during a render.
type Observer interface {
	NodeChanged(*Node, style.Change)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(*Node, style.Change)

// NodeChanged calls f(n, c).
func (f ObserverFunc) NodeChanged(n *Node, c style.Change) {
	f(n, c)
}

type observer struct {
	Observer
	priority int
}

// Tree drives the styling and layout pipeline for a tree of nodes.
type Tree struct {
	root      *Node
	sheet     *style.Stylesheet // global stylesheet
	sheetGen  uint64
	scale     float32
	measurer  layout.Measurer
	observers []observer
	changed   []*Node // nodes with a non-zero change in the last render
}

// Option configures a Tree.
type Option func(*Tree)

// WithStylesheet sets the global stylesheet.
func WithStylesheet(ss *style.Stylesheet) Option {
	return func(t *Tree) {
		t.sheet = ss
	}
}

// WithScale sets the global scale factor for geometric properties.
// Values <= 0 are ignored.
func WithScale(f float32) Option {
	return func(t *Tree) {
		if f > 0 {
			t.scale = f
		}
	}
}

// WithMeasurer sets the text measurement service.
func WithMeasurer(m layout.Measurer) Option {
	return func(t *Tree) {
		t.measurer = m
	}
}

// WithObserver adds an observer. Observers with a lower priority value are
// notified first; observers with equal priority in the order they were added.
func WithObserver(o Observer, priority int) Option {
	return func(t *Tree) {
		t.observers = append(t.observers, observer{Observer: o, priority: priority})
	}
}

// NewTree creates a tree for a root node.
func NewTree(root *Node, opts ...Option) *Tree {
	t := &Tree{root: root, scale: 1}
	for _, opt := range opts {
		opt(t)
	}
	slices.SortStableFunc(t.observers, func(a, b observer) int {
		return a.priority - b.priority
	})
	t.sheetGen = t.sheet.Generation()
	root.markSubtreeCascade()
	root.markReflow()
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Stylesheet returns the global stylesheet, which may be nil.
func (t *Tree) Stylesheet() *style.Stylesheet {
	return t.sheet
}

// SetStylesheet replaces the global stylesheet.
func (t *Tree) SetStylesheet(ss *style.Stylesheet) {
	t.sheet = ss
	t.sheetGen = ss.Generation()
	t.root.markSubtreeCascade()
}

// Scale returns the global scale factor.
func (t *Tree) Scale() float32 {
	return t.scale
}

// SetScale changes the global scale factor. Values <= 0 are ignored.
func (t *Tree) SetScale(f float32) {
	if f <= 0 || f == t.scale {
		return
	}
	t.scale = f
	t.root.markSubtreeCascade()
}

// Changed returns the nodes which changed during the last render, in
// tree pre-order.
func (t *Tree) Changed() []*Node {
	return append([]*Node(nil), t.changed...)
}

// Render runs the pipeline: it resolves the styles of all nodes needing a
// cascade, lays out the tree with the outer rectangle of the root at origin,
// and notifies observers about changed nodes.
//
// Render returns an error for configuration defects only (see
// layout.ErrInvalidFlow).
func (t *Tree) Render(origin geom.Point) error {
	if gen := t.sheet.Generation(); gen != t.sheetGen {
		tracer().Debugf("global stylesheet modified, restyling")
		t.sheetGen = gen
		t.root.markSubtreeCascade()
	}
	for _, n := range t.changed {
		n.change = style.NoChange
	}
	t.changed = t.changed[:0]
	var sheets []*style.Stylesheet
	if t.sheet != nil {
		sheets = []*style.Stylesheet{t.sheet}
	}
	t.cascade(t.root, sheets)
	if err := layout.Reflow(&t.root.node, origin, t.measurer); err != nil {
		return err
	}
	for _, n := range t.changed {
		for _, o := range t.observers {
			o.NodeChanged(n, n.change)
		}
	}
	tracer().Debugf("render done, %d node(s) changed", len(t.changed))
	return nil
}

// cascade is a single top-down sweep. sheets holds the global stylesheet
// followed by the stylesheets scoped to ancestors of n, outermost first.
func (t *Tree) cascade(n *Node, sheets []*style.Stylesheet) {
	if n.sheet != nil {
		sheets = append(sheets[:len(sheets):len(sheets)], n.sheet)
	}
	if n.needsCascade {
		style.Cascade(&n.computed, n, sheets, t.scale)
		t.commit(n)
		n.needsCascade = false
	}
	if n.descendantNeedsCascade {
		for _, ch := range n.node.Children() {
			t.cascade(ch.Payload, sheets)
		}
		n.descendantNeedsCascade = false
	}
}

// commit compares the snapshots of the new computed style against the
// committed ones and propagates the result.
func (t *Tree) commit(n *Node) {
	snap := n.computed.Snapshot()
	c := style.LayoutChanged | style.PaintChanged
	if n.cascaded {
		c = style.Diff(n.committed, snap)
	}
	n.committed, n.cascaded = snap, true
	if c.Layout() {
		n.markReflow()
	}
	if c.Paint() {
		n.visualStale = true
	}
	if c != style.NoChange {
		tracer().Debugf("%v changed: %v", n, c)
		n.change = c
		t.changed = append(t.changed, n)
	}
}
