package dom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/boxtree/layout"
	"github.com/npillmayer/boxtree/style"
	"github.com/npillmayer/boxtree/tree"
)

// Node is a styled box, the building block of a Tree.
type Node struct {
	node        tree.Node[*Node] // we build on top of general purpose tree
	id          string
	classes     []string
	tags        []string
	text        string
	inline      style.Style
	classStyles map[string]style.Style
	tagStyles   map[string]style.Style
	sheet       *style.Stylesheet // scoped to this subtree
	// derived
	computed  style.ComputedStyle
	committed style.Snapshot
	cascaded  bool // committed is valid
	bounds    layout.Bounds
	change    style.Change
	// dirty flags
	needsCascade           bool
	descendantNeedsCascade bool
	needsReflow            bool
	visualStale            bool
	// caches
	firstCache map[string]*Node
	allCache   map[string][]*Node
	idCache    map[string]*Node
}

var idPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]+$`)

// ValidID checks an identifier against the naming pattern for nodes: a
// letter, followed by at least one letter, digit, '_' or '-'.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// NewNode creates a detached node. id may be empty; otherwise it has to be
// a valid identifier (see ValidID).
func NewNode(id string) (*Node, error) {
	if id != "" && !ValidID(id) {
		err := fmt.Errorf("%w: %q", ErrInvalidID, id)
		tracer().Errorf(err.Error())
		return nil, err
	}
	n := &Node{id: id, needsCascade: true, needsReflow: true}
	n.node.Payload = n // Payload will always reference the node itself
	return n, nil
}

// MustNode is like NewNode, but panics for an invalid identifier.
func MustNode(id string) *Node {
	n, err := NewNode(id)
	if err != nil {
		panic(err)
	}
	return n
}

// TreeNode returns the generic tree node of n.
func (n *Node) TreeNode() *tree.Node[*Node] {
	return &n.node
}

// FromTreeNode gets the Node from a generic tree node.
func FromTreeNode(tn *tree.Node[*Node]) *Node {
	if tn == nil {
		return nil
	}
	return tn.Payload
}

// ID returns the identifier of n, if any.
func (n *Node) ID() string {
	return n.id
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("box")
	if n.id != "" {
		b.WriteString("#" + n.id)
	}
	for _, c := range n.classes {
		b.WriteString("." + c)
	}
	for _, t := range n.tags {
		b.WriteString(":" + t)
	}
	return b.String()
}

// --- Structure -------------------------------------------------------------

// Parent returns the parent node of n, or nil.
func (n *Node) Parent() *Node {
	return FromTreeNode(n.node.Parent())
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return n.node.ChildCount()
}

// Child returns the i-th child of n, or nil.
func (n *Node) Child(i int) *Node {
	ch, _ := n.node.Child(i)
	return FromTreeNode(ch)
}

// Children returns the children of n, in order.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, n.node.ChildCount())
	for _, ch := range n.node.Children() {
		children = append(children, ch.Payload)
	}
	return children
}

// Append attaches children at the end of n's child list. A child which is
// attached elsewhere is moved. It is an error to append an ancestor of n
// or n itself.
func (n *Node) Append(children ...*Node) error {
	for _, ch := range children {
		if err := n.Insert(n.ChildCount(), ch); err != nil {
			return err
		}
	}
	return nil
}

// Insert attaches ch as the i-th child of n. Positions beyond the end append.
func (n *Node) Insert(i int, ch *Node) error {
	if ch == nil {
		return nil
	}
	if ch == n || ch.node.IsAncestorOf(&n.node) {
		err := fmt.Errorf("%w: inserting %v into %v", ErrCycle, ch, n)
		tracer().Errorf(err.Error())
		return err
	}
	if old := ch.Parent(); old != nil {
		old.childrenChanged()
	}
	n.node.InsertChildAt(i, &ch.node)
	ch.markSubtreeCascade()
	ch.markReflow()
	n.childrenChanged()
	tracer().Debugf("attached %v to %v", ch, n)
	return nil
}

// Remove detaches ch from n. It returns false if ch is not a child of n.
func (n *Node) Remove(ch *Node) bool {
	if ch == nil || ch.Parent() != n {
		return false
	}
	ch.node.Isolate()
	n.childrenChanged()
	tracer().Debugf("detached %v from %v", ch, n)
	return true
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if p := n.Parent(); p != nil {
		p.Remove(n)
	}
}

// childrenChanged is called after the child list of n has been modified.
func (n *Node) childrenChanged() {
	n.markReflow()
	n.invalidateQueries()
}

// --- Authored properties ---------------------------------------------------

// Text returns the text content of n.
func (n *Node) Text() string {
	return n.text
}

// SetText sets the text content of n, to be measured during reflow.
func (n *Node) SetText(text string) {
	if text == n.text {
		return
	}
	n.text = text
	n.markReflow()
}

// Style returns the inline style of n.
func (n *Node) Style() style.Style {
	return n.inline
}

// SetStyle replaces the inline style of n.
func (n *Node) SetStyle(s style.Style) {
	n.inline = s
	n.markCascade()
}

// UpdateStyle overlays s over the inline style of n.
func (n *Node) UpdateStyle(s style.Style) {
	n.SetStyle(n.inline.Overlay(s))
}

// Classes returns the class names of n, in order. The slice must not be
// modified.
func (n *Node) Classes() []string {
	return n.classes
}

// HasClass is true if n carries class c.
func (n *Node) HasClass(c string) bool {
	return indexOf(n.classes, c) >= 0
}

// AddClass appends class c, if not already present.
func (n *Node) AddClass(c string) {
	if c == "" || n.HasClass(c) {
		return
	}
	n.classes = append(n.classes, c)
	n.selectorStateChanged()
}

// RemoveClass removes class c.
func (n *Node) RemoveClass(c string) {
	if i := indexOf(n.classes, c); i >= 0 {
		n.classes = append(n.classes[:i], n.classes[i+1:]...)
		n.selectorStateChanged()
	}
}

// Tags returns the state tags of n, in order. The slice must not be modified.
func (n *Node) Tags() []string {
	return n.tags
}

// HasTag is true if n carries state tag t.
func (n *Node) HasTag(t string) bool {
	return indexOf(n.tags, t) >= 0
}

// AddTag appends state tag t, if not already present.
func (n *Node) AddTag(t string) {
	if t == "" || n.HasTag(t) {
		return
	}
	n.tags = append(n.tags, t)
	n.selectorStateChanged()
}

// RemoveTag removes state tag t.
func (n *Node) RemoveTag(t string) {
	if i := indexOf(n.tags, t); i >= 0 {
		n.tags = append(n.tags[:i], n.tags[i+1:]...)
		n.selectorStateChanged()
	}
}

func (n *Node) selectorStateChanged() {
	n.markCascade()
	n.invalidateQueries()
}

// SetClassStyle sets the style which applies while n carries class c.
func (n *Node) SetClassStyle(c string, s style.Style) {
	if n.classStyles == nil {
		n.classStyles = make(map[string]style.Style)
	}
	n.classStyles[c] = s
	n.markCascade()
}

// SetTagStyle sets the style which applies while n carries state tag t.
func (n *Node) SetTagStyle(t string, s style.Style) {
	if n.tagStyles == nil {
		n.tagStyles = make(map[string]style.Style)
	}
	n.tagStyles[t] = s
	n.markCascade()
}

// ClassStyle returns the class-keyed style for c, or nil.
func (n *Node) ClassStyle(c string) *style.Style {
	if s, ok := n.classStyles[c]; ok {
		return &s
	}
	return nil
}

// TagStyle returns the tag-keyed style for t, or nil.
func (n *Node) TagStyle(t string) *style.Style {
	if s, ok := n.tagStyles[t]; ok {
		return &s
	}
	return nil
}

// InlineStyle returns the inline style of n.
func (n *Node) InlineStyle() *style.Style {
	return &n.inline
}

// AttachStylesheet scopes a stylesheet to n and its descendants. Rules of
// scoped stylesheets take precedence over the global stylesheet, inner
// scopes over outer ones. Pass nil to remove the stylesheet.
//
// Modifying an attached stylesheet does not restyle the subtree; call
// Restyle afterwards.
func (n *Node) AttachStylesheet(ss *style.Stylesheet) {
	n.sheet = ss
	n.Restyle()
}

// Stylesheet returns the stylesheet scoped to n, or nil.
func (n *Node) Stylesheet() *style.Stylesheet {
	return n.sheet
}

// Restyle forces a cascade for n and all its descendants on the next render.
func (n *Node) Restyle() {
	n.markSubtreeCascade()
}

// --- Derived properties ----------------------------------------------------

// ComputedStyle returns the resolved style of the last render.
// Clients must treat it as read-only.
func (n *Node) ComputedStyle() *style.ComputedStyle {
	return &n.computed
}

// Bounds returns the geometry of the last render.
func (n *Node) Bounds() layout.Bounds {
	return n.bounds
}

// Change returns the classification of the last render for n.
func (n *Node) Change() style.Change {
	return n.change
}

// NeedsRepaint is true if a paint-relevant property changed since the last
// call to MarkPainted.
func (n *Node) NeedsRepaint() bool {
	return n.visualStale
}

// MarkPainted is called by a rasterizer after it has regenerated the visual
// representation of n.
func (n *Node) MarkPainted() {
	n.visualStale = false
}

// LayoutStyle is part of interface layout.Box.
func (n *Node) LayoutStyle() *style.ComputedStyle {
	return &n.computed
}

// LayoutBounds is part of interface layout.Box.
func (n *Node) LayoutBounds() *layout.Bounds {
	return &n.bounds
}

// NeedsReflow is part of interface layout.Box.
func (n *Node) NeedsReflow() bool {
	return n.needsReflow
}

// ReflowDone is part of interface layout.Box.
func (n *Node) ReflowDone() {
	n.needsReflow = false
}

// NeedsCascade is true if n will be re-styled on the next render.
func (n *Node) NeedsCascade() bool {
	return n.needsCascade
}

var _ style.Source = (*Node)(nil)

func indexOf(list []string, s string) int {
	for i, x := range list {
		if x == s {
			return i
		}
	}
	return -1
}
