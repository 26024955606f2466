package selector

import (
	"github.com/npillmayer/boxtree/tree"
)

// Element is what a simple selector is matched against.
type Element interface {
	ID() string
	HasClass(string) bool
	HasTag(string) bool
}

// Matchable is the constraint for payloads of queryable tree nodes.
type Matchable interface {
	comparable
	Element
}

// MatchesElement tests the simple selector at the head of a chain only,
// ignoring combinators.
func (sel *Selector) MatchesElement(e Element) bool {
	if sel.ID != "" && sel.ID != e.ID() {
		return false
	}
	for _, c := range sel.Classes {
		if !e.HasClass(c) {
			return false
		}
	}
	for _, t := range sel.Tags {
		if !e.HasTag(t) {
			return false
		}
	}
	return true
}

// MatchesElement is true if any flat alternative matches e. Alternatives
// with combinators are ignored, as they cannot be decided from e alone.
func (g *Group) MatchesElement(e Element) bool {
	for _, alt := range g.Alternatives {
		if alt.IsFlat() && alt.MatchesElement(e) {
			return true
		}
	}
	return false
}

// First returns the first node below root matching g, or nil.
// Alternatives are tried in order; the first alternative producing a match wins.
// root itself is never part of the result.
func First[T Matchable](root *tree.Node[T], g *Group) *tree.Node[T] {
	if root == nil || g == nil {
		return nil
	}
	for _, alt := range g.Alternatives {
		q := query[T]{}
		if q.search(root, alt, true) {
			return q.result[0]
		}
	}
	return nil
}

// All returns every node below root matching g. Matches are concatenated
// across alternatives in discovery order; a node appears at most once.
func All[T Matchable](root *tree.Node[T], g *Group) []*tree.Node[T] {
	if root == nil || g == nil {
		return nil
	}
	q := query[T]{all: true, seen: make(map[*tree.Node[T]]struct{})}
	for _, alt := range g.Alternatives {
		q.search(root, alt, true)
	}
	return q.result
}

type query[T Matchable] struct {
	all    bool
	seen   map[*tree.Node[T]]struct{}
	result []*tree.Node[T]
}

// search looks for sel below scope: in the children of scope, and in all
// descendants if deep is set. It returns true as soon as a single-result
// query is satisfied.
func (q *query[T]) search(scope *tree.Node[T], sel *Selector, deep bool) bool {
	for _, ch := range scope.Children() {
		if sel.MatchesElement(ch.Payload) {
			if sel.Next == nil {
				if q.emit(ch) {
					return true
				}
			} else if q.search(ch, sel.Next, sel.Combinator == Descendant) {
				return true
			}
		}
		if deep && q.search(ch, sel, true) {
			return true
		}
	}
	return false
}

func (q *query[T]) emit(n *tree.Node[T]) bool {
	if !q.all {
		q.result = append(q.result, n)
		return true
	}
	if _, dup := q.seen[n]; !dup {
		q.seen[n] = struct{}{}
		q.result = append(q.result, n)
	}
	return false
}
