package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// SkipChildren may be returned by an Action to prevent a TopDown walk
// from descending below the current node. It is not reported as an error.
var SkipChildren = errors.New("skip children")

// ErrEmptyTree is returned if a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Predicate is a function type to match against nodes of a tree.
// test is the node under test, node is the start node of the search.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Action is a function type to operate on tree nodes.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a tree starting at (and including) node.
// The traversal guarantees that parents are always processed before
// their children, and siblings in list order (depth first).
//
// If the action returns SkipChildren for a node, the branch below this node
// is not visited. Any other error aborts the walk and is returned.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	position := 0
	if node.parent != nil {
		position = node.parent.IndexOfChild(node)
	}
	err := topDown(node, node.parent, position, action)
	if err == SkipChildren {
		return nil
	}
	return err
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	if err := action(node, parent, position); err != nil {
		return err
	}
	for i, ch := range node.children {
		if err := topDown(ch, node, i, action); err != nil && err != SkipChildren {
			return err
		}
	}
	return nil
}

// BottomUp traverses a tree starting at (and including) node.
// The traversal guarantees that parents are not processed before
// all of their children.
//
// The first error returned by the action aborts the walk.
func BottomUp[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	position := 0
	if node.parent != nil {
		position = node.parent.IndexOfChild(node)
	}
	return bottomUp(node, node.parent, position, action)
}

func bottomUp[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	for i, ch := range node.children {
		if err := bottomUp(ch, node, i, action); err != nil {
			return err
		}
	}
	return action(node, parent, position)
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) (*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	for anc := node.parent; anc != nil; anc = anc.parent {
		match, err := predicate(anc, node)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, nil // no matching ancestor found, not an error
}

// DescendentsWith finds descendents matching a predicate, in depth-first
// pre-order. The search does not include the start node.
func DescendentsWith[T comparable](node *Node[T], predicate Predicate[T]) ([]*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	var selection []*Node[T]
	var collect func(*Node[T]) error
	collect = func(n *Node[T]) error {
		for _, ch := range n.children {
			match, err := predicate(ch, node)
			if err != nil {
				return err
			}
			if match != nil {
				selection = append(selection, match)
			}
			if err = collect(ch); err != nil {
				return err
			}
		}
		return nil
	}
	err := collect(node)
	tracer().Debugf("descendents of %v: selected %d nodes", node, len(selection))
	return selection, err
}

// CountNodes returns the number of nodes of the (sub-)tree, including node.
func CountNodes[T comparable](node *Node[T]) int {
	if node == nil {
		return 0
	}
	n := 1
	for _, ch := range node.children {
		n += CountNodes(ch)
	}
	return n
}
