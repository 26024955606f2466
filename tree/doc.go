/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: a node owns an ordered list of children and
keeps a non-owning link to its parent for upward lookups. Payloads are of a
type parameter, and clients usually let the payload point back to a struct
which embeds or holds the tree node (see package dom).

Walking

We support a small set of traversal functions. All of them are synchronous
and visit nodes in a deterministic order:

   TopDown(node, action)          // parents before children, list order
   BottomUp(node, action)         // children before parents
   AncestorWith(node, predicate)  // nearest ancestor with a given predicate
   DescendentsWith(node, pred)    // pre-order selection of descendents

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.tree")
}
