/*
Package dom implements a retained tree of styled boxes.

Overview

Clients build a tree of Nodes, each carrying an optional identifier, class
names, state tags, text and authored styles. A Tree drives a fixed pipeline
over the nodes whenever the client asks for a new frame:

	Render  =  cascade (package style)  →  reflow (package layout)  →  observers

Afterwards every node exposes its resolved style, its four nested rectangles
and a classification of what changed in this run (layout, paint or both).
A rasterizer uses this to decide which cached visuals to regenerate.

Dirty Flags

Nodes are not re-styled or re-measured unless something changed. Mutations
set dirty flags, and the flags propagate to ancestors where a change may
affect them:

	attach:          subtree needs cascade, node and ancestors need reflow
	detach:          former parent and its ancestors need reflow
	class/tag/style: node needs cascade
	text:            node and ancestors need reflow
	layout change:   node and ancestors need reflow (detected by the cascade)
	paint change:    node's visual is stale

Queries

Nodes support selector queries (see package selector) and lookup by
identifier. Results are cached per node and query string. Changes of a child
list, a class set or a tag set invalidate the caches of the node and of all
its ancestors.

Tree Implementation

We build on the general purpose tree type of package tree. Every Node holds a
tree node whose payload points back to the Node itself. Nodes are not safe
for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxtree.dom'
func tracer() tracing.Trace {
	return tracing.Select("boxtree.dom")
}

// Errors for misconfigured trees.
var (
	ErrInvalidID = errors.New("invalid node identifier")
	ErrCycle     = errors.New("node cannot become a descendant of itself")
)
