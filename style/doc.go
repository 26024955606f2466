/*
Package style resolves styles for boxes.

Authored styles (type Style) are sparse: every property may or may not be set.
The cascade merges layers of authored styles into a fully resolved
ComputedStyle, in increasing precedence:

	1. global defaults
	2. stylesheet rules matching the box, in registration order
	3. the box's class-keyed styles, in class-list order
	4. the box's tag-keyed styles, in tag-list order
	5. the box's inline style

Each layer overwrites only the properties it sets. A global scale factor is
applied to all geometric properties as a final pass.

Change detection works on two plain-data snapshots derived from a computed
style: one with the properties which affect sizing and positioning, one with
the properties which affect appearance only. Diff compares snapshots of two
cascade runs and classifies the change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxtree.style'
func tracer() tracing.Trace {
	return tracing.Select("boxtree.style")
}
