/*
Package layout computes box geometry for a tree of styled boxes ("reflow").

Reflow runs three passes over a tree:

	1. intrinsic sizing, children before parents
	2. stretch resolution, a second post-order sweep
	3. position resolution, parents before children

Children of a container are grouped into buckets by their anchor point.
Buckets are independent: a container is as large as its largest bucket, and
each bucket is aligned within the content rectangle of the container on its
own. Children anchored to none do not take part in bucketing; they are
placed at the origin of the container's content rectangle.

Text measurement is delegated to a Measurer. A failing measurer does not
fail the layout; the box is treated as having no intrinsic text size.

Boxes which are clean (see Box.NeedsReflow) are skipped, as long as their
position and outer size did not change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.layout")
}

// ErrInvalidFlow is returned by Reflow for a box with an unknown flow direction.
var ErrInvalidFlow = errors.New("invalid flow direction")
