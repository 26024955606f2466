/*
Package cssom reads stylesheets and declaration blocks written in CSS syntax.

	.item:active { background: #ff0000; padding: 4 8; anchor: bottom-right }

Parsing of the CSS text is done by github.com/aymerick/douceur. Rule preludes
are handed to package style and must follow the selector grammar of package
selector; rules must be flat. Declarations are converted into style.Style
values by a static table of property handlers. Within a declaration block,
shorthand properties (like 'padding') are applied before the longhands
(like 'padding-left'), regardless of their order in the source, and
'!important' declarations are applied last.

Lengths may carry a unit: px (the default), pt, bp, mm, cm or in. Pixels
are big points (1/72 in). Colors are written as #rgb, #rrggbb, #rrggbbaa,
or as an SVG color name.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.cssom")
}

// Errors for malformed declarations.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrValue           = errors.New("illegal property value")
)
