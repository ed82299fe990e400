/*
Package layout solves the CSS block formatting model for a box tree.

Layout walks the box tree depth-first. For every block or inline box it
calculates the width (resolving 'auto' widths and margins against the
containing block), places the box below its preceding siblings, lays out its
children and finally calculates its height. Inline boxes are treated like
blocks: there is no line breaking. Margins do not collapse.

Layout mutates the dimensions of the boxes in place. Laying out a tree a
second time with the same containing block yields the same dimensions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
