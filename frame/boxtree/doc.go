/*
Package boxtree builds the tree of layout boxes from a styled tree.

Overview

Every styled element with a display mode other than "none" generates a box.
Block-level elements generate block boxes, inline-level elements (including
text) generate inline boxes. CSS requires block containers to contain either
only block-level boxes or only inline-level boxes. We approximate this rule:
runs of inline children of a block box are wrapped into anonymous block
boxes. Contrary to CSS, a block box whose children are all inline still gets
a single anonymous wrapper, and inline boxes may contain block children.

Anonymous boxes do not reference a styled node. Asking them for one is a
programming error and panics.

Box dimensions are zero after construction. They are filled in by package
layout.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
