/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

Style() walks a document tree and computes the property map of every node
with the cascade of package cssom. The resulting styled tree mirrors the
document tree exactly: one styled node per document node, in the same order.
Every styled node references its document node, but never copies or
mutates it.

Property maps of element nodes contain the cascade winners plus every
inheritable property of the parent. Text and comment nodes get an empty
property map.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}
