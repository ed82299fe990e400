/*
Package dom provides the document tree consumed by the styling engine.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A document is a tree of nodes. Each node is either an element (tag name plus
attributes), a run of text, or a comment. Parsing markup is not a concern of
this package; clients either build documents by hand, using the constructors
Elem, Text and Comment, or convert an HTML parse tree with package
htmladapter.

Tree Implementation

Styling and layout involve a couple of different trees: the document tree,
the styled tree and the box tree. The latter two are built on top of the
general purpose tree type of package tree, by composition. The document tree
is kept deliberately simple: nodes own their children and never change after
construction. Downstream trees reference document nodes, but never copy or
mutate them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom
