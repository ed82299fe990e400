/*
Package htmladapter converts HTML parse trees into document trees.

HTML is parsed by golang.org/x/net/html. The parse tree is converted into
a dom.Node tree, keeping elements, text and comments. Text nodes consisting
of whitespace only are dropped, as they never produce boxes of interest for
block layout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmladapter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/boxflow/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'boxflow.dom'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.dom")
}

// ErrNoRootElement is flagged if an HTML parse tree contains no element.
var ErrNoRootElement = errors.New("HTML document has no root element")

// Parse reads an HTML document and converts it into a document tree.
// The root of the document tree is the <html> element.
func Parse(r io.Reader) (*dom.Node, error) {
	h, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("cannot parse HTML: %v", err)
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return FromHTML(h)
}

// FromHTML converts an HTML parse tree into a document tree. If h is a
// document node, its root element is converted.
func FromHTML(h *html.Node) (*dom.Node, error) {
	if h == nil {
		return nil, ErrNoRootElement
	}
	if h.Type == html.DocumentNode {
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				h = ch
				break
			}
		}
	}
	if h.Type != html.ElementNode {
		return nil, ErrNoRootElement
	}
	root := convert(h)
	tracer().Debugf("converted HTML tree, root = %s", root)
	return root, nil
}

// convert returns nil for nodes which are not part of the document tree.
func convert(h *html.Node) *dom.Node {
	switch h.Type {
	case html.TextNode:
		if strings.TrimSpace(h.Data) == "" {
			return nil
		}
		return dom.Text(h.Data)
	case html.CommentNode:
		return dom.Comment(h.Data)
	case html.ElementNode:
		attrs := make(dom.AttrMap, len(h.Attr))
		for _, a := range h.Attr {
			attrs[a.Key] = a.Val
		}
		var children []*dom.Node
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if n := convert(ch); n != nil {
				children = append(children, n)
			}
		}
		return dom.Elem(h.Data, attrs, children...)
	}
	return nil // doctype, document or error nodes
}
