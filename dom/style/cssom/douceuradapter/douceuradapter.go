/*
Package douceuradapter creates cssom.StyleSheets from CSS text.

CSS text is parsed with douceur, selectors are validated with cascadia.
Our cascade understands simple selectors only (tag, id and classes).
Selectors containing combinators, attribute selectors or pseudo-classes
are skipped, as are at-rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/dom/style/cssom"
	"github.com/npillmayer/boxflow/maybe"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'boxflow.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.cssom")
}

// ErrNotSimple is flagged for selectors which are valid CSS, but not simple
// selectors.
var ErrNotSimple = errors.New("not a simple selector")

// Parse parses CSS text into a stylesheet of a given origin.
func Parse(text string, origin cssom.Origin) (*cssom.StyleSheet, error) {
	c, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("cannot parse CSS: %v", err)
		return nil, fmt.Errorf("parsing %s stylesheet: %w", origin, err)
	}
	return Wrap(c, origin), nil
}

// Wrap converts a douceur.css.Stylesheet into a cssom.StyleSheet.
// Rules without any usable selector or declaration are dropped.
func Wrap(c *css.Stylesheet, origin cssom.Origin) *cssom.StyleSheet {
	sheet := cssom.NewStyleSheet(origin)
	if c == nil {
		return sheet
	}
	for _, r := range c.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rule := convertRule(r)
		if rule == nil {
			continue
		}
		sheet.AddRule(rule)
	}
	return sheet
}

func convertRule(r *css.Rule) *cssom.Rule {
	var sels []cssom.SimpleSelector
	selectors := r.Selectors
	if len(selectors) == 0 {
		selectors = strings.Split(r.Prelude, ",")
	}
	for _, s := range selectors {
		sel, err := ParseSelector(s)
		if err != nil {
			tracer().Debugf("skipping selector %q: %v", s, err)
			continue
		}
		sels = append(sels, sel)
	}
	if len(sels) == 0 {
		return nil
	}
	var decls []cssom.Declaration
	for _, d := range r.Declarations {
		decls = append(decls, convertDeclaration(d)...)
	}
	if len(decls) == 0 {
		return nil
	}
	return cssom.NewRule(sels, decls...)
}

// convertDeclaration returns the declarations for a CSS property. Compound
// properties with more than one value are split into their longhands.
func convertDeclaration(d *css.Declaration) []cssom.Declaration {
	prop := strings.ToLower(strings.TrimSpace(d.Property))
	value := strings.TrimSpace(d.Value)
	if prop == "" || value == "" {
		return nil
	}
	if len(strings.Fields(value)) > 1 {
		if kvs, err := style.SplitCompoundProperty(prop, value); err == nil {
			decls := make([]cssom.Declaration, len(kvs))
			for i, kv := range kvs {
				decls[i] = cssom.Declaration{Name: kv.Key, Value: kv.Value, Important: d.Important}
			}
			return decls
		}
	}
	v, err := style.ParseValue(value)
	if err != nil {
		tracer().Debugf("skipping declaration %s: %v", prop, err)
		return nil
	}
	return []cssom.Declaration{{Name: prop, Value: v, Important: d.Important}}
}

// ParseSelector validates a selector and decomposes it into a simple selector.
// Selectors which cascadia rejects produce an error, as do selectors which
// are not simple selectors (see ErrNotSimple).
func ParseSelector(s string) (cssom.SimpleSelector, error) {
	s = strings.TrimSpace(s)
	if _, err := cascadia.Parse(s); err != nil {
		return cssom.SimpleSelector{}, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	var sel cssom.SimpleSelector
	i := 0
	if i < len(s) && s[i] == '*' {
		i++
	} else if n := identLen(s[i:]); n > 0 {
		sel.Tag = maybe.Just(s[i : i+n]).Map(strings.ToLower)
		i += n
	}
	for i < len(s) {
		c := s[i]
		if c != '#' && c != '.' {
			return cssom.SimpleSelector{}, fmt.Errorf("%q: %w", s, ErrNotSimple)
		}
		n := identLen(s[i+1:])
		if n == 0 {
			return cssom.SimpleSelector{}, fmt.Errorf("%q: %w", s, ErrNotSimple)
		}
		name := s[i+1 : i+1+n]
		if c == '#' {
			if !sel.ID.IsNothing() {
				return cssom.SimpleSelector{}, fmt.Errorf("%q has more than one id: %w", s, ErrNotSimple)
			}
			sel.ID = maybe.Just(name)
		} else {
			sel.Classes = append(sel.Classes, name)
		}
		i += 1 + n
	}
	return sel, nil
}

// identLen returns the length of the CSS identifier at the start of s.
func identLen(s string) int {
	n := 0
	for n < len(s) {
		c := s[n]
		if c == '-' || c == '_' || c >= 0x80 ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(n > 0 && c >= '0' && c <= '9') {
			n++
			continue
		}
		break
	}
	return n
}

// --- Embedded styles --------------------------------------------------

// ExtractStyleElements searches an HTML parse tree for embedded <style>s,
// wherever they are nested. It returns the content of style-elements, in
// document order.
func ExtractStyleElements(htmldoc *html.Node) []string {
	return extractStyles(htmldoc, nil)
}

// ExtractStyleSheets parses all embedded <style>s of an HTML parse tree into
// stylesheets of origin Author. Embedded styles which do not parse are
// skipped.
func ExtractStyleSheets(htmldoc *html.Node) []*cssom.StyleSheet {
	var sheets []*cssom.StyleSheet
	for _, text := range ExtractStyleElements(htmldoc) {
		sheet, err := Parse(text, cssom.Author)
		if err != nil {
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

func extractStyles(h *html.Node, css []string) []string {
	if h == nil {
		return css
	}
	if h.Type == html.ElementNode && h.DataAtom == atom.Style {
		var b strings.Builder
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				b.WriteString(ch.Data)
			}
		}
		if b.Len() > 0 {
			css = append(css, b.String())
		}
		return css
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		css = extractStyles(ch, css)
	}
	return css
}
