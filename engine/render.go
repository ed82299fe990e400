package engine

import (
	"fmt"
	"io"

	"github.com/npillmayer/boxflow/dom"
	"github.com/npillmayer/boxflow/dom/htmladapter"
	"github.com/npillmayer/boxflow/dom/style/cssom"
	"github.com/npillmayer/boxflow/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/boxflow/dom/styledtree"
	"github.com/npillmayer/boxflow/frame/boxtree"
	"github.com/npillmayer/boxflow/frame/layout"
	"golang.org/x/net/html"
)

// Render styles a document tree, builds its box tree and lays it out
// against the viewport of cfg. Besides sheets, the default user rules and
// the user stylesheet of cfg take part in the cascade. Zero fields of cfg
// are set to their defaults.
//
// If the root of the document has display mode "none", Render returns an
// error wrapping boxtree.ErrRootDisplayNone.
func Render(doc *dom.Node, sheets []*cssom.StyleSheet, cfg Config) (*boxtree.Box, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.setupTracing()
	userSheets, err := cfg.userStyleSheets()
	if err != nil {
		return nil, err
	}
	all := append(userSheets, sheets...)
	tracer().Infof("rendering %s with %d stylesheets", doc, len(all))
	styled := styledtree.Style(doc, all)
	root, err := boxtree.BuildLayoutTree(styled)
	if err != nil {
		return nil, err
	}
	layout.Layout(root, boxtree.Viewport(cfg.Viewport.Width, cfg.Viewport.Height))
	tracer().Debugf("box tree:\n%s", root.Dump())
	return root, nil
}

// RenderHTML parses an HTML document and renders it. Styles embedded with
// <style> elements are author stylesheets.
func RenderHTML(r io.Reader, cfg Config) (*boxtree.Box, error) {
	h, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("cannot parse HTML: %v", err)
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	author := douceuradapter.ExtractStyleSheets(h)
	doc, err := htmladapter.FromHTML(h)
	if err != nil {
		return nil, err
	}
	return Render(doc, author, cfg)
}

func (cfg Config) userStyleSheets() ([]*cssom.StyleSheet, error) {
	var sheets []*cssom.StyleSheet
	if cfg.WithUserDefaults() {
		sheets = append(sheets, cssom.UserDefaults())
	}
	if cfg.UserStylesheet != "" {
		sheet, err := douceuradapter.Parse(cfg.UserStylesheet, cssom.User)
		if err != nil {
			return nil, fmt.Errorf("user stylesheet: %w", err)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
