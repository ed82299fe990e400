/*
Package domdbg implements helpers to debug a styled document tree.

Styled trees are drawn as GraphViz diagrams. Diagrams are either written in
DOT format or rendered to SVG in-process with go-graphviz.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/goccy/go-graphviz"
	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/dom/styledtree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the styled tree, a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(root *styledtree.StyNode, w io.Writer, styleGroups []string) error {
	tmpl := template.Must(template.New("dom").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err := tmpl.Execute(w, gparams); err != nil {
		return err
	}
	d := &dotWriter{w: w, dict: make(map[*styledtree.StyNode]string, 256), gparams: &gparams}
	if root != nil {
		d.nodes(root)
	}
	if d.err != nil {
		return d.err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

// RenderSVG draws a styled tree as an SVG image, using GraphViz.
func RenderSVG(ctx context.Context, root *styledtree.StyNode, styleGroups []string) ([]byte, error) {
	var dot bytes.Buffer
	if err := ToGraphViz(root, &dot, styleGroups); err != nil {
		return nil, fmt.Errorf("create DOT: %w", err)
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Dotty is a helper for testing. Given a styled tree and a testing.T, it will
// create a GraphViz image of the tree under `root` and write it to
// a file in the test's temporary folder.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *styledtree.StyNode, t *testing.T) string {
	svg, err := RenderSVG(context.Background(), root, nil)
	if err != nil {
		t.Error(err)
		return ""
	}
	name := filepath.Join(t.TempDir(), "styledtree.svg")
	t.Logf("writing styled tree image to %s", name)
	if err := os.WriteFile(name, svg, 0644); err != nil {
		t.Error(err)
		return ""
	}
	return name
}

// dotWriter remembers the first error; subsequent writes are no-ops.
type dotWriter struct {
	w       io.Writer
	dict    map[*styledtree.StyNode]string
	gparams *graphParamsType
	err     error
}

func (d *dotWriter) execute(tmpl *template.Template, data interface{}) {
	if d.err != nil {
		return
	}
	d.err = tmpl.Execute(d.w, data)
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

func (d *dotWriter) nodes(sn *styledtree.StyNode) {
	d.domNode(sn)
	for _, ch := range sn.ChildNodes() {
		d.nodes(ch)
		d.domEdge(sn, ch)
	}
}

func (d *dotWriter) name(sn *styledtree.StyNode) string {
	name := d.dict[sn]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(d.dict)+1)
		d.dict[sn] = name
	}
	return name
}

func (d *dotWriter) domNode(sn *styledtree.StyNode) {
	d.execute(d.gparams.NodeTmpl, &node{sn, d.name(sn)})
	d.domStyles(sn)
}

// propGroup is a named group of style properties of a single node.
type propGroup struct {
	ID         string
	Name       string
	Properties []style.KeyValue
}

func (d *dotWriter) domStyles(sn *styledtree.StyNode) {
	var prev *propGroup
	for _, s := range d.gparams.StyleGroups {
		props := sn.Styles().Group(s)
		if len(props) == 0 {
			continue
		}
		pg := &propGroup{ID: d.name(sn) + "_" + s, Name: s, Properties: props}
		d.execute(d.gparams.StylegroupTmpl, pg)
		if prev == nil {
			d.execute(d.gparams.PgedgeTmpl, pgedge{d.name(sn), pg})
		} else {
			d.execute(d.gparams.PgpgTmpl, []*propGroup{prev, pg})
		}
		prev = pg
	}
}

type edge struct {
	N1, N2 node
}

func (d *dotWriter) domEdge(n1, n2 *styledtree.StyNode) {
	d.execute(d.gparams.EdgeTmpl, edge{node{n1, d.name(n1)}, node{n2, d.name(n2)}})
}

type pgedge struct {
	Name      string
	PropGroup *propGroup
}

// dotEscaper makes text safe for a quoted DOT label. Newlines and tabs are
// shown as escape sequences.
var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\\n`,
	"\t", `\\t`,
	" ", "␣",
)

func shortText(sn *styledtree.StyNode) string {
	data := []rune(sn.DOMNode().Data)
	ellipsis := ""
	if len(data) > 10 {
		data, ellipsis = data[:10], "..."
	}
	return `"\"` + dotEscaper.Replace(string(data)) + ellipsis + `\""`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.DOMNode.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .N.DOMNode.NodeName "#comment" }}
{{ .Name }}	[ label="#comment" shape=note style=filled fillcolor=grey95 fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.DOMNode.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ .PropGroup.ID }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ (index . 0).ID }} -> {{ (index . 1).ID }} [dir=none weight=1 style="dashed"] ;
`
