/*
Package domdbg implements helpers to debug a box tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/boxtree/dom"
)

// Names of property groups for the diagram.
const (
	GroupBox     = "Box"
	GroupSpacing = "Spacing"
	GroupFlow    = "Flow"
	GroupPaint   = "Paint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	TextTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	GroupBox,
	GroupSpacing,
	GroupFlow,
}

// ToGraphViz outputs a diagram for a box tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of property groups.
// The diagram will include all properties belonging to one of the
// groups.
//
// If the client does not provide a list of groups, the following
// default will be used:
//
//	- Box
//	- Spacing
//	- Flow
//
// Nodes should have been rendered before, otherwise geometry will be zero.
func ToGraphViz(root *dom.Node, w io.Writer, groups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.TextTmpl = template.Must(template.New("textnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(textNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = groups
	if groups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*dom.Node]string, 256)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a root node and a testing.T, it will
// create a GraphViz image of the tree under `root` and write it to
// a file in the test's temporary folder.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "boxtree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing box tree digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing box tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

// Label is the caption of a node in the diagram.
func (n node) Label() string {
	var b strings.Builder
	if n.N.ID() == "" {
		b.WriteString("(anonymous)")
	} else {
		b.WriteString("#" + n.N.ID())
	}
	for _, c := range n.N.Classes() {
		b.WriteString("." + c)
	}
	for _, t := range n.N.Tags() {
		b.WriteString(":" + t)
	}
	return b.String()
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, node{n, name}); err != nil {
		return err
	}
	if n.Text() != "" {
		if err := gparams.TextTmpl.Execute(w, node{n, name}); err != nil {
			return err
		}
	}
	return domStyles(n, name, w, gparams)
}

func domStyles(n *dom.Node, name string, w io.Writer, gparams *graphParamsType) error {
	var prev *propertyGroup
	for _, g := range gparams.StyleGroups {
		pg := groupOf(n, g)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*propertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *dom.Node, n2 *dom.Node, w io.Writer, dict map[*dom.Node]string,
	gparams *graphParamsType) error {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

type pgedge struct {
	Name      string
	PropGroup *propertyGroup
}

func shortText(n node) string {
	t := n.N.Text()
	s := "\"\\\""
	if len(t) > 10 {
		s += t[:10] + "...\\\"\""
	} else {
		s += t + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Property groups --------------------------------------------------

type property struct {
	Key, Value string
}

type propertyGroup struct {
	Name       string
	Properties []property
}

func groupOf(n *dom.Node, name string) *propertyGroup {
	cs := n.ComputedStyle()
	b := n.Bounds()
	pg := &propertyGroup{Name: name}
	add := func(k string, v interface{}) {
		pg.Properties = append(pg.Properties, property{k, fmt.Sprint(v)})
	}
	switch name {
	case GroupBox:
		add("content", b.ContentSize)
		add("margin-rect", b.MarginRect)
	case GroupSpacing:
		if !cs.Padding.IsZero() {
			add("padding", cs.Padding)
		}
		if !cs.Margin.IsZero() {
			add("margin", cs.Margin)
		}
		if cs.Gap != 0 {
			add("gap", cs.Gap)
		}
	case GroupFlow:
		add("flow", cs.Flow)
		add("anchor", cs.Anchor)
		if cs.Stretch {
			add("stretch", true)
		}
	case GroupPaint:
		add("visible", cs.Visible)
		add("opacity", cs.Opacity)
		add("background", fmt.Sprintf("#%02x%02x%02x%02x",
			cs.Background.R, cs.Background.G, cs.Background.B, cs.Background.A))
	default:
		return nil
	}
	return pg
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const textNodeTmpl = `{{ .Name }}t	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ .Name }} -> {{ .Name }}t [dir=none weight=2] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
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

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
