/*
Package markup builds box trees from an HTML-like markup.

	<style> .item { padding: 2 } </style>
	<box id="root" style="flow: vertical; gap: 4">
	  <box id="title" class="item" tags="active">Hello</box>
	  <box class="item" data-tag-hover="background: yellow"></box>
	</box>

Every element in the body becomes a node, regardless of its tag name. The
attributes of an element are mapped as follows:

	id            node identifier
	class         space-separated class list
	tags          space-separated state tags
	style         inline style, as a CSS declaration block
	data-class-X  style for class X of this node
	data-tag-X    style for state tag X of this node
	<property>    presentational style, e.g. width="40"; style wins over it

Text content of an element is collapsed to single spaces and becomes the
text of the node. <style> elements at the top level (head or body) are
concatenated into the global stylesheet of the tree; <style> elements nested
in a box are attached to that box as scoped stylesheets.

If the body contains exactly one element, it is the root of the tree.
Otherwise an anonymous root is created, holding all top-level elements.

Parsing of the markup is done by golang.org/x/net/html; elements which are
not void in HTML need explicit closing tags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/boxtree/cssom"
	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/style"
	"github.com/npillmayer/boxtree/tree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'boxtree.markup'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.markup")
}

var (
	bodySelector   = cascadia.MustCompile("body")
	topLevelStyles = cascadia.MustCompile("head > style, body > style")
)

const (
	classStylePrefix = "data-class-"
	tagStylePrefix   = "data-tag-"
)

// Load reads a markup document and builds a tree from it. Options are
// handed to dom.NewTree; a stylesheet option replaces the stylesheet
// found in the document.
func Load(r io.Reader, opts ...dom.Option) (*dom.Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	sheet, err := extractStyleElements(doc)
	if err != nil {
		return nil, err
	}
	body := cascadia.Query(doc, bodySelector)
	if body == nil {
		return nil, fmt.Errorf("markup has no body")
	}
	var top []*dom.Node
	for ch := body.FirstChild; ch != nil; ch = ch.NextSibling {
		if !isBox(ch) {
			continue
		}
		n, err := build(ch)
		if err != nil {
			return nil, err
		}
		top = append(top, n)
	}
	var root *dom.Node
	if len(top) == 1 {
		root = top[0]
	} else {
		root = dom.MustNode("")
		if err = root.Append(top...); err != nil {
			return nil, err
		}
	}
	opts = append([]dom.Option{dom.WithStylesheet(sheet)}, opts...)
	t := dom.NewTree(root, opts...)
	tracer().Debugf("loaded tree with %d top-level boxes, %d nodes", len(top),
		tree.CountNodes(root.TreeNode()))
	return t, nil
}

// LoadString is a convenience wrapper around Load.
func LoadString(s string, opts ...dom.Option) (*dom.Tree, error) {
	return Load(strings.NewReader(s), opts...)
}

func isBox(h *html.Node) bool {
	return h.Type == html.ElementNode && h.DataAtom != atom.Style && h.DataAtom != atom.Script
}

// build creates a node for an element and its sub-elements, recursively.
func build(h *html.Node) (*dom.Node, error) {
	id := attr(h, "id")
	n, err := dom.NewNode(id)
	if err != nil {
		return nil, err
	}
	if err = applyAttributes(n, h); err != nil {
		return nil, fmt.Errorf("<%s id=%q>: %w", h.Data, id, err)
	}
	var text []string
	var scoped *style.Stylesheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch {
		case ch.Type == html.TextNode:
			text = append(text, strings.Fields(ch.Data)...)
		case ch.DataAtom == atom.Style:
			ss, err := parseStyleElement(ch)
			if err != nil {
				return nil, err
			}
			if scoped == nil {
				scoped = ss
			} else {
				scoped.AppendRules(ss)
			}
		case isBox(ch):
			c, err := build(ch)
			if err != nil {
				return nil, err
			}
			if err = n.Append(c); err != nil {
				return nil, err
			}
		}
	}
	if len(text) > 0 {
		n.SetText(strings.Join(text, " "))
	}
	if scoped != nil {
		n.AttachStylesheet(scoped)
	}
	return n, nil
}

func applyAttributes(n *dom.Node, h *html.Node) error {
	var inline, presentational style.Style
	var decls []string
	for _, a := range h.Attr {
		switch {
		case a.Key == "class":
			for _, c := range strings.Fields(a.Val) {
				n.AddClass(c)
			}
		case a.Key == "tags":
			for _, t := range strings.Fields(a.Val) {
				n.AddTag(t)
			}
		case a.Key == "style":
			s, err := cssom.ParseDeclarations(a.Val)
			if err != nil {
				return err
			}
			inline = s
		case strings.HasPrefix(a.Key, classStylePrefix):
			s, err := cssom.ParseDeclarations(a.Val)
			if err != nil {
				return err
			}
			n.SetClassStyle(strings.TrimPrefix(a.Key, classStylePrefix), s)
		case strings.HasPrefix(a.Key, tagStylePrefix):
			s, err := cssom.ParseDeclarations(a.Val)
			if err != nil {
				return err
			}
			n.SetTagStyle(strings.TrimPrefix(a.Key, tagStylePrefix), s)
		case a.Key == "id":
		case cssom.IsKnownProperty(a.Key):
			decls = append(decls, a.Key+": "+a.Val)
		default:
			tracer().Debugf("ignoring attribute %s=%q", a.Key, a.Val)
		}
	}
	if len(decls) > 0 {
		s, err := cssom.ParseDeclarations(strings.Join(decls, "; "))
		if err != nil {
			return err
		}
		presentational = s
	}
	if s := presentational.Overlay(inline); !s.IsEmpty() {
		n.SetStyle(s)
	}
	return nil
}

func attr(h *html.Node, key string) string {
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// extractStyleElements collects the <style>s of <head> and <body> into a
// single stylesheet, in document order.
func extractStyleElements(doc *html.Node) (*style.Stylesheet, error) {
	sheet := style.NewStylesheet()
	for _, h := range cascadia.QueryAll(doc, topLevelStyles) {
		ss, err := parseStyleElement(h)
		if err != nil {
			return nil, err
		}
		sheet.AppendRules(ss)
	}
	return sheet, nil
}

func parseStyleElement(h *html.Node) (*style.Stylesheet, error) {
	var b strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	ss, err := cssom.Parse(b.String())
	if err != nil {
		return nil, fmt.Errorf("<style>: %w", err)
	}
	return ss, nil
}
