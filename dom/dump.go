package dom

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump returns a printable tree of n and its descendants, showing for every
// node its margin rectangle and the change of the last render.
func Dump(n *Node) string {
	p := tp.New()
	p.SetValue(label(n))
	for _, ch := range n.node.Children() {
		dumpNode(p, ch.Payload)
	}
	return p.String()
}

func dumpNode(p tp.Tree, n *Node) {
	if n.ChildCount() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range n.node.Children() {
		dumpNode(branch, ch.Payload)
	}
}

func label(n *Node) string {
	var b strings.Builder
	b.WriteString(n.String())
	fmt.Fprintf(&b, " %v", n.bounds.MarginRect)
	if n.text != "" {
		txt := n.text
		if len(txt) > 20 {
			txt = txt[:19] + "…"
		}
		fmt.Fprintf(&b, " %q", txt)
	}
	if n.change != 0 {
		fmt.Fprintf(&b, " [%v]", n.change)
	}
	return b.String()
}
