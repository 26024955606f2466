package selector

import (
	"strings"
)

// Combinator links a simple selector to the one following it in a chain.
type Combinator uint8

const (
	NoCombinator Combinator = iota // end of chain
	Child                          // '>'
	Descendant                     // ' '
)

func (c Combinator) String() string {
	switch c {
	case Child:
		return " > "
	case Descendant:
		return " "
	}
	return ""
}

// Selector is a node in a selector chain: a simple selector (identifier,
// classes and tags, all optional but not all empty) which may be followed by
// another chain node.
type Selector struct {
	ID         string     // required identifier, if non-empty
	Classes    []string   // all of these classes are required
	Tags       []string   // all of these state tags are required
	First      bool       // head of a top-level alternative
	Combinator Combinator // relation between this node and Next
	Next       *Selector  // remainder of the chain, or nil
}

// IsFlat is true for a chain without combinators.
func (sel *Selector) IsFlat() bool {
	return sel.Next == nil
}

func (sel *Selector) String() string {
	var b strings.Builder
	for s := sel; s != nil; s = s.Next {
		if s.ID != "" {
			b.WriteString("#" + s.ID)
		}
		for _, c := range s.Classes {
			b.WriteString("." + c)
		}
		for _, t := range s.Tags {
			b.WriteString(":" + t)
		}
		b.WriteString(s.Combinator.String())
	}
	return b.String()
}

// Group is a parsed selector: a list of comma-separated alternatives.
type Group struct {
	Raw          string      // the source string
	Alternatives []*Selector // chain heads, in source order
}

// IsFlat is true if no alternative uses a combinator.
func (g *Group) IsFlat() bool {
	for _, alt := range g.Alternatives {
		if !alt.IsFlat() {
			return false
		}
	}
	return true
}

func (g *Group) String() string {
	alts := make([]string, len(g.Alternatives))
	for i, alt := range g.Alternatives {
		alts[i] = alt.String()
	}
	return strings.Join(alts, ", ")
}

// Parse parses a selector string into a group of selector chains.
func Parse(s string) (*Group, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, syntaxError(s, 0, "empty selector")
	}
	g := &Group{Raw: s}
	var head, cur *Selector
	pending := NoCombinator
	// open starts a new chain node if needed and returns the node to fill.
	open := func(implicit bool) *Selector {
		if cur == nil {
			head = &Selector{First: true}
			cur = head
			return cur
		}
		if pending != NoCombinator || implicit {
			link := pending
			if link == NoCombinator {
				link = Descendant
			}
			next := &Selector{}
			cur.Combinator = link
			cur.Next = next
			cur = next
			pending = NoCombinator
		}
		return cur
	}
	for _, t := range tokens {
		switch t.kind {
		case tokIdent:
			implicit := cur != nil && cur.ID != "" // a second id nests implicitly
			open(implicit).ID = t.text
		case tokClass:
			sel := open(false)
			sel.Classes = append(sel.Classes, t.text)
		case tokTag:
			sel := open(false)
			sel.Tags = append(sel.Tags, t.text)
		case tokChild, tokDescendant:
			if cur == nil || pending != NoCombinator {
				return nil, syntaxError(s, t.pos, "unexpected combinator %s", t.kind)
			}
			if t.kind == tokChild {
				pending = Child
			} else {
				pending = Descendant
			}
		case tokSeparator:
			if cur == nil || pending != NoCombinator {
				return nil, syntaxError(s, t.pos, "empty alternative before ','")
			}
			g.Alternatives = append(g.Alternatives, head)
			head, cur = nil, nil
		}
	}
	if cur == nil || pending != NoCombinator {
		return nil, syntaxError(s, len(s), "unexpected end of selector")
	}
	g.Alternatives = append(g.Alternatives, head)
	tracer().Debugf("parsed selector %q as %s", s, g)
	return g, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *Group {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
