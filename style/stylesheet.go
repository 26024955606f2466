package style

import (
	"errors"
	"fmt"

	"github.com/npillmayer/boxtree/selector"
)

// ErrNestedSelector is returned when a stylesheet rule uses a combinator.
// Rules must be flat: identifier, classes and tags only.
var ErrNestedSelector = errors.New("stylesheet rule selector must not contain combinators")

// Rule pairs a flat selector with the style it contributes.
type Rule struct {
	Selector *selector.Group
	Style    Style
}

// Stylesheet is a collection of rules. Matching rules are applied in
// registration order. A nil *Stylesheet is a valid empty stylesheet.
//
// Stylesheets may be global or attached to a subtree (see package dom).
type Stylesheet struct {
	rules      []Rule
	generation uint64
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{}
}

// AddRule parses sel and appends a rule. Malformed selectors and selectors
// with combinators are rejected.
func (ss *Stylesheet) AddRule(sel string, s Style) error {
	g, err := selector.Parse(sel)
	if err != nil {
		return err
	}
	return ss.Add(g, s)
}

// Add appends a rule for an already parsed selector.
func (ss *Stylesheet) Add(g *selector.Group, s Style) error {
	if !g.IsFlat() {
		err := fmt.Errorf("%w: %q", ErrNestedSelector, g.Raw)
		tracer().Errorf(err.Error())
		return err
	}
	ss.rules = append(ss.rules, Rule{Selector: g, Style: s})
	ss.generation++
	return nil
}

// MustAddRule is like AddRule but panics on configuration errors.
func (ss *Stylesheet) MustAddRule(sel string, s Style) *Stylesheet {
	if err := ss.AddRule(sel, s); err != nil {
		panic(err)
	}
	return ss
}

// AppendRules appends all rules from another stylesheet.
func (ss *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil || len(other.rules) == 0 {
		return
	}
	ss.rules = append(ss.rules, other.rules...)
	ss.generation++
}

// Empty checks if this stylesheet contains any rules.
func (ss *Stylesheet) Empty() bool {
	return ss == nil || len(ss.rules) == 0
}

// Rules returns all the rules of a stylesheet, in registration order.
func (ss *Stylesheet) Rules() []Rule {
	if ss == nil {
		return nil
	}
	return ss.rules
}

// Generation is incremented with every modification. Clients use it to
// detect that resolved styles depending on the stylesheet are stale.
func (ss *Stylesheet) Generation() uint64 {
	if ss == nil {
		return 0
	}
	return ss.generation
}

// ApplyTo applies every rule matching e to cs, in registration order.
// It returns the number of matching rules.
func (ss *Stylesheet) ApplyTo(cs *ComputedStyle, e selector.Element) int {
	if ss == nil {
		return 0
	}
	n := 0
	for i := range ss.rules {
		if ss.rules[i].Selector.MatchesElement(e) {
			cs.Apply(&ss.rules[i].Style)
			n++
		}
	}
	return n
}
