package cssom

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxtree/style"
)

// ParseDeclarations converts a declaration block, like the content of
// an HTML style attribute, into a style.
//
//	s, err := cssom.ParseDeclarations("width: 40; padding: 2 4; color: navy")
func ParseDeclarations(decl string) (style.Style, error) {
	decls, err := parser.ParseDeclarations(decl)
	if err != nil {
		tracer().Errorf("CSS declarations: %v", err)
		return style.Style{}, err
	}
	return toStyle(decls)
}

// Parse reads a stylesheet. At-rules are not supported and will be skipped.
// Any rule with an illegal or non-flat selector, or with an illegal
// declaration, makes Parse fail.
func Parse(text string) (*style.Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("CSS stylesheet: %v", err)
		return nil, err
	}
	ss := style.NewStylesheet()
	for _, rule := range sheet.Rules {
		if rule.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule @%s", rule.Name)
			continue
		}
		s, err := toStyle(rule.Declarations)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Prelude, err)
		}
		if err = ss.AddRule(rule.Prelude, s); err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Prelude, err)
		}
	}
	tracer().Debugf("parsed stylesheet with %d rules", len(ss.Rules()))
	return ss, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(text string) *style.Stylesheet {
	ss, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ss
}
