/*
Package selector implements a small selector language for boxes.

Grammar

	selector   := simple (combinator simple)* (',' selector)*
	simple     := id? class* tag*
	combinator := ' '  (descendant) | '>'  (direct child)
	id         := '#'name | name
	class      := '.'name
	tag        := ':'name

Names consist of the characters [A-Za-z0-9_-]. Examples:

	#root > .item:active     items with state tag "active", direct children of #root
	.a .b                    any box with class b below a box with class a
	#a, #b                   either #a or #b (first match wins for single queries)

Parsing produces a Group of alternatives, each of which is a chain of simple
selectors linked by combinators. Stylesheet rules accept flat selectors only,
i.e. chains without combinators (see Group.IsFlat).

Queries run over generic tree nodes (package tree) whose payload implements
interface Element.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.selector'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.selector")
}

// ErrSyntax is the error class of all malformed selectors.
var ErrSyntax = errors.New("selector syntax error")

// SyntaxError describes where a selector string went wrong.
type SyntaxError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("selector syntax error at position %d in %q: %s", e.Pos, e.Input, e.Msg)
}

// Unwrap makes errors.Is(err, ErrSyntax) work.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxError(input string, pos int, msg string, args ...interface{}) error {
	err := &SyntaxError{Input: input, Pos: pos, Msg: fmt.Sprintf(msg, args...)}
	tracer().Errorf(err.Error())
	return err
}
