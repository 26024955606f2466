package selector

import "strings"

type tokenKind uint8

const (
	tokIdent      tokenKind = iota // #name or bare name
	tokClass                       // .name
	tokTag                         // :name
	tokChild                       // >
	tokDescendant                  // run of whitespace
	tokSeparator                   // ,
)

var tokenNames = [...]string{"ident", "class", "tag", "'>'", "' '", "','"}

func (k tokenKind) String() string {
	return tokenNames[k]
}

type token struct {
	kind tokenKind
	text string // name for ident/class/tag tokens
	pos  int
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// tokenize scans a selector string. Whitespace runs collapse into a single
// descendant token, which is dropped at the ends and next to '>' and ','.
func tokenize(input string) ([]token, error) {
	s := strings.TrimSpace(input)
	offset := strings.Index(input, s) // for error positions in the raw input
	var tokens []token
	pendingSpace := false
	emit := func(t token) {
		structural := t.kind == tokChild || t.kind == tokSeparator
		if pendingSpace && len(tokens) > 0 && !structural {
			last := tokens[len(tokens)-1].kind
			if last != tokChild && last != tokSeparator {
				tokens = append(tokens, token{kind: tokDescendant, pos: t.pos - 1})
			}
		}
		pendingSpace = false
		tokens = append(tokens, t)
	}
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case isSpace(c):
			for i < len(s) && isSpace(s[i]) {
				i++
			}
			pendingSpace = true
			continue
		case c == '>':
			emit(token{kind: tokChild, pos: offset + i})
			i++
		case c == ',':
			emit(token{kind: tokSeparator, pos: offset + i})
			i++
		case c == '#' || c == '.' || c == ':':
			kind := tokIdent
			if c == '.' {
				kind = tokClass
			} else if c == ':' {
				kind = tokTag
			}
			j := i + 1
			for j < len(s) && isNameChar(s[j]) {
				j++
			}
			if j == i+1 {
				return nil, syntaxError(input, offset+i, "expected name after %q", c)
			}
			emit(token{kind: kind, text: s[i+1 : j], pos: offset + i})
			i = j
		case isNameChar(c):
			j := i
			for j < len(s) && isNameChar(s[j]) {
				j++
			}
			emit(token{kind: tokIdent, text: s[i:j], pos: offset + i})
			i = j
		default:
			return nil, syntaxError(input, offset+i, "illegal character %q", c)
		}
	}
	return tokens, nil
}
