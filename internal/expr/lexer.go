package expr

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokVar
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokFloorDiv
	tokCaret
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokInvalid
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "unit"
	case tokVar:
		return "variable"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	default:
		return "operator"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		r, size := utf8.DecodeRuneInString(l.s[l.i:])
		if !unicode.IsSpace(r) {
			break
		}
		l.i += size
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	op := func(kind tokenKind, n int) token {
		l.i += n
		return token{kind: kind, text: l.s[start:l.i], pos: start}
	}

	switch l.s[l.i] {
	case '+':
		return op(tokPlus, 1)
	case '-':
		return op(tokMinus, 1)
	case '*':
		if l.peek(1) == '*' {
			return op(tokCaret, 2)
		}
		return op(tokStar, 1)
	case '/':
		if l.peek(1) == '/' {
			return op(tokFloorDiv, 2)
		}
		return op(tokSlash, 1)
	case '^':
		return op(tokCaret, 1)
	case '(':
		return op(tokLParen, 1)
	case ')':
		return op(tokRParen, 1)
	case '[':
		return op(tokLBracket, 1)
	case ']':
		return op(tokRBracket, 1)
	case '$':
		l.i++
		end := scanIdent(l.s, l.i)
		if end == l.i {
			return token{kind: tokInvalid, text: "$", pos: start}
		}
		l.i = end
		return token{kind: tokVar, text: l.s[start+1 : end], pos: start}
	}

	r, size := utf8.DecodeRuneInString(l.s[l.i:])
	if r == '.' || isDigit(r) {
		end := scanNumber(l.s, l.i)
		if end == l.i {
			return op(tokInvalid, size)
		}
		l.i = end
		return token{kind: tokNumber, text: l.s[start:end], pos: start}
	}
	if isIdentStart(r) {
		l.i = scanIdent(l.s, l.i)
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	return op(tokInvalid, size)
}

func (l *lexer) peek(n int) byte {
	if l.i+n < len(l.s) {
		return l.s[l.i+n]
	}
	return 0
}

// scanNumber returns the end of the decimal literal starting at i, or i if
// there is none. An exponent is consumed only when digits follow, so "2eV"
// scans as "2".
func scanNumber(s string, i int) int {
	start := i
	digits := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(rune(s[i])) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func scanIdent(s string, i int) int {
	first := true
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(isIdentStart(r) || (!first && isDigit(r))) {
			break
		}
		i += size
		first = false
	}
	return i
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '°' || unicode.IsLetter(r)
}
