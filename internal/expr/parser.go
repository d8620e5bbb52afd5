package expr

import "fmt"

// SyntaxError reports malformed input. Pos is a byte offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

type parser struct {
	l   lexer
	cur token
}

// Parse parses a complete expression.
func Parse(input string) (Node, error) {
	p := &parser{l: lexer{s: input}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return &SyntaxError{Pos: p.cur.pos, Msg: "unexpected end of input"}
	}
	return &SyntaxError{Pos: p.cur.pos, Msg: fmt.Sprintf("unexpected %q", p.cur.text)}
}

func (p *parser) parseSum() (Node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.text, X: left, Y: right, At: op.pos}
	}
	return left, nil
}

func (p *parser) parseProduct() (Node, error) {
	left, err := p.parseJuxtaposed()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash || p.cur.kind == tokFloorDiv {
		op := p.cur
		p.next()
		right, err := p.parseJuxtaposed()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.text, X: left, Y: right, At: op.pos}
	}
	return left, nil
}

// parseJuxtaposed binds adjacent operands tighter than explicit operators,
// so "1 km / 1 h" divides by an hour.
func (p *parser) parseJuxtaposed() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for startsOperand(p.cur.kind) {
		at := p.cur.pos
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: "*", X: left, Y: right, Implicit: true, At: at}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op.text[0], X: x, At: op.pos}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokCaret {
		return base, nil
	}
	at := p.cur.pos
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: "^", X: base, Y: exp, At: at}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.cur
	switch tok.kind {
	case tokNumber:
		p.next()
		return &Number{Text: tok.text, At: tok.pos}, nil
	case tokIdent:
		p.next()
		return &Unit{Symbol: tok.text, At: tok.pos}, nil
	case tokVar:
		p.next()
		return &Var{Name: tok.text, At: tok.pos}, nil
	case tokLParen, tokLBracket:
		closer := tokRParen
		if tok.kind == tokLBracket {
			closer = tokRBracket
		}
		p.next()
		n, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != closer {
			if p.cur.kind == tokEOF {
				return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unclosed %s", tok.kind)}
			}
			return nil, p.unexpected()
		}
		p.next()
		return n, nil
	default:
		return nil, p.unexpected()
	}
}

func startsOperand(k tokenKind) bool {
	switch k {
	case tokNumber, tokIdent, tokVar, tokLParen, tokLBracket:
		return true
	}
	return false
}
