package plural

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokVar
	tokOp
	tokLParen
	tokRParen
	tokQuestion
	tokColon
)

type token struct {
	kind tokenKind
	text string
	num  int64
	pos  int
}

// binaryPrecedence follows C. Higher binds tighter.
var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func tokenize(src string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			v, err := strconv.ParseInt(src[start:i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: number %q at offset %d", ErrInvalidExpression, src[start:i], start)
			}
			tokens = append(tokens, token{kind: tokNum, text: src[start:i], num: v, pos: start})
		case c == 'n':
			if i+1 < len(src) && isIdentByte(src[i+1]) {
				return nil, fmt.Errorf("%w: unknown identifier at offset %d", ErrInvalidExpression, i)
			}
			tokens = append(tokens, token{kind: tokVar, text: "n", pos: i})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		case c == '?':
			tokens = append(tokens, token{kind: tokQuestion, text: "?", pos: i})
			i++
		case c == ':':
			tokens = append(tokens, token{kind: tokColon, text: ":", pos: i})
			i++
		default:
			if i+1 < len(src) {
				if two := src[i : i+2]; two == "==" || two == "!=" || two == "<=" || two == ">=" || two == "&&" || two == "||" {
					tokens = append(tokens, token{kind: tokOp, text: two, pos: i})
					i += 2
					continue
				}
			}
			switch c {
			case '+', '-', '*', '/', '%', '<', '>', '!':
				tokens = append(tokens, token{kind: tokOp, text: string(c), pos: i})
				i++
			default:
				return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidExpression, c, i)
			}
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(src)}), nil
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

type parser struct {
	tokens []token
	pos    int
}

func parse(src string) (node, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	root, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.unexpected(t)
	}

	return root, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) unexpected(t token) error {
	if t.kind == tokEOF {
		return fmt.Errorf("%w: unexpected end of expression", ErrInvalidExpression)
	}
	return fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidExpression, t.text, t.pos)
}

// parseTernary handles cond ? a : b, which is right-associative.
func (p *parser) parseTernary() (node, error) {
	cond, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokQuestion {
		return cond, nil
	}
	p.next()

	yes, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if t := p.next(); t.kind != tokColon {
		return nil, p.unexpected(t)
	}
	no, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	return &ternaryNode{cond: cond, yes: yes, no: no}, nil
}

func (p *parser) parseBinary(minPrec int) (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		if t.kind != tokOp {
			return left, nil
		}
		prec, ok := binaryPrecedence[t.text]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.next()

		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: t.text, left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	t := p.peek()
	if t.kind == tokOp && (t.text == "!" || t.text == "-") {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryNode{op: t.text, x: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return numNode(t.num), nil
	case tokVar:
		return varNode{}, nil
	case tokLParen:
		inner, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.unexpected(closing)
		}
		return inner, nil
	default:
		return nil, p.unexpected(t)
	}
}
