// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

import (
	"fmt"
)

type parser struct {
	l    *lexer
	src  string
	cur  token
	next token

	preds []Predicate
}

// Parse parses a cfg expression. The outer cfg(...) wrapper is optional,
// so `cfg(unix)` and `unix` are the same expression.
func Parse(src string) (*Expression, error) {
	p := &parser{l: newLexer(src), src: src}
	p.advance()
	p.advance()

	var root node
	var err error
	if p.cur.typ == tokenIdent && p.cur.literal == "cfg" && p.next.typ == tokenLParen {
		p.advance()
		p.advance()
		if root, err = p.parsePredicate(); err != nil {
			return nil, err
		}
		if err = p.expect(tokenRParen); err != nil {
			return nil, err
		}
	} else if root, err = p.parsePredicate(); err != nil {
		return nil, err
	}
	if p.cur.typ != tokenEOF {
		return nil, p.unexpected()
	}
	return &Expression{src: src, root: root, preds: p.preds}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) *Expression {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *parser) advance() {
	p.cur = p.next
	p.next = p.l.next()
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &PredicateError{Expr: p.src, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) unexpected() error {
	if p.cur.typ == tokenIllegal {
		return p.errorf(p.cur.offset, "invalid token %q", p.cur.literal)
	}
	return p.errorf(p.cur.offset, "unexpected %s", tokenLabel(p.cur.typ))
}

func (p *parser) expect(tt tokenType) error {
	if p.cur.typ != tt {
		if p.cur.typ == tokenIllegal {
			return p.unexpected()
		}
		return p.errorf(p.cur.offset, "expected %s, got %s", tokenLabel(tt), tokenLabel(p.cur.typ))
	}
	p.advance()
	return nil
}

func (p *parser) parsePredicate() (node, error) {
	if p.cur.typ != tokenIdent {
		if p.cur.typ == tokenIllegal {
			return nil, p.unexpected()
		}
		return nil, p.errorf(p.cur.offset, "expected predicate, got %s", tokenLabel(p.cur.typ))
	}
	ident := p.cur
	p.advance()

	switch {
	case p.cur.typ == tokenLParen:
		return p.parseCombinator(ident)
	case p.cur.typ == tokenAssign:
		p.advance()
		if p.cur.typ != tokenString {
			return nil, p.errorf(p.cur.offset, "expected string value for %s, got %s", ident.literal, tokenLabel(p.cur.typ))
		}
		key := Key(ident.literal)
		if !knownKeys[key] {
			return nil, p.errorf(ident.offset, "unsupported key %q", ident.literal)
		}
		pred := Predicate{Key: key, Value: p.cur.literal}
		p.advance()
		return p.atom(pred), nil
	default:
		if !familyShorthands[ident.literal] {
			return nil, p.errorf(ident.offset, "unsupported predicate %q", ident.literal)
		}
		return p.atom(Predicate{Key: KeyFamily, Value: ident.literal}), nil
	}
}

func (p *parser) atom(pred Predicate) node {
	p.preds = append(p.preds, pred)
	return &predNode{pred: pred}
}

func (p *parser) parseCombinator(ident token) (node, error) {
	switch ident.literal {
	case "all", "any", "not":
	default:
		return nil, p.errorf(ident.offset, "unknown combinator %q", ident.literal)
	}
	p.advance() // (

	var args []node
	for p.cur.typ != tokenRParen {
		arg, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.typ == tokenComma {
			p.advance()
			continue
		}
		if p.cur.typ != tokenRParen {
			return nil, p.errorf(p.cur.offset, "expected ',' or ')', got %s", tokenLabel(p.cur.typ))
		}
	}
	p.advance() // )

	switch ident.literal {
	case "all":
		return &allNode{args: args}, nil
	case "any":
		return &anyNode{args: args}, nil
	default:
		if len(args) != 1 {
			return nil, p.errorf(ident.offset, "not() takes exactly one predicate, got %d", len(args))
		}
		return &notNode{arg: args[0]}, nil
	}
}
