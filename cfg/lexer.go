// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

import (
	"strings"
)

type lexer struct {
	input  string
	offset int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) peekByte() byte {
	if l.offset >= len(l.input) {
		return 0
	}
	return l.input[l.offset]
}

func (l *lexer) skipWhitespace() {
	for l.offset < len(l.input) {
		switch l.input[l.offset] {
		case ' ', '\t', '\n', '\r':
			l.offset++
		default:
			return
		}
	}
}

// next returns the next token. An unterminated string or an unknown
// character yields tokenIllegal; the parser reports it.
func (l *lexer) next() token {
	l.skipWhitespace()

	start := l.offset
	ch := l.peekByte()
	switch {
	case ch == 0 && l.offset >= len(l.input):
		return token{typ: tokenEOF, offset: start}
	case ch == '(':
		l.offset++
		return token{typ: tokenLParen, literal: "(", offset: start}
	case ch == ')':
		l.offset++
		return token{typ: tokenRParen, literal: ")", offset: start}
	case ch == ',':
		l.offset++
		return token{typ: tokenComma, literal: ",", offset: start}
	case ch == '=':
		l.offset++
		return token{typ: tokenAssign, literal: "=", offset: start}
	case ch == '"':
		return l.readString()
	case isIdentStart(ch):
		for l.offset < len(l.input) && isIdentPart(l.input[l.offset]) {
			l.offset++
		}
		return token{typ: tokenIdent, literal: l.input[start:l.offset], offset: start}
	default:
		l.offset++
		return token{typ: tokenIllegal, literal: l.input[start:l.offset], offset: start}
	}
}

func (l *lexer) readString() token {
	start := l.offset
	l.offset++ // opening quote

	var b strings.Builder
	for l.offset < len(l.input) {
		ch := l.input[l.offset]
		switch ch {
		case '"':
			l.offset++
			return token{typ: tokenString, literal: b.String(), offset: start}
		case '\\':
			if l.offset+1 >= len(l.input) {
				l.offset = len(l.input)
				return token{typ: tokenIllegal, literal: l.input[start:], offset: start}
			}
			b.WriteByte(l.input[l.offset+1])
			l.offset += 2
		default:
			b.WriteByte(ch)
			l.offset++
		}
	}
	return token{typ: tokenIllegal, literal: l.input[start:], offset: start}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
