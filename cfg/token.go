// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfg

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIllegal
	tokenIdent
	tokenString
	tokenLParen
	tokenRParen
	tokenComma
	tokenAssign
)

type token struct {
	typ     tokenType
	literal string
	offset  int
}

func tokenLabel(tt tokenType) string {
	switch tt {
	case tokenEOF:
		return "end of input"
	case tokenIllegal:
		return "invalid character"
	case tokenIdent:
		return "identifier"
	case tokenString:
		return "string"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenComma:
		return "','"
	case tokenAssign:
		return "'='"
	default:
		return "token"
	}
}
