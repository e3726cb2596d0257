// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package lexer turns Babel source text into a stream of tokens, enforcing
// the significant-indentation rule described in the language spec: indents
// are multiples of four spaces, and the lexer emits synthetic INDENT/DEDENT
// tokens the way a Python-like tokenizer does, tracked with an explicit
// stack rather than encoded into a regex (see the design notes this package
// implements).
package lexer

import "github.com/dropbox/babelapi/token"

// Kind identifies the lexical category of a Token.
type Kind string

const (
	ID       Kind = "ID"
	PATH     Kind = "PATH"
	INTEGER  Kind = "INTEGER"
	FLOAT    Kind = "FLOAT"
	STRING   Kind = "STRING"
	KEYWORD  Kind = "KEYWORD"
	EQUALS   Kind = "EQUALS"
	QUESTION Kind = "QUESTION"
	STAR     Kind = "STAR"
	LPAREN   Kind = "LPAREN"
	RPAREN   Kind = "RPAREN"
	COMMA    Kind = "COMMA"
	NEWLINE  Kind = "NEWLINE"
	INDENT   Kind = "INDENT"
	DEDENT   Kind = "DEDENT"
	EOF      Kind = "EOF"
)

// Keywords is the closed set of reserved words recognized by the lexer.
// Built-in primitive type names (String, UInt64, ...) are deliberately not
// members: the spec requires they lex as plain identifiers and be resolved
// as primitives by the parser/resolver instead.
var Keywords = map[string]bool{
	"namespace": true,
	"import":    true,
	"alias":     true,
	"struct":    true,
	"union":     true,
	"route":     true,
	"extends":   true,
	"example":   true,
}

// Token is one lexical unit. NEWLINE/INDENT/DEDENT/EOF carry no meaningful
// Value.
type Token struct {
	Kind  Kind
	Value string
	token.Position
}

func (t Token) String() string {
	if t.Value == "" {
		return string(t.Kind)
	}

	return string(t.Kind) + "(" + t.Value + ")"
}
