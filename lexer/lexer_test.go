// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"fmt"
	"testing"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    *TokenSet
		wantErr bool
	}{
		{
			name: "namespace",
			src:  "namespace files",
			want: NewTokenSet().Keyword().ID("").Newline().EOF(),
		},
		{
			name: "struct with default and nullable",
			src: "namespace ns\n" +
				"struct D\n" +
				"    a String\n" +
				"    b UInt64 = 10\n" +
				"    c String?\n",
			want: NewTokenSet().
				Keyword().ID("").Newline().
				Keyword().ID("").Newline().
				Indent().
				ID("").ID("").Newline().
				ID("").ID("").Equals().Integer("10").Newline().
				ID("").ID("").Question().Newline().
				Dedent().EOF(),
		},
		{
			name: "indent must be a multiple of four",
			src: "namespace ns\n" +
				"struct D\n" +
				"  a String\n",
			wantErr: true,
		},
		{
			name: "block string",
			src: "namespace ns\n" +
				"struct D\n" +
				"    \"\n" +
				"    Hello\n" +
				"    World\n" +
				"    \"\n" +
				"    a String\n",
			want: NewTokenSet().
				Keyword().ID("").Newline().
				Keyword().ID("").Newline().
				Indent().
				StringLit("Hello\nWorld").Newline().
				ID("").ID("").Newline().
				Dedent().EOF(),
		},
		{
			name: "type args",
			src: "namespace test\n" +
				"alias T = String(min_length=3)\n",
			want: NewTokenSet().
				Keyword().ID("").Newline().
				Keyword().ID("").Equals().ID("").LParen().ID("").Equals().Integer("3").RParen().Newline().
				EOF(),
		},
		{
			name: "path reference",
			src:  "alias A = files.Metadata\n",
			want: NewTokenSet().
				Keyword().ID("").Equals().Path("files.Metadata").Newline().
				EOF(),
		},
		{
			name: "comments",
			src: "# comment at top\n" +
				"namespace files\n" +
				"\n" +
				"alias Rev = String # partial line comment\n",
			want: NewTokenSet().
				Keyword().ID("").Newline().
				Keyword().ID("").Equals().ID("").Newline().
				EOF(),
		},
		{
			name: "union catch-all",
			src: "namespace t\n" +
				"union E\n" +
				"    a\n" +
				"    b\n" +
				"    unk*\n",
			want: NewTokenSet().
				Keyword().ID("").Newline().
				Keyword().ID("").Newline().
				Indent().
				ID("").Newline().
				ID("").Newline().
				ID("").Star().Newline().
				Dedent().EOF(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := Tokenize("t.babel", tt.src)

			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("expected an error, got none")
				}

				return
			}

			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}

			tt.want.Assert(toks, t)
		})
	}
}

// test utils, in the spirit of the fluent NewTestSet()... chain: each call
// appends one checker, Assert runs every checker against its token in order.

type TokenSet struct {
	checks []func(Token) error
}

func NewTokenSet() *TokenSet {
	return &TokenSet{}
}

func (ts *TokenSet) kind(k Kind) *TokenSet {
	ts.checks = append(ts.checks, func(tok Token) error {
		if tok.Kind != k {
			return fmt.Errorf("expected %s, got %s", k, tok.Kind)
		}

		return nil
	})

	return ts
}

func (ts *TokenSet) value(k Kind, value string) *TokenSet {
	ts.checks = append(ts.checks, func(tok Token) error {
		if tok.Kind != k {
			return fmt.Errorf("expected %s, got %s", k, tok.Kind)
		}

		if value != "" && tok.Value != value {
			return fmt.Errorf("%s: expected value %q, got %q", k, value, tok.Value)
		}

		return nil
	})

	return ts
}

func (ts *TokenSet) Keyword() *TokenSet              { return ts.kind(KEYWORD) }
func (ts *TokenSet) ID(value string) *TokenSet       { return ts.value(ID, value) }
func (ts *TokenSet) Path(value string) *TokenSet     { return ts.value(PATH, value) }
func (ts *TokenSet) Integer(value string) *TokenSet  { return ts.value(INTEGER, value) }
func (ts *TokenSet) Float(value string) *TokenSet    { return ts.value(FLOAT, value) }
func (ts *TokenSet) StringLit(value string) *TokenSet { return ts.value(STRING, value) }
func (ts *TokenSet) Equals() *TokenSet               { return ts.kind(EQUALS) }
func (ts *TokenSet) Question() *TokenSet             { return ts.kind(QUESTION) }
func (ts *TokenSet) Star() *TokenSet                 { return ts.kind(STAR) }
func (ts *TokenSet) LParen() *TokenSet                { return ts.kind(LPAREN) }
func (ts *TokenSet) RParen() *TokenSet                { return ts.kind(RPAREN) }
func (ts *TokenSet) Comma() *TokenSet                 { return ts.kind(COMMA) }
func (ts *TokenSet) Newline() *TokenSet               { return ts.kind(NEWLINE) }
func (ts *TokenSet) Indent() *TokenSet                { return ts.kind(INDENT) }
func (ts *TokenSet) Dedent() *TokenSet                { return ts.kind(DEDENT) }
func (ts *TokenSet) EOF() *TokenSet                   { return ts.kind(EOF) }

// Assert checks toks against ts's chain of checkers, one checker per token
// in order.
func (ts *TokenSet) Assert(toks []Token, t *testing.T) {
	t.Helper()

	if len(toks) != len(ts.checks) {
		t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(ts.checks))
	}

	for i, check := range ts.checks {
		if err := check(toks[i]); err != nil {
			t.Errorf("token %d: %v", i, err)
		}
	}
}
