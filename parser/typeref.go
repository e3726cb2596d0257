// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strconv"

	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/lexer"
)

// parseTypeRef parses "[ns.]Name ('(' type_args ')')? '?'?".
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.peek()

	var ns, name string

	switch tok.Kind {
	case lexer.ID:
		name = tok.Value
		p.advance()
	case lexer.PATH:
		ns, name = splitPath(tok.Value)
		p.advance()
	default:
		p.errorf(tok, "expected a type reference, found "+tok.String())

		return nil
	}

	ref := &ast.TypeRef{
		Position:  tok.Position,
		Namespace: ns,
		Name:      name,
	}

	if p.peek().Kind == lexer.LPAREN {
		p.advance()
		p.parseTypeArgs(ref)

		if end, ok := p.expect(lexer.RPAREN); ok {
			ref.EndPos = end.EndPos
		}
	}

	if p.peek().Kind == lexer.QUESTION {
		q := p.advance()
		ref.Nullable = true
		ref.EndPos = q.EndPos
	}

	return ref
}

// splitPath splits a lexer PATH token's dotted value into a namespace
// qualifier and a bare name: "files.Metadata" -> ("files", "Metadata").
func splitPath(val string) (ns, name string) {
	last := -1

	for i, r := range val {
		if r == '.' {
			last = i
		}
	}

	if last < 0 {
		return "", val
	}

	return val[:last], val[last+1:]
}

// parseTypeArgs parses a comma-separated list of positional and
// "key=literal" keyword type arguments, e.g. "UInt64" in List(UInt64), or
// "min_length=3" in String(min_length=3).
func (p *Parser) parseTypeArgs(ref *ast.TypeRef) {
	if p.peek().Kind == lexer.RPAREN {
		return
	}

	for {
		if p.peek().Kind == lexer.ID && p.peekN(1).Kind == lexer.EQUALS {
			key := p.advance().Value
			p.advance() // '='

			lit := p.parseLiteral()
			if ref.KeywordArgs == nil {
				ref.KeywordArgs = map[string]ast.Literal{}
			}

			ref.KeywordArgs[key] = lit
		} else {
			arg := p.parseTypeRef()
			if arg != nil {
				ref.PosArgs = append(ref.PosArgs, arg)
			}
		}

		if p.peek().Kind != lexer.COMMA {
			break
		}

		p.advance()
	}
}

// parseLiteral parses a single literal token into an ast.Literal: an
// integer, a float, a string, a bool (spelled "true"/"false" as a plain
// identifier token), or a bare identifier standing for a union tag
// (ast.TagRef), resolved to a concrete member during resolution.
func (p *Parser) parseLiteral() ast.Literal {
	tok := p.peek()

	switch tok.Kind {
	case lexer.INTEGER:
		p.advance()

		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			p.errorf(tok, "invalid integer literal "+tok.Value)

			return int64(0)
		}

		return n
	case lexer.FLOAT:
		p.advance()

		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			p.errorf(tok, "invalid float literal "+tok.Value)

			return float64(0)
		}

		return f
	case lexer.STRING:
		p.advance()

		return tok.Value
	case lexer.ID:
		p.advance()

		switch tok.Value {
		case "true":
			return true
		case "false":
			return false
		default:
			return &ast.TagRef{Position: tok.Position, Name: tok.Value}
		}
	default:
		p.errorf(tok, "expected a literal value, found "+tok.String())
		p.advance()

		return nil
	}
}
