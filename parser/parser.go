// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package parser turns one file's token stream into a syntax tree
// (package ast). It never aborts: on an unexpected token it records a
// diagnostic and resynchronizes to the next top-level declaration, the
// same recovery strategy the teacher's tree-building parser used for
// unbalanced blocks.
package parser

import (
	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/lexer"
	"github.com/dropbox/babelapi/token"
)

var topLevelKeywords = map[string]bool{
	"namespace": true,
	"import":    true,
	"alias":     true,
	"struct":    true,
	"union":     true,
	"route":     true,
}

// Parser consumes the token stream produced by package lexer for a single
// file and builds an *ast.File.
type Parser struct {
	path  string
	toks  []lexer.Token
	pos   int
	depth int // current INDENT nesting, used by resync to find top level
	errs  []*token.PosError
}

// Parse lexes and parses src as the file at path, returning the syntax
// tree and every diagnostic accumulated along the way (lexing errors first,
// then parse errors). babelc's compile command stops before resolving if
// this slice is non-empty for any file (§4.2).
func Parse(path, src string) (*ast.File, []*token.PosError) {
	toks, lexErrs := lexer.Tokenize(path, src)

	p := &Parser{path: path, toks: toks}
	p.errs = append(p.errs, lexErrs...)

	file := &ast.File{Path: path}

	p.skipNewlines()

	for !p.atEOF() {
		d := p.parseDecl()
		if d != nil {
			file.Decls = append(file.Decls, d)
		}

		p.skipNewlines()
	}

	return file, p.errs
}

func (p *Parser) peek() lexer.Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}

	return p.toks[idx]
}

func (p *Parser) atEOF() bool {
	return p.peek().Kind == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	t := p.peek()

	if t.Kind != lexer.EOF {
		p.pos++
	}

	switch t.Kind {
	case lexer.INDENT:
		p.depth++
	case lexer.DEDENT:
		p.depth--
	}

	return t
}

func (p *Parser) skipNewlines() {
	for p.peek().Kind == lexer.NEWLINE {
		p.advance()
	}
}

func (p *Parser) errorf(node token.Node, msg string) {
	p.errs = append(p.errs, token.NewPosError(node, msg))
}

func (p *Parser) expect(kind lexer.Kind) (lexer.Token, bool) {
	if p.peek().Kind != kind {
		p.errorf(p.peek(), "expected "+string(kind)+", found "+p.peek().String())

		return lexer.Token{}, false
	}

	return p.advance(), true
}

// resync skips tokens until we're back at indentation depth zero and
// looking at something that can start a new top-level declaration, or EOF.
func (p *Parser) resync() {
	for !p.atEOF() {
		if p.depth == 0 {
			t := p.peek()
			if t.Kind == lexer.KEYWORD && topLevelKeywords[t.Value] {
				return
			}
		}

		p.advance()
	}
}

func (p *Parser) parseDecl() ast.Decl {
	tok := p.peek()

	if tok.Kind != lexer.KEYWORD {
		p.errorf(tok, "expected a top-level declaration, found "+tok.String())
		p.advance()
		p.resync()

		return nil
	}

	switch tok.Value {
	case "namespace":
		return p.parseNamespace()
	case "import":
		return p.parseImport()
	case "alias":
		return p.parseAlias()
	case "struct":
		return p.parseStruct()
	case "union":
		return p.parseUnion()
	case "route":
		return p.parseRoute()
	default:
		p.errorf(tok, "unexpected keyword "+tok.Value+" at top level")
		p.advance()
		p.resync()

		return nil
	}
}

func span(begin, end lexer.Token) token.Position {
	return token.Position{BeginPos: begin.BeginPos, EndPos: end.EndPos}
}

func (p *Parser) parseNamespace() ast.Decl {
	kw := p.advance() // 'namespace'

	name, ok := p.expect(lexer.ID)
	if !ok {
		p.resync()

		return nil
	}

	end := name
	doc := p.parseIndentedDoc(&end)

	return &ast.NamespaceDecl{Position: span(kw, end), Name: name.Value, Doc: doc}
}

func (p *Parser) parseImport() ast.Decl {
	kw := p.advance() // 'import'

	name, ok := p.expect(lexer.ID)
	if !ok {
		p.resync()

		return nil
	}

	return &ast.ImportDecl{Position: span(kw, name), Name: name.Value}
}

func (p *Parser) parseAlias() ast.Decl {
	kw := p.advance() // 'alias'

	name, ok := p.expect(lexer.ID)
	if !ok {
		p.resync()

		return nil
	}

	if _, ok := p.expect(lexer.EQUALS); !ok {
		p.resync()

		return nil
	}

	ref := p.parseTypeRef()
	if ref == nil {
		p.resync()

		return nil
	}

	return &ast.AliasDecl{Position: span(kw, p.peek()), Name: name.Value, Type: ref}
}

// parseIndentedDoc consumes an optional "NEWLINE INDENT STRING NEWLINE
// DEDENT" block, the shape a bodyless declaration's docstring takes. *end
// is updated to the last consumed token so callers can compute a span.
func (p *Parser) parseIndentedDoc(end *lexer.Token) *ast.DocBlock {
	if p.peek().Kind != lexer.NEWLINE || p.peekN(1).Kind != lexer.INDENT || p.peekN(2).Kind != lexer.STRING {
		return nil
	}

	p.advance() // NEWLINE
	p.advance() // INDENT

	strTok := p.advance() // STRING
	p.skipNewlines()

	*end = strTok
	doc := ast.NewDocBlock(strTok.Position, strTok.Value)

	if d, ok := p.expect(lexer.DEDENT); ok {
		*end = d
	}

	return doc
}

// parseLeadingDoc consumes a single STRING (plus trailing NEWLINE) at the
// start of an already-open INDENT block, without touching the closing
// DEDENT — used by struct/union/route bodies, which have more content
// after the doc.
func (p *Parser) parseLeadingDoc() *ast.DocBlock {
	if p.peek().Kind != lexer.STRING {
		return nil
	}

	strTok := p.advance()
	p.skipNewlines()

	return ast.NewDocBlock(strTok.Position, strTok.Value)
}
