// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/dropbox/babelapi/ast"
	"github.com/dropbox/babelapi/lexer"
)

func (p *Parser) parseStruct() ast.Decl {
	kw := p.advance() // 'struct'

	nameTok, ok := p.expect(lexer.ID)
	if !ok {
		p.resync()

		return nil
	}

	var extends *ast.TypeRef

	if p.peek().Kind == lexer.KEYWORD && p.peek().Value == "extends" {
		p.advance()

		extends = p.parseTypeRef()
	}

	decl := &ast.StructDecl{Name: nameTok.Value, Extends: extends}

	end := nameTok

	if p.peek().Kind == lexer.NEWLINE {
		p.advance()
	}

	if p.peek().Kind == lexer.INDENT {
		p.advance()

		decl.Doc = p.parseLeadingDoc()

		if p.peek().Kind == lexer.KEYWORD && p.peek().Value == "union" {
			decl.Subtypes = p.parseSubtypesBlock()
		}

		for !p.atEOF() && p.peek().Kind != lexer.DEDENT {
			if p.peek().Kind == lexer.KEYWORD && p.peek().Value == "example" {
				decl.Examples = append(decl.Examples, p.parseExample())

				continue
			}

			decl.Fields = append(decl.Fields, p.parseField())
		}

		if d, ok := p.expect(lexer.DEDENT); ok {
			end = d
		}
	}

	decl.Position = span(kw, end)

	return decl
}

func (p *Parser) parseUnion() ast.Decl {
	kw := p.advance() // 'union'

	nameTok, ok := p.expect(lexer.ID)
	if !ok {
		p.resync()

		return nil
	}

	var extends *ast.TypeRef

	if p.peek().Kind == lexer.KEYWORD && p.peek().Value == "extends" {
		p.advance()

		extends = p.parseTypeRef()
	}

	decl := &ast.UnionDecl{Name: nameTok.Value, Extends: extends}

	end := nameTok

	if p.peek().Kind == lexer.NEWLINE {
		p.advance()
	}

	if p.peek().Kind == lexer.INDENT {
		p.advance()

		decl.Doc = p.parseLeadingDoc()

		for !p.atEOF() && p.peek().Kind != lexer.DEDENT {
			decl.Members = append(decl.Members, p.parseUnionMember())
		}

		if d, ok := p.expect(lexer.DEDENT); ok {
			end = d
		}
	}

	decl.Position = span(kw, end)

	return decl
}

func (p *Parser) parseRoute() ast.Decl {
	kw := p.advance() // 'route'

	nameTok, ok := p.expect(lexer.ID)
	if !ok {
		p.resync()

		return nil
	}

	if _, ok := p.expect(lexer.LPAREN); !ok {
		p.resync()

		return nil
	}

	req := p.parseTypeRef()
	p.expect(lexer.COMMA)
	resp := p.parseTypeRef()
	p.expect(lexer.COMMA)
	errT := p.parseTypeRef()

	rparen, ok := p.expect(lexer.RPAREN)
	if !ok {
		p.resync()

		return nil
	}

	decl := &ast.RouteDecl{Name: nameTok.Value, Request: req, Response: resp, Error: errT}
	end := rparen

	if p.peek().Kind == lexer.NEWLINE {
		p.advance()
	}

	if p.peek().Kind == lexer.INDENT {
		p.advance()

		decl.Doc = p.parseLeadingDoc()

		var entries []ast.AttrEntry

		for p.peek().Kind == lexer.ID && p.peekN(1).Kind == lexer.EQUALS {
			key := p.advance().Value
			p.advance() // '='
			lit := p.parseLiteral()
			entries = append(entries, ast.AttrEntry{Key: key, Value: lit})
			p.skipNewlines()
		}

		if len(entries) > 0 {
			decl.Attrs = &ast.AttrList{Entries: entries}
		}

		if d, ok := p.expect(lexer.DEDENT); ok {
			end = d
		}
	}

	decl.Position = span(kw, end)

	return decl
}

// parseUnionMember parses one "field | void_field" line. Both start with an
// identifier; they're disambiguated by what follows: a type reference means
// a typed Field, anything else (a '*', or end of line) means a VoidField.
func (p *Parser) parseUnionMember() ast.UnionMember {
	nameTok, ok := p.expect(lexer.ID)
	if !ok {
		p.advance()

		return nil
	}

	if p.peek().Kind == lexer.ID || p.peek().Kind == lexer.PATH {
		return p.finishField(nameTok)
	}

	return p.finishVoidField(nameTok)
}

func (p *Parser) parseField() *ast.Field {
	nameTok, ok := p.expect(lexer.ID)
	if !ok {
		p.advance()

		return &ast.Field{}
	}

	return p.finishField(nameTok)
}

func (p *Parser) finishField(nameTok lexer.Token) *ast.Field {
	typeRef := p.parseTypeRef()

	f := &ast.Field{Name: nameTok.Value, Type: typeRef}
	end := nameTok

	if p.peek().Kind == lexer.EQUALS {
		p.advance()

		f.Default = p.parseLiteral()
		f.HasDefault = true
	}

	f.Doc = p.parseIndentedDoc(&end)
	p.skipNewlines()

	f.Position = span(nameTok, end)

	return f
}

func (p *Parser) finishVoidField(nameTok lexer.Token) *ast.VoidField {
	vf := &ast.VoidField{Name: nameTok.Value}
	end := nameTok

	if p.peek().Kind == lexer.STAR {
		star := p.advance()
		vf.CatchAll = true
		end = star
	}

	vf.Doc = p.parseIndentedDoc(&end)
	p.skipNewlines()

	vf.Position = span(nameTok, end)

	return vf
}

// parseSubtypesBlock parses a struct's nested enumerated-subtypes
// partition: "union" ['*'] INDENT (ID type_ref)+ DEDENT.
func (p *Parser) parseSubtypesBlock() *ast.SubtypesBlock {
	kw := p.advance() // 'union'

	block := &ast.SubtypesBlock{}
	end := kw

	if p.peek().Kind == lexer.STAR {
		star := p.advance()
		block.Extensible = true
		end = star
	}

	if p.peek().Kind == lexer.NEWLINE {
		p.advance()
	}

	if _, ok := p.expect(lexer.INDENT); !ok {
		block.Position = span(kw, end)

		return block
	}

	for !p.atEOF() && p.peek().Kind != lexer.DEDENT {
		tagTok, ok := p.expect(lexer.ID)
		if !ok {
			p.advance()

			continue
		}

		typeRef := p.parseTypeRef()
		p.skipNewlines()

		block.Tags = append(block.Tags, &ast.SubtypeTag{
			Position: span(tagTok, tagTok),
			Tag:      tagTok.Value,
			Type:     typeRef,
		})
	}

	if d, ok := p.expect(lexer.DEDENT); ok {
		end = d
	}

	block.Position = span(kw, end)

	return block
}

// parseExample parses "example" ID INDENT (ID '=' literal)* DEDENT.
func (p *Parser) parseExample() *ast.Example {
	kw := p.advance() // 'example'

	labelTok, ok := p.expect(lexer.ID)
	if !ok {
		p.advance()

		return &ast.Example{}
	}

	ex := &ast.Example{Label: labelTok.Value}
	end := labelTok

	if p.peek().Kind == lexer.NEWLINE {
		p.advance()
	}

	if p.peek().Kind == lexer.INDENT {
		p.advance()

		for !p.atEOF() && p.peek().Kind != lexer.DEDENT {
			fNameTok, ok := p.expect(lexer.ID)
			if !ok {
				p.advance()

				continue
			}

			p.expect(lexer.EQUALS)
			lit := p.parseLiteral()
			p.skipNewlines()

			ex.Fields = append(ex.Fields, ast.ExampleField{
				Position: span(fNameTok, fNameTok),
				Name:     fNameTok.Value,
				Value:    lit,
			})
		}

		if d, ok := p.expect(lexer.DEDENT); ok {
			end = d
		}
	}

	ex.Position = span(kw, end)

	return ex
}
