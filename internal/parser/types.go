package parser

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/token"
)

// parseTypeAnnotation parses a type annotation with union as the
// lowest-precedence connective, then postfix `[]` array suffixes.
func (p *Parser) parseTypeAnnotation() ast.TypeAnnotation {
	first := p.parseTypeAnnotationAtom()
	if !p.at(token.Pipe) {
		return first
	}
	alts := []ast.TypeAnnotation{first}
	tok := p.cur()
	for p.accept(token.Pipe) {
		alts = append(alts, p.parseTypeAnnotationAtom())
	}
	return &ast.UnionTypeAnnotation{Token: tok, Alternatives: alts}
}

func (p *Parser) parseTypeAnnotationAtom() ast.TypeAnnotation {
	var result ast.TypeAnnotation

	switch p.cur().Kind {
	case token.LBrace:
		result = p.parseRecordTypeAnnotation()
	case token.LParen:
		result = p.parseParenTypeAnnotation()
	case token.KwThis:
		tok := p.advance()
		result = &ast.NamedTypeAnnotation{Token: tok, Name: "this", IsThis: true}
	default:
		tok := p.expect(token.Ident)
		named := &ast.NamedTypeAnnotation{Token: tok, Name: tok.Literal}
		if p.accept(token.Lt) {
			named.TypeArgs = append(named.TypeArgs, p.parseTypeAnnotation())
			for p.accept(token.Comma) {
				named.TypeArgs = append(named.TypeArgs, p.parseTypeAnnotation())
			}
			p.expect(token.Gt)
		}
		result = named
	}

	for p.at(token.LBracket) && p.peek(1).Kind == token.RBracket {
		tok := p.advance()
		p.advance()
		result = &ast.ArrayTypeAnnotation{Token: tok, Element: result}
	}
	return result
}

func (p *Parser) parseRecordTypeAnnotation() ast.TypeAnnotation {
	tok := p.expect(token.LBrace)
	rec := &ast.RecordTypeAnnotation{Token: tok}
	for !p.at(token.RBrace) && !p.atEOF() {
		name := p.expect(token.Ident).Literal
		optional := p.accept(token.Question)
		p.expect(token.Colon)
		typ := p.parseTypeAnnotation()
		rec.Fields = append(rec.Fields, ast.RecordTypeField{Name: name, Type: typ, Optional: optional})
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return rec
}

// parseParenTypeAnnotation handles `(A, B)` tuple types, `(|A, B|)`
// unboxed-tuple types, and `(A, B) => C` function types. A single
// parenthesized annotation `(A)` denotes grouping and is returned as-is.
func (p *Parser) parseParenTypeAnnotation() ast.TypeAnnotation {
	tok := p.expect(token.LParen)

	if p.accept(token.Pipe) {
		ut := &ast.UnboxedTupleTypeAnnotation{Token: tok}
		for !p.at(token.Pipe) && !p.atEOF() {
			ut.Elements = append(ut.Elements, p.parseTypeAnnotation())
			if !p.accept(token.Comma) {
				break
			}
		}
		p.expect(token.Pipe)
		p.expect(token.RParen)
		return ut
	}

	var elements []ast.TypeAnnotation
	if !p.at(token.RParen) {
		elements = append(elements, p.parseTypeAnnotation())
		for p.accept(token.Comma) {
			elements = append(elements, p.parseTypeAnnotation())
		}
	}
	p.expect(token.RParen)

	if p.accept(token.Arrow) {
		ret := p.parseTypeAnnotation()
		return &ast.FunctionTypeAnnotation{Token: tok, Params: elements, ReturnType: ret}
	}

	switch len(elements) {
	case 0:
		return &ast.TupleTypeAnnotation{Token: tok}
	case 1:
		return elements[0]
	default:
		return &ast.TupleTypeAnnotation{Token: tok, Elements: elements}
	}
}
