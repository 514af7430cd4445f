package parser

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/token"
)

// parsePattern parses the patterns enumerated in spec §3: identifier,
// wildcard, literal, record, tuple, unboxed-tuple, class, as-rename.
func (p *Parser) parsePattern() ast.Pattern {
	var base ast.Pattern

	switch p.cur().Kind {
	case token.KwHole:
		tok := p.advance()
		base = &ast.WildcardPattern{Token: tok}
	case token.LBrace:
		base = p.parseRecordPattern()
	case token.LParen:
		base = p.parseTupleLikePattern()
	case token.IntLiteral, token.FloatLiteral, token.StringLiteral, token.KwTrue, token.KwFalse, token.KwNull:
		base = p.parseLiteralPattern()
	case token.Ident:
		if p.peek(1).Kind == token.LBrace {
			base = p.parseClassPattern()
		} else {
			tok := p.advance()
			base = &ast.IdentifierPattern{Token: tok, Name: tok.Literal}
		}
	default:
		tok := p.advance()
		base = &ast.IdentifierPattern{Token: tok, Name: tok.Literal}
	}

	if p.accept(token.KwAs) {
		name := p.expect(token.Ident).Literal
		return &ast.AsPattern{Token: token.Token{Pos: base.Pos()}, Inner: base, Name: name}
	}
	return base
}

func (p *Parser) parseLiteralPattern() ast.Pattern {
	tok := p.cur()
	expr := p.parsePrimary()
	return &ast.LiteralPattern{Token: tok, Literal: expr}
}

func (p *Parser) parseRecordPattern() ast.Pattern {
	tok := p.expect(token.LBrace)
	rec := &ast.RecordPattern{Token: tok}
	for !p.at(token.RBrace) && !p.atEOF() {
		if p.accept(token.DotDotDot) {
			rec.Rest = p.expect(token.Ident).Literal
			break
		}
		field := ast.RecordPatternField{Key: p.expect(token.Ident).Literal}
		if p.accept(token.KwAs) {
			field.Rename = p.expect(token.Ident).Literal
		}
		if p.accept(token.Assign) {
			field.Default = p.parseExpression(precLowest)
		}
		rec.Fields = append(rec.Fields, field)
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return rec
}

func (p *Parser) parseClassPattern() ast.Pattern {
	tok := p.advance()
	cp := &ast.ClassPattern{Token: tok, ClassName: tok.Literal}
	p.expect(token.LBrace)
	for !p.at(token.RBrace) && !p.atEOF() {
		field := ast.RecordPatternField{Key: p.expect(token.Ident).Literal}
		if p.accept(token.KwAs) {
			field.Rename = p.expect(token.Ident).Literal
		}
		cp.Fields = append(cp.Fields, field)
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return cp
}

// parseTupleLikePattern distinguishes `(p, q)` tuple patterns from
// `(|p, q|)` unboxed-tuple patterns; a single-element parenthesized
// pattern is grouping, matching the ≥2-elements tuple rule for literals.
func (p *Parser) parseTupleLikePattern() ast.Pattern {
	tok := p.expect(token.LParen)
	if p.accept(token.Pipe) {
		ut := &ast.UnboxedTuplePattern{Token: tok}
		for !p.at(token.Pipe) && !p.atEOF() {
			ut.Elements = append(ut.Elements, p.parsePattern())
			if !p.accept(token.Comma) {
				break
			}
		}
		p.expect(token.Pipe)
		p.expect(token.RParen)
		return ut
	}

	var elems []ast.Pattern
	if !p.at(token.RParen) {
		elems = append(elems, p.parsePattern())
		for p.accept(token.Comma) {
			elems = append(elems, p.parsePattern())
		}
	}
	p.expect(token.RParen)
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.TuplePattern{Token: tok, Elements: elems}
}
