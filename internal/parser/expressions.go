package parser

import (
	"strconv"

	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/token"
)

// parseExpression implements precedence-climbing in the teacher's
// shape (internal/parser/expressions.go:parseExpression): a prefix
// parse followed by a loop that consumes infix operators whose
// precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		nextPrec, ok := binaryPrecedence[p.cur().Kind]
		if !ok || precedence >= nextPrec {
			break
		}
		left = p.parseInfix(left)
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur().Kind {
	case token.Minus, token.Bang, token.Tilde, token.Plus:
		tok := p.advance()
		operand := p.parseExpression(precUnary)
		return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Operand: operand}
	case token.KwNew:
		return p.parseNewExpression()
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	switch p.cur().Kind {
	case token.LParen:
		return p.parseCallExpression(left)
	case token.Dot:
		return p.parseMemberExpression(left)
	case token.LBracket:
		return p.parseIndexExpression(left)
	case token.Assign:
		tok := p.advance()
		value := p.parseExpression(precAssign - 1)
		return &ast.AssignExpression{Token: tok, Target: left, Operator: "=", Value: value}
	case token.KwAs:
		tok := p.advance()
		typ := p.parseTypeAnnotation()
		return &ast.CastExpression{Token: tok, Expr: left, Type: typ}
	case token.KwIs:
		tok := p.advance()
		typ := p.parseTypeAnnotation()
		return &ast.IsExpression{Token: tok, Expr: left, Type: typ}
	case token.TemplateHead, token.TemplateNoSubstitution:
		return p.parseTemplateLiteral(left)
	default:
		tok := p.advance()
		prec := binaryPrecedence[tok.Kind]
		right := p.parseExpression(prec)
		return &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur().Kind {
	case token.IntLiteral:
		return p.parseIntLiteral()
	case token.FloatLiteral:
		return p.parseFloatLiteral()
	case token.StringLiteral:
		tok := p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return &ast.BoolLiteral{Token: tok, Value: tok.Kind == token.KwTrue}
	case token.KwNull:
		tok := p.advance()
		return &ast.NullLiteral{Token: tok}
	case token.KwHole:
		tok := p.advance()
		return &ast.Hole{Token: tok}
	case token.Ident:
		return p.parseIdentOrArrow()
	case token.LParen:
		return p.parseParenOrArrowOrTuple()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseRecordLiteral()
	case token.TemplateNoSubstitution, token.TemplateHead:
		return p.parseTemplateLiteral(nil)
	case token.KwMatch:
		return p.parseMatchExpression()
	default:
		tok := p.advance()
		p.errorf(diagnostics.UnexpectedToken, tok.Pos, "unexpected token %s", tok.Kind)
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.advance()
	var v int64
	if len(tok.Literal) > 1 && tok.Literal[1] == 'x' || (len(tok.Literal) > 1 && tok.Literal[1] == 'X') {
		parsed, _ := strconv.ParseInt(tok.Literal[2:], 16, 64)
		v = parsed
	} else {
		parsed, _ := strconv.ParseInt(tok.Literal, 10, 64)
		v = parsed
	}
	return &ast.IntLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.advance()
	v, _ := strconv.ParseFloat(tok.Literal, 64)
	return &ast.FloatLiteral{Token: tok, Value: v}
}

// parseIdentOrArrow disambiguates `name` from `name => expr` (a single
// bare-parameter arrow function).
func (p *Parser) parseIdentOrArrow() ast.Expression {
	tok := p.advance()
	if p.at(token.Arrow) {
		arrowTok := p.advance()
		fn := &ast.FunctionExpression{Token: arrowTok, IsArrow: true, Params: []ast.Param{{Name: tok.Literal}}}
		p.finishArrowBody(fn)
		return fn
	}
	return &ast.Identifier{Token: tok, Value: tok.Literal}
}

// parseParenOrArrowOrTuple disambiguates `(x)` grouping, `(a, b) => …`
// arrow functions, and `(a, b)` tuple literals. `(|a, b|)` is an
// unboxed-tuple literal. A single parenthesized expression always
// denotes grouping, never a one-element unboxed tuple (spec §4.2).
func (p *Parser) parseParenOrArrowOrTuple() ast.Expression {
	tok := p.cur()
	if p.looksLikeArrowParams() {
		return p.parseArrowFunction()
	}

	p.expect(token.LParen)
	if p.accept(token.Pipe) {
		ut := &ast.UnboxedTupleLiteral{Token: tok}
		for !p.at(token.Pipe) && !p.atEOF() {
			ut.Elements = append(ut.Elements, p.parseExpression(precLowest))
			if !p.accept(token.Comma) {
				break
			}
		}
		p.expect(token.Pipe)
		p.expect(token.RParen)
		return ut
	}

	if p.accept(token.RParen) {
		return &ast.TupleLiteral{Token: tok}
	}

	first := p.parseExpression(precLowest)
	if p.at(token.Comma) {
		elems := []ast.Expression{first}
		for p.accept(token.Comma) {
			elems = append(elems, p.parseExpression(precLowest))
		}
		p.expect(token.RParen)
		return &ast.TupleLiteral{Token: tok, Elements: elems}
	}
	p.expect(token.RParen)
	return &ast.GroupedExpression{Token: tok, Inner: first}
}

// looksLikeArrowParams performs bounded lookahead to tell `(params) =>`
// apart from a parenthesized expression/tuple, mirroring the teacher's
// backtracking-based disambiguation (internal/parser/backtracking_test.go).
func (p *Parser) looksLikeArrowParams() bool {
	depth := 0
	i := 0
	for {
		t := p.peek(i)
		switch t.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peek(i + 1).Kind == token.Arrow
			}
		case token.EOF:
			return false
		}
		i++
		if i > 256 {
			return false
		}
	}
}

func (p *Parser) parseArrowFunction() ast.Expression {
	tok := p.cur()
	params := p.parseParamList()
	p.expect(token.Arrow)
	fn := &ast.FunctionExpression{Token: tok, IsArrow: true, Params: params}
	p.finishArrowBody(fn)
	return fn
}

func (p *Parser) finishArrowBody(fn *ast.FunctionExpression) {
	if p.at(token.LBrace) {
		fn.Body = p.parseBlock()
	} else {
		fn.ExprBody = p.parseExpression(precAssign)
	}
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.advance()
	typ := p.parseTypeAnnotation()
	n := &ast.NewExpression{Token: tok, Class: typ}
	if p.accept(token.LParen) {
		for !p.at(token.RParen) && !p.atEOF() {
			n.Args = append(n.Args, p.parseExpression(precLowest))
			if !p.accept(token.Comma) {
				break
			}
		}
		p.expect(token.RParen)
	}
	return n
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.expect(token.LParen)
	call := &ast.CallExpression{Token: tok, Callee: callee}
	for !p.at(token.RParen) && !p.atEOF() {
		call.Args = append(call.Args, p.parseExpression(precLowest))
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return call
}

func (p *Parser) parseMemberExpression(obj ast.Expression) ast.Expression {
	tok := p.expect(token.Dot)
	if p.at(token.Hash) {
		p.advance()
		name := p.expect(token.Ident).Literal
		return &ast.MemberExpression{Token: tok, Object: obj, Property: "#" + name}
	}
	name := p.expect(token.Ident).Literal
	return &ast.MemberExpression{Token: tok, Object: obj, Property: name}
}

func (p *Parser) parseIndexExpression(obj ast.Expression) ast.Expression {
	tok := p.expect(token.LBracket)
	idx := p.parseExpression(precLowest)
	p.expect(token.RBracket)
	return &ast.IndexExpression{Token: tok, Object: obj, Index: idx}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.expect(token.LBracket)
	arr := &ast.ArrayLiteral{Token: tok}
	for !p.at(token.RBracket) && !p.atEOF() {
		arr.Elements = append(arr.Elements, p.parseExpression(precLowest))
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket)
	return arr
}

// parseRecordLiteral parses `{ x, y: 1, ...rest, [k]: v }` — shorthand,
// spread, and computed keys (spec §4.2).
func (p *Parser) parseRecordLiteral() ast.Expression {
	tok := p.expect(token.LBrace)
	rec := &ast.RecordLiteral{Token: tok}
	for !p.at(token.RBrace) && !p.atEOF() {
		if p.accept(token.DotDotDot) {
			spread := p.parseExpression(precLowest)
			rec.Fields = append(rec.Fields, ast.RecordField{Spread: spread})
		} else if p.accept(token.LBracket) {
			key := p.parseExpression(precLowest)
			p.expect(token.RBracket)
			p.expect(token.Colon)
			val := p.parseExpression(precLowest)
			rec.Fields = append(rec.Fields, ast.RecordField{Computed: key, Value: val})
		} else {
			name := p.expect(token.Ident).Literal
			if p.accept(token.Colon) {
				val := p.parseExpression(precLowest)
				rec.Fields = append(rec.Fields, ast.RecordField{Key: name, Value: val})
			} else {
				rec.Fields = append(rec.Fields, ast.RecordField{
					Key: name, Shorthand: true,
					Value: &ast.Identifier{Token: tok, Value: name},
				})
			}
		}
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return rec
}

func (p *Parser) parseMatchExpression() ast.Expression {
	tok := p.advance()
	p.expect(token.LParen)
	scrutinee := p.parseExpression(precLowest)
	p.expect(token.RParen)
	p.expect(token.LBrace)

	m := &ast.MatchExpression{Token: tok, Scrutinee: scrutinee}
	for !p.at(token.RBrace) && !p.atEOF() {
		p.expect(token.KwCase)
		pattern := p.parsePattern()
		var guard ast.Expression
		if p.accept(token.KwIf) {
			guard = p.parseExpression(precLowest)
		}
		p.expect(token.Arrow)
		body := p.parseExpression(precLowest)
		m.Arms = append(m.Arms, ast.MatchArm{Pattern: pattern, Guard: guard, Body: body})
		p.accept(token.Comma)
		p.accept(token.Semicolon)
	}
	p.expect(token.RBrace)
	return m
}

// parseTemplateLiteral parses a backtick template, re-entering normal
// expression parsing inside each `${…}` until balance returns to zero
// (spec §4.2). tag is non-nil for a tagged-template call `tag\`…\``.
func (p *Parser) parseTemplateLiteral(tag ast.Expression) ast.Expression {
	tok := p.cur()
	lit := &ast.TemplateLiteral{Token: tok, Tag: tag}

	head := p.advance()
	lit.Quasis = append(lit.Quasis, ast.TemplatePart{Cooked: head.Literal, Raw: head.Raw})
	if head.Kind == token.TemplateNoSubstitution {
		return lit
	}

	for {
		sub := p.parseExpression(precLowest)
		lit.Subs = append(lit.Subs, sub)

		closeBrace := p.expect(token.RBrace)
		part := p.continueTemplate(closeBrace.Pos)
		lit.Quasis = append(lit.Quasis, ast.TemplatePart{Cooked: part.Literal, Raw: part.Raw})
		if part.Kind == token.TemplateTail {
			break
		}
	}
	return lit
}
