package parser

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIfStatement()
	case token.KwWhile:
		return p.parseWhileStatement()
	case token.KwFor:
		return p.parseForStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwBreak:
		tok := p.advance()
		p.accept(token.Semicolon)
		return &ast.BreakStatement{Token: tok}
	case token.KwContinue:
		tok := p.advance()
		p.accept(token.Semicolon)
		return &ast.ContinueStatement{Token: tok}
	case token.KwThrow:
		return p.parseThrowStatement()
	case token.KwTry:
		return p.parseTryStatement()
	case token.KwLet, token.KwVar:
		return p.finishVarDecl(false)
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	tok := p.expect(token.LBrace)
	block := &ast.BlockStatement{Token: tok}
	for !p.at(token.RBrace) && !p.atEOF() {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(token.RBrace)
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.advance()
	p.expect(token.LParen)
	cond := p.parseExpression(precLowest)
	p.expect(token.RParen)
	then := p.parseStatement()
	var els ast.Statement
	if p.accept(token.KwElse) {
		els = p.parseStatement()
	}
	return &ast.IfStatement{Token: tok, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.advance()
	p.expect(token.LParen)
	cond := p.parseExpression(precLowest)
	p.expect(token.RParen)
	body := p.parseStatement()
	return &ast.WhileStatement{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.advance()
	p.expect(token.LParen)

	var init ast.Statement
	if !p.at(token.Semicolon) {
		if p.at(token.KwLet) || p.at(token.KwVar) {
			init = p.finishVarDecl(false)
		} else {
			init = p.parseExpressionStatement()
		}
	} else {
		p.advance()
	}

	var cond ast.Expression
	if !p.at(token.Semicolon) {
		cond = p.parseExpression(precLowest)
	}
	p.expect(token.Semicolon)

	var update ast.Expression
	if !p.at(token.RParen) {
		update = p.parseExpression(precLowest)
	}
	p.expect(token.RParen)

	body := p.parseStatement()
	return &ast.ForStatement{Token: tok, Init: init, Cond: cond, Update: update, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.advance()
	var val ast.Expression
	if !p.at(token.Semicolon) && !p.at(token.RBrace) {
		val = p.parseExpression(precLowest)
	}
	p.accept(token.Semicolon)
	return &ast.ReturnStatement{Token: tok, Value: val}
}

func (p *Parser) parseThrowStatement() ast.Statement {
	tok := p.advance()
	val := p.parseExpression(precLowest)
	p.accept(token.Semicolon)
	return &ast.ThrowStatement{Token: tok, Value: val}
}

func (p *Parser) parseTryStatement() ast.Statement {
	tok := p.advance()
	block := p.parseBlock()
	stmt := &ast.TryStatement{Token: tok, Block: block}

	for p.accept(token.KwCatch) {
		var cc ast.CatchClause
		if p.accept(token.LParen) {
			cc.Name = p.expect(token.Ident).Literal
			if p.accept(token.Colon) {
				cc.Type = p.parseTypeAnnotation()
			}
			p.expect(token.RParen)
		}
		cc.Body = p.parseBlock()
		stmt.Catches = append(stmt.Catches, cc)
	}
	if p.accept(token.KwFinally) {
		stmt.Finally = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur()
	expr := p.parseExpression(precLowest)
	p.accept(token.Semicolon)
	return &ast.ExpressionStatement{Token: tok, Expr: expr}
}
