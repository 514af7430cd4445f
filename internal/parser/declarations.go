package parser

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/token"
)

// parseTopLevelStatement dispatches on the leading keyword/modifier
// sequence. Top-level declarations may carry `export` and class/
// function modifiers (spec §4.2).
func (p *Parser) parseTopLevelStatement() ast.Statement {
	decorators := p.parseDecorators()

	exported := p.accept(token.KwExport)

	switch p.cur().Kind {
	case token.KwLet, token.KwVar:
		return p.finishVarDecl(exported)
	case token.KwFunction:
		return p.finishFunctionDecl(exported, decorators)
	case token.KwDeclare:
		return p.finishDeclareFunction(exported, decorators)
	case token.KwClass, token.KwFinal, token.KwAbstract, token.KwExtension:
		return p.finishClassDecl(exported)
	case token.KwInterface:
		return p.finishInterfaceDecl(exported)
	case token.KwMixin:
		return p.finishMixinDecl(exported)
	case token.KwType:
		return p.finishTypeAlias(exported)
	case token.KwSymbol:
		return p.finishSymbolDecl(exported)
	case token.KwImport:
		return p.parseImportDeclaration()
	default:
		return p.parseStatement()
	}
}

// parseDecorators consumes zero or more `@name(args)` decorators
// preceding a declaration (spec §4.2).
func (p *Parser) parseDecorators() []ast.Decorator {
	var decs []ast.Decorator
	for p.at(token.At) {
		tok := p.advance()
		name := p.expect(token.Ident).Literal
		var args []string
		if p.accept(token.LParen) {
			for !p.at(token.RParen) && !p.atEOF() {
				s := p.expect(token.StringLiteral)
				args = append(args, s.Literal)
				if !p.accept(token.Comma) {
					break
				}
			}
			p.expect(token.RParen)
		}
		decs = append(decs, ast.Decorator{Token: tok, Name: name, Args: args})
	}
	return decs
}

func (p *Parser) finishVarDecl(exported bool) *ast.VarDeclaration {
	tok := p.advance()
	mutable := tok.Kind == token.KwVar

	decl := &ast.VarDeclaration{Token: tok, Mutable: mutable}
	decl.SetExported(exported)
	decl.Pattern = p.parsePattern()

	if p.accept(token.Colon) {
		decl.Type = p.parseTypeAnnotation()
	}
	if p.accept(token.Assign) {
		decl.Init = p.parseExpression(precLowest)
	}
	p.accept(token.Semicolon)
	return decl
}

func (p *Parser) finishFunctionDecl(exported bool, decorators []ast.Decorator) *ast.FunctionDeclaration {
	tok := p.advance() // 'function'
	name := p.expect(token.Ident).Literal
	fn := &ast.FunctionExpression{Token: tok, Name: name}
	fn.TypeParams = p.parseOptionalTypeParams()
	fn.Params = p.parseParamList()
	if p.accept(token.Colon) {
		fn.ReturnType = p.parseTypeAnnotation()
	}
	fn.Body = p.parseBlock()

	decl := &ast.FunctionDeclaration{Token: tok, Decorators: decorators, Fn: fn}
	decl.SetExported(exported)
	return decl
}

func (p *Parser) finishDeclareFunction(exported bool, decorators []ast.Decorator) *ast.DeclareFunctionDeclaration {
	tok := p.advance() // 'declare'
	p.expect(token.KwFunction)
	name := p.expect(token.Ident).Literal

	decl := &ast.DeclareFunctionDeclaration{Token: tok, Decorators: decorators, Name_: name}
	decl.SetExported(exported)
	decl.TypeParams = p.parseOptionalTypeParams()
	decl.Params = p.parseParamList()
	if p.accept(token.Colon) {
		decl.ReturnType = p.parseTypeAnnotation()
	}
	p.accept(token.Semicolon)
	return decl
}

func (p *Parser) finishTypeAlias(exported bool) *ast.TypeAliasDeclaration {
	tok := p.advance() // 'type'
	name := p.expect(token.Ident).Literal
	decl := &ast.TypeAliasDeclaration{Token: tok, Name_: name}
	decl.SetExported(exported)
	decl.TypeParams = p.parseOptionalTypeParams()
	p.expect(token.Assign)
	decl.Value = p.parseTypeAnnotation()
	p.accept(token.Semicolon)
	return decl
}

func (p *Parser) finishSymbolDecl(exported bool) *ast.SymbolDeclaration {
	tok := p.advance() // 'symbol'
	name := p.expect(token.Ident).Literal
	p.accept(token.Semicolon)
	decl := &ast.SymbolDeclaration{Token: tok, Name_: name}
	decl.SetExported(exported)
	return decl
}

func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	tok := p.advance() // 'import'
	decl := &ast.ImportDeclaration{Token: tok}

	if p.accept(token.LBrace) {
		for !p.at(token.RBrace) && !p.atEOF() {
			imported := p.expect(token.Ident).Literal
			local := imported
			if p.accept(token.KwAs) {
				local = p.expect(token.Ident).Literal
			}
			decl.Specifiers = append(decl.Specifiers, ast.ImportSpecifier{Imported: imported, Local: local})
			if !p.accept(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace)
	}
	p.expect(token.KwFrom)
	spec := p.expect(token.StringLiteral)
	decl.Specifier = spec.Literal
	p.accept(token.Semicolon)
	return decl
}

func (p *Parser) parseOptionalTypeParams() []ast.TypeParam {
	if !p.accept(token.Lt) {
		return nil
	}
	var params []ast.TypeParam
	for !p.at(token.Gt) && !p.atEOF() {
		tp := ast.TypeParam{Name: p.expect(token.Ident).Literal}
		if p.accept(token.KwExtends) {
			tp.Constraint = p.parseTypeAnnotation()
		}
		if p.accept(token.Assign) {
			tp.Default = p.parseTypeAnnotation()
		}
		params = append(params, tp)
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.Gt)
	return params
}

func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.LParen)
	var params []ast.Param
	for !p.at(token.RParen) && !p.atEOF() {
		var param ast.Param
		if p.accept(token.DotDotDot) {
			param.Variadic = true
		}
		param.Name = p.expect(token.Ident).Literal
		if p.accept(token.Colon) {
			param.Type = p.parseTypeAnnotation()
		}
		if p.accept(token.Assign) {
			param.Default = p.parseExpression(precLowest)
		}
		params = append(params, param)
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return params
}

func (p *Parser) assertErr(code diagnostics.Code, pos token.Position, msg string) {
	p.errorf(code, pos, "%s", msg)
}
