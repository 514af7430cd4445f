package parser

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/token"
)

func (p *Parser) finishClassDecl(exported bool) *ast.ClassDeclaration {
	tok := p.cur()
	decl := &ast.ClassDeclaration{Token: tok}
	decl.SetExported(exported)

	for {
		switch p.cur().Kind {
		case token.KwFinal:
			decl.Final = true
			p.advance()
		case token.KwAbstract:
			decl.Abstract = true
			p.advance()
		case token.KwExtension:
			decl.IsExtension = true
			p.advance()
		default:
			goto afterModifiers
		}
	}
afterModifiers:
	p.expect(token.KwClass)
	decl.Name_ = p.expect(token.Ident).Literal
	decl.TypeParams = p.parseOptionalTypeParams()

	if p.accept(token.KwExtends) {
		decl.Super = p.parseTypeAnnotation()
	}
	if p.accept(token.KwImplements) {
		decl.Implements = append(decl.Implements, p.parseTypeAnnotation())
		for p.accept(token.Comma) {
			decl.Implements = append(decl.Implements, p.parseTypeAnnotation())
		}
	}
	if p.accept(token.KwWith) {
		decl.Mixins = append(decl.Mixins, p.parseTypeAnnotation())
		for p.accept(token.Comma) {
			decl.Mixins = append(decl.Mixins, p.parseTypeAnnotation())
		}
	}
	if p.accept(token.KwOn) {
		decl.OnType = p.parseTypeAnnotation()
	}

	p.expect(token.LBrace)
	for !p.at(token.RBrace) && !p.atEOF() {
		p.parseClassMember(decl)
	}
	p.expect(token.RBrace)
	return decl
}

// parseClassMember parses one field, accessor, or method into decl.
// Constructors are recognized by the private identifier `#new` (spec
// §4.5).
func (p *Parser) parseClassMember(decl *ast.ClassDeclaration) {
	static := false
	final := false
	private := false
	abstract := false

	for {
		switch p.cur().Kind {
		case token.KwStatic:
			static = true
			p.advance()
		case token.KwFinal:
			final = true
			p.advance()
		case token.KwAbstract:
			abstract = true
			p.advance()
		default:
			goto afterMods
		}
	}
afterMods:

	var operator string
	var name string
	if p.at(token.Hash) {
		p.advance()
		private = true
		if p.accept(token.KwNew) {
			name = "#new"
		} else {
			name = "#" + p.expect(token.Ident).Literal
		}
	} else if p.at(token.LBracket) {
		p.advance()
		if p.accept(token.RBracket) {
			operator = "[]"
			if p.accept(token.Assign) {
				operator = "[]="
			}
		}
	} else if p.isOperatorOverloadStart() {
		operator = p.advance().Literal
		name = "operator" + operator
	} else {
		name = p.expect(token.Ident).Literal
	}

	switch {
	case p.at(token.LParen):
		fn := &ast.FunctionExpression{Name: name}
		fn.Params = p.parseParamList()
		if p.accept(token.Colon) {
			fn.ReturnType = p.parseTypeAnnotation()
		}
		isConstructor := name == "#new"
		if abstract {
			p.accept(token.Semicolon)
		} else {
			fn.Body = p.parseBlock()
		}
		decl.Methods = append(decl.Methods, ast.MethodDeclaration{
			Name: name, Fn: fn, Static: static, Private: private,
			Abstract: abstract, Operator: operator, IsConstructor: isConstructor,
		})
	case p.at(token.Colon):
		p.advance()
		typ := p.parseTypeAnnotation()
		if p.accept(token.LBrace) {
			acc := ast.AccessorDeclaration{Name: name, Type: typ, Final: final, Static: static}
			for !p.at(token.RBrace) && !p.atEOF() {
				if p.accept(token.KwGet) {
					acc.Getter = p.parseBlock()
				} else if p.accept(token.KwSet) {
					p.expect(token.LParen)
					acc.SetParam = p.expect(token.Ident).Literal
					p.expect(token.RParen)
					acc.Setter = p.parseBlock()
				} else {
					p.recover()
				}
			}
			p.expect(token.RBrace)
			decl.Accessors = append(decl.Accessors, acc)
		} else {
			field := ast.FieldDeclaration{Name: name, Type: typ, Static: static, Private: private, Final: final}
			if p.accept(token.Assign) {
				field.Init = p.parseExpression(precLowest)
			}
			p.accept(token.Semicolon)
			decl.Fields = append(decl.Fields, field)
		}
	default:
		field := ast.FieldDeclaration{Name: name, Static: static, Private: private, Final: final}
		if p.accept(token.Assign) {
			field.Init = p.parseExpression(precLowest)
		}
		p.accept(token.Semicolon)
		decl.Fields = append(decl.Fields, field)
	}
}

func (p *Parser) isOperatorOverloadStart() bool {
	switch p.cur().Kind {
	case token.Eq, token.Plus, token.Minus, token.Star, token.Slash:
		return p.peek(1).Kind == token.LParen || p.cur().Kind == token.Eq
	}
	return false
}

func (p *Parser) finishInterfaceDecl(exported bool) *ast.InterfaceDeclaration {
	tok := p.advance() // 'interface'
	decl := &ast.InterfaceDeclaration{Token: tok, Name_: p.expect(token.Ident).Literal}
	decl.SetExported(exported)
	decl.TypeParams = p.parseOptionalTypeParams()

	if p.accept(token.KwExtends) {
		decl.Extends = append(decl.Extends, p.parseTypeAnnotation())
		for p.accept(token.Comma) {
			decl.Extends = append(decl.Extends, p.parseTypeAnnotation())
		}
	}

	p.expect(token.LBrace)
	for !p.at(token.RBrace) && !p.atEOF() {
		name := p.expect(token.Ident).Literal
		if p.at(token.LParen) {
			fn := &ast.FunctionExpression{Name: name}
			fn.Params = p.parseParamList()
			if p.accept(token.Colon) {
				fn.ReturnType = p.parseTypeAnnotation()
			}
			p.accept(token.Semicolon)
			decl.Methods = append(decl.Methods, ast.MethodDeclaration{Name: name, Fn: fn, Abstract: true})
		} else {
			p.expect(token.Colon)
			typ := p.parseTypeAnnotation()
			p.accept(token.Semicolon)
			decl.Fields = append(decl.Fields, ast.FieldDeclaration{Name: name, Type: typ})
		}
	}
	p.expect(token.RBrace)
	return decl
}

func (p *Parser) finishMixinDecl(exported bool) *ast.MixinDeclaration {
	tok := p.advance() // 'mixin'
	decl := &ast.MixinDeclaration{Token: tok, Name_: p.expect(token.Ident).Literal}
	decl.SetExported(exported)
	decl.TypeParams = p.parseOptionalTypeParams()

	if p.accept(token.KwOn) {
		decl.On = p.parseTypeAnnotation()
	}

	p.expect(token.LBrace)
	classDecl := &ast.ClassDeclaration{}
	for !p.at(token.RBrace) && !p.atEOF() {
		p.parseClassMember(classDecl)
	}
	p.expect(token.RBrace)
	decl.Fields = classDecl.Fields
	decl.Methods = classDecl.Methods
	return decl
}
