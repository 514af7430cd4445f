package checker

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/types"
)

// checkStatement checks one statement, top-level or nested. Top-level
// class/interface/mixin/type-alias declarations were already built by
// buildNominalTypes during the pre-declaration phase, so their case
// here does nothing: method bodies, field initializers and accessor
// bodies are not checked.
func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		c.pushScope(false)
		c.checkBody(s.Statements)
		c.popScope()
	case *ast.ExpressionStatement:
		c.checkExpr(s.Expr)
	case *ast.IfStatement:
		c.checkExpr(s.Cond)
		c.checkStatement(s.Then)
		if s.Else != nil {
			c.checkStatement(s.Else)
		}
	case *ast.WhileStatement:
		c.checkExpr(s.Cond)
		c.loopDepth++
		c.checkStatement(s.Body)
		c.loopDepth--
	case *ast.ForStatement:
		c.pushScope(false)
		if s.Init != nil {
			c.checkStatement(s.Init)
		}
		if s.Cond != nil {
			c.checkExpr(s.Cond)
		}
		if s.Update != nil {
			c.checkExpr(s.Update)
		}
		c.loopDepth++
		c.checkStatement(s.Body)
		c.loopDepth--
		c.popScope()
	case *ast.ReturnStatement:
		c.checkReturn(s)
	case *ast.BreakStatement:
		if c.loopDepth == 0 {
			c.errorf(diagnostics.BreakOutsideLoop, s.Pos(), "break outside of a loop")
		}
	case *ast.ContinueStatement:
		if c.loopDepth == 0 {
			c.errorf(diagnostics.ContinueOutsideLoop, s.Pos(), "continue outside of a loop")
		}
	case *ast.ThrowStatement:
		c.checkExpr(s.Value)
	case *ast.TryStatement:
		c.checkTry(s)
	case *ast.VarDeclaration:
		c.checkVarDecl(s)
	case *ast.FunctionDeclaration:
		c.checkNestedFunction(s)
	case *ast.DeclareFunctionDeclaration:
		// signature already registered by predeclare; nothing with a
		// body to check.
	case *ast.ClassDeclaration, *ast.InterfaceDeclaration, *ast.MixinDeclaration, *ast.TypeAliasDeclaration, *ast.SymbolDeclaration:
		// built during the pre-declaration / nominal-type passes.
	case *ast.ImportDeclaration:
		c.checkImport(s)
	}
}

func (c *Checker) checkReturn(s *ast.ReturnStatement) {
	if c.currentFunctionReturn == nil {
		c.errorf(diagnostics.ReturnOutsideFunction, s.Pos(), "return outside of a function")
		if s.Value != nil {
			c.checkExpr(s.Value)
		}
		return
	}
	if s.Value == nil {
		if !types.AssignableTo(types.Void, c.currentFunctionReturn) {
			c.errorf(diagnostics.TypeMismatch, s.Pos(), "missing return value, expected %s", c.currentFunctionReturn.String())
		}
		return
	}
	vt := c.checkExpr(s.Value)
	if !types.AssignableTo(vt, c.currentFunctionReturn) {
		c.errorf(diagnostics.TypeMismatch, s.Pos(), "cannot return %s as %s", vt.String(), c.currentFunctionReturn.String())
	}
}

func (c *Checker) checkTry(s *ast.TryStatement) {
	c.checkStatement(s.Block)
	for _, cl := range s.Catches {
		c.pushScope(false)
		var t types.Type = preludeExceptionClass
		if cl.Type != nil {
			t = c.resolveType(cl.Type)
		}
		if cl.Name != "" {
			c.define(&Symbol{Name: cl.Name, Kind: SymVar, Type: t, Mutable: false})
		}
		c.checkBody(cl.Body.Statements)
		c.popScope()
	}
	if s.Finally != nil {
		c.checkStatement(s.Finally)
	}
}

// checkVarDecl checks a `let`/`var` declaration: the initializer (if
// any) is checked first so a bare `let x = expr;` can infer x's type
// from it, then the pattern is bound against the resulting type.
func (c *Checker) checkVarDecl(s *ast.VarDeclaration) {
	var declared types.Type
	if s.Type != nil {
		declared = c.resolveType(s.Type)
	}
	var initType types.Type
	if s.Init != nil {
		initType = c.checkExpr(s.Init)
	}

	t := declared
	if t == nil {
		t = initType
	}
	if t == nil {
		t = types.Any
	}
	if declared != nil && initType != nil && !types.AssignableTo(initType, declared) {
		c.errorf(diagnostics.TypeMismatch, s.Pos(), "cannot initialize %s with %s", declared.String(), initType.String())
	}

	if _, ok := s.Pattern.(*ast.IdentifierPattern); !ok {
		if c.scope == c.globalScope {
			c.errorf(diagnostics.TopLevelDestructuringUnsupported, s.Pos(), "destructuring is not supported in top-level declarations")
		}
	}
	c.bindPattern(s.Pattern, t, s.Mutable)
}

// checkNestedFunction checks the body of a named function declaration.
// A top-level one was already registered, overloads included, by
// predeclare (declarations.go); for a function declared inside a block
// it defines the function's own name in the enclosing scope before
// checking its body so the function can call itself recursively.
func (c *Checker) checkNestedFunction(d *ast.FunctionDeclaration) {
	sig := c.functionSignature(d.Fn)
	if c.scope != c.globalScope {
		c.define(&Symbol{Name: d.Fn.Name, Kind: SymFunction, Type: sig})
	}
	c.checkFunctionBody(d.Fn, sig)
}

// checkFunctionBody is the body-checking half of checkFunctionLiteral,
// factored out so a nested named FunctionDeclaration and an anonymous
// FunctionExpression share the same parameter-binding logic.
func (c *Checker) checkFunctionBody(fn *ast.FunctionExpression, sig *types.Function) {
	outerReturn := c.currentFunctionReturn
	outerLambda := c.inLambda
	c.currentFunctionReturn = sig.ReturnType
	c.inLambda = true
	c.pushScope(true)
	for i, p := range fn.Params {
		c.define(&Symbol{Name: p.Name, Kind: SymParam, Type: sig.Params[i], Mutable: true})
	}
	if fn.Body != nil {
		c.checkBody(fn.Body.Statements)
	} else if fn.ExprBody != nil {
		c.checkExpr(fn.ExprBody)
	}
	c.popScope()
	c.currentFunctionReturn = outerReturn
	c.inLambda = outerLambda
}

// checkImport resolves a module-level import against the already
// checked Result of its target module (Check's `imported` parameter)
// and binds each imported name into this module's global scope —
// both as an ordinary value binding and, if the export was a nominal
// type, into typeNames so `ImportedClass` can be used as a type
// annotation too.
func (c *Checker) checkImport(d *ast.ImportDeclaration) {
	resolved, ok := c.importEdges[d]
	if !ok {
		return // unresolved specifier: the loader already reported ModuleNotFound
	}
	target, ok := c.imported[resolved]
	if !ok {
		// Either still being checked (import cycle) or not yet reached
		// in dependency order; degrade to Any rather than blocking.
		for _, spec := range d.Specifiers {
			local := spec.Local
			if local == "" {
				local = spec.Imported
			}
			c.define(&Symbol{Name: local, Kind: SymVar, Type: types.Any})
		}
		return
	}
	for _, spec := range d.Specifiers {
		local := spec.Local
		if local == "" {
			local = spec.Imported
		}
		t, ok := target.Exports[spec.Imported]
		if !ok {
			c.errorf(diagnostics.SymbolNotFound, d.Pos(), "module %q has no exported member %q", d.Specifier, spec.Imported)
			t = types.Any
		}
		c.define(&Symbol{Name: local, Kind: SymVar, Type: t})
		switch tt := t.(type) {
		case *types.Class:
			c.typeNames[local] = &typeNameEntry{class: tt}
		case *types.Interface:
			c.typeNames[local] = &typeNameEntry{iface: tt}
		case *types.Mixin:
			c.typeNames[local] = &typeNameEntry{mixin: tt}
		}
	}
}
