package checker

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/types"
)

// checkExpr types an expression node, recording the result in the
// side-table (sidetables.go) and returning it so callers can use the
// type immediately without a second side-table lookup.
func (c *Checker) checkExpr(e ast.Expression) types.Type {
	switch ex := e.(type) {
	case *ast.Identifier:
		return c.checkIdentifier(ex)
	case *ast.Hole:
		return c.typeOf(ex, types.Any)
	case *ast.IntLiteral:
		return c.typeOf(ex, types.I32)
	case *ast.FloatLiteral:
		return c.typeOf(ex, types.F64)
	case *ast.StringLiteral:
		return c.typeOf(ex, preludeStringClass)
	case *ast.BoolLiteral:
		return c.typeOf(ex, types.Bool)
	case *ast.NullLiteral:
		return c.typeOf(ex, types.Null)
	case *ast.BinaryExpression:
		return c.checkBinary(ex)
	case *ast.UnaryExpression:
		return c.checkUnary(ex)
	case *ast.GroupedExpression:
		return c.typeOf(ex, c.checkExpr(ex.Inner))
	case *ast.CallExpression:
		return c.checkCall(ex)
	case *ast.NewExpression:
		return c.checkNew(ex)
	case *ast.MemberExpression:
		return c.checkMember(ex)
	case *ast.IndexExpression:
		return c.checkIndex(ex)
	case *ast.AssignExpression:
		return c.checkAssign(ex)
	case *ast.CastExpression:
		c.checkExpr(ex.Expr)
		return c.typeOf(ex, c.resolveType(ex.Type))
	case *ast.IsExpression:
		c.checkExpr(ex.Expr)
		c.resolveType(ex.Type)
		return c.typeOf(ex, types.Bool)
	case *ast.FunctionExpression:
		return c.checkFunctionLiteral(ex)
	case *ast.MatchExpression:
		return c.checkMatch(ex)
	case *ast.TemplateLiteral:
		return c.checkTemplate(ex)
	case *ast.RecordLiteral:
		return c.checkRecordLiteral(ex)
	case *ast.TupleLiteral:
		elems := make([]types.Type, 0, len(ex.Elements))
		for _, el := range ex.Elements {
			elems = append(elems, c.checkExpr(el))
		}
		return c.typeOf(ex, c.pool.InternTuple(elems))
	case *ast.UnboxedTupleLiteral:
		elems := make([]types.Type, 0, len(ex.Elements))
		for _, el := range ex.Elements {
			elems = append(elems, c.checkExpr(el))
		}
		return c.typeOf(ex, c.pool.InternUnboxedTuple(elems))
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(ex)
	}
	return types.Any
}

func (c *Checker) checkIdentifier(id *ast.Identifier) types.Type {
	if sym, owner, ok := c.scope.Lookup(id.Value); ok {
		if c.scope.CrossesFunctionBoundary(owner) {
			sym.Captured = true
		}
		c.bind(id, sym)
		return c.typeOf(id, sym.Type)
	}
	if t, ok := c.resolveName(id.Value); ok {
		return c.typeOf(id, t)
	}
	c.errorf(diagnostics.SymbolNotFound, id.Pos(), "undefined symbol %q", id.Value)
	return c.typeOf(id, types.Any)
}

// resolveName looks up a bare name outside of the lexical scope chain:
// module-level functions, nominal type declarations, and finally the
// implicit prelude — the fallback order an Identifier and a record
// literal's shorthand field both need.
func (c *Checker) resolveName(name string) (types.Type, bool) {
	if fn, ok := c.functions[name]; ok {
		return fn, true
	}
	if entry, ok := c.typeNames[name]; ok {
		switch {
		case entry.class != nil:
			return entry.class, true
		case entry.iface != nil:
			return entry.iface, true
		}
	}
	c.markPreludeUse(name)
	if t, ok := preludeTypes[name]; ok {
		return t, true
	}
	if fn, ok := preludeFunctions[name]; ok {
		return fn, true
	}
	return nil, false
}

func (c *Checker) checkBinary(e *ast.BinaryExpression) types.Type {
	lt := c.checkExpr(e.Left)
	rt := c.checkExpr(e.Right)
	switch e.Operator {
	case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
		return c.typeOf(e, types.Bool)
	}
	if types.IsNumeric(lt) && types.IsNumeric(rt) {
		if types.AssignableTo(rt, lt) {
			return c.typeOf(e, lt)
		}
		if types.AssignableTo(lt, rt) {
			return c.typeOf(e, rt)
		}
	}
	if !types.AssignableTo(rt, lt) && !types.AssignableTo(lt, rt) {
		c.errorf(diagnostics.TypeMismatch, e.Pos(), "operator %q not defined between %s and %s", e.Operator, lt.String(), rt.String())
	}
	return c.typeOf(e, lt)
}

func (c *Checker) checkUnary(e *ast.UnaryExpression) types.Type {
	t := c.checkExpr(e.Operand)
	if e.Operator == "!" {
		return c.typeOf(e, types.Bool)
	}
	return c.typeOf(e, t)
}

func (c *Checker) checkCall(e *ast.CallExpression) types.Type {
	calleeType := c.checkExpr(e.Callee)
	argTypes := make([]types.Type, 0, len(e.Args))
	for _, a := range e.Args {
		argTypes = append(argTypes, c.checkExpr(a))
	}
	fn, ok := calleeType.(*types.Function)
	if !ok {
		c.errorf(diagnostics.NotCallable, e.Pos(), "%s is not callable", calleeType.String())
		return c.typeOf(e, types.Any)
	}
	resolved := fn.ResolveOverload(argTypes, types.AssignableTo)
	if resolved == nil {
		c.errorf(diagnostics.ArgumentCountMismatch, e.Pos(), "no overload of %s matches %d argument(s)", e.Callee.String(), len(argTypes))
		return c.typeOf(e, fn.ReturnType)
	}
	return c.typeOf(e, resolved.ReturnType)
}

func (c *Checker) checkNew(e *ast.NewExpression) types.Type {
	t := c.resolveType(e.Class)
	cls, ok := t.(*types.Class)
	if !ok {
		c.errorf(diagnostics.TypeMismatch, e.Pos(), "%s is not a class", t.String())
		return c.typeOf(e, types.Any)
	}
	if cls.Abstract {
		c.errorf(diagnostics.CannotInstantiateAbstractClass, e.Pos(), "cannot instantiate abstract class %q", cls.Name)
	}
	ctor, hasCtor := cls.Method("#new")
	argTypes := make([]types.Type, 0, len(e.Args))
	for _, a := range e.Args {
		argTypes = append(argTypes, c.checkExpr(a))
	}
	if hasCtor {
		if resolved := ctor.Fn.ResolveOverload(argTypes, types.AssignableTo); resolved == nil {
			c.errorf(diagnostics.ArgumentCountMismatch, e.Pos(), "no constructor of %q matches %d argument(s)", cls.Name, len(argTypes))
		}
	} else if len(argTypes) != 0 {
		c.errorf(diagnostics.ArgumentCountMismatch, e.Pos(), "class %q has no constructor accepting arguments", cls.Name)
	}
	return c.typeOf(e, cls)
}

func (c *Checker) checkMember(e *ast.MemberExpression) types.Type {
	objType := c.checkExpr(e.Object)
	t := c.memberType(objType, e.Property, e)
	if e.Optional {
		if u, err := c.pool.InternUnion([]types.Type{t, types.Null}); err == nil {
			return c.typeOf(e, u)
		}
	}
	return c.typeOf(e, t)
}

func (c *Checker) memberType(objType types.Type, name string, at ast.Node) types.Type {
	switch o := objType.(type) {
	case *types.Class:
		if f, ok := o.Field(name); ok {
			return f.Type
		}
		if m, ok := o.Method(name); ok {
			return m.Fn
		}
	case *types.Interface:
		if m, ok := o.Method(name); ok {
			return m.Fn
		}
	case *types.Record:
		if f, ok := o.Field(name); ok {
			return f.Type
		}
	}
	c.errorf(diagnostics.PropertyNotFound, at.Pos(), "no property %q on %s", name, objType.String())
	return types.Any
}

func (c *Checker) checkIndex(e *ast.IndexExpression) types.Type {
	objType := c.checkExpr(e.Object)
	c.checkExpr(e.Index)
	switch o := objType.(type) {
	case *types.Array:
		return c.typeOf(e, o.Element)
	case *types.ByteArray:
		return c.typeOf(e, types.I32)
	}
	c.errorf(diagnostics.NotIndexable, e.Pos(), "%s is not indexable", objType.String())
	return c.typeOf(e, types.Any)
}

func (c *Checker) checkAssign(e *ast.AssignExpression) types.Type {
	targetType := c.checkExpr(e.Target)
	valueType := c.checkExpr(e.Value)
	if id, ok := e.Target.(*ast.Identifier); ok {
		if sym, owner, ok := c.scope.Lookup(id.Value); ok {
			if !sym.Mutable {
				c.errorf(diagnostics.TypeMismatch, e.Pos(), "cannot assign to immutable binding %q", id.Value)
			}
			sym.Assigned = true
			if c.scope.CrossesFunctionBoundary(owner) {
				sym.Captured = true
				sym.AssignedAcrossBoundary = true
			}
		}
	}
	if !types.AssignableTo(valueType, targetType) {
		c.errorf(diagnostics.TypeMismatch, e.Pos(), "cannot assign %s to %s", valueType.String(), targetType.String())
	}
	return c.typeOf(e, targetType)
}

// checkFunctionLiteral types a function/arrow expression: parameters
// are bound in a fresh function-boundary scope and the body (or
// expression body, for arrows) is checked against it. Captured/Boxed
// resolution for any outer local referenced from inside happens in
// the final module-wide sweep (capture.go), not here.
func (c *Checker) checkFunctionLiteral(fn *ast.FunctionExpression) types.Type {
	sig := c.functionSignature(fn)

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
		bodyType := c.checkExpr(fn.ExprBody)
		if fn.ReturnType == nil {
			sig.ReturnType = bodyType
		} else if !types.AssignableTo(bodyType, sig.ReturnType) {
			c.errorf(diagnostics.TypeMismatch, fn.ExprBody.Pos(), "arrow body type %s not assignable to declared return type %s", bodyType.String(), sig.ReturnType.String())
		}
	}
	c.popScope()
	c.currentFunctionReturn = outerReturn
	c.inLambda = outerLambda

	return c.typeOf(fn, sig)
}

func (c *Checker) checkMatch(e *ast.MatchExpression) types.Type {
	scrutType := c.checkExpr(e.Scrutinee)
	var armTypes []types.Type
	for i := range e.Arms {
		arm := &e.Arms[i]
		c.pushScope(false)
		c.checkPattern(arm.Pattern, scrutType)
		if arm.Guard != nil {
			c.checkExpr(arm.Guard)
		}
		armTypes = append(armTypes, c.checkExpr(arm.Body))
		c.popScope()
	}
	if len(armTypes) == 0 {
		return c.typeOf(e, types.Void)
	}
	result := armTypes[0]
	for _, t := range armTypes[1:] {
		if !types.AssignableTo(t, result) {
			if types.AssignableTo(result, t) {
				result = t
				continue
			}
			if u, err := c.pool.InternUnion([]types.Type{result, t}); err == nil {
				result = u
			}
		}
	}
	return c.typeOf(e, result)
}

func (c *Checker) checkTemplate(e *ast.TemplateLiteral) types.Type {
	for _, sub := range e.Subs {
		c.checkExpr(sub)
	}
	if e.Tag != nil {
		tagType := c.checkExpr(e.Tag)
		if fn, ok := tagType.(*types.Function); ok {
			return c.typeOf(e, fn.ReturnType)
		}
	}
	return c.typeOf(e, preludeStringClass)
}

func (c *Checker) checkRecordLiteral(e *ast.RecordLiteral) types.Type {
	var fields []types.RecordField
	for _, f := range e.Fields {
		switch {
		case f.Spread != nil:
			t := c.checkExpr(f.Spread)
			if rec, ok := t.(*types.Record); ok {
				fields = append(fields, rec.Fields()...)
			}
		case f.Computed != nil:
			c.checkExpr(f.Computed)
			if f.Value != nil {
				c.checkExpr(f.Value)
			}
		default:
			var t types.Type
			if f.Shorthand {
				if sym, _, ok := c.scope.Lookup(f.Key); ok {
					t = sym.Type
				} else if resolved, ok := c.resolveName(f.Key); ok {
					t = resolved
				} else {
					c.errorf(diagnostics.SymbolNotFound, e.Pos(), "undefined symbol %q", f.Key)
					t = types.Any
				}
			} else {
				t = c.checkExpr(f.Value)
			}
			fields = append(fields, types.RecordField{Name: f.Key, Type: t})
		}
	}
	return c.typeOf(e, c.pool.InternRecord(fields))
}

func (c *Checker) checkArrayLiteral(e *ast.ArrayLiteral) types.Type {
	var elem types.Type = types.Never
	for _, el := range e.Elements {
		t := c.checkExpr(el)
		if elem == types.Never {
			elem = t
		} else if !types.AssignableTo(t, elem) {
			if u, err := c.pool.InternUnion([]types.Type{elem, t}); err == nil {
				elem = u
			}
		}
	}
	if elem == types.Never {
		elem = types.Any
	}
	return c.typeOf(e, c.pool.InternArray(elem))
}
