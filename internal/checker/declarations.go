package checker

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/types"
)

// predeclare is the checker's pre-declaration pass (spec §4.4): it walks
// the module's top-level statements once, registering a placeholder
// types.Class/Interface/Mixin/Symbol/Function for every name introduced
// so that later declarations (and the main pass) can refer to a name
// before its own declaration has been reached in source order.
func (c *Checker) predeclare(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		switch d := stmt.(type) {
		case *ast.ClassDeclaration:
			c.declareClassPlaceholder(d)
		case *ast.InterfaceDeclaration:
			c.declareInterfacePlaceholder(d)
		case *ast.MixinDeclaration:
			c.declareMixinPlaceholder(d)
		case *ast.TypeAliasDeclaration:
			if _, exists := c.typeNames[d.Name_]; exists {
				c.errorf(diagnostics.DuplicateDeclaration, d.Pos(), "duplicate type declaration %q", d.Name_)
				continue
			}
			c.typeNames[d.Name_] = &typeNameEntry{aliasAST: d.Value, decl: d}
		case *ast.SymbolDeclaration:
			sym := types.NewSymbol(d.Name_)
			c.define(&Symbol{Name: d.Name_, Kind: SymSymbolType, Type: sym})
		}
	}

	// Functions are pre-declared in a second pass so their parameter and
	// return type annotations can already see every class/interface/mixin
	// name, even one declared later in the file.
	for _, stmt := range prog.Statements {
		switch d := stmt.(type) {
		case *ast.FunctionDeclaration:
			c.predeclareFunction(d.Fn.Name, d.Fn)
		case *ast.DeclareFunctionDeclaration:
			c.predeclareDeclareFunction(d)
		}
	}
}

func (c *Checker) declareClassPlaceholder(d *ast.ClassDeclaration) {
	if _, exists := c.typeNames[d.Name_]; exists {
		c.errorf(diagnostics.DuplicateDeclaration, d.Pos(), "duplicate declaration %q", d.Name_)
		return
	}
	cls := types.NewClass(d.Name_)
	cls.Final = d.Final
	cls.Abstract = d.Abstract
	cls.IsExtension = d.IsExtension
	for _, tp := range d.TypeParams {
		cls.TypeParams = append(cls.TypeParams, &types.TypeParameter{Name: tp.Name})
	}
	c.typeNames[d.Name_] = &typeNameEntry{class: cls, decl: d}
	c.result.Classes[d.Name_] = cls
	c.define(&Symbol{Name: d.Name_, Kind: SymClass, Type: cls})
}

func (c *Checker) declareInterfacePlaceholder(d *ast.InterfaceDeclaration) {
	if _, exists := c.typeNames[d.Name_]; exists {
		c.errorf(diagnostics.DuplicateDeclaration, d.Pos(), "duplicate declaration %q", d.Name_)
		return
	}
	iface := types.NewInterface(d.Name_)
	for _, tp := range d.TypeParams {
		iface.TypeParams = append(iface.TypeParams, &types.TypeParameter{Name: tp.Name})
	}
	c.typeNames[d.Name_] = &typeNameEntry{iface: iface, decl: d}
	c.result.Interfaces[d.Name_] = iface
	c.define(&Symbol{Name: d.Name_, Kind: SymInterface, Type: iface})
}

func (c *Checker) declareMixinPlaceholder(d *ast.MixinDeclaration) {
	if _, exists := c.typeNames[d.Name_]; exists {
		c.errorf(diagnostics.DuplicateDeclaration, d.Pos(), "duplicate declaration %q", d.Name_)
		return
	}
	mixin := types.NewMixin(d.Name_)
	for _, tp := range d.TypeParams {
		mixin.TypeParams = append(mixin.TypeParams, &types.TypeParameter{Name: tp.Name})
	}
	c.typeNames[d.Name_] = &typeNameEntry{mixin: mixin, decl: d}
	c.result.Mixins[d.Name_] = mixin
	c.define(&Symbol{Name: d.Name_, Kind: SymMixin, Type: mixin})
}

// predeclareFunction registers a top-level named function's signature
// before any body (its own or anyone else's) is checked, so forward
// calls resolve. A second `function foo(...)` under the same name is an
// overload, not a redeclaration (spec §4.4 Overloading), and is
// appended via AddOverload rather than rejected as a duplicate.
func (c *Checker) predeclareFunction(name string, fn *ast.FunctionExpression) {
	sig := c.functionSignature(fn)
	if existing, ok := c.functions[name]; ok {
		existing.AddOverload(sig)
		return
	}
	c.functions[name] = sig
	c.define(&Symbol{Name: name, Kind: SymFunction, Type: sig})
}

func (c *Checker) predeclareDeclareFunction(d *ast.DeclareFunctionDeclaration) {
	hasExternal, hasIntrinsic := false, false
	for _, dec := range d.Decorators {
		switch dec.Name {
		case "external":
			hasExternal = true
		case "intrinsic":
			hasIntrinsic = true
		}
	}
	if hasExternal == hasIntrinsic {
		c.errorf(diagnostics.MissingExternalOrIntrinsic, d.Pos(), "declare function %q must have exactly one of @external or @intrinsic", d.Name_)
	}
	params := make([]types.Type, 0, len(d.Params))
	for _, p := range d.Params {
		params = append(params, c.resolveType(p.Type))
	}
	sig := types.NewFunctionType(params, c.resolveType(d.ReturnType))
	if len(d.Params) > 0 && d.Params[len(d.Params)-1].Variadic {
		sig.Variadic = true
	}
	if existing, ok := c.functions[d.Name_]; ok {
		existing.AddOverload(sig)
		return
	}
	c.functions[d.Name_] = sig
	c.define(&Symbol{Name: d.Name_, Kind: SymFunction, Type: sig})
}

// functionSignature resolves a FunctionExpression's parameter and
// return type annotations into a types.Function, without checking its
// body — used both to predeclare top-level functions and to type a
// function literal/arrow expression encountered mid-expression.
func (c *Checker) functionSignature(fn *ast.FunctionExpression) *types.Function {
	params := make([]types.Type, 0, len(fn.Params))
	for _, p := range fn.Params {
		if p.Type != nil {
			params = append(params, c.resolveType(p.Type))
		} else {
			params = append(params, types.Any)
		}
	}
	var ret types.Type = types.Any
	if fn.ReturnType != nil {
		ret = c.resolveType(fn.ReturnType)
	}
	sig := types.NewFunctionType(params, ret)
	if len(fn.Params) > 0 && fn.Params[len(fn.Params)-1].Variadic {
		sig.Variadic = true
	}
	return sig
}

// buildNominalTypes fills in the body (fields, methods, supertype,
// interfaces, mixins) of every class/interface/mixin placeholder
// registered by predeclare, now that every nominal name in the module
// resolves to a real (if still-empty) object.
func (c *Checker) buildNominalTypes() {
	for _, entry := range c.typeNames {
		switch {
		case entry.class != nil:
			c.buildClass(entry.class, entry.decl.(*ast.ClassDeclaration))
		case entry.iface != nil:
			c.buildInterface(entry.iface, entry.decl.(*ast.InterfaceDeclaration))
		case entry.mixin != nil:
			c.buildMixin(entry.mixin, entry.decl.(*ast.MixinDeclaration))
		}
	}
}

func (c *Checker) buildClass(cls *types.Class, d *ast.ClassDeclaration) {
	c.currentClass = cls
	defer func() { c.currentClass = nil }()

	if d.Super != nil {
		if super, ok := c.resolveType(d.Super).(*types.Class); ok {
			cls.Super = super
		}
	}
	for _, impl := range d.Implements {
		if iface, ok := c.resolveType(impl).(*types.Interface); ok {
			cls.Implements = append(cls.Implements, iface)
		}
	}
	var mixinTypes []*types.Mixin
	for _, m := range d.Mixins {
		if mx, ok := c.resolveType(m).(*types.Mixin); ok {
			mixinTypes = append(mixinTypes, mx)
			cls.MixinsApplied = append(cls.MixinsApplied, mx)
		}
	}
	if d.IsExtension && d.OnType != nil {
		cls.OnType = c.resolveType(d.OnType)
	}

	// Mixin fields/methods apply in declaration order, and a class's own
	// members may override them (spec glossary "mixin"); applying mixins
	// before the class's own fields and methods below gives the class the final say.
	for _, mx := range mixinTypes {
		for _, f := range mx.Fields() {
			cls.AddField(f)
		}
		for _, m := range mx.Methods() {
			cls.AddMethod(m)
		}
	}
	for _, f := range d.Fields {
		if d.IsExtension {
			c.errorf(diagnostics.ExtensionClassField, f.Type.Pos(), "extension class %q cannot declare instance field %q", cls.Name, f.Name)
			continue
		}
		cls.AddField(&types.FieldInfo{Name: f.Name, Type: c.resolveType(f.Type), Static: f.Static, Private: f.Private, Final: f.Final})
	}

	sawConstructor := false
	hasAbstractMethod := false
	for _, m := range d.Methods {
		info := c.buildMethodInfo(cls, m)
		if m.IsConstructor {
			sawConstructor = true
		}
		if m.Abstract {
			hasAbstractMethod = true
		}
		cls.AddMethod(info)
	}
	for _, a := range d.Accessors {
		c.buildAccessor(cls, a)
	}
	_ = sawConstructor

	if !d.Abstract && classHasUnimplementedAbstract(cls) {
		c.errorf(diagnostics.AbstractMethodNotImplemented, d.Pos(), "class %q must implement all inherited abstract methods or be declared abstract", cls.Name)
	}
	_ = hasAbstractMethod
}

// classHasUnimplementedAbstract reports whether cls (including
// inherited members) still has an abstract method with no concrete
// override anywhere in the chain.
func classHasUnimplementedAbstract(cls *types.Class) bool {
	for cur := cls; cur != nil; cur = cur.Super {
		for _, m := range cur.Methods() {
			if !m.Abstract {
				continue
			}
			if override, ok := cls.Method(m.Name); ok && !override.Abstract {
				continue
			}
			return true
		}
	}
	return false
}

func (c *Checker) buildMethodInfo(owner *types.Class, m ast.MethodDeclaration) *types.MethodInfo {
	params := make([]types.Type, 0, len(m.Fn.Params))
	for _, p := range m.Fn.Params {
		params = append(params, c.resolveType(p.Type))
	}
	ret := c.resolveType(m.Fn.ReturnType)
	fn := types.NewFunctionType(params, ret)
	if len(m.Fn.Params) > 0 && m.Fn.Params[len(m.Fn.Params)-1].Variadic {
		fn.Variadic = true
	}
	return &types.MethodInfo{Name: m.Name, Fn: fn, Static: m.Static, Private: m.Private, Abstract: m.Abstract}
}

func (c *Checker) buildAccessor(owner *types.Class, a ast.AccessorDeclaration) {
	t := c.resolveType(a.Type)
	owner.AddField(&types.FieldInfo{Name: a.Name, Type: t, Static: a.Static, Final: a.Final})
}

func (c *Checker) buildInterface(iface *types.Interface, d *ast.InterfaceDeclaration) {
	for _, e := range d.Extends {
		if super, ok := c.resolveType(e).(*types.Interface); ok {
			iface.Extends = append(iface.Extends, super)
		}
	}
	for _, f := range d.Fields {
		iface.AddField(&types.FieldInfo{Name: f.Name, Type: c.resolveType(f.Type)})
	}
	for _, m := range d.Methods {
		params := make([]types.Type, 0, len(m.Fn.Params))
		for _, p := range m.Fn.Params {
			params = append(params, c.resolveType(p.Type))
		}
		fn := types.NewFunctionType(params, c.resolveType(m.Fn.ReturnType))
		iface.AddMethod(&types.MethodInfo{Name: m.Name, Fn: fn})
	}
}

func (c *Checker) buildMixin(mixin *types.Mixin, d *ast.MixinDeclaration) {
	if d.On != nil {
		mixin.On = c.resolveType(d.On)
	}
	for _, f := range d.Fields {
		mixin.AddField(&types.FieldInfo{Name: f.Name, Type: c.resolveType(f.Type), Static: f.Static, Private: f.Private, Final: f.Final})
	}
	for _, m := range d.Methods {
		if m.IsConstructor {
			c.errorf(diagnostics.ConstructorInMixin, m.Fn.Pos(), "mixin %q cannot declare a constructor", mixin.Name)
			continue
		}
		params := make([]types.Type, 0, len(m.Fn.Params))
		for _, p := range m.Fn.Params {
			params = append(params, c.resolveType(p.Type))
		}
		fn := types.NewFunctionType(params, c.resolveType(m.Fn.ReturnType))
		mixin.AddMethod(&types.MethodInfo{Name: m.Name, Fn: fn, Static: m.Static, Private: m.Private, Abstract: m.Abstract})
	}
}
