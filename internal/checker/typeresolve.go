package checker

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/types"
)

// resolveType turns a parsed TypeAnnotation into an interned types.Type,
// writing the result into the annotation's mutable InferredTypeSlot so
// a second visit (e.g. the bundler re-reading a field's annotation)
// does not need to re-resolve it.
func (c *Checker) resolveType(ann ast.TypeAnnotation) types.Type {
	if ann == nil {
		return types.Any
	}
	if slot := ann.InferredTypeSlot(); slot != nil {
		if cached, ok := (*slot).(types.Type); ok && cached != nil {
			return cached
		}
	}
	t := c.resolveTypeUncached(ann)
	*ann.InferredTypeSlot() = t
	return t
}

func (c *Checker) resolveTypeUncached(ann ast.TypeAnnotation) types.Type {
	switch t := ann.(type) {
	case *ast.NamedTypeAnnotation:
		return c.resolveNamedType(t)
	case *ast.UnionTypeAnnotation:
		alts := make([]types.Type, 0, len(t.Alternatives))
		for _, a := range t.Alternatives {
			alts = append(alts, c.resolveType(a))
		}
		u, err := c.pool.InternUnion(alts)
		if err != nil {
			c.errorf(diagnostics.TypeMismatch, ann.Pos(), "%s", err.Error())
			return types.Any
		}
		return u
	case *ast.RecordTypeAnnotation:
		fields := make([]types.RecordField, 0, len(t.Fields))
		for _, f := range t.Fields {
			fields = append(fields, types.RecordField{Name: f.Name, Type: c.resolveType(f.Type), Optional: f.Optional})
		}
		return c.pool.InternRecord(fields)
	case *ast.TupleTypeAnnotation:
		elems := make([]types.Type, 0, len(t.Elements))
		for _, e := range t.Elements {
			elems = append(elems, c.resolveType(e))
		}
		return c.pool.InternTuple(elems)
	case *ast.UnboxedTupleTypeAnnotation:
		elems := make([]types.Type, 0, len(t.Elements))
		for _, e := range t.Elements {
			elems = append(elems, c.resolveType(e))
		}
		return c.pool.InternUnboxedTuple(elems)
	case *ast.FunctionTypeAnnotation:
		params := make([]types.Type, 0, len(t.Params))
		for _, p := range t.Params {
			params = append(params, c.resolveType(p))
		}
		return c.pool.InternFunction(params, c.resolveType(t.ReturnType), false)
	case *ast.ArrayTypeAnnotation:
		return c.pool.InternArray(c.resolveType(t.Element))
	}
	return types.Any
}

func (c *Checker) resolveNamedType(t *ast.NamedTypeAnnotation) types.Type {
	if t.IsThis {
		if c.currentClass != nil {
			return c.currentClass
		}
		c.errorf(diagnostics.TypeMismatch, t.Pos(), "'this' type used outside a class body")
		return types.Any
	}
	if prim, ok := types.PrimitiveByName(t.Name); ok {
		return prim
	}
	switch t.Name {
	case "any":
		return types.Any
	case "never":
		return types.Never
	case "void":
		return types.Void
	case "ByteArray":
		return &types.ByteArray{}
	}

	entry, ok := c.typeNames[t.Name]
	if !ok {
		c.markPreludeUse(t.Name)
		if prelude, ok := preludeTypes[t.Name]; ok {
			return prelude
		}
		c.errorf(diagnostics.SymbolNotFound, t.Pos(), "unknown type %q", t.Name)
		return types.Any
	}

	switch {
	case entry.class != nil:
		return c.instantiateClass(entry.class, t)
	case entry.iface != nil:
		return c.instantiateInterface(entry.iface, t)
	case entry.mixin != nil:
		return entry.mixin
	default:
		return c.resolveTypeAlias(entry)
	}
}

// resolveTypeAlias lazily resolves a `type Name = ...;` declaration the
// first time it is referenced, memoizing the result so a type alias
// referenced from many sites is only resolved once and so a cyclic
// alias (`type A = A;`) terminates instead of looping forever.
func (c *Checker) resolveTypeAlias(entry *typeNameEntry) types.Type {
	if entry.aliasType != nil {
		return entry.aliasType
	}
	entry.aliasType = types.Any // break cycles conservatively
	entry.aliasType = c.resolveType(entry.aliasAST)
	return entry.aliasType
}

// instantiateClass re-interns a generic class declaration against the
// type arguments given at a use site. A non-generic class's annotation
// never carries type args and resolves to the declared object itself.
func (c *Checker) instantiateClass(base *types.Class, ann *ast.NamedTypeAnnotation) types.Type {
	if len(ann.TypeArgs) == 0 {
		return base
	}
	args := make([]types.Type, 0, len(ann.TypeArgs))
	for _, a := range ann.TypeArgs {
		args = append(args, c.resolveType(a))
	}
	if len(args) != len(base.TypeParams) {
		c.errorf(diagnostics.GenericTypeArgumentMismatch, ann.Pos(), "%s expects %d type argument(s), got %d", base.Name, len(base.TypeParams), len(args))
		return base
	}
	subst := make(types.Substitution, len(args))
	for i, tp := range base.TypeParams {
		subst[tp.Name] = args[i]
	}
	return types.Substitute(c.pool, base, subst)
}

func (c *Checker) instantiateInterface(base *types.Interface, ann *ast.NamedTypeAnnotation) types.Type {
	if len(ann.TypeArgs) == 0 {
		return base
	}
	args := make([]types.Type, 0, len(ann.TypeArgs))
	for _, a := range ann.TypeArgs {
		args = append(args, c.resolveType(a))
	}
	if len(args) != len(base.TypeParams) {
		c.errorf(diagnostics.GenericTypeArgumentMismatch, ann.Pos(), "%s expects %d type argument(s), got %d", base.Name, len(base.TypeParams), len(args))
		return base
	}
	subst := make(types.Substitution, len(args))
	for i, tp := range base.TypeParams {
		subst[tp.Name] = args[i]
	}
	return types.Substitute(c.pool, base, subst)
}
