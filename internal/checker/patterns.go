package checker

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/token"
	"github.com/elematic/zena-sub003/internal/types"
)

// bindPattern introduces the names a `let`/`var` pattern declares into
// the current scope, given the already-resolved type of the value
// being destructured. mutable propagates from the declaration's
// let/var keyword to every name the pattern binds.
func (c *Checker) bindPattern(pattern ast.Pattern, t types.Type, mutable bool) {
	switch p := pattern.(type) {
	case *ast.IdentifierPattern:
		c.define(&Symbol{Name: p.Name, Kind: SymVar, Type: t, Mutable: mutable})
	case *ast.WildcardPattern:
		// binds nothing
	case *ast.RecordPattern:
		c.bindRecordPatternFields(p.Pos(), p.Fields, p.Rest, t, mutable)
	case *ast.TuplePattern:
		tup, ok := t.(*types.Tuple)
		if !ok {
			c.errorf(diagnostics.TypeMismatch, p.Pos(), "cannot destructure %s as a tuple", t.String())
			for _, el := range p.Elements {
				c.bindPattern(el, types.Any, mutable)
			}
			return
		}
		for i, el := range p.Elements {
			elType := types.Any
			if i < len(tup.Elements) {
				elType = tup.Elements[i]
			}
			c.bindPattern(el, elType, mutable)
		}
	case *ast.UnboxedTuplePattern:
		tup, ok := t.(*types.UnboxedTuple)
		if !ok {
			c.errorf(diagnostics.TypeMismatch, p.Pos(), "cannot destructure %s as an unboxed tuple", t.String())
			for _, el := range p.Elements {
				c.bindPattern(el, types.Any, mutable)
			}
			return
		}
		for i, el := range p.Elements {
			elType := types.Any
			if i < len(tup.Elements) {
				elType = tup.Elements[i]
			}
			c.bindPattern(el, elType, mutable)
		}
	case *ast.ClassPattern:
		cls := c.classPatternType(p)
		c.bindClassPatternFields(p.Pos(), p.Fields, cls, mutable)
	case *ast.AsPattern:
		c.bindPattern(p.Inner, t, mutable)
		c.define(&Symbol{Name: p.Name, Kind: SymVar, Type: t, Mutable: mutable})
	case *ast.LiteralPattern:
		// a literal pattern binds no names; only valid as a match arm.
	}
}

// checkPattern checks a match-arm pattern against the scrutinee's
// static type, binding any names it introduces into the arm's own
// scope (already pushed by checkMatch).
func (c *Checker) checkPattern(pattern ast.Pattern, scrutType types.Type) {
	switch p := pattern.(type) {
	case *ast.LiteralPattern:
		c.checkExpr(p.Literal)
	default:
		c.bindPattern(pattern, scrutType, false)
	}
}

func (c *Checker) classPatternType(p *ast.ClassPattern) *types.Class {
	if entry, ok := c.typeNames[p.ClassName]; ok && entry.class != nil {
		return entry.class
	}
	c.errorf(diagnostics.SymbolNotFound, p.Pos(), "undefined class %q", p.ClassName)
	return nil
}

func (c *Checker) bindClassPatternFields(pos token.Position, fields []ast.RecordPatternField, cls *types.Class, mutable bool) {
	for _, f := range fields {
		var ft types.Type = types.Any
		if cls != nil {
			if field, ok := cls.Field(f.Key); ok {
				ft = field.Type
			} else {
				c.errorf(diagnostics.PropertyNotFound, pos, "no field %q on class %q", f.Key, cls.Name)
			}
		}
		c.bindPatternField(f, ft, mutable)
	}
}

func (c *Checker) bindRecordPatternFields(pos token.Position, fields []ast.RecordPatternField, rest string, t types.Type, mutable bool) {
	rec, isRecord := t.(*types.Record)
	for _, f := range fields {
		var ft types.Type = types.Any
		var optional bool
		if isRecord {
			if field, ok := rec.Field(f.Key); ok {
				ft = field.Type
				optional = field.Optional
			} else {
				c.errorf(diagnostics.PropertyNotFound, pos, "no field %q on %s", f.Key, t.String())
			}
		}
		if optional && f.Default == nil {
			c.errorf(diagnostics.DestructureOptionalWithoutDefault, pos, "optional field %q must have a default when destructured", f.Key)
		}
		if f.Default != nil {
			c.checkExpr(f.Default)
		}
		c.bindPatternField(f, ft, mutable)
	}
	if rest != "" {
		c.define(&Symbol{Name: rest, Kind: SymVar, Type: t, Mutable: mutable})
	}
}

// bindPatternField binds the local name a single record/class pattern
// field introduces — its Sub pattern if present, otherwise its
// (possibly renamed) key as a plain identifier.
func (c *Checker) bindPatternField(f ast.RecordPatternField, ft types.Type, mutable bool) {
	if f.Sub != nil {
		c.bindPattern(f.Sub, ft, mutable)
		return
	}
	name := f.Rename
	if name == "" {
		name = f.Key
	}
	c.define(&Symbol{Name: name, Kind: SymVar, Type: ft, Mutable: mutable})
}
