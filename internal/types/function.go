package types

import "strings"

// Function is a callable signature. Overloads, when non-empty, holds
// the sibling overload list attached to the value-let symbol this type
// belongs to (spec §3 Symbol Info, §4.4 Overloading): declaring a second
// function under the same name appends here rather than erroring.
type Function struct {
	TypeParams []*TypeParameter
	Params     []Type
	Variadic   bool
	ReturnType Type
	Overloads  []*Function
}

func NewFunctionType(params []Type, ret Type) *Function {
	return &Function{Params: params, ReturnType: ret}
}

func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(f.ReturnType.String())
	return sb.String()
}

func (f *Function) TypeKind() string { return string(KindFunction) }

func (f *Function) Equals(o Type) bool {
	of, ok := o.(*Function)
	if !ok || len(of.Params) != len(f.Params) || f.Variadic != of.Variadic {
		return false
	}
	if !sameType(f.ReturnType, of.ReturnType) {
		return false
	}
	for i := range f.Params {
		if !sameType(f.Params[i], of.Params[i]) {
			return false
		}
	}
	return true
}

// IsProcedure reports whether the function returns Void.
func (f *Function) IsProcedure() bool { return sameType(f.ReturnType, Void) }

// IsFunction is the complement of IsProcedure.
func (f *Function) IsFunction() bool { return !f.IsProcedure() }

// AddOverload appends fn to f's overload list, matching spec §4.4's
// declaration-order-wins resolution rule.
func (f *Function) AddOverload(fn *Function) {
	f.Overloads = append(f.Overloads, fn)
}

// ResolveOverload returns the first overload (f itself counts as the
// first) whose parameter count and per-argument assignability succeed.
func (f *Function) ResolveOverload(argTypes []Type, assignable func(src, dst Type) bool) *Function {
	candidates := append([]*Function{f}, f.Overloads...)
	for _, c := range candidates {
		if candidateMatches(c, argTypes, assignable) {
			return c
		}
	}
	return nil
}

func candidateMatches(c *Function, argTypes []Type, assignable func(src, dst Type) bool) bool {
	minArgs := len(c.Params)
	for minArgs > 0 {
		// only exact or variadic arity is checked; a parameter with a
		// default value counts like any other, and no caller trims
		// Params to the call-site arity.
		break
	}
	if c.Variadic {
		if len(argTypes) < len(c.Params)-1 {
			return false
		}
	} else if len(argTypes) != minArgs {
		return false
	}
	for i, at := range argTypes {
		pi := i
		if c.Variadic && pi >= len(c.Params) {
			pi = len(c.Params) - 1
		}
		if pi >= len(c.Params) {
			return false
		}
		if !assignable(at, c.Params[pi]) {
			return false
		}
	}
	return true
}

// TypeParameter is a generic parameter: `T extends C = D`.
type TypeParameter struct {
	Name       string
	Constraint Type // nil when unconstrained
	Default    Type // nil when no default
}

func (p *TypeParameter) String() string   { return p.Name }
func (p *TypeParameter) TypeKind() string { return string(KindTypeParam) }
func (p *TypeParameter) Equals(o Type) bool {
	op, ok := o.(*TypeParameter)
	return ok && op == p // identity: each declared type parameter is distinct
}
