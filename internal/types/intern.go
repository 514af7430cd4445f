package types

import "sync"

// Pool is the per-Compiler intern pool: "one object per structurally
// identical type" (spec §3). Scoping the pool to a Compiler instance
// rather than a package-level singleton follows spec §9's "global
// singletons" redesign note — a new Compiler means a new Pool.
//
// Only the structurally-compared shapes need interning: Class,
// Interface, Array, Record, Tuple, UnboxedTuple, Union, and Function
// (spec §3 "Type interning"). Primitives, TypeParameter, and Symbol are
// already unique by construction (primitives are singletons; the other
// two are identity types by design) and are not run through the pool.
type Pool struct {
	mu       sync.Mutex
	arrays   []*Array
	records  []*Record
	tuples   []*Tuple
	unboxed  []*UnboxedTuple
	unions   []*Union
	funcs    []*Function
	classes  []*Class
	ifaces   []*Interface
}

func NewPool() *Pool {
	return &Pool{}
}

// InternArray returns the canonical Array for the given element type.
func (p *Pool) InternArray(elem Type) *Array {
	p.mu.Lock()
	defer p.mu.Unlock()
	candidate := &Array{Element: elem}
	for _, a := range p.arrays {
		if a.Equals(candidate) {
			return a
		}
	}
	p.arrays = append(p.arrays, candidate)
	return candidate
}

// InternRecord returns the canonical Record for the given field set.
// Field declaration order does not affect which object is returned.
func (p *Pool) InternRecord(fields []RecordField) *Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	candidate := NewRecord(fields)
	for _, r := range p.records {
		if r.Equals(candidate) {
			return r
		}
	}
	p.records = append(p.records, candidate)
	return candidate
}

// InternTuple returns the canonical Tuple for the given element types.
func (p *Pool) InternTuple(elements []Type) *Tuple {
	p.mu.Lock()
	defer p.mu.Unlock()
	candidate := &Tuple{Elements: elements}
	for _, t := range p.tuples {
		if t.Equals(candidate) {
			return t
		}
	}
	p.tuples = append(p.tuples, candidate)
	return candidate
}

// InternUnboxedTuple returns the canonical UnboxedTuple for elements.
func (p *Pool) InternUnboxedTuple(elements []Type) *UnboxedTuple {
	p.mu.Lock()
	defer p.mu.Unlock()
	candidate := &UnboxedTuple{Elements: elements}
	for _, t := range p.unboxed {
		if t.Equals(candidate) {
			return t
		}
	}
	p.unboxed = append(p.unboxed, candidate)
	return candidate
}

// InternUnion validates and returns the canonical Union for the given
// alternatives, or the ErrPrimitiveInUnion the validation raised.
func (p *Pool) InternUnion(alternatives []Type) (*Union, error) {
	candidate, err := NewUnion(alternatives)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, u := range p.unions {
		if u.Equals(candidate) {
			return u, nil
		}
	}
	p.unions = append(p.unions, candidate)
	return candidate, nil
}

// InternFunction returns the canonical Function for the given
// signature. Overload lists are attached post-interning by the checker
// and do not participate in the structural key.
func (p *Pool) InternFunction(params []Type, ret Type, variadic bool) *Function {
	p.mu.Lock()
	defer p.mu.Unlock()
	candidate := &Function{Params: params, ReturnType: ret, Variadic: variadic}
	for _, f := range p.funcs {
		if f.Equals(candidate) && f.Variadic == variadic {
			return f
		}
	}
	p.funcs = append(p.funcs, candidate)
	return candidate
}

// RegisterClass adds a freshly built Class to the pool's bookkeeping.
// If a registered Class already has the same Name, TypeArgs and Super,
// that existing Class is returned instead of c, so Substitute
// re-resolves a generic instantiation to the same object on repeated
// calls.
func (p *Pool) RegisterClass(c *Class) *Class {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.classes {
		if existing.Name == c.Name && sameTypeArgs(existing.TypeArgs, c.TypeArgs) && existing.Super == c.Super {
			return existing
		}
	}
	p.classes = append(p.classes, c)
	return c
}

// RegisterInterface mirrors RegisterClass for Interface instantiations.
func (p *Pool) RegisterInterface(i *Interface) *Interface {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.ifaces {
		if existing.Name == i.Name && sameTypeArgs(existing.TypeArgs, i.TypeArgs) {
			return existing
		}
	}
	p.ifaces = append(p.ifaces, i)
	return i
}

func sameTypeArgs(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameType(a[i], b[i]) {
			return false
		}
	}
	return true
}
