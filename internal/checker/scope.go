package checker

import "github.com/elematic/zena-sub003/internal/types"

// SymbolKind distinguishes the few binding flavors the checker needs to
// treat differently when resolving an Identifier (a variable, function
// or parameter vs. a type-level name). Whether a local is captured by a
// closure is not a kind; it is tracked by the Symbol's capture flags.
type SymbolKind int

const (
	SymVar SymbolKind = iota
	SymFunction
	SymParam
	SymClass
	SymInterface
	SymMixin
	SymTypeAlias
	SymSymbolType
)

// Symbol is one name bound in a Scope.
type Symbol struct {
	Name    string
	Kind    SymbolKind
	Type    types.Type
	Mutable bool

	// Captured, Assigned, AssignedAcrossBoundary, and Boxed are filled in
	// by capture analysis (capture.go): Captured is set as soon as any
	// reference (read or write) to this symbol is found to cross a
	// function boundary; Assigned is set by any assignment to it,
	// anywhere, regardless of boundary crossing (tracked for its own
	// sake, independent of capture); AssignedAcrossBoundary is set only
	// when that assignment itself crosses a function boundary — i.e. an
	// inner function mutates an outer local, spec §4.5's definition of a
	// mutable capture. Boxed — a capture that also needs a heap cell
	// because the *inner* function mutates it, rather than a value the
	// emitter can copy into the closure once — is only knowable once the
	// whole module has been walked (a capture can be discovered
	// lexically before or after the mutation that would require boxing
	// it), so it is resolved in one final sweep at the end of Check
	// rather than in-place as each reference is seen. A variable read by
	// a closure but only ever assigned from its own declaring function
	// is captured without needing to be boxed.
	Captured               bool
	Assigned               bool
	AssignedAcrossBoundary bool
	Boxed                  bool

	// OwnerDepth is the scope depth the symbol was declared at, set by
	// Define. Capture analysis does not read it; it decides capture with
	// Scope.CrossesFunctionBoundary.
	OwnerDepth int
}

// Scope is one lexical block's symbol table, chained to its parent.
// Following the teacher's symbol_table.go shape
// (internal/semantic/symbol_table.go), except bindings are case-sensitive
// here since the target language, unlike DWScript, is case-sensitive.
type Scope struct {
	symbols map[string]*Symbol
	outer   *Scope
	depth   int

	// IsFunctionBoundary marks a scope introduced by a function/method/
	// arrow body, the boundary capture analysis walks across to decide
	// whether a reference is a capture at all.
	IsFunctionBoundary bool
}

func NewScope(outer *Scope, isFunctionBoundary bool) *Scope {
	depth := 0
	if outer != nil {
		depth = outer.depth + 1
	}
	return &Scope{symbols: make(map[string]*Symbol), outer: outer, depth: depth, IsFunctionBoundary: isFunctionBoundary}
}

// Define introduces a new symbol in this scope, shadowing any
// same-named symbol in an enclosing scope.
func (s *Scope) Define(sym *Symbol) {
	sym.OwnerDepth = s.depth
	s.symbols[sym.Name] = sym
}

// Lookup walks outward from s looking for name, returning the owning
// scope alongside the symbol so capture analysis can tell whether the
// binding crossed a function boundary.
func (s *Scope) Lookup(name string) (*Symbol, *Scope, bool) {
	for cur := s; cur != nil; cur = cur.outer {
		if sym, ok := cur.symbols[name]; ok {
			return sym, cur, true
		}
	}
	return nil, nil, false
}

// LookupLocal only checks this scope, used for duplicate-declaration
// checks within a single block.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// CrossesFunctionBoundary reports whether resolving a reference from s
// out to owner (the scope that actually declared the symbol) passes
// through at least one function-boundary scope — i.e. whether the
// reference is a closure capture of an outer local rather than an
// ordinary same-function lookup.
func (s *Scope) CrossesFunctionBoundary(owner *Scope) bool {
	for cur := s; cur != nil && cur != owner; cur = cur.outer {
		if cur.IsFunctionBoundary {
			return true
		}
	}
	return false
}
