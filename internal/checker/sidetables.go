package checker

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/types"
)

// Result is what a completed Check run hands back to the bundler: the
// semantic facts it computed, keyed by AST node identity rather than
// stored on the nodes themselves (spec §9's "mutating inferredType on
// AST" redesign note — expression types and resolved bindings live
// here, not on the node).
type Result struct {
	// NodeTypes is the type computed for every Expression the checker
	// visited.
	NodeTypes map[ast.Expression]types.Type

	// Bindings maps each Identifier expression the checker resolved back
	// to the Symbol it resolved to; pattern-bound names are not recorded.
	Bindings map[ast.Node]*Symbol

	// Classes, Interfaces, and Mixins hold the built types.* values for
	// every nominal declaration in the module, keyed by declared name.
	Classes    map[string]*types.Class
	Interfaces map[string]*types.Interface
	Mixins     map[string]*types.Mixin

	// PreludeImports are the synthesized ImportDeclaration nodes the
	// checker added for prelude symbols this module actually referenced
	// (spec §4.5); they are not added to the module's statement list, and
	// the bundler folds their specifiers into the module's import map.
	PreludeImports []*ast.ImportDeclaration

	// Exports maps every exported top-level name to its checked type,
	// consulted by a dependent module's checker when resolving its own
	// `import { name } from "..."` (declarations.go's checkImport).
	Exports map[string]types.Type
}

func newResult() *Result {
	return &Result{
		NodeTypes:  make(map[ast.Expression]types.Type),
		Bindings:   make(map[ast.Node]*Symbol),
		Classes:    make(map[string]*types.Class),
		Interfaces: make(map[string]*types.Interface),
		Mixins:     make(map[string]*types.Mixin),
		Exports:    make(map[string]types.Type),
	}
}

// typeOf records the computed type for an expression node and returns
// it, so call sites can write `return c.typeOf(expr, t)`.
func (c *Checker) typeOf(e ast.Expression, t types.Type) types.Type {
	if t == nil {
		t = types.Any
	}
	c.result.NodeTypes[e] = t
	return t
}

// bind records that node resolved to sym.
func (c *Checker) bind(node ast.Node, sym *Symbol) {
	c.result.Bindings[node] = sym
}
