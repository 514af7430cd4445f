// Package checker implements the two-pass semantic checker described in
// spec §4.4: given one module's AST plus the already-loaded module
// graph it belongs to, it resolves types, builds the nominal type
// declarations (class/interface/mixin), checks expressions and
// statements, and reports diagnostics.
//
// The shape follows the teacher's internal/semantic.Analyzer
// (internal/semantic/analyzer.go): per-kind declared-type maps, a
// context-tracking set of fields (currentFunction, currentClass,
// loopDepth, ...), and a diagnostics sink, adapted to a case-sensitive
// symbol table and a two-pass (pre-declare, then check) pipeline in
// place of the teacher's single-pass DWScript analyzer.
package checker

import (
	"fmt"

	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/loader"
	"github.com/elematic/zena-sub003/internal/token"
	"github.com/elematic/zena-sub003/internal/types"
)

// Checker holds all context threaded through checking a single module.
// One Checker is used per module; the Pool and Graph are shared across
// every module a Compiler checks so cross-module class/interface
// identities and prelude resolution stay consistent.
type Checker struct {
	pool  *types.Pool
	graph *loader.Graph
	mod   *loader.Module
	path  string
	bag   *diagnostics.Bag

	scope       *Scope
	globalScope *Scope

	// typeNames resolves a bare type name (class, interface, mixin, or
	// type alias) visible in this module to its declaration, populated
	// during the pre-declaration pass before any body is checked so
	// forward references (a method returning a class declared later in
	// the same file) resolve correctly.
	typeNames map[string]*typeNameEntry

	functions map[string]*types.Function

	// imported is the cross-module lookup table described on Check.
	imported map[string]*Result

	// importEdges maps an ImportDeclaration node to its resolved target
	// module path, precomputed from mod.Imports so checkImport
	// (declarations.go) doesn't re-scan the module's import list per
	// declaration.
	importEdges map[*ast.ImportDeclaration]string

	result *Result

	// currentFunctionReturn is the declared (or inferred-so-far) return
	// type of the function whose body is currently being checked, used
	// to check `return expr;` statements against it.
	currentFunctionReturn types.Type
	currentClass          *types.Class
	loopDepth             int
	inLambda              bool

	// preludeUsed tracks prelude symbol names actually referenced by
	// this module, consulted after the main pass to synthesize the
	// corresponding ImportDeclaration nodes (spec §4.5, prelude.go).
	preludeUsed map[string]bool

	// unreachableReported is not read or written by any checker code;
	// checkBody suppresses repeat UnreachableCode diagnostics with a
	// local flag instead.
	unreachableReported bool

	// allSymbols records every Symbol defined anywhere in the module, so
	// the final capture-analysis sweep (capture.go) can resolve Boxed
	// without needing to walk every scope again.
	allSymbols []*Symbol
}

// define introduces sym into the current scope and registers it for the
// end-of-module Boxed sweep; every binding site in this package should
// go through this instead of calling scope.Define directly.
func (c *Checker) define(sym *Symbol) {
	c.scope.Define(sym)
	c.allSymbols = append(c.allSymbols, sym)
}

// typeNameEntry is one pre-declared type-level name: exactly one of its
// fields is non-nil depending on what kind of declaration introduced it.
type typeNameEntry struct {
	class     *types.Class
	iface     *types.Interface
	mixin     *types.Mixin
	aliasAST  ast.TypeAnnotation // resolved lazily, see resolveTypeAlias
	aliasType types.Type         // filled in once resolved
	decl      ast.Declaration
}

// Check runs the full two-pass checker over mod and returns the
// diagnostics produced plus the semantic Result the bundler consumes.
// graph and pool are shared across every module of the compilation;
// mod is the one being checked right now.
//
// imported carries the already-computed Result of every module mod
// depends on that has already been checked, keyed by resolved module
// path — the root Compiler checks modules in the loader Graph's
// dependency order and threads each module's Result forward so a
// cross-module `import { X } from "./other"` can resolve X's type.
// A module reachable only through an import cycle may not have an
// entry yet; such imports resolve to Any rather than blocking checking
// (spec §5 "cycle-tolerant" loading extends to checking: a cycle
// degrades precision, it does not fail the build).
func Check(mod *loader.Module, graph *loader.Graph, pool *types.Pool, imported map[string]*Result) (*Result, *diagnostics.Bag) {
	c := &Checker{
		pool:        pool,
		graph:       graph,
		mod:         mod,
		path:        mod.Path,
		bag:         diagnostics.NewBag(),
		typeNames:   make(map[string]*typeNameEntry),
		functions:   make(map[string]*types.Function),
		result:      newResult(),
		preludeUsed: make(map[string]bool),
		imported:    imported,
		importEdges: make(map[*ast.ImportDeclaration]string),
	}
	c.globalScope = NewScope(nil, true)
	c.scope = c.globalScope
	for _, edge := range mod.Imports {
		c.importEdges[edge.Decl] = edge.Resolved
	}

	c.predeclare(mod.Program)
	c.buildNominalTypes()
	c.checkBody(mod.Program.Statements)
	c.resolveCaptures()
	c.collectExports(mod.Program)
	c.synthesizePreludeImports()

	return c.result, c.bag
}

// collectExports records the checked type of every exported top-level
// declaration so a dependent module can resolve `import { name } from
// "this one"` against it (spec §4.1 exports, declarations.go's
// checkImport).
func (c *Checker) collectExports(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		decl, ok := stmt.(ast.Declaration)
		if !ok || !decl.IsExported() {
			continue
		}
		name := decl.ExportName()
		if name == "" {
			name = decl.Name()
		}
		if t, ok := c.exportedType(decl); ok {
			c.result.Exports[name] = t
		}
	}
}

func (c *Checker) exportedType(decl ast.Declaration) (types.Type, bool) {
	switch d := decl.(type) {
	case *ast.ClassDeclaration:
		if entry, ok := c.typeNames[d.Name_]; ok {
			return entry.class, true
		}
	case *ast.InterfaceDeclaration:
		if entry, ok := c.typeNames[d.Name_]; ok {
			return entry.iface, true
		}
	case *ast.MixinDeclaration:
		if entry, ok := c.typeNames[d.Name_]; ok {
			return entry.mixin, true
		}
	case *ast.TypeAliasDeclaration:
		if entry, ok := c.typeNames[d.Name_]; ok {
			return c.resolveTypeAlias(entry), true
		}
	case *ast.FunctionDeclaration:
		if fn, ok := c.functions[d.Fn.Name]; ok {
			return fn, true
		}
	case *ast.DeclareFunctionDeclaration:
		if fn, ok := c.functions[d.Name_]; ok {
			return fn, true
		}
	case *ast.SymbolDeclaration:
		if sym, _, ok := c.globalScope.Lookup(d.Name_); ok {
			return sym.Type, true
		}
	case *ast.VarDeclaration:
		if sym, _, ok := c.globalScope.Lookup(d.Name()); ok {
			return sym.Type, true
		}
	}
	return nil, false
}

func (c *Checker) errorf(code diagnostics.Code, pos token.Position, format string, args ...interface{}) {
	c.bag.Error(code, &diagnostics.Location{File: c.path, Start: pos, Line: pos.Line, Column: pos.Column}, fmt.Sprintf(format, args...))
}

func (c *Checker) pushScope(isFunctionBoundary bool) {
	c.scope = NewScope(c.scope, isFunctionBoundary)
}

func (c *Checker) popScope() {
	c.scope = c.scope.outer
}

// checkBody type-checks a sequence of top-level or block statements in
// source order, flagging any statement reachable only after a
// return/break/continue/throw as UnreachableCode.
func (c *Checker) checkBody(stmts []ast.Statement) {
	terminated := false
	for _, stmt := range stmts {
		if terminated {
			c.errorf(diagnostics.UnreachableCode, stmt.Pos(), "unreachable code")
			terminated = false // report once per run of dead statements, not once per block
		}
		c.checkStatement(stmt)
		if stmtAlwaysExits(stmt) {
			terminated = true
		}
	}
}

// stmtAlwaysExits reports whether stmt unconditionally transfers
// control out of the enclosing block (return/break/continue/throw, or
// an if/else whose both arms do).
func stmtAlwaysExits(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.ReturnStatement, *ast.BreakStatement, *ast.ContinueStatement, *ast.ThrowStatement:
		return true
	case *ast.IfStatement:
		if s.Else == nil {
			return false
		}
		return stmtAlwaysExits(s.Then) && stmtAlwaysExits(s.Else)
	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			if stmtAlwaysExits(inner) {
				return true
			}
		}
		return false
	}
	return false
}
