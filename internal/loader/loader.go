// Package loader builds the module graph a Compiler checks and bundles:
// given an entry specifier, it resolves and parses every module
// transitively reachable through import declarations, tolerating import
// cycles rather than rejecting them outright (spec §5).
//
// The shape mirrors the teacher's internal/units registry
// (github.com/cwbudde/go-dws/internal/units): a Host resolves and reads
// source text, a Graph caches one Module per resolved path, and loading
// is driven by a worklist rather than naive recursion so a module is
// parsed exactly once no matter how many times it is imported.
package loader

import (
	"fmt"
	"strings"

	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/parser"
)

// stdlibScheme is the reserved specifier prefix for built-in modules,
// e.g. `zena:collections`. Load hands these to Host.Resolve like any
// other specifier; IsStdlib and IsStdlibSpecifier recognize them by
// this prefix.
const stdlibScheme = "zena:"

// Host adapts the loader to wherever module sources actually live.
// The tests implement it with in-memory hosts; the loader itself never
// touches a filesystem directly.
type Host interface {
	// Resolve turns an import specifier relative to referrer (the
	// importing module's path) into a canonical module path. The entry
	// path given to Load is used as is and never passed to Resolve.
	Resolve(specifier, referrer string) (string, error)
	// Load reads the source text at a path previously returned by
	// Resolve.
	Load(path string) (string, error)
}

// Module is one parsed unit of the program: one source file's AST plus
// its own diagnostics and its resolved import specifiers.
type Module struct {
	Path        string
	Source      string
	Program     *ast.Program
	IsStdlib    bool
	Imports     []ImportEdge
	Diagnostics *diagnostics.Bag
}

// ImportEdge is one resolved `import … from "specifier"` edge out of a
// Module, pointing at the imported module's canonical path.
type ImportEdge struct {
	Specifier string
	Resolved  string
	Decl      *ast.ImportDeclaration
}

// Graph is the full set of modules loaded for one compilation, keyed by
// canonical path, plus the order they were first discovered in — used
// by the bundler to assign deterministic `m<k>_` prefixes (spec §7).
type Graph struct {
	Modules []*Module
	byPath  map[string]*Module
}

func newGraph() *Graph {
	return &Graph{byPath: make(map[string]*Module)}
}

// Get returns the module at path, if loaded.
func (g *Graph) Get(path string) (*Module, bool) {
	m, ok := g.byPath[path]
	return m, ok
}

// Load resolves and parses entry and every module it transitively
// imports, returning the resulting Graph. A module already present in
// the graph (including one reachable through a cycle) is never
// re-parsed; Load tolerates cycles by tracking in-progress paths rather
// than a simple recursion-depth check.
func Load(host Host, entry string) (*Graph, *diagnostics.Bag) {
	g := newGraph()
	bag := diagnostics.NewBag()

	type workItem struct {
		path     string
		referrer string
	}
	worklist := []workItem{{path: entry, referrer: ""}}
	seen := map[string]bool{entry: true}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		mod, modBag := loadOne(host, item.path)
		bag.Merge(modBag)
		if mod == nil {
			continue
		}
		g.Modules = append(g.Modules, mod)
		g.byPath[mod.Path] = mod

		for i := range mod.Imports {
			edge := &mod.Imports[i]
			resolved, err := host.Resolve(edge.Specifier, mod.Path)
			if err != nil {
				loc := &diagnostics.Location{File: mod.Path, Start: edge.Decl.Pos(), Line: edge.Decl.Pos().Line, Column: edge.Decl.Pos().Column}
				bag.Error(diagnostics.ModuleNotFound, loc, fmt.Sprintf("cannot resolve module %q: %v", edge.Specifier, err))
				continue
			}
			edge.Resolved = resolved
			if !seen[resolved] {
				seen[resolved] = true
				worklist = append(worklist, workItem{path: resolved, referrer: mod.Path})
			}
		}
	}

	return g, bag
}

func loadOne(host Host, path string) (*Module, *diagnostics.Bag) {
	source, err := host.Load(path)
	if err != nil {
		bag := diagnostics.NewBag()
		bag.Error(diagnostics.ModuleNotFound, &diagnostics.Location{File: path}, fmt.Sprintf("cannot load module %q: %v", path, err))
		return nil, bag
	}

	prog, bag := parser.Parse(source, path)
	mod := &Module{
		Path:        path,
		Source:      source,
		Program:     prog,
		IsStdlib:    strings.HasPrefix(path, stdlibScheme),
		Diagnostics: bag,
	}
	for _, stmt := range prog.Statements {
		if imp, ok := stmt.(*ast.ImportDeclaration); ok {
			mod.Imports = append(mod.Imports, ImportEdge{Specifier: imp.Specifier, Decl: imp})
		}
	}
	return mod, bag
}

// IsStdlibSpecifier reports whether specifier names a built-in module
// under the reserved `zena:` scheme (spec §5).
func IsStdlibSpecifier(specifier string) bool {
	return strings.HasPrefix(specifier, stdlibScheme)
}
