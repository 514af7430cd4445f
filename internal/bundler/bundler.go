// Package bundler implements spec §4.6: combining every checked module
// of a compilation into one self-contained Program whose top-level
// names are all globally unique, ready for a downstream WebAssembly
// emitter to lower mechanically.
//
// The shape follows the teacher's internal/semantic.Analyzer in spirit
// (a single accumulating pass over a module list) generalized from
// "one module, one result" to "many modules, one program": prefix
// assignment, then symbol collection, then a rename walk, mirrored
// here as prefixes.go / symbols.go / rename.go.
package bundler

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/checker"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/loader"
)

// Program is the single-program IR the downstream WebAssembly emitter
// consumes (spec §6 "Program IR format"): one flat statement list with
// every import resolved away and every name globally unique.
type Program struct {
	Statements     []ast.Statement
	WellKnownTypes WellKnownTypes
}

// WellKnownTypes names the handful of prelude types the emitter must
// recognize by identity rather than by looking them up again (spec §6).
// They are not user-declared classes, so they carry no bundler-assigned
// m<k>_ prefix; the emitter recognizes the reserved names directly. Of
// the three, only String is declared in internal/checker/prelude.go.
type WellKnownTypes struct {
	String               string
	FixedArray           string
	TemplateStringsArray string
}

const (
	reservedStringName               = "zena_prelude_String"
	reservedFixedArrayName           = "zena_prelude_FixedArray"
	reservedTemplateStringsArrayName = "zena_prelude_TemplateStringsArray"
)

// Bundle runs the full four-step algorithm of spec §4.6 over every
// module in graph, using the already-computed checker.Result for each
// (keyed by resolved module path, the same map zenac.Compile threads
// through checker.Check) to know which declarations are exported.
func Bundle(graph *loader.Graph, results map[string]*checker.Result) (*Program, *diagnostics.Bag) {
	bag := diagnostics.NewBag()

	prefixes := assignPrefixes(graph.Modules)
	globalSymbols, _ := collectSymbols(graph.Modules, prefixes, bag)

	var out []ast.Statement
	for _, mod := range graph.Modules {
		prefix := prefixes[mod.Path]
		importMap := buildImportMap(mod, globalSymbols)
		addPreludeImports(importMap, results[mod.Path])
		rw := &renamer{
			modulePath:    mod.Path,
			prefix:        prefix,
			importMap:     importMap,
			globalSymbols: globalSymbols,
		}
		for _, stmt := range mod.Program.Statements {
			if _, ok := stmt.(*ast.ImportDeclaration); ok {
				continue
			}
			rw.pushScope(true)
			rewritten := rw.renameStatement(stmt)
			rw.popScope()
			out = append(out, rewritten)
		}
	}

	return &Program{
		Statements: out,
		WellKnownTypes: WellKnownTypes{
			String:               reservedStringName,
			FixedArray:           reservedFixedArrayName,
			TemplateStringsArray: reservedTemplateStringsArrayName,
		},
	}, bag
}

// symbolKey identifies one top-level binding by the module that
// declared it plus its original (pre-rename) name.
type symbolKey struct {
	modulePath string
	name       string
}
