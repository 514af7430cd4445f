package checker

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/token"
	"github.com/elematic/zena-sub003/internal/types"
)

// preludeModule is the reserved stdlib specifier the checker synthesizes
// import declarations against for prelude names a module refers to
// without an explicit import (spec §4.5 "prelude mechanism").
const preludeModule = "zena:prelude"

// preludeClass builds a minimal nominal class for a built-in prelude
// type. Prelude classes carry no checker-visible fields/methods beyond
// what the emitter's intrinsics need (out of scope here); they exist so
// ordinary type-checking (assignability, method calls on builtin
// values) has a real Class to reason about.
func preludeClass(name string) *types.Class {
	return types.NewClass(name)
}

var (
	preludeStringClass    = preludeClass("String")
	preludeExceptionClass = preludeClass("Exception")
	preludeObjectClass    = preludeClass("Object")
)

func init() {
	preludeStringClass.Super = preludeObjectClass
	preludeExceptionClass.Super = preludeObjectClass
	preludeExceptionClass.AddField(&types.FieldInfo{Name: "message", Type: preludeStringClass})
}

// preludeTypes resolves a bare type name used without an explicit
// import to its prelude class, consulted by resolveNamedType once a
// module-local typeNames lookup misses.
var preludeTypes = map[string]types.Type{
	"String":    preludeStringClass,
	"Exception": preludeExceptionClass,
	"Object":    preludeObjectClass,
}

// preludeFunctions resolves a bare function name used without an
// explicit import to its prelude signature, consulted by the
// identifier-resolution path in expressions.go.
var preludeFunctions = map[string]*types.Function{
	"print":  types.NewFunctionType([]types.Type{types.Any}, types.Void),
	"assert": types.NewFunctionType([]types.Type{types.Bool, preludeStringClass}, types.Void),
}

// markPreludeUse records that name (if it actually names a prelude
// export) was referenced by the module currently being checked, so
// synthesizePreludeImports knows to add an import for it.
func (c *Checker) markPreludeUse(name string) {
	if _, ok := preludeTypes[name]; ok {
		c.preludeUsed[name] = true
		return
	}
	if _, ok := preludeFunctions[name]; ok {
		c.preludeUsed[name] = true
	}
}

// synthesizePreludeImports appends a single ImportDeclaration whose
// specifiers list every prelude name the module actually used (sorted
// by name), marked Synthesized so the
// bundler can tell it apart from a source-written import for
// diagnostics purposes while still treating it identically otherwise
// (spec §4.5).
func (c *Checker) synthesizePreludeImports() {
	if len(c.preludeUsed) == 0 {
		return
	}
	names := make([]string, 0, len(c.preludeUsed))
	for name := range c.preludeUsed {
		names = append(names, name)
	}
	// deterministic order: synthesized output must not depend on map
	// iteration order (spec's stable-iteration guarantee applies to
	// checker output as much as to the type pool).
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}

	specs := make([]ast.ImportSpecifier, 0, len(names))
	for _, name := range names {
		specs = append(specs, ast.ImportSpecifier{Imported: name, Local: name})
	}
	imp := &ast.ImportDeclaration{
		Token:       token.Token{Kind: token.KwImport},
		Specifiers:  specs,
		Specifier:   preludeModule,
		Synthesized: true,
	}
	c.result.PreludeImports = append(c.result.PreludeImports, imp)
}
