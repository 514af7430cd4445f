package bundler

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/checker"
	"github.com/elematic/zena-sub003/internal/loader"
)

// preludeGlobalName is the reserved global name a prelude symbol
// (internal/checker/prelude.go) is addressed by in the bundled
// Program — prelude symbols are Go-native, not declared in any loaded
// module, so they never receive an m<k>_ prefix.
func preludeGlobalName(name string) string {
	return "zena_prelude_" + name
}

// buildImportMap resolves every name mod's source-written
// ImportDeclarations bind locally to its globally unique target, the
// per-module table spec §4.6 step 4 calls for. Synthesized prelude
// imports are not in mod.Imports; addPreludeImports adds them.
func buildImportMap(mod *loader.Module, globalSymbols map[symbolKey]string) map[string]string {
	importMap := make(map[string]string)
	for _, edge := range mod.Imports {
		if loader.IsStdlibSpecifier(edge.Specifier) {
			for _, spec := range edge.Decl.Specifiers {
				local := spec.Local
				if local == "" {
					local = spec.Imported
				}
				importMap[local] = preludeGlobalName(spec.Imported)
			}
			continue
		}
		for _, spec := range edge.Decl.Specifiers {
			local := spec.Local
			if local == "" {
				local = spec.Imported
			}
			if target, ok := globalSymbols[symbolKey{modulePath: edge.Resolved, name: spec.Imported}]; ok {
				importMap[local] = target
			}
		}
	}
	return importMap
}

// addPreludeImports adds every synthesized prelude import the checker
// recorded for mod to importMap — the checker keeps these in
// Result.PreludeImports rather than mod.Program.Statements (spec §4.5),
// so they're folded in here rather than found via mod.Imports.
func addPreludeImports(importMap map[string]string, res *checker.Result) {
	if res == nil {
		return
	}
	for _, imp := range res.PreludeImports {
		for _, spec := range imp.Specifiers {
			local := spec.Local
			if local == "" {
				local = spec.Imported
			}
			importMap[local] = preludeGlobalName(spec.Imported)
		}
	}
}

// renamer walks one module's statement trees, renaming every
// declaration-introducing top-level identifier to its prefixed global
// name and rewriting every non-local identifier/type-name usage to the
// name it resolves to (spec §4.6 step 4). A fresh renamer is used per
// module; scopes is reset per top-level statement.
type renamer struct {
	modulePath    string
	prefix        string
	importMap     map[string]string
	globalSymbols map[symbolKey]string

	scopes []map[string]bool
}

func (r *renamer) pushScope(_ bool) {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *renamer) popScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *renamer) atTopLevel() bool {
	return len(r.scopes) == 1
}

func (r *renamer) defineLocal(name string) {
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *renamer) isLocal(name string) bool {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if r.scopes[i][name] {
			return true
		}
	}
	return false
}

// resolveName rewrites a bare-name usage per spec §4.6 step 4's lookup
// order: local scope stack, then the import map, then the current
// module's own global symbols. A name matching none of those (an
// undeclared reference the checker already diagnosed) is left as-is.
func (r *renamer) resolveName(name string) string {
	if r.isLocal(name) {
		return name
	}
	if target, ok := r.importMap[name]; ok {
		return target
	}
	if target, ok := r.globalSymbols[symbolKey{modulePath: r.modulePath, name: name}]; ok {
		return target
	}
	return name
}

func (r *renamer) globalName(name string) string {
	return r.prefix + name
}
