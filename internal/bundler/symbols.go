package bundler

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/loader"
)

// collectSymbols implements spec §4.6 steps 2 and 3: every top-level
// declaration contributes (modulePath, originalName) → prefix+name to
// the returned global symbol map, and export rewriting clears
// `exported` on every declaration outside the entry module (the first
// module loader.Load discovers, since it starts its worklist there) so
// the entry module is the sole source of external exports.
func collectSymbols(modules []*loader.Module, prefixes map[string]string, bag *diagnostics.Bag) (map[symbolKey]string, string) {
	globalSymbols := make(map[symbolKey]string)
	var entryPath string
	if len(modules) > 0 {
		entryPath = modules[0].Path
	}

	for _, mod := range modules {
		prefix := prefixes[mod.Path]
		for _, stmt := range mod.Program.Statements {
			decl, ok := stmt.(ast.Declaration)
			if !ok {
				continue
			}
			name := decl.Name()
			if name == "" {
				// a top-level VarDeclaration with a non-identifier
				// pattern; the checker already reported
				// TopLevelDestructuringUnsupported for this statement.
				continue
			}
			globalSymbols[symbolKey{modulePath: mod.Path, name: name}] = prefix + name

			if decl.IsExported() {
				if mod.Path == entryPath {
					decl.SetExportName(name)
				} else {
					decl.SetExported(false)
					decl.SetExportName("")
				}
			}
		}
	}

	return globalSymbols, entryPath
}
