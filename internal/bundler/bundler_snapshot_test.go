package bundler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/elematic/zena-sub003/internal/checker"
	"github.com/elematic/zena-sub003/internal/loader"
)

// memHost is an in-memory loader.Host backing the bundler's fixture
// modules: specifiers are plain keys into sources, the way the
// teacher's own lightweight test doubles stand in for a real
// filesystem (internal/interp/fixture_test.go).
type memHost struct {
	sources map[string]string
}

func (h *memHost) Resolve(specifier, referrer string) (string, error) {
	path := strings.TrimPrefix(specifier, "./")
	if _, ok := h.sources[path]; !ok {
		return "", fmt.Errorf("no fixture module %q", path)
	}
	return path, nil
}

func (h *memHost) Load(path string) (string, error) {
	src, ok := h.sources[path]
	if !ok {
		return "", fmt.Errorf("no fixture module %q", path)
	}
	return src, nil
}

func TestBundle_UniqueNamesAndEntryOnlyExports(t *testing.T) {
	host := &memHost{sources: map[string]string{
		"entry.zena": `
import { helper } from "./lib.zena";

export let value: i32 = helper();
`,
		"lib.zena": `
export function helper(): i32 {
	return 1;
}

let value: i32 = 2;
`,
	}}

	graph, loadBag := loader.Load(host, "entry.zena")
	if loadBag.HasErrors() {
		t.Fatalf("unexpected load errors: %v", loadBag)
	}
	if len(graph.Modules) != 2 {
		t.Fatalf("expected 2 modules in discovery order, got %d", len(graph.Modules))
	}

	prog, bundleBag := Bundle(graph, map[string]*checker.Result{})
	if bundleBag.HasErrors() {
		t.Fatalf("unexpected bundle errors: %v", bundleBag)
	}

	var names []string
	var exportedNames []string
	for _, stmt := range prog.Statements {
		decl, ok := stmt.(interface {
			Name() string
			IsExported() bool
			ExportName() string
		})
		if !ok {
			continue
		}
		names = append(names, decl.Name())
		if decl.IsExported() {
			exportedNames = append(exportedNames, decl.ExportName())
		}
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Fatalf("bundled output re-used the name %q across modules", n)
		}
		seen[n] = true
	}

	if len(exportedNames) != 1 || exportedNames[0] != "value" {
		t.Fatalf("expected only entry module's `value` to remain exported, got %v", exportedNames)
	}

	snaps.MatchSnapshot(t, "bundle_names", strings.Join(names, "\n"))
	snaps.MatchSnapshot(t, "bundle_exports", strings.Join(exportedNames, "\n"))
}

func TestBundle_CollidingTopLevelNamesGetDistinctPrefixes(t *testing.T) {
	host := &memHost{sources: map[string]string{
		"entry.zena": `
import { value as a } from "./a.zena";
import { value as b } from "./b.zena";

export let total: i32 = a;
`,
		"a.zena": `
export let value: i32 = 1;
`,
		"b.zena": `
export let value: i32 = 2;
`,
	}}

	graph, loadBag := loader.Load(host, "entry.zena")
	if loadBag.HasErrors() {
		t.Fatalf("unexpected load errors: %v", loadBag)
	}

	prog, bundleBag := Bundle(graph, map[string]*checker.Result{})
	if bundleBag.HasErrors() {
		t.Fatalf("unexpected bundle errors: %v", bundleBag)
	}

	var names []string
	for _, stmt := range prog.Statements {
		if decl, ok := stmt.(interface{ Name() string }); ok {
			names = append(names, decl.Name())
		}
	}

	distinctPrefixes := map[string]bool{}
	for _, n := range names {
		if n == "" {
			continue
		}
		prefix := n[:strings.Index(n, "_")+1]
		distinctPrefixes[prefix] = true
	}
	if len(distinctPrefixes) != 3 {
		t.Fatalf("expected 3 distinct module prefixes (one per module), got %d: %v", len(distinctPrefixes), names)
	}

	snaps.MatchSnapshot(t, "collision_names", strings.Join(names, "\n"))
}
