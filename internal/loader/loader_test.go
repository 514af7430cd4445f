package loader_test

import (
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/elematic/zena-sub003/internal/loader"
)

// yamlHost is an in-memory loader.Host whose module sources come from a
// YAML-described virtual filesystem (a flat `path: source` map), the
// way the teacher's heavier interpreter fixtures load multi-unit
// programs from one file instead of one `_test.go` string literal per
// module (internal/interp/fixture_test.go).
type yamlHost struct {
	modules map[string]string
}

func newYAMLHost(t *testing.T, doc string) *yamlHost {
	t.Helper()
	var modules map[string]string
	if err := yaml.Unmarshal([]byte(doc), &modules); err != nil {
		t.Fatalf("invalid YAML fixture: %v", err)
	}
	return &yamlHost{modules: modules}
}

func (h *yamlHost) Resolve(specifier, referrer string) (string, error) {
	path := strings.TrimPrefix(specifier, "./")
	if _, ok := h.modules[path]; !ok {
		return "", fmt.Errorf("no fixture module %q", path)
	}
	return path, nil
}

func (h *yamlHost) Load(path string) (string, error) {
	src, ok := h.modules[path]
	if !ok {
		return "", fmt.Errorf("no fixture module %q", path)
	}
	return src, nil
}

func TestLoad_DeterministicDiscoveryOrder(t *testing.T) {
	host := newYAMLHost(t, `
entry.zena: |
  import { x } from "./x.zena";
  import { y } from "./y.zena";
  export let total: i32 = x + y;
x.zena: |
  export let x: i32 = 1;
y.zena: |
  export let y: i32 = 2;
`)

	graph, bag := loader.Load(host, "entry.zena")
	if bag.HasErrors() {
		t.Fatalf("unexpected load errors: %v", bag.All())
	}
	if len(graph.Modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(graph.Modules))
	}

	var order []string
	for _, m := range graph.Modules {
		order = append(order, m.Path)
	}
	want := []string{"entry.zena", "x.zena", "y.zena"}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("discovery order = %v, want %v", order, want)
		}
	}
}

func TestLoad_ToleratesImportCycles(t *testing.T) {
	host := newYAMLHost(t, `
a.zena: |
  import { b } from "./b.zena";
  export let a: i32 = 1;
b.zena: |
  import { a } from "./a.zena";
  export let b: i32 = 2;
`)

	graph, bag := loader.Load(host, "a.zena")
	if bag.HasErrors() {
		t.Fatalf("unexpected load errors: %v", bag.All())
	}
	if len(graph.Modules) != 2 {
		t.Fatalf("a module reachable through a cycle should still be parsed exactly once; got %d modules", len(graph.Modules))
	}
	if _, ok := graph.Get("a.zena"); !ok {
		t.Fatalf("entry module missing from graph")
	}
	if _, ok := graph.Get("b.zena"); !ok {
		t.Fatalf("cyclically-imported module missing from graph")
	}
}

func TestLoad_SelfImportingModuleIsLoadedOnce(t *testing.T) {
	host := newYAMLHost(t, `
self.zena: |
  import { self } from "./self.zena";
  export let self: i32 = 1;
`)

	graph, bag := loader.Load(host, "self.zena")
	if bag.HasErrors() {
		t.Fatalf("unexpected load errors: %v", bag.All())
	}
	if len(graph.Modules) != 1 {
		t.Fatalf("a module importing itself should still appear exactly once, got %d", len(graph.Modules))
	}
}

func TestLoad_UnresolvableImportReportsModuleNotFound(t *testing.T) {
	host := newYAMLHost(t, `
entry.zena: |
  import { missing } from "./missing.zena";
  export let value: i32 = missing;
`)

	_, bag := loader.Load(host, "entry.zena")
	if !bag.HasErrors() {
		t.Fatalf("expected a ModuleNotFound diagnostic for an unresolvable import")
	}
}
