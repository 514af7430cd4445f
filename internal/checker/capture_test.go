package checker

import (
	"fmt"
	"testing"

	"github.com/elematic/zena-sub003/internal/loader"
	"github.com/elematic/zena-sub003/internal/types"
)

// memHost is a single-module in-memory loader.Host; these fixtures
// never import anything, so Resolve is never exercised.
type memHost struct {
	source string
}

func (h *memHost) Resolve(specifier, referrer string) (string, error) {
	return "", fmt.Errorf("unexpected import %q", specifier)
}

func (h *memHost) Load(path string) (string, error) {
	return h.source, nil
}

// checkSource loads and checks a single-module fixture, returning the
// checker Result for inspection.
func checkSource(t *testing.T, source string) *Result {
	t.Helper()
	graph, loadBag := loader.Load(&memHost{source: source}, "fixture.zena")
	if loadBag.HasErrors() {
		t.Fatalf("unexpected parse/load errors: %v", loadBag.All())
	}
	result, checkBag := Check(graph.Modules[0], graph, types.NewPool(), nil)
	if checkBag.HasErrors() {
		t.Fatalf("unexpected check errors: %v", checkBag.All())
	}
	return result
}

// symbolNamed finds the (single, in these fixtures) bound Symbol with
// the given name among every reference the checker recorded.
func symbolNamed(result *Result, name string) (*Symbol, bool) {
	for _, sym := range result.Bindings {
		if sym.Name == name {
			return sym, true
		}
	}
	return nil, false
}

// ============================================================
// Capture/Boxed analysis (spec §4.5, §8.6)
// ============================================================

func TestCapture_ReadOnlyClosureIsCapturedNotBoxed(t *testing.T) {
	result := checkSource(t, `
function outer(): i32 {
	let counter: i32 = 0;
	let readOnly = () => counter;
	return readOnly();
}
`)
	sym, ok := symbolNamed(result, "counter")
	if !ok {
		t.Fatalf("counter was never bound")
	}
	if !sym.Captured {
		t.Fatalf("counter read from an inner function should be Captured")
	}
	if sym.Boxed {
		t.Fatalf("counter is only ever read by the inner function, never assigned to — should not be Boxed")
	}
}

func TestCapture_MutatingClosureIsBoxed(t *testing.T) {
	result := checkSource(t, `
function outer(): i32 {
	var counter: i32 = 0;
	let mutate = () => {
		counter = counter + 1;
	};
	mutate();
	return counter;
}
`)
	sym, ok := symbolNamed(result, "counter")
	if !ok {
		t.Fatalf("counter was never bound")
	}
	if !sym.Captured {
		t.Fatalf("counter assigned from an inner function should be Captured")
	}
	if !sym.Boxed {
		t.Fatalf("counter assigned by the inner function mutate() should be Boxed")
	}
}

// TestCapture_SelfMutationReadByClosureIsNotBoxed is the scenario
// comment (d) of the review fixed: a local assigned only by its own
// declaring function, and merely read by an inner closure, must not be
// boxed — only an assignment that itself crosses the function boundary
// should force boxing.
func TestCapture_SelfMutationReadByClosureIsNotBoxed(t *testing.T) {
	result := checkSource(t, `
function outer(): i32 {
	var counter: i32 = 0;
	counter = counter + 1;
	let readOnly = () => counter;
	return readOnly();
}
`)
	sym, ok := symbolNamed(result, "counter")
	if !ok {
		t.Fatalf("counter was never bound")
	}
	if !sym.Assigned {
		t.Fatalf("counter is assigned by outer() itself, Assigned should be true")
	}
	if sym.AssignedAcrossBoundary {
		t.Fatalf("counter's only assignment is within its own declaring function, not across a boundary")
	}
	if !sym.Captured {
		t.Fatalf("counter is read by the inner function readOnly(), should be Captured")
	}
	if sym.Boxed {
		t.Fatalf("counter must not be Boxed: it is only ever assigned by its own declaring function")
	}
}

func TestCapture_UncapturedLocalIsNeitherCapturedNorBoxed(t *testing.T) {
	result := checkSource(t, `
function outer(): i32 {
	var counter: i32 = 0;
	counter = counter + 1;
	return counter;
}
`)
	sym, ok := symbolNamed(result, "counter")
	if !ok {
		t.Fatalf("counter was never bound")
	}
	if sym.Captured {
		t.Fatalf("counter is never referenced outside its own declaring function; should not be Captured")
	}
	if sym.Boxed {
		t.Fatalf("an uncaptured local is never Boxed")
	}
}
