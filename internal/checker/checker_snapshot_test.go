package checker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/elematic/zena-sub003/internal/loader"
	"github.com/elematic/zena-sub003/internal/types"
)

// checkSourceAllowingErrors loads and checks a single-module fixture and
// renders its diagnostics bag as a stable, one-line-per-entry string
// suitable for a go-snaps golden comparison — the checker always
// appends in source-encounter order, which is already deterministic
// for a single-threaded single-module check.
func checkSourceAllowingErrors(t *testing.T, source string) []string {
	t.Helper()
	graph, loadBag := loader.Load(&memHost{source: source}, "fixture.zena")
	if loadBag.HasErrors() {
		t.Fatalf("unexpected parse/load errors: %v", loadBag.All())
	}
	_, checkBag := Check(graph.Modules[0], graph, types.NewPool(), nil)
	var lines []string
	for _, d := range checkBag.All() {
		lines = append(lines, fmt.Sprintf("%s[%d]: %s", d.Severity, d.Code, d.Message))
	}
	return lines
}

// ============================================================
// Diagnostics-bag golden tests
// ============================================================

func TestChecker_Diagnostics_UnionWithPrimitiveAlternative(t *testing.T) {
	lines := checkSourceAllowingErrors(t, `
export type Bad = i32 | null;
`)
	snaps.MatchSnapshot(t, "union_primitive_alternative", strings.Join(lines, "\n"))
}

func TestChecker_Diagnostics_AssignToImmutableBinding(t *testing.T) {
	lines := checkSourceAllowingErrors(t, `
function outer(): i32 {
	let x: i32 = 1;
	x = 2;
	return x;
}
`)
	snaps.MatchSnapshot(t, "assign_to_immutable_binding", strings.Join(lines, "\n"))
}

func TestChecker_Diagnostics_UndefinedSymbol(t *testing.T) {
	lines := checkSourceAllowingErrors(t, `
function outer(): i32 {
	return missingName;
}
`)
	snaps.MatchSnapshot(t, "undefined_symbol", strings.Join(lines, "\n"))
}

func TestChecker_Diagnostics_UnreachableCode(t *testing.T) {
	lines := checkSourceAllowingErrors(t, `
function outer(): i32 {
	return 1;
	return 2;
}
`)
	snaps.MatchSnapshot(t, "unreachable_code", strings.Join(lines, "\n"))
}

func TestChecker_Diagnostics_CleanModuleHasNoErrors(t *testing.T) {
	lines := checkSourceAllowingErrors(t, `
export function add(a: i32, b: i32): i32 {
	return a + b;
}
`)
	if len(lines) != 0 {
		t.Fatalf("expected a clean module to produce no diagnostics, got %v", lines)
	}
	snaps.MatchSnapshot(t, "clean_module", strings.Join(lines, "\n"))
}
