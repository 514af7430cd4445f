// Package zenac is the public surface of the semantic middle-end: it
// loads a module graph (internal/loader), type-checks every module
// (internal/checker) in dependency order, and bundles the result into
// one monomorphized Program (internal/bundler).
package zenac

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/elematic/zena-sub003/internal/bundler"
	"github.com/elematic/zena-sub003/internal/checker"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/loader"
	"github.com/elematic/zena-sub003/internal/types"
)

// CompilerOption configures a Compiler, the same functional-options
// pattern the teacher's lexer.New(input, ...LexerOption) uses. zenac
// needs no config-file format (the host supplies all configuration
// programmatically), so this is the only surface for tuning behavior.
type CompilerOption func(*Compiler)

// WithHost overrides the module Host; a Compiler built without one has
// no way to resolve or load source, and Compile returns an error
// without loading anything or recording a diagnostic.
func WithHost(host loader.Host) CompilerOption {
	return func(c *Compiler) { c.host = host }
}

// Compiler owns the shared type pool and the module graph of one
// compilation. A single Compiler is not safe for concurrent Compile
// calls against different entries; build a fresh Compiler per
// compilation the way the teacher builds a fresh interp.Interpreter
// per run.
type Compiler struct {
	host loader.Host
	pool *types.Pool
	bag  *diagnostics.Bag

	graph   *loader.Graph
	results map[string]*checker.Result
}

// New constructs a Compiler. Options apply in order, mirroring the
// teacher's lexer.New(input, opts...) convention.
func New(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		pool:    types.NewPool(),
		bag:     diagnostics.NewBag(),
		results: make(map[string]*checker.Result),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Diagnostics returns every diagnostic collected across loading,
// checking, and bundling so far, aggregating what the teacher keeps as
// separate per-phase error slices into one queryable Bag (spec §7: "if
// any diagnostic has severity Error, downstream consumers are expected
// to refuse emission" becomes a single HasErrors() check here).
func (c *Compiler) Diagnostics() *diagnostics.Bag {
	return c.bag
}

// Result is what Compile returns on success: the assembled bundler
// Program plus a build id stamping this particular compile() call, the
// way a CI pipeline tags an artifact with its invocation id for
// caller-side tracing.
type Result struct {
	Program *bundler.Program
	BuildID uuid.UUID
}

// Compile loads entry and its full transitive import graph, checks
// every module in dependency order (so a module's Result is available
// by the time a dependent module's checkImport needs it), and bundles
// the checked graph into one Program. Every diagnostic collected is
// merged into Diagnostics(). If any of them has Error severity after
// checking, or after bundling, Compile returns a nil Result and an
// error, so a non-nil Result is never built over Error diagnostics.
func (c *Compiler) Compile(entry string) (*Result, error) {
	if c.host == nil {
		return nil, fmt.Errorf("zenac: Compiler has no Host configured, use WithHost")
	}

	graph, loadBag := loader.Load(c.host, entry)
	c.graph = graph
	c.bag.Merge(loadBag)

	for _, mod := range orderedByDependency(graph) {
		res, checkBag := checker.Check(mod, graph, c.pool, c.results)
		c.results[mod.Path] = res
		c.bag.Merge(checkBag)
	}

	if c.bag.HasErrors() {
		return nil, fmt.Errorf("zenac: compilation of %q failed with errors", entry)
	}

	buildID := uuid.New()
	prog, bundleBag := bundler.Bundle(graph, c.results)
	c.bag.Merge(bundleBag)
	if c.bag.HasErrors() {
		return nil, fmt.Errorf("zenac: bundling %q failed with errors", entry)
	}

	return &Result{Program: prog, BuildID: buildID}, nil
}

// orderedByDependency returns graph's modules in an order where every
// module appears after every module it imports, tolerating cycles
// (spec §5) by falling back to discovery order for any module whose
// dependencies are not fully ordered yet — a cyclic edge simply
// degrades that one import to Any in checker.checkImport rather than
// blocking the whole compile.
func orderedByDependency(graph *loader.Graph) []*loader.Module {
	visited := make(map[string]bool, len(graph.Modules))
	inProgress := make(map[string]bool, len(graph.Modules))
	order := make([]*loader.Module, 0, len(graph.Modules))

	var visit func(mod *loader.Module)
	visit = func(mod *loader.Module) {
		if visited[mod.Path] || inProgress[mod.Path] {
			return
		}
		inProgress[mod.Path] = true
		for _, edge := range mod.Imports {
			if dep, ok := graph.Get(edge.Resolved); ok {
				visit(dep)
			}
		}
		inProgress[mod.Path] = false
		visited[mod.Path] = true
		order = append(order, mod)
	}

	for _, mod := range graph.Modules {
		visit(mod)
	}
	return order
}
