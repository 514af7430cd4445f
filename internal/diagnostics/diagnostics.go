// Package diagnostics implements the error/warning bag shared by the
// parser, checker, and bundler (spec §4, §6, §7).
//
// Display formatting — ANSI color, carets pointing at source — is an
// external concern per spec §6 and is deliberately not implemented
// here, unlike the teacher's internal/errors.CompilerError which bakes
// in terminal rendering; this package only carries the structured data
// a host-side formatter would consume.
package diagnostics

import "github.com/elematic/zena-sub003/internal/token"

// Severity distinguishes fatal diagnostics from advisory ones.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Code space is partitioned by compilation phase, per spec §4.5:
// 1xxx parser, 2xxx checker, 3xxx emitter (out of scope, reserved),
// 9000+ internal compiler errors.
type Code int

const (
	UnexpectedToken Code = 1000 + iota
	ExpectedToken
)

const (
	DuplicateDeclaration Code = 2000 + iota
	TypeMismatch
	SymbolNotFound
	ArgumentCountMismatch
	PropertyNotFound
	NotCallable
	NotIndexable
	GenericTypeArgumentMismatch
	ConstructorInMixin
	AbstractMethodNotImplemented
	CannotInstantiateAbstractClass
	ModuleNotFound
	ExtensionClassField
	UnknownIntrinsic
	UnreachableCode
	DecoratorNotAllowed
	MissingExternalOrIntrinsic
	ReturnOutsideFunction
	BreakOutsideLoop
	ContinueOutsideLoop
	DestructureOptionalWithoutDefault
	TopLevelDestructuringUnsupported
	NonExhaustiveMatch
)

const (
	InternalError Code = 9000
)

// Location pins a diagnostic to a source span within a file.
type Location struct {
	File   string
	Start  token.Position
	Length int
	Line   int
	Column int
}

// Diagnostic is one error or warning, matching the wire shape spec §6
// requires consumers see: {code, severity, message, location?}.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Location *Location
}

// Bag accumulates diagnostics across parsing, checking, and bundling.
// It never panics on a user error (spec §7): callers append and keep
// going; only an InternalError is reserved for invariant violations and
// is never swallowed by the caller discarding the bag.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag { return &Bag{} }

func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

func (b *Bag) Addf(code Code, severity Severity, loc *Location, message string) {
	b.Add(Diagnostic{Code: code, Severity: severity, Message: message, Location: loc})
}

// Error is a convenience for the common case of a SeverityError entry.
func (b *Bag) Error(code Code, loc *Location, message string) {
	b.Addf(code, SeverityError, loc, message)
}

// Warning is a convenience for a SeverityWarning entry.
func (b *Bag) Warning(code Code, loc *Location, message string) {
	b.Addf(code, SeverityWarning, loc, message)
}

// Internal records an invariant violation. Per spec §7, these are never
// swallowed: callers should treat a non-empty Internal diagnostic as
// fatal regardless of how they otherwise triage the bag.
func (b *Bag) Internal(loc *Location, message string) {
	b.Addf(InternalError, SeverityError, loc, message)
}

func (b *Bag) All() []Diagnostic { return b.items }

// HasErrors reports whether any entry has SeverityError — spec §7's
// "if any diagnostic has severity Error, downstream consumers are
// expected to refuse emission" check, made into a single call.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Merge appends other's entries onto b, used to combine a module's
// bag into the Compiler-wide aggregate view (SPEC_FULL.md
// "Diagnostics() aggregate view").
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// ByCode filters entries by diagnostic code.
func (b *Bag) ByCode(code Code) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}
