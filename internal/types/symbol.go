package types

// Symbol is a nominal, identity-carrying type produced by each `symbol`
// declaration (spec glossary). Two Symbol instances are never
// structurally equal to each other even if their DebugName matches —
// each `symbol` declaration creates a type fresh by construction, so
// equality here is pointer identity by design, not merely in practice.
type Symbol struct {
	DebugName string
}

func NewSymbol(debugName string) *Symbol {
	return &Symbol{DebugName: debugName}
}

func (s *Symbol) String() string   { return s.DebugName }
func (s *Symbol) TypeKind() string { return string(KindSymbol) }
func (s *Symbol) Equals(o Type) bool {
	os, ok := o.(*Symbol)
	return ok && os == s
}
