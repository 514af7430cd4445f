package ast

import "github.com/elematic/zena-sub003/internal/token"

// Pattern is any destructuring/match pattern form (spec §3 Patterns).
type Pattern interface {
	Node
	patternNode()
}

// IdentifierPattern binds the matched value to a new name.
type IdentifierPattern struct {
	Token token.Token
	Name  string
}

func (p *IdentifierPattern) patternNode()        {}
func (p *IdentifierPattern) Pos() token.Position { return p.Token.Pos }
func (p *IdentifierPattern) String() string      { return p.Name }

// WildcardPattern is `_`: matches anything, binds nothing.
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) patternNode()        {}
func (p *WildcardPattern) Pos() token.Position { return p.Token.Pos }
func (p *WildcardPattern) String() string      { return "_" }

// LiteralPattern matches a literal value exactly.
type LiteralPattern struct {
	Token   token.Token
	Literal Expression
}

func (p *LiteralPattern) patternNode()        {}
func (p *LiteralPattern) Pos() token.Position { return p.Token.Pos }
func (p *LiteralPattern) String() string      { return p.Literal.String() }

// RecordPatternField is one field of a record pattern, optionally
// renamed (`{x as local}`) and optionally defaulted (`{x = 1}`), which
// spec §9 requires when the field being destructured is optional.
type RecordPatternField struct {
	Key     string
	Sub     Pattern
	Rename  string
	Default Expression
}

// RecordPattern destructures a record value by field name.
type RecordPattern struct {
	Token  token.Token
	Fields []RecordPatternField
	Rest   string // non-"" for `{...rest}`
}

func (p *RecordPattern) patternNode()        {}
func (p *RecordPattern) Pos() token.Position { return p.Token.Pos }
func (p *RecordPattern) String() string      { return "{pattern...}" }

// TuplePattern destructures a Tuple value positionally.
type TuplePattern struct {
	Token    token.Token
	Elements []Pattern
}

func (p *TuplePattern) patternNode()        {}
func (p *TuplePattern) Pos() token.Position { return p.Token.Pos }
func (p *TuplePattern) String() string      { return "(pattern...)" }

// UnboxedTuplePattern destructures an UnboxedTuple multi-value.
type UnboxedTuplePattern struct {
	Token    token.Token
	Elements []Pattern
}

func (p *UnboxedTuplePattern) patternNode()        {}
func (p *UnboxedTuplePattern) Pos() token.Position { return p.Token.Pos }
func (p *UnboxedTuplePattern) String() string      { return "(|pattern...|)" }

// ClassPattern matches an instance of ClassName, destructuring its
// fields: `ClassName { field as local }`.
type ClassPattern struct {
	Token      token.Token
	ClassName  string
	Fields     []RecordPatternField
}

func (p *ClassPattern) patternNode()        {}
func (p *ClassPattern) Pos() token.Position { return p.Token.Pos }
func (p *ClassPattern) String() string      { return p.ClassName + " {pattern...}" }

// AsPattern renames the whole matched value: `pattern as local`.
type AsPattern struct {
	Token token.Token
	Inner Pattern
	Name  string
}

func (p *AsPattern) patternNode()        {}
func (p *AsPattern) Pos() token.Position { return p.Token.Pos }
func (p *AsPattern) String() string      { return p.Inner.String() + " as " + p.Name }
