package ast

import "github.com/elematic/zena-sub003/internal/token"

// Param is a function/arrow parameter.
type Param struct {
	Name     string
	Type     TypeAnnotation // nil when inferred from context
	Default  Expression     // nil when required
	Variadic bool
}

// FunctionExpression is a named or anonymous function/arrow literal.
// Arrow literals with an expression body store it in ExprBody; block
// bodies use Body.
type FunctionExpression struct {
	Token      token.Token
	Name       string // "" for anonymous arrows
	TypeParams []TypeParam
	Params     []Param
	ReturnType TypeAnnotation // nil when inferred
	Body       *BlockStatement
	ExprBody   Expression
	IsArrow    bool
}

func (e *FunctionExpression) expressionNode()     {}
func (e *FunctionExpression) Pos() token.Position { return e.Token.Pos }
func (e *FunctionExpression) String() string {
	if e.Name != "" {
		return "function " + e.Name + "(...)"
	}
	return "(...) => ..."
}

// TypeParam is a generic type parameter declaration: `T extends C = D`.
type TypeParam struct {
	Name       string
	Constraint TypeAnnotation
	Default    TypeAnnotation
}

// MatchArm is one `case pattern => body` arm of a match expression.
type MatchArm struct {
	Pattern Pattern
	Guard   Expression // nil when absent
	Body    Expression
}

// MatchExpression is `match (scrutinee) { case ... }`.
type MatchExpression struct {
	Token     token.Token
	Scrutinee Expression
	Arms      []MatchArm
}

func (e *MatchExpression) expressionNode()     {}
func (e *MatchExpression) Pos() token.Position { return e.Token.Pos }
func (e *MatchExpression) String() string      { return "match (...) {...}" }

// TemplatePart is one cooked/raw text segment of a template literal.
type TemplatePart struct {
	Cooked string
	Raw    string
}

// TemplateLiteral is a backtick template, possibly with `${…}`
// substitutions. Quasis has len(Subs)+1 entries.
type TemplateLiteral struct {
	Token  token.Token
	Quasis []TemplatePart
	Subs   []Expression
	Tag    Expression // non-nil for tagged templates: tag`...`
}

func (e *TemplateLiteral) expressionNode()     {}
func (e *TemplateLiteral) Pos() token.Position { return e.Token.Pos }
func (e *TemplateLiteral) String() string      { return "`...`" }

// RecordField is one `name: value` (or shorthand / spread / computed)
// entry of a record literal.
type RecordField struct {
	Key      string     // "" when Computed is set
	Computed Expression // non-nil for `[expr]: value`
	Value    Expression // nil for a `...spread` entry
	Spread   Expression // non-nil for `...spread`
	Shorthand bool
}

// RecordLiteral is `{ x, y: 1, ...rest, [k]: v }`.
type RecordLiteral struct {
	Token  token.Token
	Fields []RecordField
}

func (e *RecordLiteral) expressionNode()     {}
func (e *RecordLiteral) Pos() token.Position { return e.Token.Pos }
func (e *RecordLiteral) String() string      { return "{...}" }

// TupleLiteral is `(a, b, c)` with at least two elements, or the empty
// `()` with none — single parenthesized expressions parse as
// GroupedExpression instead.
type TupleLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (e *TupleLiteral) expressionNode()     {}
func (e *TupleLiteral) Pos() token.Position { return e.Token.Pos }
func (e *TupleLiteral) String() string      { return "(tuple...)" }

// UnboxedTupleLiteral is a multi-value sequence; elements may be `_`
// (parsed as *Hole) meaning "emitter fills a default value".
type UnboxedTupleLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (e *UnboxedTupleLiteral) expressionNode()     {}
func (e *UnboxedTupleLiteral) Pos() token.Position { return e.Token.Pos }
func (e *UnboxedTupleLiteral) String() string      { return "(|tuple...|)" }

// ArrayLiteral is `[a, b, c]`.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (e *ArrayLiteral) expressionNode()     {}
func (e *ArrayLiteral) Pos() token.Position { return e.Token.Pos }
func (e *ArrayLiteral) String() string      { return "[...]" }
