// Package ast defines the Abstract Syntax Tree produced by the parser.
//
// Every node is immutable after parsing, with two exceptions noted by
// spec §3: Declaration nodes carry a mutable Exported/ExportName pair
// written by the bundler, and TypeAnnotation nodes carry a mutable
// InferredType pointer written by the checker. All other semantic
// results (expression types, resolved bindings) live in side-tables
// keyed by node identity — see internal/checker — rather than on the
// node itself, per spec §9's "mutating inferredType on AST" redesign
// note.
package ast

import "github.com/elematic/zena-sub003/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a top-level (or class-member) binding-introducing
// statement. The bundler mutates Exported/ExportName on these nodes.
type Declaration interface {
	Statement
	declNode()
	Name() string
	IsExported() bool
	SetExported(bool)
	ExportName() string
	SetExportName(string)
}

// declBase is embedded by every concrete declaration to provide the
// mutable export bookkeeping the bundler needs.
type declBase struct {
	exported   bool
	exportName string
}

func (d *declBase) IsExported() bool        { return d.exported }
func (d *declBase) SetExported(v bool)      { d.exported = v }
func (d *declBase) ExportName() string      { return d.exportName }
func (d *declBase) SetExportName(s string)  { d.exportName = s }

// Program is the root node of a single module's AST.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String() + "\n"
	}
	return out
}

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Value }

// Hole is the `_` marker usable in unboxed-tuple literal slots.
type Hole struct {
	Token token.Token
}

func (h *Hole) expressionNode()     {}
func (h *Hole) Pos() token.Position { return h.Token.Pos }
func (h *Hole) String() string      { return "_" }

// IntLiteral is an integer literal (decimal or hex).
type IntLiteral struct {
	Token token.Token
	Value int64
}

func (l *IntLiteral) expressionNode()     {}
func (l *IntLiteral) Pos() token.Position { return l.Token.Pos }
func (l *IntLiteral) String() string      { return l.Token.Literal }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (l *FloatLiteral) expressionNode()     {}
func (l *FloatLiteral) Pos() token.Position { return l.Token.Pos }
func (l *FloatLiteral) String() string      { return l.Token.Literal }

// StringLiteral is a single-quoted or double-quoted string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (l *StringLiteral) expressionNode()     {}
func (l *StringLiteral) Pos() token.Position { return l.Token.Pos }
func (l *StringLiteral) String() string      { return "\"" + l.Value + "\"" }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (l *BoolLiteral) expressionNode()     {}
func (l *BoolLiteral) Pos() token.Position { return l.Token.Pos }
func (l *BoolLiteral) String() string      { return l.Token.Literal }

// NullLiteral is the `null` literal.
type NullLiteral struct {
	Token token.Token
}

func (l *NullLiteral) expressionNode()     {}
func (l *NullLiteral) Pos() token.Position { return l.Token.Pos }
func (l *NullLiteral) String() string      { return "null" }

// BinaryExpression is a binary operator application.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *BinaryExpression) expressionNode()     {}
func (e *BinaryExpression) Pos() token.Position { return e.Token.Pos }
func (e *BinaryExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// UnaryExpression is a prefix unary operator application.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (e *UnaryExpression) expressionNode()     {}
func (e *UnaryExpression) Pos() token.Position { return e.Token.Pos }
func (e *UnaryExpression) String() string      { return "(" + e.Operator + e.Operand.String() + ")" }

// GroupedExpression is a parenthesized single expression: `(x)` always
// denotes grouping, never a one-element unboxed tuple (spec §4.2).
type GroupedExpression struct {
	Token token.Token
	Inner Expression
}

func (e *GroupedExpression) expressionNode()     {}
func (e *GroupedExpression) Pos() token.Position { return e.Token.Pos }
func (e *GroupedExpression) String() string      { return "(" + e.Inner.String() + ")" }

// CallExpression is a function/method invocation.
type CallExpression struct {
	Token    token.Token // '('
	Callee   Expression
	TypeArgs []TypeAnnotation
	Args     []Expression
}

func (e *CallExpression) expressionNode()     {}
func (e *CallExpression) Pos() token.Position { return e.Token.Pos }
func (e *CallExpression) String() string      { return e.Callee.String() + "(...)" }

// NewExpression is `new ClassName(args)`.
type NewExpression struct {
	Token    token.Token
	Class    TypeAnnotation
	Args     []Expression
}

func (e *NewExpression) expressionNode()     {}
func (e *NewExpression) Pos() token.Position { return e.Token.Pos }
func (e *NewExpression) String() string      { return "new " + e.Class.String() + "(...)" }

// MemberExpression is `obj.name`.
type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property string
	Optional bool // `?.`
}

func (e *MemberExpression) expressionNode()     {}
func (e *MemberExpression) Pos() token.Position { return e.Token.Pos }
func (e *MemberExpression) String() string      { return e.Object.String() + "." + e.Property }

// IndexExpression is `obj[index]`.
type IndexExpression struct {
	Token  token.Token
	Object Expression
	Index  Expression
}

func (e *IndexExpression) expressionNode()     {}
func (e *IndexExpression) Pos() token.Position { return e.Token.Pos }
func (e *IndexExpression) String() string {
	return e.Object.String() + "[" + e.Index.String() + "]"
}

// AssignExpression is `target = value`. The parser only builds it with
// Operator == "="; compound forms such as "+=" are not parsed.
type AssignExpression struct {
	Token    token.Token
	Target   Expression
	Operator string
	Value    Expression
}

func (e *AssignExpression) expressionNode()     {}
func (e *AssignExpression) Pos() token.Position { return e.Token.Pos }
func (e *AssignExpression) String() string {
	return e.Target.String() + " " + e.Operator + " " + e.Value.String()
}

// CastExpression is `expr as Type`.
type CastExpression struct {
	Token token.Token
	Expr  Expression
	Type  TypeAnnotation
}

func (e *CastExpression) expressionNode()     {}
func (e *CastExpression) Pos() token.Position { return e.Token.Pos }
func (e *CastExpression) String() string      { return e.Expr.String() + " as " + e.Type.String() }

// IsExpression is `expr is Type`.
type IsExpression struct {
	Token token.Token
	Expr  Expression
	Type  TypeAnnotation
}

func (e *IsExpression) expressionNode()     {}
func (e *IsExpression) Pos() token.Position { return e.Token.Pos }
func (e *IsExpression) String() string      { return e.Expr.String() + " is " + e.Type.String() }
