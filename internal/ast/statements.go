package ast

import "github.com/elematic/zena-sub003/internal/token"

// BlockStatement is `{ stmt* }`.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (s *BlockStatement) statementNode()      {}
func (s *BlockStatement) Pos() token.Position { return s.Token.Pos }
func (s *BlockStatement) String() string      { return "{...}" }

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Token token.Token
	Expr  Expression
}

func (s *ExpressionStatement) statementNode()      {}
func (s *ExpressionStatement) Pos() token.Position { return s.Token.Pos }
func (s *ExpressionStatement) String() string      { return s.Expr.String() }

// IfStatement is `if (cond) then [else alt]`.
type IfStatement struct {
	Token token.Token
	Cond  Expression
	Then  Statement
	Else  Statement // nil when absent
}

func (s *IfStatement) statementNode()      {}
func (s *IfStatement) Pos() token.Position { return s.Token.Pos }
func (s *IfStatement) String() string      { return "if (...) ..." }

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token token.Token
	Cond  Expression
	Body  Statement
}

func (s *WhileStatement) statementNode()      {}
func (s *WhileStatement) Pos() token.Position { return s.Token.Pos }
func (s *WhileStatement) String() string      { return "while (...) ..." }

// ForStatement is a C-style `for (init; cond; update) body`; any clause
// may be nil.
type ForStatement struct {
	Token  token.Token
	Init   Statement
	Cond   Expression
	Update Expression
	Body   Statement
}

func (s *ForStatement) statementNode()      {}
func (s *ForStatement) Pos() token.Position { return s.Token.Pos }
func (s *ForStatement) String() string      { return "for (...) ..." }

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for a bare `return;`
}

func (s *ReturnStatement) statementNode()      {}
func (s *ReturnStatement) Pos() token.Position { return s.Token.Pos }
func (s *ReturnStatement) String() string      { return "return ..." }

// BreakStatement is `break;`.
type BreakStatement struct{ Token token.Token }

func (s *BreakStatement) statementNode()      {}
func (s *BreakStatement) Pos() token.Position { return s.Token.Pos }
func (s *BreakStatement) String() string      { return "break" }

// ContinueStatement is `continue;`.
type ContinueStatement struct{ Token token.Token }

func (s *ContinueStatement) statementNode()      {}
func (s *ContinueStatement) Pos() token.Position { return s.Token.Pos }
func (s *ContinueStatement) String() string      { return "continue" }

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	Token token.Token
	Value Expression
}

func (s *ThrowStatement) statementNode()      {}
func (s *ThrowStatement) Pos() token.Position { return s.Token.Pos }
func (s *ThrowStatement) String() string      { return "throw ..." }

// CatchClause is `catch (name: Type) { ... }`.
type CatchClause struct {
	Name string
	Type TypeAnnotation // nil catches any
	Body *BlockStatement
}

// TryStatement is `try { ... } catch (...) { ... } finally { ... }`.
type TryStatement struct {
	Token   token.Token
	Block   *BlockStatement
	Catches []CatchClause
	Finally *BlockStatement // nil when absent
}

func (s *TryStatement) statementNode()      {}
func (s *TryStatement) Pos() token.Position { return s.Token.Pos }
func (s *TryStatement) String() string      { return "try {...}" }
