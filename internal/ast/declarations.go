package ast

import "github.com/elematic/zena-sub003/internal/token"

// Decorator is `@external("mod","name")` or `@intrinsic("wasm.op")`
// attached to the following declare-function (spec §4.2).
type Decorator struct {
	Token token.Token
	Name  string
	Args  []string
}

// VarDeclaration is `let`/`var name: Type = init;` with an optional
// destructuring pattern in place of a bare name.
type VarDeclaration struct {
	declBase
	Token   token.Token
	Mutable bool // true for `var`, false for `let`
	Pattern Pattern
	Type    TypeAnnotation // nil when inferred
	Init    Expression     // nil for `declare`d bindings
}

func (d *VarDeclaration) statementNode()      {}
func (d *VarDeclaration) declNode()           {}
func (d *VarDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *VarDeclaration) String() string      { return "let/var " + d.Pattern.String() }
func (d *VarDeclaration) Name() string {
	if id, ok := d.Pattern.(*IdentifierPattern); ok {
		return id.Name
	}
	return ""
}

// FunctionDeclaration is a top-level or nested named function.
type FunctionDeclaration struct {
	declBase
	Token      token.Token
	Decorators []Decorator
	Fn         *FunctionExpression
}

func (d *FunctionDeclaration) statementNode()      {}
func (d *FunctionDeclaration) declNode()           {}
func (d *FunctionDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *FunctionDeclaration) String() string      { return d.Fn.String() }
func (d *FunctionDeclaration) Name() string        { return d.Fn.Name }

// DeclareFunctionDeclaration is `declare function name(...): T;` — a
// host import (`@external`) or emitter intrinsic (`@intrinsic`), never
// both, never neither (checked by the checker).
type DeclareFunctionDeclaration struct {
	declBase
	Token      token.Token
	Decorators []Decorator
	Name_      string
	TypeParams []TypeParam
	Params     []Param
	ReturnType TypeAnnotation
}

func (d *DeclareFunctionDeclaration) statementNode()      {}
func (d *DeclareFunctionDeclaration) declNode()           {}
func (d *DeclareFunctionDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *DeclareFunctionDeclaration) String() string      { return "declare function " + d.Name_ }
func (d *DeclareFunctionDeclaration) Name() string        { return d.Name_ }

// TypeAliasDeclaration is `type Name<T> = TypeAnnotation;`.
type TypeAliasDeclaration struct {
	declBase
	Token      token.Token
	Name_      string
	TypeParams []TypeParam
	Value      TypeAnnotation
}

func (d *TypeAliasDeclaration) statementNode()      {}
func (d *TypeAliasDeclaration) declNode()           {}
func (d *TypeAliasDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *TypeAliasDeclaration) String() string      { return "type " + d.Name_ }
func (d *TypeAliasDeclaration) Name() string        { return d.Name_ }

// SymbolDeclaration is `symbol Name;` — introduces a fresh, identity
// distinct Symbol type (spec §3).
type SymbolDeclaration struct {
	declBase
	Token token.Token
	Name_ string
}

func (d *SymbolDeclaration) statementNode()      {}
func (d *SymbolDeclaration) declNode()           {}
func (d *SymbolDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *SymbolDeclaration) String() string      { return "symbol " + d.Name_ }
func (d *SymbolDeclaration) Name() string        { return d.Name_ }

// ImportSpecifier is one `name` or `name as local` entry of an import
// declaration.
type ImportSpecifier struct {
	Imported string
	Local    string
}

// ImportDeclaration is `import { a, b as c } from "specifier";`. The
// checker synthesizes additional ImportDeclaration nodes for prelude
// symbols actually used (spec §4.5); those synthesized nodes have
// Synthesized set so the bundler can distinguish them for diagnostics
// but treats them identically otherwise.
type ImportDeclaration struct {
	Token       token.Token
	Specifiers  []ImportSpecifier
	Specifier   string
	Synthesized bool
}

func (d *ImportDeclaration) statementNode()      {}
func (d *ImportDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *ImportDeclaration) String() string      { return "import {...} from \"" + d.Specifier + "\"" }
