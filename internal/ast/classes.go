package ast

import "github.com/elematic/zena-sub003/internal/token"

// FieldDeclaration is a class/interface/mixin/record instance field.
type FieldDeclaration struct {
	Name     string
	Type     TypeAnnotation
	Init     Expression
	Static   bool
	Private  bool // `#name`
	Final    bool
}

// AccessorDeclaration is `name: T { get {...} set(v) {...} }`.
type AccessorDeclaration struct {
	Name     string
	Type     TypeAnnotation
	Getter   *BlockStatement
	Setter   *BlockStatement
	SetParam string
	Final    bool
	Static   bool
}

// MethodDeclaration is a class/interface/mixin method, including the
// `#new` constructor (IsConstructor) and operator overloads
// (Operator != "").
type MethodDeclaration struct {
	Name        string
	Fn          *FunctionExpression
	Static      bool
	Private     bool
	Abstract    bool
	Final       bool
	Operator    string // "[]", "[]=", "==", "+", … or ""
	IsConstructor bool
}

// ClassDeclaration is `[final|abstract] [extension] class Name<T>
// extends Super implements I1, I2 with M1, M2 [on T] { ... }`.
//
// OnType is set only for extension classes and holds the annotation of
// the underlying non-class type the class attaches members to.
type ClassDeclaration struct {
	declBase
	Token        token.Token
	Name_        string
	TypeParams   []TypeParam
	Super        TypeAnnotation
	Implements   []TypeAnnotation
	Mixins       []TypeAnnotation
	OnType       TypeAnnotation
	Final        bool
	Abstract     bool
	IsExtension  bool
	Fields       []FieldDeclaration
	Accessors    []AccessorDeclaration
	Methods      []MethodDeclaration
}

func (d *ClassDeclaration) statementNode()      {}
func (d *ClassDeclaration) declNode()           {}
func (d *ClassDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *ClassDeclaration) String() string      { return "class " + d.Name_ }
func (d *ClassDeclaration) Name() string        { return d.Name_ }

// InterfaceDeclaration is `interface Name<T> extends I1, I2 { ... }`.
type InterfaceDeclaration struct {
	declBase
	Token      token.Token
	Name_      string
	TypeParams []TypeParam
	Extends    []TypeAnnotation
	Fields     []FieldDeclaration
	Methods    []MethodDeclaration
}

func (d *InterfaceDeclaration) statementNode()      {}
func (d *InterfaceDeclaration) declNode()           {}
func (d *InterfaceDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *InterfaceDeclaration) String() string      { return "interface " + d.Name_ }
func (d *InterfaceDeclaration) Name() string        { return d.Name_ }

// MixinDeclaration is `mixin Name<T> on Constraint { ... }`. Mixins may
// not declare a constructor (spec glossary); the parser accepts a
// `#new` method syntactically and the checker rejects it with
// ConstructorInMixin.
type MixinDeclaration struct {
	declBase
	Token      token.Token
	Name_      string
	TypeParams []TypeParam
	On         TypeAnnotation
	Fields     []FieldDeclaration
	Methods    []MethodDeclaration
}

func (d *MixinDeclaration) statementNode()      {}
func (d *MixinDeclaration) declNode()           {}
func (d *MixinDeclaration) Pos() token.Position { return d.Token.Pos }
func (d *MixinDeclaration) String() string      { return "mixin " + d.Name_ }
func (d *MixinDeclaration) Name() string        { return d.Name_ }
