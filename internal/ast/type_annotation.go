package ast

import "github.com/elematic/zena-sub003/internal/token"

// TypeAnnotation is the mutable-after-parse node described in spec §3:
// the checker writes InferredType once it has resolved the annotation
// against the current scope. Concrete annotation shapes (union, record,
// tuple, function, …) are distinct Go types implementing this
// interface, each carrying its own shape-specific fields.
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
	// InferredTypeSlot returns a pointer to this node's mutable
	// inferred-type cell so the checker can fill it in place.
	InferredTypeSlot() *interface{}
}

type annotBase struct {
	inferredType interface{}
}

func (a *annotBase) typeAnnotationNode()          {}
func (a *annotBase) InferredTypeSlot() *interface{} { return &a.inferredType }

// NamedTypeAnnotation is `Foo`, `Foo<Bar, Baz>`, or `this`/`any`/`never`.
type NamedTypeAnnotation struct {
	annotBase
	Token    token.Token
	Name     string
	TypeArgs []TypeAnnotation
	IsThis   bool
}

func (t *NamedTypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *NamedTypeAnnotation) String() string      { return t.Name }

// UnionTypeAnnotation is `A | B | null`.
type UnionTypeAnnotation struct {
	annotBase
	Token        token.Token
	Alternatives []TypeAnnotation
}

func (t *UnionTypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *UnionTypeAnnotation) String() string      { return "(union)" }

// RecordTypeField describes one field of a record type annotation.
type RecordTypeField struct {
	Name     string
	Type     TypeAnnotation
	Optional bool
}

// RecordTypeAnnotation is `{ x: Int, y?: String }`.
type RecordTypeAnnotation struct {
	annotBase
	Token  token.Token
	Fields []RecordTypeField
}

func (t *RecordTypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *RecordTypeAnnotation) String() string      { return "{record type}" }

// TupleTypeAnnotation is `(A, B)`.
type TupleTypeAnnotation struct {
	annotBase
	Token    token.Token
	Elements []TypeAnnotation
}

func (t *TupleTypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *TupleTypeAnnotation) String() string      { return "(tuple type)" }

// UnboxedTupleTypeAnnotation is `(|A, B|)`.
type UnboxedTupleTypeAnnotation struct {
	annotBase
	Token    token.Token
	Elements []TypeAnnotation
}

func (t *UnboxedTupleTypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *UnboxedTupleTypeAnnotation) String() string      { return "(|unboxed tuple type|)" }

// FunctionTypeAnnotation is `(A, B) => C`.
type FunctionTypeAnnotation struct {
	annotBase
	Token      token.Token
	Params     []TypeAnnotation
	ReturnType TypeAnnotation
}

func (t *FunctionTypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *FunctionTypeAnnotation) String() string      { return "(function type)" }

// ArrayTypeAnnotation is `T[]`.
type ArrayTypeAnnotation struct {
	annotBase
	Token   token.Token
	Element TypeAnnotation
}

func (t *ArrayTypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *ArrayTypeAnnotation) String() string      { return t.Element.String() + "[]" }
