// Package types defines the canonical, interned type representation that
// the checker and bundler share (spec §4.4, §3 "Type").
//
// Every Type is a tagged variant reached through the Type interface;
// concrete cases live in their own file the way the teacher's
// internal/types package splits classes_test.go / interface_type_test.go
// / function_type_test.go / compound_types_test.go per concern.
package types

import "fmt"

// Kind tags the concrete case of a Type.
type Kind string

const (
	KindPrimitive    Kind = "PRIMITIVE"
	KindByteArray    Kind = "BYTE_ARRAY"
	KindArray        Kind = "ARRAY"
	KindClass        Kind = "CLASS"
	KindInterface    Kind = "INTERFACE"
	KindMixin        Kind = "MIXIN"
	KindRecord       Kind = "RECORD"
	KindTuple        Kind = "TUPLE"
	KindUnboxedTuple Kind = "UNBOXED_TUPLE"
	KindUnion        Kind = "UNION"
	KindFunction     Kind = "FUNCTION"
	KindTypeParam    Kind = "TYPE_PARAMETER"
	KindSymbol       Kind = "SYMBOL"
)

// Type is implemented by every type-system node. Equals and TypeKind
// give the checker and the intern pool the structural-equality and
// tagging vocabulary spec §3/§4.4 require; String is for diagnostics.
type Type interface {
	String() string
	TypeKind() string
	Equals(other Type) bool
}

// Primitive is a built-in scalar, or one of the special markers (void,
// never, null, any) spec §3 lists alongside the numeric/bool kinds.
type Primitive struct {
	name string
}

func (p *Primitive) String() string       { return p.name }
func (p *Primitive) TypeKind() string     { return string(KindPrimitive) }
func (p *Primitive) Equals(o Type) bool {
	op, ok := o.(*Primitive)
	return ok && op.name == p.name
}

// IsReference reports whether a value of this primitive type is
// represented as a WebAssembly reference rather than an unboxed scalar.
// Only reference primitives (and null) may appear as a Union
// alternative — spec §3 invariant.
func (p *Primitive) IsReference() bool {
	return p == Null || p == Any
}

var (
	I32   = &Primitive{"i32"}
	I64   = &Primitive{"i64"}
	U32   = &Primitive{"u32"}
	U64   = &Primitive{"u64"}
	F32   = &Primitive{"f32"}
	F64   = &Primitive{"f64"}
	Bool  = &Primitive{"bool"}
	Void  = &Primitive{"void"}
	Never = &Primitive{"never"}
	Null  = &Primitive{"null"}
	Any   = &Primitive{"any"}
)

// primitivesByName backs PrimitiveByName lookups from the parser/checker.
var primitivesByName = map[string]*Primitive{
	"i32": I32, "i64": I64, "u32": U32, "u64": U64,
	"f32": F32, "f64": F64, "bool": Bool, "void": Void,
	"never": Never, "null": Null, "any": Any,
}

// PrimitiveByName looks up one of the fixed primitive singletons.
func PrimitiveByName(name string) (*Primitive, bool) {
	p, ok := primitivesByName[name]
	return p, ok
}

// IsNumeric reports whether t is one of the numeric primitives.
func IsNumeric(t Type) bool {
	p, ok := t.(*Primitive)
	if !ok {
		return false
	}
	switch p {
	case I32, I64, U32, U64, F32, F64:
		return true
	}
	return false
}

// IsFloat reports whether t is f32 or f64.
func IsFloat(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p == F32 || p == F64)
}

// IsSigned reports whether t is a signed integer primitive.
func IsSigned(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p == I32 || p == I64)
}

// IsUnsigned reports whether t is an unsigned integer primitive.
func IsUnsigned(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p == U32 || p == U64)
}

// ByteArray is an opaque reference to an array of bytes.
type ByteArray struct{}

func (b *ByteArray) String() string   { return "ByteArray" }
func (b *ByteArray) TypeKind() string { return string(KindByteArray) }
func (b *ByteArray) Equals(o Type) bool {
	_, ok := o.(*ByteArray)
	return ok
}

// Array is a homogeneous, growable array of Element.
type Array struct {
	Element Type
}

func (a *Array) String() string   { return fmt.Sprintf("Array<%s>", a.Element.String()) }
func (a *Array) TypeKind() string { return string(KindArray) }
func (a *Array) Equals(o Type) bool {
	oa, ok := o.(*Array)
	return ok && sameType(a.Element, oa.Element)
}

// sameType is the structural equality helper used throughout this
// package before values are necessarily interned (e.g. during
// construction, prior to the intern-pool lookup that gives identity).
func sameType(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}
