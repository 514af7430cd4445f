package types

import "strings"

// Tuple is a fixed-length, length-exact, element-wise-typed sequence
// storable as a single value (spec §3 Tuple, distinct from UnboxedTuple).
type Tuple struct {
	Elements []Type
}

func (t *Tuple) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, e := range t.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (t *Tuple) TypeKind() string { return string(KindTuple) }

func (t *Tuple) Equals(o Type) bool {
	ot, ok := o.(*Tuple)
	if !ok || len(ot.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !sameType(t.Elements[i], ot.Elements[i]) {
			return false
		}
	}
	return true
}

// UnboxedTuple is a multi-value sequence distinct from Tuple: it cannot
// be stored as a single value in a field (spec §3). It lowers to
// WebAssembly multi-value returns.
type UnboxedTuple struct {
	Elements []Type
}

func (t *UnboxedTuple) String() string {
	var sb strings.Builder
	sb.WriteString("(|")
	for i, e := range t.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString("|)")
	return sb.String()
}

func (t *UnboxedTuple) TypeKind() string { return string(KindUnboxedTuple) }

func (t *UnboxedTuple) Equals(o Type) bool {
	ot, ok := o.(*UnboxedTuple)
	if !ok || len(ot.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !sameType(t.Elements[i], ot.Elements[i]) {
			return false
		}
	}
	return true
}
