package types

import (
	"fmt"
	"strings"
)

// Union is a sum type over Alternatives. Construction is validated by
// NewUnion: no alternative may be a non-reference primitive other than
// null (spec §3 invariant, §4.4 union validation) — a primitive-plus-null
// union would require boxing the primitive, which the language forbids.
type Union struct {
	Alternatives []Type
}

// ErrPrimitiveInUnion is returned by NewUnion when a non-reference
// primitive (other than null) is offered as an alternative.
type ErrPrimitiveInUnion struct {
	Offending Type
}

func (e *ErrPrimitiveInUnion) Error() string {
	return fmt.Sprintf("Union types cannot contain primitive types: %s", e.Offending.String())
}

// NewUnion builds a Union from a flattened, deduplicated alternative
// list. It re-validates on every call, so a union rebuilt at a generic
// instantiation site (e.g. Container<i32> where a field is `T | null`)
// fails with the same error a literal union annotation gets; Substitute
// turns that failure into Never.
func NewUnion(alternatives []Type) (*Union, error) {
	flat := flattenUnion(alternatives)
	for _, alt := range flat {
		if p, ok := alt.(*Primitive); ok && !p.IsReference() {
			return nil, &ErrPrimitiveInUnion{Offending: alt}
		}
	}
	return &Union{Alternatives: dedupeTypes(flat)}, nil
}

func flattenUnion(ts []Type) []Type {
	var out []Type
	for _, t := range ts {
		if u, ok := t.(*Union); ok {
			out = append(out, flattenUnion(u.Alternatives)...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

func dedupeTypes(ts []Type) []Type {
	var out []Type
	for _, t := range ts {
		dup := false
		for _, o := range out {
			if sameType(t, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

func (u *Union) String() string {
	var sb strings.Builder
	for i, a := range u.Alternatives {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}

func (u *Union) TypeKind() string { return string(KindUnion) }

// Equals treats unions as sets: every alternative of one must have a
// structurally-equal counterpart in the other (spec §4.4 union-to-union
// assignability uses the same per-alternative comparison).
func (u *Union) Equals(o Type) bool {
	ou, ok := o.(*Union)
	if !ok || len(ou.Alternatives) != len(u.Alternatives) {
		return false
	}
	for _, a := range u.Alternatives {
		found := false
		for _, b := range ou.Alternatives {
			if sameType(a, b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
