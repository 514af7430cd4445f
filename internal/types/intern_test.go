package types

import (
	"errors"
	"testing"
)

// ============================================================
// Interning identity
// ============================================================

func TestPool_InternArray_SameElementSamePointer(t *testing.T) {
	pool := NewPool()
	a := pool.InternArray(I32)
	b := pool.InternArray(I32)
	if a != b {
		t.Fatalf("InternArray(i32) returned distinct objects: %p != %p", a, b)
	}

	c := pool.InternArray(F64)
	if a == c {
		t.Fatalf("InternArray(i32) and InternArray(f64) interned to the same object")
	}
}

func TestPool_InternRecord_FieldOrderIndependent(t *testing.T) {
	tests := []struct {
		name   string
		first  []RecordField
		second []RecordField
	}{
		{
			name:   "identical order",
			first:  []RecordField{{Name: "x", Type: I32}, {Name: "y", Type: F64}},
			second: []RecordField{{Name: "x", Type: I32}, {Name: "y", Type: F64}},
		},
		{
			name:   "reversed order",
			first:  []RecordField{{Name: "x", Type: I32}, {Name: "y", Type: F64}},
			second: []RecordField{{Name: "y", Type: F64}, {Name: "x", Type: I32}},
		},
		{
			name:   "optional marker reversed",
			first:  []RecordField{{Name: "x", Type: I32, Optional: true}, {Name: "y", Type: Bool}},
			second: []RecordField{{Name: "y", Type: Bool}, {Name: "x", Type: I32, Optional: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool()
			r1 := pool.InternRecord(tt.first)
			r2 := pool.InternRecord(tt.second)
			if r1 != r2 {
				t.Fatalf("InternRecord did not dedupe across field order: %p != %p", r1, r2)
			}
			if got, want := r1.FieldOrder, tt.first; len(got) != len(want) {
				t.Fatalf("FieldOrder length = %d, want %d", len(got), len(want))
			}
		})
	}
}

func TestPool_InternRecord_DifferentFieldsDistinct(t *testing.T) {
	pool := NewPool()
	r1 := pool.InternRecord([]RecordField{{Name: "x", Type: I32}})
	r2 := pool.InternRecord([]RecordField{{Name: "x", Type: I64}})
	if r1 == r2 {
		t.Fatalf("records with different field types interned to the same object")
	}
}

func TestPool_InternTuple_SameElementsSamePointer(t *testing.T) {
	pool := NewPool()
	a := pool.InternTuple([]Type{I32, Bool})
	b := pool.InternTuple([]Type{I32, Bool})
	if a != b {
		t.Fatalf("InternTuple returned distinct objects for identical element lists")
	}

	c := pool.InternTuple([]Type{Bool, I32})
	if a == c {
		t.Fatalf("InternTuple treated element order as insignificant; tuples are positional")
	}
}

func TestPool_InternUnboxedTuple_SameElementsSamePointer(t *testing.T) {
	pool := NewPool()
	a := pool.InternUnboxedTuple([]Type{F32, F64})
	b := pool.InternUnboxedTuple([]Type{F32, F64})
	if a != b {
		t.Fatalf("InternUnboxedTuple returned distinct objects for identical element lists")
	}
}

func TestPool_InternFunction_SameSignatureSamePointer(t *testing.T) {
	pool := NewPool()
	a := pool.InternFunction([]Type{I32, I32}, Bool, false)
	b := pool.InternFunction([]Type{I32, I32}, Bool, false)
	if a != b {
		t.Fatalf("InternFunction returned distinct objects for identical signatures")
	}

	variadic := pool.InternFunction([]Type{I32, I32}, Bool, true)
	if a == variadic {
		t.Fatalf("InternFunction ignored the Variadic flag when deduping")
	}
}

func TestPool_InternUnion_SameAlternativesSamePointer(t *testing.T) {
	pool := NewPool()
	a, err := pool.InternUnion([]Type{Null, Any})
	if err != nil {
		t.Fatalf("InternUnion(Null, Any) returned error: %v", err)
	}
	b, err := pool.InternUnion([]Type{Any, Null})
	if err != nil {
		t.Fatalf("InternUnion(Any, Null) returned error: %v", err)
	}
	if a != b {
		t.Fatalf("InternUnion treated alternative order as significant; unions are sets")
	}
}

// ============================================================
// Union-primitive rejection (spec §3 invariant, §4.4 union validation)
// ============================================================

func TestNewUnion_RejectsNonReferencePrimitive(t *testing.T) {
	tests := []struct {
		name    string
		alts    []Type
		wantErr bool
	}{
		{name: "i32 alternative rejected", alts: []Type{I32, Null}, wantErr: true},
		{name: "bool alternative rejected", alts: []Type{Bool, Any}, wantErr: true},
		{name: "f64 alternative rejected", alts: []Type{F64}, wantErr: true},
		{name: "null and any both reference, accepted", alts: []Type{Null, Any}, wantErr: false},
		{name: "null alone accepted", alts: []Type{Null}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUnion(tt.alts)
			if tt.wantErr {
				var target *ErrPrimitiveInUnion
				if !errors.As(err, &target) {
					t.Fatalf("NewUnion(%v) error = %v, want *ErrPrimitiveInUnion", tt.alts, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewUnion(%v) returned unexpected error: %v", tt.alts, err)
			}
		})
	}
}

func TestNewUnion_FlattensNestedUnions(t *testing.T) {
	inner, err := NewUnion([]Type{Null, Any})
	if err != nil {
		t.Fatalf("building inner union: %v", err)
	}
	outer, err := NewUnion([]Type{inner, Null})
	if err != nil {
		t.Fatalf("NewUnion with a nested union alternative: %v", err)
	}
	if len(outer.Alternatives) != 2 {
		t.Fatalf("expected nested union to flatten and dedupe to 2 alternatives, got %d: %v", len(outer.Alternatives), outer.Alternatives)
	}
}
