package types

import "strings"

// RecordField is one field of a Record type. Optional fields are
// statically typed as their non-null Type (spec §4.4): the `?` marker
// only affects width-subtyping and destructuring, never the stored type.
type RecordField struct {
	Name     string
	Type     Type
	Optional bool
}

// Record is a structural, width-subtyped type (spec §3). FieldOrder is
// kept alongside the name->field map (instead of relying on Go map
// iteration order) so that two records built with fields in different
// declaration order still intern to the same object and so downstream
// consumers (bundler IR, snapshot tests) see a deterministic field
// order — see SPEC_FULL.md's "stable-iteration guarantee" note.
type Record struct {
	fields     map[string]RecordField
	FieldOrder []string
}

// NewRecord builds a Record from fields in declaration order. Field
// order does not affect structural identity: two Records with the same
// field set intern identically regardless of the order fields were
// given in (spec §3 Type interning).
func NewRecord(fields []RecordField) *Record {
	r := &Record{fields: make(map[string]RecordField, len(fields))}
	for _, f := range fields {
		if _, exists := r.fields[f.Name]; !exists {
			r.FieldOrder = append(r.FieldOrder, f.Name)
		}
		r.fields[f.Name] = f
	}
	return r
}

// Field looks up a field by name.
func (r *Record) Field(name string) (RecordField, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// Fields returns the fields in declaration order.
func (r *Record) Fields() []RecordField {
	out := make([]RecordField, 0, len(r.FieldOrder))
	for _, name := range r.FieldOrder {
		out = append(out, r.fields[name])
	}
	return out
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	sorted := sortedFieldNames(r.fields)
	for i, name := range sorted {
		if i > 0 {
			sb.WriteString(", ")
		}
		f := r.fields[name]
		sb.WriteString(f.Name)
		if f.Optional {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		sb.WriteString(f.Type.String())
	}
	sb.WriteString("}")
	return sb.String()
}

func (r *Record) TypeKind() string { return string(KindRecord) }

// Equals implements structural equality independent of declaration
// order: two Records are equal iff they carry the same field set with
// the same types and optionality, regardless of insertion order.
func (r *Record) Equals(o Type) bool {
	or, ok := o.(*Record)
	if !ok || len(r.fields) != len(or.fields) {
		return false
	}
	for name, f := range r.fields {
		of, ok := or.fields[name]
		if !ok || of.Optional != f.Optional || !sameType(f.Type, of.Type) {
			return false
		}
	}
	return true
}

// sortedFieldNames returns field names sorted for deterministic String
// output; it does not affect Equals or interning, only display.
func sortedFieldNames(m map[string]RecordField) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
