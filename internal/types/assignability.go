package types

// AssignableTo decides whether a value of type src may be used where
// dst is expected, per the rules enumerated in spec §4.4.
func AssignableTo(src, dst Type) bool {
	if src == nil || dst == nil {
		return false
	}
	if sameType(src, dst) {
		return true
	}
	if sameType(src, Never) {
		return true
	}
	if sameType(dst, Any) || sameType(src, Any) {
		return true
	}

	if sp, ok := src.(*Primitive); ok {
		if dp, ok := dst.(*Primitive); ok {
			return numericWidens(sp, dp)
		}
	}

	switch d := dst.(type) {
	case *Class:
		if s, ok := src.(*Class); ok {
			return s.IsSubclassOf(d)
		}
		return false
	case *Interface:
		if s, ok := src.(*Class); ok {
			return s.ImplementsInterface(d)
		}
		if s, ok := src.(*Interface); ok {
			return ifaceExtends(s, d)
		}
		return false
	case *Record:
		s, ok := src.(*Record)
		if !ok {
			return false
		}
		return recordWidthAssignable(s, d)
	case *Tuple:
		s, ok := src.(*Tuple)
		if !ok || len(s.Elements) != len(d.Elements) {
			return false
		}
		for i := range d.Elements {
			if !AssignableTo(s.Elements[i], d.Elements[i]) {
				return false
			}
		}
		return true
	case *UnboxedTuple:
		s, ok := src.(*UnboxedTuple)
		if !ok || len(s.Elements) != len(d.Elements) {
			return false
		}
		for i := range d.Elements {
			if !AssignableTo(s.Elements[i], d.Elements[i]) {
				return false
			}
		}
		return true
	case *Union:
		if su, ok := src.(*Union); ok {
			for _, a := range su.Alternatives {
				if !unionAccepts(d, a) {
					return false
				}
			}
			return true
		}
		return unionAccepts(d, src)
	case *Function:
		s, ok := src.(*Function)
		if !ok {
			return false
		}
		return functionAssignable(s, d)
	case *Array:
		s, ok := src.(*Array)
		return ok && sameType(s.Element, d.Element)
	}

	return false
}

func unionAccepts(u *Union, t Type) bool {
	for _, alt := range u.Alternatives {
		if AssignableTo(t, alt) {
			return true
		}
	}
	return false
}

// numericWidens implements the numeric widening lattice from spec §4.4:
// i32 <= i64 <= f64; f32 <= f64; i32 <= f32 <= f64; u32/u64 only widen
// among themselves, never implicitly to/from signed of the same width.
func numericWidens(s, d *Primitive) bool {
	if s == Bool || d == Bool {
		return s == d
	}
	if s == Void || d == Void {
		return s == d
	}
	switch {
	case s == I32 && (d == I32 || d == I64 || d == F32 || d == F64):
		return true
	case s == I64 && (d == I64 || d == F64):
		return true
	case s == F32 && (d == F32 || d == F64):
		return true
	case s == F64 && d == F64:
		return true
	case s == U32 && (d == U32 || d == U64):
		return true
	case s == U64 && d == U64:
		return true
	}
	return false
}

// recordWidthAssignable implements width subtyping (spec §4.4): every
// required field of dst must exist in src with an assignable type;
// extra fields in src are fine; dst's optional fields may be absent.
func recordWidthAssignable(src, dst *Record) bool {
	for _, name := range dst.FieldOrder {
		df := dst.fields[name]
		sf, ok := src.fields[name]
		if !ok {
			if df.Optional {
				continue
			}
			return false
		}
		if !AssignableTo(sf.Type, df.Type) {
			return false
		}
	}
	return true
}

// functionAssignable: contravariant parameters, covariant return (spec
// §4.4). Parameter counts must match exactly; optional trailing
// parameters are not taken into account, and no caller trims Params
// before calling this.
func functionAssignable(src, dst *Function) bool {
	if len(src.Params) != len(dst.Params) {
		return false
	}
	for i := range dst.Params {
		// contravariant: dst's declared param must be assignable TO src's
		if !AssignableTo(dst.Params[i], src.Params[i]) {
			return false
		}
	}
	return AssignableTo(src.ReturnType, dst.ReturnType)
}

func ifaceExtends(s, d *Interface) bool {
	if s == d {
		return true
	}
	for _, e := range s.Extends {
		if ifaceExtends(e, d) {
			return true
		}
	}
	return false
}
