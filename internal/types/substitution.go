package types

// Substitution maps a type parameter name to its argument type for one
// generic instantiation.
type Substitution map[string]Type

// Substitute walks t under sub, re-interning Classes, Arrays, and
// Records at the substitution site so that identity is preserved across
// every substitution call for the same argument list (spec §4.4,
// §8 "Substitution commutes with interning").
func Substitute(pool *Pool, t Type, sub Substitution) Type {
	if len(sub) == 0 {
		return t
	}
	switch v := t.(type) {
	case *TypeParameter:
		if repl, ok := sub[v.Name]; ok {
			return repl
		}
		return v
	case *Array:
		elem := Substitute(pool, v.Element, sub)
		return pool.InternArray(elem)
	case *Record:
		fields := make([]RecordField, 0, len(v.FieldOrder))
		for _, name := range v.FieldOrder {
			f := v.fields[name]
			fields = append(fields, RecordField{
				Name:     f.Name,
				Type:     Substitute(pool, f.Type, sub),
				Optional: f.Optional,
			})
		}
		return pool.InternRecord(fields)
	case *Tuple:
		elems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Substitute(pool, e, sub)
		}
		return pool.InternTuple(elems)
	case *UnboxedTuple:
		elems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Substitute(pool, e, sub)
		}
		return pool.InternUnboxedTuple(elems)
	case *Union:
		alts := make([]Type, len(v.Alternatives))
		for i, a := range v.Alternatives {
			alts[i] = Substitute(pool, a, sub)
		}
		u, err := pool.InternUnion(alts)
		if err != nil {
			// The substituted union is invalid (e.g. T became a
			// non-reference primitive); it is replaced by Never so
			// substitution never panics, and no diagnostic is reported
			// for it, here or by the checker.
			return Never
		}
		return u
	case *Function:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = Substitute(pool, p, sub)
		}
		ret := Substitute(pool, v.ReturnType, sub)
		return pool.InternFunction(params, ret, v.Variadic)
	case *Class:
		if len(v.TypeParams) == 0 {
			return v
		}
		return substituteClass(pool, v, sub)
	case *Interface:
		if len(v.TypeParams) == 0 {
			return v
		}
		return substituteInterface(pool, v, sub)
	default:
		return t
	}
}

func substituteClass(pool *Pool, c *Class, sub Substitution) *Class {
	args := make([]Type, len(c.TypeParams))
	for i, tp := range c.TypeParams {
		if repl, ok := sub[tp.Name]; ok {
			args[i] = repl
		} else if tp.Default != nil {
			args[i] = tp.Default
		} else {
			args[i] = Any
		}
	}
	inner := Substitution{}
	for k, v := range sub {
		inner[k] = v
	}
	for i, tp := range c.TypeParams {
		inner[tp.Name] = args[i]
	}

	inst := NewClass(c.Name)
	inst.TypeParams = c.TypeParams
	inst.TypeArgs = args
	inst.Final = c.Final
	inst.Abstract = c.Abstract
	inst.IsExtension = c.IsExtension
	if c.OnType != nil {
		inst.OnType = Substitute(pool, c.OnType, inner)
	}
	if c.Super != nil {
		inst.Super = Substitute(pool, c.Super, inner).(*Class)
	}
	for _, iface := range c.Implements {
		inst.Implements = append(inst.Implements, Substitute(pool, iface, inner).(*Interface))
	}
	for _, name := range c.FieldOrder {
		f := c.fields[name]
		inst.AddField(&FieldInfo{Name: f.Name, Type: Substitute(pool, f.Type, inner), Static: f.Static, Private: f.Private, Final: f.Final})
	}
	for _, name := range c.MethodOrder {
		m := c.methods[name]
		fn := Substitute(pool, m.Fn, inner).(*Function)
		inst.AddMethod(&MethodInfo{Name: m.Name, Fn: fn, Static: m.Static, Private: m.Private, Abstract: m.Abstract})
	}
	inst.VtableOrder = c.VtableOrder
	return pool.RegisterClass(inst)
}

func substituteInterface(pool *Pool, i *Interface, sub Substitution) *Interface {
	args := make([]Type, len(i.TypeParams))
	for idx, tp := range i.TypeParams {
		if repl, ok := sub[tp.Name]; ok {
			args[idx] = repl
		} else {
			args[idx] = Any
		}
	}
	inner := Substitution{}
	for k, v := range sub {
		inner[k] = v
	}
	for idx, tp := range i.TypeParams {
		inner[tp.Name] = args[idx]
	}

	inst := NewInterface(i.Name)
	inst.TypeParams = i.TypeParams
	inst.TypeArgs = args
	for _, name := range i.FieldOrder {
		f := i.fields[name]
		inst.AddField(&FieldInfo{Name: f.Name, Type: Substitute(pool, f.Type, inner)})
	}
	for _, name := range i.MethodOrder {
		m := i.methods[name]
		fn := Substitute(pool, m.Fn, inner).(*Function)
		inst.AddMethod(&MethodInfo{Name: m.Name, Fn: fn})
	}
	return pool.RegisterInterface(inst)
}
