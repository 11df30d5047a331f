package jsonccst

// Lookup walks path (a sequence of object keys) starting from this
// object and returns the node reached, or (nil, false) if any segment is
// missing or the path descends through a non-object value before it is
// exhausted.
func (o *ObjectNode) Lookup(path ...string) (Node, bool) {
	var cur Node = o
	for _, seg := range path {
		obj, ok := cur.(*ObjectNode)
		if !ok {
			return nil, false
		}
		p := obj.Get(seg)
		if p == nil {
			return nil, false
		}
		cur = p.Value
	}
	return cur, true
}

// Keys returns the object's property keys in source order.
func (o *ObjectNode) Keys() []string {
	keys := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		keys[i] = p.KeyText()
	}
	return keys
}

// Value extracts the object's contents into a plain Value graph,
// decoding every leaf node along the way. This is how the reconciler and
// tests obtain the value graph the CST currently represents without
// re-parsing the source text.
func (o *ObjectNode) Value() Value {
	ov := NewObjectValue()
	for _, p := range o.Properties {
		ov.Set(p.KeyText(), nodeValue(p.Value))
	}
	return Obj(ov)
}

// nodeValue extracts the plain Value a CST node currently represents.
func nodeValue(n Node) Value {
	switch t := n.(type) {
	case *StringNode:
		return String(t.Value())
	case *NumberNode:
		f, _ := t.Float64()
		return Value{Kind: ValueNumber, Number: NumberValue{Float64: f, Raw: t.Raw}}
	case *BoolNode:
		return Bool(t.Value())
	case *NullNode:
		return Null()
	case *ArrayNode:
		vs := make([]Value, len(t.Elements))
		for i, el := range t.Elements {
			vs[i] = nodeValue(el)
		}
		return Arr(vs...)
	case *ObjectNode:
		return t.Value()
	default:
		return Null()
	}
}

// valuesEqual reports whether a and b represent the same logical value,
// used by the reconciler's equality short-circuit before mutating a node
// that would otherwise re-render to identical content.
func valuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValueNull:
		return true
	case ValueBool:
		return a.Bool == b.Bool
	case ValueNumber:
		return a.Number.Float64 == b.Number.Float64
	case ValueString:
		return a.Str == b.Str
	case ValueArray:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !valuesEqual(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	case ValueObject:
		if a.Object.Len() != b.Object.Len() {
			return false
		}
		for _, k := range a.Object.Keys() {
			av, _ := a.Object.Get(k)
			bv, ok := b.Object.Get(k)
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
