package jsonccst

import "strings"

// PrettyPrint renders v as standard indented JSON with no comments,
// arrays and objects always multi-line (empty ones rendered as "[]"/
// "{}" on one line), and no trailing newline. This is the facade's
// fallback path, used when no original source is available, or when the
// original fails to parse.
func PrettyPrint(v Value, indent string) string {
	var b strings.Builder
	writePretty(&b, v, indentUnit(indent), 0)
	return b.String()
}

func writePretty(b *strings.Builder, v Value, indent string, depth int) {
	switch v.Kind {
	case ValueNull:
		b.WriteString("null")
	case ValueBool:
		b.WriteString(boolLiteral(v.Bool))
	case ValueNumber:
		b.WriteString(renderNumber(v.Number))
	case ValueString:
		b.WriteString(encodeJSONString(v.Str))
	case ValueArray:
		writePrettyArray(b, v.Array, indent, depth)
	case ValueObject:
		writePrettyObject(b, v.Object, indent, depth)
	}
}

func writePrettyArray(b *strings.Builder, elems []Value, indent string, depth int) {
	if len(elems) == 0 {
		b.WriteString("[]")
		return
	}
	childIndent := strings.Repeat(indent, depth+1)
	closeIndent := strings.Repeat(indent, depth)
	b.WriteString("[\n")
	for i, el := range elems {
		b.WriteString(childIndent)
		writePretty(b, el, indent, depth+1)
		if i < len(elems)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(closeIndent)
	b.WriteByte(']')
}

func writePrettyObject(b *strings.Builder, obj *ObjectValue, indent string, depth int) {
	keys := obj.Keys()
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}
	childIndent := strings.Repeat(indent, depth+1)
	closeIndent := strings.Repeat(indent, depth)
	b.WriteString("{\n")
	for i, k := range keys {
		v, _ := obj.Get(k)
		b.WriteString(childIndent)
		b.WriteString(encodeJSONString(k))
		b.WriteString(": ")
		writePretty(b, v, indent, depth+1)
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(closeIndent)
	b.WriteByte('}')
}
