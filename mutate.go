package jsonccst

import "strings"

// defaultIndentUnit is used when an object has no existing siblings to
// copy indentation from and no caller-supplied unit is available: a
// deterministic nesting-depth × indent-unit approximation of "the
// object's own opening-brace column."
const defaultIndentUnit = "  "

// newLeafFromValue renders v (which must not be an array or object) as a
// freshly constructed leaf node carrying no trivia of its own: the
// caller attaches leading/trailing trivia appropriate to where the node
// is being inserted.
func newLeafFromValue(v Value) Node {
	switch v.Kind {
	case ValueString:
		return &StringNode{Raw: encodeJSONString(v.Str)}
	case ValueNumber:
		return &NumberNode{Raw: renderNumber(v.Number)}
	case ValueBool:
		return &BoolNode{Raw: boolLiteral(v.Bool)}
	default:
		return &NullNode{}
	}
}

func boolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// newNodeFromValue renders v as a freshly constructed node tree at the
// given nesting depth. Composite values start out single-line; callers
// that need multi-line layout (e.g. a scalar promoted to a non-empty
// array) call EnsureMultiline afterward.
func newNodeFromValue(v Value, depth int) Node {
	switch v.Kind {
	case ValueArray:
		return newArrayNodeFromValue(v.Array, depth)
	case ValueObject:
		return newObjectNodeFromValue(v.Object, depth)
	default:
		return newLeafFromValue(v)
	}
}

func newArrayNodeFromValue(elems []Value, depth int) *ArrayNode {
	arr := &ArrayNode{Depth: depth}
	for i, ev := range elems {
		el := newNodeFromValue(ev, depth+1)
		m := el.meta()
		m.parent = arr
		if i < len(elems)-1 {
			m.hasComma = true
			m.trailingAfterComma = " "
		}
		arr.Elements = append(arr.Elements, el)
	}
	return arr
}

func newObjectNodeFromValue(ov *ObjectValue, depth int) *ObjectNode {
	obj := &ObjectNode{Depth: depth}
	keys := ov.Keys()
	for i, k := range keys {
		v, _ := ov.Get(k)
		val := newNodeFromValue(v, depth+1)
		prop := &PropertyNode{nodeMeta: nodeMeta{parent: obj}}
		prop.Key = &StringNode{Raw: encodeJSONString(k)}
		prop.ColonAfter = " "
		prop.Value = val
		val.meta().parent = prop
		if i < len(keys)-1 {
			prop.hasComma = true
			prop.trailingAfterComma = " "
		}
		obj.Properties = append(obj.Properties, prop)
	}
	return obj
}

// indentUnit returns u, or defaultIndentUnit if u is empty, so call
// sites can pass a caller-chosen indent through without special-casing
// the empty string.
func indentUnit(u string) string {
	if u == "" {
		return defaultIndentUnit
	}
	return u
}

// siblingIndent scans leadings (one per child, in order) for the first
// one that is pure per-line indentation rather than a span still
// carrying a newline. The first child is always skipped, since its
// leading trivia absorbs the container's interior-head trivia; a later
// child whose leading trivia holds a newline (a comment or blank line
// above it) is skipped as well.
func siblingIndent(leadings []string) (string, bool) {
	for i, l := range leadings {
		if i == 0 {
			continue
		}
		if l != "" && !strings.ContainsRune(l, '\n') {
			return l, true
		}
	}
	return "", false
}

func objectChildIndent(o *ObjectNode, unit string) string {
	leadings := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		leadings[i] = p.leading
	}
	if ind, ok := siblingIndent(leadings); ok {
		return ind
	}
	return strings.Repeat(indentUnit(unit), o.Depth+1)
}

func arrayChildIndent(a *ArrayNode, unit string) string {
	leadings := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		leadings[i] = el.meta().leading
	}
	if ind, ok := siblingIndent(leadings); ok {
		return ind
	}
	return strings.Repeat(indentUnit(unit), a.Depth+1)
}

// objectIsMultiline reports whether o's existing layout puts properties on
// separate lines, so a newly inserted property can match that style
// instead of defaulting to single-line commas.
func objectIsMultiline(o *ObjectNode) bool {
	if len(o.Properties) > 0 && strings.ContainsRune(o.Properties[0].leading, '\n') {
		return true
	}
	for _, p := range o.Properties {
		if strings.ContainsRune(p.trailingAfterComma, '\n') {
			return true
		}
	}
	return strings.ContainsRune(o.TailTrivia, '\n') || strings.ContainsRune(o.HeadTrivia, '\n')
}

// arrayIsMultiline is objectIsMultiline's counterpart for array elements.
func arrayIsMultiline(a *ArrayNode) bool {
	if len(a.Elements) > 0 && strings.ContainsRune(a.Elements[0].meta().leading, '\n') {
		return true
	}
	for _, el := range a.Elements {
		if strings.ContainsRune(el.meta().trailingAfterComma, '\n') {
			return true
		}
	}
	return strings.ContainsRune(a.TailTrivia, '\n') || strings.ContainsRune(a.HeadTrivia, '\n')
}

// attachComma gives a formerly-last node (hasComma == false) a comma. The
// trivia it already owns (everything up to the container's closing
// delimiter) is split at its first newline: any inline content before
// that point stays with the node as a same-line trailing comment, and the
// newline onward moves after the new comma. A node with no newline in its
// trailing trivia at all (single-line containers) gets sep verbatim.
func attachComma(m *nodeMeta, sep string) {
	if m.hasComma {
		return
	}
	whole := m.trailingBeforeComma
	if idx := strings.IndexByte(whole, '\n'); idx >= 0 {
		m.trailingBeforeComma = whole[:idx]
		m.trailingAfterComma = whole[idx:]
	} else {
		m.trailingAfterComma = sep
	}
	m.hasComma = true
}

// SetValue rewrites the node's lexeme in place, preserving leading and
// trailing trivia.
func (n *StringNode) SetValue(s string) { n.Raw = encodeJSONString(s) }

// SetValue rewrites the node's lexeme in place, preserving leading and
// trailing trivia. When v carries a Raw literal it is used verbatim.
func (n *NumberNode) SetValue(v NumberValue) { n.Raw = renderNumber(v) }

// SetValue rewrites the node's lexeme in place, preserving leading and
// trailing trivia.
func (n *BoolNode) SetValue(b bool) { n.Raw = boolLiteral(b) }

// transferTrivia copies old's leading/trailing trivia and parent onto
// fresh, so a structural replacement keeps the old node's position in
// its container's formatting.
func transferTrivia(old, fresh Node) {
	om, fm := old.meta(), fresh.meta()
	fm.leading = om.leading
	fm.trailingBeforeComma = om.trailingBeforeComma
	fm.hasComma = om.hasComma
	fm.trailingAfterComma = om.trailingAfterComma
	fm.parent = om.parent
}

// ReplaceValueWith replaces the property's value with a freshly rendered
// node for v, preserving the property's own leading/trailing trivia
// (including any inline comment after the old value).
func (p *PropertyNode) ReplaceValueWith(v Value) {
	depth := 0
	if obj, ok := p.parent.(*ObjectNode); ok {
		depth = obj.Depth + 1
	}
	fresh := newNodeFromValue(v, depth)
	fresh.meta().parent = p
	p.Value = fresh
}

// ReplaceElementWith replaces element i of the array with a freshly
// rendered node for v, preserving that element's own leading/trailing
// trivia.
func (a *ArrayNode) ReplaceElementWith(i int, v Value) error {
	if i < 0 || i >= len(a.Elements) {
		return invariantErrorf(ErrForeignNode, "array element index out of range")
	}
	old := a.Elements[i]
	fresh := newNodeFromValue(v, a.Depth+1)
	transferTrivia(old, fresh)
	a.Elements[i] = fresh
	return nil
}

// ReplaceWith substitutes both the property's key and value in place.
// The property's own trailing trivia (including a same-line inline
// comment) is untouched, which is what lets a rename preserve a
// trailing "// keep this"-style comment.
func (p *PropertyNode) ReplaceWith(newKey string, v Value) {
	p.Key = &StringNode{Raw: encodeJSONString(newKey)}
	depth := 0
	if obj, ok := p.parent.(*ObjectNode); ok {
		depth = obj.Depth + 1
	}
	fresh := newNodeFromValue(v, depth)
	fresh.meta().parent = p
	p.Value = fresh
}

// Get returns the property with the given key, or nil if absent.
func (o *ObjectNode) Get(key string) *PropertyNode {
	for _, p := range o.Properties {
		if p.KeyText() == key {
			return p
		}
	}
	return nil
}

// PropertyIndex returns p's position within its parent object, or -1.
func (p *PropertyNode) PropertyIndex() int {
	obj, ok := p.parent.(*ObjectNode)
	if !ok {
		return -1
	}
	return obj.indexOf(p)
}

// Insert inserts a new property at position i (clamped to
// [0,len(Properties)]), synthesizing leading trivia to match the
// object's existing indentation (or a depth-based fallback when it has
// no siblings to copy from) and wiring the surrounding commas so the
// result re-parses as valid JSONC. A property inserted into an empty
// object takes the object's interior-head trivia as its leading trivia;
// no indentation is synthesized for it.
func (o *ObjectNode) Insert(i int, key string, v Value, indent string) (*PropertyNode, error) {
	if o.Get(key) != nil {
		return nil, invariantErrorf(ErrDuplicateKey, key)
	}
	n := len(o.Properties)
	if i < 0 {
		i = 0
	} else if i > n {
		i = n
	}

	multiline := objectIsMultiline(o)
	sep := " "
	childIndent := ""
	if multiline {
		sep = "\n"
		childIndent = objectChildIndent(o, indent)
	}

	fresh := newNodeFromValue(v, o.Depth+1)
	prop := &PropertyNode{nodeMeta: nodeMeta{parent: o}}
	prop.Key = &StringNode{Raw: encodeJSONString(key)}
	prop.ColonAfter = " "
	prop.Value = fresh
	fresh.meta().parent = prop

	switch {
	case n == 0:
		prop.leading = o.HeadTrivia
		o.HeadTrivia = ""
	case i == 0:
		first := o.Properties[0]
		prop.leading = first.leading
		first.leading = childIndent
	default:
		prop.leading = childIndent
	}

	switch {
	case i < n:
		prop.hasComma = true
		prop.trailingAfterComma = sep
		if i > 0 {
			attachComma(&o.Properties[i-1].nodeMeta, sep)
		}
	case n > 0:
		attachComma(&o.Properties[n-1].nodeMeta, sep)
		if multiline && !strings.ContainsRune(o.TailTrivia, '\n') {
			prop.trailingBeforeComma = "\n"
		}
	}

	o.Properties = append(o.Properties, nil)
	copy(o.Properties[i+1:], o.Properties[i:])
	o.Properties[i] = prop
	return prop, nil
}

// Append inserts a new property at the end of the object.
func (o *ObjectNode) Append(key string, v Value, indent string) (*PropertyNode, error) {
	return o.Insert(len(o.Properties), key, v, indent)
}

// Remove deletes the property from its parent object. The comma that
// separated it from a neighbor is removed with it, preferring to absorb
// the following comma; if the property was last, the preceding comma is
// absorbed instead. The removed property's own leading trivia is
// discarded; its container's interior-tail trivia is preserved. The one
// exception is the first property, whose leading trivia is also the
// object's interior-head trivia: that span is kept, moving to the
// following property (replacing that property's own leading trivia) or
// back into HeadTrivia when no property remains.
func (p *PropertyNode) Remove() error {
	obj, ok := p.parent.(*ObjectNode)
	if !ok {
		return invariantErrorf(ErrForeignNode, "property has no owning object")
	}
	idx := obj.indexOf(p)
	if idx < 0 {
		return invariantErrorf(ErrForeignNode, "property not found in its stated parent")
	}

	switch {
	case idx < len(obj.Properties)-1:
		if idx == 0 {
			next := obj.Properties[idx+1]
			next.leading = p.leading
		}
	case idx > 0:
		prev := obj.Properties[idx-1]
		prev.hasComma = false
		prev.trailingAfterComma = ""
	default:
		obj.HeadTrivia = p.leading
	}

	obj.Properties = append(obj.Properties[:idx], obj.Properties[idx+1:]...)
	return nil
}

// Append appends a new element to the array, wiring comma placement
// symmetrically to ObjectNode.Insert.
func (a *ArrayNode) Append(v Value, indent string) {
	fresh := newNodeFromValue(v, a.Depth+1)
	fm := fresh.meta()
	fm.parent = a

	switch {
	case len(a.Elements) == 0:
		fm.leading = a.HeadTrivia
		a.HeadTrivia = ""
	case arrayIsMultiline(a):
		fm.leading = arrayChildIndent(a, indent)
		attachComma(a.Elements[len(a.Elements)-1].meta(), "\n")
		if !strings.ContainsRune(a.TailTrivia, '\n') {
			fm.trailingBeforeComma = "\n"
		}
	default:
		fm.leading = ""
		attachComma(a.Elements[len(a.Elements)-1].meta(), " ")
	}

	a.Elements = append(a.Elements, fresh)
}

// RemoveElement deletes element i, removing its adjoining comma
// symmetrically to PropertyNode.Remove.
func (a *ArrayNode) RemoveElement(i int) error {
	if i < 0 || i >= len(a.Elements) {
		return invariantErrorf(ErrForeignNode, "array element index out of range")
	}
	el := a.Elements[i]
	m := el.meta()

	switch {
	case i < len(a.Elements)-1:
		if i == 0 {
			next := a.Elements[i+1]
			next.meta().leading = m.leading
		}
	case i > 0:
		prev := a.Elements[i-1]
		pm := prev.meta()
		pm.hasComma = false
		pm.trailingAfterComma = ""
	default:
		a.HeadTrivia = m.leading
	}

	a.Elements = append(a.Elements[:i], a.Elements[i+1:]...)
	return nil
}

// EnsureMultiline rewrites the array's interior whitespace so every
// element sits on its own line, indented one level past the array's own
// indentation, with the closing bracket on its own line at the array's
// level. Idempotent: calling it twice leaves the second call's result
// unchanged.
func (a *ArrayNode) EnsureMultiline(indent string) {
	if len(a.Elements) == 0 {
		return
	}
	unit := indentUnit(indent)
	childIndent := strings.Repeat(unit, a.Depth+1)
	closeIndent := strings.Repeat(unit, a.Depth)

	a.HeadTrivia = ""
	for i, el := range a.Elements {
		m := el.meta()
		if i == 0 {
			m.leading = "\n" + childIndent
		} else {
			m.leading = childIndent
		}
		if i < len(a.Elements)-1 {
			m.hasComma = true
			m.trailingBeforeComma = ""
			m.trailingAfterComma = "\n"
		} else {
			m.trailingBeforeComma = ""
			m.trailingAfterComma = ""
		}
	}
	a.TailTrivia = "\n" + closeIndent
}
