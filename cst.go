package jsonccst

import "strings"

// Kind tags the variant a CST node represents.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindArray
	KindObject
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Node is the common interface over every CST node kind. Mutation is
// deliberately not part of this interface: it lives on the concrete node
// types and on the containers that own them (ObjectNode, ArrayNode),
// mirroring how a downcast to a concrete kind is required before a value
// can be changed.
type Node interface {
	Kind() Kind
	Parent() Node
	meta() *nodeMeta
	writeTo(b *strings.Builder)
}

// nodeMeta is embedded by every concrete node type. It owns the node's
// parent back-reference and its trivia: leading trivia before the node's
// first significant token, and trailing trivia split around an optional
// separating comma (see the package-level comment in parser.go for the
// comma-boundary attachment rule this supports).
type nodeMeta struct {
	parent Node

	leading string

	// Trailing trivia is split into the span before a separating comma
	// and the span after it, up to and including the first following
	// newline. For a node with no comma after it, the before-comma span
	// holds everything up to and including the first newline before the
	// closing delimiter. hasComma records whether a
	// comma token exists at all; when a node is the last child of its
	// container, hasComma reflects an optional JSONC trailing comma.
	trailingBeforeComma string
	hasComma            bool
	trailingAfterComma  string
}

func (m *nodeMeta) meta() *nodeMeta { return m }

// Parent returns the enclosing container node, or nil for the document root.
func (m *nodeMeta) Parent() Node { return m.parent }

func (m *nodeMeta) writeTrailing(b *strings.Builder) {
	b.WriteString(m.trailingBeforeComma)
	if m.hasComma {
		b.WriteByte(',')
	}
	b.WriteString(m.trailingAfterComma)
}

// StringNode is a JSON string literal. Raw retains the original lexeme,
// quotes included, so that unmodified strings round-trip byte for byte
// regardless of escaping style.
type StringNode struct {
	nodeMeta
	Raw string
}

func (n *StringNode) Kind() Kind { return KindString }

func (n *StringNode) writeTo(b *strings.Builder) {
	b.WriteString(n.leading)
	b.WriteString(n.Raw)
	n.writeTrailing(b)
}

// Value decodes the string literal's escapes into its logical value.
func (n *StringNode) Value() string { return decodeJSONString(n.Raw) }

// NumberNode is a JSON number literal. Raw retains the original lexeme so
// that integers beyond 2^53 or unusual exponent notation are not
// corrupted by a round-trip through float64.
type NumberNode struct {
	nodeMeta
	Raw string
}

func (n *NumberNode) Kind() Kind { return KindNumber }

func (n *NumberNode) writeTo(b *strings.Builder) {
	b.WriteString(n.leading)
	b.WriteString(n.Raw)
	n.writeTrailing(b)
}

// Float64 parses the number literal's value.
func (n *NumberNode) Float64() (float64, error) { return parseJSONNumber(n.Raw) }

// BoolNode is a JSON boolean literal.
type BoolNode struct {
	nodeMeta
	Raw string
}

func (n *BoolNode) Kind() Kind { return KindBool }

func (n *BoolNode) writeTo(b *strings.Builder) {
	b.WriteString(n.leading)
	b.WriteString(n.Raw)
	n.writeTrailing(b)
}

// Value reports the boolean's logical value.
func (n *BoolNode) Value() bool { return n.Raw == "true" }

// NullNode is the JSON null literal.
type NullNode struct {
	nodeMeta
}

func (n *NullNode) Kind() Kind { return KindNull }

func (n *NullNode) writeTo(b *strings.Builder) {
	b.WriteString(n.leading)
	b.WriteString("null")
	n.writeTrailing(b)
}

// ArrayNode is a JSON array. HeadTrivia is the content between '[' and the
// first element (or between '[' and ']' for an empty array); TailTrivia is
// the content between the last element and ']'.
type ArrayNode struct {
	nodeMeta
	Elements   []Node
	HeadTrivia string
	TailTrivia string
	Depth      int
}

func (n *ArrayNode) Kind() Kind { return KindArray }

func (n *ArrayNode) writeTo(b *strings.Builder) {
	b.WriteString(n.leading)
	b.WriteByte('[')
	b.WriteString(n.HeadTrivia)
	for _, el := range n.Elements {
		el.writeTo(b)
	}
	b.WriteString(n.TailTrivia)
	b.WriteByte(']')
	n.writeTrailing(b)
}

// PropertyNode is one key/value entry of an ObjectNode. It owns the
// trivia and comma that separate it from its neighbors; its Value node's
// own trivia fields are unused (left empty) since the property governs
// layout, and only the Value node's parent back-reference is set.
type PropertyNode struct {
	nodeMeta
	Key         *StringNode
	ColonBefore string
	ColonAfter  string
	Value       Node
}

func (p *PropertyNode) Kind() Kind { return KindProperty }

// KeyText decodes the property's key string.
func (p *PropertyNode) KeyText() string { return p.Key.Value() }

func (p *PropertyNode) writeTo(b *strings.Builder) {
	b.WriteString(p.leading)
	b.WriteString(p.Key.Raw)
	b.WriteString(p.ColonBefore)
	b.WriteByte(':')
	b.WriteString(p.ColonAfter)
	p.Value.writeTo(b)
	p.writeTrailing(b)
}

// ObjectNode is a JSON object. HeadTrivia is the content between '{' and
// the first property (or between '{' and '}' for an empty object);
// TailTrivia is the content between the last property and '}'.
type ObjectNode struct {
	nodeMeta
	Properties []*PropertyNode
	HeadTrivia string
	TailTrivia string
	Depth      int
}

func (n *ObjectNode) Kind() Kind { return KindObject }

func (n *ObjectNode) writeTo(b *strings.Builder) {
	b.WriteString(n.leading)
	b.WriteByte('{')
	b.WriteString(n.HeadTrivia)
	for _, p := range n.Properties {
		p.writeTo(b)
	}
	b.WriteString(n.TailTrivia)
	b.WriteByte('}')
	n.writeTrailing(b)
}

// Render serializes the node to text by in-order concatenation of its
// tokens and trivia.
func Render(n Node) string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

// indexOf returns the position of p within the object's Properties, or -1.
func (n *ObjectNode) indexOf(p *PropertyNode) int {
	for i, child := range n.Properties {
		if child == p {
			return i
		}
	}
	return -1
}

// indexOfElement returns the position of el within the array's Elements, or -1.
func (n *ArrayNode) indexOfElement(el Node) int {
	for i, child := range n.Elements {
		if child == el {
			return i
		}
	}
	return -1
}
