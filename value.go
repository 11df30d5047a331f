package jsonccst

// ValueKind tags the variant of a Value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueNumber
	ValueString
	ValueArray
	ValueObject
)

// NumberValue carries both a float64 representation and, optionally, the
// original textual literal it was decoded from, so that re-rendering an
// untouched number does not corrupt precision for integers beyond 2^53 or
// unusual exponent notation.
type NumberValue struct {
	Float64 float64
	Raw     string // literal text, set by Int and by CST extraction; empty for Float
}

// Value is the recursive, six-variant value graph shared by values
// extracted from a parsed CST and by the caller-supplied target graph to
// reconcile toward.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number NumberValue
	Str    string
	Array  []Value
	Object *ObjectValue
}

// Null returns the null value.
func Null() Value { return Value{Kind: ValueNull} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// Float wraps a float64 value with no associated literal text.
func Float(f float64) Value { return Value{Kind: ValueNumber, Number: NumberValue{Float64: f}} }

// Int wraps an integer value, rendering as a bare integer literal.
func Int(i int64) Value {
	return Value{Kind: ValueNumber, Number: NumberValue{Float64: float64(i), Raw: formatIntLiteral(i)}}
}

// String wraps a string value.
func String(s string) Value { return Value{Kind: ValueString, Str: s} }

// Arr wraps an array value.
func Arr(vs ...Value) Value { return Value{Kind: ValueArray, Array: vs} }

// Obj wraps an object value.
func Obj(o *ObjectValue) Value { return Value{Kind: ValueObject, Object: o} }

// ObjectValue is an insertion-order-preserving string-keyed map. A plain
// Go map does not preserve key order, and key iteration order here is
// the desired output order, so this explicit ordered structure is the
// target graph's object representation.
type ObjectValue struct {
	keys   []string
	values map[string]Value
}

// NewObjectValue returns an empty ordered object.
func NewObjectValue() *ObjectValue {
	return &ObjectValue{values: make(map[string]Value)}
}

// Set inserts or updates key, appending it to the key order if new.
func (o *ObjectValue) Set(key string, v Value) *ObjectValue {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Get returns the value for key and whether it is present.
func (o *ObjectValue) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. Callers must not mutate the
// returned slice.
func (o *ObjectValue) Keys() []string { return o.keys }

// Len returns the number of keys.
func (o *ObjectValue) Len() int { return len(o.keys) }
