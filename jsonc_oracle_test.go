package jsonccst

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tidwall/jsonc"
)

// valueToGo converts a Value into the same shape encoding/json.Unmarshal
// would produce for it (map[string]interface{}, []interface{}, float64,
// string, bool, nil), so it can be compared against an independent
// decoder's output.
func valueToGo(v Value) any {
	switch v.Kind {
	case ValueNull:
		return nil
	case ValueBool:
		return v.Bool
	case ValueNumber:
		return v.Number.Float64
	case ValueString:
		return v.Str
	case ValueArray:
		out := make([]any, len(v.Array))
		for i, el := range v.Array {
			out[i] = valueToGo(el)
		}
		return out
	case ValueObject:
		out := make(map[string]any, v.Object.Len())
		for _, k := range v.Object.Keys() {
			val, _ := v.Object.Get(k)
			out[k] = valueToGo(val)
		}
		return out
	default:
		return nil
	}
}

// TestExtractedValueMatchesIndependentDecoder cross-checks this package's
// own CST-to-Value extraction (ObjectNode.Value) against an independent
// decoding path: github.com/tidwall/jsonc strips comments/trailing commas
// down to strict JSON, which encoding/json then decodes generically. The
// two must agree on every fixture's logical content.
func TestExtractedValueMatchesIndependentDecoder(t *testing.T) {
	fixtures := []string{
		`{}`,
		`{"a": 1, "b": 2}`,
		"{\n  // a comment\n  \"a\": 1,\n  /* block */ \"b\": [1, 2, 3],\n}",
		`{"nested": {"x": true, "y": null, "z": "text"}}`,
		`{"arr": [{"a": 1}, {"a": 2}], "empty": {}, "emptyArr": []}`,
		`{"float": -12.5e+3, "negZero": -0, "big": 123456789}`,
		`{"escaped": "line1\nline2\ttab\u00e9"}`,
	}

	for _, src := range fixtures {
		obj, err := ParseObject(src)
		if err != nil {
			t.Fatalf("ParseObject(%q): %v", src, err)
		}
		got := valueToGo(obj.Value())

		var want any
		stripped := jsonc.ToJSON([]byte(src))
		if err := json.Unmarshal(stripped, &want); err != nil {
			t.Fatalf("oracle decode of %q failed: %v", src, err)
		}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("extraction mismatch for %q:\n  got:  %#v\n  want: %#v", src, got, want)
		}
	}
}
