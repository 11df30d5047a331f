package jsonccst

import "math"

// validateValue walks v and reports the first unrepresentable-value
// error it finds: a cycle in the target graph, a non-finite number, or a
// string that is not valid UTF-8. It is run as a pre-flight check before
// any rendering is attempted, so a caller never receives partial output.
func validateValue(v Value, seen map[*ObjectValue]bool) error {
	switch v.Kind {
	case ValueString:
		if !validateUTF8String(v.Str) {
			return ErrInvalidUTF8String
		}
	case ValueNumber:
		if v.Number.Raw == "" && (math.IsNaN(v.Number.Float64) || math.IsInf(v.Number.Float64, 0)) {
			return ErrNonFiniteNumber
		}
	case ValueArray:
		for _, el := range v.Array {
			if err := validateValue(el, seen); err != nil {
				return err
			}
		}
	case ValueObject:
		if v.Object == nil {
			return nil
		}
		if seen[v.Object] {
			return ErrCyclicValue
		}
		seen[v.Object] = true
		defer delete(seen, v.Object)
		for _, k := range v.Object.Keys() {
			val, _ := v.Object.Get(k)
			if err := validateValue(val, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
