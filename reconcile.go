package jsonccst

// Reconcile transforms obj in place so its value graph equals target,
// preserving trivia on everything that does not change. Existing keys
// are updated in place, keys present only in target are inserted (or
// substituted in place when a removal and an insertion land at the same
// position — the rename heuristic), and keys present only in obj are
// removed.
func Reconcile(obj *ObjectNode, target *ObjectValue, indent string) error {
	originalKeys := obj.Keys()
	toRemove := make(map[string]bool, len(originalKeys))
	for _, k := range originalKeys {
		if _, ok := target.Get(k); !ok {
			toRemove[k] = true
		}
	}

	processed := make(map[string]bool, target.Len())
	insertIndex := 0

	for _, key := range target.Keys() {
		val, _ := target.Get(key)

		if p := obj.Get(key); p != nil {
			if err := reconcileValue(p, val, indent); err != nil {
				return err
			}
			insertIndex = p.PropertyIndex() + 1
			processed[key] = true
			continue
		}

		// Rename detection fires on positional coincidence alone: a
		// removal candidate sitting at exactly the cursor's current
		// position is treated as an in-place key substitution, which is
		// what lets a renamed property keep its trailing inline comment.
		// This can misfire on an unrelated same-position removal/insertion
		// pair, since there is no semantic signal backing it — only
		// position.
		var candidate *PropertyNode
		for _, p := range obj.Properties {
			k := p.KeyText()
			if toRemove[k] && !processed[k] && p.PropertyIndex() == insertIndex {
				candidate = p
				break
			}
		}

		if candidate != nil {
			oldKey := candidate.KeyText()
			candidate.ReplaceWith(key, val)
			processed[oldKey] = true
			processed[key] = true
			delete(toRemove, oldKey)
			insertIndex = candidate.PropertyIndex() + 1
			if val.Kind == ValueArray && len(val.Array) > 0 {
				if arr, ok := candidate.Value.(*ArrayNode); ok {
					arr.EnsureMultiline(indent)
				}
			}
			continue
		}

		newProp, err := obj.Insert(insertIndex, key, val, indent)
		if err != nil {
			return err
		}
		insertIndex++
		processed[key] = true
		if val.Kind == ValueArray && len(val.Array) > 0 {
			if arr, ok := newProp.Value.(*ArrayNode); ok {
				arr.EnsureMultiline(indent)
			}
		}
	}

	for k := range toRemove {
		if processed[k] {
			continue
		}
		p := obj.Get(k)
		if p == nil {
			continue
		}
		if err := p.Remove(); err != nil {
			return err
		}
	}
	return nil
}

// reconcileValue drives prop's value toward target. If the current and
// target values are already equal, it does nothing at all. Without this
// short-circuit, a value whose source encoding merely differs from this
// package's own canonical rendering (e.g. a string escaped differently
// than encodeJSONString would choose) would be rewritten on every call
// even though nothing about it changed, breaking byte-exact no-ops.
func reconcileValue(prop *PropertyNode, target Value, indent string) error {
	cur := nodeValue(prop.Value)
	if valuesEqual(cur, target) {
		return nil
	}

	switch target.Kind {
	case ValueArray:
		return reconcileArray(prop, target, indent)
	case ValueObject:
		if curObj, ok := prop.Value.(*ObjectNode); ok {
			return Reconcile(curObj, target.Object, indent)
		}
		prop.ReplaceValueWith(target)
		return nil
	default:
		setScalarOrReplace(prop, target)
		return nil
	}
}

// setScalarOrReplace rewrites prop's value in place when its current
// node kind matches target's, and falls back to a full structural
// replace otherwise: an in-place set requires the node to already be of
// the matching scalar kind, so promoting e.g. a string to a number goes
// through ReplaceValueWith instead.
func setScalarOrReplace(prop *PropertyNode, target Value) {
	switch target.Kind {
	case ValueString:
		if s, ok := prop.Value.(*StringNode); ok {
			s.SetValue(target.Str)
			return
		}
	case ValueNumber:
		if n, ok := prop.Value.(*NumberNode); ok {
			n.SetValue(target.Number)
			return
		}
	case ValueBool:
		if b, ok := prop.Value.(*BoolNode); ok {
			b.SetValue(target.Bool)
			return
		}
	case ValueNull:
		if _, ok := prop.Value.(*NullNode); ok {
			return
		}
	}
	prop.ReplaceValueWith(target)
}

// reconcileArray reconciles an array-valued property against target:
// elements beyond target's length are removed from the end (reverse
// order, so earlier indices stay valid), then each remaining position
// whose value differs from the target element is replaced with a freshly
// rendered value of the target element's kind, or appended if the array
// grew. There is no per-element
// recursion into nested structures — comments on array elements survive
// via the element's own trivia on replace, but this module does not
// attempt to diff the internals of, say, an object nested inside an
// array element.
func reconcileArray(prop *PropertyNode, target Value, indent string) error {
	arrNode, ok := prop.Value.(*ArrayNode)
	if !ok {
		prop.ReplaceValueWith(target)
		if arr, ok2 := prop.Value.(*ArrayNode); ok2 && len(arr.Elements) > 0 {
			arr.EnsureMultiline(indent)
		}
		return nil
	}

	existingLen := len(arrNode.Elements)
	targetLen := len(target.Array)
	for i := existingLen - 1; i >= targetLen; i-- {
		if err := arrNode.RemoveElement(i); err != nil {
			return err
		}
	}

	for i := 0; i < targetLen; i++ {
		if i < len(arrNode.Elements) {
			if valuesEqual(nodeValue(arrNode.Elements[i]), target.Array[i]) {
				continue
			}
			if err := arrNode.ReplaceElementWith(i, target.Array[i]); err != nil {
				return err
			}
		} else {
			arrNode.Append(target.Array[i], indent)
		}
	}
	return nil
}
