package jsonccst

// StringifyPreservingComments is the package's sole entry point: it
// renders target as JSONC text, reusing as much of original's formatting
// and comments as possible.
//
// If original is nil, the result is a pretty-printed rendering of target
// using opts.FallbackIndent. Otherwise original is parsed; if parsing
// fails or its root is not an object, one warning is emitted through
// opts.Logger and the pretty-printed path is used instead. Otherwise the
// parsed tree is reconciled against target and rendered back to text,
// byte-exact wherever target and original already agree.
func StringifyPreservingComments(target *ObjectValue, original *string, opts Options) (string, error) {
	opts = opts.resolve()

	if err := validateValue(Obj(target), make(map[*ObjectValue]bool)); err != nil {
		return "", err
	}

	if original == nil {
		return PrettyPrint(Obj(target), opts.FallbackIndent), nil
	}

	root, err := ParseObject(*original)
	if err != nil {
		opts.Logger.Warn(map[string]any{"error": err},
			"Failed to preserve comments during JSON serialization, falling back to standard JSON")
		return PrettyPrint(Obj(target), opts.FallbackIndent), nil
	}

	if err := Reconcile(root, target, opts.FallbackIndent); err != nil {
		return "", err
	}
	return Render(root), nil
}
