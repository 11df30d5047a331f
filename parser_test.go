package jsonccst

import "testing"

func TestRoundTripIdentity(t *testing.T) {
	tests := []string{
		`{}`,
		`{ }`,
		`{"a": 1}`,
		`{"a": 1,}`,
		"{\n  \"a\": 1,\n  \"b\": 2\n}",
		"{\n  // leading comment\n  \"a\": 1, // trailing comment\n  \"b\": [1, 2, 3]\n}",
		"{ /* nothing yet */ }",
		"\xef\xbb\xbf{\"a\": 1}",
		`{"nested": {"x": true, "y": null}, "arr": ["a", "b", "c"]}`,
		"// file header\n{\n  \"a\": 1\n}\n",
		`{"n": -12.5e+3, "big": 9007199254740993}`,
	}
	for _, src := range tests {
		obj, err := ParseObject(src)
		if err != nil {
			t.Fatalf("ParseObject(%q): %v", src, err)
		}
		got := Render(obj)
		if got != src {
			t.Errorf("round-trip mismatch:\n  input:  %q\n  output: %q", src, got)
		}
	}
}

func TestParseObjectRejectsNonObjectRoot(t *testing.T) {
	if _, err := ParseObject(`[1, 2, 3]`); err == nil {
		t.Fatal("expected error for array root")
	}
	if _, err := ParseObject(`"just a string"`); err == nil {
		t.Fatal("expected error for scalar root")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`{`,
		`{"a": }`,
		`{"a": 1`,
		`{"a" 1}`,
		`{"a": 1 "b": 2}`,
		`{"a": tru}`,
		`"unterminated`,
		`{"a": 01}`,
	}
	for _, src := range tests {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q): expected error, got none", src)
		}
	}
}

func TestStringValueDecoding(t *testing.T) {
	obj, err := ParseObject(`{"s": "line1\nline2\té"}`)
	if err != nil {
		t.Fatal(err)
	}
	got := obj.Get("s").Value.(*StringNode).Value()
	want := "line1\nline2\té"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCommentAndTrailingCommaTokenization(t *testing.T) {
	src := `{
  "a": 1, // inline
  /* block */ "b": 2,
}`
	obj, err := ParseObject(src)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if got := Render(obj); got != src {
		t.Errorf("round-trip mismatch:\n  input:  %q\n  output: %q", src, got)
	}
	if len(obj.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(obj.Properties))
	}
}
