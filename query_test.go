package jsonccst

import "testing"

func TestObjectNodeLookup(t *testing.T) {
	obj, err := ParseObject(`{"server": {"host": "localhost", "port": 8080}, "name": "svc"}`)
	if err != nil {
		t.Fatal(err)
	}

	n, ok := obj.Lookup("server", "host")
	if !ok {
		t.Fatal("expected server.host to be found")
	}
	s, ok := n.(*StringNode)
	if !ok {
		t.Fatalf("expected *StringNode, got %T", n)
	}
	if got, want := s.Value(), "localhost"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, ok := obj.Lookup("server", "missing"); ok {
		t.Error("expected server.missing to be absent")
	}
	if _, ok := obj.Lookup("name", "anything"); ok {
		t.Error("descending through a non-object value should fail")
	}
}

func TestObjectNodeKeys(t *testing.T) {
	obj, err := ParseObject(`{"a": 1, "b": 2, "c": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	got := obj.Keys()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestObjectNodeValue(t *testing.T) {
	obj, err := ParseObject(`{"a": 1, "b": [true, null, "x"], "c": {"d": 2.5}}`)
	if err != nil {
		t.Fatal(err)
	}
	v := obj.Value()
	if v.Kind != ValueObject {
		t.Fatalf("expected ValueObject, got %v", v.Kind)
	}
	a, ok := v.Object.Get("a")
	if !ok || a.Number.Float64 != 1 {
		t.Errorf("got %v, ok=%v", a, ok)
	}
	b, ok := v.Object.Get("b")
	if !ok || b.Kind != ValueArray || len(b.Array) != 3 {
		t.Fatalf("got %v, ok=%v", b, ok)
	}
	if !b.Array[0].Bool || b.Array[1].Kind != ValueNull || b.Array[2].Str != "x" {
		t.Errorf("array contents mismatch: %v", b.Array)
	}
	c, ok := v.Object.Get("c")
	if !ok || c.Kind != ValueObject {
		t.Fatalf("got %v, ok=%v", c, ok)
	}
	d, ok := c.Object.Get("d")
	if !ok || d.Number.Float64 != 2.5 {
		t.Errorf("got %v, ok=%v", d, ok)
	}
}

func TestValuesEqual(t *testing.T) {
	a := Obj(NewObjectValue().Set("x", Int(1)).Set("y", Arr(String("a"), String("b"))))
	b := Obj(NewObjectValue().Set("x", Int(1)).Set("y", Arr(String("a"), String("b"))))
	if !valuesEqual(a, b) {
		t.Error("expected equal values to compare equal")
	}
	c := Obj(NewObjectValue().Set("x", Int(2)).Set("y", Arr(String("a"), String("b"))))
	if valuesEqual(a, c) {
		t.Error("expected differing values to compare unequal")
	}
}
