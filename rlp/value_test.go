package rlp

import "testing"

func TestDocumentOne(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		var d Document
		if _, err := d.One(); err == nil {
			t.Fatal("expected error for empty document")
		} else if err.(*Error).Kind != MissingBytes {
			t.Fatalf("got kind %s, want MissingBytes", err.(*Error).Kind)
		}
	})

	t.Run("trailing values", func(t *testing.T) {
		d := Document{NewBytes([]byte("a")), NewBytes([]byte("b"))}
		if _, err := d.One(); err == nil {
			t.Fatal("expected error for multi-value document")
		} else if err.(*Error).Kind != TrailingBytes {
			t.Fatalf("got kind %s, want TrailingBytes", err.(*Error).Kind)
		}
	})

	t.Run("single value", func(t *testing.T) {
		want := NewBytes([]byte("dog"))
		d := Document{want}
		got, err := d.One()
		if err != nil {
			t.Fatal(err)
		}
		if string(got.Bytes) != "dog" {
			t.Fatalf("got %q, want %q", got.Bytes, "dog")
		}
	})
}

func TestValueShape(t *testing.T) {
	if !NewBytes(nil).IsBytes() {
		t.Fatal("NewBytes(nil) should be IsBytes")
	}
	if !EmptyListValue.IsList() {
		t.Fatal("EmptyListValue should be IsList")
	}
	if EmptyListValue.Len() != 0 {
		t.Fatal("EmptyListValue.Len() should be 0")
	}
	l := NewList(NewBytes([]byte("a")), NewBytes([]byte("b")))
	if !l.IsList() {
		t.Fatal("NewList should be IsList")
	}
	if l.Len() != 2 {
		t.Fatalf("got len %d, want 2", l.Len())
	}
}
