package rlp

import (
	"bytes"
	"testing"
)

func TestPackBytes(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want []byte
	}{
		{"empty string", NewBytes(nil), []byte{0x80}},
		{"single byte below 0x80", NewBytes([]byte{0x00}), []byte{0x00}},
		{"single byte 0x7f", NewBytes([]byte{0x7f}), []byte{0x7f}},
		{"single byte 0x80 uses short form", NewBytes([]byte{0x80}), []byte{0x81, 0x80}},
		{"dog", NewBytes([]byte("dog")), []byte{0x83, 0x64, 0x6f, 0x67}},
		{
			"56-byte string uses long form",
			NewBytes(bytes.Repeat([]byte{0x61}, 56)),
			append([]byte{0xb8, 0x38}, bytes.Repeat([]byte{0x61}, 56)...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PackOne(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestPackList(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want []byte
	}{
		{"empty list", NewList(), []byte{0xc0}},
		{"empty list marker", EmptyListValue, []byte{0x80}},
		{
			"[cat, dog]",
			NewList(NewBytes([]byte("cat")), NewBytes([]byte("dog"))),
			[]byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67},
		},
		{
			"nested list",
			NewList(NewList(), NewList(NewList())),
			[]byte{0xc3, 0xc0, 0xc1, 0xc0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PackOne(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestWrapList(t *testing.T) {
	got := WrapList([]byte("dog"))
	want := []byte{0xc3, 'd', 'o', 'g'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}
