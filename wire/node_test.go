package wire

import (
	"bytes"
	"testing"
)

func TestSetReplaces(t *testing.T) {
	obj := NewObject(2).
		Set("a", FromInt(1)).
		Set("b", FromInt(2)).
		Set("a", FromInt(3))
	if obj.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", obj.Len())
	}
	got, err := obj.Get("a").AsInt64()
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("a = %d, want 3", got)
	}
	if obj.Fields[0] != "a" || obj.Fields[1] != "b" {
		t.Errorf("field order changed: %v", obj.Fields)
	}
}

func TestGetAbsent(t *testing.T) {
	obj := NewObject(0)
	if obj.Get("missing") != nil {
		t.Error("Get on absent key should be nil")
	}
	if obj.Has("missing") {
		t.Error("Has on absent key should be false")
	}
}

func TestAsUint64(t *testing.T) {
	tests := []struct {
		name    string
		node    *Node
		want    uint64
		wantErr bool
	}{
		{"small", FromUint(10), 10, false},
		{"max", FromUint(1<<64 - 1), 1<<64 - 1, false},
		{"negative", FromInt(-1), 0, true},
		{"string node", FromString("10"), 0, true},
		{"float lexeme", &Node{Type: NumberType, Number: "1.5"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.AsUint64()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("AsUint64() = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("AsUint64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAsInt64Overflow(t *testing.T) {
	n := &Node{Type: NumberType, Number: "18446744073709551615"}
	if _, err := n.AsInt64(); err == nil {
		t.Error("AsInt64 on 2^64-1 should fail")
	}
}

func TestAsFloat64Widens(t *testing.T) {
	f, err := FromInt(3).AsFloat64()
	if err != nil {
		t.Fatal(err)
	}
	if f != 3.0 {
		t.Errorf("AsFloat64() = %v, want 3", f)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	in := []byte{0x00, 0x01, 0xfe, 0xff}
	n := FromBytes(in)
	if n.Type != StringType {
		t.Fatalf("FromBytes type = %s", n.Type)
	}
	out, err := n.AsBytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("AsBytes() = %x, want %x", out, in)
	}
}

func TestClone(t *testing.T) {
	obj := NewObject(2).
		Set("a", FromSlice([]*Node{FromInt(1)})).
		Set("b", FromString("x"))
	dup := obj.Clone()
	if !Equal(obj, dup) {
		t.Fatal("clone differs from original")
	}
	dup.Set("b", FromString("y"))
	if obj.Get("b").String != "x" {
		t.Error("mutating clone changed original")
	}
}
