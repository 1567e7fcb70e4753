package wire

import (
	"testing"
)

func TestCompare(t *testing.T) {
	obj := func(kvs ...any) *Node {
		o := NewObject(len(kvs) / 2)
		for i := 0; i < len(kvs); i += 2 {
			o.Set(kvs[i].(string), kvs[i+1].(*Node))
		}
		return o
	}

	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), NewObject(0), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: Int < Float < lexeme
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Lexeme < Lexeme",
			&Node{Type: NumberType, Number: "18446744073709551614"},
			&Node{Type: NumberType, Number: "18446744073709551615"}, -1},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", NewObject(0), NewObject(0), 0},
		{"Short Object < Long Object",
			obj("a", FromInt(1)),
			obj("a", FromInt(1), "b", FromInt(2)), -1},
		{"Object Key Comparison", obj("a", FromInt(1)), obj("b", FromInt(1)), -1},
		{"Object Value Comparison", obj("a", FromInt(1)), obj("a", FromInt(2)), -1},
		{"Object Order Matters", obj("a", FromInt(1), "b", FromInt(2)), obj("b", FromInt(2), "a", FromInt(1)), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}
