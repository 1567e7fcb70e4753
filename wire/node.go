package wire

import (
	"encoding/base64"
	"strconv"
)

// Node is one wire value. Object nodes keep their keys in Fields and the
// corresponding values at the same index of Values; array nodes use Values
// only. Exactly one of the scalar slots is meaningful for leaf nodes,
// selected by Type.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool

	// Number keeps the lexeme; Int64/Float64 are set when the value is
	// known to fit the respective representation.
	Number  string
	Int64   *int64
	Float64 *float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromUint(v uint64) *Node {
	n := &Node{
		Type:   NumberType,
		Number: strconv.FormatUint(v, 10),
	}
	if v <= 1<<63-1 {
		i := int64(v)
		n.Int64 = &i
	}
	return n
}

func FromFloat(v float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(v, 'g', -1, 64),
		Float64: &v,
	}
}

// FromBytes represents binary data as its base64 string form.
func FromBytes(v []byte) *Node {
	return FromString(base64.StdEncoding.EncodeToString(v))
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// NewObject returns an empty object node with room for n entries.
func NewObject(n int) *Node {
	return &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, n),
		Values: make([]*Node, 0, n),
	}
}

// Set appends the entry, or replaces the value in place if the key is
// already present.
func (y *Node) Set(key string, v *Node) *Node {
	for i, f := range y.Fields {
		if f == key {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	return y
}

// Get returns the value for key, or nil if absent.
func (y *Node) Get(key string) *Node {
	for i, f := range y.Fields {
		if f == key {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

// Len is the number of object entries or array elements.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// AsInt64 reads the node as a signed 64-bit integer. A lexeme outside the
// int64 range, or one with a fractional part, is an error.
func (y *Node) AsInt64() (int64, error) {
	if y.Type != NumberType {
		return 0, &TypeError{Want: NumberType, Got: y.Type}
	}
	if y.Int64 != nil {
		return *y.Int64, nil
	}
	i, err := strconv.ParseInt(y.Number, 10, 64)
	if err != nil {
		return 0, &NumberError{Lexeme: y.Number, Want: "int64", Err: err}
	}
	return i, nil
}

// AsUint64 reads the node as an unsigned 64-bit integer.
func (y *Node) AsUint64() (uint64, error) {
	if y.Type != NumberType {
		return 0, &TypeError{Want: NumberType, Got: y.Type}
	}
	if y.Int64 != nil {
		if *y.Int64 < 0 {
			return 0, &NumberError{Lexeme: y.Number, Want: "uint64"}
		}
		return uint64(*y.Int64), nil
	}
	u, err := strconv.ParseUint(y.Number, 10, 64)
	if err != nil {
		return 0, &NumberError{Lexeme: y.Number, Want: "uint64", Err: err}
	}
	return u, nil
}

// AsFloat64 reads the node as a float64. Integer lexemes widen.
func (y *Node) AsFloat64() (float64, error) {
	if y.Type != NumberType {
		return 0, &TypeError{Want: NumberType, Got: y.Type}
	}
	if y.Float64 != nil {
		return *y.Float64, nil
	}
	if y.Int64 != nil {
		return float64(*y.Int64), nil
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	if err != nil {
		return 0, &NumberError{Lexeme: y.Number, Want: "float64", Err: err}
	}
	return f, nil
}

// AsBytes reads a base64 string node back into binary form.
func (y *Node) AsBytes() ([]byte, error) {
	if y.Type != StringType {
		return nil, &TypeError{Want: StringType, Got: y.Type}
	}
	return base64.StdEncoding.DecodeString(y.String)
}
