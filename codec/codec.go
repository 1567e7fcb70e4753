package codec

import (
	"slices"

	"github.com/shelfhq/shelf-go/wire"
)

// Marshaler is implemented by every generated type.
type Marshaler interface {
	MarshalWire() (*wire.Node, error)
}

// FieldMarshaler is implemented by generated structs. MarshalWireFields
// appends the struct's field entries to obj; union variants with struct
// payloads use it to spread the payload's fields beside the ".tag" entry.
type FieldMarshaler interface {
	Marshaler
	MarshalWireFields(obj *wire.Node) error
}

// Unmarshaler is implemented by generated structs.
type Unmarshaler interface {
	UnmarshalWire(n *wire.Node) error
}

// SetRequired encodes m under field. A nil m is an encode error: required
// values must be supplied at construction, and this is the reported (not
// panicking) backstop for values built around that invariant.
func SetRequired(obj *wire.Node, structName, field string, m Marshaler) error {
	if m == nil {
		return &EncodeError{Struct: structName, Field: field, Message: "required field is absent"}
	}
	n, err := m.MarshalWire()
	if err != nil {
		return err
	}
	obj.Set(field, n)
	return nil
}

// SetOptional encodes m under field, omitting the entry when m is nil.
func SetOptional(obj *wire.Node, field string, m Marshaler) error {
	if m == nil {
		return nil
	}
	n, err := m.MarshalWire()
	if err != nil {
		return err
	}
	obj.Set(field, n)
	return nil
}

// EncodeList encodes vs as an array node.
func EncodeList[T Marshaler](vs []T) (*wire.Node, error) {
	nodes := make([]*wire.Node, len(vs))
	for i, v := range vs {
		n, err := v.MarshalWire()
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return wire.FromSlice(nodes), nil
}

// EncodeStringMap encodes m as an object node with sorted keys, so output
// is reproducible.
func EncodeStringMap[T Marshaler](m map[string]T) (*wire.Node, error) {
	obj := wire.NewObject(len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		n, err := m[k].MarshalWire()
		if err != nil {
			return nil, err
		}
		obj.Set(k, n)
	}
	return obj, nil
}
