package codec

import (
	"github.com/shelfhq/shelf-go/wire"
)

// TagKey is the reserved object key carrying a union's variant name.
const TagKey = ".tag"

// Tag reads the variant tag of a union value. The usual form is an object
// with a ".tag" entry, in which case obj is the object itself so the caller
// can read payload fields beside the tag. Servers shorten void variants to
// a bare string; that form returns a nil obj.
func Tag(n *wire.Node, name string) (tag string, obj *wire.Node, err error) {
	if n == nil {
		return "", nil, &DecodeError{Struct: name, Message: "missing value"}
	}
	switch n.Type {
	case wire.StringType:
		return n.String, nil, nil
	case wire.ObjectType:
		t := n.Get(TagKey)
		if t == nil {
			return "", nil, &DecodeError{Struct: name, Field: TagKey, Message: "missing required field"}
		}
		if t.Type != wire.StringType {
			return "", nil, &DecodeError{
				Struct:  name,
				Field:   TagKey,
				Message: (&wire.TypeError{Want: wire.StringType, Got: t.Type}).Error(),
				Err:     &wire.TypeError{Want: wire.StringType, Got: t.Type},
			}
		}
		return t.String, n, nil
	default:
		terr := &wire.TypeError{Want: wire.ObjectType, Got: n.Type}
		return "", nil, &DecodeError{Struct: name, Message: terr.Error(), Err: terr}
	}
}

// Payload returns the value nested under the variant's own name, for union
// variants whose payload is itself a union, a subtype group, or a
// primitive.
func Payload(obj *wire.Node, name, tag string) (*wire.Node, error) {
	if obj == nil {
		return nil, &DecodeError{Struct: name, Field: tag, Message: "missing variant payload"}
	}
	n := obj.Get(tag)
	if n == nil {
		return nil, &DecodeError{Struct: name, Field: tag, Message: "missing variant payload"}
	}
	return n, nil
}

// OptPayload is Payload for variants whose payload may be absent.
func OptPayload(obj *wire.Node, tag string) *wire.Node {
	if obj == nil {
		return nil
	}
	n := obj.Get(tag)
	if n == nil || n.Type == wire.NullType {
		return nil
	}
	return n
}

// Variant starts a wire object for the named variant: {".tag": tag}.
// Payload entries or flattened payload fields are appended by the caller.
func Variant(tag string, size int) *wire.Node {
	obj := wire.NewObject(size + 1)
	obj.Set(TagKey, wire.FromString(tag))
	return obj
}

// FlattenVariant encodes a struct-payload variant: the ".tag" entry with
// the payload's fields spread as siblings, never nested.
func FlattenVariant(tag string, payload FieldMarshaler) (*wire.Node, error) {
	obj := Variant(tag, 4)
	if err := payload.MarshalWireFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}
