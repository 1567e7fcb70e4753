// Package common holds the data types shared across Shelf API namespaces.
package common

import (
	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

// PathRoot selects which root path-based routes resolve paths against. The
// encoded value travels in the Shelf-API-Path-Root request header.
type PathRoot interface {
	codec.Marshaler
	isPathRoot()
}

// PathRootHome resolves paths against the user's home folder.
type PathRootHome struct{}

// PathRootRoot resolves paths against the given namespace, failing the
// request if it is not the user's current root.
type PathRootRoot struct {
	NamespaceID string
}

// PathRootNamespaceID resolves paths against the given namespace directly.
type PathRootNamespaceID struct {
	NamespaceID string
}

// PathRootOther is the catch-all for variants this catalog does not know.
type PathRootOther struct {
	Tag string
}

func (*PathRootHome) isPathRoot()        {}
func (*PathRootRoot) isPathRoot()        {}
func (*PathRootNamespaceID) isPathRoot() {}
func (*PathRootOther) isPathRoot()       {}

func (*PathRootHome) MarshalWire() (*wire.Node, error) {
	return codec.Variant("home", 0), nil
}

func (p *PathRootRoot) MarshalWire() (*wire.Node, error) {
	n := codec.Variant("root", 1)
	n.Set("root", wire.FromString(p.NamespaceID))
	return n, nil
}

func (p *PathRootNamespaceID) MarshalWire() (*wire.Node, error) {
	n := codec.Variant("namespace_id", 1)
	n.Set("namespace_id", wire.FromString(p.NamespaceID))
	return n, nil
}

func (p *PathRootOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "PathRoot", Field: p.Tag, Message: "cannot encode unknown variant"}
}

// DecodePathRoot decodes a PathRoot union value. Unknown variants decode to
// *PathRootOther.
func DecodePathRoot(n *wire.Node) (PathRoot, error) {
	tag, obj, err := codec.Tag(n, "PathRoot")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "home":
		return &PathRootHome{}, nil
	case "root":
		id, err := payloadString(obj, "PathRoot", tag)
		if err != nil {
			return nil, err
		}
		return &PathRootRoot{NamespaceID: id}, nil
	case "namespace_id":
		id, err := payloadString(obj, "PathRoot", tag)
		if err != nil {
			return nil, err
		}
		return &PathRootNamespaceID{NamespaceID: id}, nil
	default:
		return &PathRootOther{Tag: tag}, nil
	}
}

func payloadString(obj *wire.Node, name, tag string) (string, error) {
	p, err := codec.Payload(obj, name, tag)
	if err != nil {
		return "", err
	}
	if p.Type != wire.StringType {
		terr := &wire.TypeError{Want: wire.StringType, Got: p.Type}
		return "", &codec.DecodeError{Struct: name, Field: tag, Message: terr.Error(), Err: terr}
	}
	return p.String, nil
}
