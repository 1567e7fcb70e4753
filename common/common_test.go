package common

import (
	"testing"

	"github.com/shelfhq/shelf-go/wire"
)

func TestPathRootEncode(t *testing.T) {
	tests := []struct {
		name string
		root PathRoot
		want string
	}{
		{"home", &PathRootHome{}, `{".tag":"home"}`},
		{"root", &PathRootRoot{NamespaceID: "ns:1"}, `{".tag":"root","root":"ns:1"}`},
		{"namespace_id", &PathRootNamespaceID{NamespaceID: "ns:2"}, `{".tag":"namespace_id","namespace_id":"ns:2"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.root.MarshalWire()
			if err != nil {
				t.Fatal(err)
			}
			d, err := wire.Marshal(n)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tc.want {
				t.Errorf("got %s, want %s", d, tc.want)
			}
		})
	}
}

func TestPathRootDecode(t *testing.T) {
	n, err := wire.Unmarshal([]byte(`{".tag":"root","root":"ns:1"}`))
	if err != nil {
		t.Fatal(err)
	}
	root, err := DecodePathRoot(n)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := root.(*PathRootRoot)
	if !ok {
		t.Fatalf("decoded %T", root)
	}
	if r.NamespaceID != "ns:1" {
		t.Errorf("NamespaceID = %q", r.NamespaceID)
	}
}

func TestPathRootDecodeStringForm(t *testing.T) {
	root, err := DecodePathRoot(wire.FromString("home"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := root.(*PathRootHome); !ok {
		t.Errorf("decoded %T", root)
	}
}

func TestPathRootDecodeUnknownTag(t *testing.T) {
	n, err := wire.Unmarshal([]byte(`{".tag":"shared_root","shared_root":"ns:9"}`))
	if err != nil {
		t.Fatal(err)
	}
	root, err := DecodePathRoot(n)
	if err != nil {
		t.Fatal(err)
	}
	o, ok := root.(*PathRootOther)
	if !ok {
		t.Fatalf("decoded %T", root)
	}
	if o.Tag != "shared_root" {
		t.Errorf("Tag = %q", o.Tag)
	}
	if _, err := o.MarshalWire(); err == nil {
		t.Error("unknown variant must not encode")
	}
}
