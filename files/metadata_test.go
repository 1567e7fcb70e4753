package files

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

func mustUnmarshal(t *testing.T, s string) *wire.Node {
	t.Helper()
	n, err := wire.Unmarshal([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestFileMetadataEncode(t *testing.T) {
	mod := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	m := NewFileMetadata("report.pdf", "id:a4ayc_80_OEAAAAAAAAAXw", mod, mod, "a1c10ce0dd78", 7212)
	pl := "/docs/report.pdf"
	m.PathLower = &pl

	n, err := m.MarshalWire()
	if err != nil {
		t.Fatal(err)
	}
	d, err := wire.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{".tag":"file","name":"report.pdf","path_lower":"/docs/report.pdf",` +
		`"id":"id:a4ayc_80_OEAAAAAAAAAXw","client_modified":"2026-03-01T09:30:00Z",` +
		`"server_modified":"2026-03-01T09:30:00Z","rev":"a1c10ce0dd78","size":7212}`
	if string(d) != want {
		t.Errorf("encoded:\n %s\nwant:\n %s", d, want)
	}
}

func TestDecodeMetadataFile(t *testing.T) {
	n := mustUnmarshal(t, `{".tag":"file","name":"report.pdf","path_lower":"/docs/report.pdf",`+
		`"id":"id:1","client_modified":"2026-03-01T09:30:00Z","server_modified":"2026-03-01T09:31:00Z",`+
		`"rev":"a1c10ce0dd78","size":7212}`)
	m, err := DecodeMetadata(n)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := m.(*FileMetadata)
	if !ok {
		t.Fatalf("decoded %T", m)
	}
	if f.Name != "report.pdf" || f.Size != 7212 || f.Rev != "a1c10ce0dd78" {
		t.Errorf("fields = %q %d %q", f.Name, f.Size, f.Rev)
	}
	if f.Base().Name != "report.pdf" {
		t.Error("Base() must reach the shared fields")
	}
}

func TestDecodeMetadataIgnoresUnknownFields(t *testing.T) {
	n := mustUnmarshal(t, `{".tag":"folder","name":"docs","id":"id:2","sharing_info":{"read_only":false}}`)
	m, err := DecodeMetadata(n)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := m.(*FolderMetadata)
	if !ok {
		t.Fatalf("decoded %T", m)
	}
	if f.ID != "id:2" {
		t.Errorf("ID = %q", f.ID)
	}
}

func TestDecodeMetadataUnknownSubtype(t *testing.T) {
	n := mustUnmarshal(t, `{".tag":"symlink","name":"link","path_lower":"/link","target":"/real"}`)
	m, err := DecodeMetadata(n)
	if err != nil {
		t.Fatal(err)
	}
	u, ok := m.(*UnknownMetadata)
	if !ok {
		t.Fatalf("decoded %T", m)
	}
	if u.Tag != "symlink" {
		t.Errorf("Tag = %q", u.Tag)
	}
	if u.Name != "link" {
		t.Errorf("Name = %q", u.Name)
	}
	if u.Raw == nil || u.Raw.Get("target") == nil {
		t.Error("Raw must keep the fields the catalog does not know")
	}
	if _, err := u.MarshalWire(); err == nil {
		t.Error("unknown subtype must not encode")
	}
}

func TestDecodeMetadataMissingRequired(t *testing.T) {
	n := mustUnmarshal(t, `{".tag":"file","name":"report.pdf","id":"id:1",`+
		`"client_modified":"2026-03-01T09:30:00Z","server_modified":"2026-03-01T09:31:00Z","size":7212}`)
	_, err := DecodeMetadata(n)
	var de *codec.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v", err)
	}
	if de.Struct != "FileMetadata" || de.Field != "rev" {
		t.Errorf("error names %s.%s", de.Struct, de.Field)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	mod := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	hash := "599d7..."
	orig := NewFileMetadata("a.txt", "id:9", mod, mod.Add(time.Minute), "r1", 12)
	orig.ContentHash = &hash

	n, err := orig.MarshalWire()
	if err != nil {
		t.Fatal(err)
	}
	d, err := wire.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeMetadata(mustUnmarshal(t, string(d)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMediaInfoNestedPayload(t *testing.T) {
	mi := &MediaInfoMetadata{Metadata: &PhotoMetadata{
		MediaMetadataBase: MediaMetadataBase{Dimensions: &Dimensions{Height: 600, Width: 800}},
	}}
	n, err := mi.MarshalWire()
	if err != nil {
		t.Fatal(err)
	}
	d, err := wire.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	// polymorphic payload nests under the variant key, it never flattens
	want := `{".tag":"metadata","metadata":{".tag":"photo","dimensions":{"height":600,"width":800}}}`
	if string(d) != want {
		t.Errorf("encoded:\n %s\nwant:\n %s", d, want)
	}

	back, err := DecodeMediaInfo(mustUnmarshal(t, want))
	if err != nil {
		t.Fatal(err)
	}
	mm, ok := back.(*MediaInfoMetadata)
	if !ok {
		t.Fatalf("decoded %T", back)
	}
	photo, ok := mm.Metadata.(*PhotoMetadata)
	if !ok {
		t.Fatalf("payload %T", mm.Metadata)
	}
	if photo.Dimensions == nil || photo.Dimensions.Width != 800 {
		t.Errorf("dimensions = %+v", photo.Dimensions)
	}
}

func TestMediaInfoPendingStringForm(t *testing.T) {
	mi, err := DecodeMediaInfo(wire.FromString("pending"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mi.(*MediaInfoPending); !ok {
		t.Errorf("decoded %T", mi)
	}
}

func TestDecodeMediaMetadataVideo(t *testing.T) {
	n := mustUnmarshal(t, `{".tag":"video","dimensions":{"height":1080,"width":1920},"duration":41000}`)
	mm, err := DecodeMediaMetadata(n)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := mm.(*VideoMetadata)
	if !ok {
		t.Fatalf("decoded %T", mm)
	}
	if v.Duration == nil || *v.Duration != 41000 {
		t.Errorf("Duration = %v", v.Duration)
	}
	if v.MediaBase().Dimensions.Height != 1080 {
		t.Error("MediaBase() must reach the shared fields")
	}
}
