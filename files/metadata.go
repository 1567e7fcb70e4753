package files

import (
	"time"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

// Metadata describes one entry in a user's Shelf: a file, a folder, or a
// tombstone for a deleted entry. On the wire a Metadata value is a flat
// object whose ".tag" entry names the concrete type and whose remaining
// entries are the base and subtype fields side by side.
//
// Subtypes the catalog does not know decode to *UnknownMetadata, which
// keeps the tag and the raw object so callers can still route on them.
type Metadata interface {
	codec.Marshaler
	// Base widens to the fields every entry shares.
	Base() *MetadataBase
}

// MetadataBase holds the fields shared by every Metadata subtype.
type MetadataBase struct {
	// Name is the entry's name as it appears in its parent folder.
	Name        string
	PathLower   *string
	PathDisplay *string
}

func (b *MetadataBase) Base() *MetadataBase {
	return b
}

func (b *MetadataBase) marshalBaseFields(obj *wire.Node) {
	obj.Set("name", wire.FromString(b.Name))
	if b.PathLower != nil {
		obj.Set("path_lower", wire.FromString(*b.PathLower))
	}
	if b.PathDisplay != nil {
		obj.Set("path_display", wire.FromString(*b.PathDisplay))
	}
}

func (b *MetadataBase) unmarshalBaseFields(d *codec.Decoder) {
	b.Name = d.String("name")
	b.PathLower = d.OptString("path_lower")
	b.PathDisplay = d.OptString("path_display")
}

// FileMetadata is the Metadata subtype for files.
type FileMetadata struct {
	MetadataBase
	ID string
	// ClientModified is the modification time the uploading client
	// reported; the server does not verify it.
	ClientModified time.Time
	ServerModified time.Time
	Rev            string
	Size           uint64
	ContentHash    *string
	MediaInfo      MediaInfo
}

func NewFileMetadata(name, id string, clientModified, serverModified time.Time, rev string, size uint64) *FileMetadata {
	return &FileMetadata{
		MetadataBase:   MetadataBase{Name: name},
		ID:             id,
		ClientModified: clientModified,
		ServerModified: serverModified,
		Rev:            rev,
		Size:           size,
	}
}

func (m *FileMetadata) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("file", 9)
	if err := m.MarshalWireFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (m *FileMetadata) MarshalWireFields(obj *wire.Node) error {
	m.marshalBaseFields(obj)
	obj.Set("id", wire.FromString(m.ID))
	obj.Set("client_modified", codec.FromTime(m.ClientModified))
	obj.Set("server_modified", codec.FromTime(m.ServerModified))
	obj.Set("rev", wire.FromString(m.Rev))
	obj.Set("size", wire.FromUint(m.Size))
	if m.ContentHash != nil {
		obj.Set("content_hash", wire.FromString(*m.ContentHash))
	}
	return codec.SetOptional(obj, "media_info", m.MediaInfo)
}

func (m *FileMetadata) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "FileMetadata")
	m.unmarshalBaseFields(d)
	m.ID = d.String("id")
	m.ClientModified = d.Time("client_modified")
	m.ServerModified = d.Time("server_modified")
	m.Rev = d.String("rev")
	m.Size = d.Uint64("size")
	m.ContentHash = d.OptString("content_hash")
	if mi := d.Opt("media_info"); mi != nil {
		v, err := DecodeMediaInfo(mi)
		if err != nil {
			d.Fail("media_info", err)
		} else {
			m.MediaInfo = v
		}
	}
	return d.Err()
}

// FolderMetadata is the Metadata subtype for folders.
type FolderMetadata struct {
	MetadataBase
	ID string
}

func NewFolderMetadata(name, id string) *FolderMetadata {
	return &FolderMetadata{MetadataBase: MetadataBase{Name: name}, ID: id}
}

func (m *FolderMetadata) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("folder", 4)
	if err := m.MarshalWireFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (m *FolderMetadata) MarshalWireFields(obj *wire.Node) error {
	m.marshalBaseFields(obj)
	obj.Set("id", wire.FromString(m.ID))
	return nil
}

func (m *FolderMetadata) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "FolderMetadata")
	m.unmarshalBaseFields(d)
	m.ID = d.String("id")
	return d.Err()
}

// DeletedMetadata marks an entry that no longer exists, reported by
// recursive or continued listings.
type DeletedMetadata struct {
	MetadataBase
}

func NewDeletedMetadata(name string) *DeletedMetadata {
	return &DeletedMetadata{MetadataBase: MetadataBase{Name: name}}
}

func (m *DeletedMetadata) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("deleted", 3)
	if err := m.MarshalWireFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (m *DeletedMetadata) MarshalWireFields(obj *wire.Node) error {
	m.marshalBaseFields(obj)
	return nil
}

func (m *DeletedMetadata) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "DeletedMetadata")
	m.unmarshalBaseFields(d)
	return d.Err()
}

// UnknownMetadata is the catch-all for subtypes added to the service after
// this catalog was generated. Base fields are decoded when present; Raw
// keeps the whole object.
type UnknownMetadata struct {
	MetadataBase
	Tag string
	Raw *wire.Node
}

func (m *UnknownMetadata) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "Metadata", Field: m.Tag, Message: "cannot encode unknown subtype"}
}

// DecodeMetadata decodes one entry of the Metadata group by its ".tag".
func DecodeMetadata(n *wire.Node) (Metadata, error) {
	tag, obj, err := codec.Tag(n, "Metadata")
	if err != nil {
		return nil, err
	}
	if obj == nil {
		// bare-string form carries no fields, so only the tag survives
		return &UnknownMetadata{Tag: tag}, nil
	}
	switch tag {
	case "file":
		m := new(FileMetadata)
		if err := m.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return m, nil
	case "folder":
		m := new(FolderMetadata)
		if err := m.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return m, nil
	case "deleted":
		m := new(DeletedMetadata)
		if err := m.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return m, nil
	default:
		m := &UnknownMetadata{Tag: tag, Raw: obj.Clone()}
		d := codec.Struct(obj, "Metadata")
		m.Name = d.StringDefault("name", "")
		m.PathLower = d.OptString("path_lower")
		m.PathDisplay = d.OptString("path_display")
		return m, nil
	}
}

// MediaInfo reports whether media analysis of a file is done and, once it
// is, the extracted media metadata. The metadata variant's payload is
// itself polymorphic, so on the wire it nests under the variant key instead
// of flattening.
type MediaInfo interface {
	codec.Marshaler
	isMediaInfo()
}

// MediaInfoPending means the file's media analysis has not finished.
type MediaInfoPending struct{}

type MediaInfoMetadata struct {
	Metadata MediaMetadata
}

type MediaInfoOther struct {
	Tag string
}

func (*MediaInfoPending) isMediaInfo()  {}
func (*MediaInfoMetadata) isMediaInfo() {}
func (*MediaInfoOther) isMediaInfo()    {}

func (*MediaInfoPending) MarshalWire() (*wire.Node, error) {
	return codec.Variant("pending", 0), nil
}

func (m *MediaInfoMetadata) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("metadata", 1)
	if err := codec.SetRequired(obj, "MediaInfo", "metadata", m.Metadata); err != nil {
		return nil, err
	}
	return obj, nil
}

func (m *MediaInfoOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "MediaInfo", Field: m.Tag, Message: "cannot encode unknown variant"}
}

func DecodeMediaInfo(n *wire.Node) (MediaInfo, error) {
	tag, obj, err := codec.Tag(n, "MediaInfo")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "pending":
		return &MediaInfoPending{}, nil
	case "metadata":
		p, err := codec.Payload(obj, "MediaInfo", tag)
		if err != nil {
			return nil, err
		}
		mm, err := DecodeMediaMetadata(p)
		if err != nil {
			return nil, err
		}
		return &MediaInfoMetadata{Metadata: mm}, nil
	default:
		return &MediaInfoOther{Tag: tag}, nil
	}
}

// MediaMetadata is the polymorphic group of extracted media properties.
type MediaMetadata interface {
	codec.Marshaler
	MediaBase() *MediaMetadataBase
}

type MediaMetadataBase struct {
	Dimensions *Dimensions
	TimeTaken  *time.Time
}

func (b *MediaMetadataBase) MediaBase() *MediaMetadataBase {
	return b
}

func (b *MediaMetadataBase) marshalBaseFields(obj *wire.Node) error {
	if b.Dimensions != nil {
		if err := codec.SetOptional(obj, "dimensions", b.Dimensions); err != nil {
			return err
		}
	}
	if b.TimeTaken != nil {
		obj.Set("time_taken", codec.FromTime(*b.TimeTaken))
	}
	return nil
}

func (b *MediaMetadataBase) unmarshalBaseFields(d *codec.Decoder) {
	if dim := d.Opt("dimensions"); dim != nil {
		v := new(Dimensions)
		if err := v.UnmarshalWire(dim); err != nil {
			d.Fail("dimensions", err)
		} else {
			b.Dimensions = v
		}
	}
	b.TimeTaken = d.OptTime("time_taken")
}

// PhotoMetadata is the MediaMetadata subtype for photos.
type PhotoMetadata struct {
	MediaMetadataBase
}

func (m *PhotoMetadata) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("photo", 2)
	if err := m.marshalBaseFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (m *PhotoMetadata) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "PhotoMetadata")
	m.unmarshalBaseFields(d)
	return d.Err()
}

// VideoMetadata is the MediaMetadata subtype for videos. Duration is in
// milliseconds.
type VideoMetadata struct {
	MediaMetadataBase
	Duration *uint64
}

func (m *VideoMetadata) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("video", 3)
	if err := m.marshalBaseFields(obj); err != nil {
		return nil, err
	}
	if m.Duration != nil {
		obj.Set("duration", wire.FromUint(*m.Duration))
	}
	return obj, nil
}

func (m *VideoMetadata) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "VideoMetadata")
	m.unmarshalBaseFields(d)
	m.Duration = d.OptUint64("duration")
	return d.Err()
}

// UnknownMediaMetadata is the catch-all for MediaMetadata subtypes this
// catalog does not know.
type UnknownMediaMetadata struct {
	MediaMetadataBase
	Tag string
	Raw *wire.Node
}

func (m *UnknownMediaMetadata) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "MediaMetadata", Field: m.Tag, Message: "cannot encode unknown subtype"}
}

func DecodeMediaMetadata(n *wire.Node) (MediaMetadata, error) {
	tag, obj, err := codec.Tag(n, "MediaMetadata")
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return &UnknownMediaMetadata{Tag: tag}, nil
	}
	switch tag {
	case "photo":
		m := new(PhotoMetadata)
		if err := m.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return m, nil
	case "video":
		m := new(VideoMetadata)
		if err := m.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return m, nil
	default:
		m := &UnknownMediaMetadata{Tag: tag, Raw: obj.Clone()}
		d := codec.Struct(obj, "MediaMetadata")
		m.unmarshalBaseFields(d)
		return m, nil
	}
}

// Dimensions is the pixel size of a photo or video.
type Dimensions struct {
	Height uint64
	Width  uint64
}

func (d *Dimensions) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(2)
	obj.Set("height", wire.FromUint(d.Height))
	obj.Set("width", wire.FromUint(d.Width))
	return obj, nil
}

func (d *Dimensions) UnmarshalWire(n *wire.Node) error {
	dec := codec.Struct(n, "Dimensions")
	d.Height = dec.Uint64("height")
	d.Width = dec.Uint64("width")
	return dec.Err()
}
