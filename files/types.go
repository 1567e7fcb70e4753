package files

import (
	"fmt"
	"time"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

// ListFolderArg asks for the contents of a folder. Path "" means the root.
type ListFolderArg struct {
	Path string
	// Recursive lists the whole subtree; entries may then include deleted
	// tombstones.
	Recursive        bool
	IncludeMediaInfo bool
	Limit            *uint32
}

func NewListFolderArg(path string) *ListFolderArg {
	return &ListFolderArg{Path: path}
}

func (a *ListFolderArg) WithRecursive(v bool) *ListFolderArg {
	a.Recursive = v
	return a
}

func (a *ListFolderArg) WithIncludeMediaInfo(v bool) *ListFolderArg {
	a.IncludeMediaInfo = v
	return a
}

func (a *ListFolderArg) WithLimit(limit uint32) *ListFolderArg {
	a.Limit = &limit
	return a
}

func (a *ListFolderArg) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(4)
	obj.Set("path", wire.FromString(a.Path))
	obj.Set("recursive", wire.FromBool(a.Recursive))
	obj.Set("include_media_info", wire.FromBool(a.IncludeMediaInfo))
	if a.Limit != nil {
		obj.Set("limit", wire.FromUint(uint64(*a.Limit)))
	}
	return obj, nil
}

func (a *ListFolderArg) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "ListFolderArg")
	a.Path = d.String("path")
	a.Recursive = d.BoolDefault("recursive", false)
	a.IncludeMediaInfo = d.BoolDefault("include_media_info", false)
	a.Limit = d.OptUint32("limit")
	return d.Err()
}

// ListFolderResult is one page of a folder listing. When HasMore is set,
// pass Cursor to ListFolderContinue for the next page.
type ListFolderResult struct {
	Entries []Metadata
	Cursor  string
	HasMore bool
}

func (r *ListFolderResult) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(3)
	entries, err := codec.EncodeList(r.Entries)
	if err != nil {
		return nil, err
	}
	obj.Set("entries", entries)
	obj.Set("cursor", wire.FromString(r.Cursor))
	obj.Set("has_more", wire.FromBool(r.HasMore))
	return obj, nil
}

func (r *ListFolderResult) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "ListFolderResult")
	r.Entries = codec.List(d, "entries", DecodeMetadata)
	r.Cursor = d.String("cursor")
	r.HasMore = d.Bool("has_more")
	return d.Err()
}

type ListFolderContinueArg struct {
	Cursor string
}

func NewListFolderContinueArg(cursor string) *ListFolderContinueArg {
	return &ListFolderContinueArg{Cursor: cursor}
}

func (a *ListFolderContinueArg) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(1)
	obj.Set("cursor", wire.FromString(a.Cursor))
	return obj, nil
}

func (a *ListFolderContinueArg) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "ListFolderContinueArg")
	a.Cursor = d.String("cursor")
	return d.Err()
}

// GetMetadataArg asks for one entry's metadata by path, id or rev.
type GetMetadataArg struct {
	Path             string
	IncludeMediaInfo bool
}

func NewGetMetadataArg(path string) *GetMetadataArg {
	return &GetMetadataArg{Path: path}
}

func (a *GetMetadataArg) WithIncludeMediaInfo(v bool) *GetMetadataArg {
	a.IncludeMediaInfo = v
	return a
}

func (a *GetMetadataArg) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(2)
	obj.Set("path", wire.FromString(a.Path))
	obj.Set("include_media_info", wire.FromBool(a.IncludeMediaInfo))
	return obj, nil
}

func (a *GetMetadataArg) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "GetMetadataArg")
	a.Path = d.String("path")
	a.IncludeMediaInfo = d.BoolDefault("include_media_info", false)
	return d.Err()
}

// DownloadArg names the file to download, optionally at a specific rev.
type DownloadArg struct {
	Path string
	Rev  *string
}

func NewDownloadArg(path string) *DownloadArg {
	return &DownloadArg{Path: path}
}

func (a *DownloadArg) WithRev(rev string) *DownloadArg {
	a.Rev = &rev
	return a
}

func (a *DownloadArg) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(2)
	obj.Set("path", wire.FromString(a.Path))
	if a.Rev != nil {
		obj.Set("rev", wire.FromString(*a.Rev))
	}
	return obj, nil
}

func (a *DownloadArg) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "DownloadArg")
	a.Path = d.String("path")
	a.Rev = d.OptString("rev")
	return d.Err()
}

// WriteMode says what to do when the upload path already holds a file. The
// update variant carries the rev the client believes it is overwriting, so
// a concurrent change surfaces as a conflict instead of being clobbered.
type WriteMode interface {
	codec.Marshaler
	isWriteMode()
}

type WriteModeAdd struct{}

type WriteModeOverwrite struct{}

type WriteModeUpdate struct {
	Rev string
}

func (*WriteModeAdd) isWriteMode()       {}
func (*WriteModeOverwrite) isWriteMode() {}
func (*WriteModeUpdate) isWriteMode()    {}

func (*WriteModeAdd) MarshalWire() (*wire.Node, error) {
	return codec.Variant("add", 0), nil
}

func (*WriteModeOverwrite) MarshalWire() (*wire.Node, error) {
	return codec.Variant("overwrite", 0), nil
}

func (m *WriteModeUpdate) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("update", 1)
	obj.Set("update", wire.FromString(m.Rev))
	return obj, nil
}

func DecodeWriteMode(n *wire.Node) (WriteMode, error) {
	tag, obj, err := codec.Tag(n, "WriteMode")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "add":
		return &WriteModeAdd{}, nil
	case "overwrite":
		return &WriteModeOverwrite{}, nil
	case "update":
		p, err := codec.Payload(obj, "WriteMode", tag)
		if err != nil {
			return nil, err
		}
		if p.Type != wire.StringType {
			terr := &wire.TypeError{Want: wire.StringType, Got: p.Type}
			return nil, &codec.DecodeError{Struct: "WriteMode", Field: tag, Message: terr.Error(), Err: terr}
		}
		return &WriteModeUpdate{Rev: p.String}, nil
	default:
		return nil, &codec.DecodeError{Struct: "WriteMode", Field: codec.TagKey, Message: fmt.Sprintf("unknown variant %q", tag)}
	}
}

// CommitInfo is the argument of the upload route. Mode defaults to add.
type CommitInfo struct {
	Path           string
	Mode           WriteMode
	Autorename     bool
	ClientModified *time.Time
	Mute           bool
}

func NewCommitInfo(path string) *CommitInfo {
	return &CommitInfo{Path: path, Mode: &WriteModeAdd{}}
}

func (c *CommitInfo) WithMode(m WriteMode) *CommitInfo {
	c.Mode = m
	return c
}

func (c *CommitInfo) WithAutorename(v bool) *CommitInfo {
	c.Autorename = v
	return c
}

func (c *CommitInfo) WithClientModified(t time.Time) *CommitInfo {
	c.ClientModified = &t
	return c
}

func (c *CommitInfo) WithMute(v bool) *CommitInfo {
	c.Mute = v
	return c
}

func (c *CommitInfo) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(5)
	obj.Set("path", wire.FromString(c.Path))
	mode := c.Mode
	if mode == nil {
		mode = &WriteModeAdd{}
	}
	if err := codec.SetRequired(obj, "CommitInfo", "mode", mode); err != nil {
		return nil, err
	}
	obj.Set("autorename", wire.FromBool(c.Autorename))
	if c.ClientModified != nil {
		obj.Set("client_modified", codec.FromTime(*c.ClientModified))
	}
	obj.Set("mute", wire.FromBool(c.Mute))
	return obj, nil
}

func (c *CommitInfo) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "CommitInfo")
	c.Path = d.String("path")
	if m := d.Opt("mode"); m != nil {
		v, err := DecodeWriteMode(m)
		if err != nil {
			d.Fail("mode", err)
		} else {
			c.Mode = v
		}
	} else {
		c.Mode = &WriteModeAdd{}
	}
	c.Autorename = d.BoolDefault("autorename", false)
	c.ClientModified = d.OptTime("client_modified")
	c.Mute = d.BoolDefault("mute", false)
	return d.Err()
}

type DeleteArg struct {
	Path string
}

func NewDeleteArg(path string) *DeleteArg {
	return &DeleteArg{Path: path}
}

func (a *DeleteArg) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(1)
	obj.Set("path", wire.FromString(a.Path))
	return obj, nil
}

func (a *DeleteArg) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "DeleteArg")
	a.Path = d.String("path")
	return d.Err()
}

// DeleteResult reports what was deleted.
type DeleteResult struct {
	Metadata Metadata
}

func (r *DeleteResult) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(1)
	if err := codec.SetRequired(obj, "DeleteResult", "metadata", r.Metadata); err != nil {
		return nil, err
	}
	return obj, nil
}

func (r *DeleteResult) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "DeleteResult")
	md := d.Value("metadata")
	if err := d.Err(); err != nil {
		return err
	}
	m, err := DecodeMetadata(md)
	if err != nil {
		return err
	}
	r.Metadata = m
	return nil
}
