package files

import (
	"fmt"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

// LookupError explains why a path could not be resolved. It nests inside
// most of this namespace's route errors.
type LookupError interface {
	error
	codec.Marshaler
	isLookupError()
}

// LookupErrorMalformedPath reports a path the server could not parse. The
// server may attach the offending path.
type LookupErrorMalformedPath struct {
	Path *string
}

type LookupErrorNotFound struct{}

type LookupErrorNotFile struct{}

type LookupErrorNotFolder struct{}

// LookupErrorRestrictedContent reports an entry the account is not allowed
// to reach.
type LookupErrorRestrictedContent struct{}

type LookupErrorOther struct {
	Tag string
}

func (*LookupErrorMalformedPath) isLookupError()     {}
func (*LookupErrorNotFound) isLookupError()          {}
func (*LookupErrorNotFile) isLookupError()           {}
func (*LookupErrorNotFolder) isLookupError()         {}
func (*LookupErrorRestrictedContent) isLookupError() {}
func (*LookupErrorOther) isLookupError()             {}

func (e *LookupErrorMalformedPath) Error() string {
	if e.Path != nil {
		return fmt.Sprintf("malformed path %q", *e.Path)
	}
	return "malformed path"
}

func (*LookupErrorNotFound) Error() string          { return "path not found" }
func (*LookupErrorNotFile) Error() string           { return "path is not a file" }
func (*LookupErrorNotFolder) Error() string         { return "path is not a folder" }
func (*LookupErrorRestrictedContent) Error() string { return "restricted content" }

func (e *LookupErrorOther) Error() string {
	return fmt.Sprintf("lookup error (%s)", e.Tag)
}

func (e *LookupErrorMalformedPath) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("malformed_path", 1)
	if e.Path != nil {
		obj.Set("malformed_path", wire.FromString(*e.Path))
	}
	return obj, nil
}

func (*LookupErrorNotFound) MarshalWire() (*wire.Node, error) {
	return codec.Variant("not_found", 0), nil
}

func (*LookupErrorNotFile) MarshalWire() (*wire.Node, error) {
	return codec.Variant("not_file", 0), nil
}

func (*LookupErrorNotFolder) MarshalWire() (*wire.Node, error) {
	return codec.Variant("not_folder", 0), nil
}

func (*LookupErrorRestrictedContent) MarshalWire() (*wire.Node, error) {
	return codec.Variant("restricted_content", 0), nil
}

func (e *LookupErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "LookupError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeLookupError(n *wire.Node) (LookupError, error) {
	tag, obj, err := codec.Tag(n, "LookupError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "malformed_path":
		e := &LookupErrorMalformedPath{}
		if p := codec.OptPayload(obj, tag); p != nil {
			if p.Type != wire.StringType {
				terr := &wire.TypeError{Want: wire.StringType, Got: p.Type}
				return nil, &codec.DecodeError{Struct: "LookupError", Field: tag, Message: terr.Error(), Err: terr}
			}
			s := p.String
			e.Path = &s
		}
		return e, nil
	case "not_found":
		return &LookupErrorNotFound{}, nil
	case "not_file":
		return &LookupErrorNotFile{}, nil
	case "not_folder":
		return &LookupErrorNotFolder{}, nil
	case "restricted_content":
		return &LookupErrorRestrictedContent{}, nil
	default:
		return &LookupErrorOther{Tag: tag}, nil
	}
}

// ListFolderError is the declared error of the list_folder route.
type ListFolderError interface {
	error
	codec.Marshaler
	isListFolderError()
}

type ListFolderErrorPath struct {
	Path LookupError
}

type ListFolderErrorOther struct {
	Tag string
}

func (*ListFolderErrorPath) isListFolderError()  {}
func (*ListFolderErrorOther) isListFolderError() {}

func (e *ListFolderErrorPath) Error() string {
	return fmt.Sprintf("list folder: %v", e.Path)
}

func (e *ListFolderErrorPath) Unwrap() error {
	return e.Path
}

func (e *ListFolderErrorOther) Error() string {
	return fmt.Sprintf("list folder error (%s)", e.Tag)
}

func (e *ListFolderErrorPath) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("path", 1)
	if err := codec.SetRequired(obj, "ListFolderError", "path", e.Path); err != nil {
		return nil, err
	}
	return obj, nil
}

func (e *ListFolderErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "ListFolderError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeListFolderError(n *wire.Node) (ListFolderError, error) {
	tag, obj, err := codec.Tag(n, "ListFolderError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "path":
		le, err := decodeNestedLookup(obj, "ListFolderError", tag)
		if err != nil {
			return nil, err
		}
		return &ListFolderErrorPath{Path: le}, nil
	default:
		return &ListFolderErrorOther{Tag: tag}, nil
	}
}

// ListFolderContinueError is the declared error of list_folder_continue.
type ListFolderContinueError interface {
	error
	codec.Marshaler
	isListFolderContinueError()
}

type ListFolderContinueErrorPath struct {
	Path LookupError
}

// ListFolderContinueErrorReset means the cursor is no longer valid and the
// listing must restart from ListFolder.
type ListFolderContinueErrorReset struct{}

type ListFolderContinueErrorOther struct {
	Tag string
}

func (*ListFolderContinueErrorPath) isListFolderContinueError()  {}
func (*ListFolderContinueErrorReset) isListFolderContinueError() {}
func (*ListFolderContinueErrorOther) isListFolderContinueError() {}

func (e *ListFolderContinueErrorPath) Error() string {
	return fmt.Sprintf("list folder continue: %v", e.Path)
}

func (e *ListFolderContinueErrorPath) Unwrap() error {
	return e.Path
}

func (*ListFolderContinueErrorReset) Error() string {
	return "cursor reset, restart the listing"
}

func (e *ListFolderContinueErrorOther) Error() string {
	return fmt.Sprintf("list folder continue error (%s)", e.Tag)
}

func (e *ListFolderContinueErrorPath) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("path", 1)
	if err := codec.SetRequired(obj, "ListFolderContinueError", "path", e.Path); err != nil {
		return nil, err
	}
	return obj, nil
}

func (*ListFolderContinueErrorReset) MarshalWire() (*wire.Node, error) {
	return codec.Variant("reset", 0), nil
}

func (e *ListFolderContinueErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "ListFolderContinueError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeListFolderContinueError(n *wire.Node) (ListFolderContinueError, error) {
	tag, obj, err := codec.Tag(n, "ListFolderContinueError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "path":
		le, err := decodeNestedLookup(obj, "ListFolderContinueError", tag)
		if err != nil {
			return nil, err
		}
		return &ListFolderContinueErrorPath{Path: le}, nil
	case "reset":
		return &ListFolderContinueErrorReset{}, nil
	default:
		return &ListFolderContinueErrorOther{Tag: tag}, nil
	}
}

// GetMetadataError is the declared error of the get_metadata route.
type GetMetadataError interface {
	error
	codec.Marshaler
	isGetMetadataError()
}

type GetMetadataErrorPath struct {
	Path LookupError
}

type GetMetadataErrorOther struct {
	Tag string
}

func (*GetMetadataErrorPath) isGetMetadataError()  {}
func (*GetMetadataErrorOther) isGetMetadataError() {}

func (e *GetMetadataErrorPath) Error() string {
	return fmt.Sprintf("get metadata: %v", e.Path)
}

func (e *GetMetadataErrorPath) Unwrap() error {
	return e.Path
}

func (e *GetMetadataErrorOther) Error() string {
	return fmt.Sprintf("get metadata error (%s)", e.Tag)
}

func (e *GetMetadataErrorPath) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("path", 1)
	if err := codec.SetRequired(obj, "GetMetadataError", "path", e.Path); err != nil {
		return nil, err
	}
	return obj, nil
}

func (e *GetMetadataErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "GetMetadataError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeGetMetadataError(n *wire.Node) (GetMetadataError, error) {
	tag, obj, err := codec.Tag(n, "GetMetadataError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "path":
		le, err := decodeNestedLookup(obj, "GetMetadataError", tag)
		if err != nil {
			return nil, err
		}
		return &GetMetadataErrorPath{Path: le}, nil
	default:
		return &GetMetadataErrorOther{Tag: tag}, nil
	}
}

// DownloadError is the declared error of the download route.
type DownloadError interface {
	error
	codec.Marshaler
	isDownloadError()
}

type DownloadErrorPath struct {
	Path LookupError
}

type DownloadErrorUnsupportedFile struct{}

type DownloadErrorOther struct {
	Tag string
}

func (*DownloadErrorPath) isDownloadError()            {}
func (*DownloadErrorUnsupportedFile) isDownloadError() {}
func (*DownloadErrorOther) isDownloadError()           {}

func (e *DownloadErrorPath) Error() string {
	return fmt.Sprintf("download: %v", e.Path)
}

func (e *DownloadErrorPath) Unwrap() error {
	return e.Path
}

func (*DownloadErrorUnsupportedFile) Error() string {
	return "file cannot be downloaded directly"
}

func (e *DownloadErrorOther) Error() string {
	return fmt.Sprintf("download error (%s)", e.Tag)
}

func (e *DownloadErrorPath) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("path", 1)
	if err := codec.SetRequired(obj, "DownloadError", "path", e.Path); err != nil {
		return nil, err
	}
	return obj, nil
}

func (*DownloadErrorUnsupportedFile) MarshalWire() (*wire.Node, error) {
	return codec.Variant("unsupported_file", 0), nil
}

func (e *DownloadErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "DownloadError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeDownloadError(n *wire.Node) (DownloadError, error) {
	tag, obj, err := codec.Tag(n, "DownloadError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "path":
		le, err := decodeNestedLookup(obj, "DownloadError", tag)
		if err != nil {
			return nil, err
		}
		return &DownloadErrorPath{Path: le}, nil
	case "unsupported_file":
		return &DownloadErrorUnsupportedFile{}, nil
	default:
		return &DownloadErrorOther{Tag: tag}, nil
	}
}

// WriteConflictError explains what an upload conflicted with.
type WriteConflictError interface {
	error
	codec.Marshaler
	isWriteConflictError()
}

type WriteConflictErrorFile struct{}

type WriteConflictErrorFolder struct{}

type WriteConflictErrorFileAncestor struct{}

type WriteConflictErrorOther struct {
	Tag string
}

func (*WriteConflictErrorFile) isWriteConflictError()         {}
func (*WriteConflictErrorFolder) isWriteConflictError()       {}
func (*WriteConflictErrorFileAncestor) isWriteConflictError() {}
func (*WriteConflictErrorOther) isWriteConflictError()        {}

func (*WriteConflictErrorFile) Error() string         { return "conflict with a file" }
func (*WriteConflictErrorFolder) Error() string       { return "conflict with a folder" }
func (*WriteConflictErrorFileAncestor) Error() string { return "conflict with a file in the path" }

func (e *WriteConflictErrorOther) Error() string {
	return fmt.Sprintf("write conflict (%s)", e.Tag)
}

func (*WriteConflictErrorFile) MarshalWire() (*wire.Node, error) {
	return codec.Variant("file", 0), nil
}

func (*WriteConflictErrorFolder) MarshalWire() (*wire.Node, error) {
	return codec.Variant("folder", 0), nil
}

func (*WriteConflictErrorFileAncestor) MarshalWire() (*wire.Node, error) {
	return codec.Variant("file_ancestor", 0), nil
}

func (e *WriteConflictErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "WriteConflictError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeWriteConflictError(n *wire.Node) (WriteConflictError, error) {
	tag, _, err := codec.Tag(n, "WriteConflictError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "file":
		return &WriteConflictErrorFile{}, nil
	case "folder":
		return &WriteConflictErrorFolder{}, nil
	case "file_ancestor":
		return &WriteConflictErrorFileAncestor{}, nil
	default:
		return &WriteConflictErrorOther{Tag: tag}, nil
	}
}

// WriteError explains why content could not be written.
type WriteError interface {
	error
	codec.Marshaler
	isWriteError()
}

type WriteErrorMalformedPath struct {
	Path *string
}

type WriteErrorConflict struct {
	Conflict WriteConflictError
}

type WriteErrorNoWritePermission struct{}

type WriteErrorInsufficientSpace struct{}

type WriteErrorDisallowedName struct{}

type WriteErrorOther struct {
	Tag string
}

func (*WriteErrorMalformedPath) isWriteError()     {}
func (*WriteErrorConflict) isWriteError()          {}
func (*WriteErrorNoWritePermission) isWriteError() {}
func (*WriteErrorInsufficientSpace) isWriteError() {}
func (*WriteErrorDisallowedName) isWriteError()    {}
func (*WriteErrorOther) isWriteError()             {}

func (e *WriteErrorMalformedPath) Error() string {
	if e.Path != nil {
		return fmt.Sprintf("malformed path %q", *e.Path)
	}
	return "malformed path"
}

func (e *WriteErrorConflict) Error() string {
	return fmt.Sprintf("write conflict: %v", e.Conflict)
}

func (e *WriteErrorConflict) Unwrap() error {
	return e.Conflict
}

func (*WriteErrorNoWritePermission) Error() string { return "no write permission" }
func (*WriteErrorInsufficientSpace) Error() string { return "insufficient space" }
func (*WriteErrorDisallowedName) Error() string    { return "disallowed name" }

func (e *WriteErrorOther) Error() string {
	return fmt.Sprintf("write error (%s)", e.Tag)
}

func (e *WriteErrorMalformedPath) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("malformed_path", 1)
	if e.Path != nil {
		obj.Set("malformed_path", wire.FromString(*e.Path))
	}
	return obj, nil
}

func (e *WriteErrorConflict) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("conflict", 1)
	if err := codec.SetRequired(obj, "WriteError", "conflict", e.Conflict); err != nil {
		return nil, err
	}
	return obj, nil
}

func (*WriteErrorNoWritePermission) MarshalWire() (*wire.Node, error) {
	return codec.Variant("no_write_permission", 0), nil
}

func (*WriteErrorInsufficientSpace) MarshalWire() (*wire.Node, error) {
	return codec.Variant("insufficient_space", 0), nil
}

func (*WriteErrorDisallowedName) MarshalWire() (*wire.Node, error) {
	return codec.Variant("disallowed_name", 0), nil
}

func (e *WriteErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "WriteError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeWriteError(n *wire.Node) (WriteError, error) {
	tag, obj, err := codec.Tag(n, "WriteError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "malformed_path":
		e := &WriteErrorMalformedPath{}
		if p := codec.OptPayload(obj, tag); p != nil {
			if p.Type != wire.StringType {
				terr := &wire.TypeError{Want: wire.StringType, Got: p.Type}
				return nil, &codec.DecodeError{Struct: "WriteError", Field: tag, Message: terr.Error(), Err: terr}
			}
			s := p.String
			e.Path = &s
		}
		return e, nil
	case "conflict":
		p, err := codec.Payload(obj, "WriteError", tag)
		if err != nil {
			return nil, err
		}
		c, err := DecodeWriteConflictError(p)
		if err != nil {
			return nil, err
		}
		return &WriteErrorConflict{Conflict: c}, nil
	case "no_write_permission":
		return &WriteErrorNoWritePermission{}, nil
	case "insufficient_space":
		return &WriteErrorInsufficientSpace{}, nil
	case "disallowed_name":
		return &WriteErrorDisallowedName{}, nil
	default:
		return &WriteErrorOther{Tag: tag}, nil
	}
}

// UploadWriteFailed carries the write failure of an upload plus the session
// id needed to retry the commit without resending the content.
type UploadWriteFailed struct {
	Reason          WriteError
	UploadSessionID string
}

func (u *UploadWriteFailed) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(2)
	if err := u.MarshalWireFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (u *UploadWriteFailed) MarshalWireFields(obj *wire.Node) error {
	if err := codec.SetRequired(obj, "UploadWriteFailed", "reason", u.Reason); err != nil {
		return err
	}
	obj.Set("upload_session_id", wire.FromString(u.UploadSessionID))
	return nil
}

func (u *UploadWriteFailed) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "UploadWriteFailed")
	reason := d.Value("reason")
	u.UploadSessionID = d.String("upload_session_id")
	if err := d.Err(); err != nil {
		return err
	}
	r, err := DecodeWriteError(reason)
	if err != nil {
		return err
	}
	u.Reason = r
	return nil
}

// UploadError is the declared error of the upload route. The path variant's
// payload is a struct, so its fields sit beside the ".tag" entry on the
// wire.
type UploadError interface {
	error
	codec.Marshaler
	isUploadError()
}

type UploadErrorPath struct {
	Path UploadWriteFailed
}

type UploadErrorOther struct {
	Tag string
}

func (*UploadErrorPath) isUploadError()  {}
func (*UploadErrorOther) isUploadError() {}

func (e *UploadErrorPath) Error() string {
	return fmt.Sprintf("upload: %v", e.Path.Reason)
}

func (e *UploadErrorPath) Unwrap() error {
	return e.Path.Reason
}

func (e *UploadErrorOther) Error() string {
	return fmt.Sprintf("upload error (%s)", e.Tag)
}

func (e *UploadErrorPath) MarshalWire() (*wire.Node, error) {
	return codec.FlattenVariant("path", &e.Path)
}

func (e *UploadErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "UploadError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeUploadError(n *wire.Node) (UploadError, error) {
	tag, obj, err := codec.Tag(n, "UploadError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "path":
		// struct payload: fields are flat beside the tag
		e := &UploadErrorPath{}
		if obj == nil {
			return nil, &codec.DecodeError{Struct: "UploadError", Field: tag, Message: "missing variant payload"}
		}
		if err := e.Path.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return &UploadErrorOther{Tag: tag}, nil
	}
}

// DeleteError is the declared error of the delete_v2 route.
type DeleteError interface {
	error
	codec.Marshaler
	isDeleteError()
}

type DeleteErrorPathLookup struct {
	Path LookupError
}

type DeleteErrorPathWrite struct {
	Path WriteError
}

type DeleteErrorOther struct {
	Tag string
}

func (*DeleteErrorPathLookup) isDeleteError() {}
func (*DeleteErrorPathWrite) isDeleteError()  {}
func (*DeleteErrorOther) isDeleteError()      {}

func (e *DeleteErrorPathLookup) Error() string {
	return fmt.Sprintf("delete: %v", e.Path)
}

func (e *DeleteErrorPathLookup) Unwrap() error {
	return e.Path
}

func (e *DeleteErrorPathWrite) Error() string {
	return fmt.Sprintf("delete: %v", e.Path)
}

func (e *DeleteErrorPathWrite) Unwrap() error {
	return e.Path
}

func (e *DeleteErrorOther) Error() string {
	return fmt.Sprintf("delete error (%s)", e.Tag)
}

func (e *DeleteErrorPathLookup) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("path_lookup", 1)
	if err := codec.SetRequired(obj, "DeleteError", "path_lookup", e.Path); err != nil {
		return nil, err
	}
	return obj, nil
}

func (e *DeleteErrorPathWrite) MarshalWire() (*wire.Node, error) {
	obj := codec.Variant("path_write", 1)
	if err := codec.SetRequired(obj, "DeleteError", "path_write", e.Path); err != nil {
		return nil, err
	}
	return obj, nil
}

func (e *DeleteErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "DeleteError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeDeleteError(n *wire.Node) (DeleteError, error) {
	tag, obj, err := codec.Tag(n, "DeleteError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "path_lookup":
		p, err := codec.Payload(obj, "DeleteError", tag)
		if err != nil {
			return nil, err
		}
		le, err := DecodeLookupError(p)
		if err != nil {
			return nil, err
		}
		return &DeleteErrorPathLookup{Path: le}, nil
	case "path_write":
		p, err := codec.Payload(obj, "DeleteError", tag)
		if err != nil {
			return nil, err
		}
		we, err := DecodeWriteError(p)
		if err != nil {
			return nil, err
		}
		return &DeleteErrorPathWrite{Path: we}, nil
	default:
		return &DeleteErrorOther{Tag: tag}, nil
	}
}

func decodeNestedLookup(obj *wire.Node, name, tag string) (LookupError, error) {
	p, err := codec.Payload(obj, name, tag)
	if err != nil {
		return nil, err
	}
	return DecodeLookupError(p)
}
