package files

import (
	"context"
	"io"

	shelf "github.com/shelfhq/shelf-go"
	"github.com/shelfhq/shelf-go/wire"
)

const namespace = "files"

func errDecoder[E error](dec func(*wire.Node) (E, error)) shelf.ErrorDecoder {
	return func(n *wire.Node) (error, error) {
		e, err := dec(n)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// ListFolder returns the first page of a folder listing.
func ListFolder(ctx context.Context, t shelf.Transport, arg *ListFolderArg) (*ListFolderResult, error) {
	res := new(ListFolderResult)
	err := shelf.RPC(ctx, t, shelf.EndpointAPI, namespace, "list_folder", arg, res, errDecoder(DecodeListFolderError))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ListFolderContinue returns the next page of a listing started by
// ListFolder.
func ListFolderContinue(ctx context.Context, t shelf.Transport, arg *ListFolderContinueArg) (*ListFolderResult, error) {
	res := new(ListFolderResult)
	err := shelf.RPC(ctx, t, shelf.EndpointAPI, namespace, "list_folder/continue", arg, res, errDecoder(DecodeListFolderContinueError))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetMetadata returns the metadata of one entry.
func GetMetadata(ctx context.Context, t shelf.Transport, arg *GetMetadataArg) (Metadata, error) {
	res := new(metadataResult)
	err := shelf.RPC(ctx, t, shelf.EndpointAPI, namespace, "get_metadata", arg, res, errDecoder(DecodeGetMetadataError))
	if err != nil {
		return nil, err
	}
	return res.m, nil
}

// Delete removes a file, or a folder and all its contents.
func Delete(ctx context.Context, t shelf.Transport, arg *DeleteArg) (*DeleteResult, error) {
	res := new(DeleteResult)
	err := shelf.RPC(ctx, t, shelf.EndpointAPI, namespace, "delete_v2", arg, res, errDecoder(DecodeDeleteError))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Download fetches a file's metadata and content. The caller must close
// Content.Body.
func Download(ctx context.Context, t shelf.Transport, arg *DownloadArg) (*FileMetadata, *shelf.Content, error) {
	return DownloadRange(ctx, t, arg, nil, nil)
}

// DownloadRange is Download limited to a byte range of the content. Either
// bound may be nil; the bounds follow HTTP Range semantics.
func DownloadRange(ctx context.Context, t shelf.Transport, arg *DownloadArg, start, end *uint64) (*FileMetadata, *shelf.Content, error) {
	res := new(FileMetadata)
	content, err := shelf.Download(ctx, t, namespace, "download", arg, res, errDecoder(DecodeDownloadError), start, end)
	if err != nil {
		return nil, nil, err
	}
	return res, content, nil
}

// Upload stores content at arg.Path and returns the new file's metadata.
func Upload(ctx context.Context, t shelf.Transport, arg *CommitInfo, content io.Reader) (*FileMetadata, error) {
	res := new(FileMetadata)
	err := shelf.Upload(ctx, t, namespace, "upload", arg, content, res, errDecoder(DecodeUploadError))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// metadataResult adapts the polymorphic result of get_metadata to the
// route helper's Unmarshaler.
type metadataResult struct {
	m Metadata
}

func (r *metadataResult) UnmarshalWire(n *wire.Node) error {
	m, err := DecodeMetadata(n)
	if err != nil {
		return err
	}
	r.m = m
	return nil
}
