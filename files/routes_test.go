package files

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	shelf "github.com/shelfhq/shelf-go"
)

// fakeTransport records the request and replies with a canned response.
type fakeTransport struct {
	req *shelf.Request
	res *shelf.Response
	err error
}

func (f *fakeTransport) RoundTrip(_ context.Context, req *shelf.Request) (*shelf.Response, error) {
	f.req = req
	return f.res, f.err
}

func TestListFolderRoute(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 200,
		Result: []byte(`{"entries":[{".tag":"folder","name":"docs","id":"id:2"}],"cursor":"c1","has_more":false}`),
	}}
	res, err := ListFolder(context.Background(), ft, NewListFolderArg("/docs"))
	if err != nil {
		t.Fatal(err)
	}
	if ft.req.Fn() != "files/list_folder" {
		t.Errorf("fn = %q", ft.req.Fn())
	}
	if ft.req.Style != shelf.StyleRPC || ft.req.Endpoint != shelf.EndpointAPI {
		t.Errorf("style = %v, endpoint = %v", ft.req.Style, ft.req.Endpoint)
	}
	wantParams := `{"path":"/docs","recursive":false,"include_media_info":false}`
	if string(ft.req.Params) != wantParams {
		t.Errorf("params = %s", ft.req.Params)
	}
	if len(res.Entries) != 1 || res.Cursor != "c1" {
		t.Errorf("result = %+v", res)
	}
}

func TestListFolderRouteError(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 409,
		Result: []byte(`{"error_summary":"path/not_found/..","error":{".tag":"path","path":{".tag":"not_found"}}}`),
	}}
	_, err := ListFolder(context.Background(), ft, NewListFolderArg("/nope"))
	if err == nil {
		t.Fatal("want error")
	}
	var apiErr *shelf.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T: %v", err, err)
	}
	if apiErr.Summary != "path/not_found/.." {
		t.Errorf("Summary = %q", apiErr.Summary)
	}
	var pe *ListFolderErrorPath
	if !errors.As(err, &pe) {
		t.Fatalf("route error not recoverable from %v", err)
	}
	var nf *LookupErrorNotFound
	if !errors.As(err, &nf) {
		t.Error("nested lookup error not recoverable")
	}
}

func TestDownloadRoute(t *testing.T) {
	length := uint64(5)
	ft := &fakeTransport{res: &shelf.Response{
		Status: 200,
		Result: []byte(`{"name":"a.txt","id":"id:1","client_modified":"2026-03-01T09:30:00Z",` +
			`"server_modified":"2026-03-01T09:30:00Z","rev":"r1","size":5}`),
		ContentLength: &length,
		Body:          io.NopCloser(bytes.NewReader([]byte("hello"))),
	}}
	start := uint64(0)
	md, content, err := DownloadRange(context.Background(), ft, NewDownloadArg("/a.txt"), &start, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer content.Body.Close()
	if ft.req.Style != shelf.StyleDownload || ft.req.Fn() != "files/download" {
		t.Errorf("req = %+v", ft.req)
	}
	if ft.req.RangeStart == nil || *ft.req.RangeStart != 0 {
		t.Error("range start not passed through")
	}
	if md.Name != "a.txt" {
		t.Errorf("Name = %q", md.Name)
	}
	b, err := io.ReadAll(content.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello" {
		t.Errorf("body = %q", b)
	}
}

func TestUploadRoute(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 200,
		Result: []byte(`{"name":"a.txt","id":"id:1","client_modified":"2026-03-01T09:30:00Z",` +
			`"server_modified":"2026-03-01T09:30:00Z","rev":"r2","size":5}`),
	}}
	md, err := Upload(context.Background(), ft, NewCommitInfo("/a.txt"), bytes.NewReader([]byte("hello")))
	if err != nil {
		t.Fatal(err)
	}
	if ft.req.Style != shelf.StyleUpload || ft.req.Body == nil {
		t.Errorf("req = %+v", ft.req)
	}
	if md.Rev != "r2" {
		t.Errorf("Rev = %q", md.Rev)
	}
}

func TestGetMetadataRoute(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 200,
		Result: []byte(`{".tag":"deleted","name":"gone.txt"}`),
	}}
	md, err := GetMetadata(context.Background(), ft, NewGetMetadataArg("/gone.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := md.(*DeletedMetadata); !ok {
		t.Errorf("decoded %T", md)
	}
}

func TestDeleteRoute(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 200,
		Result: []byte(`{"metadata":{".tag":"file","name":"a.txt","id":"id:1",` +
			`"client_modified":"2026-03-01T09:30:00Z","server_modified":"2026-03-01T09:30:00Z",` +
			`"rev":"r1","size":5}}`),
	}}
	res, err := Delete(context.Background(), ft, NewDeleteArg("/a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if ft.req.Fn() != "files/delete_v2" {
		t.Errorf("fn = %q", ft.req.Fn())
	}
	if _, ok := res.Metadata.(*FileMetadata); !ok {
		t.Errorf("decoded %T", res.Metadata)
	}
}
