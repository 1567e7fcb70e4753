package shelf

import (
	"context"
	"fmt"
	"io"
)

// Endpoint selects which service host a route talks to.
type Endpoint int

const (
	// EndpointAPI hosts the plain RPC routes.
	EndpointAPI Endpoint = iota
	// EndpointContent hosts upload/download routes.
	EndpointContent
	// EndpointNotify hosts the longpoll routes; requests to it carry no
	// authorization.
	EndpointNotify
)

func (e Endpoint) String() string {
	switch e {
	case EndpointAPI:
		return "api"
	case EndpointContent:
		return "content"
	case EndpointNotify:
		return "notify"
	}
	return fmt.Sprintf("Endpoint(%d)", int(e))
}

// Style is the calling convention of a route: where the encoded argument
// and the result travel, and whether a content body is involved.
type Style int

const (
	// StyleRPC sends the argument as the request body and reads the
	// result from the response body.
	StyleRPC Style = iota
	// StyleUpload sends the argument in a header and the content as the
	// request body; the result comes back in the response body.
	StyleUpload
	// StyleDownload sends the argument in a header; the result comes back
	// in a response header and the response body is the content stream.
	StyleDownload
)

func (s Style) String() string {
	switch s {
	case StyleRPC:
		return "rpc"
	case StyleUpload:
		return "upload"
	case StyleDownload:
		return "download"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParamsType is the content type of the encoded argument.
type ParamsType int

const (
	ParamsJSON ParamsType = iota
	ParamsURLEncoded
)

func (p ParamsType) ContentType() string {
	if p == ParamsURLEncoded {
		return "application/x-www-form-urlencoded"
	}
	return "application/json"
}

// Request is one route invocation handed to a Transport.
type Request struct {
	Endpoint   Endpoint
	Style      Style
	Namespace  string
	Route      string
	Params     []byte
	ParamsType ParamsType

	// Body is the content stream for StyleUpload routes.
	Body io.Reader

	// RangeStart/RangeEnd bound a partial download; either may be nil.
	RangeStart *uint64
	RangeEnd   *uint64
}

// Fn is the slash-form route name, e.g. "files/list_folder".
func (r *Request) Fn() string {
	return r.Namespace + "/" + r.Route
}

// Response is the successful or API-error outcome of a Request.
type Response struct {
	// Status is the HTTP status: 200-range, or 409 when Result carries a
	// route error envelope.
	Status int

	// Result is the encoded result or error envelope.
	Result []byte

	// ContentLength is the length of Body when the server declared one.
	ContentLength *uint64

	// Body is the content stream of a StyleDownload response. The caller
	// owns it and must close it.
	Body io.ReadCloser
}

// Transport carries one request to the service. Implementations own all
// connection-level concerns: pooling, timeouts, TLS, and any retry policy.
// A Transport must be safe for concurrent use.
//
// Transport errors are returned as error values from the taxonomy in this
// package (AuthError, RateLimitError, ServerError, StatusError) or as
// plain network errors; HTTP 409 is not an error at this layer, since its
// body is the route's typed error and is decoded by the caller.
type Transport interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}
