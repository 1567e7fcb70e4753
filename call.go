package shelf

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

// ErrorDecoder decodes a route's typed error union from the value under the
// "error" key of the HTTP 409 envelope. The first return is the decoded
// route error; the second reports that decoding itself failed.
type ErrorDecoder func(n *wire.Node) (error, error)

// Content is the streamed half of a download response. The caller owns Body
// and must close it.
type Content struct {
	ContentLength *uint64
	Body          io.ReadCloser
}

// RPC invokes an rpc-style route: encodes arg as the request body and
// decodes the response body into res. A nil arg means the route takes no
// argument; a nil res discards the result.
func RPC(ctx context.Context, t Transport, e Endpoint, ns, route string, arg codec.Marshaler, res codec.Unmarshaler, errDec ErrorDecoder) error {
	params, err := encodeParams(arg)
	if err != nil {
		return err
	}
	hres, err := t.RoundTrip(ctx, &Request{
		Endpoint:  e,
		Style:     StyleRPC,
		Namespace: ns,
		Route:     route,
		Params:    params,
	})
	if err != nil {
		return err
	}
	if err := routeError(hres, errDec); err != nil {
		return err
	}
	return decodeResult(hres.Result, res)
}

// Download invokes a download-style route: arg travels in a header, the
// result comes back in a header, and the returned Content streams the
// response body. Either range bound may be nil.
func Download(ctx context.Context, t Transport, ns, route string, arg codec.Marshaler, res codec.Unmarshaler, errDec ErrorDecoder, rangeStart, rangeEnd *uint64) (*Content, error) {
	params, err := encodeParams(arg)
	if err != nil {
		return nil, err
	}
	hres, err := t.RoundTrip(ctx, &Request{
		Endpoint:   EndpointContent,
		Style:      StyleDownload,
		Namespace:  ns,
		Route:      route,
		Params:     params,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
	})
	if err != nil {
		return nil, err
	}
	if err := routeError(hres, errDec); err != nil {
		return nil, err
	}
	if err := decodeResult(hres.Result, res); err != nil {
		if hres.Body != nil {
			hres.Body.Close()
		}
		return nil, err
	}
	return &Content{ContentLength: hres.ContentLength, Body: hres.Body}, nil
}

// Upload invokes an upload-style route: arg travels in a header and body is
// sent as the request content.
func Upload(ctx context.Context, t Transport, ns, route string, arg codec.Marshaler, body io.Reader, res codec.Unmarshaler, errDec ErrorDecoder) error {
	params, err := encodeParams(arg)
	if err != nil {
		return err
	}
	hres, err := t.RoundTrip(ctx, &Request{
		Endpoint:  EndpointContent,
		Style:     StyleUpload,
		Namespace: ns,
		Route:     route,
		Params:    params,
		Body:      body,
	})
	if err != nil {
		return err
	}
	if err := routeError(hres, errDec); err != nil {
		return err
	}
	return decodeResult(hres.Result, res)
}

func encodeParams(arg codec.Marshaler) ([]byte, error) {
	if arg == nil {
		return nil, nil
	}
	n, err := arg.MarshalWire()
	if err != nil {
		return nil, err
	}
	return wire.Marshal(n)
}

func decodeResult(result []byte, res codec.Unmarshaler) error {
	if res == nil {
		return nil
	}
	n, err := wire.Unmarshal(result)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return res.UnmarshalWire(n)
}

// routeError turns an HTTP 409 envelope into an *APIError carrying the
// route's typed error.
func routeError(hres *Response, errDec ErrorDecoder) error {
	if hres.Status != http.StatusConflict {
		return nil
	}
	n, err := wire.Unmarshal(hres.Result)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	d := codec.Struct(n, "ErrorEnvelope")
	summary := d.StringDefault("error_summary", "")
	inner := d.Value("error")
	if err := d.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if errDec == nil {
		return &APIError{Summary: summary, Err: ErrUnexpectedResponse}
	}
	routeErr, err := errDec(inner)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return &APIError{Summary: summary, Err: routeErr}
}
