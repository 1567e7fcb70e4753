package shelf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

type fakeTransport struct {
	req *Request
	res *Response
	err error
}

func (f *fakeTransport) RoundTrip(_ context.Context, req *Request) (*Response, error) {
	f.req = req
	return f.res, f.err
}

type echoArg struct {
	Path string
}

func (a *echoArg) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(1)
	obj.Set("path", wire.FromString(a.Path))
	return obj, nil
}

type echoResult struct {
	OK bool
}

func (r *echoResult) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "echoResult")
	r.OK = d.Bool("ok")
	return d.Err()
}

func TestRPCEncodesArgAndDecodesResult(t *testing.T) {
	ft := &fakeTransport{res: &Response{Status: 200, Result: []byte(`{"ok":true}`)}}
	res := new(echoResult)
	err := RPC(context.Background(), ft, EndpointAPI, "files", "probe", &echoArg{Path: "/a"}, res, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(ft.req.Params) != `{"path":"/a"}` {
		t.Errorf("params = %s", ft.req.Params)
	}
	if !res.OK {
		t.Error("result not decoded")
	}
}

func TestRPCVoidArgAndResult(t *testing.T) {
	ft := &fakeTransport{res: &Response{Status: 200, Result: []byte(`{}`)}}
	if err := RPC(context.Background(), ft, EndpointAPI, "users", "probe", nil, nil, nil); err != nil {
		t.Fatal(err)
	}
	if ft.req.Params != nil {
		t.Errorf("params = %s", ft.req.Params)
	}
}

func TestRPCRouteErrorEnvelope(t *testing.T) {
	ft := &fakeTransport{res: &Response{
		Status: 409,
		Result: []byte(`{"error_summary":"probe_failed/..","error":{".tag":"bad_path"}}`),
	}}
	sentinel := errors.New("bad path")
	dec := func(n *wire.Node) (error, error) {
		tag, _, err := codec.Tag(n, "probeError")
		if err != nil {
			return nil, err
		}
		if tag != "bad_path" {
			return nil, fmt.Errorf("unexpected tag %q", tag)
		}
		return sentinel, nil
	}
	err := RPC(context.Background(), ft, EndpointAPI, "files", "probe", nil, nil, dec)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T: %v", err, err)
	}
	if apiErr.Summary != "probe_failed/.." {
		t.Errorf("Summary = %q", apiErr.Summary)
	}
	if !errors.Is(err, sentinel) {
		t.Error("typed route error must be reachable through Unwrap")
	}
}

func TestRPCMalformedEnvelope(t *testing.T) {
	ft := &fakeTransport{res: &Response{Status: 409, Result: []byte(`{"oops":1}`)}}
	err := RPC(context.Background(), ft, EndpointAPI, "files", "probe", nil, nil, nil)
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("err = %v", err)
	}
}

func TestRPCMalformedResult(t *testing.T) {
	ft := &fakeTransport{res: &Response{Status: 200, Result: []byte(`not json`)}}
	err := RPC(context.Background(), ft, EndpointAPI, "files", "probe", nil, new(echoResult), nil)
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("err = %v", err)
	}
}

func TestAuthorizeURLBuilder(t *testing.T) {
	u := NewAuthorizeURLBuilder("app-key").
		WithRedirectURI("https://example.com/cb").
		WithState("xyzzy").
		WithOfflineAccess().
		Build()
	if !strings.HasPrefix(u, "https://www.shelfapi.com/oauth2/authorize?") {
		t.Errorf("url = %s", u)
	}
	for _, want := range []string{
		"client_id=app-key",
		"response_type=code",
		"redirect_uri=https%3A%2F%2Fexample.com%2Fcb",
		"state=xyzzy",
		"token_access_type=offline",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("url %s missing %s", u, want)
		}
	}
}

func TestTokenFromAuthorizationCode(t *testing.T) {
	ft := &fakeTransport{res: &Response{
		Status: 200,
		Result: []byte(`{"access_token":"at","token_type":"bearer","account_id":"dbid:1","expires_in":14400}`),
	}}
	tok, err := TokenFromAuthorizationCode(context.Background(), ft, "the-code", "key", "secret", "")
	if err != nil {
		t.Fatal(err)
	}
	if ft.req.Fn() != "oauth2/token" {
		t.Errorf("fn = %q", ft.req.Fn())
	}
	if ft.req.ParamsType != ParamsURLEncoded {
		t.Errorf("params type = %v", ft.req.ParamsType)
	}
	form := string(ft.req.Params)
	for _, want := range []string{"grant_type=authorization_code", "code=the-code", "client_id=key", "client_secret=secret"} {
		if !strings.Contains(form, want) {
			t.Errorf("form %q missing %s", form, want)
		}
	}
	if tok.AccessToken != "at" || tok.ExpiresIn == nil || *tok.ExpiresIn != 14400 {
		t.Errorf("token = %+v", tok)
	}
}
