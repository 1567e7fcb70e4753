package shelf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

const clientVersion = "0.4.0"

var defaultUserAgent = "shelf-go/" + clientVersion

var defaultBaseURLs = map[Endpoint]string{
	EndpointAPI:     "https://api.shelfapi.com",
	EndpointContent: "https://content.shelfapi.com",
	EndpointNotify:  "https://notify.shelfapi.com",
}

// Client is the default Transport: one HTTP POST per request, bearer-token
// authorization, transparent gzip response decompression. Use it as-is
// unless your program already carries its own HTTP stack, in which case
// implement Transport over that instead.
type Client struct {
	httpClient  *http.Client
	token       string
	userAgent   string
	baseURLs    map[Endpoint]string
	selectUser  string
	selectAdmin string
	pathRoot    string
	logger      *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger enables request debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithBaseURL overrides one endpoint's base URL, mainly for tests.
func WithBaseURL(e Endpoint, url string) Option {
	return func(c *Client) { c.baseURLs[e] = strings.TrimSuffix(url, "/") }
}

// WithSelectUser acts on behalf of a team member, for team-scoped tokens.
func WithSelectUser(memberID string) Option {
	return func(c *Client) { c.selectUser = memberID }
}

// WithSelectAdmin acts with administrator context, for team-scoped tokens.
func WithSelectAdmin(memberID string) Option {
	return func(c *Client) { c.selectAdmin = memberID }
}

// WithPathRoot scopes path-based routes to the given root, typically a
// common.PathRoot value. The encoded union travels in a request header.
func WithPathRoot(root codec.Marshaler) Option {
	return func(c *Client) {
		n, err := root.MarshalWire()
		if err != nil {
			return
		}
		d, err := wire.Marshal(n)
		if err != nil {
			return
		}
		c.pathRoot = string(d)
	}
}

// New returns a Client using the given OAuth2 access token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		token:      token,
		userAgent:  defaultUserAgent,
		baseURLs:   map[Endpoint]string{},
		logger:     zap.NewNop(),
	}
	for e, u := range defaultBaseURLs {
		c.baseURLs[e] = u
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewNoauth returns a Client for the routes that take no authorization,
// such as the OAuth2 token exchange.
func NewNoauth(opts ...Option) *Client {
	return New("", opts...)
}

// RoundTrip implements Transport.
func (c *Client) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	url := c.baseURLs[req.Endpoint] + "/2/" + req.Fn()
	if req.Namespace == "oauth2" {
		// the token routes predate the /2/ prefix
		url = c.baseURLs[req.Endpoint] + "/" + req.Fn()
	}

	var body io.Reader
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}
	hreq.Header.Set("User-Agent", c.userAgent)
	if req.Style != StyleDownload {
		// downloads stream the file body as-is so Content-Length stays
		// meaningful to callers
		hreq.Header.Set("Accept-Encoding", "gzip")
	}
	if c.token != "" {
		hreq.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.selectUser != "" {
		hreq.Header.Set("Shelf-API-Select-User", c.selectUser)
	}
	if c.selectAdmin != "" {
		hreq.Header.Set("Shelf-API-Select-Admin", c.selectAdmin)
	}
	if c.pathRoot != "" {
		hreq.Header.Set("Shelf-API-Path-Root", c.pathRoot)
	}
	if r := rangeHeader(req.RangeStart, req.RangeEnd); r != "" {
		hreq.Header.Set("Range", r)
	}

	switch req.Style {
	case StyleRPC:
		if len(req.Params) != 0 {
			hreq.Header.Set("Content-Type", req.ParamsType.ContentType())
			body = bytes.NewReader(req.Params)
		}
	case StyleUpload:
		if len(req.Params) != 0 {
			hreq.Header.Set("Shelf-API-Arg", string(req.Params))
		}
		hreq.Header.Set("Content-Type", "application/octet-stream")
		body = req.Body
		if body == nil {
			body = bytes.NewReader(nil)
		}
	case StyleDownload:
		if len(req.Params) != 0 {
			hreq.Header.Set("Shelf-API-Arg", string(req.Params))
		}
	}
	if body != nil {
		hreq.Body = io.NopCloser(body)
	}

	c.logger.Debug("request",
		zap.String("fn", req.Fn()),
		zap.Stringer("style", req.Style),
		zap.String("url", url))

	hres, err := c.httpClient.Do(hreq)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("response",
		zap.String("fn", req.Fn()),
		zap.Int("status", hres.StatusCode))

	switch {
	case hres.StatusCode >= 200 && hres.StatusCode < 300:
		return c.success(req, hres)
	case hres.StatusCode == http.StatusConflict:
		// the route's declared error; decoded by the route helper
		d, err := readAll(hres)
		if err != nil {
			return nil, err
		}
		return &Response{Status: hres.StatusCode, Result: d}, nil
	default:
		return nil, c.statusError(hres)
	}
}

func (c *Client) success(req *Request, hres *http.Response) (*Response, error) {
	res := &Response{Status: hres.StatusCode}
	if req.Style != StyleDownload {
		d, err := readAll(hres)
		if err != nil {
			return nil, err
		}
		res.Result = d
		return res, nil
	}

	result := hres.Header.Get("Shelf-API-Result")
	if result == "" {
		hres.Body.Close()
		return nil, fmt.Errorf("%w: missing Shelf-API-Result header", ErrUnexpectedResponse)
	}
	res.Result = []byte(result)
	// a Content-Length on an encoded body counts compressed bytes, not what
	// Body will yield
	if cl := hres.Header.Get("Content-Length"); cl != "" && hres.Header.Get("Content-Encoding") == "" {
		n, err := strconv.ParseUint(cl, 10, 64)
		if err != nil {
			hres.Body.Close()
			return nil, fmt.Errorf("%w: invalid Content-Length header", ErrUnexpectedResponse)
		}
		res.ContentLength = &n
	}
	body, err := decompressed(hres)
	if err != nil {
		hres.Body.Close()
		return nil, err
	}
	res.Body = body
	return res, nil
}

func (c *Client) statusError(hres *http.Response) error {
	d, _ := readAll(hres)
	msg := strings.TrimSpace(string(d))
	switch {
	case hres.StatusCode == http.StatusBadRequest:
		return &BadRequestError{Message: msg}
	case hres.StatusCode == http.StatusUnauthorized:
		return &AuthError{Message: msg}
	case hres.StatusCode == http.StatusTooManyRequests:
		e := &RateLimitError{}
		if ra := hres.Header.Get("Retry-After"); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil {
				e.RetryAfter = time.Duration(secs) * time.Second
			}
		}
		return e
	case hres.StatusCode >= 500:
		return &ServerError{Code: hres.StatusCode, Message: msg}
	}
	return &StatusError{Code: hres.StatusCode, Status: hres.Status, Body: msg}
}

func readAll(hres *http.Response) ([]byte, error) {
	body, err := decompressed(hres)
	if err != nil {
		hres.Body.Close()
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

// decompressed unwraps a gzip response body. net/http does this itself
// only when it injected the Accept-Encoding header; rpc and upload calls
// send our own, so we also unwrap ourselves.
func decompressed(hres *http.Response) (io.ReadCloser, error) {
	if hres.Header.Get("Content-Encoding") != "gzip" {
		return hres.Body, nil
	}
	zr, err := gzip.NewReader(hres.Body)
	if err != nil {
		return nil, err
	}
	return &gzipBody{zr: zr, underlying: hres.Body}, nil
}

type gzipBody struct {
	zr         *gzip.Reader
	underlying io.ReadCloser
}

func (g *gzipBody) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipBody) Close() error {
	if err := g.zr.Close(); err != nil {
		g.underlying.Close()
		return err
	}
	return g.underlying.Close()
}

func rangeHeader(start, end *uint64) string {
	switch {
	case start != nil && end != nil:
		return fmt.Sprintf("bytes=%d-%d", *start, *end)
	case start != nil:
		return fmt.Sprintf("bytes=%d-", *start)
	case end != nil:
		return fmt.Sprintf("bytes=-%d", *end)
	}
	return ""
}
