package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/adrianliechti/oai/pkg/exchange"

	"github.com/tidwall/gjson"
)

var ErrNoDoer = errors.New("no exchange configured")

// newRequest builds a request for path. The path is used as the literal
// request target, ids interpolated into it are not escaped.
func (c *RequestConfig) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, "https://"+c.Host, body)

	if err != nil {
		return nil, err
	}

	req.URL.Opaque = path
	req.Host = c.Host

	req.Header.Set("Organization", c.Organization)
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("User-Agent", c.UserAgent)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

func (c *RequestConfig) newJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	data, err := marshalBody(body)

	if err != nil {
		return nil, err
	}

	return c.newRequest(ctx, method, path, bytes.NewReader(data), "application/json")
}

func (c *RequestConfig) newFormRequest(ctx context.Context, path string, f *form) (*http.Request, error) {
	data, contentType, err := f.close()

	if err != nil {
		return nil, err
	}

	return c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data), contentType)
}

func (c *RequestConfig) send(req *http.Request) (*Response, error) {
	if c.Doer == nil {
		return nil, ErrNoDoer
	}

	return c.Doer.Do(req.Context(), req)
}

func (c *RequestConfig) do(req *http.Request) (Value, error) {
	resp, err := c.send(req)

	if err != nil {
		return Value{}, err
	}

	return exchange.Decode(resp)
}

// marshalBody serializes a caller supplied JSON value. Parsed responses and
// raw messages are forwarded verbatim.
func marshalBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case gjson.Result:
		return []byte(v.Raw), nil

	case json.RawMessage:
		return v, nil
	}

	return json.Marshal(body)
}
