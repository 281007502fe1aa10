package exchange

import (
	"net/http"

	"github.com/tidwall/gjson"
)

type Response struct {
	StatusCode int
	Status     string

	Header http.Header
	Body   []byte
}

// Decode parses the response body as JSON. The status code is not
// interpreted: error payloads sent by the server are returned as values.
func Decode(resp *Response) (gjson.Result, error) {
	if !gjson.ValidBytes(resp.Body) {
		return gjson.Result{}, &DecodeError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),

			Body: resp.Body,
		}
	}

	return gjson.ParseBytes(resp.Body), nil
}
