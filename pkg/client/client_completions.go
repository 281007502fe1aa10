package client

import (
	"context"
	"net/http"
	"slices"
)

type CompletionService struct {
	Options []RequestOption
}

func NewCompletionService(opts ...RequestOption) CompletionService {
	return CompletionService{
		Options: opts,
	}
}

// New sends body, serialized as JSON, to /v1/completions.
//
// https://platform.openai.com/docs/api-reference/completions/create
func (r *CompletionService) New(ctx context.Context, body any, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/v1/completions", body)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
