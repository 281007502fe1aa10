package client

import (
	"context"
	"net/http"
	"slices"
)

type EditService struct {
	Options []RequestOption
}

func NewEditService(opts ...RequestOption) EditService {
	return EditService{
		Options: opts,
	}
}

func (r *EditService) New(ctx context.Context, body any, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/v1/edits", body)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
