package client

import (
	"context"
	"net/http"
	"slices"
)

type ModelService struct {
	Options []RequestOption
}

func NewModelService(opts ...RequestOption) ModelService {
	return ModelService{
		Options: opts,
	}
}

// https://platform.openai.com/docs/api-reference/models/list
func (r *ModelService) List(ctx context.Context, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/models", nil, "")

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}

func (r *ModelService) Get(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/models/"+id, nil, "")

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}

// Delete removes a fine-tuned model owned by the organization.
func (r *ModelService) Delete(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/models/"+id, nil, "")

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
