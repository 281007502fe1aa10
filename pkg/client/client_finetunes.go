package client

import (
	"context"
	"net/http"
	"slices"
)

type FineTuneService struct {
	Options []RequestOption
}

func NewFineTuneService(opts ...RequestOption) FineTuneService {
	return FineTuneService{
		Options: opts,
	}
}

// https://platform.openai.com/docs/api-reference/fine-tunes/create
func (r *FineTuneService) New(ctx context.Context, body any, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/v1/fine-tunes", body)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}

func (r *FineTuneService) List(ctx context.Context, opts ...RequestOption) (Value, error) {
	return r.call(ctx, http.MethodGet, "/v1/fine-tunes", "", opts)
}

func (r *FineTuneService) Get(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	return r.call(ctx, http.MethodGet, "/v1/fine-tunes/"+id, "", opts)
}

func (r *FineTuneService) Cancel(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	return r.call(ctx, http.MethodPost, "/v1/fine-tunes/"+id+"/cancel", "application/json", opts)
}

func (r *FineTuneService) Events(ctx context.Context, id string, opts ...RequestOption) (Value, error) {
	return r.call(ctx, http.MethodGet, "/v1/fine-tunes/"+id+"/events", "", opts)
}

// Delete removes the model produced by a fine-tune. Fine-tuned models are
// addressed by their model name under /v1/models, not by the job id.
func (r *FineTuneService) Delete(ctx context.Context, model string, opts ...RequestOption) (Value, error) {
	return r.call(ctx, http.MethodDelete, "/v1/models/"+model, "", opts)
}

func (r *FineTuneService) call(ctx context.Context, method, path, contentType string, opts []RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newRequest(ctx, method, path, nil, contentType)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
