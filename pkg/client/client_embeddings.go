package client

import (
	"context"
	"net/http"
	"slices"
)

type EmbeddingService struct {
	Options []RequestOption
}

func NewEmbeddingService(opts ...RequestOption) EmbeddingService {
	return EmbeddingService{
		Options: opts,
	}
}

// https://platform.openai.com/docs/api-reference/embeddings/create
func (r *EmbeddingService) New(ctx context.Context, body any, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/v1/embeddings", body)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
