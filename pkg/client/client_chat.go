package client

import (
	"context"
	"net/http"
	"slices"
)

type ChatCompletionService struct {
	Options []RequestOption
}

func NewChatCompletionService(opts ...RequestOption) ChatCompletionService {
	return ChatCompletionService{
		Options: opts,
	}
}

// https://platform.openai.com/docs/api-reference/chat/create
func (r *ChatCompletionService) New(ctx context.Context, body any, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/v1/chat/completions", body)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
