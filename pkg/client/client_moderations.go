package client

import (
	"context"
	"net/http"
	"slices"
)

type ModerationService struct {
	Options []RequestOption
}

func NewModerationService(opts ...RequestOption) ModerationService {
	return ModerationService{
		Options: opts,
	}
}

// New classifies whether the input in body violates the usage policies.
func (r *ModerationService) New(ctx context.Context, body any, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/v1/moderations", body)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
