package client

import (
	"context"
	"net/http"
	"slices"
)

type ImageService struct {
	Options []RequestOption
}

func NewImageService(opts ...RequestOption) ImageService {
	return ImageService{
		Options: opts,
	}
}

// https://platform.openai.com/docs/api-reference/images/create
func (r *ImageService) Generate(ctx context.Context, body any, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/v1/images/generations", body)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}

// Edit uploads the image at path together with the prompt and the optional
// mask, n, size and user parameters.
func (r *ImageService) Edit(ctx context.Context, image, prompt string, options ImageOptions, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	f := newForm()
	f.file("image", image, "image/*")

	if options.Mask != nil {
		f.file("mask", *options.Mask, "image/*")
	}

	f.field("prompt", prompt)

	options.writeTo(f)

	req, err := c.newFormRequest(ctx, "/v1/images/edits", f)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}

// Variation uploads the image at path. A mask set in options is ignored.
func (r *ImageService) Variation(ctx context.Context, image string, options ImageOptions, opts ...RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	f := newForm()
	f.file("image", image, "image/*")

	options.writeTo(f)

	req, err := c.newFormRequest(ctx, "/v1/images/variations", f)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
