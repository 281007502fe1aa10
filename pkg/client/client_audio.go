package client

import (
	"context"
	"slices"
)

type AudioService struct {
	Options []RequestOption
}

func NewAudioService(opts ...RequestOption) AudioService {
	return AudioService{
		Options: opts,
	}
}

// https://platform.openai.com/docs/api-reference/audio/createTranscription
func (r *AudioService) Transcribe(ctx context.Context, file, model string, options AudioOptions, opts ...RequestOption) (Value, error) {
	return r.send(ctx, "/v1/audio/transcriptions", file, model, options, true, opts)
}

// Translate transcribes the audio at file into English. The API has no
// language parameter for translations, so options.Language is not sent.
func (r *AudioService) Translate(ctx context.Context, file, model string, options AudioOptions, opts ...RequestOption) (Value, error) {
	return r.send(ctx, "/v1/audio/translations", file, model, options, false, opts)
}

func (r *AudioService) send(ctx context.Context, path, file, model string, options AudioOptions, language bool, opts []RequestOption) (Value, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	f := newForm()
	f.file("file", file, "application/octet-stream")
	f.field("model", model)

	options.writeTo(f, language)

	req, err := c.newFormRequest(ctx, path, f)

	if err != nil {
		return Value{}, err
	}

	return c.do(req)
}
