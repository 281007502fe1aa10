package client

import (
	"slices"

	"github.com/adrianliechti/oai/pkg/exchange"

	"github.com/tidwall/gjson"
)

// Value is a parsed JSON response. The client does not interpret it.
type Value = gjson.Result

type Response = exchange.Response

type Client struct {
	Models ModelService

	Completions     CompletionService
	ChatCompletions ChatCompletionService
	Edits           EditService

	Images     ImageService
	Embeddings EmbeddingService
	Audio      AudioService

	Files     FileService
	FineTunes FineTuneService

	Moderations ModerationService

	options []RequestOption
}

// New creates a client authenticating with the given API key. Unless a Doer
// is supplied, one exchanger (and with it the TLS configuration) is created
// here and shared by every call.
func New(token string, opts ...RequestOption) *Client {
	opts = slices.Concat([]RequestOption{WithToken(token)}, opts)

	cfg := newRequestConfig(opts...)

	if cfg.Doer == nil {
		opts = append(opts, WithDoer(exchange.New(cfg.Host, cfg.ExchangeOptions...)))
	}

	c := &Client{
		options: opts,
	}

	c.init()

	return c
}

// SetAPIKey replaces the key used by subsequent calls. It must not be called
// while requests are in flight.
func (c *Client) SetAPIKey(token string) {
	c.options = slices.Concat(c.options, []RequestOption{WithToken(token)})
	c.init()
}

// SetOrganization replaces the organization id used by subsequent calls. It
// must not be called while requests are in flight.
func (c *Client) SetOrganization(organization string) {
	c.options = slices.Concat(c.options, []RequestOption{WithOrganization(organization)})
	c.init()
}

func (c *Client) init() {
	opts := c.options

	c.Models = NewModelService(opts...)

	c.Completions = NewCompletionService(opts...)
	c.ChatCompletions = NewChatCompletionService(opts...)
	c.Edits = NewEditService(opts...)

	c.Images = NewImageService(opts...)
	c.Embeddings = NewEmbeddingService(opts...)
	c.Audio = NewAudioService(opts...)

	c.Files = NewFileService(opts...)
	c.FineTunes = NewFineTuneService(opts...)

	c.Moderations = NewModerationService(opts...)
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Host:      exchange.DefaultHost,
		UserAgent: DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func Ptr[T any](v T) *T {
	return &v
}
