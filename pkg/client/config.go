package client

import (
	"github.com/adrianliechti/oai/pkg/exchange"
)

const DefaultUserAgent = "oai-go/1.0"

type RequestConfig struct {
	Host string

	Token        string
	Organization string

	UserAgent string

	Doer            exchange.Doer
	ExchangeOptions []exchange.Option
}

type RequestOption func(*RequestConfig)

// WithHost sets the API host used for the Host header and, when the client
// creates its own exchanger, for TLS server name verification.
func WithHost(host string) RequestOption {
	return func(c *RequestConfig) {
		c.Host = host
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func WithOrganization(organization string) RequestOption {
	return func(c *RequestConfig) {
		c.Organization = organization
	}
}

func WithUserAgent(userAgent string) RequestOption {
	return func(c *RequestConfig) {
		c.UserAgent = userAgent
	}
}

func WithDoer(doer exchange.Doer) RequestOption {
	return func(c *RequestConfig) {
		c.Doer = doer
	}
}

// WithExchangeOptions configures the exchanger New creates when no Doer is
// given.
func WithExchangeOptions(options ...exchange.Option) RequestOption {
	return func(c *RequestConfig) {
		c.ExchangeOptions = append(c.ExchangeOptions, options...)
	}
}
