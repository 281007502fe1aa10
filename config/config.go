package config

import (
	"bytes"
	"crypto/x509"
	"errors"
	"os"
	"time"

	"github.com/adrianliechti/oai/pkg/client"
	"github.com/adrianliechti/oai/pkg/exchange"
	"github.com/adrianliechti/oai/pkg/limiter"
	"github.com/adrianliechti/oai/pkg/otel"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Host    string
	Address string

	Token        string
	Organization string

	UserAgent string

	Timeout time.Duration
	Limiter *rate.Limiter

	RootCAs *x509.CertPool
}

// Parse reads the configuration file at path. An empty path skips the file.
// Credentials and host missing from the file are taken from OPENAI_API_KEY,
// OPENAI_ORG_ID and OPENAI_HOST.
func Parse(path string) (*Config, error) {
	file := &configFile{}

	if path != "" {
		f, err := parseFile(path)

		if err != nil {
			return nil, err
		}

		file = f
	}

	c := &Config{
		Host:    file.Host,
		Address: file.Address,

		Token:        file.Token,
		Organization: file.Organization,

		UserAgent: file.UserAgent,

		Limiter: createLimiter(file.Limit),
	}

	if c.Host == "" {
		c.Host = os.Getenv("OPENAI_HOST")
	}

	if c.Host == "" {
		c.Host = exchange.DefaultHost
	}

	if c.Token == "" {
		c.Token = os.Getenv("OPENAI_API_KEY")
	}

	if c.Organization == "" {
		c.Organization = os.Getenv("OPENAI_ORG_ID")
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)

		if err != nil {
			return nil, err
		}

		c.Timeout = timeout
	}

	if file.CAFile != "" {
		data, err := os.ReadFile(file.CAFile)

		if err != nil {
			return nil, err
		}

		pool := x509.NewCertPool()

		if !pool.AppendCertsFromPEM(data) {
			return nil, errors.New("no certificates found in " + file.CAFile)
		}

		c.RootCAs = pool
	}

	return c, nil
}

type configFile struct {
	Host    string `yaml:"host"`
	Address string `yaml:"address"`

	Token        string `yaml:"token"`
	Organization string `yaml:"organization"`

	UserAgent string `yaml:"user_agent"`

	Timeout string `yaml:"timeout"`
	Limit   *int   `yaml:"limit"`

	CAFile string `yaml:"ca_file"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

// Options returns the client options for this configuration. The exchanger
// is wrapped with the configured rate limit and with telemetry.
func (c *Config) Options() []client.RequestOption {
	var doer exchange.Doer = exchange.New(c.Host, c.exchangeOptions()...)

	if _, ok := doer.(limiter.Doer); !ok && c.Limiter != nil {
		doer = limiter.NewDoer(c.Limiter, doer)
	}

	if _, ok := doer.(otel.Doer); !ok {
		doer = otel.NewDoer(doer)
	}

	options := []client.RequestOption{
		client.WithHost(c.Host),
		client.WithOrganization(c.Organization),
		client.WithDoer(doer),
	}

	if c.UserAgent != "" {
		options = append(options, client.WithUserAgent(c.UserAgent))
	}

	return options
}

func (c *Config) Client() *client.Client {
	return client.New(c.Token, c.Options()...)
}

func (c *Config) exchangeOptions() []exchange.Option {
	var options []exchange.Option

	if c.Address != "" {
		options = append(options, exchange.WithAddress(c.Address))
	}

	if c.Timeout > 0 {
		options = append(options, exchange.WithTimeout(c.Timeout))
	}

	if c.RootCAs != nil {
		options = append(options, exchange.WithRootCAs(c.RootCAs))
	}

	return options
}
