package exchange

import (
	"crypto/tls"
	"crypto/x509"
	"log/slog"
	"net"
	"time"
)

type Option func(*Exchanger)

// WithAddress dials addr instead of host:443 while still using the host for
// SNI, certificate verification and the Host header.
func WithAddress(addr string) Option {
	return func(e *Exchanger) {
		e.address = addr
	}
}

func WithTLSConfig(config *tls.Config) Option {
	return func(e *Exchanger) {
		e.tls = config
	}
}

func WithRootCAs(pool *x509.CertPool) Option {
	return func(e *Exchanger) {
		if e.tls == nil {
			e.tls = &tls.Config{}
		} else {
			e.tls = e.tls.Clone()
		}

		e.tls.RootCAs = pool
	}
}

func WithDialer(dialer *net.Dialer) Option {
	return func(e *Exchanger) {
		e.dialer = dialer
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(e *Exchanger) {
		e.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Exchanger) {
		e.logger = logger
	}
}
