package exchange

import (
	"errors"
	"fmt"
)

var (
	// ErrServerName is returned when no usable TLS server name (SNI) can be set
	// for the configured host, for example when the host is an IP literal.
	ErrServerName = errors.New("tls server name cannot be set")

	ErrInvalidJSON = errors.New("response is not valid json")
)

// TransportError reports a failure to dial, write, read or shut down the
// connection of a single exchange.
type TransportError struct {
	Op   string
	Addr string

	Err error
}

func (e *TransportError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TLSError reports a failed handshake, including certificate verification
// against the configured server name.
type TLSError struct {
	ServerName string

	Err error
}

func (e *TLSError) Error() string {
	return fmt.Sprintf("tls handshake with %s: %v", e.ServerName, e.Err)
}

func (e *TLSError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that could not be parsed as JSON.
// This usually means the server answered with an error page.
type DecodeError struct {
	StatusCode  int
	ContentType string

	Body []byte
}

func (e *DecodeError) Error() string {
	body := e.Body

	if len(body) > 256 {
		body = body[:256]
	}

	return fmt.Sprintf("%v (status %d, content-type %q): %s", ErrInvalidJSON, e.StatusCode, e.ContentType, body)
}

func (e *DecodeError) Unwrap() error {
	return ErrInvalidJSON
}
