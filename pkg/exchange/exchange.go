package exchange

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHost = "api.openai.com"
	DefaultPort = "443"
)

// Doer performs a single request/response cycle.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*Response, error)
}

var _ Doer = (*Exchanger)(nil)

// Exchanger opens a fresh TCP+TLS connection for every request, writes the
// request, reads the complete response and shuts the connection down again.
// Connections are never pooled or reused.
type Exchanger struct {
	host    string
	address string

	tls    *tls.Config
	dialer *net.Dialer

	timeout time.Duration

	logger *slog.Logger
}

func New(host string, options ...Option) *Exchanger {
	if host == "" {
		host = DefaultHost
	}

	e := &Exchanger{
		host: host,

		dialer: &net.Dialer{},
		logger: slog.Default(),
	}

	for _, option := range options {
		option(e)
	}

	if e.address == "" {
		e.address = net.JoinHostPort(host, DefaultPort)
	}

	if e.tls == nil {
		e.tls = &tls.Config{}
	} else {
		e.tls = e.tls.Clone()
	}

	if e.tls.ServerName == "" {
		e.tls.ServerName = host
	}

	if e.tls.MinVersion == 0 {
		e.tls.MinVersion = tls.VersionTLS12
	}

	return e
}

func (e *Exchanger) Host() string {
	return e.host
}

func (e *Exchanger) Address() string {
	return e.address
}

func (e *Exchanger) Do(ctx context.Context, req *http.Request) (*Response, error) {
	id := uuid.NewString()
	timestamp := time.Now()

	resp, err := e.do(ctx, req)

	if err != nil {
		e.logger.DebugContext(ctx, "exchange failed",
			"id", id,
			"method", req.Method,
			"target", req.URL.RequestURI(),
			"error", err,
		)

		return nil, err
	}

	e.logger.DebugContext(ctx, "exchange completed",
		"id", id,
		"method", req.Method,
		"target", req.URL.RequestURI(),
		"status", resp.StatusCode,
		"bytes", len(resp.Body),
		"duration", time.Since(timestamp),
	)

	return resp, nil
}

func (e *Exchanger) do(ctx context.Context, req *http.Request) (*Response, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if err := checkServerName(e.tls.ServerName); err != nil {
		return nil, err
	}

	raw, err := e.dialer.DialContext(ctx, "tcp", e.address)

	if err != nil {
		return nil, &TransportError{Op: "dial", Addr: e.address, Err: contextError(ctx, err)}
	}

	stop := context.AfterFunc(ctx, func() {
		raw.Close()
	})

	defer stop()

	conn := tls.Client(raw, e.tls)

	if err := conn.HandshakeContext(ctx); err != nil {
		raw.Close()
		return nil, &TLSError{ServerName: e.tls.ServerName, Err: contextError(ctx, err)}
	}

	resp, serr := e.roundTrip(conn, req)

	if serr != nil {
		conn.Close()
		return nil, &TransportError{Op: serr.op, Addr: e.address, Err: contextError(ctx, serr.err)}
	}

	if terr := shutdown(conn); terr != nil {
		terr.Addr = e.address
		return nil, terr
	}

	return resp, nil
}

type stepError struct {
	op  string
	err error
}

func (e *Exchanger) roundTrip(conn net.Conn, req *http.Request) (*Response, *stepError) {
	if req.Host == "" {
		req.Host = e.host
	}

	req.Close = true

	if err := req.Write(conn); err != nil {
		return nil, &stepError{"write", err}
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), req)

	if err != nil {
		return nil, &stepError{"read", err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, &stepError{"read", err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,

		Header: resp.Header,
		Body:   body,
	}, nil
}

type closeWriter interface {
	CloseWrite() error
	Close() error
}

// shutdown sends close_notify and closes the connection. A peer that already
// went away (EOF, truncated stream) still counts as a clean close.
func shutdown(conn closeWriter) *TransportError {
	err := conn.CloseWrite()

	if cerr := conn.Close(); err == nil {
		err = cerr
	}

	if err == nil || isCleanShutdown(err) {
		return nil
	}

	return &TransportError{Op: "shutdown", Err: err}
}

func isCleanShutdown(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET)
}

func checkServerName(name string) error {
	if name == "" || net.ParseIP(name) != nil {
		return ErrServerName
	}

	return nil
}

func contextError(ctx context.Context, err error) error {
	if cerr := ctx.Err(); cerr != nil {
		return cerr
	}

	return err
}
