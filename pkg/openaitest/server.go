// Package openaitest provides an in-process HTTPS server that mimics the
// OpenAI v1 API closely enough to exercise the client end to end.
package openaitest

import (
	"bytes"
	"crypto/x509"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/adrianliechti/oai/pkg/exchange"

	"github.com/go-chi/chi/v5"
)

// Host is the name the test certificate is valid for.
const Host = "example.com"

type Request struct {
	Method string
	Target string

	Host  string
	Close bool

	Header http.Header
	Body   []byte
}

type Server struct {
	*httptest.Server

	token string

	router chi.Router

	mu       sync.Mutex
	requests []Request
}

func New(token string) *Server {
	s := &Server{
		token:  token,
		router: chi.NewRouter(),
	}

	s.router.Use(s.record)
	s.router.Use(s.authenticate)

	s.Attach(s.router)

	s.Server = httptest.NewTLSServer(s.router)

	return s
}

// Options configures an exchanger to reach the server under Host while
// trusting its self-signed certificate.
func (s *Server) Options() []exchange.Option {
	pool := x509.NewCertPool()
	pool.AddCert(s.Certificate())

	return []exchange.Option{
		exchange.WithAddress(s.Listener.Addr().String()),
		exchange.WithRootCAs(pool),
	}
}

func (s *Server) Exchanger(options ...exchange.Option) *exchange.Exchanger {
	return exchange.New(Host, append(s.Options(), options...)...)
}

// Handle overrides the response of a route.
func (s *Server) Handle(method, pattern string, handler http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, handler)
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return Request{}, false
	}

	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Target: r.RequestURI,

			Host:  r.Host,
			Close: r.Close,

			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
