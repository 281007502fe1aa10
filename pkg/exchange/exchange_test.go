package exchange_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/adrianliechti/oai/pkg/exchange"
	"github.com/adrianliechti/oai/pkg/openaitest"

	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, "https://"+openaitest.Host+target, nil)
	require.NoError(t, err)

	return req
}

func TestDo(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	e := server.Exchanger()

	resp, err := e.Do(context.Background(), newRequest(t, "GET", "/v1/models"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result, err := exchange.Decode(resp)
	require.NoError(t, err)
	require.Equal(t, "list", result.Get("object").String())
	require.Equal(t, "gpt-4o-mini", result.Get("data.0.id").String())

	req, ok := server.LastRequest()
	require.True(t, ok)
	require.Equal(t, openaitest.Host, req.Host)
	require.Equal(t, "/v1/models", req.Target)
	require.True(t, req.Close)
}

func TestDoOpensConnectionPerCall(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	var mu sync.Mutex
	var remotes = map[string]bool{}

	server.Handle("GET", "/v1/whoami", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		remotes[r.RemoteAddr] = true
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})

	e := server.Exchanger()

	var wg sync.WaitGroup

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			resp, err := e.Do(context.Background(), newRequest(t, "GET", "/v1/whoami"))

			if err != nil {
				t.Error(err)
				return
			}

			if _, err := exchange.Decode(resp); err != nil {
				t.Error(err)
			}
		}()
	}

	wg.Wait()

	require.Len(t, remotes, 4)
}

func TestDoNonJSONResponse(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	server.Handle("GET", "/v1/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html><body>Bad Gateway</body></html>"))
	})

	resp, err := server.Exchanger().Do(context.Background(), newRequest(t, "GET", "/v1/broken"))
	require.NoError(t, err)

	_, err = exchange.Decode(resp)
	require.Error(t, err)
	require.ErrorIs(t, err, exchange.ErrInvalidJSON)

	var decodeErr *exchange.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, http.StatusBadGateway, decodeErr.StatusCode)
	require.Equal(t, "text/html", decodeErr.ContentType)

	var transportErr *exchange.TransportError
	require.False(t, errors.As(err, &transportErr))
}

func TestDoErrorPayloadIsReturned(t *testing.T) {
	server := openaitest.New("secret")
	defer server.Close()

	resp, err := server.Exchanger().Do(context.Background(), newRequest(t, "GET", "/v1/models"))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	result, err := exchange.Decode(resp)
	require.NoError(t, err)
	require.Equal(t, "missing authorization header", result.Get("error.message").String())
}

func TestDoServerName(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	e := exchange.New("127.0.0.1", server.Options()...)

	_, err := e.Do(context.Background(), newRequest(t, "GET", "/v1/models"))
	require.ErrorIs(t, err, exchange.ErrServerName)
	require.Empty(t, server.Requests())
}

func TestDoUntrustedCertificate(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	e := exchange.New(openaitest.Host, exchange.WithAddress(server.Listener.Addr().String()))

	_, err := e.Do(context.Background(), newRequest(t, "GET", "/v1/models"))

	var tlsErr *exchange.TLSError
	require.ErrorAs(t, err, &tlsErr)
	require.Equal(t, openaitest.Host, tlsErr.ServerName)
}

func TestDoHostnameMismatch(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	e := exchange.New("api.example.org", server.Options()...)

	_, err := e.Do(context.Background(), newRequest(t, "GET", "/v1/models"))

	var tlsErr *exchange.TLSError
	require.ErrorAs(t, err, &tlsErr)
	require.Empty(t, server.Requests())
}

func TestDoDialFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	l.Close()

	e := exchange.New(openaitest.Host, exchange.WithAddress(addr))

	_, err = e.Do(context.Background(), newRequest(t, "GET", "/v1/models"))

	var transportErr *exchange.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, "dial", transportErr.Op)
	require.Equal(t, addr, transportErr.Addr)
}

func TestDoTimeout(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	server.Handle("GET", "/v1/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	e := server.Exchanger(exchange.WithTimeout(100 * time.Millisecond))

	_, err := e.Do(context.Background(), newRequest(t, "GET", "/v1/slow"))

	var transportErr *exchange.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, "read", transportErr.Op)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDoCanceled(t *testing.T) {
	server := openaitest.New("")
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := server.Exchanger().Do(ctx, newRequest(t, "GET", "/v1/models"))
	require.ErrorIs(t, err, context.Canceled)
}
