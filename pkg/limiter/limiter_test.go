package limiter_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/adrianliechti/oai/pkg/exchange"
	"github.com/adrianliechti/oai/pkg/limiter"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingDoer struct {
	calls int
}

func (d *countingDoer) Do(ctx context.Context, req *http.Request) (*exchange.Response, error) {
	d.calls++
	return &exchange.Response{StatusCode: http.StatusOK}, nil
}

func TestDoer(t *testing.T) {
	next := &countingDoer{}
	d := limiter.NewDoer(rate.NewLimiter(rate.Every(time.Hour), 1), next)

	req, err := http.NewRequest(http.MethodGet, "https://api.openai.com/v1/models", nil)
	require.NoError(t, err)

	_, err = d.Do(context.Background(), req)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = d.Do(ctx, req)
	require.Error(t, err)

	require.Equal(t, 1, next.calls)
}

func TestDoerWithoutLimiter(t *testing.T) {
	next := &countingDoer{}
	d := limiter.NewDoer(nil, next)

	req, err := http.NewRequest(http.MethodGet, "https://api.openai.com/v1/models", nil)
	require.NoError(t, err)

	for range 3 {
		_, err = d.Do(context.Background(), req)
		require.NoError(t, err)
	}

	require.Equal(t, 3, next.calls)
}
