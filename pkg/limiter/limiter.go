package limiter

import (
	"context"
	"net/http"

	"github.com/adrianliechti/oai/pkg/exchange"

	"golang.org/x/time/rate"
)

type Limiter interface {
	limiterSetup()
}

type Doer interface {
	Limiter
	exchange.Doer
}

type limitedDoer struct {
	limiter *rate.Limiter
	doer    exchange.Doer
}

// NewDoer waits for l before every exchange. Responses from the server are
// not inspected, rate limit answers are returned to the caller as is.
func NewDoer(l *rate.Limiter, d exchange.Doer) Doer {
	return &limitedDoer{
		limiter: l,
		doer:    d,
	}
}

func (d *limitedDoer) limiterSetup() {
}

func (d *limitedDoer) Do(ctx context.Context, req *http.Request) (*exchange.Response, error) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return d.doer.Do(ctx, req)
}
