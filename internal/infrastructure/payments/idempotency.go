package payments

import (
	"context"
	"net/http"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/requester"
)

const idempotencyHeader = "X-Idempotency-Key"

type idempotencyKeyCtx struct{}

func withIdempotencyKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// keyedRequester overrides the random key the SDK puts on every write with
// the key carried by the request context. The SDK's own retries reuse the
// request, so they keep the same key.
type keyedRequester struct {
	next requester.Requester
}

func (r keyedRequester) Do(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyKeyCtx{}).(string); ok && req.Method != http.MethodGet {
		req.Header.Set(idempotencyHeader, key)
	}
	return r.next.Do(req)
}

// WithCallerIdempotencyKeys wraps the requester configured so far. Options
// applied after it that replace the requester drop the wrapper.
func WithCallerIdempotencyKeys() config.Option {
	return func(c *config.Config) error {
		c.Requester = keyedRequester{next: c.Requester}
		return nil
	}
}
