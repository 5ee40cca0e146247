package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Invoice payments keep the provider response payload for traceability.
// Charges repeated with the same idempotency key are answered with the
// original payment instead of charging again.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
