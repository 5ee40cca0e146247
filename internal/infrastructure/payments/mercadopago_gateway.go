// Package payments charges invoice balances through Mercado Pago.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements the invoice payment gateway. In mock mode it
// approves every charge locally and never calls the provider.
type MercadoPagoGateway struct {
	client payment.Client
	mock   bool
	now    func() time.Time
}

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		slog.Info("[payment][gateway] mock mode enabled")
		return NewMockGateway(nil), nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		slog.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingAccessToken
	}
	cfg, err := config.New(accessToken, WithCallerIdempotencyKeys())
	if err != nil {
		slog.Error("[payment][gateway] failed creating sdk config", "err", err)
		return nil, err
	}
	slog.Info("[payment][gateway] Mercado Pago client initialized")
	return NewGatewayWithClient(payment.NewClient(cfg)), nil
}

// NewGatewayWithClient wraps an existing SDK payment client.
func NewGatewayWithClient(client payment.Client) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, now: utcNow}
}

// NewMockGateway returns a gateway in mock mode. A nil clock uses the wall clock.
func NewMockGateway(now func() time.Time) *MercadoPagoGateway {
	if now == nil {
		now = utcNow
	}
	return &MercadoPagoGateway{mock: true, now: now}
}

func utcNow() time.Time { return time.Now().UTC() }

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mock {
		return g.mockCreate(ctx, idempotencyKey, requestPayload)
	}
	if g == nil || g.client == nil {
		slog.ErrorContext(ctx, "[payment][gateway] gateway not configured")
		return "", "", nil, ErrGatewayNotConfigured
	}
	slog.InfoContext(ctx, "[payment][gateway] create start", "payload_len", len(requestPayload), "idempotency_key", idempotencyKey)

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		slog.WarnContext(ctx, "[payment][gateway] payload unmarshal failed", "err", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(withIdempotencyKey(ctx, idempotencyKey), req)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] sdk create failed", "err", err)
		return "", "", nil, err
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	slog.InfoContext(ctx, "[payment][gateway] create success", "provider_payment_id", resp.ID, "provider_status", resp.Status)
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// GetPayment reads the current status of a payment from the provider.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (string, json.RawMessage, error) {
	if g != nil && g.mock {
		b, err := json.Marshal(map[string]any{"id": providerPaymentID, "status": "approved", "status_detail": "accredited"})
		return "approved", b, err
	}
	if g == nil || g.client == nil {
		return "", nil, ErrGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return "", nil, fmt.Errorf("provider payment id %q: %w", providerPaymentID, err)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] sdk get failed", "provider_payment_id", id, "err", err)
		return "", nil, err
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Status, b, nil
}

// mockCreate echoes the request back as an approved, accredited payment.
// The idempotency key, when set, fixes the mock payment id.
func (g *MercadoPagoGateway) mockCreate(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	at := g.now()
	id := "mock-" + strconv.FormatInt(at.UnixNano(), 10)
	if idempotencyKey != "" {
		id = "mock-" + idempotencyKey
	}
	stamp := at.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	slog.InfoContext(ctx, "[payment][gateway] mock create success", "provider_payment_id", id)
	return id, "approved", b, nil
}
