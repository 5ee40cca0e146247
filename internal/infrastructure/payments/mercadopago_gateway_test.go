package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		if _, err := NewMercadoPagoGateway("  ", false); !errors.Is(err, ErrMissingAccessToken) {
			t.Fatalf("expected ErrMissingAccessToken, got %v", err)
		}
	})

	t.Run("mock ignores token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		if err != nil || !g.mock {
			t.Fatalf("expected mock gateway, got %+v %v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), "", json.RawMessage(`{}`)); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("mock approves and echoes", func(t *testing.T) {
		at := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)
		g := NewMockGateway(func() time.Time { return at })

		id, status, raw, err := g.CreatePayment(context.Background(), "", json.RawMessage(`{"external_reference":"INV-1","transaction_amount":250}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "approved" || id == "" {
			t.Fatalf("unexpected result: %s %s", id, status)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("response should be json: %v", err)
		}
		if body["external_reference"] != "INV-1" || body["status_detail"] != "accredited" || body["id"] != id {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["date_approved"] != at.Format(time.RFC3339Nano) {
			t.Fatalf("unexpected date_approved: %v", body["date_approved"])
		}
	})

	t.Run("mock tolerates invalid payload", func(t *testing.T) {
		g := NewMockGateway(nil)
		if _, status, _, err := g.CreatePayment(context.Background(), "", json.RawMessage(`{`)); err != nil || status != "approved" {
			t.Fatalf("unexpected result: %s %v", status, err)
		}
	})
}

func TestMercadoPagoGateway_MockKeyedCharge(t *testing.T) {
	g := NewMockGateway(nil)
	first, _, _, err := g.CreatePayment(context.Background(), "key-1", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, _, _ := g.CreatePayment(context.Background(), "key-1", json.RawMessage(`{}`))
	if first != "mock-key-1" || first != second {
		t.Fatalf("same key should give the same payment, got %s and %s", first, second)
	}
}

// recordingRequester answers every call with body and keeps the requests.
type recordingRequester struct {
	body string
	reqs []*http.Request
}

func (r *recordingRequester) Do(req *http.Request) (*http.Response, error) {
	r.reqs = append(r.reqs, req)
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(r.body)),
	}, nil
}

func sdkGateway(t *testing.T, rec *recordingRequester) *MercadoPagoGateway {
	t.Helper()
	cfg, err := config.New("token", config.WithHTTPClient(rec), WithCallerIdempotencyKeys())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return NewGatewayWithClient(payment.NewClient(cfg))
}

func TestMercadoPagoGateway_SDK(t *testing.T) {
	t.Run("create sends the caller key", func(t *testing.T) {
		rec := &recordingRequester{body: `{"id":123,"status":"in_process"}`}
		g := sdkGateway(t, rec)

		id, status, _, err := g.CreatePayment(context.Background(), "key-1", json.RawMessage(`{"transaction_amount":250}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "123" || status != "in_process" {
			t.Fatalf("unexpected result: %s %s", id, status)
		}
		if len(rec.reqs) != 1 || rec.reqs[0].Header.Get("X-Idempotency-Key") != "key-1" {
			t.Fatalf("expected caller idempotency key, got %v", rec.reqs)
		}
	})

	t.Run("create without a key keeps the sdk key", func(t *testing.T) {
		rec := &recordingRequester{body: `{"id":1,"status":"approved"}`}
		g := sdkGateway(t, rec)

		if _, _, _, err := g.CreatePayment(context.Background(), "", json.RawMessage(`{}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.reqs[0].Header.Get("X-Idempotency-Key") == "" {
			t.Fatalf("sdk key should be kept")
		}
	})

	t.Run("get reads the status", func(t *testing.T) {
		rec := &recordingRequester{body: `{"id":123,"status":"approved"}`}
		g := sdkGateway(t, rec)

		status, raw, err := g.GetPayment(context.Background(), "123")
		if err != nil || status != "approved" || len(raw) == 0 {
			t.Fatalf("unexpected result: %s %s %v", status, raw, err)
		}
		if !strings.HasSuffix(rec.reqs[0].URL.Path, "/v1/payments/123") {
			t.Fatalf("unexpected path %s", rec.reqs[0].URL.Path)
		}
	})

	t.Run("get rejects a non numeric id", func(t *testing.T) {
		g := sdkGateway(t, &recordingRequester{})
		if _, _, err := g.GetPayment(context.Background(), "mock-1"); err == nil {
			t.Fatalf("expected an error")
		}
	})
}
