package response

import (
	"encoding/json"
	"testing"
	"time"

	"scale_workshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromJob(t *testing.T) {
	d := decimal.RequireFromString
	now := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)
	j := entities.Job{
		ID:        "job-1",
		JobNumber: "J-1001",
		Status:    entities.JobStatusInvoiced,
		Inspection: &entities.Inspection{
			SpareParts: []entities.SparePart{{Name: "Load cell", Quantity: 2, UnitPrice: d("150")}},
			TotalCost:  d("300"),
		},
		Invoice: &entities.Invoice{
			InvoiceNumber: "INV-1",
			Amount:        d("400"),
			Payments:      []entities.InvoicePayment{{ID: "p-1", Date: now, Amount: d("150.5"), Status: entities.PaymentStatusApproved}},
		},
	}

	res := FromJob(j)
	if res.Inspection.TotalCost != "300.00" || res.Inspection.SpareParts[0].LineTotal != "300.00" {
		t.Fatalf("unexpected inspection: %+v", res.Inspection)
	}
	if res.Invoice.Paid != "150.50" || res.Invoice.Outstanding != "249.50" || len(res.Invoice.Payments) != 1 {
		t.Fatalf("unexpected invoice: %+v", res.Invoice)
	}
	if res.Quotation != nil || res.Delivery != nil || res.History == nil {
		t.Fatalf("absent records should be nil and history non-nil")
	}
}

func TestFromInvoicePayment(t *testing.T) {
	p := entities.InvoicePayment{ID: "pay-1", Amount: decimal.RequireFromString("10"), Status: entities.PaymentStatusPending, ProviderPayloadRaw: json.RawMessage(`{"id":123}`)}

	res := FromInvoicePayment(p)
	if res.PaymentID != "pay-1" || res.Amount != "10.00" || res.Status != "pending" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ProviderPayload["id"] != float64(123) {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}

	p.ProviderPayloadRaw = json.RawMessage(`{`)
	if res := FromInvoicePayment(p); res.ProviderPayload != nil || res.ProviderPayloadRaw != "{" {
		t.Fatalf("invalid raw payload should only be echoed: %+v", res)
	}
}
