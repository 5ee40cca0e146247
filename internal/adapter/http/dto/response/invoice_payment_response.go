package response

import (
	"encoding/json"
	"time"

	"scale_workshop/internal/domain/entities"
)

type InvoicePaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	Date      time.Time `json:"date"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	res := InvoicePaymentResponse{
		PaymentID:          p.ID,
		Date:               p.Date,
		Amount:             money(p.Amount),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			res.ProviderPayload = parsed
		}
	}
	return res
}

func FromInvoicePayments(ps []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
