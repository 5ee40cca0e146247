package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment is a charge made against an invoice through the payment provider.
//
// ProviderPayloadRaw keeps the provider response body for traceability.
type InvoicePayment struct {
	ID                 string          `json:"id"`
	Date               time.Time       `json:"date"`
	Amount             decimal.Decimal `json:"amount"`
	Status             PaymentStatus   `json:"status"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

type Invoice struct {
	ID            string           `json:"id"`
	JobID         string           `json:"job_id"`
	InvoiceNumber string           `json:"invoice_number"`
	InvoiceDate   time.Time        `json:"invoice_date"`
	Amount        decimal.Decimal  `json:"amount"`
	IssuedBy      string           `json:"issued_by"`
	Payments      []InvoicePayment `json:"payments,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type InvoiceInput struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	Amount        decimal.Decimal
}

func NewInvoiceInput(number string, date time.Time, amount decimal.Decimal) (InvoiceInput, error) {
	if err := CheckAmount("amount", amount); err != nil {
		return InvoiceInput{}, err
	}
	if date.IsZero() {
		return InvoiceInput{}, NewValidationError("invoice_date", "is required")
	}
	return InvoiceInput{
		InvoiceNumber: strings.TrimSpace(number),
		InvoiceDate:   date,
		Amount:        amount,
	}, nil
}

// PaidAmount sums approved payments.
func (i Invoice) PaidAmount() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range i.Payments {
		if p.Status == PaymentStatusApproved {
			paid = paid.Add(p.Amount)
		}
	}
	return paid
}

// Outstanding is the amount still due, never below zero.
func (i Invoice) Outstanding() decimal.Decimal {
	due := i.Amount.Sub(i.PaidAmount())
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// Payment finds a payment by its provider id.
func (i Invoice) Payment(id string) (InvoicePayment, bool) {
	for _, p := range i.Payments {
		if p.ID == id {
			return p, true
		}
	}
	return InvoicePayment{}, false
}

// PendingPayment returns the first payment the provider has not settled.
func (i Invoice) PendingPayment() (InvoicePayment, bool) {
	for _, p := range i.Payments {
		if p.Status == PaymentStatusPending {
			return p, true
		}
	}
	return InvoicePayment{}, false
}

func (i Invoice) clone() Invoice {
	out := i
	out.Payments = append([]InvoicePayment(nil), i.Payments...)
	return out
}
