package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is the priced offer sent to the customer.
//
// Amount defaults to the inspection total cost but the operator may override
// it; the override is kept as entered and never reconciled with the computed total.
type Quotation struct {
	ID              string          `json:"id"`
	JobID           string          `json:"job_id"`
	QuotationNumber string          `json:"quotation_number"`
	QuotationDate   time.Time       `json:"quotation_date"`
	Amount          decimal.Decimal `json:"amount"`
	PreparedBy      string          `json:"prepared_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// QuotationFields are the operator-editable quotation values.
type QuotationFields struct {
	QuotationNumber string
	QuotationDate   time.Time
	Amount          decimal.Decimal
}

// DefaultQuotationNumber builds the QT-<job_number>-<year> pattern.
func DefaultQuotationNumber(jobNumber string, date time.Time) string {
	return fmt.Sprintf("QT-%s-%d", jobNumber, date.Year())
}

func NewQuotationFields(number string, date time.Time, amount decimal.Decimal) (QuotationFields, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return QuotationFields{}, NewValidationError("quotation_number", "is required")
	}
	if date.IsZero() {
		return QuotationFields{}, NewValidationError("quotation_date", "is required")
	}
	if err := CheckAmount("amount", amount); err != nil {
		return QuotationFields{}, err
	}
	return QuotationFields{QuotationNumber: number, QuotationDate: date, Amount: amount}, nil
}
