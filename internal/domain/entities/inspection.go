package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SparePart is a line item of an inspection.
type SparePart struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// NewSparePart validates a line item. An empty id gets a generated one.
func NewSparePart(id, name, description string, quantity int, unitPrice decimal.Decimal) (SparePart, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SparePart{}, NewValidationError("spare_parts.name", "is required")
	}
	if quantity <= 0 {
		return SparePart{}, NewValidationError("spare_parts.quantity", "must be a positive integer")
	}
	if err := CheckAmount("spare_parts.unit_price", unitPrice); err != nil {
		return SparePart{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}
	return SparePart{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

// Inspection records what the technician found.
//
// TotalCost always equals the sum of the spare part line totals; it is
// computed when the inspection is recorded and never accepted from callers.
type Inspection struct {
	ID             string          `json:"id"`
	JobID          string          `json:"job_id"`
	ProblemsFound  string          `json:"problems_found,omitempty"`
	InspectedBy    string          `json:"inspected_by"`
	InspectionDate time.Time       `json:"inspection_date"`
	Notes          string          `json:"notes,omitempty"`
	SpareParts     []SparePart     `json:"spare_parts"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InspectionInput is the inspection form as submitted by the operator.
type InspectionInput struct {
	ProblemsFound  string
	InspectionDate time.Time
	Notes          string
	SpareParts     []SparePart
}

func (i Inspection) clone() Inspection {
	out := i
	out.SpareParts = append([]SparePart(nil), i.SpareParts...)
	return out
}
