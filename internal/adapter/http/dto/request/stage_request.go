package request

import (
	"errors"
	"strings"
	"time"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase"

	"github.com/shopspring/decimal"
)

// Amounts accept JSON numbers or decimal strings ("150.00").

type SparePartRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type InspectionRequest struct {
	ProblemsFound  string             `json:"problems_found"`
	InspectionDate *time.Time         `json:"inspection_date"`
	Notes          string             `json:"notes"`
	SpareParts     []SparePartRequest `json:"spare_parts"`
}

// ToInput validates every spare part; a rejected part is reported with its
// index in spare_parts.
func (r InspectionRequest) ToInput() (entities.InspectionInput, error) {
	parts := make([]entities.SparePart, 0, len(r.SpareParts))
	for i, p := range r.SpareParts {
		part, err := entities.NewSparePart(p.ID, p.Name, p.Description, p.Quantity, p.UnitPrice)
		if err != nil {
			return entities.InspectionInput{}, lineItemError(i, p.Name, err)
		}
		parts = append(parts, part)
	}
	return entities.InspectionInput{
		ProblemsFound:  r.ProblemsFound,
		InspectionDate: utc(r.InspectionDate),
		Notes:          r.Notes,
		SpareParts:     parts,
	}, nil
}

func lineItemError(i int, name string, err error) error {
	var ve *entities.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	return &entities.LineItemError{
		Index:  i,
		Name:   strings.TrimSpace(name),
		Field:  strings.TrimPrefix(ve.Field, "spare_parts."),
		Reason: ve.Reason,
	}
}

// QuotationRequest fields left out keep their current or drafted value.
type QuotationRequest struct {
	QuotationNumber *string          `json:"quotation_number"`
	QuotationDate   *time.Time       `json:"quotation_date"`
	Amount          *decimal.Decimal `json:"amount"`
}

func (r QuotationRequest) ToRequest() usecase.QuotationRequest {
	out := usecase.QuotationRequest{QuotationNumber: r.QuotationNumber, Amount: r.Amount}
	if r.QuotationDate != nil {
		d := r.QuotationDate.UTC()
		out.QuotationDate = &d
	}
	return out
}

type ApprovalRequest struct {
	LPONumber       string     `json:"lpo_number"`
	ReferenceNumber string     `json:"reference_number"`
	ApprovedAt      *time.Time `json:"approved_at"`
	Notes           string     `json:"notes"`
}

func (r ApprovalRequest) ToInput() entities.ApprovalInput {
	return entities.NewApprovalInput(r.LPONumber, r.ReferenceNumber, utc(r.ApprovedAt), r.Notes)
}

type InvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number"`
	InvoiceDate   *time.Time       `json:"invoice_date"`
	Amount        *decimal.Decimal `json:"amount"`
}

func (r InvoiceRequest) ToRequest() usecase.InvoiceRequest {
	out := usecase.InvoiceRequest{InvoiceNumber: r.InvoiceNumber, Amount: r.Amount}
	if r.InvoiceDate != nil {
		d := r.InvoiceDate.UTC()
		out.InvoiceDate = &d
	}
	return out
}

type DeliveryRequest struct {
	DeliveryDate *time.Time `json:"delivery_date"`
	ReceivedBy   string     `json:"received_by"`
	Notes        string     `json:"notes"`
}

// ToInput defaults a missing delivery date to the time of recording.
func (r DeliveryRequest) ToInput() (entities.DeliveryInput, error) {
	if r.DeliveryDate == nil {
		return entities.DeliveryInput{
			ReceivedBy: strings.TrimSpace(r.ReceivedBy),
			Notes:      strings.TrimSpace(r.Notes),
		}, nil
	}
	return entities.NewDeliveryInput(r.DeliveryDate.UTC(), r.ReceivedBy, r.Notes)
}

func utc(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
