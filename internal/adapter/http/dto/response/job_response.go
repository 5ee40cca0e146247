package response

import (
	"time"

	"scale_workshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Amounts are rendered with exactly two decimals.
func money(v decimal.Decimal) string { return v.StringFixed(entities.MoneyScale) }

type SparePartResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type InspectionResponse struct {
	ID             string              `json:"id"`
	ProblemsFound  string              `json:"problems_found,omitempty"`
	InspectedBy    string              `json:"inspected_by"`
	InspectionDate time.Time           `json:"inspection_date"`
	Notes          string              `json:"notes,omitempty"`
	SpareParts     []SparePartResponse `json:"spare_parts"`
	TotalCost      string              `json:"total_cost"`
}

type QuotationResponse struct {
	ID              string    `json:"id"`
	QuotationNumber string    `json:"quotation_number"`
	QuotationDate   time.Time `json:"quotation_date"`
	Amount          string    `json:"amount"`
	PreparedBy      string    `json:"prepared_by"`
}

type ApprovalResponse struct {
	ID              string    `json:"id"`
	LPONumber       string    `json:"lpo_number,omitempty"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	ApprovedBy      string    `json:"approved_by"`
	ApprovedAt      time.Time `json:"approved_at"`
	Notes           string    `json:"notes,omitempty"`
}

type InvoiceResponse struct {
	ID            string                   `json:"id"`
	InvoiceNumber string                   `json:"invoice_number"`
	InvoiceDate   time.Time                `json:"invoice_date"`
	Amount        string                   `json:"amount"`
	IssuedBy      string                   `json:"issued_by"`
	Paid          string                   `json:"paid"`
	Outstanding   string                   `json:"outstanding"`
	Payments      []InvoicePaymentResponse `json:"payments"`
}

type DeliveryResponse struct {
	DeliveryDate time.Time `json:"delivery_date"`
	DeliveredBy  string    `json:"delivered_by"`
	ReceivedBy   string    `json:"received_by,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type CancellationResponse struct {
	At     time.Time `json:"at"`
	By     string    `json:"by"`
	Reason string    `json:"reason,omitempty"`
}

type JobResponse struct {
	ID              string                  `json:"id"`
	JobNumber       string                  `json:"job_number"`
	CustomerID      string                  `json:"customer_id"`
	CustomerName    string                  `json:"customer_name"`
	Equipment       entities.Equipment      `json:"equipment"`
	ReportedProblem string                  `json:"reported_problem,omitempty"`
	Status          string                  `json:"status"`
	TakenBy         string                  `json:"taken_by"`
	ReceivedAt      time.Time               `json:"received_at"`
	Version         int64                   `json:"version"`
	Inspection      *InspectionResponse     `json:"inspection,omitempty"`
	Quotation       *QuotationResponse      `json:"quotation,omitempty"`
	Approval        *ApprovalResponse       `json:"approval,omitempty"`
	Invoice         *InvoiceResponse        `json:"invoice,omitempty"`
	Delivery        *DeliveryResponse       `json:"delivery,omitempty"`
	Cancellation    *CancellationResponse   `json:"cancellation,omitempty"`
	History         []entities.StatusChange `json:"history"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	res := JobResponse{
		ID:              j.ID,
		JobNumber:       j.JobNumber,
		CustomerID:      j.CustomerID,
		CustomerName:    j.CustomerName,
		Equipment:       j.Equipment,
		ReportedProblem: j.ReportedProblem,
		Status:          string(j.Status),
		TakenBy:         j.TakenBy,
		ReceivedAt:      j.ReceivedAt,
		Version:         j.Version,
		History:         append([]entities.StatusChange{}, j.History...),
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
	if in := j.Inspection; in != nil {
		parts := make([]SparePartResponse, 0, len(in.SpareParts))
		for _, p := range in.SpareParts {
			parts = append(parts, SparePartResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Quantity:    p.Quantity,
				UnitPrice:   money(p.UnitPrice),
				LineTotal:   money(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))),
			})
		}
		res.Inspection = &InspectionResponse{
			ID:             in.ID,
			ProblemsFound:  in.ProblemsFound,
			InspectedBy:    in.InspectedBy,
			InspectionDate: in.InspectionDate,
			Notes:          in.Notes,
			SpareParts:     parts,
			TotalCost:      money(in.TotalCost),
		}
	}
	if q := j.Quotation; q != nil {
		res.Quotation = &QuotationResponse{
			ID:              q.ID,
			QuotationNumber: q.QuotationNumber,
			QuotationDate:   q.QuotationDate,
			Amount:          money(q.Amount),
			PreparedBy:      q.PreparedBy,
		}
	}
	if a := j.Approval; a != nil {
		res.Approval = &ApprovalResponse{
			ID:              a.ID,
			LPONumber:       a.LPONumber,
			ReferenceNumber: a.ReferenceNumber,
			ApprovedBy:      a.ApprovedBy,
			ApprovedAt:      a.ApprovedAt,
			Notes:           a.Notes,
		}
	}
	if inv := j.Invoice; inv != nil {
		res.Invoice = &InvoiceResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate,
			Amount:        money(inv.Amount),
			IssuedBy:      inv.IssuedBy,
			Paid:          money(inv.PaidAmount()),
			Outstanding:   money(inv.Outstanding()),
			Payments:      FromInvoicePayments(inv.Payments),
		}
	}
	if d := j.Delivery; d != nil {
		res.Delivery = &DeliveryResponse{
			DeliveryDate: d.DeliveryDate,
			DeliveredBy:  d.DeliveredBy,
			ReceivedBy:   d.ReceivedBy,
			Notes:        d.Notes,
		}
	}
	if c := j.Cancellation; c != nil {
		res.Cancellation = &CancellationResponse{At: c.At, By: c.By, Reason: c.Reason}
	}
	return res
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
