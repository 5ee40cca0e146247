// Package documents builds read-only snapshots of a job for display and for
// rendering into files. A document never references the entities it was
// built from; every value is copied and every amount is already formatted.
package documents

import (
	"strings"
	"time"

	"scale_workshop/internal/domain/costs"
	"scale_workshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ValidityDays is how long a quotation stays valid after its date.
const ValidityDays = 30

// Kind tags the document variant.
type Kind string

const (
	KindPreview   Kind = "preview"
	KindQuotation Kind = "quotation"
)

// Document is implemented only by PreviewDoc and QuotationDoc.
type Document interface {
	Kind() Kind
	Summary() JobSummary
	sealed()
}

// Money pairs an exact amount with its display string.
type Money struct {
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
}

type JobSummary struct {
	JobID           string             `json:"job_id"`
	JobNumber       string             `json:"job_number"`
	CustomerName    string             `json:"customer_name"`
	Equipment       entities.Equipment `json:"equipment"`
	ReportedProblem string             `json:"reported_problem,omitempty"`
	Status          entities.JobStatus `json:"status"`
	TakenBy         string             `json:"taken_by"`
	ReceivedAt      time.Time          `json:"received_at"`
}

type LineItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
	LineTotal   Money  `json:"line_total"`
}

type InspectionSummary struct {
	ProblemsFound  string     `json:"problems_found,omitempty"`
	InspectedBy    string     `json:"inspected_by"`
	InspectionDate time.Time  `json:"inspection_date"`
	Notes          string     `json:"notes,omitempty"`
	Lines          []LineItem `json:"lines"`
	TotalCost      Money      `json:"total_cost"`
}

// Breakdown is the computed financial view shown next to a quotation total.
// Overridden is set when the quoted amount differs from ComputedTotal.
type Breakdown struct {
	Subtotal      Money           `json:"subtotal"`
	Tax           Money           `json:"tax"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	ComputedTotal Money           `json:"computed_total"`
	Overridden    bool            `json:"overridden"`
}

// PreviewDoc is the job sheet. Inspection is nil when no inspection exists.
type PreviewDoc struct {
	Job        JobSummary         `json:"job"`
	Inspection *InspectionSummary `json:"inspection,omitempty"`
	Currency   string             `json:"currency"`
	ComposedAt time.Time          `json:"composed_at"`
}

func (PreviewDoc) Kind() Kind            { return KindPreview }
func (d PreviewDoc) Summary() JobSummary { return d.Job }
func (PreviewDoc) sealed()               {}

// QuotationDoc is the customer-facing offer. Total is the quoted amount as
// entered; Breakdown is nil when there is no inspection to compute it from.
type QuotationDoc struct {
	Job             JobSummary         `json:"job"`
	Inspection      *InspectionSummary `json:"inspection,omitempty"`
	Currency        string             `json:"currency"`
	QuotationNumber string             `json:"quotation_number"`
	QuotationDate   time.Time          `json:"quotation_date"`
	ValidUntil      time.Time          `json:"valid_until"`
	Total           Money              `json:"total"`
	Breakdown       *Breakdown         `json:"breakdown,omitempty"`
	ComposedAt      time.Time          `json:"composed_at"`
}

func (QuotationDoc) Kind() Kind            { return KindQuotation }
func (d QuotationDoc) Summary() JobSummary { return d.Job }
func (QuotationDoc) sealed()               {}

type Composer struct {
	aggregator costs.Aggregator
	formatter  costs.Formatter
	currency   string
	now        func() time.Time
}

// NewComposer fails when currency is not an ISO 4217 code.
func NewComposer(aggregator costs.Aggregator, formatter costs.Formatter, currency string, now func() time.Time) (*Composer, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if _, err := formatter.Format(decimal.Zero, currency); err != nil {
		return nil, err
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Composer{aggregator: aggregator, formatter: formatter, currency: currency, now: now}, nil
}

func (c *Composer) money(v decimal.Decimal) Money {
	return Money{Value: v.Round(entities.MoneyScale), Display: c.formatter.MustFormat(v, c.currency)}
}

func summarize(job entities.Job) JobSummary {
	return JobSummary{
		JobID:           job.ID,
		JobNumber:       job.JobNumber,
		CustomerName:    job.CustomerName,
		Equipment:       job.Equipment,
		ReportedProblem: job.ReportedProblem,
		Status:          job.Status,
		TakenBy:         job.TakenBy,
		ReceivedAt:      job.ReceivedAt,
	}
}

func (c *Composer) inspectionSummary(job entities.Job, in *entities.Inspection) (*InspectionSummary, costs.Totals, error) {
	if in == nil {
		return nil, costs.Totals{}, nil
	}
	if in.JobID != "" && in.JobID != job.ID {
		return nil, costs.Totals{}, entities.NewValidationError("inspection.job_id", "belongs to another job")
	}
	totals, err := c.aggregator.Aggregate(in.SpareParts)
	if err != nil {
		return nil, costs.Totals{}, err
	}

	lines := make([]LineItem, 0, len(in.SpareParts))
	for _, p := range in.SpareParts {
		lines = append(lines, LineItem{
			Name:        p.Name,
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitPrice:   c.money(p.UnitPrice),
			LineTotal:   c.money(costs.LineTotal(p)),
		})
	}
	return &InspectionSummary{
		ProblemsFound:  in.ProblemsFound,
		InspectedBy:    in.InspectedBy,
		InspectionDate: in.InspectionDate,
		Notes:          in.Notes,
		Lines:          lines,
		TotalCost:      c.money(totals.Subtotal),
	}, totals, nil
}

// ComposePreview snapshots the job and, when present, its inspection.
func (c *Composer) ComposePreview(job entities.Job, inspection *entities.Inspection) (PreviewDoc, error) {
	summary, _, err := c.inspectionSummary(job, inspection)
	if err != nil {
		return PreviewDoc{}, err
	}
	return PreviewDoc{
		Job:        summarize(job),
		Inspection: summary,
		Currency:   c.currency,
		ComposedAt: c.now(),
	}, nil
}

// ComposeQuotation snapshots a quotation. fields.Amount is the displayed
// total even when it differs from the computed subtotal plus tax.
func (c *Composer) ComposeQuotation(job entities.Job, inspection *entities.Inspection, fields entities.QuotationFields) (QuotationDoc, error) {
	fields, err := entities.NewQuotationFields(fields.QuotationNumber, fields.QuotationDate, fields.Amount)
	if err != nil {
		return QuotationDoc{}, err
	}
	summary, totals, err := c.inspectionSummary(job, inspection)
	if err != nil {
		return QuotationDoc{}, err
	}

	doc := QuotationDoc{
		Job:             summarize(job),
		Inspection:      summary,
		Currency:        c.currency,
		QuotationNumber: fields.QuotationNumber,
		QuotationDate:   fields.QuotationDate,
		ValidUntil:      fields.QuotationDate.AddDate(0, 0, ValidityDays),
		Total:           c.money(fields.Amount),
		ComposedAt:      c.now(),
	}
	if summary != nil {
		doc.Breakdown = &Breakdown{
			Subtotal:      c.money(totals.Subtotal),
			Tax:           c.money(totals.Tax),
			TaxRate:       c.aggregator.TaxRate,
			ComputedTotal: c.money(totals.Total),
			Overridden:    !fields.Amount.Equal(totals.Total),
		}
	}
	return doc, nil
}
