package lifecycle

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"scale_workshop/internal/domain/costs"
	"scale_workshop/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Machine attaches stage records to jobs. The clock is injected so that date
// guards are deterministic in tests.
type Machine struct {
	now func() time.Time
}

func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Machine{now: now}
}

// mode tells whether a record advances the job or amends the current stage.
type mode int

const (
	advance mode = iota
	amend
)

// enter decides how a record for target may be applied to job.
// Amending the current stage is allowed except for terminal states.
func enter(job entities.Job, target entities.JobStatus) (mode, error) {
	if job.Status == target && !IsTerminal(target) {
		return amend, nil
	}
	if err := CanTransition(job.Status, target); err != nil {
		return 0, err
	}
	return advance, nil
}

// guardFailure reports a failed guard as PreconditionFailed when advancing
// and as a field ValidationError when amending the current stage.
func guardFailure(m mode, from, to entities.JobStatus, field, missing string) error {
	if m == amend {
		return entities.NewValidationError(field, missing)
	}
	return &entities.PreconditionError{Transition: fmt.Sprintf("%s -> %s", from, to), Missing: missing}
}

func (m *Machine) moveTo(job *entities.Job, to entities.JobStatus, actor entities.Actor, note string) {
	now := m.now()
	job.History = append(job.History, entities.StatusChange{From: job.Status, To: to, At: now, By: actor.Name, Note: note})
	job.Status = to
	job.UpdatedAt = now
}

func requireActor(actor entities.Actor, field string) error {
	if strings.TrimSpace(actor.Name) == "" {
		return entities.NewValidationError(field, "is required")
	}
	return nil
}

func inspectionTotal(parts []entities.SparePart) (decimal.Decimal, error) {
	return costs.Subtotal(parts)
}

// endOfToday is the first instant after the current calendar day.
func (m *Machine) endOfToday() time.Time {
	now := m.now()
	y, mo, d := now.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// RecordInspection attaches (or amends) the inspection and moves intake -> inspected.
// TotalCost is recomputed from the spare parts.
func (m *Machine) RecordInspection(job entities.Job, in entities.InspectionInput, actor entities.Actor) (entities.Job, error) {
	md, err := enter(job, entities.JobStatusInspected)
	if err != nil {
		return entities.Job{}, err
	}
	if err := requireActor(actor, "inspected_by"); err != nil {
		return entities.Job{}, err
	}

	total, err := inspectionTotal(in.SpareParts)
	if err != nil {
		return entities.Job{}, err
	}
	problems := strings.TrimSpace(in.ProblemsFound)
	if problems == "" && len(in.SpareParts) == 0 {
		return entities.Job{}, guardFailure(md, job.Status, entities.JobStatusInspected, "inspection", "problems_found or at least one spare part")
	}

	date := in.InspectionDate
	if date.IsZero() {
		date = m.now()
	}
	if !date.Before(m.endOfToday()) {
		return entities.Job{}, entities.NewValidationError("inspection_date", "must not be in the future")
	}

	now := m.now()
	out := job.Clone()
	inspection := entities.Inspection{
		ID:             uuid.NewString(),
		JobID:          job.ID,
		ProblemsFound:  problems,
		InspectedBy:    actor.Name,
		InspectionDate: date,
		Notes:          strings.TrimSpace(in.Notes),
		SpareParts:     append([]entities.SparePart(nil), in.SpareParts...),
		TotalCost:      total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if md == amend && job.Inspection != nil {
		inspection.ID = job.Inspection.ID
		inspection.CreatedAt = job.Inspection.CreatedAt
	}
	out.Inspection = &inspection

	if md == advance {
		m.moveTo(&out, entities.JobStatusInspected, actor, "")
	} else {
		out.UpdatedAt = now
	}
	return out, nil
}

// DraftQuotation returns the fields a new quotation starts from: the current
// quotation when one exists, otherwise QT-<job_number>-<year> priced at the
// inspection total. A job without an inspection has nothing to quote.
func (m *Machine) DraftQuotation(job entities.Job) (entities.QuotationFields, error) {
	if job.Inspection == nil {
		return entities.QuotationFields{}, &entities.TransitionError{From: job.Status, To: entities.JobStatusQuoted}
	}
	if job.Quotation != nil {
		return entities.QuotationFields{
			QuotationNumber: job.Quotation.QuotationNumber,
			QuotationDate:   job.Quotation.QuotationDate,
			Amount:          job.Quotation.Amount,
		}, nil
	}
	now := m.now()
	return entities.QuotationFields{
		QuotationNumber: entities.DefaultQuotationNumber(job.JobNumber, now),
		QuotationDate:   now,
		Amount:          job.Inspection.TotalCost,
	}, nil
}

// RecordQuotation attaches (or amends) the quotation and moves inspected -> quoted.
// Number uniqueness is enforced by the persistence layer at commit time.
func (m *Machine) RecordQuotation(job entities.Job, fields entities.QuotationFields, actor entities.Actor) (entities.Job, error) {
	if job.Inspection == nil {
		return entities.Job{}, &entities.TransitionError{From: job.Status, To: entities.JobStatusQuoted}
	}
	md, err := enter(job, entities.JobStatusQuoted)
	if err != nil {
		return entities.Job{}, err
	}
	if err := requireActor(actor, "prepared_by"); err != nil {
		return entities.Job{}, err
	}
	if strings.TrimSpace(fields.QuotationNumber) == "" {
		return entities.Job{}, guardFailure(md, job.Status, entities.JobStatusQuoted, "quotation_number", "quotation_number")
	}
	if fields.Amount.IsNegative() {
		return entities.Job{}, guardFailure(md, job.Status, entities.JobStatusQuoted, "amount", "amount >= 0")
	}
	if fields.QuotationDate.IsZero() {
		fields.QuotationDate = m.now()
	}

	now := m.now()
	out := job.Clone()
	q := entities.Quotation{
		ID:              uuid.NewString(),
		JobID:           job.ID,
		QuotationNumber: strings.TrimSpace(fields.QuotationNumber),
		QuotationDate:   fields.QuotationDate,
		Amount:          fields.Amount,
		PreparedBy:      actor.Name,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if md == amend && job.Quotation != nil {
		q.ID = job.Quotation.ID
		q.CreatedAt = job.Quotation.CreatedAt
	}
	out.Quotation = &q

	if md == advance {
		m.moveTo(&out, entities.JobStatusQuoted, actor, "")
	} else {
		out.UpdatedAt = now
	}
	return out, nil
}

// RecordApproval attaches (or amends) the customer approval and moves quoted -> approved.
func (m *Machine) RecordApproval(job entities.Job, in entities.ApprovalInput, actor entities.Actor) (entities.Job, error) {
	md, err := enter(job, entities.JobStatusApproved)
	if err != nil {
		return entities.Job{}, err
	}
	if err := requireActor(actor, "approved_by"); err != nil {
		return entities.Job{}, err
	}
	if in.LPONumber == "" && in.ReferenceNumber == "" {
		return entities.Job{}, guardFailure(md, job.Status, entities.JobStatusApproved, "approval", "lpo_number or reference_number")
	}
	approvedAt := in.ApprovedAt
	if approvedAt.IsZero() {
		approvedAt = m.now()
	}

	out := job.Clone()
	a := entities.Approval{
		ID:              uuid.NewString(),
		JobID:           job.ID,
		LPONumber:       in.LPONumber,
		ReferenceNumber: in.ReferenceNumber,
		ApprovedBy:      actor.Name,
		ApprovedAt:      approvedAt,
		Notes:           in.Notes,
	}
	if md == amend && job.Approval != nil {
		a.ID = job.Approval.ID
	}
	out.Approval = &a

	if md == advance {
		m.moveTo(&out, entities.JobStatusApproved, actor, "")
	} else {
		out.UpdatedAt = m.now()
	}
	return out, nil
}

// RecordInvoice attaches (or amends) the invoice and moves approved -> invoiced.
// Payments already taken against an amended invoice are kept.
func (m *Machine) RecordInvoice(job entities.Job, in entities.InvoiceInput, actor entities.Actor) (entities.Job, error) {
	md, err := enter(job, entities.JobStatusInvoiced)
	if err != nil {
		return entities.Job{}, err
	}
	if err := requireActor(actor, "issued_by"); err != nil {
		return entities.Job{}, err
	}
	if strings.TrimSpace(in.InvoiceNumber) == "" {
		return entities.Job{}, guardFailure(md, job.Status, entities.JobStatusInvoiced, "invoice_number", "invoice_number")
	}
	if !in.Amount.IsPositive() {
		return entities.Job{}, guardFailure(md, job.Status, entities.JobStatusInvoiced, "amount", "amount > 0")
	}
	date := in.InvoiceDate
	if date.IsZero() {
		date = m.now()
	}

	now := m.now()
	out := job.Clone()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		JobID:         job.ID,
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		InvoiceDate:   date,
		Amount:        in.Amount,
		IssuedBy:      actor.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if md == amend && out.Invoice != nil {
		inv.ID = out.Invoice.ID
		inv.CreatedAt = out.Invoice.CreatedAt
		inv.Payments = out.Invoice.Payments
	}
	out.Invoice = &inv

	if md == advance {
		m.moveTo(&out, entities.JobStatusInvoiced, actor, "")
	} else {
		out.UpdatedAt = now
	}
	return out, nil
}

// RecordDelivery attaches the delivery and moves invoiced -> delivered.
// Delivered is terminal, so the delivery record cannot be amended.
func (m *Machine) RecordDelivery(job entities.Job, in entities.DeliveryInput, actor entities.Actor) (entities.Job, error) {
	md, err := enter(job, entities.JobStatusDelivered)
	if err != nil {
		return entities.Job{}, err
	}
	if err := requireActor(actor, "delivered_by"); err != nil {
		return entities.Job{}, err
	}
	if in.DeliveryDate.IsZero() {
		in.DeliveryDate = m.now()
	}
	if !in.DeliveryDate.Before(m.endOfToday()) {
		return entities.Job{}, guardFailure(md, job.Status, entities.JobStatusDelivered, "delivery_date", "delivery_date <= current date")
	}

	out := job.Clone()
	out.Delivery = &entities.Delivery{
		ID:           uuid.NewString(),
		JobID:        job.ID,
		DeliveryDate: in.DeliveryDate,
		DeliveredBy:  actor.Name,
		ReceivedBy:   in.ReceivedBy,
		Notes:        in.Notes,
	}
	m.moveTo(&out, entities.JobStatusDelivered, actor, "")
	return out, nil
}

// Cancel moves any non-terminal job to cancelled. Nothing may follow.
func (m *Machine) Cancel(job entities.Job, reason string, actor entities.Actor) (entities.Job, error) {
	if err := CanTransition(job.Status, entities.JobStatusCancelled); err != nil {
		return entities.Job{}, err
	}
	if err := requireActor(actor, "cancelled_by"); err != nil {
		return entities.Job{}, err
	}

	reason = strings.TrimSpace(reason)
	out := job.Clone()
	out.Cancellation = &entities.Cancellation{At: m.now(), By: actor.Name, Reason: reason}
	m.moveTo(&out, entities.JobStatusCancelled, actor, reason)
	return out, nil
}

// AddPayment appends a payment to the invoice of an invoiced or delivered job.
// It does not change the job status.
func (m *Machine) AddPayment(job entities.Job, p entities.InvoicePayment) (entities.Job, error) {
	if job.Invoice == nil {
		return entities.Job{}, &entities.PreconditionError{Transition: "invoice payment", Missing: "invoice"}
	}
	if job.Status == entities.JobStatusCancelled {
		return entities.Job{}, &entities.TransitionError{From: job.Status, To: job.Status}
	}
	if !p.Amount.IsPositive() {
		return entities.Job{}, entities.NewValidationError("amount", "must be greater than zero")
	}
	if _, ok := job.Invoice.Payment(p.ID); ok && p.ID != "" {
		return entities.Job{}, &entities.ConflictError{Field: "payment_id", Value: p.ID}
	}
	out := job.Clone()
	out.Invoice.Payments = append(out.Invoice.Payments, p)
	out.Invoice.UpdatedAt = m.now()
	out.UpdatedAt = m.now()
	return out, nil
}

// SettlePayment records the provider's final status for a pending payment.
func (m *Machine) SettlePayment(job entities.Job, paymentID string, status entities.PaymentStatus, providerPayload json.RawMessage) (entities.Job, error) {
	if job.Invoice == nil {
		return entities.Job{}, &entities.PreconditionError{Transition: "invoice payment", Missing: "invoice"}
	}
	if status != entities.PaymentStatusApproved && status != entities.PaymentStatusDenied {
		return entities.Job{}, entities.NewValidationError("status", "must be approved or denied")
	}
	out := job.Clone()
	for i := range out.Invoice.Payments {
		p := &out.Invoice.Payments[i]
		if p.ID != paymentID {
			continue
		}
		if p.Status != entities.PaymentStatusPending {
			return entities.Job{}, entities.NewValidationError("status", "payment "+paymentID+" is already "+string(p.Status))
		}
		p.Status = status
		if len(providerPayload) > 0 {
			p.ProviderPayloadRaw = providerPayload
		}
		out.Invoice.UpdatedAt = m.now()
		out.UpdatedAt = m.now()
		return out, nil
	}
	return entities.Job{}, &entities.NotFoundError{Entity: "payment", ID: paymentID}
}
