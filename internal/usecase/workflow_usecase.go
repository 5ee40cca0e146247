package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/domain/lifecycle"
	"scale_workshop/internal/infrastructure/metrics"
	"scale_workshop/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// QuotationRequest holds the operator's quotation edits. Nil fields fall back
// to the current quotation, or to the draft seeded from the inspection.
type QuotationRequest struct {
	QuotationNumber *string
	QuotationDate   *time.Time
	Amount          *decimal.Decimal
}

// InvoiceRequest is the invoice form. A nil Amount bills the quoted amount.
type InvoiceRequest struct {
	InvoiceNumber string
	InvoiceDate   *time.Time
	Amount        *decimal.Decimal
}

// IWorkflowUseCase attaches stage records to jobs.
type IWorkflowUseCase interface {
	RecordInspection(ctx context.Context, jobID string, in entities.InspectionInput, actor entities.Actor) (entities.Job, error)
	RecordQuotation(ctx context.Context, jobID string, req QuotationRequest, actor entities.Actor) (entities.Job, error)
	RecordApproval(ctx context.Context, jobID string, in entities.ApprovalInput, actor entities.Actor) (entities.Job, error)
	RecordInvoice(ctx context.Context, jobID string, req InvoiceRequest, actor entities.Actor) (entities.Job, error)
	RecordDelivery(ctx context.Context, jobID string, in entities.DeliveryInput, actor entities.Actor) (entities.Job, error)
}

type WorkflowUseCase struct {
	repo    interfaces.IJobRepository
	machine *lifecycle.Machine
	metrics *metrics.Metrics
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(repo interfaces.IJobRepository, machine *lifecycle.Machine, m *metrics.Metrics) *WorkflowUseCase {
	return &WorkflowUseCase{repo: repo, machine: machine, metrics: m}
}

// step derives the new job value and the numbers it needs reserved.
type step func(job entities.Job) (entities.Job, []entities.NumberClaim, error)

// apply loads the job, runs the step and saves the result against the loaded
// version, so two concurrent submissions cannot both advance the job.
func (u *WorkflowUseCase) apply(ctx context.Context, stage, jobID string, fn step) (entities.Job, error) {
	jobID, err := requireID("job_id", jobID)
	if err != nil {
		return entities.Job{}, err
	}
	slog.InfoContext(ctx, "[workflow][usecase] "+stage+" start", "job_id", jobID)

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	out, claims, err := fn(job)
	if err != nil {
		u.metrics.TransitionFailed(stage, errorClass(err))
		slog.WarnContext(ctx, "[workflow][usecase] "+stage+" rejected", "job_id", jobID, "status", job.Status, "err", err)
		return entities.Job{}, err
	}

	for _, c := range claims {
		taken, err := u.repo.IsNumberTaken(ctx, c.Kind, c.Number, job.ID)
		if err != nil {
			return entities.Job{}, err
		}
		if taken {
			u.metrics.Conflict()
			return entities.Job{}, &entities.ConflictError{Field: c.Kind.Field(), Value: c.Number}
		}
	}

	saved, err := u.repo.Save(ctx, out, job.Version, claims)
	if err != nil {
		if errorClass(err) == "conflict" {
			u.metrics.Conflict()
		}
		slog.ErrorContext(ctx, "[workflow][usecase] "+stage+" save failed", "job_id", jobID, "err", err)
		return entities.Job{}, err
	}

	mode := "advance"
	if saved.Status == job.Status {
		mode = "amend"
	}
	u.metrics.Transition(stage, mode)
	slog.InfoContext(ctx, "[workflow][usecase] "+stage+" success", "job_id", jobID, "status", saved.Status, "mode", mode)
	return saved, nil
}

func (u *WorkflowUseCase) RecordInspection(ctx context.Context, jobID string, in entities.InspectionInput, actor entities.Actor) (entities.Job, error) {
	return u.apply(ctx, "inspection", jobID, func(job entities.Job) (entities.Job, []entities.NumberClaim, error) {
		out, err := u.machine.RecordInspection(job, in, actor)
		return out, nil, err
	})
}

// RecordQuotation never accepts a client-side seed for missing values: the
// number and amount default to what the server derives from the inspection.
func (u *WorkflowUseCase) RecordQuotation(ctx context.Context, jobID string, req QuotationRequest, actor entities.Actor) (entities.Job, error) {
	return u.apply(ctx, "quotation", jobID, func(job entities.Job) (entities.Job, []entities.NumberClaim, error) {
		draft, err := u.machine.DraftQuotation(job)
		if err != nil {
			return entities.Job{}, nil, err
		}
		if req.QuotationNumber != nil {
			draft.QuotationNumber = *req.QuotationNumber
		}
		if req.QuotationDate != nil {
			draft.QuotationDate = *req.QuotationDate
		}
		if req.Amount != nil {
			draft.Amount = *req.Amount
		}
		fields, err := entities.NewQuotationFields(draft.QuotationNumber, draft.QuotationDate, draft.Amount)
		if err != nil {
			return entities.Job{}, nil, err
		}

		out, err := u.machine.RecordQuotation(job, fields, actor)
		if err != nil {
			return entities.Job{}, nil, err
		}
		var claims []entities.NumberClaim
		if job.Quotation == nil || job.Quotation.QuotationNumber != out.Quotation.QuotationNumber {
			claims = append(claims, entities.NumberClaim{Kind: entities.NumberKindQuotation, Number: out.Quotation.QuotationNumber})
		}
		return out, claims, nil
	})
}

func (u *WorkflowUseCase) RecordApproval(ctx context.Context, jobID string, in entities.ApprovalInput, actor entities.Actor) (entities.Job, error) {
	return u.apply(ctx, "approval", jobID, func(job entities.Job) (entities.Job, []entities.NumberClaim, error) {
		out, err := u.machine.RecordApproval(job, in, actor)
		return out, nil, err
	})
}

func (u *WorkflowUseCase) RecordInvoice(ctx context.Context, jobID string, req InvoiceRequest, actor entities.Actor) (entities.Job, error) {
	return u.apply(ctx, "invoice", jobID, func(job entities.Job) (entities.Job, []entities.NumberClaim, error) {
		date := now()
		if req.InvoiceDate != nil {
			date = *req.InvoiceDate
		}
		amount := decimal.Zero
		switch {
		case req.Amount != nil:
			amount = *req.Amount
		case job.Invoice != nil:
			amount = job.Invoice.Amount
		case job.Quotation != nil:
			amount = job.Quotation.Amount
		}
		in, err := entities.NewInvoiceInput(req.InvoiceNumber, date, amount)
		if err != nil {
			return entities.Job{}, nil, err
		}

		out, err := u.machine.RecordInvoice(job, in, actor)
		if err != nil {
			return entities.Job{}, nil, err
		}
		var claims []entities.NumberClaim
		if job.Invoice == nil || job.Invoice.InvoiceNumber != out.Invoice.InvoiceNumber {
			claims = append(claims, entities.NumberClaim{Kind: entities.NumberKindInvoice, Number: out.Invoice.InvoiceNumber})
		}
		return out, claims, nil
	})
}

func (u *WorkflowUseCase) RecordDelivery(ctx context.Context, jobID string, in entities.DeliveryInput, actor entities.Actor) (entities.Job, error) {
	in.ReceivedBy = strings.TrimSpace(in.ReceivedBy)
	return u.apply(ctx, "delivery", jobID, func(job entities.Job) (entities.Job, []entities.NumberClaim, error) {
		out, err := u.machine.RecordDelivery(job, in, actor)
		return out, nil, err
	})
}
