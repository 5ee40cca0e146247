package usecase

import (
	"context"
	"log/slog"

	"scale_workshop/internal/domain/documents"
	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/domain/lifecycle"
	"scale_workshop/internal/infrastructure/metrics"
	"scale_workshop/internal/usecase/interfaces"
)

// IDocumentUseCase composes job documents and renders them to files.
type IDocumentUseCase interface {
	Preview(ctx context.Context, jobID string) (documents.PreviewDoc, error)
	Quotation(ctx context.Context, jobID string) (documents.QuotationDoc, error)
	PreviewPDF(ctx context.Context, jobID string) ([]byte, documents.PreviewDoc, error)
	QuotationPDF(ctx context.Context, jobID string) ([]byte, documents.QuotationDoc, error)
	RegisterWorkbook(ctx context.Context, status entities.JobStatus) ([]byte, error)
}

type DocumentUseCase struct {
	repo     interfaces.IJobRepository
	composer *documents.Composer
	machine  *lifecycle.Machine
	renderer interfaces.IDocumentRenderer
	metrics  *metrics.Metrics
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IJobRepository, composer *documents.Composer, machine *lifecycle.Machine, renderer interfaces.IDocumentRenderer, m *metrics.Metrics) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, composer: composer, machine: machine, renderer: renderer, metrics: m}
}

func (u *DocumentUseCase) load(ctx context.Context, jobID string) (entities.Job, error) {
	jobID, err := requireID("job_id", jobID)
	if err != nil {
		return entities.Job{}, err
	}
	return u.repo.GetByID(ctx, jobID)
}

func (u *DocumentUseCase) Preview(ctx context.Context, jobID string) (documents.PreviewDoc, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return documents.PreviewDoc{}, err
	}
	doc, err := u.composer.ComposePreview(job, job.Inspection)
	if err != nil {
		return documents.PreviewDoc{}, err
	}
	u.metrics.Document(string(documents.KindPreview), "json")
	return doc, nil
}

// Quotation composes the recorded quotation. Before one is recorded it
// composes the draft the operator would get by default, which requires an
// inspection.
func (u *DocumentUseCase) Quotation(ctx context.Context, jobID string) (documents.QuotationDoc, error) {
	doc, err := u.quotation(ctx, jobID)
	if err != nil {
		return documents.QuotationDoc{}, err
	}
	u.metrics.Document(string(documents.KindQuotation), "json")
	return doc, nil
}

func (u *DocumentUseCase) quotation(ctx context.Context, jobID string) (documents.QuotationDoc, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return documents.QuotationDoc{}, err
	}
	fields, err := u.machine.DraftQuotation(job)
	if err != nil {
		return documents.QuotationDoc{}, err
	}
	return u.composer.ComposeQuotation(job, job.Inspection, fields)
}

func (u *DocumentUseCase) PreviewPDF(ctx context.Context, jobID string) ([]byte, documents.PreviewDoc, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return nil, documents.PreviewDoc{}, err
	}
	doc, err := u.composer.ComposePreview(job, job.Inspection)
	if err != nil {
		return nil, documents.PreviewDoc{}, err
	}
	b, err := u.renderer.PreviewPDF(doc)
	if err != nil {
		slog.ErrorContext(ctx, "[document][usecase] preview pdf failed", "job_id", job.ID, "err", err)
		return nil, documents.PreviewDoc{}, err
	}
	u.metrics.Document(string(documents.KindPreview), "pdf")
	return b, doc, nil
}

func (u *DocumentUseCase) QuotationPDF(ctx context.Context, jobID string) ([]byte, documents.QuotationDoc, error) {
	doc, err := u.quotation(ctx, jobID)
	if err != nil {
		return nil, documents.QuotationDoc{}, err
	}
	b, err := u.renderer.QuotationPDF(doc)
	if err != nil {
		slog.ErrorContext(ctx, "[document][usecase] quotation pdf failed", "job_id", doc.Job.JobID, "err", err)
		return nil, documents.QuotationDoc{}, err
	}
	u.metrics.Document(string(documents.KindQuotation), "pdf")
	return b, doc, nil
}

// RegisterWorkbook exports jobs in the given status, or all jobs when empty.
func (u *DocumentUseCase) RegisterWorkbook(ctx context.Context, status entities.JobStatus) ([]byte, error) {
	if status != "" {
		if _, err := entities.ParseJobStatus(string(status)); err != nil {
			return nil, err
		}
	}
	jobs, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	b, err := u.renderer.RegisterWorkbook(u.composer.ComposeRegister(jobs))
	if err != nil {
		slog.ErrorContext(ctx, "[document][usecase] register export failed", "status", status, "err", err)
		return nil, err
	}
	u.metrics.Document("register", "xlsx")
	slog.InfoContext(ctx, "[document][usecase] register exported", "status", status, "jobs", len(jobs))
	return b, nil
}
