package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/domain/lifecycle"
	"scale_workshop/internal/infrastructure/metrics"
	"scale_workshop/internal/usecase/interfaces"
)

// jobNumberBase offsets the counter so the first generated number is J-1001.
const jobNumberBase = 1000

// CreateJobInput is the intake of a job for an existing customer.
type CreateJobInput struct {
	CustomerID string
	Job        entities.JobInput
}

// IJobUseCase opens, looks up, lists and cancels jobs.
type IJobUseCase interface {
	Create(ctx context.Context, in CreateJobInput, actor entities.Actor) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	Cancel(ctx context.Context, id, reason string, actor entities.Actor) (entities.Job, error)
}

type JobUseCase struct {
	repo      interfaces.IJobRepository
	customers interfaces.ICustomerRepository
	machine   *lifecycle.Machine
	metrics   *metrics.Metrics
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, customers interfaces.ICustomerRepository, machine *lifecycle.Machine, m *metrics.Metrics) *JobUseCase {
	return &JobUseCase{repo: repo, customers: customers, machine: machine, metrics: m}
}

func (u *JobUseCase) Create(ctx context.Context, in CreateJobInput, actor entities.Actor) (entities.Job, error) {
	customerID, err := requireID("customer_id", in.CustomerID)
	if err != nil {
		return entities.Job{}, err
	}
	slog.InfoContext(ctx, "[job][usecase] create start", "customer_id", customerID, "job_number", in.Job.JobNumber)

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		slog.WarnContext(ctx, "[job][usecase] customer lookup failed", "customer_id", customerID, "err", err)
		return entities.Job{}, err
	}

	in.Job.JobNumber = strings.TrimSpace(in.Job.JobNumber)
	if in.Job.JobNumber == "" {
		seq, err := u.repo.NextJobSequence(ctx)
		if err != nil {
			return entities.Job{}, fmt.Errorf("next job number: %w", err)
		}
		in.Job.JobNumber = fmt.Sprintf("J-%d", jobNumberBase+seq)
	} else {
		taken, err := u.repo.IsNumberTaken(ctx, entities.NumberKindJob, in.Job.JobNumber, "")
		if err != nil {
			return entities.Job{}, err
		}
		if taken {
			u.metrics.Conflict()
			return entities.Job{}, &entities.ConflictError{Field: entities.NumberKindJob.Field(), Value: in.Job.JobNumber}
		}
	}

	job, err := entities.NewJob(in.Job, customer, actor, now())
	if err != nil {
		return entities.Job{}, err
	}
	created, err := u.repo.Create(ctx, job)
	if err != nil {
		slog.ErrorContext(ctx, "[job][usecase] create failed", "job_number", job.JobNumber, "err", err)
		return entities.Job{}, err
	}
	u.metrics.Transition("intake", "advance")
	slog.InfoContext(ctx, "[job][usecase] create success", "job_id", created.ID, "job_number", created.JobNumber)
	return created, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id, err := requireID("job_id", id)
	if err != nil {
		return entities.Job{}, err
	}
	return u.repo.GetByID(ctx, id)
}

// List returns jobs in the given status, or every job when status is empty.
func (u *JobUseCase) List(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	if status != "" {
		if _, err := entities.ParseJobStatus(string(status)); err != nil {
			return nil, err
		}
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *JobUseCase) Cancel(ctx context.Context, id, reason string, actor entities.Actor) (entities.Job, error) {
	id, err := requireID("job_id", id)
	if err != nil {
		return entities.Job{}, err
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	out, err := u.machine.Cancel(job, reason, actor)
	if err != nil {
		u.metrics.TransitionFailed("cancel", errorClass(err))
		slog.WarnContext(ctx, "[job][usecase] cancel rejected", "job_id", id, "status", job.Status, "err", err)
		return entities.Job{}, err
	}
	saved, err := u.repo.Save(ctx, out, job.Version, nil)
	if err != nil {
		if errorClass(err) == "conflict" {
			u.metrics.Conflict()
		}
		return entities.Job{}, err
	}
	u.metrics.Transition("cancel", "advance")
	slog.InfoContext(ctx, "[job][usecase] cancelled", "job_id", id, "from", job.Status, "by", actor.Name)
	return saved, nil
}
