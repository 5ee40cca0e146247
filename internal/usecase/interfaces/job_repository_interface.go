package interfaces

import (
	"context"

	"scale_workshop/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for the Job aggregate.
//
// Save is the atomic check-then-write of the lifecycle: the job is written
// only if its stored version still equals expectedVersion, and every claim is
// reserved for the job in the same transaction. Either failure yields
// *entities.ConflictError. The returned job carries the new version.
type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	NextJobSequence(ctx context.Context) (int64, error)
	IsNumberTaken(ctx context.Context, kind entities.NumberKind, number, jobID string) (bool, error)
	Save(ctx context.Context, job entities.Job, expectedVersion int64, claims []entities.NumberClaim) (entities.Job, error)
}
