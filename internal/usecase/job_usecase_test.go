package usecase

import (
	"context"
	"errors"
	"testing"

	"scale_workshop/internal/domain/entities"
	mock_interfaces "scale_workshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intakeInput(number string) CreateJobInput {
	return CreateJobInput{
		CustomerID: "c-1",
		Job: entities.JobInput{
			JobNumber: number,
			Equipment: entities.Equipment{Make: "Avery", Model: "WT-300"},
		},
	}
}

func TestJobUseCase_Create(t *testing.T) {
	customer := entities.Customer{ID: "c-1", Name: "Acme Mills"}

	t.Run("generates first job number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, customers, newMachine(), nil)

		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(customer, nil)
		repo.EXPECT().NextJobSequence(gomock.Any()).Return(int64(1), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, job entities.Job) (entities.Job, error) {
			return job, nil
		})

		got, err := uc.Create(context.Background(), intakeInput(""), operator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.JobNumber != "J-1001" || got.Status != entities.JobStatusIntake || got.CustomerName != "Acme Mills" {
			t.Fatalf("unexpected job: %+v", got)
		}
		if got.TakenBy != "alice" || !got.ReceivedAt.Equal(testNow) {
			t.Fatalf("unexpected intake stamp: %s %s", got.TakenBy, got.ReceivedAt)
		}
	})

	t.Run("explicit number already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, customers, newMachine(), nil)

		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(customer, nil)
		repo.EXPECT().IsNumberTaken(gomock.Any(), entities.NumberKindJob, "J-7", "").Return(true, nil)

		_, err := uc.Create(context.Background(), intakeInput(" J-7 "), operator)
		var ce *entities.ConflictError
		if !errors.As(err, &ce) || ce.Field != "job_number" || ce.Value != "J-7" {
			t.Fatalf("expected job_number conflict, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, customers, newMachine(), nil)

		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, &entities.NotFoundError{Entity: "customer", ID: "c-1"})

		_, err := uc.Create(context.Background(), intakeInput(""), operator)
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, newMachine(), nil)
		_, err := uc.Create(context.Background(), CreateJobInput{}, operator)
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("counter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, customers, newMachine(), nil)

		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(customer, nil)
		repo.EXPECT().NextJobSequence(gomock.Any()).Return(int64(0), errors.New("db"))

		if _, err := uc.Create(context.Background(), intakeInput(""), operator); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestJobUseCase_List(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, newMachine(), nil)
		if _, err := uc.List(context.Background(), "bogus"); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("all jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, newMachine(), nil)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.JobStatus("")).Return([]entities.Job{intakeJob(t)}, nil)

		jobs, err := uc.List(context.Background(), "")
		if err != nil || len(jobs) != 1 {
			t.Fatalf("unexpected result: %d %v", len(jobs), err)
		}
	})
}

func TestJobUseCase_Cancel(t *testing.T) {
	t.Run("cancels with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, newMachine(), nil)

		job := inspectedJob(t)
		repo.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3), gomock.Nil()).DoAndReturn(savedWith)

		got, err := uc.Cancel(context.Background(), job.ID, "customer withdrew", operator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.JobStatusCancelled || got.Cancellation == nil || got.Cancellation.Reason != "customer withdrew" {
			t.Fatalf("unexpected job: %+v", got)
		}
	})

	t.Run("delivered job cannot be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, newMachine(), nil)

		job, err := newMachine().RecordDelivery(invoicedJob(t), entities.DeliveryInput{DeliveryDate: testNow}, operator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil)

		_, err = uc.Cancel(context.Background(), job.ID, "", operator)
		if !errors.Is(err, entities.ErrOutOfOrderTransition) {
			t.Fatalf("expected ErrOutOfOrderTransition, got %v", err)
		}
	})
}
