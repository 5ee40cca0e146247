package usecase

import (
	"context"
	"errors"
	"testing"

	"scale_workshop/internal/domain/entities"
	mock_interfaces "scale_workshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			return c, nil
		})

		got, err := uc.Create(context.Background(), " Acme Mills ", entities.Contact{Phone: "555-0100"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Name != "Acme Mills" || !got.CreatedAt.Equal(testNow) {
			t.Fatalf("unexpected customer: %+v", got)
		}
	})

	t.Run("no contact", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		if _, err := uc.Create(context.Background(), "Acme", entities.Contact{}); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), "Acme", entities.Contact{Email: "ops@acme.test"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCustomerUseCase_UpdateContact(t *testing.T) {
	t.Run("stamps update time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		contact := entities.Contact{Email: "ops@acme.test"}
		repo.EXPECT().UpdateContact(gomock.Any(), "c-1", contact, testNow).Return(entities.Customer{ID: "c-1", Contact: contact}, nil)

		got, err := uc.UpdateContact(context.Background(), " c-1 ", contact)
		if err != nil || got.Contact.Email != "ops@acme.test" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().UpdateContact(gomock.Any(), "c-9", gomock.Any(), gomock.Any()).Return(entities.Customer{}, &entities.NotFoundError{Entity: "customer", ID: "c-9"})

		_, err := uc.UpdateContact(context.Background(), "c-9", entities.Contact{Phone: "1"})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty contact", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		if _, err := uc.UpdateContact(context.Background(), "c-1", entities.Contact{}); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
