package usecase

import (
	"context"
	"log/slog"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase/interfaces"
)

// ICustomerUseCase manages the customers jobs are opened for.
type ICustomerUseCase interface {
	Create(ctx context.Context, name string, contact entities.Contact) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	UpdateContact(ctx context.Context, id string, contact entities.Contact) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, name string, contact entities.Contact) (entities.Customer, error) {
	c, err := entities.NewCustomer(name, contact, now())
	if err != nil {
		return entities.Customer{}, err
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		slog.ErrorContext(ctx, "[customer][usecase] create failed", "customer_id", c.ID, "err", err)
		return entities.Customer{}, err
	}
	slog.InfoContext(ctx, "[customer][usecase] created", "customer_id", created.ID)
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id, err := requireID("customer_id", id)
	if err != nil {
		return entities.Customer{}, err
	}
	return u.repo.GetByID(ctx, id)
}

// UpdateContact is the only edit allowed on a customer; the name stays as created.
func (u *CustomerUseCase) UpdateContact(ctx context.Context, id string, contact entities.Contact) (entities.Customer, error) {
	id, err := requireID("customer_id", id)
	if err != nil {
		return entities.Customer{}, err
	}
	if contact.Phone == "" && contact.Email == "" {
		return entities.Customer{}, entities.NewValidationError("contact", "phone or email is required")
	}
	updated, err := u.repo.UpdateContact(ctx, id, contact, now())
	if err != nil {
		slog.ErrorContext(ctx, "[customer][usecase] update contact failed", "customer_id", id, "err", err)
		return entities.Customer{}, err
	}
	return updated, nil
}
