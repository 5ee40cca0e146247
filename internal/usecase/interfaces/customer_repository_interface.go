package interfaces

import (
	"context"
	"time"

	"scale_workshop/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// GetByID and UpdateContact return *entities.NotFoundError when the id is absent.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	UpdateContact(ctx context.Context, id string, contact entities.Contact, updatedAt time.Time) (entities.Customer, error)
}
