package request

import "scale_workshop/internal/domain/entities"

type ContactRequest struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (r ContactRequest) ToContact() (entities.Contact, error) {
	return entities.NewContact(r.Phone, r.Email, r.Address)
}

type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required"`
	ContactRequest
}
