package entities

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact holds the editable part of a customer.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Customer owns one or more jobs.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Name is fixed once created; only the contact details may change afterwards.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   Contact   `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContact trims and validates contact details. At least a phone or an email is required.
func NewContact(phone, email, address string) (Contact, error) {
	c := Contact{
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
	}
	if c.Phone == "" && c.Email == "" {
		return Contact{}, NewValidationError("contact", "phone or email is required")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return Contact{}, NewValidationError("email", "is not a valid address")
		}
	}
	return c, nil
}

func NewCustomer(name string, contact Contact, now time.Time) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, NewValidationError("name", "is required")
	}
	if contact.Phone == "" && contact.Email == "" {
		return Customer{}, NewValidationError("contact", "phone or email is required")
	}
	return Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Contact:   contact,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
