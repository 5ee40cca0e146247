package entities

import (
	"strings"
	"time"
)

type Delivery struct {
	ID           string    `json:"id"`
	JobID        string    `json:"job_id"`
	DeliveryDate time.Time `json:"delivery_date"`
	DeliveredBy  string    `json:"delivered_by"`
	ReceivedBy   string    `json:"received_by,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type DeliveryInput struct {
	DeliveryDate time.Time
	ReceivedBy   string
	Notes        string
}

func NewDeliveryInput(date time.Time, receivedBy, notes string) (DeliveryInput, error) {
	if date.IsZero() {
		return DeliveryInput{}, NewValidationError("delivery_date", "is required")
	}
	return DeliveryInput{
		DeliveryDate: date,
		ReceivedBy:   strings.TrimSpace(receivedBy),
		Notes:        strings.TrimSpace(notes),
	}, nil
}
