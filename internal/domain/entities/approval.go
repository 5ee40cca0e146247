package entities

import (
	"strings"
	"time"
)

// Approval is the customer's go-ahead, evidenced by an LPO or a reference number.
type Approval struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	LPONumber       string    `json:"lpo_number,omitempty"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	ApprovedBy      string    `json:"approved_by"`
	ApprovedAt      time.Time `json:"approved_at"`
	Notes           string    `json:"notes,omitempty"`
}

type ApprovalInput struct {
	LPONumber       string
	ReferenceNumber string
	ApprovedAt      time.Time
	Notes           string
}

func NewApprovalInput(lpo, reference string, approvedAt time.Time, notes string) ApprovalInput {
	return ApprovalInput{
		LPONumber:       strings.TrimSpace(lpo),
		ReferenceNumber: strings.TrimSpace(reference),
		ApprovedAt:      approvedAt,
		Notes:           strings.TrimSpace(notes),
	}
}
