package request

import (
	"time"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase"
)

type EquipmentRequest struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serial_number"`
}

// CreateJobRequest opens a job. JobNumber is generated when omitted.
type CreateJobRequest struct {
	CustomerID      string           `json:"customer_id" binding:"required"`
	JobNumber       string           `json:"job_number"`
	Equipment       EquipmentRequest `json:"equipment" binding:"required"`
	ReportedProblem string           `json:"reported_problem"`
	ReceivedAt      *time.Time       `json:"received_at"`
}

func (r CreateJobRequest) ToInput() (usecase.CreateJobInput, error) {
	equipment, err := entities.NewEquipment(r.Equipment.Make, r.Equipment.Model, r.Equipment.SerialNumber)
	if err != nil {
		return usecase.CreateJobInput{}, err
	}
	in := entities.JobInput{
		JobNumber:       r.JobNumber,
		Equipment:       equipment,
		ReportedProblem: r.ReportedProblem,
	}
	if r.ReceivedAt != nil {
		in.ReceivedAt = r.ReceivedAt.UTC()
	}
	return usecase.CreateJobInput{CustomerID: r.CustomerID, Job: in}, nil
}

type CancelJobRequest struct {
	Reason string `json:"reason"`
}
