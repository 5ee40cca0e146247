package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle stage of a job.
type JobStatus string

const (
	JobStatusIntake    JobStatus = "intake"
	JobStatusInspected JobStatus = "inspected"
	JobStatusQuoted    JobStatus = "quoted"
	JobStatusApproved  JobStatus = "approved"
	JobStatusInvoiced  JobStatus = "invoiced"
	JobStatusDelivered JobStatus = "delivered"
	JobStatusCancelled JobStatus = "cancelled"
)

var jobStatuses = []JobStatus{
	JobStatusIntake,
	JobStatusInspected,
	JobStatusQuoted,
	JobStatusApproved,
	JobStatusInvoiced,
	JobStatusDelivered,
	JobStatusCancelled,
}

// ParseJobStatus accepts the lower-case status names used on the wire.
func ParseJobStatus(raw string) (JobStatus, error) {
	s := JobStatus(strings.ToLower(strings.TrimSpace(raw)))
	for _, st := range jobStatuses {
		if st == s {
			return st, nil
		}
	}
	return "", NewValidationError("status", "unknown job status")
}

// Actor is the operator performing an action. It is passed explicitly into
// every operation that stamps taken_by, inspected_by and similar fields.
type Actor struct {
	Name string
}

func NewActor(name string) (Actor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Actor{}, NewValidationError("operator", "is required")
	}
	return Actor{Name: name}, nil
}

type Equipment struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

func NewEquipment(manufacturer, model, serial string) (Equipment, error) {
	e := Equipment{
		Make:         strings.TrimSpace(manufacturer),
		Model:        strings.TrimSpace(model),
		SerialNumber: strings.TrimSpace(serial),
	}
	if e.Make == "" {
		return Equipment{}, NewValidationError("equipment.make", "is required")
	}
	if e.Model == "" {
		return Equipment{}, NewValidationError("equipment.model", "is required")
	}
	return e, nil
}

// StatusChange is one entry of the job's append-only transition log.
type StatusChange struct {
	From JobStatus `json:"from"`
	To   JobStatus `json:"to"`
	At   time.Time `json:"at"`
	By   string    `json:"by"`
	Note string    `json:"note,omitempty"`
}

// Cancellation is the evidence record of the cancelled state.
type Cancellation struct {
	At     time.Time `json:"at"`
	By     string    `json:"by"`
	Reason string    `json:"reason,omitempty"`
}

// Job is the aggregate root of the repair workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//
// Stage records are embedded in the job item, so they are written and
// destroyed together with the job. Version is the optimistic-concurrency
// token checked on every save.
type Job struct {
	ID              string         `json:"id"`
	JobNumber       string         `json:"job_number"`
	CustomerID      string         `json:"customer_id"`
	CustomerName    string         `json:"customer_name"`
	Equipment       Equipment      `json:"equipment"`
	ReportedProblem string         `json:"reported_problem,omitempty"`
	Status          JobStatus      `json:"status"`
	TakenBy         string         `json:"taken_by"`
	ReceivedAt      time.Time      `json:"received_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Version         int64          `json:"version"`
	Inspection      *Inspection    `json:"inspection,omitempty"`
	Quotation       *Quotation     `json:"quotation,omitempty"`
	Approval        *Approval      `json:"approval,omitempty"`
	Invoice         *Invoice       `json:"invoice,omitempty"`
	Delivery        *Delivery      `json:"delivery,omitempty"`
	Cancellation    *Cancellation  `json:"cancellation,omitempty"`
	History         []StatusChange `json:"history,omitempty"`
}

// JobInput carries the intake form.
type JobInput struct {
	JobNumber       string
	Equipment       Equipment
	ReportedProblem string
	ReceivedAt      time.Time
}

// NewJob opens a job at intake for the given customer.
func NewJob(in JobInput, customer Customer, actor Actor, now time.Time) (Job, error) {
	number := strings.TrimSpace(in.JobNumber)
	if number == "" {
		return Job{}, NewValidationError("job_number", "is required")
	}
	if strings.ContainsAny(number, " \t\n") {
		return Job{}, NewValidationError("job_number", "must not contain whitespace")
	}
	if customer.ID == "" {
		return Job{}, NewValidationError("customer_id", "is required")
	}
	if actor.Name == "" {
		return Job{}, NewValidationError("taken_by", "is required")
	}
	if in.Equipment.Make == "" || in.Equipment.Model == "" {
		return Job{}, NewValidationError("equipment", "make and model are required")
	}
	received := in.ReceivedAt
	if received.IsZero() {
		received = now
	}
	if received.After(now) {
		return Job{}, NewValidationError("received_at", "must not be in the future")
	}

	return Job{
		ID:              uuid.NewString(),
		JobNumber:       number,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		Equipment:       in.Equipment,
		ReportedProblem: strings.TrimSpace(in.ReportedProblem),
		Status:          JobStatusIntake,
		TakenBy:         actor.Name,
		ReceivedAt:      received,
		CreatedAt:       now,
		UpdatedAt:       now,
		History: []StatusChange{
			{To: JobStatusIntake, At: now, By: actor.Name},
		},
	}, nil
}

// Clone returns a deep copy so that callers can derive a new job value
// without aliasing the records or slices of the original.
func (j Job) Clone() Job {
	out := j
	if j.Inspection != nil {
		in := j.Inspection.clone()
		out.Inspection = &in
	}
	if j.Quotation != nil {
		q := *j.Quotation
		out.Quotation = &q
	}
	if j.Approval != nil {
		a := *j.Approval
		out.Approval = &a
	}
	if j.Invoice != nil {
		inv := j.Invoice.clone()
		out.Invoice = &inv
	}
	if j.Delivery != nil {
		d := *j.Delivery
		out.Delivery = &d
	}
	if j.Cancellation != nil {
		c := *j.Cancellation
		out.Cancellation = &c
	}
	out.History = append([]StatusChange(nil), j.History...)
	return out
}
