// Package lifecycle is the job state machine: which stage a job is in, what
// must exist before it may advance, and how stage records are attached.
//
// Every function is pure. Callers persisting the result are responsible for
// making the check-then-write atomic (see IJobRepository.Save).
package lifecycle

import (
	"fmt"

	"scale_workshop/internal/domain/entities"
)

var forward = []entities.JobStatus{
	entities.JobStatusIntake,
	entities.JobStatusInspected,
	entities.JobStatusQuoted,
	entities.JobStatusApproved,
	entities.JobStatusInvoiced,
	entities.JobStatusDelivered,
}

// rank is the position on the forward path; -1 for cancelled or unknown.
func rank(s entities.JobStatus) int {
	for i, st := range forward {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no transition may leave s.
func IsTerminal(s entities.JobStatus) bool {
	return s == entities.JobStatusDelivered || s == entities.JobStatusCancelled
}

// Next returns the status that follows s on the forward path.
func Next(s entities.JobStatus) (entities.JobStatus, bool) {
	r := rank(s)
	if r < 0 || r+1 >= len(forward) {
		return "", false
	}
	return forward[r+1], true
}

// CanTransition is the pure guard on status alone: forward by exactly one
// stage, or to cancelled from any non-terminal state.
func CanTransition(from, to entities.JobStatus) error {
	if IsTerminal(from) || rank(from) < 0 {
		return &entities.TransitionError{From: from, To: to}
	}
	if to == entities.JobStatusCancelled {
		return nil
	}
	if next, ok := Next(from); ok && next == to {
		return nil
	}
	return &entities.TransitionError{From: from, To: to}
}

// stageRecords lists which record is evidence of each forward status.
var stageRecords = []struct {
	status  entities.JobStatus
	name    string
	present func(entities.Job) bool
}{
	{entities.JobStatusInspected, "inspection", func(j entities.Job) bool { return j.Inspection != nil }},
	{entities.JobStatusQuoted, "quotation", func(j entities.Job) bool { return j.Quotation != nil }},
	{entities.JobStatusApproved, "approval", func(j entities.Job) bool { return j.Approval != nil }},
	{entities.JobStatusInvoiced, "invoice", func(j entities.Job) bool { return j.Invoice != nil }},
	{entities.JobStatusDelivered, "delivery", func(j entities.Job) bool { return j.Delivery != nil }},
}

// CheckConsistency verifies that the job status matches the most advanced
// stage record present, that records form an unbroken prefix, and that the
// inspection total equals its line totals.
func CheckConsistency(job entities.Job) error {
	highest := 0
	for i, sr := range stageRecords {
		if !sr.present(job) {
			continue
		}
		if i > 0 && !stageRecords[i-1].present(job) {
			return entities.NewValidationError("status", fmt.Sprintf("%s present without %s", sr.name, stageRecords[i-1].name))
		}
		highest = rank(sr.status)
	}

	switch job.Status {
	case entities.JobStatusCancelled:
		if job.Cancellation == nil {
			return entities.NewValidationError("status", "cancelled without cancellation record")
		}
	default:
		r := rank(job.Status)
		if r < 0 {
			return entities.NewValidationError("status", fmt.Sprintf("unknown status %q", job.Status))
		}
		if r != highest {
			return entities.NewValidationError("status", fmt.Sprintf("status %s does not match stage records", job.Status))
		}
	}

	if job.Inspection != nil {
		subtotal, err := inspectionTotal(job.Inspection.SpareParts)
		if err != nil {
			return err
		}
		if !subtotal.Equal(job.Inspection.TotalCost) {
			return entities.NewValidationError("inspection.total_cost", "does not equal the sum of line totals")
		}
	}
	return nil
}
