package lifecycle

import (
	"errors"
	"testing"
	"time"

	"scale_workshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var clock = time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)

func fixedMachine() *Machine {
	return NewMachine(func() time.Time { return clock })
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var operator = entities.Actor{Name: "alice"}

func intakeJob(t *testing.T) entities.Job {
	t.Helper()
	customer := entities.Customer{ID: "c-1", Name: "Acme Mills"}
	job, err := entities.NewJob(entities.JobInput{
		JobNumber: "J-1001",
		Equipment: entities.Equipment{Make: "Avery", Model: "WT-300", SerialNumber: "SN-42"},
	}, customer, operator, clock.Add(-time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return job
}

func inspectionInput() entities.InspectionInput {
	return entities.InspectionInput{
		ProblemsFound: "Load cell drift",
		SpareParts: []entities.SparePart{
			{ID: "p1", Name: "Load cell", Quantity: 2, UnitPrice: d("150.00")},
			{ID: "p2", Name: "Cable", Quantity: 1, UnitPrice: d("45.50")},
		},
	}
}

// stage applies the record that produces the given status.
func stage(m *Machine, job entities.Job, to entities.JobStatus) (entities.Job, error) {
	switch to {
	case entities.JobStatusInspected:
		return m.RecordInspection(job, inspectionInput(), operator)
	case entities.JobStatusQuoted:
		return m.RecordQuotation(job, entities.QuotationFields{QuotationNumber: "QT-J-1001-2025", QuotationDate: clock, Amount: d("380.05")}, operator)
	case entities.JobStatusApproved:
		return m.RecordApproval(job, entities.ApprovalInput{LPONumber: "LPO-7"}, operator)
	case entities.JobStatusInvoiced:
		return m.RecordInvoice(job, entities.InvoiceInput{InvoiceNumber: "INV-1", InvoiceDate: clock, Amount: d("380.05")}, operator)
	case entities.JobStatusDelivered:
		return m.RecordDelivery(job, entities.DeliveryInput{DeliveryDate: clock, ReceivedBy: "Bob"}, operator)
	case entities.JobStatusCancelled:
		return m.Cancel(job, "customer withdrew", operator)
	}
	panic("unknown stage " + to)
}

// jobAt walks a fresh job forward until it reaches status.
func jobAt(t *testing.T, m *Machine, status entities.JobStatus) entities.Job {
	t.Helper()
	job := intakeJob(t)
	if status == entities.JobStatusCancelled {
		out, err := m.Cancel(job, "", operator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return out
	}
	for job.Status != status {
		next, ok := Next(job.Status)
		if !ok {
			t.Fatalf("cannot reach %s", status)
		}
		var err error
		job, err = stage(m, job, next)
		if err != nil {
			t.Fatalf("advance to %s: %v", next, err)
		}
	}
	return job
}

func TestRecordInspection_ComputesTotalCost(t *testing.T) {
	m := fixedMachine()
	job := intakeJob(t)

	got, err := m.RecordInspection(job, inspectionInput(), operator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.JobStatusInspected {
		t.Fatalf("expected inspected, got %s", got.Status)
	}
	if !got.Inspection.TotalCost.Equal(d("345.50")) {
		t.Fatalf("expected total_cost 345.50, got %s", got.Inspection.TotalCost)
	}
	if got.Inspection.InspectedBy != "alice" {
		t.Fatalf("expected inspected_by alice, got %q", got.Inspection.InspectedBy)
	}
	if len(got.History) != 2 || got.History[1].From != entities.JobStatusIntake || got.History[1].To != entities.JobStatusInspected {
		t.Fatalf("unexpected history: %+v", got.History)
	}
	if job.Status != entities.JobStatusIntake || job.Inspection != nil {
		t.Fatalf("input job was mutated: %+v", job)
	}
	if err := CheckConsistency(got); err != nil {
		t.Fatalf("unexpected inconsistency: %v", err)
	}
}

func TestRecordInspection_Guards(t *testing.T) {
	m := fixedMachine()
	job := intakeJob(t)

	_, err := m.RecordInspection(job, entities.InspectionInput{}, operator)
	if !errors.Is(err, entities.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}

	bad := inspectionInput()
	bad.SpareParts[1].Quantity = 0
	if _, err := m.RecordInspection(job, bad, operator); !errors.Is(err, entities.ErrInvalidLineItem) {
		t.Fatalf("expected ErrInvalidLineItem, got %v", err)
	}

	future := inspectionInput()
	future.InspectionDate = clock.AddDate(0, 0, 2)
	if _, err := m.RecordInspection(job, future, operator); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation for future date, got %v", err)
	}

	if _, err := m.RecordInspection(job, inspectionInput(), entities.Actor{}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing actor, got %v", err)
	}
}

func TestRecordInspection_RejectsMalformedParts(t *testing.T) {
	m := fixedMachine()
	job := intakeJob(t)

	cases := []struct {
		name  string
		parts []entities.SparePart
		field string
		index int
	}{
		{
			name: "sub-cent unit price",
			parts: []entities.SparePart{
				{ID: "p1", Name: "Shim", Quantity: 1, UnitPrice: d("0.005")},
				{ID: "p2", Name: "Shim", Quantity: 1, UnitPrice: d("0.005")},
			},
			field: "unit_price",
		},
		{
			name: "blank name",
			parts: []entities.SparePart{
				{ID: "p1", Name: "Load cell", Quantity: 1, UnitPrice: d("150.00")},
				{ID: "p2", Name: "", Quantity: 1, UnitPrice: d("1.00")},
			},
			field: "name",
			index: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := inspectionInput()
			in.SpareParts = tc.parts
			_, err := m.RecordInspection(job, in, operator)
			var lie *entities.LineItemError
			if !errors.As(err, &lie) || lie.Field != tc.field || lie.Index != tc.index {
				t.Fatalf("expected line item error on %s[%d], got %v", tc.field, tc.index, err)
			}
		})
	}
}

func TestRecordInspection_AmendKeepsIdentity(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusInspected)

	in := inspectionInput()
	in.SpareParts = in.SpareParts[:1]
	got, err := m.RecordInspection(job, in, operator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Inspection.ID != job.Inspection.ID {
		t.Fatalf("amend changed inspection id")
	}
	if !got.Inspection.TotalCost.Equal(d("300.00")) {
		t.Fatalf("expected recomputed total 300.00, got %s", got.Inspection.TotalCost)
	}
	if len(got.History) != len(job.History) {
		t.Fatalf("amend must not add history entries")
	}

	// amending with nothing found is a field error, not a lifecycle one
	if _, err := m.RecordInspection(job, entities.InspectionInput{}, operator); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation on amend, got %v", err)
	}
}

func TestRecordQuotation_WithoutInspection(t *testing.T) {
	m := fixedMachine()
	job := intakeJob(t)

	_, err := m.RecordQuotation(job, entities.QuotationFields{QuotationNumber: "QT-J-1001-2025", Amount: d("10")}, operator)
	if !errors.Is(err, entities.ErrOutOfOrderTransition) {
		t.Fatalf("expected ErrOutOfOrderTransition, got %v", err)
	}
	if _, err := m.DraftQuotation(job); !errors.Is(err, entities.ErrOutOfOrderTransition) {
		t.Fatalf("expected ErrOutOfOrderTransition from draft, got %v", err)
	}
}

func TestDraftQuotation(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusInspected)

	draft, err := m.DraftQuotation(job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.QuotationNumber != "QT-J-1001-2025" {
		t.Fatalf("unexpected number %q", draft.QuotationNumber)
	}
	if !draft.Amount.Equal(d("345.50")) {
		t.Fatalf("expected amount seeded from inspection, got %s", draft.Amount)
	}

	quoted := jobAt(t, m, entities.JobStatusQuoted)
	draft, err = m.DraftQuotation(quoted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !draft.Amount.Equal(d("380.05")) {
		t.Fatalf("expected existing quotation amount, got %s", draft.Amount)
	}
}

func TestRecordQuotation_OverrideAndAmend(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusInspected)

	quoted, err := m.RecordQuotation(job, entities.QuotationFields{QuotationNumber: "QT-J-1001-2025", QuotationDate: clock, Amount: d("400.00")}, operator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quoted.Quotation.Amount.Equal(d("400.00")) {
		t.Fatalf("override was not kept: %s", quoted.Quotation.Amount)
	}

	amended, err := m.RecordQuotation(quoted, entities.QuotationFields{QuotationNumber: "QT-J-1001-2025-B", Amount: d("390.00")}, operator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amended.Status != entities.JobStatusQuoted || amended.Quotation.ID != quoted.Quotation.ID {
		t.Fatalf("amend changed status or id: %+v", amended.Quotation)
	}

	_, err = m.RecordQuotation(quoted, entities.QuotationFields{QuotationNumber: " ", Amount: d("1")}, operator)
	if !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation on amend, got %v", err)
	}
	_, err = m.RecordQuotation(job, entities.QuotationFields{QuotationNumber: "", Amount: d("1")}, operator)
	if !errors.Is(err, entities.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed on advance, got %v", err)
	}
}

func TestRecordApproval_RequiresReference(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusQuoted)

	_, err := m.RecordApproval(job, entities.ApprovalInput{Notes: "ok by phone"}, operator)
	var pe *entities.PreconditionError
	if !errors.As(err, &pe) || pe.Missing != "lpo_number or reference_number" {
		t.Fatalf("expected precondition naming the reference, got %v", err)
	}

	got, err := m.RecordApproval(job, entities.ApprovalInput{ReferenceNumber: "REF-9"}, operator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.JobStatusApproved || got.Approval.ApprovedAt != clock {
		t.Fatalf("unexpected approval: %+v", got.Approval)
	}
}

func TestRecordInvoice_Guards(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusApproved)

	if _, err := m.RecordInvoice(job, entities.InvoiceInput{InvoiceNumber: "INV-1", Amount: decimal.Zero}, operator); !errors.Is(err, entities.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed for zero amount, got %v", err)
	}
	if _, err := m.RecordInvoice(job, entities.InvoiceInput{Amount: d("10")}, operator); !errors.Is(err, entities.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed for missing number, got %v", err)
	}
}

func TestRecordInvoice_AmendKeepsPayments(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusInvoiced)
	job, err := m.AddPayment(job, entities.InvoicePayment{ID: "pay-1", Amount: d("100"), Status: entities.PaymentStatusApproved})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.RecordInvoice(job, entities.InvoiceInput{InvoiceNumber: "INV-1", Amount: d("400")}, operator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Invoice.Payments) != 1 || !got.Invoice.Outstanding().Equal(d("300")) {
		t.Fatalf("payments not kept: %+v", got.Invoice)
	}
}

func TestRecordDelivery_DateNotInFuture(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusInvoiced)

	_, err := m.RecordDelivery(job, entities.DeliveryInput{DeliveryDate: clock.AddDate(0, 0, 1)}, operator)
	if !errors.Is(err, entities.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}

	lateToday := time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC)
	got, err := m.RecordDelivery(job, entities.DeliveryInput{DeliveryDate: lateToday}, operator)
	if err != nil {
		t.Fatalf("delivery later today should pass: %v", err)
	}
	if got.Status != entities.JobStatusDelivered {
		t.Fatalf("expected delivered, got %s", got.Status)
	}
	if err := CheckConsistency(got); err != nil {
		t.Fatalf("unexpected inconsistency: %v", err)
	}
}

func TestNonAdjacentStageRecordsFail(t *testing.T) {
	m := fixedMachine()
	targets := []entities.JobStatus{
		entities.JobStatusInspected,
		entities.JobStatusQuoted,
		entities.JobStatusApproved,
		entities.JobStatusInvoiced,
		entities.JobStatusDelivered,
	}

	for _, from := range forward {
		for _, to := range targets {
			next, _ := Next(from)
			if to == next || (to == from && !IsTerminal(from)) {
				continue
			}
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				job := jobAt(t, m, from)
				_, err := stage(m, job, to)
				if !errors.Is(err, entities.ErrOutOfOrderTransition) {
					t.Fatalf("expected ErrOutOfOrderTransition, got %v", err)
				}
			})
		}
	}
}

func TestCancelledIsTerminal(t *testing.T) {
	m := fixedMachine()

	for _, from := range []entities.JobStatus{entities.JobStatusIntake, entities.JobStatusQuoted, entities.JobStatusInvoiced} {
		job := jobAt(t, m, from)
		cancelled, err := m.Cancel(job, "customer withdrew", operator)
		if err != nil {
			t.Fatalf("cancel from %s: %v", from, err)
		}
		if cancelled.Cancellation == nil || cancelled.Cancellation.Reason != "customer withdrew" {
			t.Fatalf("missing cancellation record: %+v", cancelled)
		}
		if err := CheckConsistency(cancelled); err != nil {
			t.Fatalf("unexpected inconsistency: %v", err)
		}

		for _, to := range []entities.JobStatus{
			entities.JobStatusInspected, entities.JobStatusQuoted, entities.JobStatusApproved,
			entities.JobStatusInvoiced, entities.JobStatusDelivered, entities.JobStatusCancelled,
		} {
			if _, err := stage(m, cancelled, to); !errors.Is(err, entities.ErrOutOfOrderTransition) {
				t.Fatalf("cancelled (from %s) -> %s: expected ErrOutOfOrderTransition, got %v", from, to, err)
			}
		}
	}

	delivered := jobAt(t, m, entities.JobStatusDelivered)
	if _, err := m.Cancel(delivered, "", operator); !errors.Is(err, entities.ErrOutOfOrderTransition) {
		t.Fatalf("expected delivered to be terminal, got %v", err)
	}
}

func TestAddPayment(t *testing.T) {
	m := fixedMachine()

	approved := jobAt(t, m, entities.JobStatusApproved)
	if _, err := m.AddPayment(approved, entities.InvoicePayment{Amount: d("1")}); !errors.Is(err, entities.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed without invoice, got %v", err)
	}

	invoiced := jobAt(t, m, entities.JobStatusInvoiced)
	if _, err := m.AddPayment(invoiced, entities.InvoicePayment{Amount: decimal.Zero}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero payment, got %v", err)
	}
	got, err := m.AddPayment(invoiced, entities.InvoicePayment{ID: "p", Amount: d("380.05"), Status: entities.PaymentStatusApproved})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Invoice.Outstanding().IsZero() || len(invoiced.Invoice.Payments) != 0 {
		t.Fatalf("unexpected invoice state: %+v / %+v", got.Invoice, invoiced.Invoice)
	}
}

func TestAddPayment_RejectsDuplicateID(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusInvoiced)
	job, err := m.AddPayment(job, entities.InvoicePayment{ID: "pay-1", Amount: d("10"), Status: entities.PaymentStatusPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.AddPayment(job, entities.InvoicePayment{ID: "pay-1", Amount: d("10")}); !errors.Is(err, entities.ErrUniquenessConflict) {
		t.Fatalf("expected ErrUniquenessConflict, got %v", err)
	}
}

func TestSettlePayment(t *testing.T) {
	m := fixedMachine()
	job := jobAt(t, m, entities.JobStatusInvoiced)
	job, err := m.AddPayment(job, entities.InvoicePayment{ID: "pay-1", Amount: d("100"), Status: entities.PaymentStatusPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("approves a pending payment", func(t *testing.T) {
		got, err := m.SettlePayment(job, "pay-1", entities.PaymentStatusApproved, []byte(`{"status":"approved"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Invoice.PaidAmount().Equal(d("100")) || string(got.Invoice.Payments[0].ProviderPayloadRaw) != `{"status":"approved"}` {
			t.Fatalf("unexpected invoice: %+v", got.Invoice)
		}
		if job.Invoice.Payments[0].Status != entities.PaymentStatusPending {
			t.Fatalf("input job must not change")
		}
		if _, err := m.SettlePayment(got, "pay-1", entities.PaymentStatusDenied, nil); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("settled payment must stay settled, got %v", err)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		if _, err := m.SettlePayment(job, "nope", entities.PaymentStatusDenied, nil); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("pending is not a settlement", func(t *testing.T) {
		if _, err := m.SettlePayment(job, "pay-1", entities.PaymentStatusPending, nil); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
