package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "two decimals", raw: "150.00", want: "150"},
		{name: "trims spaces", raw: " 45.5 ", want: "45.5"},
		{name: "trailing zeros beyond scale", raw: "1.2000", want: "1.2"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "too precise", raw: "10.005", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount("amount", tc.raw)
			if tc.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != "amount" {
					t.Fatalf("expected ValidationError on amount, got %v", err)
				}
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNewSparePart(t *testing.T) {
	price := decimal.RequireFromString("150.00")

	t.Run("valid part gets an id", func(t *testing.T) {
		p, err := NewSparePart("", " Load cell ", "", 2, price)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" || p.Name != "Load cell" || p.Quantity != 2 {
			t.Fatalf("unexpected part: %+v", p)
		}
	})

	t.Run("keeps given id", func(t *testing.T) {
		p, err := NewSparePart("sp-1", "Cable", "", 1, price)
		if err != nil || p.ID != "sp-1" {
			t.Fatalf("expected sp-1, got %+v err=%v", p, err)
		}
	})

	invalid := []struct {
		name  string
		part  string
		qty   int
		price decimal.Decimal
		field string
	}{
		{name: "missing name", part: "", qty: 1, price: price, field: "spare_parts.name"},
		{name: "zero quantity", part: "Cable", qty: 0, price: price, field: "spare_parts.quantity"},
		{name: "negative quantity", part: "Cable", qty: -3, price: price, field: "spare_parts.quantity"},
		{name: "negative price", part: "Cable", qty: 1, price: decimal.NewFromInt(-1), field: "spare_parts.unit_price"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSparePart("", tc.part, "", tc.qty, tc.price)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected ValidationError on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestNewJob(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := Customer{ID: "cus-1", Name: "Acme Foods"}
	actor := Actor{Name: "alice"}
	equipment := Equipment{Make: "Avery", Model: "B200", SerialNumber: "SN-9"}

	t.Run("opens at intake", func(t *testing.T) {
		job, err := NewJob(JobInput{JobNumber: " J-1001 ", Equipment: equipment}, customer, actor, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != JobStatusIntake || job.JobNumber != "J-1001" || job.TakenBy != "alice" {
			t.Fatalf("unexpected job: %+v", job)
		}
		if job.CustomerName != "Acme Foods" || !job.ReceivedAt.Equal(now) {
			t.Fatalf("unexpected snapshot fields: %+v", job)
		}
		if len(job.History) != 1 || job.History[0].To != JobStatusIntake {
			t.Fatalf("expected intake history entry, got %+v", job.History)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		cases := []struct {
			name     string
			in       JobInput
			customer Customer
			actor    Actor
			field    string
		}{
			{name: "missing number", in: JobInput{Equipment: equipment}, customer: customer, actor: actor, field: "job_number"},
			{name: "whitespace in number", in: JobInput{JobNumber: "J 1", Equipment: equipment}, customer: customer, actor: actor, field: "job_number"},
			{name: "missing customer", in: JobInput{JobNumber: "J-1", Equipment: equipment}, actor: actor, field: "customer_id"},
			{name: "missing operator", in: JobInput{JobNumber: "J-1", Equipment: equipment}, customer: customer, field: "taken_by"},
			{name: "missing equipment", in: JobInput{JobNumber: "J-1"}, customer: customer, actor: actor, field: "equipment"},
			{name: "future receipt", in: JobInput{JobNumber: "J-1", Equipment: equipment, ReceivedAt: now.Add(time.Hour)}, customer: customer, actor: actor, field: "received_at"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewJob(tc.in, tc.customer, tc.actor, now)
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != tc.field {
					t.Fatalf("expected ValidationError on %s, got %v", tc.field, err)
				}
			})
		}
	})
}

func TestJobClone_DoesNotAlias(t *testing.T) {
	job := Job{
		ID:         "job-1",
		Inspection: &Inspection{SpareParts: []SparePart{{Name: "Cable", Quantity: 1}}},
		Invoice:    &Invoice{Payments: []InvoicePayment{{ID: "p-1"}}},
		History:    []StatusChange{{To: JobStatusIntake}},
	}

	cp := job.Clone()
	cp.Inspection.SpareParts[0].Name = "changed"
	cp.Invoice.Payments[0].ID = "changed"
	cp.History[0].By = "changed"

	if job.Inspection.SpareParts[0].Name != "Cable" {
		t.Fatalf("spare parts aliased")
	}
	if job.Invoice.Payments[0].ID != "p-1" {
		t.Fatalf("payments aliased")
	}
	if job.History[0].By != "" {
		t.Fatalf("history aliased")
	}
}

func TestNewContactAndCustomer(t *testing.T) {
	now := time.Now().UTC()

	if _, err := NewContact("", "", "street"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := NewContact("", "not-an-email", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for email, got %v", err)
	}

	contact, err := NewContact(" 555-0100 ", "ops@acme.test", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := NewCustomer(" Acme ", contact, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" || c.Name != "Acme" || c.Contact.Phone != "555-0100" {
		t.Fatalf("unexpected customer: %+v", c)
	}
	if _, err := NewCustomer(" ", contact, now); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for name, got %v", err)
	}
}

func TestInvoiceOutstanding(t *testing.T) {
	inv := Invoice{
		Amount: decimal.RequireFromString("380.05"),
		Payments: []InvoicePayment{
			{Amount: decimal.RequireFromString("100.00"), Status: PaymentStatusApproved},
			{Amount: decimal.RequireFromString("50.00"), Status: PaymentStatusDenied},
		},
	}
	if got := inv.Outstanding(); !got.Equal(decimal.RequireFromString("280.05")) {
		t.Fatalf("expected 280.05, got %s", got)
	}

	inv.Payments = append(inv.Payments, InvoicePayment{Amount: decimal.RequireFromString("500"), Status: PaymentStatusApproved})
	if got := inv.Outstanding(); !got.IsZero() {
		t.Fatalf("expected zero outstanding, got %s", got)
	}
}

func TestDefaultQuotationNumber(t *testing.T) {
	got := DefaultQuotationNumber("J-1001", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	if got != "QT-J-1001-2025" {
		t.Fatalf("unexpected number: %s", got)
	}
}

func TestParseJobStatus(t *testing.T) {
	st, err := ParseJobStatus(" Quoted ")
	if err != nil || st != JobStatusQuoted {
		t.Fatalf("expected quoted, got %q err=%v", st, err)
	}
	if _, err := ParseJobStatus("archived"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
