package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"scale_workshop/internal/domain/entities"
)

func TestCreateJobRequest_ToInput(t *testing.T) {
	t.Run("missing model", func(t *testing.T) {
		r := CreateJobRequest{CustomerID: "c-1", Equipment: EquipmentRequest{Make: "Avery", Model: " "}}
		if _, err := r.ToInput(); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("received_at normalized to utc", func(t *testing.T) {
		at := time.Date(2025, 1, 31, 12, 0, 0, 0, time.FixedZone("EAT", 3*3600))
		r := CreateJobRequest{CustomerID: "c-1", Equipment: EquipmentRequest{Make: "Avery", Model: "WT-300"}, ReceivedAt: &at}
		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Job.ReceivedAt.Location() != time.UTC || !in.Job.ReceivedAt.Equal(at) {
			t.Fatalf("unexpected received_at: %s", in.Job.ReceivedAt)
		}
	})
}

func TestInspectionRequest_ToInput(t *testing.T) {
	var r InspectionRequest
	body := `{"problems_found":"drift","spare_parts":[{"name":" Load cell ","quantity":2,"unit_price":"150.00"},{"id":"p2","name":"Cable","quantity":1,"unit_price":45.5}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.SpareParts) != 2 || in.SpareParts[0].ID == "" || in.SpareParts[0].Name != "Load cell" || in.SpareParts[1].ID != "p2" {
		t.Fatalf("unexpected parts: %+v", in.SpareParts)
	}
	if in.SpareParts[0].UnitPrice.StringFixed(2) != "150.00" || in.SpareParts[1].UnitPrice.StringFixed(2) != "45.50" {
		t.Fatalf("unexpected prices: %+v", in.SpareParts)
	}
	if !in.InspectionDate.IsZero() {
		t.Fatalf("missing date should stay zero")
	}
}

func TestInspectionRequest_ToInputRejectsParts(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
		index int
	}{
		{"sub-cent price", `{"spare_parts":[{"name":"Shim","quantity":1,"unit_price":"0.005"}]}`, "unit_price", 0},
		{"blank name", `{"spare_parts":[{"name":"Cable","quantity":1,"unit_price":"1"},{"name":" ","quantity":1,"unit_price":"1"}]}`, "name", 1},
		{"zero quantity", `{"spare_parts":[{"name":"Cable","quantity":0,"unit_price":"1"}]}`, "quantity", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r InspectionRequest
			if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			_, err := r.ToInput()
			var lie *entities.LineItemError
			if !errors.As(err, &lie) || lie.Field != tc.field || lie.Index != tc.index {
				t.Fatalf("expected line item error on %s[%d], got %v", tc.field, tc.index, err)
			}
		})
	}
}

func TestQuotationRequest_ToRequest(t *testing.T) {
	var r QuotationRequest
	if err := json.Unmarshal([]byte(`{"amount":"400.00"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := r.ToRequest()
	if out.QuotationNumber != nil || out.QuotationDate != nil || out.Amount == nil || out.Amount.StringFixed(2) != "400.00" {
		t.Fatalf("unexpected request: %+v", out)
	}
}

func TestDeliveryRequest_ToInput(t *testing.T) {
	in, err := DeliveryRequest{ReceivedBy: " Bob "}.ToInput()
	if err != nil || !in.DeliveryDate.IsZero() || in.ReceivedBy != "Bob" {
		t.Fatalf("unexpected input: %+v %v", in, err)
	}
}
