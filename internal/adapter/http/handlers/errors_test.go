package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"line item", &entities.LineItemError{Index: 1, Name: "Load cell", Field: "quantity", Reason: "must be positive"}, http.StatusBadRequest, "INVALID_LINE_ITEM"},
		{"validation", entities.NewValidationError("name", "is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"precondition", &entities.PreconditionError{Transition: "invoice", Missing: "invoice_number"}, http.StatusUnprocessableEntity, "PRECONDITION_FAILED"},
		{"out of order", &entities.TransitionError{From: entities.JobStatusIntake, To: entities.JobStatusQuoted}, http.StatusConflict, "OUT_OF_ORDER_TRANSITION"},
		{"conflict", &entities.ConflictError{Field: "job_number", Value: "J-7"}, http.StatusConflict, "CONFLICT"},
		{"not found", &entities.NotFoundError{Entity: "job", ID: "x"}, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("load: %w", &entities.NotFoundError{Entity: "job", ID: "x"}), http.StatusNotFound, "NOT_FOUND"},
		{"invalid payment payload", usecase.ErrInvalidPaymentPayload, http.StatusBadRequest, "INVALID_REQUEST"},
		{"gateway bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{"gateway customer", usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{"gateway users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest, "PAYMENT_PROVIDER_INVALID_USERS"},
		{"gateway unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{"settled", usecase.ErrInvoiceSettled, http.StatusConflict, "INVOICE_SETTLED"},
		{"pending payment", fmt.Errorf("%w: pay-1", usecase.ErrPaymentPending), http.StatusConflict, "PAYMENT_PENDING"},
		{"charged but not recorded", &usecase.PaymentNotRecordedError{PaymentID: "pay-1", Err: &entities.ConflictError{Field: "version", Value: "3"}}, http.StatusInternalServerError, "PAYMENT_NOT_RECORDED"},
		{"not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_GATEWAY_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}

	t.Run("line item details", func(t *testing.T) {
		got := mapError(&entities.LineItemError{Index: 2, Field: "unit_price", Reason: "must not be negative"})
		if got.Details["index"] != "2" || got.Details["field"] != "unit_price" {
			t.Fatalf("unexpected details: %+v", got.Details)
		}
	})
}
