package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var received = time.Date(2025, 1, 30, 9, 0, 0, 0, time.UTC)

func sampleJob() entities.Job {
	return entities.Job{
		ID:           "job-1",
		JobNumber:    "J-1001",
		CustomerID:   "c-1",
		CustomerName: "Acme Mills",
		Equipment:    entities.Equipment{Make: "Avery", Model: "WT-300"},
		Status:       entities.JobStatusIntake,
		TakenBy:      "alice",
		ReceivedAt:   received,
		CreatedAt:    received,
		UpdatedAt:    received,
		Version:      1,
	}
}

func samplePayment() entities.InvoicePayment {
	return entities.InvoicePayment{
		ID:     "pay-1",
		Date:   received,
		Amount: decimal.RequireFromString("150"),
		Status: entities.PaymentStatusApproved,
	}
}

// perform sends body (when non-empty) as JSON and sets the operator header
// when op is non-empty.
func perform(r *gin.Engine, method, path, body, op string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if op != "" {
		req.Header.Set(OperatorHeader, op)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected error body, got %q", w.Body.String())
	}
	return body
}
