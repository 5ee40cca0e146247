package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	response "scale_workshop/internal/adapter/http/dto/response"
	"scale_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoicePaymentHandler charges invoices through the payment provider.
type InvoicePaymentHandler struct {
	usecase  usecase.IInvoicePaymentUseCase
	mockMode bool
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase, mockMode bool) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc, mockMode: mockMode}
}

// ChargeInvoice godoc
// @Summary      Charge the outstanding invoice balance
// @Description  The body is a Mercado Pago payment request, optionally wrapped as {"provider_payload": {...}}. The amount is always the outstanding balance.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.InvoicePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /jobs/{id}/invoice/payments [post]
func (h *InvoicePaymentHandler) ChargeInvoice(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("id")
	slog.InfoContext(ctx, "[payment][handler] charge start", "job_id", jobID)

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			slog.WarnContext(ctx, "[payment][handler] invalid payload", "job_id", jobID, "err", err)
			abort(c, errInvalidPayload)
			return
		}
		slog.InfoContext(ctx, "[payment][handler] payload invalid in mock mode; using empty payload", "job_id", jobID, "err", err)
		payload = json.RawMessage("{}")
	}

	payment, err := h.usecase.Charge(ctx, jobID, payload)
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	slog.InfoContext(ctx, "[payment][handler] charge success", "job_id", jobID, "payment_id", payment.ID, "status", payment.Status)
	c.JSON(http.StatusOK, response.FromInvoicePayment(payment))
}

// ListPayments godoc
// @Summary      Payments recorded against the job's invoice
// @Tags         payments
// @Produce      json
// @Param        id   path     string  true  "Job ID"
// @Success      200  {array}  response.InvoicePaymentResponse
// @Router       /jobs/{id}/invoice/payments [get]
func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
