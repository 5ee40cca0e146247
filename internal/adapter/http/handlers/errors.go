package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase"
	"scale_workshop/pkg"

	"github.com/gin-gonic/gin"
)

// OperatorHeader carries the name of the operator performing a request.
const OperatorHeader = "X-Operator"

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingOperator  = pkg.NewDomainErrorSimple("MISSING_OPERATOR", "X-Operator header is required", http.StatusBadRequest)
	errInvalidJobStatus = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown job status", http.StatusBadRequest)
)

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// operator reads the acting operator from the request; it aborts the request
// when the header is missing.
func operator(c *gin.Context) (entities.Actor, bool) {
	actor, err := entities.NewActor(c.GetHeader(OperatorHeader))
	if err != nil {
		abort(c, errMissingOperator)
		return entities.Actor{}, false
	}
	return actor, true
}

// mapError turns domain and use case errors into client errors.
func mapError(err error) *pkg.AppError {
	var (
		lineErr  *entities.LineItemError
		valErr   *entities.ValidationError
		preErr   *entities.PreconditionError
		transErr *entities.TransitionError
		confErr  *entities.ConflictError
		notFound *entities.NotFoundError
		unsaved  *usecase.PaymentNotRecordedError
	)
	switch {
	case errors.As(err, &unsaved):
		return pkg.NewDomainError("PAYMENT_NOT_RECORDED", "Payment was charged but could not be recorded", err, http.StatusInternalServerError).
			WithDetail("payment_id", unsaved.PaymentID)
	case errors.As(err, &lineErr):
		return pkg.NewDomainError("INVALID_LINE_ITEM", "Invalid spare part", err, http.StatusBadRequest).
			WithDetail("index", strconv.Itoa(lineErr.Index)).
			WithDetail("field", lineErr.Field).
			WithDetail("reason", lineErr.Reason)
	case errors.As(err, &valErr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest).
			WithDetail("field", valErr.Field).
			WithDetail("reason", valErr.Reason)
	case errors.As(err, &preErr):
		return pkg.NewDomainError("PRECONDITION_FAILED", "Stage precondition not met", err, http.StatusUnprocessableEntity).
			WithDetail("transition", preErr.Transition).
			WithDetail("missing", preErr.Missing)
	case errors.As(err, &transErr):
		return pkg.NewDomainError("OUT_OF_ORDER_TRANSITION", "Transition not allowed from the current status", err, http.StatusConflict).
			WithDetail("from", string(transErr.From)).
			WithDetail("to", string(transErr.To))
	case errors.As(err, &confErr):
		return pkg.NewDomainError("CONFLICT", "Conflicting update", err, http.StatusConflict).
			WithDetail("field", confErr.Field).
			WithDetail("value", confErr.Value)
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound).
			WithDetail("entity", notFound.Entity)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvoiceSettled):
		return pkg.NewDomainError("INVOICE_SETTLED", "Invoice already settled", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentPending):
		return pkg.NewDomainError("PAYMENT_PENDING", "A payment for this invoice is still being processed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "["+area+"][handler] request failed", "path", c.FullPath(), "err", err)
	} else {
		slog.WarnContext(c.Request.Context(), "["+area+"][handler] request rejected", "path", c.FullPath(), "code", appErr.Code, "err", err)
	}
	abort(c, appErr)
}
