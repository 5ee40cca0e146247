package handlers

import (
	"log/slog"
	"net/http"

	request "scale_workshop/internal/adapter/http/dto/request"
	response "scale_workshop/internal/adapter/http/dto/response"
	"scale_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCustomerRequest  true  "Customer"
// @Success      201   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	contact, err := payload.ToContact()
	if err != nil {
		respondError(c, "customer", err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Name, contact)
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	slog.InfoContext(c.Request.Context(), "[customer][handler] created", "customer_id", created.ID)
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// GetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// UpdateContact godoc
// @Summary      Replace a customer's contact details
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Customer ID"
// @Param        body  body      request.ContactRequest  true  "Contact"
// @Success      200   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /customers/{id}/contact [patch]
func (h *CustomerHandler) UpdateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	contact, err := payload.ToContact()
	if err != nil {
		respondError(c, "customer", err)
		return
	}

	updated, err := h.usecase.UpdateContact(c.Request.Context(), c.Param("id"), contact)
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(updated))
}
