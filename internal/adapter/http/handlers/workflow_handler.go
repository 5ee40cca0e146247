package handlers

import (
	"net/http"

	request "scale_workshop/internal/adapter/http/dto/request"
	response "scale_workshop/internal/adapter/http/dto/response"
	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler records stage records. PUT on the current stage amends
// its record; PUT on the next stage advances the job.
type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// stage binds the payload into T and runs record with the operator. An
// empty body binds the zero payload.
func stage[T any](c *gin.Context, record func(payload T, actor entities.Actor) (entities.Job, error)) {
	actor, ok := operator(c)
	if !ok {
		return
	}
	var payload T
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abort(c, errInvalidPayload)
			return
		}
	}
	job, err := record(payload, actor)
	if err != nil {
		respondError(c, "workflow", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// RecordInspection godoc
// @Summary      Record or amend the inspection
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-Operator  header    string                     true  "Operator name"
// @Param        id          path      string                     true  "Job ID"
// @Param        body        body      request.InspectionRequest  true  "Inspection"
// @Success      200         {object}  response.JobResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /jobs/{id}/inspection [put]
func (h *WorkflowHandler) RecordInspection(c *gin.Context) {
	stage(c, func(p request.InspectionRequest, actor entities.Actor) (entities.Job, error) {
		in, err := p.ToInput()
		if err != nil {
			return entities.Job{}, err
		}
		return h.usecase.RecordInspection(c.Request.Context(), c.Param("id"), in, actor)
	})
}

// RecordQuotation godoc
// @Summary      Record or amend the quotation
// @Description  Omitted fields default to QT-<job_number>-<year>, today and the inspection total.
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-Operator  header    string                    true  "Operator name"
// @Param        id          path      string                    true  "Job ID"
// @Param        body        body      request.QuotationRequest  true  "Quotation"
// @Success      200         {object}  response.JobResponse
// @Router       /jobs/{id}/quotation [put]
func (h *WorkflowHandler) RecordQuotation(c *gin.Context) {
	stage(c, func(p request.QuotationRequest, actor entities.Actor) (entities.Job, error) {
		return h.usecase.RecordQuotation(c.Request.Context(), c.Param("id"), p.ToRequest(), actor)
	})
}

// RecordApproval godoc
// @Summary      Record or amend the customer approval
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-Operator  header    string                   true  "Operator name"
// @Param        id          path      string                   true  "Job ID"
// @Param        body        body      request.ApprovalRequest  true  "Approval"
// @Success      200         {object}  response.JobResponse
// @Router       /jobs/{id}/approval [put]
func (h *WorkflowHandler) RecordApproval(c *gin.Context) {
	stage(c, func(p request.ApprovalRequest, actor entities.Actor) (entities.Job, error) {
		return h.usecase.RecordApproval(c.Request.Context(), c.Param("id"), p.ToInput(), actor)
	})
}

// RecordInvoice godoc
// @Summary      Record or amend the invoice
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-Operator  header    string                  true  "Operator name"
// @Param        id          path      string                  true  "Job ID"
// @Param        body        body      request.InvoiceRequest  true  "Invoice"
// @Success      200         {object}  response.JobResponse
// @Router       /jobs/{id}/invoice [put]
func (h *WorkflowHandler) RecordInvoice(c *gin.Context) {
	stage(c, func(p request.InvoiceRequest, actor entities.Actor) (entities.Job, error) {
		return h.usecase.RecordInvoice(c.Request.Context(), c.Param("id"), p.ToRequest(), actor)
	})
}

// RecordDelivery godoc
// @Summary      Record the delivery
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        X-Operator  header    string                   true  "Operator name"
// @Param        id          path      string                   true  "Job ID"
// @Param        body        body      request.DeliveryRequest  true  "Delivery"
// @Success      200         {object}  response.JobResponse
// @Router       /jobs/{id}/delivery [put]
func (h *WorkflowHandler) RecordDelivery(c *gin.Context) {
	stage(c, func(p request.DeliveryRequest, actor entities.Actor) (entities.Job, error) {
		in, err := p.ToInput()
		if err != nil {
			return entities.Job{}, err
		}
		return h.usecase.RecordDelivery(c.Request.Context(), c.Param("id"), in, actor)
	})
}
