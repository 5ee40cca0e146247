package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"scale_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func wantsPDF(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.Query("format")), "pdf")
}

func attachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// Preview godoc
// @Summary      Job sheet with the inspection, as JSON or PDF
// @Tags         documents
// @Produce      json
// @Produce      application/pdf
// @Param        id      path      string  true   "Job ID"
// @Param        format  query     string  false  "pdf"
// @Success      200     {object}  documents.PreviewDoc
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{id}/preview [get]
func (h *DocumentHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()
	if wantsPDF(c) {
		b, doc, err := h.usecase.PreviewPDF(ctx, c.Param("id"))
		if err != nil {
			respondError(c, "document", err)
			return
		}
		attachment(c, contentTypePDF, "job-"+doc.Job.JobNumber+".pdf", b)
		return
	}
	doc, err := h.usecase.Preview(ctx, c.Param("id"))
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Quotation godoc
// @Summary      Quotation document, as JSON or PDF
// @Description  Before a quotation is recorded this is the default draft priced from the inspection.
// @Tags         documents
// @Produce      json
// @Produce      application/pdf
// @Param        id      path      string  true   "Job ID"
// @Param        format  query     string  false  "pdf"
// @Success      200     {object}  documents.QuotationDoc
// @Failure      409     {object}  pkg.HTTPError
// @Router       /jobs/{id}/quotation-document [get]
func (h *DocumentHandler) Quotation(c *gin.Context) {
	ctx := c.Request.Context()
	if wantsPDF(c) {
		b, doc, err := h.usecase.QuotationPDF(ctx, c.Param("id"))
		if err != nil {
			respondError(c, "document", err)
			return
		}
		attachment(c, contentTypePDF, doc.QuotationNumber+".pdf", b)
		return
	}
	doc, err := h.usecase.Quotation(ctx, c.Param("id"))
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ExportRegister godoc
// @Summary      Jobs register as an Excel workbook
// @Tags         documents
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "Job status filter"
// @Success      200
// @Router       /jobs/export.xlsx [get]
func (h *DocumentHandler) ExportRegister(c *gin.Context) {
	status, ok := statusQuery(c)
	if !ok {
		return
	}
	b, err := h.usecase.RegisterWorkbook(c.Request.Context(), status)
	if err != nil {
		respondError(c, "document", err)
		return
	}
	name := "jobs.xlsx"
	if status != "" {
		name = "jobs-" + string(status) + ".xlsx"
	}
	attachment(c, contentTypeXLSX, name, b)
}
