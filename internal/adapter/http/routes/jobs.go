package routes

import (
	"scale_workshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathJobs = "/jobs"

func addJobRoutes(
	rg *gin.RouterGroup,
	jobs *handlers.JobHandler,
	workflow *handlers.WorkflowHandler,
	docs *handlers.DocumentHandler,
	payments *handlers.InvoicePaymentHandler,
) {
	g := rg.Group(PathJobs)
	{
		g.POST("", jobs.CreateJob)
		g.GET("", jobs.ListJobs)
		g.GET("/export.xlsx", docs.ExportRegister)
		g.GET("/:id", jobs.GetJob)
		g.POST("/:id/cancel", jobs.CancelJob)

		// Stage records; each either advances the job or amends the current stage.
		g.PUT("/:id/inspection", workflow.RecordInspection)
		g.PUT("/:id/quotation", workflow.RecordQuotation)
		g.PUT("/:id/approval", workflow.RecordApproval)
		g.PUT("/:id/invoice", workflow.RecordInvoice)
		g.PUT("/:id/delivery", workflow.RecordDelivery)

		g.GET("/:id/preview", docs.Preview)
		g.GET("/:id/quotation-document", docs.Quotation)

		g.POST("/:id/invoice/payments", payments.ChargeInvoice)
		g.GET("/:id/invoice/payments", payments.ListPayments)
	}
}
